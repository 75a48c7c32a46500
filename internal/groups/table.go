package groups

import (
	"slices"
	"strings"
)

// Table maps groups to the set of unique function names resolved into them.
// It is built incrementally across all input documents; merging is a set
// union per group, so the build order of documents never changes the result.
type Table struct {
	groups map[Group]map[string]struct{}
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{groups: make(map[Group]map[string]struct{})}
}

// Add records a function name in a group. Duplicate names collapse.
func (t *Table) Add(g Group, fn string) {
	set, ok := t.groups[g]
	if !ok {
		set = make(map[string]struct{})
		t.groups[g] = set
	}
	set[fn] = struct{}{}
}

// Merge unions another table into this one.
func (t *Table) Merge(other *Table) {
	for g, set := range other.groups {
		for fn := range set {
			t.Add(g, fn)
		}
	}
}

// Empty reports whether no function was resolved into any group.
func (t *Table) Empty() bool {
	return len(t.groups) == 0
}

// Entry is one group with its function names sorted ascending.
type Entry struct {
	Group Group
	Names []string
}

// Sorted returns the table's entries ordered by group display string
// ascending, each with its names sorted ascending. This fixes the emission
// order regardless of how the table was built.
func (t *Table) Sorted() []Entry {
	entries := make([]Entry, 0, len(t.groups))
	for g, set := range t.groups {
		names := make([]string, 0, len(set))
		for fn := range set {
			names = append(names, fn)
		}
		slices.Sort(names)
		entries = append(entries, Entry{Group: g, Names: names})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Group.Display(), b.Group.Display())
	})
	return entries
}
