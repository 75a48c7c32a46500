// Package scanner removes comments from Metal shader source.
//
// String literals pass through untouched, including multi-line literals and
// comment-like substrings inside them. Shader-group marker comments
// (//MTLShaderGroup: Name) are kept so later stages can locate them in the
// cleaned text. The output is canonical: trailing whitespace is trimmed per
// line and lines that end up empty are dropped, so the result is stable
// under diffs and under repeated scanning.
package scanner

import "strings"

// MarkerPrefix introduces a shader-group marker comment, immediately after
// the // of a line comment.
const MarkerPrefix = "MTLShaderGroup:"

// scanState is the scanner's position in the comment grammar.
type scanState uint8

const (
	stateCode scanState = iota
	stateString
	stateLineComment
	stateBlockComment
)

// MarkerName reports whether the trimmed line is a shader-group marker
// comment, and returns the raw group-name candidate after the prefix.
// Whitespace between // and the prefix is tolerated.
func MarkerName(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "//") {
		return "", false
	}
	rest := strings.TrimLeft(s[2:], " \t")
	if !strings.HasPrefix(rest, MarkerPrefix) {
		return "", false
	}
	return rest[len(MarkerPrefix):], true
}

// Strip removes line and block comments from raw shader source, keeping
// string literals and marker comments. It never fails: an unterminated
// block comment is treated as commented-out to end of input.
func Strip(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	c := &cursor{src: text}
	state := stateCode
	var delim byte // active string delimiter in stateString

	for !c.eof() {
		switch state {
		case stateCode:
			b := c.peek()
			switch {
			case b == '"' || b == '\'':
				delim = b
				out.WriteByte(c.bump())
				state = stateString
			case b == '/' && c.peekAt(1) == '/':
				rest := c.lineRemainder()
				if _, ok := MarkerName(rest); ok {
					// Marker comments survive scanning so the extractor
					// can find them in the cleaned text.
					out.WriteString(rest)
					c.skip(len(rest))
				} else {
					c.skip(2)
					state = stateLineComment
				}
			case b == '/' && c.peekAt(1) == '*':
				c.skip(2)
				state = stateBlockComment
			default:
				out.WriteByte(c.bump())
			}

		case stateString:
			b := c.bump()
			out.WriteByte(b)
			switch b {
			case '\\':
				// An escaped byte never closes the string.
				if !c.eof() {
					out.WriteByte(c.bump())
				}
			case delim:
				state = stateCode
			}

		case stateLineComment:
			if c.peek() == '\n' {
				out.WriteByte(c.bump())
				state = stateCode
			} else {
				c.bump()
			}

		case stateBlockComment:
			// Non-nesting: the first */ closes the comment; everything
			// inside, newlines included, is discarded.
			if c.peek() == '*' && c.peekAt(1) == '/' {
				c.skip(2)
				state = stateCode
			} else {
				c.bump()
			}
		}
	}

	return normalize(out.String())
}

// normalize trims trailing whitespace per line and drops lines that are
// empty after trimming. Non-empty output always ends with a newline.
func normalize(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.String()
}
