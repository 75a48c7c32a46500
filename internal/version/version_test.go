package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit and BuildDate can be empty (optional)
	_ = GitCommit
	_ = BuildDate
}

func TestColored_PlainWhenNoColor(t *testing.T) {
	origNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = origNoColor }()

	origVersion := Version
	Version = "1.2.3-rc1"
	defer func() { Version = origVersion }()

	if got := Colored(); got != "1.2.3-rc1" {
		t.Errorf("Colored() = %q, want %q", got, "1.2.3-rc1")
	}
}

func TestColored_KeepsComponents(t *testing.T) {
	origVersion := Version
	Version = "4.5.6"
	defer func() { Version = origVersion }()

	got := Colored()
	for _, part := range []string{"4", "5", "6"} {
		if !strings.Contains(got, part) {
			t.Errorf("Colored() = %q, missing component %q", got, part)
		}
	}
	if strings.Count(got, ".") != 2 {
		t.Errorf("Colored() = %q, want two dots", got)
	}
}
