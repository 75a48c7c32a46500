// Package version carries the CLI build identity.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var componentColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Colored renders the version with each dotted component in its own color.
// Any pre-release suffix on the last component stays uncolored.
func Colored() string {
	parts := strings.SplitN(Version, ".", 3)
	out := make([]string, len(parts))
	for i, p := range parts {
		suffix := ""
		if i == len(parts)-1 {
			if dash := strings.IndexByte(p, '-'); dash >= 0 {
				p, suffix = p[:dash], p[dash:]
			}
		}
		out[i] = componentColors[i%len(componentColors)].Sprint(p) + suffix
	}
	return strings.Join(out, ".")
}
