// Package project locates and parses the mtlgen.toml manifest and resolves
// its input patterns to shader files on disk.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"
)

// ManifestName is the manifest file looked up from the working directory.
const ManifestName = "mtlgen.toml"

// defaultInputs matches every .metal file under the manifest root.
var defaultInputs = []string{"**.metal"}

// ErrPackageNameMissing indicates that [package].name is missing.
var ErrPackageNameMissing = errors.New("missing [package].name")

// Manifest is a parsed mtlgen.toml.
type Manifest struct {
	Path string // manifest location on disk
	Root string // directory containing the manifest

	Package  PackageConfig  `toml:"package"`
	Generate GenerateConfig `toml:"generate"`

	globs []glob.Glob // compiled input patterns, populated lazily
}

// PackageConfig is the [package] section.
type PackageConfig struct {
	// Name prefixes the generated container enum.
	Name string `toml:"name"`
}

// GenerateConfig is the [generate] section.
type GenerateConfig struct {
	// Output is the generated file path, relative to the manifest root.
	Output string `toml:"output"`
	// Inputs are glob patterns for shader sources, relative to the
	// manifest root. Empty means every .metal file under the root.
	Inputs []string `toml:"inputs"`
}

// Find walks up from startDir looking for a manifest file.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	m.Path = path
	m.Root = filepath.Dir(path)

	if !meta.IsDefined("package", "name") || strings.TrimSpace(m.Package.Name) == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	m.Package.Name = strings.TrimSpace(m.Package.Name)
	if m.Generate.Output == "" {
		m.Generate.Output = m.Package.Name + "Shaders.generated.swift"
	}
	return &m, nil
}

// OutputPath returns the absolute path of the generated file.
func (m *Manifest) OutputPath() string {
	if filepath.IsAbs(m.Generate.Output) {
		return m.Generate.Output
	}
	return filepath.Join(m.Root, m.Generate.Output)
}

// InputFiles walks the manifest root and returns the sorted list of files
// matching the input patterns. Sorting keeps the document order, and with
// it any diagnostics, deterministic; generation output does not depend on
// it either way.
func (m *Manifest) InputFiles() ([]string, error) {
	globs, err := m.compiled()
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(m.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(m.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, g := range globs {
			if g.Match(rel) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Matches reports whether an absolute path under the manifest root matches
// the input patterns. Used by the watcher to filter change events.
func (m *Manifest) Matches(path string) bool {
	rel, err := filepath.Rel(m.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	rel = filepath.ToSlash(rel)

	globs, err := m.compiled()
	if err != nil {
		return false
	}
	for _, g := range globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// compiled returns the compiled input patterns, compiling them on first use.
func (m *Manifest) compiled() ([]glob.Glob, error) {
	if m.globs != nil {
		return m.globs, nil
	}
	patterns := m.Generate.Inputs
	if len(patterns) == 0 {
		patterns = defaultInputs
	}
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%s: bad input pattern %q: %w", m.Path, pattern, err)
		}
		globs = append(globs, g)
	}
	m.globs = globs
	return globs, nil
}
