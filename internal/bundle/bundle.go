// Package bundle defines the documentation bundle model: one directory per
// documentable component, holding its template, partials, examples, and
// fixtures.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/provide-io/plating/internal/errors"
)

// Marker is the directory-name suffix identifying a documentation bundle.
const Marker = ".plating"

// TemplateSuffix is the file-name suffix of markdown templates under docs/.
const TemplateSuffix = ".tmpl.md"

// PartialPrefix marks reusable template fragments under docs/.
const PartialPrefix = "_"

// GroupEntryFile is the file whose presence marks an examples subdirectory
// as a cross-component scenario.
const GroupEntryFile = "main.tf"

// Bundle identifies one documentable component, anchored at a directory.
// Constructed by discovery and immutable afterwards.
type Bundle struct {
	// Name is the component's registered name.
	Name string

	// Root is the bundle directory; owned exclusively by this bundle.
	Root string

	// Kind classifies the documented component.
	Kind Kind

	// TemplatePath, when set, points directly at the main template and
	// bypasses the docs/<name>.tmpl.md convention. Used by per-function
	// template variants.
	TemplatePath string
}

// New constructs a bundle rooted at dir. The root must exist; docs and
// examples subdirectories are checked lazily.
func New(name, dir string, kind Kind) (*Bundle, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.NewIOError("stat", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("bundle root %s is not a directory", dir)
	}
	return &Bundle{Name: name, Root: dir, Kind: kind}, nil
}

// DocsDir returns the directory holding the bundle's templates and partials.
func (b *Bundle) DocsDir() string {
	return filepath.Join(b.Root, "docs")
}

// ExamplesDir returns the directory holding the bundle's examples.
func (b *Bundle) ExamplesDir() string {
	return filepath.Join(b.Root, "examples")
}

// FixturesDir returns the directory holding fixtures shared by the bundle's
// flat examples.
func (b *Bundle) FixturesDir() string {
	return filepath.Join(b.ExamplesDir(), "fixtures")
}

// templateFile resolves the main template path without checking existence.
func (b *Bundle) templateFile() string {
	if b.TemplatePath != "" {
		return b.TemplatePath
	}
	return filepath.Join(b.DocsDir(), b.Name+TemplateSuffix)
}

// Template loads the bundle's main template. A missing template returns
// ("", false, nil): absence is not an error, callers decide whether to skip.
func (b *Bundle) Template() (content string, ok bool, err error) {
	path := b.templateFile()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.NewIOError("read", path, err)
	}
	return string(data), true, nil
}

// TemplateFile returns the resolved main template path.
func (b *Bundle) TemplateFile() string {
	return b.templateFile()
}

// Partial loads a partial by file name from the bundle's docs directory.
// Partials use a leading underscore by convention; the name is taken as-is.
func (b *Bundle) Partial(name string) (string, error) {
	path := filepath.Join(b.DocsDir(), name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError("read", path, err)
	}
	return string(data), nil
}

// Examples loads the bundle's flat examples: *.tf files directly under
// examples/, keyed by file name without extension. Scenario subdirectories
// belong to grouped compilation and are ignored here. A missing examples
// directory yields an empty map.
func (b *Bundle) Examples() (map[string]string, error) {
	dir := b.ExamplesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, errors.NewIOError("readdir", dir, err)
	}

	examples := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".tf") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.NewIOError("read", path, err)
		}
		key := strings.TrimSuffix(e.Name(), ".tf")
		examples[key] = string(data)
	}
	return examples, nil
}

// Fixtures returns the bundle's shared fixtures as a mapping from relative
// path (under examples/fixtures/) to absolute source path. A missing
// fixtures directory yields an empty map.
func (b *Bundle) Fixtures() (map[string]string, error) {
	return collectFixtures(b.FixturesDir())
}

// ScenarioDirs lists the names of cross-component scenario directories:
// subdirectories of examples/ (other than fixtures/) that contain the group
// entry file. Directories without the entry file are ignored entirely.
func (b *Bundle) ScenarioDirs() ([]string, error) {
	dir := b.ExamplesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewIOError("readdir", dir, err)
	}

	var scenarios []string
	for _, e := range entries {
		if !e.IsDir() || e.Name() == "fixtures" {
			continue
		}
		entry := filepath.Join(dir, e.Name(), GroupEntryFile)
		if _, err := os.Stat(entry); err != nil {
			continue
		}
		scenarios = append(scenarios, e.Name())
	}
	sort.Strings(scenarios)
	return scenarios, nil
}

// ScenarioFragment loads the bundle's fragment for one scenario.
func (b *Bundle) ScenarioFragment(scenario string) (string, error) {
	path := filepath.Join(b.ExamplesDir(), scenario, GroupEntryFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError("read", path, err)
	}
	return string(data), nil
}

// ScenarioFixtures returns the scenario-scoped fixtures as relative path →
// absolute source path.
func (b *Bundle) ScenarioFixtures(scenario string) (map[string]string, error) {
	return collectFixtures(filepath.Join(b.ExamplesDir(), scenario, "fixtures"))
}

// collectFixtures walks a fixtures directory and maps relative paths to
// absolute source locations. A missing directory yields an empty map.
func collectFixtures(root string) (map[string]string, error) {
	fixtures := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return filepath.SkipAll
			}
			return errors.NewIOError("walk", path, err)
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.NewIOError("rel", path, err)
		}
		fixtures[filepath.ToSlash(rel)] = path
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fixtures, nil
}
