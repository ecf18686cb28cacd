package examples

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/provide-io/plating/internal/bundle"
	"github.com/provide-io/plating/internal/errors"
	"github.com/provide-io/plating/internal/output"
)

// ExampleGroup aggregates per-component fragments sharing one
// cross-component scenario. Built transiently during one discovery pass and
// discarded after compilation.
type ExampleGroup struct {
	// Name is the scenario identifier.
	Name string

	// Components maps component name → raw fragment source. Keys are
	// unique by construction: a repeat is a hard error at discovery.
	Components map[string]string

	// Fixtures maps fixture relative path → source file location. A
	// relative path may come from at most one component.
	Fixtures map[string]string

	// Kinds is the set of component kinds contributing to the group.
	Kinds map[bundle.Kind]bool

	// contributors tracks which component contributed each fixture, for
	// collision reporting.
	contributors map[string]string
}

func newExampleGroup(name string) *ExampleGroup {
	return &ExampleGroup{
		Name:         name,
		Components:   make(map[string]string),
		Fixtures:     make(map[string]string),
		Kinds:        make(map[bundle.Kind]bool),
		contributors: make(map[string]string),
	}
}

// ComponentNames returns the contributing component names sorted.
func (g *ExampleGroup) ComponentNames() []string {
	names := make([]string, 0, len(g.Components))
	for name := range g.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DiscoverGroups scans all bundles for scenario directories and aggregates
// them into example groups. Duplicate component names or fixture relative
// paths within one scenario fail immediately: silent overwrite would corrupt
// generated output.
func DiscoverGroups(bundles []*bundle.Bundle) (map[string]*ExampleGroup, error) {
	groups := make(map[string]*ExampleGroup)

	for _, b := range bundles {
		scenarios, err := b.ScenarioDirs()
		if err != nil {
			return nil, err
		}
		for _, scenario := range scenarios {
			group, ok := groups[scenario]
			if !ok {
				group = newExampleGroup(scenario)
				groups[scenario] = group
			}

			if _, exists := group.Components[b.Name]; exists {
				return nil, errors.NewCollisionError(scenario, "component", b.Name, nil)
			}

			fragment, err := b.ScenarioFragment(scenario)
			if err != nil {
				return nil, err
			}
			group.Components[b.Name] = fragment
			group.Kinds[b.Kind] = true

			fixtures, err := b.ScenarioFixtures(scenario)
			if err != nil {
				return nil, err
			}
			for rel, src := range fixtures {
				if prev, exists := group.contributors[rel]; exists {
					return nil, errors.NewCollisionError(scenario, "fixture", rel, []string{prev, b.Name})
				}
				group.Fixtures[rel] = src
				group.contributors[rel] = b.Name
			}
		}
	}
	return groups, nil
}

// GroupCompiler compiles example groups into integration project folders.
type GroupCompiler struct {
	Provider ProviderSpec
}

// CompileGroups writes one project folder per scenario under outRoot and
// returns the number of scenarios written.
func (c *GroupCompiler) CompileGroups(groups map[string]*ExampleGroup, outRoot string) (int, error) {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	written := 0
	for _, name := range names {
		if err := c.compileGroup(groups[name], outRoot); err != nil {
			return written, fmt.Errorf("scenario %s: %w", name, err)
		}
		written++
	}
	return written, nil
}

// compileGroup writes one scenario folder: provider declaration, one file
// per contributing component, the fixture tree, and a README.
func (c *GroupCompiler) compileGroup(g *ExampleGroup, outRoot string) error {
	dir := filepath.Join(outRoot, g.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewIOError("mkdir", dir, err)
	}

	providerPath := filepath.Join(dir, "provider.tf")
	if err := os.WriteFile(providerPath, []byte(c.Provider.ProviderBlock()), 0o644); err != nil {
		return errors.NewIOError("write", providerPath, err)
	}

	for name, fragment := range g.Components {
		path := filepath.Join(dir, name+".tf")
		if err := os.WriteFile(path, []byte(fragment), 0o644); err != nil {
			return errors.NewIOError("write", path, err)
		}
	}

	for rel, src := range g.Fixtures {
		dst := filepath.Join(dir, "fixtures", filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			return err
		}
	}

	readmePath := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readmePath, []byte(c.groupReadme(g)), 0o644); err != nil {
		return errors.NewIOError("write", readmePath, err)
	}

	output.Debug("compiled scenario", "scenario", g.Name, "components", len(g.Components))
	return nil
}

// groupReadme generates the scenario README listing contributors and
// standard usage instructions.
func (c *GroupCompiler) groupReadme(g *ExampleGroup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Scenario: %s\n\n", g.Name)
	b.WriteString("Cross-component example combining:\n\n")
	for _, name := range g.ComponentNames() {
		fmt.Fprintf(&b, "- `%s`\n", name)
	}
	b.WriteString("\n## Usage\n\n```sh\nterraform init\nterraform apply\nterraform destroy\n```\n")
	return b.String()
}

// copyFile copies one fixture file, creating parent directories. Writes are
// whole-file.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.NewIOError("mkdir", filepath.Dir(dst), err)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return errors.NewIOError("read", src, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return errors.NewIOError("write", dst, err)
	}
	return nil
}
