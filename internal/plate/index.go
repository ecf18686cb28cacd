package plate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/provide-io/plating/internal/capability"
	"github.com/provide-io/plating/internal/errors"
	"github.com/provide-io/plating/internal/output"
)

// Generated navigation artifacts at the documentation root.
const (
	IndexFile       = "index.md"
	NavManifestFile = "nav.yml"
)

// WriteIndex regenerates the capability index. The index is a fully
// regenerated artifact: prior content is overwritten, not merged. When a
// previous index exists and differs, the unified diff is logged at debug
// level so hand edits are visible before they are lost.
func WriteIndex(docsDir, provider string, grouped *capability.Grouped) error {
	content := renderIndex(provider, grouped)
	path := filepath.Join(docsDir, IndexFile)

	if prev, err := os.ReadFile(path); err == nil && string(prev) != content {
		logIndexDiff(path, string(prev), content)
	}

	return writeDoc(path, content)
}

// renderIndex builds the index markdown: capability sections in grouped
// order, kind subsections in display order.
func renderIndex(provider string, grouped *capability.Grouped) string {
	var b strings.Builder

	title := provider
	if title == "" {
		title = "Provider"
	}
	fmt.Fprintf(&b, "# %s components\n", title)

	for _, capName := range grouped.Order {
		fmt.Fprintf(&b, "\n## %s\n", capName)
		for _, kind := range grouped.Kinds(capName) {
			fmt.Fprintf(&b, "\n### %s\n\n", kind.DisplayName())
			for _, bl := range grouped.Buckets[capName][kind] {
				clean := cleanName(bl.Name, provider)
				fmt.Fprintf(&b, "- [%s](%s/%s.md)\n", bl.Name, kind.OutputSubdir(), clean)
			}
		}
	}
	return b.String()
}

// logIndexDiff reports what a regeneration overwrites.
func logIndexDiff(path, prev, next string) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(prev),
		B:        difflib.SplitLines(next),
		FromFile: path,
		ToFile:   path + " (regenerated)",
		Context:  2,
	})
	if err != nil {
		return
	}
	output.Debug("index regenerated with changes", "path", path, "diff", "\n"+diff)
}

// navEntry is one page in the navigation manifest.
type navEntry struct {
	Title string `yaml:"title"`
	Page  string `yaml:"page"`
}

// navKind groups pages of one kind within a capability.
type navKind struct {
	Kind    string     `yaml:"kind"`
	Entries []navEntry `yaml:"entries"`
}

// navCapability is one capability section of the manifest.
type navCapability struct {
	Capability string    `yaml:"capability"`
	Kinds      []navKind `yaml:"kinds"`
}

// navManifest is the root of nav.yml.
type navManifest struct {
	Provider     string          `yaml:"provider"`
	Capabilities []navCapability `yaml:"capabilities"`
}

// WriteNavManifest regenerates the navigation manifest consumed by the
// documentation site. Fully regenerated, like the index.
func WriteNavManifest(docsDir, provider string, grouped *capability.Grouped) error {
	manifest := navManifest{Provider: provider}

	for _, capName := range grouped.Order {
		capSection := navCapability{Capability: capName}
		for _, kind := range grouped.Kinds(capName) {
			section := navKind{Kind: string(kind)}
			for _, bl := range grouped.Buckets[capName][kind] {
				clean := cleanName(bl.Name, provider)
				section.Entries = append(section.Entries, navEntry{
					Title: bl.Name,
					Page:  filepath.ToSlash(filepath.Join(kind.OutputSubdir(), clean+".md")),
				})
			}
			capSection.Kinds = append(capSection.Kinds, section)
		}
		manifest.Capabilities = append(manifest.Capabilities, capSection)
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshaling nav manifest: %w", err)
	}

	path := filepath.Join(docsDir, NavManifestFile)
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return errors.NewIOError("mkdir", docsDir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewIOError("write", path, err)
	}
	return nil
}
