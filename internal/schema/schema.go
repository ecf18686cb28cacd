// Package schema defines the boundary to the schema extraction subsystem.
// plating consumes schemas only as pre-rendered markdown plus a little
// grouping metadata; introspection itself happens in the provider tooling.
package schema

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/provide-io/plating/internal/bundle"
)

// ComponentRef identifies a component to the schema collaborator.
type ComponentRef struct {
	Name string
	Kind bundle.Kind
}

// Metadata carries the grouping signals a schema may supply.
type Metadata struct {
	// ComponentOf is the capability the schema declares for the component.
	ComponentOf string `yaml:"component_of"`

	// TestOnly marks components that exist only for provider testing.
	TestOnly bool `yaml:"test_only"`
}

// Renderer is the interface plating consumes. Implementations wrap the
// provider's schema extraction tooling.
type Renderer interface {
	// SchemaToMarkdown returns the component's schema rendered as
	// markdown, or "" when no schema is available.
	SchemaToMarkdown(ctx context.Context, ref ComponentRef) (string, error)

	// FindSourceFile returns the component's source file when the
	// collaborator can locate it.
	FindSourceFile(ref ComponentRef) (string, bool)

	// Meta returns the component's grouping metadata; the zero value
	// when none is declared.
	Meta(ref ComponentRef) Metadata
}

// DirRenderer serves pre-rendered schema fragments from a directory laid
// out as <dir>/<kind-subdir>/<name>.md, with optional <name>.meta.yaml
// sidecars. This is the file-based collaborator used when schemas were
// extracted ahead of time.
type DirRenderer struct {
	Dir string
}

// NewDirRenderer creates a renderer over a schema fragment directory.
// An empty dir yields a renderer that serves nothing.
func NewDirRenderer(dir string) *DirRenderer {
	return &DirRenderer{Dir: dir}
}

func (r *DirRenderer) fragmentPath(ref ComponentRef, ext string) string {
	return filepath.Join(r.Dir, ref.Kind.OutputSubdir(), ref.Name+ext)
}

// SchemaToMarkdown implements Renderer.
func (r *DirRenderer) SchemaToMarkdown(_ context.Context, ref ComponentRef) (string, error) {
	if r.Dir == "" {
		return "", nil
	}
	data, err := os.ReadFile(r.fragmentPath(ref, ".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// FindSourceFile implements Renderer. The directory collaborator has no
// source mapping.
func (r *DirRenderer) FindSourceFile(ComponentRef) (string, bool) {
	return "", false
}

// Meta implements Renderer.
func (r *DirRenderer) Meta(ref ComponentRef) Metadata {
	if r.Dir == "" {
		return Metadata{}
	}
	data, err := os.ReadFile(r.fragmentPath(ref, ".meta.yaml"))
	if err != nil {
		return Metadata{}
	}
	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return Metadata{}
	}
	return meta
}
