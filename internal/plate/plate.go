// Package plate orchestrates the documentation pipeline: discovery,
// capability grouping, rendering, example compilation, and output writing.
package plate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/provide-io/plating/internal/bundle"
	"github.com/provide-io/plating/internal/capability"
	"github.com/provide-io/plating/internal/discover"
	"github.com/provide-io/plating/internal/errors"
	"github.com/provide-io/plating/internal/examples"
	"github.com/provide-io/plating/internal/output"
	"github.com/provide-io/plating/internal/provision"
	"github.com/provide-io/plating/internal/render"
	"github.com/provide-io/plating/internal/schema"
)

// Options configures one orchestrator invocation.
type Options struct {
	// Package scopes discovery to a single package root. Empty means all
	// packages under Sites.
	Package string

	// Sites are the search roots for all-packages discovery.
	Sites []string

	// DocsDir is the rendered documentation output root.
	DocsDir string

	// ExamplesDir is the compiled examples output root.
	ExamplesDir string

	// Provider parameterizes generated provider blocks and name cleaning.
	Provider examples.ProviderSpec

	// GlobalPartialsDir enables global header/footer injection when set.
	GlobalPartialsDir string

	// Schema is the schema collaborator. Nil disables schema injection.
	Schema schema.Renderer

	// Terraform is the provisioning binary for Validate.
	Terraform string
}

// PlateResult summarizes a documentation generation pass.
type PlateResult struct {
	// Written lists generated files relative to DocsDir.
	Written []string

	// Skipped lists bundles that had no main template.
	Skipped []string

	// Errors collects per-bundle render failures.
	Errors []error
}

// discoverBundles resolves the discovery scope and returns bundles sorted
// by name for deterministic output.
func discoverBundles(opts Options) ([]*bundle.Bundle, error) {
	var bundles []*bundle.Bundle
	if opts.Package != "" {
		found, err := discover.DiscoverPackage(opts.Package)
		if err != nil {
			return nil, err
		}
		bundles = found
	} else {
		bundles = discover.DiscoverAll(opts.Sites)
	}

	sort.Slice(bundles, func(i, j int) bool {
		if bundles[i].Name != bundles[j].Name {
			return bundles[i].Name < bundles[j].Name
		}
		return bundles[i].Root < bundles[j].Root
	})
	return bundles, nil
}

// Plate renders documentation for every discovered bundle and regenerates
// the capability index and navigation manifest.
func Plate(ctx context.Context, opts Options) (*PlateResult, error) {
	bundles, err := discoverBundles(opts)
	if err != nil {
		return nil, err
	}
	output.Info("plating documentation", "bundles", len(bundles))

	sr := opts.Schema
	if sr == nil {
		sr = schema.NewDirRenderer("")
	}

	engine := render.NewEngine()
	result := &PlateResult{}
	var entries []capability.Entry
	resolved := map[*bundle.Bundle]string{}

	for _, b := range bundles {
		entry, hasTemplate, err := capabilityEntry(b, sr)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("bundle %s: %w", b.Name, err))
			continue
		}
		if !hasTemplate {
			result.Skipped = append(result.Skipped, b.Name)
			output.Debug("no main template", "bundle", b.Name)
			continue
		}
		entries = append(entries, entry)
		resolved[b] = entry.Resolve()
	}

	grouped := capability.Group(entries)

	for _, b := range bundles {
		subcat, ok := resolved[b]
		if !ok {
			continue
		}

		doc, err := renderBundle(ctx, engine, b, sr, opts)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("bundle %s: %w", b.Name, err))
			output.Print(output.FormatDocLine(string(b.Kind), b.Name, output.StatusFailed) + "\n")
			continue
		}

		doc = bundle.InjectSubcategory(doc, subcat)

		rel := filepath.Join(b.Kind.OutputSubdir(), cleanName(b.Name, opts.Provider.Name)+".md")
		if err := writeDoc(filepath.Join(opts.DocsDir, rel), doc); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("bundle %s: %w", b.Name, err))
			continue
		}
		result.Written = append(result.Written, filepath.ToSlash(rel))
		output.Print(output.FormatDocLine(string(b.Kind), b.Name, output.StatusWritten) + "\n")
	}

	if err := WriteIndex(opts.DocsDir, opts.Provider.Name, grouped); err != nil {
		return result, err
	}
	if err := WriteNavManifest(opts.DocsDir, opts.Provider.Name, grouped); err != nil {
		return result, err
	}
	result.Written = append(result.Written, IndexFile, NavManifestFile)

	output.Print(output.FormatSummary(fmt.Sprintf(
		"plated %d documents (%d skipped, %d errors)",
		len(result.Written), len(result.Skipped), len(result.Errors))) + "\n")
	return result, nil
}

// capabilityEntry builds the grouping signals for one bundle from its
// template frontmatter and the schema collaborator's metadata. Bundles with
// no main template report hasTemplate false and are excluded from grouping.
func capabilityEntry(b *bundle.Bundle, sr schema.Renderer) (entry capability.Entry, hasTemplate bool, err error) {
	entry = capability.Entry{Bundle: b}

	raw, ok, err := b.Template()
	if err != nil {
		return entry, false, err
	}
	if !ok {
		return entry, false, nil
	}

	fm := bundle.ParseFrontmatter(raw)
	entry.ComponentOf = fm.Subcategory()
	if entry.ComponentOf == "" {
		entry.ComponentOf = fm.Keys["component_of"]
	}
	entry.TestOnly = fm.BoolFlag("test_only")

	meta := sr.Meta(schema.ComponentRef{Name: b.Name, Kind: b.Kind})
	entry.SchemaComponentOf = meta.ComponentOf
	entry.TestOnly = entry.TestOnly || meta.TestOnly

	return entry, true, nil
}

// renderBundle renders one bundle with its full context.
func renderBundle(ctx context.Context, engine *render.Engine, b *bundle.Bundle, sr schema.Renderer, opts Options) (string, error) {
	exs, err := b.Examples()
	if err != nil {
		return "", err
	}

	schemaMD, err := sr.SchemaToMarkdown(ctx, schema.ComponentRef{Name: b.Name, Kind: b.Kind})
	if err != nil {
		return "", err
	}

	return engine.Render(ctx, b, render.Context{
		ComponentName:     b.Name,
		Kind:              b.Kind,
		ProviderName:      opts.Provider.Name,
		SchemaMarkdown:    schemaMD,
		Examples:          exs,
		GlobalPartialsDir: opts.GlobalPartialsDir,
	})
}

// writeDoc writes one document, creating parent directories. Writes are
// whole-file.
func writeDoc(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewIOError("mkdir", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.NewIOError("write", path, err)
	}
	return nil
}

// cleanName strips the provider prefix from a registered component name:
// "pyvider_bucket" documents as "bucket".
func cleanName(name, provider string) string {
	if provider != "" {
		name = strings.TrimPrefix(name, provider+"_")
	}
	return name
}

// AdornResult summarizes an example compilation pass.
type AdornResult struct {
	// Files lists single-example files written relative to ExamplesDir.
	Files []string

	// Scenarios is the number of grouped scenarios written.
	Scenarios int

	// Errors collects per-bundle compilation failures.
	Errors []error
}

// Adorn compiles flat and grouped examples for every discovered bundle.
// A grouped-example collision aborts before any grouped output is written.
func Adorn(ctx context.Context, opts Options) (*AdornResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bundles, err := discoverBundles(opts)
	if err != nil {
		return nil, err
	}
	output.Info("adorning examples", "bundles", len(bundles))

	compiler := &examples.Compiler{Provider: opts.Provider}
	single := compiler.Compile(bundles, opts.ExamplesDir)

	result := &AdornResult{Files: single.Files, Errors: single.Errors}

	groups, err := examples.DiscoverGroups(bundles)
	if err != nil {
		// Collision: halt before writing any grouped output.
		return result, err
	}

	count, err := (&examples.GroupCompiler{Provider: opts.Provider}).CompileGroups(groups, opts.ExamplesDir)
	result.Scenarios = count
	if err != nil {
		return result, err
	}

	output.Print(output.FormatSummary(fmt.Sprintf(
		"adorned %d example files and %d scenarios (%d errors)",
		len(result.Files), result.Scenarios, len(result.Errors))) + "\n")
	return result, nil
}

// ValidateResult summarizes a validation pass over compiled examples.
type ValidateResult struct {
	// Results holds one entry per validated example directory.
	Results []*provision.Result
}

// Failed returns the directories whose validation failed.
func (v *ValidateResult) Failed() []string {
	var failed []string
	for _, r := range v.Results {
		if !r.OK() {
			failed = append(failed, r.Dir)
		}
	}
	return failed
}

// Validate runs the provisioning tool against every compiled example
// project under ExamplesDir.
func Validate(ctx context.Context, opts Options) (*ValidateResult, error) {
	dirs, err := exampleProjectDirs(opts.ExamplesDir)
	if err != nil {
		return nil, err
	}
	output.Info("validating examples", "projects", len(dirs))

	runner := provision.NewRunner(opts.Terraform)
	result := &ValidateResult{}

	for _, dir := range dirs {
		var res *provision.Result
		err := output.RunWithSpinner(ctx, func() error {
			res = runner.Validate(ctx, dir)
			return nil
		}, output.WithTitle("Validating "+filepath.Base(dir)+"..."))
		if err != nil {
			return result, err
		}
		result.Results = append(result.Results, res)

		status := output.StatusWritten
		if !res.OK() {
			status = output.StatusFailed
		}
		output.Print(output.FormatDocLine("example", filepath.Base(dir), status) + "\n")
	}
	return result, nil
}

// exampleProjectDirs finds compiled example projects: directories under the
// examples output root containing a main.tf or provider.tf.
func exampleProjectDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root && os.IsNotExist(err) {
				return filepath.SkipAll
			}
			return errors.NewIOError("walk", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		for _, marker := range []string{"main.tf", "provider.tf"} {
			if _, statErr := os.Stat(filepath.Join(path, marker)); statErr == nil {
				dirs = append(dirs, path)
				return filepath.SkipDir
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(dirs)
	return dirs, nil
}
