package examples

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/provide-io/plating/internal/bundle"
	"github.com/provide-io/plating/internal/errors"
	"github.com/provide-io/plating/internal/output"
)

// Compiler compiles flat, single-component examples into isolated project
// folders.
type Compiler struct {
	Provider ProviderSpec
}

// Result summarizes one compilation pass.
type Result struct {
	// Files lists every file written, relative to the output root.
	Files []string

	// Errors collects per-bundle failures; compilation of the remaining
	// bundles continues past each failure.
	Errors []error
}

// Compile emits one project folder per (bundle, flat example) pair under
// outRoot. kinds, when non-empty, filters which component kinds compile.
// Bundles without flat examples contribute nothing.
func (c *Compiler) Compile(bundles []*bundle.Bundle, outRoot string, kinds ...bundle.Kind) *Result {
	res := &Result{}

	for _, b := range bundles {
		if len(kinds) > 0 && !containsKind(kinds, b.Kind) {
			continue
		}
		if err := c.compileBundle(b, outRoot, res); err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("bundle %s: %w", b.Name, err))
		}
	}
	return res
}

// compileBundle writes every flat example of one bundle.
func (c *Compiler) compileBundle(b *bundle.Bundle, outRoot string, res *Result) error {
	examples, err := b.Examples()
	if err != nil {
		return err
	}
	if len(examples) == 0 {
		return nil
	}

	keys := make([]string, 0, len(examples))
	for k := range examples {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	log := output.BundleLogger(b.Name)
	for _, key := range keys {
		dir := filepath.Join(outRoot, b.Kind.OutputSubdir(), b.Name, key)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewIOError("mkdir", dir, err)
		}

		src := examples[key]
		mainTF := c.Provider.ProviderBlock() + "\n" + src
		mainPath := filepath.Join(dir, "main.tf")
		if err := os.WriteFile(mainPath, []byte(mainTF), 0o644); err != nil {
			return errors.NewIOError("write", mainPath, err)
		}

		readme := c.exampleReadme(b, key, src)
		readmePath := filepath.Join(dir, "README.md")
		if err := os.WriteFile(readmePath, []byte(readme), 0o644); err != nil {
			return errors.NewIOError("write", readmePath, err)
		}

		for _, p := range []string{mainPath, readmePath} {
			rel, relErr := filepath.Rel(outRoot, p)
			if relErr != nil {
				rel = p
			}
			res.Files = append(res.Files, filepath.ToSlash(rel))
		}
		log.Debug("compiled example", "example", key, "dir", dir)
	}
	return nil
}

// exampleReadme generates the per-example README.
func (c *Compiler) exampleReadme(b *bundle.Bundle, key, src string) string {
	fallback := fmt.Sprintf("Usage example for the %s %s.", b.Name, b.Kind)
	desc := descriptionFromExample(src, fallback)

	return fmt.Sprintf(`# %s: %s

%s

## Usage

`+"```sh"+`
terraform init
terraform apply
terraform destroy
`+"```"+`
`, b.Name, key, desc)
}

func containsKind(kinds []bundle.Kind, k bundle.Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
