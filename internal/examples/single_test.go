package examples

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/plating/internal/bundle"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func mkBundle(t *testing.T, name string, kind bundle.Kind) *bundle.Bundle {
	t.Helper()
	b, err := bundle.New(name, t.TempDir(), kind)
	require.NoError(t, err)
	return b
}

func testProvider() ProviderSpec {
	return ProviderSpec{Name: "pyvider", Source: "provide-io/pyvider", Version: ">= 0.1.0"}
}

func TestProviderBlock(t *testing.T) {
	block := testProvider().ProviderBlock()
	assert.Contains(t, block, "required_providers")
	assert.Contains(t, block, `source = "provide-io/pyvider"`)
	assert.Contains(t, block, `version = ">= 0.1.0"`)
	assert.Contains(t, block, `provider "pyvider" {}`)

	t.Run("defaults source and omits empty version", func(t *testing.T) {
		block := ProviderSpec{Name: "null"}.ProviderBlock()
		assert.Contains(t, block, `source = "hashicorp/null"`)
		assert.NotContains(t, block, "version =")
	})
}

func TestDescriptionFromExample(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"single hash comment", "# Creates a basic bucket\nresource \"b\" \"x\" {}", "Creates a basic bucket"},
		{"double hash skipped", "## Section\n# Real description\n", "Real description"},
		{"no comment falls back", "resource \"b\" \"x\" {}", "fallback"},
		{"empty comment falls back", "#\n#   \n", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, descriptionFromExample(tt.src, "fallback"))
		})
	}
}

func TestCompile(t *testing.T) {
	t.Run("end to end for one flat example", func(t *testing.T) {
		b := mkBundle(t, "bucket", bundle.KindResource)
		writeFile(t, filepath.Join(b.ExamplesDir(), "basic.tf"), `resource "bucket" "x" {}`)

		out := t.TempDir()
		res := (&Compiler{Provider: testProvider()}).Compile([]*bundle.Bundle{b}, out)
		require.Empty(t, res.Errors)

		mainTF, err := os.ReadFile(filepath.Join(out, "resources", "bucket", "basic", "main.tf"))
		require.NoError(t, err)
		assert.Contains(t, string(mainTF), "required_providers")
		assert.Contains(t, string(mainTF), `resource "bucket" "x" {}`)

		readme, err := os.ReadFile(filepath.Join(out, "resources", "bucket", "basic", "README.md"))
		require.NoError(t, err)
		assert.Contains(t, string(readme), "terraform apply")

		assert.ElementsMatch(t, []string{
			"resources/bucket/basic/main.tf",
			"resources/bucket/basic/README.md",
		}, res.Files)
	})

	t.Run("bundle without examples contributes nothing", func(t *testing.T) {
		b := mkBundle(t, "empty", bundle.KindResource)

		res := (&Compiler{Provider: testProvider()}).Compile([]*bundle.Bundle{b}, t.TempDir())
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Files)
	})

	t.Run("kind filter", func(t *testing.T) {
		res := mkBundle(t, "res", bundle.KindResource)
		writeFile(t, filepath.Join(res.ExamplesDir(), "a.tf"), "x")
		fn := mkBundle(t, "fn", bundle.KindFunction)
		writeFile(t, filepath.Join(fn.ExamplesDir(), "b.tf"), "y")

		out := t.TempDir()
		result := (&Compiler{Provider: testProvider()}).Compile(
			[]*bundle.Bundle{res, fn}, out, bundle.KindFunction)
		require.Empty(t, result.Errors)

		assert.Len(t, result.Files, 2)
		for _, f := range result.Files {
			assert.Contains(t, f, "functions/fn/")
		}
	})

	t.Run("grouped scenario dirs are ignored", func(t *testing.T) {
		b := mkBundle(t, "bucket", bundle.KindResource)
		writeFile(t, filepath.Join(b.ExamplesDir(), "full_stack", "main.tf"), "grouped")

		res := (&Compiler{Provider: testProvider()}).Compile([]*bundle.Bundle{b}, t.TempDir())
		assert.Empty(t, res.Files)
	})
}
