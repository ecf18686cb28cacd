package examples

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/plating/internal/bundle"
	"github.com/provide-io/plating/internal/errors"
)

func TestDiscoverGroups(t *testing.T) {
	t.Run("aggregates components and fixtures per scenario", func(t *testing.T) {
		vpc := mkBundle(t, "vpc", bundle.KindResource)
		writeFile(t, filepath.Join(vpc.ExamplesDir(), "full_stack", "main.tf"), `resource "vpc" "v" {}`)
		writeFile(t, filepath.Join(vpc.ExamplesDir(), "full_stack", "fixtures", "net.json"), "{}")

		dns := mkBundle(t, "dns", bundle.KindDataSource)
		writeFile(t, filepath.Join(dns.ExamplesDir(), "full_stack", "main.tf"), `data "dns" "d" {}`)

		groups, err := DiscoverGroups([]*bundle.Bundle{vpc, dns})
		require.NoError(t, err)
		require.Len(t, groups, 1)

		g := groups["full_stack"]
		require.NotNil(t, g)
		assert.Equal(t, []string{"dns", "vpc"}, g.ComponentNames())
		assert.Contains(t, g.Fixtures, "net.json")
		assert.True(t, g.Kinds[bundle.KindResource])
		assert.True(t, g.Kinds[bundle.KindDataSource])
	})

	t.Run("directories without entry file are not groups", func(t *testing.T) {
		b := mkBundle(t, "vpc", bundle.KindResource)
		writeFile(t, filepath.Join(b.ExamplesDir(), "partial", "other.tf"), "x")

		groups, err := DiscoverGroups([]*bundle.Bundle{b})
		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("duplicate component name is a hard error", func(t *testing.T) {
		a := mkBundle(t, "net", bundle.KindResource)
		writeFile(t, filepath.Join(a.ExamplesDir(), "full_stack", "main.tf"), "a")
		b := mkBundle(t, "net", bundle.KindResource)
		writeFile(t, filepath.Join(b.ExamplesDir(), "full_stack", "main.tf"), "b")

		_, err := DiscoverGroups([]*bundle.Bundle{a, b})
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrCollision)
		assert.Contains(t, err.Error(), "full_stack")
		assert.Contains(t, err.Error(), "net")
	})

	t.Run("duplicate fixture path is a hard error", func(t *testing.T) {
		a := mkBundle(t, "vpc", bundle.KindResource)
		writeFile(t, filepath.Join(a.ExamplesDir(), "full_stack", "main.tf"), "a")
		writeFile(t, filepath.Join(a.ExamplesDir(), "full_stack", "fixtures", "net.json"), "{}")

		b := mkBundle(t, "dns", bundle.KindResource)
		writeFile(t, filepath.Join(b.ExamplesDir(), "full_stack", "main.tf"), "b")
		writeFile(t, filepath.Join(b.ExamplesDir(), "full_stack", "fixtures", "net.json"), "{}")

		_, err := DiscoverGroups([]*bundle.Bundle{a, b})
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrCollision)
		assert.Contains(t, err.Error(), "net.json")
		assert.Contains(t, err.Error(), "full_stack")
	})
}

func TestCompileGroups(t *testing.T) {
	vpc := mkBundle(t, "vpc", bundle.KindResource)
	writeFile(t, filepath.Join(vpc.ExamplesDir(), "full_stack", "main.tf"), `resource "vpc" "v" {}`)
	writeFile(t, filepath.Join(vpc.ExamplesDir(), "full_stack", "fixtures", "sub", "net.json"), `{"cidr": "10.0.0.0/16"}`)

	dns := mkBundle(t, "dns", bundle.KindDataSource)
	writeFile(t, filepath.Join(dns.ExamplesDir(), "full_stack", "main.tf"), `data "dns" "d" {}`)

	groups, err := DiscoverGroups([]*bundle.Bundle{vpc, dns})
	require.NoError(t, err)

	out := t.TempDir()
	count, err := (&GroupCompiler{Provider: testProvider()}).CompileGroups(groups, out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	dir := filepath.Join(out, "full_stack")

	provider, err := os.ReadFile(filepath.Join(dir, "provider.tf"))
	require.NoError(t, err)
	assert.Contains(t, string(provider), "required_providers")

	vpcTF, err := os.ReadFile(filepath.Join(dir, "vpc.tf"))
	require.NoError(t, err)
	assert.Equal(t, `resource "vpc" "v" {}`, string(vpcTF))

	fixture, err := os.ReadFile(filepath.Join(dir, "fixtures", "sub", "net.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"cidr": "10.0.0.0/16"}`, string(fixture))

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "- `vpc`")
	assert.Contains(t, string(readme), "- `dns`")
	assert.Contains(t, string(readme), "terraform apply")
}
