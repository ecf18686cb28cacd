package schema

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/plating/internal/bundle"
)

func seedFragment(t *testing.T, dir, subdir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, subdir), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, subdir, name), []byte(content), 0o644))
}

func TestDirRenderer(t *testing.T) {
	dir := t.TempDir()
	seedFragment(t, dir, "resources", "bucket.md", "## Schema\n\n- `name` (String)\n")
	seedFragment(t, dir, "resources", "bucket.meta.yaml", "component_of: Storage\ntest_only: false\n")
	seedFragment(t, dir, "data-sources", "lens.meta.yaml", "test_only: true\n")

	r := NewDirRenderer(dir)
	ctx := context.Background()

	t.Run("serves fragment by kind and name", func(t *testing.T) {
		md, err := r.SchemaToMarkdown(ctx, ComponentRef{Name: "bucket", Kind: bundle.KindResource})
		require.NoError(t, err)
		assert.Contains(t, md, "## Schema")
	})

	t.Run("missing fragment is empty, not an error", func(t *testing.T) {
		md, err := r.SchemaToMarkdown(ctx, ComponentRef{Name: "absent", Kind: bundle.KindResource})
		require.NoError(t, err)
		assert.Empty(t, md)
	})

	t.Run("meta sidecar supplies grouping signals", func(t *testing.T) {
		meta := r.Meta(ComponentRef{Name: "bucket", Kind: bundle.KindResource})
		assert.Equal(t, "Storage", meta.ComponentOf)
		assert.False(t, meta.TestOnly)

		meta = r.Meta(ComponentRef{Name: "lens", Kind: bundle.KindDataSource})
		assert.True(t, meta.TestOnly)
	})

	t.Run("missing meta is the zero value", func(t *testing.T) {
		assert.Equal(t, Metadata{}, r.Meta(ComponentRef{Name: "absent", Kind: bundle.KindFunction}))
	})

	t.Run("no source mapping", func(t *testing.T) {
		_, ok := r.FindSourceFile(ComponentRef{Name: "bucket", Kind: bundle.KindResource})
		assert.False(t, ok)
	})
}

func TestDirRendererEmpty(t *testing.T) {
	r := NewDirRenderer("")

	md, err := r.SchemaToMarkdown(context.Background(), ComponentRef{Name: "x", Kind: bundle.KindResource})
	require.NoError(t, err)
	assert.Empty(t, md)
	assert.Equal(t, Metadata{}, r.Meta(ComponentRef{Name: "x", Kind: bundle.KindResource}))
}
