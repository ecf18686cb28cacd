package bundle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name            string
		doc             string
		wantPresent     bool
		wantSubcategory string
		wantBody        string
	}{
		{
			name:            "well-formed block",
			doc:             "---\nsubcategory: Lens\npage_title: bucket\n---\n# bucket\n",
			wantPresent:     true,
			wantSubcategory: "Lens",
			wantBody:        "# bucket\n",
		},
		{
			name:        "no frontmatter",
			doc:         "# bucket\n\nDesc\n",
			wantPresent: false,
			wantBody:    "# bucket\n\nDesc\n",
		},
		{
			name:        "unclosed block is treated as absent",
			doc:         "---\nsubcategory: Lens\n# bucket\n",
			wantPresent: false,
			wantBody:    "---\nsubcategory: Lens\n# bucket\n",
		},
		{
			name:        "delimiter inside body does not open a block",
			doc:         "# bucket\n\n```\n---\nkey: value\n---\n```\n",
			wantPresent: false,
			wantBody:    "# bucket\n\n```\n---\nkey: value\n---\n```\n",
		},
		{
			name:        "empty block",
			doc:         "---\n---\nbody\n",
			wantPresent: true,
			wantBody:    "body\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := ParseFrontmatter(tt.doc)
			assert.Equal(t, tt.wantPresent, fm.Present)
			assert.Equal(t, tt.wantSubcategory, fm.Subcategory())
			assert.Equal(t, tt.wantBody, fm.Body)
		})
	}
}

func TestBoolFlag(t *testing.T) {
	fm := ParseFrontmatter("---\nskip_global_header: true\nskip_global_footer: false\n---\nbody")
	assert.True(t, fm.BoolFlag("skip_global_header"))
	assert.False(t, fm.BoolFlag("skip_global_footer"))
	assert.False(t, fm.BoolFlag("missing"))
}

func TestInjectSubcategory(t *testing.T) {
	t.Run("preserves existing keys verbatim", func(t *testing.T) {
		doc := "---\npage_title: \"bucket resource\"\ndescription: stores things\n---\n# bucket\n"
		out := InjectSubcategory(doc, "Lens")

		assert.Contains(t, out, "page_title: \"bucket resource\"")
		assert.Contains(t, out, "description: stores things")
		assert.Contains(t, out, `subcategory: "Lens"`)

		fm := ParseFrontmatter(out)
		require.True(t, fm.Present)
		assert.Equal(t, "Lens", fm.Subcategory())
		assert.Equal(t, "# bucket\n", fm.Body)
	})

	t.Run("replaces existing subcategory", func(t *testing.T) {
		doc := "---\nsubcategory: Old\n---\nbody"
		out := InjectSubcategory(doc, "New")

		fm := ParseFrontmatter(out)
		assert.Equal(t, "New", fm.Subcategory())
		assert.Equal(t, 1, strings.Count(out, "subcategory:"))
	})

	t.Run("creates block when none present", func(t *testing.T) {
		doc := "# bucket\n\nDesc\n"
		out := InjectSubcategory(doc, "Lens")

		require.True(t, strings.HasPrefix(out, Delimiter+"\n"))
		fm := ParseFrontmatter(out)
		require.True(t, fm.Present)
		assert.Equal(t, "Lens", fm.Subcategory())
		assert.Len(t, fm.Keys, 1)
		assert.Equal(t, doc, fm.Body)
	})
}
