package render

import "github.com/provide-io/plating/internal/bundle"

// Context is the ephemeral value object passed into one render call.
// Rebuilt per call; never persisted.
type Context struct {
	// ComponentName is the documented component's registered name.
	ComponentName string

	// Kind is the documented component's kind.
	Kind bundle.Kind

	// ProviderName is the provider the component belongs to.
	ProviderName string

	// SchemaMarkdown is the pre-rendered schema section, or "" when the
	// schema collaborator has nothing for this component.
	SchemaMarkdown string

	// Examples maps example keys to raw example source.
	Examples map[string]string

	// Arguments lists function arguments (functions only).
	Arguments []string

	// GlobalPartialsDir, when set, enables global header/footer injection.
	GlobalPartialsDir string
}

// templateData is what the template body sees as its dot value.
type templateData struct {
	Name      string
	Kind      string
	Provider  string
	Arguments []string
}
