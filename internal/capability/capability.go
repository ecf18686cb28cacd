// Package capability partitions components into the declared capability
// buckets used to build the navigation index.
package capability

import (
	"sort"

	"github.com/provide-io/plating/internal/bundle"
)

// Capability names with fixed semantics.
const (
	// Default is assigned when no subcategory signal is present.
	Default = "Utilities"

	// TestMode is forced for test-only components and always sorts last.
	TestMode = "Test Mode"
)

// Entry pairs a bundle with the signals that decide its capability.
type Entry struct {
	Bundle *bundle.Bundle

	// ComponentOf is the explicit capability declared in the bundle's
	// template frontmatter. Beats SchemaComponentOf.
	ComponentOf string

	// SchemaComponentOf is the capability supplied by the schema
	// collaborator's metadata.
	SchemaComponentOf string

	// TestOnly forces the component into TestMode regardless of any
	// other signal.
	TestOnly bool
}

// Resolve applies the subcategory precedence: test-only wins outright, then
// the explicit declaration, then the schema-supplied one, then the default.
func (e Entry) Resolve() string {
	if e.TestOnly {
		return TestMode
	}
	if e.ComponentOf != "" {
		return e.ComponentOf
	}
	if e.SchemaComponentOf != "" {
		return e.SchemaComponentOf
	}
	return Default
}

// Grouped is the ordered grouping result: capability → kind → bundles.
type Grouped struct {
	// Order lists capability names sorted case-sensitively ascending,
	// with TestMode relocated to the end regardless of lexical position.
	Order []string

	// Buckets maps capability → kind → bundles in input order.
	Buckets map[string]map[bundle.Kind][]*bundle.Bundle
}

// Kinds returns the kinds present in one capability bucket, in the fixed
// display order resource → data_source → function.
func (g *Grouped) Kinds(capability string) []bundle.Kind {
	bucket := g.Buckets[capability]
	var kinds []bundle.Kind
	for _, k := range bundle.DisplayOrder {
		if len(bucket[k]) > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Group partitions entries into capability buckets. Entries resolve their
// capability via the precedence rules; see Entry.Resolve.
func Group(entries []Entry) *Grouped {
	g := &Grouped{Buckets: make(map[string]map[bundle.Kind][]*bundle.Bundle)}

	for _, e := range entries {
		capName := e.Resolve()
		bucket, ok := g.Buckets[capName]
		if !ok {
			bucket = make(map[bundle.Kind][]*bundle.Bundle)
			g.Buckets[capName] = bucket
		}
		bucket[e.Bundle.Kind] = append(bucket[e.Bundle.Kind], e.Bundle)
	}

	g.Order = orderCapabilities(g.Buckets)
	return g
}

// orderCapabilities sorts bucket names ascending and moves TestMode last.
func orderCapabilities(buckets map[string]map[bundle.Kind][]*bundle.Bundle) []string {
	names := make([]string, 0, len(buckets))
	hasTestMode := false
	for name := range buckets {
		if name == TestMode {
			hasTestMode = true
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if hasTestMode {
		names = append(names, TestMode)
	}
	return names
}
