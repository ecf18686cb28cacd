package bundle

// Kind classifies the component a bundle documents.
type Kind string

const (
	// KindResource is a managed resource.
	KindResource Kind = "resource"

	// KindDataSource is a read-only data source.
	KindDataSource Kind = "data_source"

	// KindFunction is a provider-defined function.
	KindFunction Kind = "function"

	// KindProvider is the provider itself (index page).
	KindProvider Kind = "provider"
)

// kindSegments maps conventional directory names to kinds.
var kindSegments = map[string]Kind{
	"resources":    KindResource,
	"data_sources": KindDataSource,
	"functions":    KindFunction,
}

// ClassifyKind infers a component kind from a slice of path segments.
// The last matching segment wins; paths with no known segment default to
// resource.
func ClassifyKind(segments []string) Kind {
	kind := KindResource
	for _, seg := range segments {
		if k, ok := kindSegments[seg]; ok {
			kind = k
		}
	}
	return kind
}

// KindFromSegment returns the kind a single directory name maps to, and
// whether the name is a known kind segment at all.
func KindFromSegment(name string) (Kind, bool) {
	k, ok := kindSegments[name]
	return k, ok
}

// OutputSubdir returns the documentation output subdirectory for a kind,
// following the registry layout convention.
func (k Kind) OutputSubdir() string {
	switch k {
	case KindDataSource:
		return "data-sources"
	case KindFunction:
		return "functions"
	case KindProvider:
		return "."
	default:
		return "resources"
	}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindDataSource:
		return "Data Sources"
	case KindFunction:
		return "Functions"
	case KindProvider:
		return "Provider"
	default:
		return "Resources"
	}
}

// DisplayOrder is the fixed ordering of kinds inside a capability bucket.
var DisplayOrder = []Kind{KindResource, KindDataSource, KindFunction}
