package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrDiscovery indicates a package or module could not be resolved during
	// bundle discovery. Non-fatal: the package contributes nothing.
	ErrDiscovery = errors.New("discovery miss")

	// ErrAssetMissing indicates a bundle has no template or examples.
	// Non-fatal: callers skip the bundle.
	ErrAssetMissing = errors.New("bundle asset missing")

	// ErrRender indicates a template syntax or execution failure.
	ErrRender = errors.New("render failure")

	// ErrCollision indicates two bundles contributed the same component or
	// fixture path to one grouped scenario. Fatal to the discovery pass.
	ErrCollision = errors.New("example collision")

	// ErrFileSystem indicates a filesystem read or write failed.
	ErrFileSystem = errors.New("filesystem failure")
)
