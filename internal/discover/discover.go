// Package discover locates documentation bundles inside installed component
// packages.
package discover

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/provide-io/plating/internal/bundle"
	"github.com/provide-io/plating/internal/errors"
	"github.com/provide-io/plating/internal/output"
)

// DiscoverPackage recursively searches one package root for bundle
// directories (marker suffix), skipping hidden directories. Each hit is
// expanded for multi-component and per-function sub-bundles. The returned
// order is unspecified; callers needing determinism must sort.
func DiscoverPackage(root string) ([]*bundle.Bundle, error) {
	visited := newVisitedSet()
	return discoverPackage(root, visited)
}

func discoverPackage(root string, visited *visitedSet) ([]*bundle.Bundle, error) {
	if !visited.Add(root) {
		return nil, nil
	}

	var bundles []*bundle.Bundle

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				// Unresolvable package: contributes nothing.
				return filepath.SkipAll
			}
			return errors.NewIOError("walk", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && d.Name() != "." && path != root {
			return filepath.SkipDir
		}
		if !strings.HasSuffix(d.Name(), bundle.Marker) {
			return nil
		}
		// A bundle reachable both through its module and through a probed
		// submodule must contribute exactly once.
		if !visited.Add(path) {
			return filepath.SkipDir
		}

		expanded, err := expandBundle(path, root)
		if err != nil {
			return err
		}
		bundles = append(bundles, expanded...)
		// Bundles do not nest.
		return filepath.SkipDir
	})
	if err != nil {
		return nil, err
	}
	return bundles, nil
}

// expandBundle turns one discovered marker directory into one or more
// bundles: multi-component subdirectories first, then per-function template
// variants, then the plain single bundle.
func expandBundle(dir, root string) ([]*bundle.Bundle, error) {
	name := strings.TrimSuffix(filepath.Base(dir), bundle.Marker)
	kind := classifyPath(dir, root)

	if subs, err := multiComponentDirs(dir); err != nil {
		return nil, err
	} else if len(subs) > 0 {
		bundles := make([]*bundle.Bundle, 0, len(subs))
		for _, sub := range subs {
			subKind := kind
			if k, ok := bundle.KindFromSegment(filepath.Base(sub)); ok {
				subKind = k
			}
			b, err := bundle.New(filepath.Base(sub), sub, subKind)
			if err != nil {
				return nil, err
			}
			bundles = append(bundles, b)
		}
		return bundles, nil
	}

	if kind == bundle.KindFunction {
		if variants, err := functionVariants(name, dir); err != nil {
			return nil, err
		} else if len(variants) > 0 {
			return variants, nil
		}
	}

	b, err := bundle.New(name, dir, kind)
	if err != nil {
		return nil, err
	}
	return []*bundle.Bundle{b}, nil
}

// classifyPath infers a component kind from the path segments between the
// package root and the bundle directory.
func classifyPath(dir, root string) bundle.Kind {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		rel = dir
	}
	return bundle.ClassifyKind(strings.Split(filepath.ToSlash(rel), "/"))
}

// multiComponentDirs lists subdirectories of a bundle directory that each
// hold their own docs/ folder, marking the bundle as a multi-component
// container.
func multiComponentDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewIOError("readdir", dir, err)
	}

	var subs []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		docs := filepath.Join(dir, e.Name(), "docs")
		if info, err := os.Stat(docs); err == nil && info.IsDir() {
			subs = append(subs, filepath.Join(dir, e.Name()))
		}
	}
	return subs, nil
}

// functionVariants expands a function bundle into one bundle per template
// file under docs/, each carrying a direct template reference. The file
// named after the bundle itself stays the plain main template.
func functionVariants(name, dir string) ([]*bundle.Bundle, error) {
	docs := filepath.Join(dir, "docs")
	entries, err := os.ReadDir(docs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewIOError("readdir", docs, err)
	}

	var variants []*bundle.Bundle
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), bundle.TemplateSuffix) {
			continue
		}
		if strings.HasPrefix(e.Name(), bundle.PartialPrefix) {
			continue
		}
		fnName := strings.TrimSuffix(e.Name(), bundle.TemplateSuffix)

		b, err := bundle.New(fnName, dir, bundle.KindFunction)
		if err != nil {
			return nil, err
		}
		if fnName != name {
			b.TemplatePath = filepath.Join(docs, e.Name())
		}
		variants = append(variants, b)
	}

	if len(variants) == 1 && variants[0].Name == name {
		// Only the main template: no per-function expansion.
		return nil, nil
	}
	return variants, nil
}

// visitedSet tracks physical directories already scanned within one
// discovery pass, so the same directory reachable through multiple module
// names is never scanned twice. Threaded explicitly rather than held in
// process-wide state.
type visitedSet struct {
	seen map[string]bool
}

func newVisitedSet() *visitedSet {
	return &visitedSet{seen: make(map[string]bool)}
}

// Add records a directory and reports whether it was new. Paths are keyed
// by their symlink-resolved form when resolvable.
func (v *visitedSet) Add(dir string) bool {
	key := dir
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		key = resolved
	}
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}
	if v.seen[key] {
		return false
	}
	v.seen[key] = true
	return true
}

// logSkip records a non-fatal discovery miss at debug level.
func logSkip(what, path string, err error) {
	output.Debug("discovery skip", "what", what, "path", path, "err", err)
}
