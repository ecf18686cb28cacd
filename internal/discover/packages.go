package discover

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/provide-io/plating/internal/bundle"
)

// ManifestFile is the optional per-package manifest declaring the package's
// top-level module directories.
const ManifestFile = "plating.yaml"

// conventionalSubmodules are probed under every module directory in
// addition to the module itself.
var conventionalSubmodules = []string{"components", "resources", "data_sources", "functions"}

// packageManifest mirrors the ManifestFile schema.
type packageManifest struct {
	// Modules lists the package's top-level module directories, relative
	// to the package root.
	Modules []string `yaml:"modules"`
}

// DiscoverAll enumerates installed packages under each site directory and
// discovers bundles in every module they declare. A shared visited set keyed
// by resolved filesystem directory guarantees the same physical directory is
// never scanned twice even when reachable through multiple module names.
//
// Failures resolving any one package or module never abort the scan: the
// candidate is skipped and the remaining candidates are attempted
// independently.
func DiscoverAll(sites []string) []*bundle.Bundle {
	visited := newVisitedSet()

	var bundles []*bundle.Bundle
	for _, site := range sites {
		entries, err := os.ReadDir(site)
		if err != nil {
			logSkip("site", site, err)
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			pkg := filepath.Join(site, e.Name())
			bundles = append(bundles, discoverInstalledPackage(pkg, visited)...)
		}
	}
	return bundles
}

// discoverInstalledPackage scans one installed package: every declared
// module directory plus the conventional submodules of each.
func discoverInstalledPackage(pkg string, visited *visitedSet) []*bundle.Bundle {
	var bundles []*bundle.Bundle
	for _, mod := range moduleDirs(pkg) {
		for _, dir := range append([]string{mod}, submoduleCandidates(mod)...) {
			found, err := discoverPackage(dir, visited)
			if err != nil {
				logSkip("module", dir, err)
				continue
			}
			bundles = append(bundles, found...)
		}
	}
	return bundles
}

// moduleDirs resolves a package's top-level module directories from its
// manifest, falling back to the package root itself when no manifest is
// present or the manifest is unreadable.
func moduleDirs(pkg string) []string {
	data, err := os.ReadFile(filepath.Join(pkg, ManifestFile))
	if err != nil {
		return []string{pkg}
	}

	var manifest packageManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		logSkip("manifest", filepath.Join(pkg, ManifestFile), err)
		return []string{pkg}
	}
	if len(manifest.Modules) == 0 {
		return []string{pkg}
	}

	dirs := make([]string, 0, len(manifest.Modules))
	for _, m := range manifest.Modules {
		dirs = append(dirs, filepath.Join(pkg, m))
	}
	return dirs
}

// submoduleCandidates returns the conventional submodule directories of a
// module that exist on disk.
func submoduleCandidates(mod string) []string {
	var dirs []string
	for _, name := range conventionalSubmodules {
		dir := filepath.Join(mod, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
