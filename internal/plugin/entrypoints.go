package plugin

import (
	"os"
	"path/filepath"
)

// category selects the entry-point lists of a manifest and its features.
type category struct {
	base    func(m *Manifest) []string
	feature func(f *Feature) []string
}

var (
	toolsCategory = category{
		base: func(m *Manifest) []string {
			if m.Tools == "" {
				return nil
			}
			return []string{m.Tools}
		},
		feature: func(f *Feature) []string { return f.Tools },
	}
	hooksCategory = category{
		base: func(m *Manifest) []string {
			if m.Hooks == "" {
				return nil
			}
			return []string{m.Hooks}
		},
		feature: func(f *Feature) []string { return f.Hooks },
	}
	commandsCategory = category{
		base:    func(m *Manifest) []string { return m.Commands },
		feature: func(f *Feature) []string { return f.Commands },
	}
)

// ToolPaths returns the absolute tool module paths of one active plugin:
// the manifest's base tools entry plus the tools of every enabled feature,
// filtered to files that exist on disk.
func ToolPaths(p *InstalledPlugin) []string {
	return resolvePaths(p, toolsCategory)
}

// HookPaths returns the absolute hook module paths of one active plugin.
func HookPaths(p *InstalledPlugin) []string {
	return resolvePaths(p, hooksCategory)
}

// CommandPaths returns the absolute command definition paths of one active
// plugin.
func CommandPaths(p *InstalledPlugin) []string {
	return resolvePaths(p, commandsCategory)
}

// resolvePaths expands the manifest's base entries plus the entries of
// each enabled feature, in manifest-declaration order. With an explicit
// selection, exactly the named features contribute; selected names the
// manifest does not declare are stale and silently ignored. Without a
// selection, every feature with a true default flag contributes. Declared
// paths that do not exist are dropped; duplicates are kept as-is.
func resolvePaths(p *InstalledPlugin, cat category) []string {
	var paths []string
	paths = appendExisting(paths, p.InstallPath, cat.base(p.Manifest))

	for i := range p.Manifest.Features {
		f := &p.Manifest.Features[i]
		if p.Features.Explicit() {
			if !p.Features.Has(f.Name) {
				continue
			}
		} else if !f.Default {
			continue
		}
		paths = appendExisting(paths, p.InstallPath, cat.feature(f))
	}
	return paths
}

// appendExisting joins each relative entry onto installPath and appends
// those that exist on the filesystem.
func appendExisting(paths []string, installPath string, entries []string) []string {
	for _, rel := range entries {
		abs := filepath.Join(installPath, rel)
		if _, err := os.Stat(abs); err == nil {
			paths = append(paths, abs)
		}
	}
	return paths
}

// AllToolPaths resolves tool paths across every active plugin for cwd,
// concatenated in active-set order.
func AllToolPaths(cwd string) ([]string, error) {
	return allPaths(cwd, ToolPaths)
}

// AllHookPaths resolves hook paths across every active plugin for cwd.
func AllHookPaths(cwd string) ([]string, error) {
	return allPaths(cwd, HookPaths)
}

// AllCommandPaths resolves command paths across every active plugin for cwd.
func AllCommandPaths(cwd string) ([]string, error) {
	return allPaths(cwd, CommandPaths)
}

func allPaths(cwd string, resolve func(*InstalledPlugin) []string) ([]string, error) {
	active, err := ListActive(cwd)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, p := range active {
		paths = append(paths, resolve(p)...)
	}
	return paths, nil
}
