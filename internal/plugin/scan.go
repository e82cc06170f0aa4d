package plugin

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/axle-labs/axle/internal/home"
)

// Scan enumerates the packages declared as dependencies of the plugin
// installation root and returns one InstalledPlugin per package that
// carries a readable plugin manifest, in dependency-declaration order.
//
// A missing root package.json or a missing install directory is a normal
// "no plugins installed" state and yields an empty result. An unparsable
// root package.json is a hard failure: the installation itself is broken.
// Per-package manifest failures are isolated — the broken package is
// skipped with a warning and the scan continues.
func Scan(pluginRoot string) ([]*InstalledPlugin, error) {
	rootPkg := filepath.Join(pluginRoot, home.PackageFile)
	data, err := os.ReadFile(rootPkg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", rootPkg, err)
	}

	names, err := dependencyNames(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", rootPkg, err)
	}

	modulesDir := filepath.Join(pluginRoot, home.ModulesDir)
	var plugins []*InstalledPlugin
	seen := make(map[string]bool)

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		installPath := filepath.Join(modulesDir, name)
		m, err := ReadManifest(installPath)
		if err != nil {
			slog.Warn("skipping plugin with unreadable manifest", "plugin", name, "error", err)
			continue
		}
		if m == nil {
			// An ordinary dependency, not a plugin.
			continue
		}

		plugins = append(plugins, &InstalledPlugin{
			Name:        name,
			Version:     m.Version,
			InstallPath: installPath,
			Manifest:    m,
			Features:    DefaultSelection(),
		})
	}

	return plugins, nil
}

// dependencyNames extracts the dependency package names from a root
// package.json, in declaration order. An absent dependencies object means
// no dependencies.
func dependencyNames(data []byte) ([]string, error) {
	var root struct {
		Dependencies json.RawMessage `json:"dependencies"`
	}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Dependencies) == 0 || isJSONNull(root.Dependencies) {
		return nil, nil
	}

	var names []string
	err := forEachObjectKey(root.Dependencies, func(name string, _ json.RawMessage) error {
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// DependencySpecs returns the dependency name → version-spec mapping from
// the root package.json, in declaration order of the names slice. Used by
// the doctor to cross-check installed versions against declared ranges.
func DependencySpecs(pluginRoot string) (names []string, specs map[string]string, err error) {
	rootPkg := filepath.Join(pluginRoot, home.PackageFile)
	data, err := os.ReadFile(rootPkg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("reading %s: %w", rootPkg, err)
	}

	var root struct {
		Dependencies json.RawMessage `json:"dependencies"`
	}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", rootPkg, err)
	}
	if len(root.Dependencies) == 0 || isJSONNull(root.Dependencies) {
		return nil, nil, nil
	}

	specs = make(map[string]string)
	err = forEachObjectKey(root.Dependencies, func(name string, value json.RawMessage) error {
		var spec string
		if err := json.Unmarshal(value, &spec); err != nil {
			return fmt.Errorf("dependency %q: %w", name, err)
		}
		names = append(names, name)
		specs[name] = spec
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", rootPkg, err)
	}
	return names, specs, nil
}
