package plugin

import "github.com/axle-labs/axle/internal/home"

// ActivePlugins merges the scanned plugin list with the lock record and
// project overrides into the active set. For each scanned plugin:
//
//  1. It is dropped when the project disables it or its lock record sets
//     enabled=false — either layer alone is authoritative.
//  2. Its feature selection is the first defined of: project override
//     list, lock-record list, the default sentinel.
//
// The result keeps the scanner's dependency-declaration order. The merge
// is a pure function over its three inputs.
func ActivePlugins(scanned []*InstalledPlugin, state *RuntimeState, overrides *ProjectOverrides) []*InstalledPlugin {
	var active []*InstalledPlugin
	for _, p := range scanned {
		if overrides.IsDisabled(p.Name) {
			continue
		}
		st, hasState := state.pluginState(p.Name)
		if hasState && !st.Enabled {
			continue
		}

		resolved := *p
		resolved.Enabled = true
		if list, ok := overrides.Features[p.Name]; ok {
			resolved.Features = SelectionOf(list)
		} else if hasState && st.EnabledFeatures != nil {
			resolved.Features = SelectionOf(st.EnabledFeatures)
		} else {
			resolved.Features = DefaultSelection()
		}
		active = append(active, &resolved)
	}
	return active
}

// ListActive returns the active plugin set for the given working
// directory: a fresh scan of the installation root merged with the lock
// record and the project overrides found under cwd.
func ListActive(cwd string) ([]*InstalledPlugin, error) {
	root, err := home.PluginRoot()
	if err != nil {
		return nil, err
	}
	scanned, err := Scan(root)
	if err != nil {
		return nil, err
	}

	lockPath, err := home.LockPath()
	if err != nil {
		return nil, err
	}
	state, err := LoadState(lockPath)
	if err != nil {
		return nil, err
	}

	return ActivePlugins(scanned, state, LoadOverrides(cwd)), nil
}
