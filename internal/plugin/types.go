package plugin

// Manifest is the plugin manifest embedded in a package's metadata under
// one of the recognized vendor keys. Entry paths are relative to the
// package's install directory.
type Manifest struct {
	Tools    string    // base tools module, optional
	Hooks    string    // base hooks module, optional
	Commands []string  // base command definitions, optional
	Features []Feature // optional capability groups, in declaration order
	Version  string    // the owning package's declared version
}

// Feature is a named, independently toggleable capability group within a
// manifest, with its own entry-point lists.
type Feature struct {
	Name     string
	Default  bool // enabled when the plugin has no explicit selection
	Tools    []string
	Hooks    []string
	Commands []string
}

// Feature returns the named feature declaration, or nil if the manifest
// does not declare it.
func (m *Manifest) Feature(name string) *Feature {
	for i := range m.Features {
		if m.Features[i].Name == name {
			return &m.Features[i]
		}
	}
	return nil
}

// FeatureSelection records whether a plugin carries an explicit feature
// selection and, if so, which feature names it enables. The zero value is
// the "no selection" sentinel: resolution falls back to each feature's own
// default flag. An explicit empty selection is a distinct state meaning
// "no features enabled".
type FeatureSelection struct {
	explicit bool
	names    map[string]struct{}
}

// DefaultSelection returns the "no explicit selection" sentinel.
func DefaultSelection() FeatureSelection {
	return FeatureSelection{}
}

// SelectionOf returns an explicit selection of the given feature names.
// A nil or empty slice yields the explicit empty selection, which is not
// the same as DefaultSelection.
func SelectionOf(names []string) FeatureSelection {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return FeatureSelection{explicit: true, names: set}
}

// Explicit reports whether this is an explicit selection rather than the
// default-feature sentinel.
func (s FeatureSelection) Explicit() bool { return s.explicit }

// Has reports whether the named feature is part of an explicit selection.
// It is always false for the default sentinel.
func (s FeatureSelection) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// InstalledPlugin is one resolved plugin from a scan of the installation
// root, carrying its manifest and, after feature resolution, its effective
// feature selection.
type InstalledPlugin struct {
	Name        string
	Version     string
	InstallPath string // absolute path to the package's install directory
	Manifest    *Manifest
	Features    FeatureSelection
	Enabled     bool
}

// PluginState is the persisted per-plugin record in the lock file.
// EnabledFeatures is nil when the user never made an explicit selection;
// an empty non-nil slice is an explicit "no features" choice.
type PluginState struct {
	Enabled         bool     `json:"enabled"`
	EnabledFeatures []string `json:"enabledFeatures,omitempty"`
}

// RuntimeState is the global lock record persisted at
// ~/.axle/plugins.lock.json. A missing file is equivalent to the zero
// value.
type RuntimeState struct {
	Plugins  map[string]PluginState    `json:"plugins"`
	Settings map[string]map[string]any `json:"settings"`
}

// ProjectOverrides is the project-local override file content. Absence of
// all candidate files is equivalent to the zero value.
type ProjectOverrides struct {
	Disabled []string                  `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Features map[string][]string       `json:"features,omitempty" yaml:"features,omitempty"`
	Settings map[string]map[string]any `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// IsDisabled reports whether the project disables the named plugin.
func (o *ProjectOverrides) IsDisabled(name string) bool {
	for _, d := range o.Disabled {
		if d == name {
			return true
		}
	}
	return false
}
