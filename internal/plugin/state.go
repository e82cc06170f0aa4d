package plugin

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadState reads the persisted lock record at path. A missing file is the
// all-empty default, not an error. Any other read or parse failure
// propagates: a corrupt lock record means global plugin state can no
// longer be trusted.
func LoadState(path string) (*RuntimeState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &RuntimeState{}, nil
		}
		return nil, fmt.Errorf("reading lock record %s: %w", path, err)
	}

	var state RuntimeState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing lock record %s: %w", path, err)
	}
	return &state, nil
}

// pluginState returns the persisted record for name, if any.
func (s *RuntimeState) pluginState(name string) (PluginState, bool) {
	st, ok := s.Plugins[name]
	return st, ok
}

// settingsFor returns the persisted global settings payload for name, or
// nil if none is recorded.
func (s *RuntimeState) settingsFor(name string) map[string]any {
	return s.Settings[name]
}
