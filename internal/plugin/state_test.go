package plugin

import (
	"path/filepath"
	"testing"
)

func TestLoadStateMissingFile(t *testing.T) {
	state, err := LoadState(filepath.Join(t.TempDir(), "plugins.lock.json"))
	if err != nil {
		t.Fatalf("missing lock record is not an error: %v", err)
	}
	if len(state.Plugins) != 0 || len(state.Settings) != 0 {
		t.Fatalf("expected empty defaults, got %+v", state)
	}
}

func TestLoadStateMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugins.lock.json")
	writeFile(t, path, `{"plugins": }`)

	if _, err := LoadState(path); err == nil {
		t.Fatal("expected error for corrupt lock record")
	}
}

func TestLoadStateFeatureListAbsentVsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugins.lock.json")
	writeFile(t, path, `{
		"plugins": {
			"no-selection": {"enabled": true},
			"empty-selection": {"enabled": true, "enabledFeatures": []}
		}
	}`)

	state, err := LoadState(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if st := state.Plugins["no-selection"]; st.EnabledFeatures != nil {
		t.Error("absent enabledFeatures must stay nil")
	}
	st := state.Plugins["empty-selection"]
	if st.EnabledFeatures == nil || len(st.EnabledFeatures) != 0 {
		t.Error("explicit [] must be a non-nil empty list")
	}
}

func TestLoadStateSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugins.lock.json")
	writeFile(t, path, `{"settings": {"foo": {"a": 1, "b": "two"}}}`)

	state, err := LoadState(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload := state.settingsFor("foo")
	if payload["b"] != "two" {
		t.Errorf("settings payload = %v", payload)
	}
	if state.settingsFor("missing") != nil {
		t.Error("missing settings entry should be nil")
	}
}
