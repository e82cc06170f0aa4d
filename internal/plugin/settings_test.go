package plugin

import (
	"path/filepath"
	"testing"
)

func TestMergeSettings(t *testing.T) {
	global := map[string]any{"a": 1, "b": 2}
	project := map[string]any{"b": 3, "c": 4}

	merged := mergeSettings(global, project)
	if merged["a"] != 1 || merged["b"] != 3 || merged["c"] != 4 {
		t.Errorf("merged = %v, want {a:1 b:3 c:4}", merged)
	}
	if global["b"] != 2 {
		t.Error("inputs must not be mutated")
	}
}

func TestSettingsForMissingEverything(t *testing.T) {
	t.Setenv("AXLE_HOME", t.TempDir())

	settings, err := SettingsFor("ghost", t.TempDir())
	if err != nil {
		t.Fatalf("missing settings are not an error: %v", err)
	}
	if len(settings) != 0 {
		t.Errorf("expected empty payload, got %v", settings)
	}
}

func TestSettingsForMergesLayers(t *testing.T) {
	axleHome := t.TempDir()
	t.Setenv("AXLE_HOME", axleHome)
	writeFile(t, filepath.Join(axleHome, "plugins.lock.json"),
		`{"settings": {"foo": {"a": 1, "b": 2}}}`)

	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, ".axle", "plugins.yaml"),
		"settings:\n  foo:\n    b: 3\n    c: 4\n")

	settings, err := SettingsFor("foo", cwd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings["b"] == 2 || settings["b"] == nil {
		t.Errorf("project key must override global key, got b=%v", settings["b"])
	}
	if settings["a"] == nil || settings["c"] == nil {
		t.Errorf("keys from both layers must pass through, got %v", settings)
	}
}
