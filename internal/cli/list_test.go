package cli

import (
	"testing"

	"github.com/axle-labs/axle/internal/plugin"
)

func TestEnabledFeatureNames(t *testing.T) {
	m := &plugin.Manifest{
		Features: []plugin.Feature{
			{Name: "on", Default: true},
			{Name: "off", Default: false},
		},
	}

	p := &plugin.InstalledPlugin{Manifest: m, Features: plugin.DefaultSelection()}
	names := enabledFeatureNames(p)
	if len(names) != 1 || names[0] != "on" {
		t.Errorf("default sentinel: got %v, want [on]", names)
	}

	p.Features = plugin.SelectionOf([]string{"off"})
	names = enabledFeatureNames(p)
	if len(names) != 1 || names[0] != "off" {
		t.Errorf("explicit selection: got %v, want [off]", names)
	}

	p.Features = plugin.SelectionOf(nil)
	if names = enabledFeatureNames(p); len(names) != 0 {
		t.Errorf("explicit empty selection: got %v, want none", names)
	}
}
