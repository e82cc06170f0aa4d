package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/axle-labs/axle/internal/plugin"
)

func TestNewScaffoldData(t *testing.T) {
	data := NewScaffoldData("git-helper", "")
	if data.PackageName != "axle-plugin-git-helper" {
		t.Errorf("PackageName = %q", data.PackageName)
	}
	if data.Version != "0.1.0" {
		t.Errorf("Version = %q", data.Version)
	}
	if !strings.Contains(data.Description, "git-helper") {
		t.Errorf("default description should mention the name, got %q", data.Description)
	}
}

func TestGenerate(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "axle-plugin-demo")
	data := NewScaffoldData("demo", "A demo plugin")

	result, err := Generate(data, outputDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("generated manifest should validate cleanly: %v", result.Warnings)
	}

	for _, name := range []string{"package.json", "tools.js", "extras-tool.js", "README.md"} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err != nil {
			t.Errorf("expected generated file %s: %v", name, err)
		}
	}

	// The generated package is a readable plugin.
	m, err := plugin.ReadManifest(outputDir)
	if err != nil {
		t.Fatalf("reading generated manifest: %v", err)
	}
	if m == nil || m.Tools != "tools.js" {
		t.Fatalf("generated manifest = %+v", m)
	}
	if m.Feature("extras") == nil {
		t.Error("generated manifest should declare the extras feature")
	}
}

func TestGenerateRefusesNonEmptyDir(t *testing.T) {
	outputDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outputDir, "existing.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Generate(NewScaffoldData("demo", ""), outputDir); err == nil {
		t.Fatal("expected error for non-empty output directory")
	}
}
