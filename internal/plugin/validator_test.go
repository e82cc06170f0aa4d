package plugin

import (
	"path/filepath"
	"testing"
)

func TestValidateGoodManifest(t *testing.T) {
	result, err := Validate([]byte(`{
		"tools": "tools.js",
		"commands": ["cmds/a.md"],
		"features": {
			"beta": {"default": true, "tools": ["beta-tool.js"]}
		}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid, got issues: %+v", result.Issues)
	}
}

func TestValidateRejectsWrongTypes(t *testing.T) {
	result, err := Validate([]byte(`{"tools": 42, "unknown": true}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected validation issues")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidatePackageWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"version": "1.0.0"}`)

	result, err := ValidatePackage(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Error("a package without a manifest validates trivially")
	}
}

func TestValidatePackageMissingDir(t *testing.T) {
	result, err := ValidatePackage(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Error("absence is not a validation failure")
	}
}
