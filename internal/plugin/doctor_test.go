package plugin

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckInstallationNoRoot(t *testing.T) {
	t.Setenv("AXLE_HOME", t.TempDir())
	t.Setenv("AXLE_PLUGINS", "")

	var buf bytes.Buffer
	if err := CheckInstallation(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "[MISS]") {
		t.Errorf("expected a MISS line for the absent root, got:\n%s", buf.String())
	}
}

func TestCheckInstallationReportsProblems(t *testing.T) {
	axleHome := t.TempDir()
	t.Setenv("AXLE_HOME", axleHome)
	t.Setenv("AXLE_PLUGINS", "")

	root := filepath.Join(axleHome, "plugins")
	writeFile(t, filepath.Join(root, "package.json"), `{"dependencies": {
		"ok-plugin": "^1.0.0",
		"old-plugin": "^2.0.0",
		"ghost": "*"
	}}`)

	okDir := installPackage(t, root, "ok-plugin",
		`{"version": "1.2.0", "axle": {"tools": "tools.js"}}`)
	writeFile(t, filepath.Join(okDir, "tools.js"), "")

	installPackage(t, root, "old-plugin",
		`{"version": "1.0.0", "axle": {"tools": "gone.js"}}`)

	var buf bytes.Buffer
	if err := CheckInstallation(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "ok-plugin@1.2.0") {
		t.Errorf("healthy plugin not reported OK:\n%s", out)
	}
	if !strings.Contains(out, "does not satisfy declared") {
		t.Errorf("version mismatch not reported:\n%s", out)
	}
	if !strings.Contains(out, "gone.js") {
		t.Errorf("dangling entry path not reported:\n%s", out)
	}
	if !strings.Contains(out, "ghost is declared but not installed") {
		t.Errorf("uninstalled dependency not reported:\n%s", out)
	}
}

func TestCheckInstallationMalformedRoot(t *testing.T) {
	axleHome := t.TempDir()
	t.Setenv("AXLE_HOME", axleHome)
	t.Setenv("AXLE_PLUGINS", "")
	writeFile(t, filepath.Join(axleHome, "plugins", "package.json"), `broken`)

	var buf bytes.Buffer
	if err := CheckInstallation(&buf); err != nil {
		t.Fatalf("doctor reports rather than fails: %v", err)
	}
	if !strings.Contains(buf.String(), "[FAIL]") {
		t.Errorf("expected a FAIL line, got:\n%s", buf.String())
	}
}
