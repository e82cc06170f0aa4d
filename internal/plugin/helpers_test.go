package plugin

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates path (and its parents) with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// installPackage writes a package.json for name under root/node_modules
// and returns the package's install path.
func installPackage(t *testing.T, root, name, packageJSON string) string {
	t.Helper()
	dir := filepath.Join(root, "node_modules", name)
	writeFile(t, filepath.Join(dir, "package.json"), packageJSON)
	return dir
}

// declareDependencies writes a root package.json declaring the given
// packages, in order, with spec "*".
func declareDependencies(t *testing.T, root string, names ...string) {
	t.Helper()
	deps := ""
	for i, n := range names {
		if i > 0 {
			deps += ", "
		}
		deps += `"` + n + `": "*"`
	}
	writeFile(t, filepath.Join(root, "package.json"), `{"dependencies": {`+deps+`}}`)
}
