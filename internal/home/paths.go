package home

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/axle-labs/axle/internal/branding"
)

// Directory and file name constants under ~/.axle.
const (
	PluginsDir   = "plugins"
	ModulesDir   = "node_modules"
	LockFile     = "plugins.lock.json"
	PackageFile  = "package.json"
	ConfigFile   = "config.yaml"
	OverrideFile = "plugins"
)

// overrideDirs are the project-local hidden directories searched for
// override files, in priority order.
var overrideDirs = []string{".axle", ".agents"}

// Root returns the base directory for all persisted state.
// It checks the AXLE_HOME environment variable first,
// then falls back to ~/.axle.
func Root() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// PluginRoot returns the plugin installation root directory.
// It checks the AXLE_PLUGINS environment variable first,
// then falls back to ~/.axle/plugins.
func PluginRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("PLUGINS")); v != "" {
		return v, nil
	}
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, PluginsDir), nil
}

// LockPath returns the path to the global plugin lock record.
func LockPath() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, LockFile), nil
}

// ModulesRoot returns the directory holding installed plugin packages
// (<pluginRoot>/node_modules).
func ModulesRoot() (string, error) {
	root, err := PluginRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ModulesDir), nil
}

// RootPackagePath returns the path to the dependency-declaration file at
// the plugin installation root (<pluginRoot>/package.json).
func RootPackagePath() (string, error) {
	root, err := PluginRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, PackageFile), nil
}

// OverrideCandidates returns the ordered list of project override file
// paths searched under cwd. YAML variants are preferred over JSON within
// each directory.
func OverrideCandidates(cwd string) []string {
	var candidates []string
	for _, dir := range overrideDirs {
		candidates = append(candidates,
			filepath.Join(cwd, dir, OverrideFile+".yaml"),
			filepath.Join(cwd, dir, OverrideFile+".json"),
		)
	}
	return candidates
}
