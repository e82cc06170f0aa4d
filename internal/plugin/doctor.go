package plugin

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/axle-labs/axle/internal/home"
)

// CheckInstallation reports the health of the plugin installation: root
// manifest parseability, lock record parseability, and per-plugin manifest,
// schema, version, and entry-point status. It surfaces the conditions
// resolution silently tolerates (skipped packages, dangling paths, stale
// version ranges) so a human can repair them.
func CheckInstallation(w io.Writer) error {
	root, err := home.PluginRoot()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Plugin installation check:")

	if _, statErr := os.Stat(root); os.IsNotExist(statErr) {
		fmt.Fprintf(w, "  [MISS] %s does not exist (no plugins installed)\n", root)
		return nil
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", root)

	names, specs, err := DependencySpecs(root)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] root package.json is unparsable: %v\n", err)
		return nil
	}
	fmt.Fprintf(w, "  [ OK ] root package.json declares %d dependencies\n", len(names))

	lockPath, err := home.LockPath()
	if err != nil {
		return err
	}
	if _, err := LoadState(lockPath); err != nil {
		fmt.Fprintf(w, "  [FAIL] lock record is unparsable: %v\n", err)
	} else {
		fmt.Fprintf(w, "  [ OK ] lock record is readable\n")
	}

	modulesDir := filepath.Join(root, home.ModulesDir)
	for _, name := range names {
		checkPackage(w, modulesDir, name, specs[name])
	}

	return nil
}

// checkPackage reports the state of a single declared dependency.
func checkPackage(w io.Writer, modulesDir, name, spec string) {
	installPath := filepath.Join(modulesDir, name)
	if _, err := os.Stat(installPath); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s is declared but not installed\n", name)
		return
	}

	m, err := ReadManifest(installPath)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s: manifest unreadable, package is skipped by discovery: %v\n", name, err)
		return
	}
	if m == nil {
		fmt.Fprintf(w, "  [ OK ] %s (ordinary dependency, not a plugin)\n", name)
		return
	}

	fmt.Fprintf(w, "  [ OK ] %s@%s\n", name, m.Version)

	if result, err := ValidatePackage(installPath); err == nil && !result.Valid {
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(w, "  [WARN] %s: manifest schema: %s\n", name, msg)
		}
	}

	checkVersionSpec(w, name, m.Version, spec)

	for _, rel := range declaredEntries(m) {
		if _, err := os.Stat(filepath.Join(installPath, rel)); err != nil {
			fmt.Fprintf(w, "  [WARN] %s: declared entry %s does not exist\n", name, rel)
		}
	}
}

// checkVersionSpec reports when the installed version falls outside the
// declared range. Specs that are not semver ranges ("latest", git URLs)
// are skipped.
func checkVersionSpec(w io.Writer, name, version, spec string) {
	if version == "" || spec == "" {
		return
	}
	constraint, err := semver.NewConstraint(spec)
	if err != nil {
		return
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s: installed version %q is not semver\n", name, version)
		return
	}
	if !constraint.Check(v) {
		fmt.Fprintf(w, "  [WARN] %s: installed %s does not satisfy declared %q\n", name, version, spec)
	}
}

// declaredEntries flattens every entry path a manifest declares, across
// the base entries and all features regardless of enablement.
func declaredEntries(m *Manifest) []string {
	var entries []string
	if m.Tools != "" {
		entries = append(entries, m.Tools)
	}
	if m.Hooks != "" {
		entries = append(entries, m.Hooks)
	}
	entries = append(entries, m.Commands...)
	for _, f := range m.Features {
		entries = append(entries, f.Tools...)
		entries = append(entries, f.Hooks...)
		entries = append(entries, f.Commands...)
	}
	return entries
}
