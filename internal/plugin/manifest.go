package plugin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/axle-labs/axle/internal/home"
)

// vendorKeys are the recognized package-metadata keys that may carry an
// embedded plugin manifest, in priority order.
var vendorKeys = []string{"axle", "axle-plugin"}

// ReadManifest reads the metadata file of the package installed at
// installPath and extracts its plugin manifest. It returns (nil, nil) when
// the package is not a plugin: the metadata file is missing, or neither
// vendor key is present. A metadata file that exists but cannot be parsed
// is an error; callers decide whether that aborts or isolates.
func ReadManifest(installPath string) (*Manifest, error) {
	metaPath := filepath.Join(installPath, home.PackageFile)
	data, err := os.ReadFile(metaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading package metadata %s: %w", metaPath, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parsing package metadata %s: %w", metaPath, err)
	}

	var raw json.RawMessage
	for _, key := range vendorKeys {
		if v, ok := fields[key]; ok && !isJSONNull(v) {
			raw = v
			break
		}
	}
	if raw == nil {
		return nil, nil
	}

	m, err := parseManifest(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing plugin manifest in %s: %w", metaPath, err)
	}

	if v, ok := fields["version"]; ok {
		// Best effort; a missing or non-string version leaves it empty.
		_ = json.Unmarshal(v, &m.Version)
	}
	return m, nil
}

// parseManifest decodes the vendor-key payload, preserving the declaration
// order of the features object.
func parseManifest(raw json.RawMessage) (*Manifest, error) {
	var body struct {
		Tools    string          `json:"tools"`
		Hooks    string          `json:"hooks"`
		Commands []string        `json:"commands"`
		Features json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}

	m := &Manifest{
		Tools:    body.Tools,
		Hooks:    body.Hooks,
		Commands: body.Commands,
	}

	if len(body.Features) == 0 || isJSONNull(body.Features) {
		return m, nil
	}

	err := forEachObjectKey(body.Features, func(name string, value json.RawMessage) error {
		var def struct {
			Default  bool     `json:"default"`
			Tools    []string `json:"tools"`
			Hooks    []string `json:"hooks"`
			Commands []string `json:"commands"`
		}
		if err := json.Unmarshal(value, &def); err != nil {
			return fmt.Errorf("feature %q: %w", name, err)
		}
		m.Features = append(m.Features, Feature{
			Name:     name,
			Default:  def.Default,
			Tools:    def.Tools,
			Hooks:    def.Hooks,
			Commands: def.Commands,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
