package plugin

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/axle-labs/axle/internal/home"
)

// LoadOverrides searches the ordered override-file candidates under cwd
// and returns the parsed content of the first one that parses. A candidate
// that exists but fails to parse is treated the same as an absent one, so
// a leftover bad file in a higher-priority directory does not suppress all
// overrides. If no candidate parses, the empty default is returned.
func LoadOverrides(cwd string) *ProjectOverrides {
	for _, path := range home.OverrideCandidates(cwd) {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				slog.Warn("skipping unreadable override file", "path", path, "error", err)
			}
			continue
		}

		var o ProjectOverrides
		if strings.HasSuffix(path, ".json") {
			err = json.Unmarshal(data, &o)
		} else {
			err = yaml.Unmarshal(data, &o)
		}
		if err != nil {
			slog.Warn("skipping malformed override file", "path", path, "error", err)
			continue
		}
		return &o
	}
	return &ProjectOverrides{}
}
