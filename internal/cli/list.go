package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/axle-labs/axle/internal/plugin"
)

var (
	listJSON bool
	listCwd  string
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listCwd, "cwd", "", "Resolve project overrides against this directory instead of the working directory")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active plugins",
	Long: `List the plugins active for the current project: installed, not disabled
globally or by the project, with their resolved feature selection.`,
	RunE: runList,
}

// listEntry represents an active plugin for display.
type listEntry struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Path     string   `json:"path"`
	Features []string `json:"features"`
}

func runList(cmd *cobra.Command, args []string) error {
	cwd, err := workingDir(cmd)
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	active, err := plugin.ListActive(cwd)
	if err != nil {
		return fmt.Errorf("listing active plugins: %w", err)
	}

	if len(active) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No active plugins.")
		return nil
	}

	var entries []listEntry
	for _, p := range active {
		entries = append(entries, listEntry{
			Name:     p.Name,
			Version:  p.Version,
			Path:     p.InstallPath,
			Features: enabledFeatureNames(p),
		})
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tFEATURES")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		features := "-"
		if len(e.Features) > 0 {
			features = strings.Join(e.Features, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, version, features)
	}
	return w.Flush()
}

// enabledFeatureNames lists the features that contribute entry points for
// this plugin, in manifest-declaration order.
func enabledFeatureNames(p *plugin.InstalledPlugin) []string {
	var names []string
	for _, f := range p.Manifest.Features {
		if p.Features.Explicit() {
			if p.Features.Has(f.Name) {
				names = append(names, f.Name)
			}
		} else if f.Default {
			names = append(names, f.Name)
		}
	}
	return names
}
