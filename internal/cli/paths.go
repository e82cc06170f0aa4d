package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axle-labs/axle/internal/plugin"
)

var (
	pathsPlugin string
	pathsCwd    string
)

func init() {
	pathsCmd.Flags().StringVar(&pathsPlugin, "plugin", "", "Resolve paths for a single plugin instead of all active plugins")
	pathsCmd.Flags().StringVar(&pathsCwd, "cwd", "", "Resolve project overrides against this directory instead of the working directory")
	rootCmd.AddCommand(pathsCmd)
}

var pathsCmd = &cobra.Command{
	Use:       "paths <tools|hooks|commands>",
	Short:     "Print resolved entry-point paths",
	Long:      `Print the absolute paths of the tool, hook, or command modules in effect, one per line.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"tools", "hooks", "commands"},
	RunE:      runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	cwd, err := workingDir(cmd)
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	var resolve func(*plugin.InstalledPlugin) []string
	switch args[0] {
	case "tools":
		resolve = plugin.ToolPaths
	case "hooks":
		resolve = plugin.HookPaths
	case "commands":
		resolve = plugin.CommandPaths
	default:
		return fmt.Errorf("unknown category %q (want tools, hooks, or commands)", args[0])
	}

	active, err := plugin.ListActive(cwd)
	if err != nil {
		return fmt.Errorf("listing active plugins: %w", err)
	}

	for _, p := range active {
		if pathsPlugin != "" && p.Name != pathsPlugin {
			continue
		}
		for _, path := range resolve(p) {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	}
	return nil
}
