package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axle-labs/axle/internal/plugin"
)

var settingsCwd string

func init() {
	settingsCmd.Flags().StringVar(&settingsCwd, "cwd", "", "Resolve project overrides against this directory instead of the working directory")
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings <plugin>",
	Short: "Print merged settings for a plugin",
	Long: `Print the settings payload for one plugin as JSON: the global settings
from the lock record overlaid with the project-level settings.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	cwd, err := workingDir(cmd)
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	settings, err := plugin.SettingsFor(args[0], cwd)
	if err != nil {
		return fmt.Errorf("resolving settings for %q: %w", args[0], err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
