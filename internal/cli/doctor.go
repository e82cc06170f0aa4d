package cli

import (
	"github.com/spf13/cobra"

	"github.com/axle-labs/axle/internal/plugin"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of the plugin installation",
	Long: `Report problems discovery silently tolerates: unreadable manifests,
declared-but-missing packages, dangling entry paths, and installed versions
outside their declared range.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return plugin.CheckInstallation(cmd.OutOrStdout())
	},
}
