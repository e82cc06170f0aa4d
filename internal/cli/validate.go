package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axle-labs/axle/internal/plugin"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Validate a plugin package's manifest",
	Long: `Validate the manifest embedded in a package's package.json against the
plugin schema. A package without a manifest validates trivially.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	result, err := plugin.ValidatePackage(args[0])
	if err != nil {
		return fmt.Errorf("validating %s: %w", args[0], err)
	}

	if result.Valid {
		fmt.Fprintln(cmd.OutOrStdout(), "Manifest is valid.")
		return nil
	}

	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest has %d validation issues", len(result.Issues))
}
