package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/axle-labs/axle/internal/scaffold"
)

var (
	createDescription string
	createOutputDir   string
)

func init() {
	createCmd.Flags().StringVar(&createDescription, "description", "", "Plugin description")
	createCmd.Flags().StringVarP(&createOutputDir, "output", "o", "", "Output directory (default: ./axle-plugin-<name>)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new plugin package skeleton",
	Long: `Generate a plugin package: a package.json carrying the manifest under
the axle vendor key, a base tools module, and one example feature.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	data := scaffold.NewScaffoldData(args[0], createDescription)

	outputDir := createOutputDir
	if outputDir == "" {
		outputDir = filepath.Join(".", data.PackageName)
	}

	result, err := scaffold.Generate(data, outputDir)
	if err != nil {
		return fmt.Errorf("creating plugin %q: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", warning)
	}
	return nil
}
