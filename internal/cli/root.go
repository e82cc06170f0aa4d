package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/axle-labs/axle/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	rootVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` resolves which installed plugins are active for a project,
which of their optional features are enabled, and which tool, hook, and
command modules are therefore in effect.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelError
		if rootVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Log skipped packages and override files to stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// workingDir returns the directory project-level overrides are resolved
// against: the --cwd flag value when set, else the process working directory.
func workingDir(cmd *cobra.Command) (string, error) {
	if flag := cmd.Flags().Lookup("cwd"); flag != nil && flag.Value.String() != "" {
		return flag.Value.String(), nil
	}
	return os.Getwd()
}
