// Package main provides the CLI entry point for tvsheets.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/tvsheets-go/internal/config"
	"github.com/ukaji3/tvsheets-go/pkg/tvsheets"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
// Every error, including argument and config failures, is logged to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	logger := config.NewLogger(nil, stderr)
	rootCmd := newRootCommand(&logger, stderr)
	rootCmd.SetOut(stdout)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("tvsheets failed")
		return 1
	}
	return 0
}

func newRootCommand(logger *zerolog.Logger, logOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tvsheets",
		Short: "Write the TV show catalog to " + tvsheets.DefaultFileName,
		Long: `tvsheets writes the built-in TV show catalog (episodes and main cast)
to ` + tvsheets.DefaultFileName + ` in the current directory, one sheet per show.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.LoadConfig()
			if err != nil {
				logger.Warn().Err(err).Msgf("Failed to load config, using log level '%s'", config.DefaultLogLevel)
				cfg = nil
			}
			*logger = config.NewLogger(cfg, logOut)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout(), tvsheets.DefaultFileName, *logger)
		},
	}

	rootCmd.AddCommand(newInspectCommand())
	return rootCmd
}

func runExport(out io.Writer, path string, logger zerolog.Logger) error {
	opts := tvsheets.DefaultOptions()
	opts.Logger = logger

	if err := tvsheets.Export(tvsheets.Catalog(), path, opts); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(out, "Excel file '%s' created with all worksheets and dummy data.\n", path)
	return nil
}
