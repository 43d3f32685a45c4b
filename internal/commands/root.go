package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/aoiro/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var debug bool
	var booksDir string

	rootCmd := &cobra.Command{
		Use:     "aoiro",
		Short:   "Double-entry bookkeeping and blue-return filing for sole proprietors",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&booksDir, "books", "C", ".", "books directory")

	open := func() (*books, error) {
		return openBooks(booksDir)
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newAccountCommand(open),
		newJournalCommand(open),
		newAssetCommand(open),
		newReportCommand(open),
	)

	return rootCmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
