/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Running "verse" with no subcommand starts the interactive lookup session.
// PersistentPreRunE validates the output flag, configures diagnostic logging
// and loads config, so every subcommand sees the same resolved settings.

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/jpl-au/verse/internal/config"
	"github.com/jpl-au/verse/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "verse",
	Short: "Look up scripture verses from a plain-text corpus",
	Long: `Look up a verse by book, chapter and verse.

With no arguments verse starts an interactive session that prompts for each
part of the reference. Type EXIT at any prompt to quit, or RESET at the
chapter or verse prompt to start over.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	RunE:          runSession,
	PersistentPreRunE: func(c *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		if c.Flags().Changed("width") && (width < config.MinWidth || width > config.MaxWidth) {
			return fmt.Errorf("%w: --width must be between %d and %d", config.ErrInvalidValue, config.MinWidth, config.MaxWidth)
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(c.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

		c2, err := config.Load()
		if err != nil {
			return fmt.Errorf("config load: %w", err)
		}
		cfg = c2
		return nil
	},
}

// Execute runs the root command and exits with status 1 on error. The audit
// log is opened first and closed before exit.
func Execute() {
	os.Exit(run())
}

func run() int {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
