// Package main provides the CLI entrypoint for crouton.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	globalOpts struct {
		verbose bool
		theme   string
		fps     int
		noSound bool
		mirror  bool
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "crouton",
	Short: "Toast notifications for terminal applications",
	Long: `crouton renders transient toast notifications inside bubbletea
applications: short messages that slide in, wait, and dismiss themselves.

The library lives under pkg/toast and this binary is its showcase.
Running crouton without a subcommand launches the interactive demo.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		return nil
	},
	// Default to the demo when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.theme, "theme", "",
		"Theme to load on startup (bundled or user theme name)")
	rootCmd.PersistentFlags().IntVar(&globalOpts.fps, "fps", 0,
		"Animation frame rate (0=default)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.noSound, "no-sound", false,
		"Disable toast chimes")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.mirror, "mirror", false,
		"Mirror toasts to the desktop notification daemon")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
