package main

import (
	"github.com/spf13/cobra"

	"github.com/crouton-dev/crouton/internal/demo"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive toast demo",
	Long: `Launch the interactive demo for exercising toast notifications.

The demo provides:
  - Scenarios covering levels, positions, queueing and stacking
  - A compose mode for showing arbitrary toast text
  - Theme cycling with hot reload of user theme files
  - Optional sound chimes and desktop notification mirroring
  - An event feed recording every toast lifecycle

Key bindings:
  j/k, ↑/↓    Navigate scenarios
  enter       Run selected scenario
  i           Compose a toast
  h           Hide the oldest toast
  H           Hide all toasts
  a           Toggle activity spinner
  p           Cycle default position
  t           Cycle theme
  f           Toggle queueing
  s           Toggle sound
  d           Toggle desktop mirroring
  e           Export the event feed
  ?           Show help
  q           Quit`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	return demo.Run(demo.RunOptions{
		Theme:  globalOpts.theme,
		FPS:    globalOpts.fps,
		Sound:  !globalOpts.noSound,
		Mirror: globalOpts.mirror,
		Logger: logger,
	})
}
