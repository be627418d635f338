package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tabfind/internal/adapters/driving/tui"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive launcher",
	Long: `Launch the interactive launcher. This is also what tabfind runs with no
subcommand.

Controls:
  type           - Fuzzy search all sources
  ↑/↓, tab       - Move focus
  Enter          - Switch to / open the focused result, or open the typed text
  Ctrl+Y         - Copy the focused URL
  Ctrl+F/Ctrl+G  - Stricter / looser matching (saved on exit)
  Esc            - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if coordinator == nil {
		return errNotConfigured("query coordinator")
	}

	// The alt screen owns the terminal; log lines would corrupt it.
	if activeServices != nil && activeServices.LogDir != "" {
		closer, err := logger.ToFile(activeServices.LogDir)
		if err != nil {
			logger.Warn("logging to file: %v", err)
		} else {
			defer closer.Close()
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if activeServices != nil && activeServices.Watch != nil {
		go activeServices.Watch(ctx, coordinator.Refresh)
	}

	ports := &tui.Ports{
		Coordinator: coordinator,
		Settings:    settingsService,
	}
	if err := tui.Run(ctx, ports); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
