// Package cli provides the tabfind command line.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driving"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Options carries the global flags to the service builder.
type Options struct {
	// ConfigDir overrides the configuration directory.
	ConfigDir string

	// DevToolsURL overrides browser.devtools_url.
	DevToolsURL string

	// ProfileDir overrides browser.profile_dir.
	ProfileDir string

	// Demo replaces the browser with built-in sample data.
	Demo bool
}

// Services holds the core services a command may use.
// Any field may be nil when the builder could not provide it.
type Services struct {
	Settings    driving.SettingsService
	Search      driving.SearchService
	Actions     driving.ResultActionService
	Coordinator driving.QueryCoordinator
	Refresher   driving.Refresher

	// Watch runs the browser change watchers until ctx is done,
	// reporting which source changed.
	Watch func(ctx context.Context, onChange func(domain.SourceKind))

	// LogDir receives the log file while the TUI owns the terminal.
	LogDir string

	// Close releases resources such as the journal database.
	Close func() error
}

// Builder constructs services from the global flags.
type Builder func(opts Options) (*Services, error)

var (
	builder        Builder
	activeServices *Services
	options        Options
	verbose        bool
)

// Package-level service handles, populated before any command runs.
var (
	settingsService  driving.SettingsService
	searchService    driving.SearchService
	actionService    driving.ResultActionService
	coordinator      driving.QueryCoordinator
	refresherService driving.Refresher
)

var rootCmd = &cobra.Command{
	Use:   "tabfind",
	Short: "Fuzzy launcher for browser tabs, bookmarks and history",
	Long: `tabfind searches your browser's open tabs, bookmarks, history and recently
closed tabs as you type, tolerating typos, and switches to or opens the result.

Run without a subcommand to start the interactive launcher. The browser must be
started with --remote-debugging-port=9222 (or see --devtools).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.RunE = runTUI
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&options.ConfigDir, "config-dir", "", "configuration directory (default ~/.tabfind)")
	rootCmd.PersistentFlags().StringVar(&options.DevToolsURL, "devtools", "", "browser remote debugging URL")
	rootCmd.PersistentFlags().StringVar(&options.ProfileDir, "profile", "", "browser profile directory")
	rootCmd.PersistentFlags().BoolVar(&options.Demo, "demo", false, "use built-in sample data instead of a browser")
}

// SetBuilder registers how services are constructed once flags are parsed.
func SetBuilder(b Builder) {
	builder = b
}

// SetServices installs prebuilt services, bypassing the builder.
func SetServices(s *Services) {
	activeServices = s
	if s == nil {
		settingsService = nil
		searchService = nil
		actionService = nil
		coordinator = nil
		refresherService = nil
		return
	}
	settingsService = s.Settings
	searchService = s.Search
	actionService = s.Actions
	coordinator = s.Coordinator
	refresherService = s.Refresher
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	defer closeServices()
	return rootCmd.Execute()
}

// setup applies logging flags and builds services on first use.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if activeServices != nil || builder == nil || cmd == versionCmd {
		return nil
	}

	built, err := builder(options)
	if err != nil {
		return err
	}
	SetServices(built)
	return nil
}

func closeServices() {
	if activeServices == nil || activeServices.Close == nil {
		return
	}
	if err := activeServices.Close(); err != nil {
		logger.Warn("closing services: %v", err)
	}
}

// errNotConfigured reports a missing service.
func errNotConfigured(name string) error {
	return errors.New(name + " not configured")
}
