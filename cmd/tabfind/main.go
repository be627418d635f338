// Command tabfind is a fuzzy launcher for browser tabs, bookmarks and history.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/custodia-labs/tabfind/internal/adapters/driven/browser/chromium"
	"github.com/custodia-labs/tabfind/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tabfind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tabfind/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/tabfind/internal/adapters/driven/system"
	"github.com/custodia-labs/tabfind/internal/adapters/driving/cli"
	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
	"github.com/custodia-labs/tabfind/internal/core/services"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// watcherRetry is how long the tab watcher waits before reconnecting.
const watcherRetry = 5 * time.Second

func main() {
	cli.SetVersion(version)
	cli.SetBuilder(build)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// journalStore records closed tabs and lists them back.
type journalStore interface {
	driven.ClosedTabStore
	driven.ClosedTabProvider
}

// browserAdapters are the driven adapters for one browser session.
type browserAdapters struct {
	providers services.Providers
	actions   driven.BrowserActions
	clipboard driven.Clipboard
	watch     func(ctx context.Context, onChange func(domain.SourceKind))
	close     func() error
}

// build wires the core services to the configured adapters.
func build(opts cli.Options) (*cli.Services, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("locating config directory: %w", err)
		}
		configDir = dir
	}

	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil || settings == nil {
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}
	if opts.DevToolsURL != "" {
		settings.Browser.DevToolsURL = opts.DevToolsURL
	}
	if opts.ProfileDir != "" {
		settings.Browser.ProfileDir = opts.ProfileDir
	}

	var adapters *browserAdapters
	if opts.Demo {
		adapters = demoAdapters()
	} else {
		adapters, err = chromiumAdapters(*settings, filepath.Join(configDir, "data"))
		if err != nil {
			return nil, err
		}
	}

	engine := services.NewSearchEngineState(settings.Fuzziness)
	fetcher := services.NewFetcher(adapters.providers, services.FetchLimits{
		HistoryMaxResults:   settings.HistoryMaxResults,
		ClosedTabMaxResults: settings.ClosedTabMaxResults,
	})
	actionService := services.NewResultActionService(adapters.actions, adapters.clipboard)
	coordinator := services.NewQueryCoordinator(engine, fetcher, actionService, settingsService,
		services.CoordinatorConfig{
			Debounce:    settings.Debounce(),
			BrowseLimit: settings.BrowseLimit,
		})

	return &cli.Services{
		Settings:    settingsService,
		Search:      services.NewSearchService(engine, fetcher, settings.BrowseLimit),
		Actions:     actionService,
		Coordinator: coordinator,
		Refresher:   services.NewRefresher(engine, fetcher, services.DefaultRefreshInterval),
		Watch:       adapters.watch,
		LogDir:      filepath.Join(configDir, "logs"),
		Close:       adapters.close,
	}, nil
}

// chromiumAdapters talks to a Chromium browser over DevTools and reads its
// profile files. Closed tabs come from the journal the tab watcher writes.
func chromiumAdapters(settings domain.AppSettings, dataDir string) (*browserAdapters, error) {
	profile, err := chromium.NewProfile(settings.Browser.ProfileDir)
	if err != nil {
		return nil, fmt.Errorf("locating browser profile: %w", err)
	}

	var (
		journal      journalStore
		closeJournal = func() error { return nil }
	)
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		logger.Warn("closed tab journal unavailable, keeping it in memory: %v", err)
		journal = memory.NewJournal()
	} else {
		journal = store
		closeJournal = store.Close
	}

	devtools := chromium.NewDevTools(settings.Browser.DevToolsURL)
	bookmarks := profile.Bookmarks()

	watch := func(ctx context.Context, onChange func(domain.SourceKind)) {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			watcher := chromium.NewTargetWatcher(devtools, journal, chromium.ChangeFunc(onChange))
			watcher.RunForever(ctx, watcherRetry)
		}()
		go func() {
			defer wg.Done()
			err := bookmarks.Watch(ctx, func() { onChange(domain.SourceBookmark) })
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("bookmark watcher: %v", err)
			}
		}()
		wg.Wait()
	}

	return &browserAdapters{
		providers: services.Providers{
			Tabs:       devtools,
			Bookmarks:  bookmarks,
			History:    profile.History(),
			ClosedTabs: journal,
		},
		actions:   chromium.NewActions(devtools, journal, system.NewOpener(), settings.SearchURL),
		clipboard: system.NewClipboard(),
		watch:     watch,
		close:     closeJournal,
	}, nil
}

// demoAdapters serve built-in sample data and record actions in memory.
func demoAdapters() *browserAdapters {
	browser := memory.NewDemoBrowser()
	return &browserAdapters{
		providers: services.Providers{
			Tabs:       browser,
			Bookmarks:  browser,
			History:    browser,
			ClosedTabs: browser,
		},
		actions:   browser,
		clipboard: memory.NewClipboard(),
		watch: func(ctx context.Context, _ func(domain.SourceKind)) {
			<-ctx.Done()
		},
		close: func() error { return nil },
	}
}
