package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabfind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/services"
)

// testStack is a full service stack over the in-memory demo browser.
type testStack struct {
	browser  *memory.Browser
	config   *memory.ConfigStore
	settings *services.SettingsService
	search   *services.SearchService
}

// setupTestServices installs demo-backed services and returns a cleanup func.
func setupTestServices() func() {
	stack := newTestStack()
	SetServices(stack.services())
	return func() { SetServices(nil) }
}

func newTestStack() *testStack {
	browser := memory.NewDemoBrowser()
	config := memory.NewConfigStore()
	settings := services.NewSettingsService(config)

	engine := services.NewSearchEngineState(domain.DefaultFuzziness)
	fetcher := services.NewFetcher(services.Providers{
		Tabs:       browser,
		Bookmarks:  browser,
		History:    browser,
		ClosedTabs: browser,
	}, services.FetchLimits{
		HistoryMaxResults:   domain.DefaultHistoryMaxResults,
		ClosedTabMaxResults: domain.DefaultClosedTabMaxResults,
	})

	return &testStack{
		browser:  browser,
		config:   config,
		settings: settings,
		search:   services.NewSearchService(engine, fetcher, domain.DefaultBrowseLimit),
	}
}

func (s *testStack) services() *Services {
	return &Services{
		Settings: s.settings,
		Search:   s.search,
		Actions:  services.NewResultActionService(s.browser, memory.NewClipboard()),
	}
}

// withBuilder swaps the service builder for one test.
func withBuilder(b Builder) func() {
	oldBuilder := builder
	oldServices := activeServices
	SetServices(nil)
	SetBuilder(b)
	return func() {
		SetBuilder(oldBuilder)
		SetServices(oldServices)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func requireNoError(t *testing.T, err error, out string) {
	t.Helper()
	require.NoError(t, err, "output: %s", out)
}
