package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/tabfind/internal/logger"
)

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "devtools", "profile", "demo"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"tui", "search", "settings", "mcp", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestRootCmd_DefaultRunsLauncher(t *testing.T) {
	restore := withBuilder(nil)
	defer restore()

	_, err := execute(t)

	assert.ErrorContains(t, err, "query coordinator not configured")
}

func TestSetup_VerboseFlag(t *testing.T) {
	restore := withBuilder(nil)
	defer restore()
	defer func() {
		verbose = false
		logger.SetVerbose(false)
	}()

	_, _ = execute(t, "--verbose", "version")

	assert.True(t, logger.IsVerbose())
}

func TestSetup_BuildsOnce(t *testing.T) {
	calls := 0
	restore := withBuilder(func(Options) (*Services, error) {
		calls++
		return newTestStack().services(), nil
	})
	defer restore()

	_, err := execute(t, "settings", "get")
	assert.NoError(t, err)
	_, err = execute(t, "settings", "get")
	assert.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestCloseServices(t *testing.T) {
	closed := false
	SetServices(&Services{Close: func() error {
		closed = true
		return errors.New("already closed")
	}})
	defer SetServices(nil)

	closeServices()

	assert.True(t, closed)
}
