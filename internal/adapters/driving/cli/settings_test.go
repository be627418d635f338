package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

func TestSettingsCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, 3)
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"get", "set", "reset"}, names)
}

func TestSettingsGet_ShowsDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "get")

	requireNoError(t, err, out)
	assert.Contains(t, out, "Fuzziness: 0.30")
	assert.Contains(t, out, "DevTools URL: "+domain.DefaultDevToolsURL)
	assert.Contains(t, out, "(platform default)")
}

func TestSettingsSet_Fuzziness(t *testing.T) {
	stack := newTestStack()
	SetServices(stack.services())
	defer SetServices(nil)

	out, err := execute(t, "settings", "set", "fuzziness", "0.5")

	requireNoError(t, err, out)
	assert.Contains(t, out, "fuzziness set to 0.5")
	got, err := stack.settings.Get()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got.Fuzziness, 1e-9)
}

func TestSettingsSet_StringAndIntKeys(t *testing.T) {
	stack := newTestStack()
	SetServices(stack.services())
	defer SetServices(nil)

	out, err := execute(t, "settings", "set", "devtools_url", "http://localhost:9333")
	requireNoError(t, err, out)
	out, err = execute(t, "settings", "set", "debounce_ms", "80")
	requireNoError(t, err, out)

	got, err := stack.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9333", got.Browser.DevToolsURL)
	assert.Equal(t, 80, got.DebounceMs)
}

func TestSettingsSet_Rejects(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown key", args: []string{"settings", "set", "colour", "red"}},
		{name: "fuzziness out of range", args: []string{"settings", "set", "fuzziness", "1.5"}},
		{name: "not a number", args: []string{"settings", "set", "fuzziness", "high"}},
		{name: "history above capacity", args: []string{"settings", "set", "history_max", "9000"}},
		{name: "negative debounce", args: []string{"settings", "set", "debounce_ms", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsReset(t *testing.T) {
	stack := newTestStack()
	SetServices(stack.services())
	defer SetServices(nil)

	require.NoError(t, stack.settings.SetFuzziness(0.8))

	out, err := execute(t, "settings", "reset")

	requireNoError(t, err, out)
	assert.Contains(t, out, "Settings restored to defaults.")
	got, err := stack.settings.Get()
	require.NoError(t, err)
	assert.InDelta(t, domain.DefaultFuzziness, got.Fuzziness, 1e-9)
}

func TestSettingKeys_Sorted(t *testing.T) {
	keys := settingKeys()
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "fuzziness")
}
