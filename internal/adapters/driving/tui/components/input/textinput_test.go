package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRunes(s *SearchInput, text string) bool {
	changed := false
	for _, r := range text {
		var c bool
		s, _, c = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		changed = changed || c
	}
	return changed
}

func TestNewSearchInput(t *testing.T) {
	s := NewSearchInput(nil)

	require.NotNil(t, s)
	assert.Empty(t, s.Value())
	assert.NotNil(t, s.Init())
}

func TestSearchInput_UpdateReportsChange(t *testing.T) {
	s := NewSearchInput(nil)

	assert.True(t, typeRunes(s, "git"))
	assert.Equal(t, "git", s.Value())

	_, _, changed := s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, changed)

	_, _, changed = s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.True(t, changed)
	assert.Equal(t, "gt", s.Value(), "backspace deletes before the cursor")
}

func TestSearchInput_SetWidth(t *testing.T) {
	s := NewSearchInput(nil)

	s.SetWidth(100)
	assert.Equal(t, 100, s.Width())
	assert.Equal(t, 92, s.textinput.Width)

	s.SetWidth(10)
	assert.Equal(t, 20, s.textinput.Width)
}

func TestSearchInput_ViewShowsPlaceholder(t *testing.T) {
	s := NewSearchInput(nil)

	assert.Contains(t, s.View(), "bookmarks, history")
}
