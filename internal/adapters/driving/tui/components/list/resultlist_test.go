package list

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

func sampleResults(query string, mode domain.Mode) domain.ResultSet {
	rs := domain.NewResultSet(query, mode)
	rs.Results[domain.SourceTab] = []domain.Match{
		{Record: domain.NewRecord(domain.SourceTab, "1", "GitHub", "https://github.com")},
		{Record: domain.NewRecord(domain.SourceTab, "2", "Go Packages", "https://pkg.go.dev")},
	}
	rs.Results[domain.SourceHistory] = []domain.Match{
		{Record: domain.NewRecord(domain.SourceHistory, "9", "Hacker News", "https://news.ycombinator.com")},
	}
	return rs
}

func TestNewResultList(t *testing.T) {
	l := NewResultList(nil)

	require.NotNil(t, l)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, domain.NoFocus, l.Focused())
	assert.Contains(t, l.View(), "Nothing to show")
}

func TestResultList_SectionsInSourceOrder(t *testing.T) {
	l := NewResultList(nil)
	l.SetDimensions(120, 40)
	l.SetResults(sampleResults("", domain.ModeBrowse))

	view := l.View()
	tabs := strings.Index(view, "Open Tabs (2)")
	history := strings.Index(view, "History (1)")
	require.GreaterOrEqual(t, tabs, 0)
	require.GreaterOrEqual(t, history, 0)
	assert.Less(t, tabs, history)
	assert.NotContains(t, view, "Bookmarks")
	assert.Equal(t, 3, l.Count())
}

func TestResultList_NoMatches(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults(domain.NewResultSet("zzz", domain.ModeSearch))

	assert.Contains(t, l.View(), "No matches")
}

func TestResultList_FocusMirrorsIndex(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults(sampleResults("", domain.ModeBrowse))

	l.SetFocused(2)
	rec, ok := l.FocusedRecord()
	require.True(t, ok)
	assert.Equal(t, "Hacker News", rec.Title)

	l.SetFocused(7)
	assert.Equal(t, domain.NoFocus, l.Focused())
	_, ok = l.FocusedRecord()
	assert.False(t, ok)
}

func TestResultList_ShrinkingSetDropsFocus(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults(sampleResults("", domain.ModeBrowse))
	l.SetFocused(2)

	l.SetResults(domain.NewResultSet("x", domain.ModeSearch))
	assert.Equal(t, domain.NoFocus, l.Focused())
}

func TestResultList_ScrollsToFocusedRow(t *testing.T) {
	rs := domain.NewResultSet("", domain.ModeBrowse)
	for i := 0; i < 30; i++ {
		title := "row-" + string(rune('a'+i%26)) + strings.Repeat("x", i/26)
		rs.Results[domain.SourceHistory] = append(rs.Results[domain.SourceHistory],
			domain.Match{Record: domain.NewRecord(domain.SourceHistory, title, title, "https://example.com/"+title)})
	}

	l := NewResultList(nil)
	l.SetDimensions(100, 5)
	l.SetResults(rs)
	l.SetFocused(29)

	view := l.View()
	assert.Contains(t, view, "row-dx")
	assert.NotContains(t, view, "History (30)")
	assert.Len(t, strings.Split(view, "\n"), 5)
}

func TestHighlight_NoQueryRendersPlain(t *testing.T) {
	l := NewResultList(nil)
	out := highlight("GitHub", "", l.styles.Normal, l.styles.Match)
	assert.Contains(t, out, "GitHub")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "日本…", truncate("日本語のタイトル", 3))
}
