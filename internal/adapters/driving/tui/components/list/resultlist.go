// Package list renders the grouped result list for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/custodia-labs/tabfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tabfind/internal/core/domain"
)

// ResultList displays a result set as one section per source.
// Focus is owned by the coordinator; the list only mirrors it.
type ResultList struct {
	results domain.ResultSet
	rows    []domain.Match
	focused int
	styles  *styles.Styles
	width   int
	height  int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		results: domain.NewResultSet("", domain.ModeBrowse),
		focused: domain.NoFocus,
		styles:  s,
		width:   80,
		height:  20,
	}
}

// line is one rendered row; row is -1 for section headings.
type line struct {
	text string
	row  int
}

// View renders the visible window of the list, keeping the focused row on screen.
func (r *ResultList) View() string {
	if len(r.rows) == 0 {
		if r.results.Mode == domain.ModeSearch {
			return r.styles.Muted.Render("No matches. Enter opens the text as a URL or web search.")
		}
		return r.styles.Muted.Render("Nothing to show yet")
	}

	lines := r.lines()

	focusLine := 0
	for i, l := range lines {
		if l.row == r.focused {
			focusLine = i
			break
		}
	}

	visible := r.height
	if visible < 1 {
		visible = 1
	}
	start := 0
	if focusLine >= visible {
		start = focusLine - visible + 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}

	out := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		out = append(out, l.text)
	}
	return strings.Join(out, "\n")
}

func (r *ResultList) lines() []line {
	lines := make([]line, 0, len(r.rows)+8)
	row := 0
	for _, kind := range domain.AllSourceKinds() {
		matches := r.results.Results[kind]
		if len(matches) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, line{text: "", row: -1})
		}
		heading := r.styles.Section.Render(fmt.Sprintf("%s (%d)", kind.Title(), len(matches)))
		lines = append(lines, line{text: heading, row: -1})
		for i := range matches {
			lines = append(lines, line{text: r.renderRow(row, matches[i].Record), row: row})
			row++
		}
	}
	return lines
}

// renderRow formats a record as "title  url", truncated to the width.
func (r *ResultList) renderRow(index int, rec domain.Record) string {
	selected := index == r.focused

	indicator := "  "
	if selected {
		indicator = "▌ "
	}

	titleWidth := r.width * 3 / 5
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := truncate(rec.DisplayTitle(), titleWidth)

	urlWidth := r.width - titleWidth - 6
	url := ""
	if rec.Title != "" && urlWidth > 8 {
		url = truncate(rec.URL, urlWidth)
	}

	if selected {
		padded := fmt.Sprintf("%s%-*s  %s", indicator, titleWidth, title, url)
		return r.styles.Selected.Width(r.width).Render(padded)
	}

	titleCell := lipgloss.NewStyle().Width(titleWidth).Render(
		highlight(title, r.results.Query, r.styles.Normal, r.styles.Match.Inherit(r.styles.Normal)),
	)
	return indicator + titleCell + "  " + r.styles.Muted.Render(url)
}

// highlight renders text with the characters matching query emphasised.
func highlight(text, query string, base, match lipgloss.Style) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return base.Render(text)
	}
	found := fuzzy.Find(query, []string{text})
	if len(found) == 0 {
		return base.Render(text)
	}

	marked := make(map[int]bool, len(found[0].MatchedIndexes))
	for _, i := range found[0].MatchedIndexes {
		marked[i] = true
	}

	var b strings.Builder
	for i, ch := range text {
		if marked[i] {
			b.WriteString(match.Render(string(ch)))
		} else {
			b.WriteString(base.Render(string(ch)))
		}
	}
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// SetResults replaces the displayed result set.
func (r *ResultList) SetResults(results domain.ResultSet) {
	r.results = results
	r.rows = results.Flatten()
	if r.focused >= len(r.rows) {
		r.focused = domain.NoFocus
	}
}

// Results returns the displayed result set.
func (r *ResultList) Results() domain.ResultSet {
	return r.results
}

// SetFocused mirrors the coordinator's focused row.
func (r *ResultList) SetFocused(index int) {
	if index < 0 || index >= len(r.rows) {
		r.focused = domain.NoFocus
		return
	}
	r.focused = index
}

// Focused returns the focused row index.
func (r *ResultList) Focused() int {
	return r.focused
}

// FocusedRecord returns the focused record, if any.
func (r *ResultList) FocusedRecord() (domain.Record, bool) {
	if r.focused < 0 || r.focused >= len(r.rows) {
		return domain.Record{}, false
	}
	return r.rows[r.focused].Record, true
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of rows.
func (r *ResultList) Count() int {
	return len(r.rows)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.rows) == 0
}
