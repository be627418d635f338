package memory

import (
	"fmt"
	"time"

	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
)

// NewDemoBrowser returns a browser preloaded with sample data for
// trying the interface without a running browser.
func NewDemoBrowser() *Browser {
	b := NewBrowser()

	b.SetTabs(
		driven.TabPayload{ID: "1", WindowID: "1", Title: "GitHub", URL: "https://github.com"},
		driven.TabPayload{ID: "2", WindowID: "1", Title: "The Go Programming Language", URL: "https://go.dev"},
		driven.TabPayload{ID: "3", WindowID: "1", Title: "Hacker News", URL: "https://news.ycombinator.com"},
		driven.TabPayload{ID: "4", WindowID: "2", Title: "Inbox", URL: "https://mail.example.com/inbox"},
		driven.TabPayload{ID: "5", WindowID: "2", Title: "Bubble Tea", URL: "https://github.com/charmbracelet/bubbletea"},
	)

	b.SetBookmarks(driven.BookmarkNode{
		ID: "0",
		Children: []driven.BookmarkNode{
			{
				ID:    "1",
				Title: "Bookmarks bar",
				Children: []driven.BookmarkNode{
					{ID: "10", Title: "Go Packages", URL: "https://pkg.go.dev"},
					{ID: "11", Title: "Effective Go", URL: "https://go.dev/doc/effective_go"},
					{
						ID:    "12",
						Title: "Reading",
						Children: []driven.BookmarkNode{
							{ID: "120", Title: "Lobsters", URL: "https://lobste.rs"},
							{ID: "121", Title: "LWN.net", URL: "https://lwn.net"},
						},
					},
				},
			},
			{
				ID:    "2",
				Title: "Other bookmarks",
				Children: []driven.BookmarkNode{
					{ID: "20", Title: "SQLite Documentation", URL: "https://sqlite.org/docs.html"},
				},
			},
		},
	})

	now := time.Now()
	sites := []struct{ title, url string }{
		{"Go by Example", "https://gobyexample.com"},
		{"Stack Overflow", "https://stackoverflow.com"},
		{"Wikipedia", "https://en.wikipedia.org"},
		{"Chrome DevTools Protocol", "https://chromedevtools.github.io/devtools-protocol"},
		{"fsnotify", "https://github.com/fsnotify/fsnotify"},
		{"Lip Gloss", "https://github.com/charmbracelet/lipgloss"},
		{"Model Context Protocol", "https://modelcontextprotocol.io"},
		{"TOML", "https://toml.io"},
	}
	history := make([]driven.HistoryPayload, 0, len(sites))
	for i, s := range sites {
		history = append(history, driven.HistoryPayload{
			ID:        fmt.Sprintf("h%d", i+1),
			Title:     s.title,
			URL:       s.url,
			LastVisit: now.Add(-time.Duration(i) * time.Hour),
		})
	}
	b.SetHistory(history...)

	b.SetClosedTabs(
		driven.ClosedTabPayload{
			SessionID: "c1",
			ClosedAt:  now.Add(-5 * time.Minute),
			Tab:       &driven.TabPayload{Title: "Rust Programming Language", URL: "https://www.rust-lang.org"},
		},
		driven.ClosedTabPayload{SessionID: "c2", ClosedAt: now.Add(-10 * time.Minute)},
		driven.ClosedTabPayload{
			SessionID: "c3",
			ClosedAt:  now.Add(-time.Hour),
			Tab:       &driven.TabPayload{Title: "Weather", URL: "https://weather.example.com"},
		},
	)

	return b
}
