package driven

import (
	"context"
	"time"
)

// TabPayload is an open tab as reported by the browser.
type TabPayload struct {
	// ID is the browser's tab identifier.
	ID string

	// WindowID identifies the window holding the tab. Empty when unknown.
	WindowID string

	Title      string
	URL        string
	FavIconURL string
}

// BookmarkNode is one node of the bookmark tree.
// Nodes with a URL are bookmarks; nodes without one are folders.
type BookmarkNode struct {
	ID       string
	Title    string
	URL      string
	Children []BookmarkNode
}

// IsFolder reports whether the node is a folder.
func (n BookmarkNode) IsFolder() bool {
	return n.URL == ""
}

// HistoryPayload is one history entry.
type HistoryPayload struct {
	ID         string
	Title      string
	URL        string
	LastVisit  time.Time
	VisitCount int
}

// ClosedTabPayload is one recently closed session.
// Window sessions carry no Tab and are not searchable.
type ClosedTabPayload struct {
	// SessionID identifies the session for restore.
	SessionID string

	ClosedAt time.Time

	// Tab is nil for window sessions.
	Tab *TabPayload
}

// TabProvider lists open tabs.
type TabProvider interface {
	// ListOpenTabs returns every open tab in browser order.
	ListOpenTabs(ctx context.Context) ([]TabPayload, error)
}

// BookmarkProvider exposes the bookmark tree.
type BookmarkProvider interface {
	// BookmarkTree returns the root node of the bookmark tree.
	BookmarkTree(ctx context.Context) (BookmarkNode, error)
}

// HistoryProvider queries browsing history.
type HistoryProvider interface {
	// SearchHistory returns up to maxResults entries, most recent first.
	// An empty text returns the most recent entries without filtering.
	SearchHistory(ctx context.Context, text string, maxResults int) ([]HistoryPayload, error)
}

// ClosedTabProvider lists recently closed sessions.
type ClosedTabProvider interface {
	// ListRecentlyClosed returns up to maxResults sessions, most recent first.
	ListRecentlyClosed(ctx context.Context, maxResults int) ([]ClosedTabPayload, error)
}
