package domain

import (
	"fmt"
	"strings"
)

// SourceKind identifies one of the four independent record collections.
type SourceKind int

// Available source kinds, in display order.
const (
	// SourceTab is the set of currently open tabs.
	SourceTab SourceKind = iota

	// SourceBookmark is the flattened bookmark tree.
	SourceBookmark

	// SourceHistory is the browsing history superset.
	SourceHistory

	// SourceClosedTab is the list of recently-closed tabs.
	SourceClosedTab
)

// Capacity limits for the size-capped sources.
const (
	HistoryCapacity   = 5000
	ClosedTabCapacity = 500
)

// AllSourceKinds returns every source kind in display order.
func AllSourceKinds() []SourceKind {
	return []SourceKind{SourceTab, SourceBookmark, SourceHistory, SourceClosedTab}
}

// String returns the string representation.
func (k SourceKind) String() string {
	switch k {
	case SourceTab:
		return "tabs"
	case SourceBookmark:
		return "bookmarks"
	case SourceHistory:
		return "history"
	case SourceClosedTab:
		return "closed_tabs"
	default:
		return "unknown"
	}
}

// Title returns a human-readable section heading.
func (k SourceKind) Title() string {
	switch k {
	case SourceTab:
		return "Open Tabs"
	case SourceBookmark:
		return "Bookmarks"
	case SourceHistory:
		return "History"
	case SourceClosedTab:
		return "Recently Closed"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the kind is recognised.
func (k SourceKind) IsValid() bool {
	return k >= SourceTab && k <= SourceClosedTab
}

// Lazy reports whether the source is only fetched once a search needs it.
func (k SourceKind) Lazy() bool {
	return k == SourceHistory || k == SourceClosedTab
}

// Capacity returns the hard cap on cached records, or 0 when uncapped.
// Tabs and bookmarks are already bounded by the browser.
func (k SourceKind) Capacity() int {
	switch k {
	case SourceHistory:
		return HistoryCapacity
	case SourceClosedTab:
		return ClosedTabCapacity
	default:
		return 0
	}
}

// ParseSourceKind converts a name such as "tabs" or "history" to a SourceKind.
// Singular forms and "closed" are accepted for convenience on the command line.
func ParseSourceKind(s string) (SourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tabs", "tab":
		return SourceTab, nil
	case "bookmarks", "bookmark":
		return SourceBookmark, nil
	case "history":
		return SourceHistory, nil
	case "closed_tabs", "closed-tabs", "closed", "closedtabs":
		return SourceClosedTab, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
}
