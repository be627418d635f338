package driven

import "context"

// BrowserActions performs navigation in the browser.
type BrowserActions interface {
	// ActivateTab makes the tab the active tab of its window.
	ActivateTab(ctx context.Context, tabID string) error

	// FocusWindow brings the window to the front.
	FocusWindow(ctx context.Context, windowID string) error

	// OpenURL opens the URL in a new tab.
	OpenURL(ctx context.Context, rawURL string) error

	// RestoreSession reopens a recently closed session.
	RestoreSession(ctx context.Context, sessionID string) error

	// WebSearch runs a web search for the text.
	WebSearch(ctx context.Context, text string) error
}

// Clipboard writes to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}
