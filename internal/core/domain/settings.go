package domain

import (
	"fmt"
	"time"
)

// Default settings values.
const (
	DefaultFuzziness           = 0.3
	DefaultDebounceMs          = 150
	DefaultHistoryMaxResults   = 1000
	DefaultClosedTabMaxResults = 25
	DefaultSearchURL           = "https://www.google.com/search?q=%s"
	DefaultAccentColor         = "#3b82f6"
	DefaultTextColor           = "#f4f4f5"
	DefaultDevToolsURL         = "http://127.0.0.1:9222"
)

// ThemeSettings holds the few colours the terminal UI takes from config.
type ThemeSettings struct {
	// AccentColor highlights the focused row and headings.
	AccentColor string

	// TextColor is the default row colour.
	TextColor string
}

// BrowserSettings locates the browser tabfind talks to.
type BrowserSettings struct {
	// DevToolsURL is the remote debugging endpoint.
	DevToolsURL string

	// ProfileDir is the profile directory. Empty means the platform default.
	ProfileDir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Fuzziness is the shared match threshold: 0 = exact substring only,
	// 1 = match almost anything.
	Fuzziness float64

	// DebounceMs is the keystroke quiet period before a query executes.
	DebounceMs int

	// BrowseLimit is how many rows per source the unfiltered view shows.
	BrowseLimit int

	// HistoryMaxResults is how many history entries one fetch pulls.
	HistoryMaxResults int

	// ClosedTabMaxResults is how many closed-tab sessions one fetch pulls.
	ClosedTabMaxResults int

	// SearchURL is the web search template; %s is replaced by the escaped query.
	SearchURL string

	// Theme holds UI colours.
	Theme ThemeSettings

	Browser BrowserSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Fuzziness:           DefaultFuzziness,
		DebounceMs:          DefaultDebounceMs,
		BrowseLimit:         DefaultBrowseLimit,
		HistoryMaxResults:   DefaultHistoryMaxResults,
		ClosedTabMaxResults: DefaultClosedTabMaxResults,
		SearchURL:           DefaultSearchURL,
		Theme: ThemeSettings{
			AccentColor: DefaultAccentColor,
			TextColor:   DefaultTextColor,
		},
		Browser: BrowserSettings{
			DevToolsURL: DefaultDevToolsURL,
		},
	}
}

// Debounce returns the debounce interval as a duration.
func (s AppSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMs) * time.Millisecond
}

// Validate checks the settings are usable.
func (s AppSettings) Validate() error {
	if s.Fuzziness < 0 || s.Fuzziness > 1 {
		return fmt.Errorf("%w: fuzziness %.2f outside [0,1]", ErrInvalidInput, s.Fuzziness)
	}
	if s.DebounceMs < 0 {
		return fmt.Errorf("%w: negative debounce", ErrInvalidInput)
	}
	if s.BrowseLimit < 0 {
		return fmt.Errorf("%w: negative browse limit", ErrInvalidInput)
	}
	if s.HistoryMaxResults < 0 || s.HistoryMaxResults > HistoryCapacity {
		return fmt.Errorf("%w: history max results must be 0-%d", ErrInvalidInput, HistoryCapacity)
	}
	if s.ClosedTabMaxResults < 0 || s.ClosedTabMaxResults > ClosedTabCapacity {
		return fmt.Errorf("%w: closed tab max results must be 0-%d", ErrInvalidInput, ClosedTabCapacity)
	}
	return nil
}

// ClampFuzziness limits a threshold to [0,1].
func ClampFuzziness(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
