package driving

import (
	"context"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

// QueryCoordinator drives the interactive search view.
// Keystrokes are debounced; everything else takes effect immediately.
type QueryCoordinator interface {
	// Start fetches tabs and bookmarks and displays the browse view.
	Start(ctx context.Context) error

	// Keystroke records the current input text and restarts the debounce timer.
	Keystroke(text string)

	// SetThreshold previews a fuzziness value and re-runs the active query.
	SetThreshold(threshold float64)

	// CommitThreshold applies and persists a fuzziness value.
	CommitThreshold(threshold float64) error

	// Threshold returns the fuzziness in effect.
	Threshold() float64

	// Advance moves focus to the next row, wrapping at the end.
	Advance()

	// Retreat moves focus to the previous row, wrapping at the start.
	Retreat()

	// Focused returns the focused row index, or domain.NoFocus.
	Focused() int

	// Results returns the displayed result set.
	Results() domain.ResultSet

	// Activate opens the focused row, or falls back to the raw input text.
	Activate(ctx context.Context) error

	// CopyFocusedURL copies the focused row's URL to the clipboard.
	CopyFocusedURL() error

	// Refresh reloads a source in the background if it is loaded or eager.
	Refresh(kind domain.SourceKind)

	// SetListener replaces the results listener.
	SetListener(listener ResultsListener)

	// Close cancels the pending debounce timer.
	Close()
}

// ResultsListener receives coordinator notifications.
// Calls are made outside the coordinator lock and may come from any goroutine.
type ResultsListener interface {
	OnResultsChanged(results domain.ResultSet)
	OnFocusChanged(index int)
}
