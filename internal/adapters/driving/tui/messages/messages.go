// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/tabfind/internal/core/domain"
)

// ResultsChanged carries a result set published by the coordinator.
type ResultsChanged struct {
	Results domain.ResultSet
}

// FocusChanged carries the coordinator's focused row.
type FocusChanged struct {
	Index int
}

// Started is sent once the initial browse view has been requested.
type Started struct {
	Err error
}

// ActionDone reports the outcome of an activation or copy.
type ActionDone struct {
	// Message is shown in the status bar on success.
	Message string

	// Quit closes the launcher after a successful activation.
	Quit bool

	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
