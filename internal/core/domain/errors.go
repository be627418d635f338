package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedRecord indicates a provider payload carried neither a title nor a URL,
	// or a closed-tab session that is not a single tab.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrProvider indicates a browser data provider failed.
	// Returned wrapped in a ProviderError.
	ErrProvider = errors.New("provider failed")

	// ErrNoFocus indicates activation was requested with no focused row and no query text.
	ErrNoFocus = errors.New("nothing to activate")

	// ErrBrowserUnavailable indicates the browser endpoint could not be reached.
	ErrBrowserUnavailable = errors.New("browser unavailable")

	// ErrUnsupportedKind indicates an unknown source kind.
	ErrUnsupportedKind = errors.New("unsupported source kind")
)

// ProviderError reports a failed fetch for one source.
// The engine recovers from it locally: the source keeps its previous records.
type ProviderError struct {
	Kind SourceKind
	Err  error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Kind, e.Err)
}

// Unwrap exposes both ErrProvider and the underlying cause to errors.Is.
func (e *ProviderError) Unwrap() []error {
	return []error{ErrProvider, e.Err}
}
