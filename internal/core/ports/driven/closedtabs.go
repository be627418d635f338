package driven

import "context"

// ClosedTabStore persists the closed-tab journal.
// Stores usually also implement ClosedTabProvider for reading the journal.
type ClosedTabStore interface {
	// Append records a closed tab. An empty SessionID is assigned by the store.
	Append(ctx context.Context, entry ClosedTabPayload) (ClosedTabPayload, error)

	// Pop removes and returns the session. Returns domain.ErrNotFound if absent.
	Pop(ctx context.Context, sessionID string) (ClosedTabPayload, error)

	// Prune deletes all but the newest keep entries.
	Prune(ctx context.Context, keep int) error
}
