package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
)

// Ensure Journal implements the interfaces.
var (
	_ driven.ClosedTabStore    = (*Journal)(nil)
	_ driven.ClosedTabProvider = (*Journal)(nil)
)

// Journal is an in-memory closed-tab journal, newest entry first.
type Journal struct {
	mu      sync.RWMutex
	entries []driven.ClosedTabPayload
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append records a closed tab.
func (j *Journal) Append(_ context.Context, entry driven.ClosedTabPayload) (driven.ClosedTabPayload, error) {
	if entry.SessionID == "" {
		entry.SessionID = uuid.New().String()
	}
	if entry.ClosedAt.IsZero() {
		entry.ClosedAt = time.Now()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append([]driven.ClosedTabPayload{entry}, j.entries...)
	return entry, nil
}

// Pop removes and returns the session.
func (j *Journal) Pop(_ context.Context, sessionID string) (driven.ClosedTabPayload, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i, e := range j.entries {
		if e.SessionID == sessionID {
			j.entries = append(j.entries[:i:i], j.entries[i+1:]...)
			return e, nil
		}
	}
	return driven.ClosedTabPayload{}, domain.ErrNotFound
}

// Prune keeps the newest keep entries.
func (j *Journal) Prune(_ context.Context, keep int) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if keep >= 0 && len(j.entries) > keep {
		j.entries = j.entries[:keep]
	}
	return nil
}

// ListRecentlyClosed returns up to maxResults entries, newest first.
func (j *Journal) ListRecentlyClosed(_ context.Context, maxResults int) ([]driven.ClosedTabPayload, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	n := len(j.entries)
	if maxResults > 0 && maxResults < n {
		n = maxResults
	}
	out := make([]driven.ClosedTabPayload, n)
	copy(out, j.entries[:n])
	return out, nil
}
