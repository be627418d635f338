package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
)

// Ensure Store implements the journal interfaces.
var (
	_ driven.ClosedTabStore    = (*Store)(nil)
	_ driven.ClosedTabProvider = (*Store)(nil)
)

// Append records a closed tab and returns the stored entry.
func (s *Store) Append(ctx context.Context, entry driven.ClosedTabPayload) (driven.ClosedTabPayload, error) {
	if entry.Tab == nil {
		return driven.ClosedTabPayload{}, fmt.Errorf("%w: closed tab entry without tab", domain.ErrInvalidInput)
	}
	if entry.SessionID == "" {
		entry.SessionID = uuid.New().String()
	}
	if entry.ClosedAt.IsZero() {
		entry.ClosedAt = time.Now()
	}

	tab := entry.Tab
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO closed_tabs (session_id, closed_at, tab_id, window_id, title, url, favicon_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.SessionID,
		entry.ClosedAt.UnixMilli(),
		tab.ID,
		tab.WindowID,
		tab.Title,
		tab.URL,
		tab.FavIconURL)
	if err != nil {
		return driven.ClosedTabPayload{}, fmt.Errorf("appending closed tab: %w", err)
	}
	return entry, nil
}

// Pop removes the session and returns it.
func (s *Store) Pop(ctx context.Context, sessionID string) (driven.ClosedTabPayload, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return driven.ClosedTabPayload{}, fmt.Errorf("starting pop: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	row := tx.QueryRowContext(ctx, `
		SELECT session_id, closed_at, tab_id, window_id, title, url, favicon_url
		FROM closed_tabs
		WHERE session_id = ?
	`, sessionID)
	entry, err := scanClosedTab(row)
	if errors.Is(err, sql.ErrNoRows) {
		return driven.ClosedTabPayload{}, domain.ErrNotFound
	}
	if err != nil {
		return driven.ClosedTabPayload{}, err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM closed_tabs WHERE session_id = ?", sessionID); err != nil {
		return driven.ClosedTabPayload{}, fmt.Errorf("deleting closed tab: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return driven.ClosedTabPayload{}, fmt.Errorf("committing pop: %w", err)
	}
	return entry, nil
}

// Prune deletes all but the newest keep entries.
func (s *Store) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM closed_tabs
		WHERE seq NOT IN (
			SELECT seq FROM closed_tabs
			ORDER BY closed_at DESC, seq DESC
			LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning closed tabs: %w", err)
	}
	return nil
}

// ListRecentlyClosed returns up to maxResults entries, newest first.
// A non-positive maxResults returns the whole journal.
func (s *Store) ListRecentlyClosed(ctx context.Context, maxResults int) ([]driven.ClosedTabPayload, error) {
	if maxResults <= 0 {
		maxResults = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, closed_at, tab_id, window_id, title, url, favicon_url
		FROM closed_tabs
		ORDER BY closed_at DESC, seq DESC
		LIMIT ?
	`, maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying closed tabs: %w", err)
	}
	defer rows.Close()

	var entries []driven.ClosedTabPayload //nolint:prealloc // size unknown from query
	for rows.Next() {
		entry, err := scanClosedTab(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating closed tabs: %w", err)
	}
	return entries, nil
}

// Count returns the number of journal entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM closed_tabs").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting closed tabs: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClosedTab(row rowScanner) (driven.ClosedTabPayload, error) {
	var (
		entry    driven.ClosedTabPayload
		tab      driven.TabPayload
		closedAt int64
	)
	err := row.Scan(&entry.SessionID, &closedAt, &tab.ID, &tab.WindowID, &tab.Title, &tab.URL, &tab.FavIconURL)
	if errors.Is(err, sql.ErrNoRows) {
		return entry, err
	}
	if err != nil {
		return entry, fmt.Errorf("scanning closed tab: %w", err)
	}
	entry.ClosedAt = time.UnixMilli(closedAt)
	entry.Tab = &tab
	return entry, nil
}
