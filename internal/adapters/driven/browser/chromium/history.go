package chromium

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// chromeEpochOffset is the number of seconds between 1601-01-01 and 1970-01-01.
const chromeEpochOffset = 11644473600

// Ensure HistoryDB implements HistoryProvider.
var _ driven.HistoryProvider = (*HistoryDB)(nil)

// HistoryDB queries a profile's History database.
// The browser keeps the database locked, so each query runs against a
// temporary snapshot.
type HistoryDB struct {
	path string
}

// NewHistoryDB creates a provider for the database at path.
func NewHistoryDB(path string) *HistoryDB {
	return &HistoryDB{path: path}
}

// SearchHistory returns up to maxResults visible entries, most recent first.
// A non-empty text restricts results to titles or URLs containing it.
func (h *HistoryDB) SearchHistory(ctx context.Context, text string, maxResults int) ([]driven.HistoryPayload, error) {
	if maxResults <= 0 {
		return nil, nil
	}

	snapshot, cleanup, err := h.snapshot()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	db, err := sql.Open("sqlite", readOnlyDSN(snapshot))
	if err != nil {
		return nil, fmt.Errorf("opening history snapshot: %w", err)
	}
	defer db.Close()

	query := `
		SELECT id, url, title, last_visit_time, visit_count
		FROM urls
		WHERE hidden = 0`
	args := []any{}
	if text != "" {
		like := "%" + text + "%"
		query += ` AND (title LIKE ? OR url LIKE ?)`
		args = append(args, like, like)
	}
	query += `
		ORDER BY last_visit_time DESC
		LIMIT ?`
	args = append(args, maxResults)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	entries := make([]driven.HistoryPayload, 0, maxResults)
	for rows.Next() {
		var (
			id        int64
			entry     driven.HistoryPayload
			title     sql.NullString
			lastVisit int64
		)
		if err := rows.Scan(&id, &entry.URL, &title, &lastVisit, &entry.VisitCount); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entry.ID = strconv.FormatInt(id, 10)
		entry.Title = title.String
		entry.LastVisit = FromChromeTime(lastVisit)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	logger.Debug("history: %d entries from %s", len(entries), h.path)
	return entries, nil
}

// snapshot copies the database and its WAL into a temporary directory.
func (h *HistoryDB) snapshot() (string, func(), error) {
	dir, err := os.MkdirTemp("", "tabfind-history-*")
	if err != nil {
		return "", nil, fmt.Errorf("creating snapshot dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	dst := filepath.Join(dir, historyFile)
	if err := copyFile(h.path, dst); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("copying history: %w", err)
	}
	if err := copyFile(h.path+"-wal", dst+"-wal"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		cleanup()
		return "", nil, fmt.Errorf("copying history wal: %w", err)
	}
	return dst, cleanup, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// FromChromeTime converts microseconds since 1601-01-01 UTC.
func FromChromeTime(us int64) time.Time {
	if us == 0 {
		return time.Time{}
	}
	return time.UnixMicro(us - chromeEpochOffset*1_000_000).UTC()
}

// ToChromeTime is the inverse of FromChromeTime.
func ToChromeTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro() + chromeEpochOffset*1_000_000
}

// readOnlyDSN returns a URI filename opening path read-only. Query
// parameters on a plain path are not passed to SQLite.
func readOnlyDSN(path string) string {
	return "file:" + filepath.ToSlash(path) + "?mode=ro"
}
