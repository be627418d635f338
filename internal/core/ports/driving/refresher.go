package driving

import (
	"context"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

// Refresher keeps a long-running session's sources current.
type Refresher interface {
	// Start reloads loaded sources on an interval.
	// Blocks until Stop is called or the context is cancelled.
	Start(ctx context.Context) error

	// Stop gracefully stops the loop.
	Stop() error

	// RefreshNow reloads every loaded source and returns how many succeeded.
	RefreshNow(ctx context.Context) int

	// Invalidate marks a source as changed so the next search reloads it.
	Invalidate(kind domain.SourceKind)
}
