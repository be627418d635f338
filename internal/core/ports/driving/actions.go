package driving

import (
	"context"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

// ResultActionService acts on records and raw input for external actors.
// This is used by the coordinator and the MCP adapter.
type ResultActionService interface {
	// Open performs the record's kind-specific action: switch to a tab,
	// open a bookmark or history URL, or restore a closed session.
	Open(ctx context.Context, record domain.Record) error

	// OpenText opens URL-like text directly and web-searches anything else.
	OpenText(ctx context.Context, text string) error

	// CopyURL copies the record's URL to the system clipboard.
	CopyURL(record domain.Record) error
}
