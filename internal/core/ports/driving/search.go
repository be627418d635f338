package driving

import (
	"context"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

// SearchService answers one-shot queries for the CLI and MCP server.
type SearchService interface {
	// Search loads any missing sources, then searches all of them.
	// An empty query returns the browse view.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (domain.ResultSet, error)
}
