package mcp

import (
	"github.com/custodia-labs/tabfind/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search answers search_browser and the source resources.
	Search driving.SearchService

	// Actions opens results. Optional; open_result fails without it.
	Actions driving.ResultActionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
