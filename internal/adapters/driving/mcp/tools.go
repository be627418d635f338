package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

// DefaultLimit is the per-source result cap when the caller sets none.
const DefaultLimit = 10

// SearchInput is the input schema for the search_browser tool.
type SearchInput struct {
	Query   string   `json:"query" jsonschema:"text to fuzzy-match against titles and URLs; empty lists the top records"`
	Limit   int      `json:"limit,omitempty" jsonschema:"maximum results per source (default 10)"`
	Sources []string `json:"sources,omitempty" jsonschema:"restrict to tabs, bookmarks, history or closed_tabs"`
}

// SearchOutput is the output schema for the search_browser tool.
type SearchOutput struct {
	Results []ResultOutput `json:"results"`
	Count   int            `json:"count"`
}

// ResultOutput is one matched record.
type ResultOutput struct {
	Source   string  `json:"source"`
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	WindowID string  `json:"window_id,omitempty"`
	Score    float64 `json:"score"`
}

// OpenInput is the input schema for the open_result tool.
type OpenInput struct {
	Source   string `json:"source,omitempty" jsonschema:"source of the result as returned by search_browser"`
	ID       string `json:"id,omitempty" jsonschema:"id of the result as returned by search_browser"`
	URL      string `json:"url,omitempty" jsonschema:"url of the result; required for bookmarks and history"`
	WindowID string `json:"window_id,omitempty" jsonschema:"window of an open tab"`
	Text     string `json:"text,omitempty" jsonschema:"open this URL or web-search this text instead of a result"`
}

// OpenOutput is the output schema for the open_result tool.
type OpenOutput struct {
	Message string `json:"message"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_browser",
		Description: "Fuzzy search the browser's open tabs, bookmarks, history and recently closed tabs",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "open_result",
		Description: "Switch to a tab, open a bookmark or history entry, restore a closed tab, or open typed text",
	}, s.handleOpen)
}

// handleSearch handles the search_browser tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	kinds, err := parseKinds(input.Sources)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	results, err := s.ports.Search.Search(ctx, input.Query, domain.SearchOptions{Limit: limit, Kinds: kinds})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, toOutput(results), nil
}

// handleOpen handles the open_result tool invocation.
func (s *Server) handleOpen(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OpenInput,
) (*mcp.CallToolResult, OpenOutput, error) {
	if s.ports.Actions == nil {
		return nil, OpenOutput{}, ErrActionsUnavailable
	}

	if input.Source == "" {
		text := strings.TrimSpace(input.Text)
		if text == "" {
			text = strings.TrimSpace(input.URL)
		}
		if err := s.ports.Actions.OpenText(ctx, text); err != nil {
			return nil, OpenOutput{}, err
		}
		return nil, OpenOutput{Message: fmt.Sprintf("opened %q", text)}, nil
	}

	kind, err := domain.ParseSourceKind(input.Source)
	if err != nil {
		return nil, OpenOutput{}, err
	}
	if input.ID == "" && kind != domain.SourceBookmark && kind != domain.SourceHistory {
		return nil, OpenOutput{}, fmt.Errorf("%w: id is required for %s", domain.ErrInvalidInput, kind)
	}

	record := domain.NewRecord(kind, input.ID, "", input.URL)
	record.WindowID = input.WindowID
	if err := s.ports.Actions.Open(ctx, record); err != nil {
		return nil, OpenOutput{}, err
	}

	return nil, OpenOutput{Message: fmt.Sprintf("opened %s %s", kind, record.DisplayTitle())}, nil
}

func parseKinds(names []string) ([]domain.SourceKind, error) {
	if len(names) == 0 {
		return nil, nil
	}
	kinds := make([]domain.SourceKind, 0, len(names))
	for _, name := range names {
		kind, err := domain.ParseSourceKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func toOutput(results domain.ResultSet) SearchOutput {
	rows := results.Flatten()
	output := SearchOutput{
		Results: make([]ResultOutput, len(rows)),
		Count:   len(rows),
	}
	for i := range rows {
		rec := rows[i].Record
		output.Results[i] = ResultOutput{
			Source:   rec.Kind.String(),
			ID:       rec.ID,
			Title:    rec.Title,
			URL:      rec.URL,
			WindowID: rec.WindowID,
			Score:    rows[i].Score,
		}
	}
	return output
}
