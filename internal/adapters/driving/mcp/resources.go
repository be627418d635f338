package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

// uriScheme is the custom URI scheme for tabfind resources.
const uriScheme = "tabfind://"

// sourceInfo describes one record source.
type sourceInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Lazy     bool   `json:"lazy"`
	Capacity int    `json:"capacity,omitempty"`
	URI      string `json:"uri"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sources",
		Name:        "sources",
		Description: "The browser record sources tabfind searches",
		MIMEType:    "application/json",
	}, s.handleSourcesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sources/{source}",
		Name:        "source-records",
		Description: "Top records of one source, unfiltered",
		MIMEType:    "application/json",
	}, s.handleSourceRecordsResource)
}

// handleSourcesResource lists the four sources.
func (s *Server) handleSourcesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	kinds := domain.AllSourceKinds()
	infos := make([]sourceInfo, len(kinds))
	for i, kind := range kinds {
		infos[i] = sourceInfo{
			Name:     kind.String(),
			Title:    kind.Title(),
			Lazy:     kind.Lazy(),
			Capacity: kind.Capacity(),
			URI:      uriScheme + "sources/" + kind.String(),
		}
	}
	return jsonResource(req.Params.URI, infos)
}

// handleSourceRecordsResource returns the browse view of one source.
func (s *Server) handleSourceRecordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractSourceName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	kind, err := domain.ParseSourceKind(name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	results, err := s.ports.Search.Search(ctx, "", domain.SearchOptions{Kinds: []domain.SourceKind{kind}})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind, err)
	}

	return jsonResource(req.Params.URI, toOutput(results).Results)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSourceName extracts the source from a URI like tabfind://sources/{source}.
func extractSourceName(uri string) string {
	const prefix = uriScheme + "sources/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	name := strings.TrimPrefix(uri, prefix)
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
