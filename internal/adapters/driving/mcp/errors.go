// Package mcp provides an MCP (Model Context Protocol) server adapter for tabfind.
// It lets AI assistants search the browser's tabs, bookmarks and history and
// open results in the browser.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrActionsUnavailable is returned by open_result when no action service is wired.
var ErrActionsUnavailable = errors.New("mcp: browser actions are not available")
