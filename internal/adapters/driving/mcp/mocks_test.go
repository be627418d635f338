package mcp

import (
	"context"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   domain.ResultSet
	err       error
	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) (domain.ResultSet, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.results, m.err
}

// mockActionService is a mock implementation of driving.ResultActionService.
type mockActionService struct {
	opened []domain.Record
	texts  []string
	err    error
}

func (m *mockActionService) Open(_ context.Context, record domain.Record) error {
	m.opened = append(m.opened, record)
	return m.err
}

func (m *mockActionService) OpenText(_ context.Context, text string) error {
	m.texts = append(m.texts, text)
	return m.err
}

func (m *mockActionService) CopyURL(_ domain.Record) error {
	return m.err
}

var (
	_ driving.SearchService       = (*mockSearchService)(nil)
	_ driving.ResultActionService = (*mockActionService)(nil)
)

func sampleResultSet() domain.ResultSet {
	rs := domain.NewResultSet("git", domain.ModeSearch)
	tab := domain.NewRecord(domain.SourceTab, "T1", "GitHub", "https://github.com")
	tab.WindowID = "W1"
	rs.Results[domain.SourceTab] = []domain.Match{{Record: tab, Score: 0}}
	rs.Results[domain.SourceHistory] = []domain.Match{
		{Record: domain.NewRecord(domain.SourceHistory, "42", "GitLab", "https://gitlab.com"), Score: 0.25},
	}
	return rs
}
