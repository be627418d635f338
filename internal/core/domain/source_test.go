package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceKind_String(t *testing.T) {
	tests := []struct {
		kind     SourceKind
		expected string
	}{
		{SourceTab, "tabs"},
		{SourceBookmark, "bookmarks"},
		{SourceHistory, "history"},
		{SourceClosedTab, "closed_tabs"},
		{SourceKind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestSourceKind_LazyAndCapacity(t *testing.T) {
	assert.False(t, SourceTab.Lazy())
	assert.False(t, SourceBookmark.Lazy())
	assert.True(t, SourceHistory.Lazy())
	assert.True(t, SourceClosedTab.Lazy())

	assert.Equal(t, 0, SourceTab.Capacity())
	assert.Equal(t, 0, SourceBookmark.Capacity())
	assert.Equal(t, 5000, SourceHistory.Capacity())
	assert.Equal(t, 500, SourceClosedTab.Capacity())
}

func TestAllSourceKinds_DisplayOrder(t *testing.T) {
	assert.Equal(t,
		[]SourceKind{SourceTab, SourceBookmark, SourceHistory, SourceClosedTab},
		AllSourceKinds())
}

func TestParseSourceKind(t *testing.T) {
	tests := []struct {
		input    string
		expected SourceKind
	}{
		{"tabs", SourceTab},
		{"Tab", SourceTab},
		{"bookmarks", SourceBookmark},
		{" history ", SourceHistory},
		{"closed", SourceClosedTab},
		{"closed-tabs", SourceClosedTab},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseSourceKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}

	_, err := ParseSourceKind("downloads")
	assert.True(t, errors.Is(err, ErrUnsupportedKind))
}

func TestNewRecord_SearchText(t *testing.T) {
	r := NewRecord(SourceTab, "1", "GitHub", "https://github.com")
	assert.Equal(t, "GitHub https://github.com", r.SearchText)
	assert.Equal(t, "GitHub", r.DisplayTitle())

	untitled := NewRecord(SourceHistory, "2", "", "https://example.com")
	assert.Equal(t, "https://example.com", untitled.SearchText)
	assert.Equal(t, "https://example.com", untitled.DisplayTitle())
	assert.True(t, untitled.IsValid())

	assert.False(t, NewRecord(SourceHistory, "3", "", "").IsValid())
}

func TestProviderError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ProviderError{Kind: SourceHistory, Err: cause}

	assert.True(t, errors.Is(err, ErrProvider))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "history")
	assert.Contains(t, err.Error(), "connection refused")
}
