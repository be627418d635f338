package normalisers

import (
	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// TabsFrom normalises a tab list, skipping malformed entries.
func TabsFrom(payloads []driven.TabPayload) []domain.Record {
	return normaliseAll(payloads, Tab)
}

// HistoryFrom normalises history entries, skipping malformed entries.
func HistoryFrom(payloads []driven.HistoryPayload) []domain.Record {
	return normaliseAll(payloads, History)
}

// ClosedTabsFrom normalises closed sessions, skipping window sessions and
// malformed entries.
func ClosedTabsFrom(payloads []driven.ClosedTabPayload) []domain.Record {
	return normaliseAll(payloads, ClosedTab)
}

func normaliseAll[P any](payloads []P, fn func(P) (domain.Record, error)) []domain.Record {
	out := make([]domain.Record, 0, len(payloads))
	for _, p := range payloads {
		rec, err := fn(p)
		if err != nil {
			logger.Debug("normalisers: skipping record: %v", err)
			continue
		}
		out = append(out, rec)
	}
	return out
}
