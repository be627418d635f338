package normalisers

import (
	"fmt"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
)

// ClosedTab normalises a recently closed session.
// Window sessions have no tab and are rejected.
func ClosedTab(p driven.ClosedTabPayload) (domain.Record, error) {
	if p.Tab == nil {
		return domain.Record{}, fmt.Errorf("closed session %q has no tab: %w", p.SessionID, domain.ErrMalformedRecord)
	}

	rec := domain.NewRecord(domain.SourceClosedTab, p.SessionID, cleanTitle(p.Tab.Title), cleanURL(p.Tab.URL))
	if !rec.IsValid() {
		return domain.Record{}, fmt.Errorf("closed session %q: %w", p.SessionID, domain.ErrMalformedRecord)
	}

	rec.IconHint = p.Tab.FavIconURL
	if rec.IconHint == "" {
		rec.IconHint = IconHint(rec.URL)
	}
	return rec, nil
}
