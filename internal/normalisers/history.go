package normalisers

import (
	"fmt"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
)

// History normalises a history entry.
func History(p driven.HistoryPayload) (domain.Record, error) {
	rec := domain.NewRecord(domain.SourceHistory, p.ID, cleanTitle(p.Title), cleanURL(p.URL))
	if !rec.IsValid() {
		return domain.Record{}, fmt.Errorf("history entry %q: %w", p.ID, domain.ErrMalformedRecord)
	}
	rec.IconHint = IconHint(rec.URL)
	return rec, nil
}
