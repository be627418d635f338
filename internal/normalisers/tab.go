package normalisers

import (
	"fmt"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
)

// Tab normalises an open tab.
func Tab(p driven.TabPayload) (domain.Record, error) {
	rec := domain.NewRecord(domain.SourceTab, p.ID, cleanTitle(p.Title), cleanURL(p.URL))
	if !rec.IsValid() {
		return domain.Record{}, fmt.Errorf("tab %q: %w", p.ID, domain.ErrMalformedRecord)
	}
	rec.WindowID = p.WindowID
	rec.IconHint = p.FavIconURL
	return rec, nil
}
