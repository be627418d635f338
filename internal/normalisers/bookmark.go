package normalisers

import (
	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
)

// Bookmarks flattens a bookmark tree into records.
// Nodes with a URL become records; folders are only traversed. Order is
// depth-first pre-order, which is the order the browser shows them in.
func Bookmarks(root driven.BookmarkNode) []domain.Record {
	var out []domain.Record
	flatten(root, &out)
	return out
}

func flatten(node driven.BookmarkNode, out *[]domain.Record) {
	if !node.IsFolder() {
		rec := domain.NewRecord(domain.SourceBookmark, node.ID, cleanTitle(node.Title), cleanURL(node.URL))
		rec.IconHint = IconHint(rec.URL)
		*out = append(*out, rec)
	}
	for _, child := range node.Children {
		flatten(child, out)
	}
}
