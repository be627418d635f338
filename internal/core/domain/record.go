package domain

// Record is the normalised unit that is indexed and displayed.
// Records are immutable once inserted; a changed provider record
// arrives as part of a fresh collection, never as an in-place edit.
type Record struct {
	// Title is the page title. May be empty.
	Title string

	// URL is the page address. May be empty.
	URL string

	// ID is unique only within its source: a tab id, bookmark node id,
	// history entry id or closed-tab session id.
	ID string

	// IconHint is a favicon URL when one is known.
	IconHint string

	// WindowID is the browser window holding an open tab. Empty for other kinds.
	WindowID string

	// Kind is the source the record came from.
	Kind SourceKind

	// SearchText is Title and URL joined, so either can satisfy a query.
	SearchText string
}

// NewRecord builds a record and derives SearchText.
func NewRecord(kind SourceKind, id, title, url string) Record {
	return Record{
		Title:      title,
		URL:        url,
		ID:         id,
		Kind:       kind,
		SearchText: joinSearchText(title, url),
	}
}

// DisplayTitle returns the title, or the URL for untitled records.
func (r Record) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.URL
}

// IsValid reports whether the record has a title or a URL.
func (r Record) IsValid() bool {
	return r.Title != "" || r.URL != ""
}

func joinSearchText(title, url string) string {
	switch {
	case title == "":
		return url
	case url == "":
		return title
	default:
		return title + " " + url
	}
}
