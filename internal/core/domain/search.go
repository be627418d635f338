package domain

// DefaultBrowseLimit is how many records per source the unfiltered view shows.
const DefaultBrowseLimit = 10

// Mode distinguishes the unfiltered browse view from an active search.
type Mode string

// Available view modes.
const (
	// ModeBrowse shows the top records of each source, unfiltered.
	ModeBrowse Mode = "browse"

	// ModeSearch shows every fuzzy match of each source.
	ModeSearch Mode = "search"
)

// Match is a record paired with its fuzzy score.
// Lower scores are better; 0 is an exact substring match.
type Match struct {
	Record Record
	Score  float64
}

// SearchOptions configures a one-shot search.
type SearchOptions struct {
	// Limit caps results per source. Zero means no cap for searches
	// and DefaultBrowseLimit for the browse view.
	Limit int

	// Kinds filters to specific sources. Empty means all four.
	Kinds []SourceKind
}

// Includes reports whether kind passes the Kinds filter.
func (o SearchOptions) Includes(kind SourceKind) bool {
	if len(o.Kinds) == 0 {
		return true
	}
	for _, k := range o.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ResultSet is the combined view across all sources.
type ResultSet struct {
	// Query is the raw query text the set was computed for.
	Query string

	// Mode is browse for an empty query and search otherwise.
	Mode Mode

	// Generation increases with every set a coordinator emits.
	// Consumers drop sets older than the last one they rendered.
	Generation uint64

	// Results holds the ordered matches per source.
	Results map[SourceKind][]Match
}

// NewResultSet creates an empty result set.
func NewResultSet(query string, mode Mode) ResultSet {
	return ResultSet{
		Query:   query,
		Mode:    mode,
		Results: make(map[SourceKind][]Match, 4),
	}
}

// Records returns the ordered records for one source.
func (r ResultSet) Records(kind SourceKind) []Record {
	matches := r.Results[kind]
	out := make([]Record, len(matches))
	for i := range matches {
		out[i] = matches[i].Record
	}
	return out
}

// Len returns the total number of visible rows.
func (r ResultSet) Len() int {
	n := 0
	for _, m := range r.Results {
		n += len(m)
	}
	return n
}

// Flatten returns every visible row in display order: tabs, bookmarks,
// history, then closed tabs, each in its own source order.
func (r ResultSet) Flatten() []Match {
	out := make([]Match, 0, r.Len())
	for _, kind := range AllSourceKinds() {
		out = append(out, r.Results[kind]...)
	}
	return out
}

// At returns the row at a flattened index.
func (r ResultSet) At(index int) (Match, bool) {
	if index < 0 {
		return Match{}, false
	}
	for _, kind := range AllSourceKinds() {
		rows := r.Results[kind]
		if index < len(rows) {
			return rows[index], true
		}
		index -= len(rows)
	}
	return Match{}, false
}
