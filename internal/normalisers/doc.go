// Package normalisers converts provider payloads into domain records.
//
// Each browser source delivers a different shape: tabs carry a window and a
// favicon, bookmarks arrive as a tree, closed sessions may wrap a tab or a
// whole window. The functions here map every shape onto domain.Record so the
// search core never sees provider types.
//
// Normalisers are pure. Missing optional fields never fail; a payload with
// neither title nor URL is rejected with domain.ErrMalformedRecord.
package normalisers
