// Package fuzzy implements approximate substring matching with the Bitap
// (shift-or, Wu-Manber) algorithm.
//
// A pattern matches a text when some substring of the text is within k edits
// (insertions, deletions or substitutions) of the pattern. The score is the
// normalised mismatch k / len(pattern): 0 is an exact substring match and the
// match is accepted when the score does not exceed the threshold. Location of
// the match inside the text is ignored, so a keyword at the end of a long title
// scores the same as one at the start.
//
// Matching is case-insensitive and works on runes. Patterns longer than
// MaxPatternLength are split into chunks that must all match.
package fuzzy
