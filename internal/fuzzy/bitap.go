package fuzzy

import (
	"strings"
	"unicode/utf8"
)

// MaxPatternLength is the longest pattern a single bit-vector can track.
const MaxPatternLength = 64

// Options configures a pattern.
type Options struct {
	// Threshold is the highest accepted score, in [0,1].
	Threshold float64
}

// Result describes the outcome of matching a pattern against one text.
type Result struct {
	// Matched is true when the best alignment is within the threshold.
	Matched bool

	// Score is the normalised mismatch of the best alignment (0 = exact).
	// It is 1 when nothing matched.
	Score float64

	// Errors is the edit count of the best alignment.
	Errors int
}

// chunk is a pattern slice with its precomputed character masks.
type chunk struct {
	runes    []rune
	alphabet map[rune]uint64
}

// Pattern is a compiled, lower-cased query. It is safe for concurrent use.
type Pattern struct {
	text      string
	threshold float64
	chunks    []chunk
}

// NewPattern compiles a query for repeated matching.
func NewPattern(query string, opts Options) *Pattern {
	lower := strings.ToLower(query)
	p := &Pattern{
		text:      lower,
		threshold: clamp(opts.Threshold),
	}

	runes := []rune(lower)
	for start := 0; start < len(runes); start += MaxPatternLength {
		end := start + MaxPatternLength
		if end > len(runes) {
			end = len(runes)
		}
		p.chunks = append(p.chunks, newChunk(runes[start:end]))
	}
	return p
}

// String returns the lower-cased pattern text.
func (p *Pattern) String() string {
	return p.text
}

// Threshold returns the pattern's threshold.
func (p *Pattern) Threshold() float64 {
	return p.threshold
}

// Len returns the pattern length in runes.
func (p *Pattern) Len() int {
	return utf8.RuneCountInString(p.text)
}

// Match scores text against the pattern. Text is lower-cased first.
func (p *Pattern) Match(text string) Result {
	return p.MatchLower(strings.ToLower(text))
}

// MatchLower scores text that is already lower-cased.
// Callers that match the same text many times cache the lowered form.
func (p *Pattern) MatchLower(text string) Result {
	if len(p.chunks) == 0 {
		return Result{Matched: true}
	}
	if text == "" {
		return Result{Score: 1}
	}

	// Fast path for the common case.
	if strings.Contains(text, p.text) {
		return Result{Matched: true}
	}

	runes := []rune(text)
	total := 0.0
	errs := 0
	for _, c := range p.chunks {
		matched, e := c.search(runes, p.threshold)
		if !matched {
			return Result{Score: 1}
		}
		total += float64(e) / float64(len(c.runes))
		errs += e
	}

	return Result{
		Matched: true,
		Score:   total / float64(len(p.chunks)),
		Errors:  errs,
	}
}

func newChunk(runes []rune) chunk {
	m := len(runes)
	alphabet := make(map[rune]uint64, m)
	for i, r := range runes {
		alphabet[r] |= 1 << uint(m-i-1)
	}
	return chunk{runes: runes, alphabet: alphabet}
}

// search runs the Bitap scan, trying 0, 1, 2, ... errors until one level
// produces a full-pattern match or the next level would exceed the threshold.
// With location ignored the score depends only on the error count, so the
// first level that matches is the best one.
func (c chunk) search(text []rune, threshold float64) (bool, int) {
	m := len(c.runes)
	n := len(text)
	mask := uint64(1) << uint(m-1)

	// Scanning runs past the end of the text so trailing pattern
	// characters may be dropped as deletions.
	finish := n + m

	var last []uint64
	for errs := 0; errs <= m; errs++ {
		if float64(errs)/float64(m) > threshold {
			break
		}

		bits := make([]uint64, finish+2)
		bits[finish+1] = (uint64(1) << uint(errs)) - 1

		for j := finish; j >= 1; j-- {
			var charMatch uint64
			if j-1 < n {
				charMatch = c.alphabet[text[j-1]]
			}

			bits[j] = ((bits[j+1] << 1) | 1) & charMatch
			if errs > 0 {
				bits[j] |= ((last[j+1] | last[j]) << 1) | 1 | last[j+1]
			}

			if bits[j]&mask != 0 {
				return true, errs
			}
		}
		last = bits
	}
	return false, 0
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
