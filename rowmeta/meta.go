package rowmeta

import "github.com/hupe1980/gridgo/search"

// Meta is the cached per-row derived state, distinct from the row's own
// data: stable id, original dataset index, per-column sort ranks,
// lowercased compare values and token caches, plus the transient match
// state written by each filter pass.
type Meta struct {
	// ID is the derived row id. When the id callback yields an empty or
	// duplicate id, the row's original index is substituted.
	ID string

	// Index is the position in the unfiltered, insertion-ordered
	// dataset.
	Index int

	ranks   map[string]int
	compare map[string]string
	tokens  map[string][]string

	// Score is the relevance total of the last filter pass.
	Score float64

	// Highlights holds the per-field match ranges of the last filter
	// pass, not pre-merged.
	Highlights map[string][]search.Range
}

// Rank returns the dense sort rank of this row's value in the given
// column. ok is false when the value was null or undefined.
func (m *Meta) Rank(field string) (rank int, ok bool) {
	rank, ok = m.ranks[field]
	return rank, ok
}

// CompareValue returns the cached lowercased value of a string field,
// or the empty string for non-string values.
func (m *Meta) CompareValue(field string) string {
	return m.compare[field]
}

// Tokens returns the cached token list of a tokenized searchable field.
func (m *Meta) Tokens(field string) []string {
	return m.tokens[field]
}

// ResetMatch clears the transient search state so stale scores and
// highlights never leak across filter passes.
func (m *Meta) ResetMatch() {
	m.Score = 0
	m.Highlights = nil
}

// AddHighlights records match ranges for a field.
func (m *Meta) AddHighlights(field string, ranges []search.Range) {
	if len(ranges) == 0 {
		return
	}
	if m.Highlights == nil {
		m.Highlights = make(map[string][]search.Range)
	}
	m.Highlights[field] = append(m.Highlights[field], ranges...)
}
