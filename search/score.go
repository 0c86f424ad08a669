package search

import "strings"

// Range is a half-open [Start,End) byte span inside a field value.
// Offsets refer to the lowercase-folded value; for ASCII data they are
// identical to offsets into the original. Overlapping ranges are not
// merged here, merging belongs to the rendering layer.
type Range struct {
	Start, End int
}

// Relevance tiers. Exact matches rank above prefix matches, which rank
// above plain substring containment.
const (
	weightExact     = 100
	weightPrefix    = 50
	weightSubstring = 10
)

// Score computes the tiered relevance of query against target:
//
//	score = len(query) x weight x 1/(1+(len(target)-len(query)))
//
// The length ratio ranks exact and length-proximate matches above long
// targets that merely contain a short needle. A non-match scores 0 with
// no ranges. Both inputs are expected lowercased.
func Score(query, target string) (float64, []Range) {
	if query == "" || target == "" {
		return 0, nil
	}

	base := float64(len(query))
	specificity := 1 / (1 + float64(len(target)-len(query)))

	switch {
	case query == target:
		return base * weightExact * specificity, []Range{{0, len(target)}}
	case strings.HasPrefix(target, query):
		return base * weightPrefix * specificity, []Range{{0, len(query)}}
	}

	ranges := Occurrences(target, query)
	if len(ranges) == 0 {
		return 0, nil
	}
	return base * weightSubstring * specificity, ranges
}

// Occurrences locates every literal occurrence of needle in s,
// including overlapping ones.
func Occurrences(s, needle string) []Range {
	if needle == "" {
		return nil
	}
	var out []Range
	for i := 0; ; {
		j := strings.Index(s[i:], needle)
		if j < 0 {
			return out
		}
		start := i + j
		out = append(out, Range{Start: start, End: start + len(needle)})
		i = start + 1
	}
}
