package search

import "strings"

// MatchField evaluates one query token against one field. compareValue
// is the cached lowercased field value, tokens the cached per-field
// token list (nil when the column is not tokenized).
//
// Quoted tokens, and fields without cached tokens, match against the
// whole value. Unquoted tokens on tokenized fields match per token;
// with scoring enabled, multiple partial token matches in one field
// compound. Highlight ranges always come from scanning the field value
// itself, so token-space matches still highlight in character space.
func MatchField(tok Token, compareValue string, tokens []string, scoring bool) (float64, []Range) {
	if tok.Value == "" {
		return 0, nil
	}

	if tok.Quoted || len(tokens) == 0 {
		if scoring {
			return Score(tok.Value, compareValue)
		}
		if !strings.Contains(compareValue, tok.Value) {
			return 0, nil
		}
		return 1, Occurrences(compareValue, tok.Value)
	}

	var total float64
	if scoring {
		for _, t := range tokens {
			if s, _ := Score(tok.Value, t); s > 0 {
				total += s
			}
		}
	} else {
		for _, t := range tokens {
			if strings.Contains(t, tok.Value) {
				total = 1
				break
			}
		}
	}
	if total == 0 {
		return 0, nil
	}
	return total, Occurrences(compareValue, tok.Value)
}
