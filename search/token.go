package search

import (
	"regexp"
	"strings"
)

// Token is one unit of a compiled query. Quoted tokens bypass per-field
// tokenization and match against the whole field value; unquoted tokens
// match against cached per-field tokens when available.
type Token struct {
	Value  string
	Quoted bool
}

// Tokenizer splits a raw string into tokens. Implementations must
// lowercase token values and must be pure and synchronous.
type Tokenizer func(s string) []Token

var tokenPattern = regexp.MustCompile(`"([^"]*)"|(\S+)`)

// DefaultTokenizer treats double-quoted substrings as single quoted
// tokens and otherwise splits on whitespace-delimited runs, lowercasing
// everything.
func DefaultTokenizer(s string) []Token {
	var out []Token
	for _, m := range tokenPattern.FindAllStringSubmatch(s, -1) {
		if strings.HasPrefix(m[0], `"`) {
			if m[1] != "" {
				out = append(out, Token{Value: strings.ToLower(m[1]), Quoted: true})
			}
			continue
		}
		out = append(out, Token{Value: strings.ToLower(m[2])})
	}
	return out
}

// Values tokenizes s and returns the bare token values. This is the
// default per-field tokenizer used when a column does not bring its
// own.
func Values(tok Tokenizer, s string) []string {
	if tok == nil {
		tok = DefaultTokenizer
	}
	tokens := tok(s)
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Value)
	}
	return out
}

// Compile turns a raw query into query tokens. The whole lowercased
// query always becomes one quoted token; when tokenized search is
// enabled, the tokenizer's output is appended. An empty query compiles
// to no tokens at all.
func Compile(raw string, tokenized bool, tok Tokenizer) []Token {
	if raw == "" {
		return nil
	}
	out := []Token{{Value: strings.ToLower(raw), Quoted: true}}
	if tokenized {
		if tok == nil {
			tok = DefaultTokenizer
		}
		out = append(out, tok(raw)...)
	}
	return out
}
