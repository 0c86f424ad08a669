// Package search implements the free-text side of the row pipeline:
// query tokenization, tiered relevance scoring and highlight ranges.
//
// # Query compilation
//
// A raw query always compiles to one quoted token holding the whole
// lowercased string; with tokenized search enabled the tokenizer's
// output is appended:
//
//	search.Compile(`red "new york"`, true, nil)
//	// -> [{red "new york" quoted} {red} {new york quoted}]
//
// # Scoring
//
// Score is tiered: exact match (weight 100) > prefix (50) > substring
// (10), each scaled by query length and by how close the target's
// length is to the query's. For a query "apple":
//
//	"apple"     exact     highest
//	"apple pie" prefix    middle
//	"pineapple" substring lowest
//
// A row's total score is the sum over all searchable fields and query
// tokens; rows with a zero total are dropped while a query is active.
package search
