// Package column holds the column registry of the row pipeline.
//
// A Definition describes one column: the dot-separated field path used
// to read values from rows, whether the column is sortable, searchable
// and tokenized, and optional per-column callbacks (tokenizer, filter
// predicate, sort-value extractor). Definitions are immutable once
// registered.
//
// A State carries the mutable UI-facing side of a column: visibility, a
// width hint and the active sort. Multi-column sorting is priority
// based; lower priority compares first, and activating a sort assigns
// the new most-significant priority without renumbering existing ones:
//
//	reg := column.NewRegistry(
//	    column.Definition{Field: "name", Sortable: true, Searchable: true, Tokenize: true},
//	    column.Definition{Field: "age", Sortable: true},
//	)
//	_ = reg.CycleSort("age", false)  // age asc
//	_ = reg.CycleSort("name", false) // name asc, now most significant
package column
