package rowmeta

import (
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/hupe1980/gridgo/column"
	"github.com/hupe1980/gridgo/field"
	"github.com/hupe1980/gridgo/search"
)

// IDFunc derives a stable row id from a row and its dataset index.
// Implementations must be pure and synchronous. An empty result, or a
// result already assigned to an earlier row, makes the indexer fall
// back to the index itself.
type IDFunc[T any] func(row T, index int) string

// Builder builds the full metadata set for a dataset. Metadata is
// rebuilt from scratch whenever the dataset reference changes; partial
// reuse across dataset replacements is never attempted.
type Builder[T any] struct {
	// RowID derives row ids. Nil means every row keys off its index.
	RowID IDFunc[T]

	// Tokenizer is the table-wide tokenizer, used for columns without
	// their own. Nil means search.DefaultTokenizer.
	Tokenizer search.Tokenizer

	// Locale selects the collation rules for rank maps.
	Locale language.Tag

	// Logger receives the one-time fallback-id warning. Nil disables it.
	Logger *slog.Logger
}

// Build creates one Meta per row: derived id, original index, sort
// ranks, compare values and token caches. The pass is O(rows x columns)
// plus one collated sort per sortable column; rank maps for the
// sortable columns are built concurrently.
func (b *Builder[T]) Build(rows []T, reg *column.Registry) []*Meta {
	defs := reg.Definitions()

	// One extraction pass per column; the values feed both the rank
	// maps and the per-row caches.
	values := make([][]any, len(defs))
	for ci, d := range defs {
		col := make([]any, len(rows))
		for ri, row := range rows {
			col[ri] = field.Lookup(row, d.Field)
		}
		values[ci] = col
	}

	ranks := make([]map[string]int, len(defs))
	var g errgroup.Group
	for ci, d := range defs {
		if !d.Sortable {
			continue
		}
		ci, d := ci, d
		g.Go(func() error {
			ranks[ci] = buildRankMap(values[ci], extractor(d.SortValue), b.Locale)
			return nil
		})
	}
	_ = g.Wait()

	metas := make([]*Meta, len(rows))
	seen := make(map[string]struct{}, len(rows))
	warned := false
	for ri := range rows {
		id, fallback := b.deriveID(rows[ri], ri, seen)
		if fallback && !warned && b.RowID != nil {
			warned = true
			if b.Logger != nil {
				b.Logger.Warn("row id callback returned empty or duplicate id, falling back to row index",
					"index", ri,
				)
			}
		}
		seen[id] = struct{}{}

		m := &Meta{
			ID:      id,
			Index:   ri,
			ranks:   make(map[string]int, len(defs)),
			compare: make(map[string]string),
			tokens:  make(map[string][]string),
		}

		for ci, d := range defs {
			v := values[ci][ri]
			if v == nil {
				continue
			}
			if d.Sortable {
				if r, ok := ranks[ci][valueString(v)]; ok {
					m.ranks[d.Field] = r
				}
			}
			s, isString := v.(string)
			if !isString {
				continue
			}
			m.compare[d.Field] = strings.ToLower(s)
			if d.Searchable && d.Tokenize && s != "" {
				m.tokens[d.Field] = b.tokenizeField(d, s)
			}
		}
		metas[ri] = m
	}
	return metas
}

func (b *Builder[T]) deriveID(row T, index int, seen map[string]struct{}) (id string, fallback bool) {
	if b.RowID != nil {
		id = b.RowID(row, index)
		if id != "" {
			if _, dup := seen[id]; !dup {
				return id, false
			}
		}
	}
	return strconv.Itoa(index), b.RowID != nil
}

func (b *Builder[T]) tokenizeField(d column.Definition, s string) []string {
	if d.Tokenizer != nil {
		return d.Tokenizer(s)
	}
	return search.Values(b.Tokenizer, s)
}

func extractor(fn column.SortValueFunc) func(any) any {
	if fn == nil {
		return nil
	}
	return func(v any) any { return fn(v) }
}
