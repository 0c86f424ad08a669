package gridgo

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/gridgo/column"
	"github.com/hupe1980/gridgo/field"
	"github.com/hupe1980/gridgo/filter"
	"github.com/hupe1980/gridgo/rowmeta"
	"github.com/hupe1980/gridgo/search"
)

// ensureLocked reconciles the memoized view with the dirty flags:
// a metadata rebuild implies a filter pass, a filter pass implies a
// sort pass, and a clean view returns as-is.
func (v *View[T]) ensureLocked() {
	if v.metaDirty {
		v.rebuildMetaLocked()
		v.metaDirty = false
		v.filterDirty = true
	}

	switch {
	case v.filterDirty:
		v.runFilterLocked()
		v.runSortLocked()
		v.filterDirty = false
		v.sortDirty = false
	case v.sortDirty:
		v.runSortLocked()
		v.sortDirty = false
	}
}

func (v *View[T]) rebuildMetaLocked() {
	start := time.Now()
	v.metas = v.builder.Build(v.rows, v.registry)
	duration := time.Since(start)
	v.metrics.RecordIndex(len(v.rows), duration)
	v.logger.LogIndex(len(v.rows), v.registry.Len(), duration)
}

// runFilterLocked performs the filter-and-search pass: reset transient
// match state, collect the surviving row set as a bitmap of dense
// dataset positions, then score the survivors against the compiled
// query. Filtering takes precedence: a row failing its filter is
// excluded regardless of query match.
func (v *View[T]) runFilterLocked() {
	start := time.Now()

	for _, m := range v.metas {
		m.ResetMatch()
	}

	passing := roaring.New()
	for i, row := range v.rows {
		if v.rowPassesLocked(row, i) {
			passing.Add(uint32(i))
		}
	}

	tokens := search.Compile(v.query, v.tokenized, v.tokenizer)
	searchable := v.searchableColumnsLocked()

	v.visible = v.visible[:0]
	it := passing.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if len(tokens) == 0 {
			v.visible = append(v.visible, i)
			continue
		}
		m := v.metas[i]
		m.Score = v.scoreRowLocked(m, searchable, tokens)
		if m.Score > 0 {
			v.visible = append(v.visible, i)
		}
	}

	duration := time.Since(start)
	v.metrics.RecordFilter(len(v.rows), len(v.visible), duration)
	v.logger.LogFilter(len(v.rows), len(v.visible), len(tokens), duration)
}

func (v *View[T]) rowPassesLocked(row T, index int) bool {
	if v.filterFn != nil {
		return v.filterFn(row, index)
	}
	for key, criterion := range v.criteria {
		// An absent column simply has no custom predicate; the generic
		// rules still apply.
		var custom filter.Predicate
		if def, ok := v.registry.Definition(key); ok {
			custom = filter.Predicate(def.Filter)
		}
		if !filter.Apply(field.Lookup(row, key), criterion, custom) {
			return false
		}
	}
	return true
}

// scoreRowLocked sums the relevance of every (searchable field, query
// token) pair and records highlight ranges as it goes.
func (v *View[T]) scoreRowLocked(m *rowmeta.Meta, searchable []column.Definition, tokens []search.Token) float64 {
	var total float64
	for _, def := range searchable {
		cv := m.CompareValue(def.Field)
		if cv == "" {
			continue
		}
		fieldTokens := m.Tokens(def.Field)
		for _, tok := range tokens {
			score, ranges := search.MatchField(tok, cv, fieldTokens, v.scoring)
			if score > 0 {
				total += score
				m.AddHighlights(def.Field, ranges)
			}
		}
	}
	return total
}

func (v *View[T]) searchableColumnsLocked() []column.Definition {
	var out []column.Definition
	for _, def := range v.registry.Definitions() {
		if def.Searchable {
			out = append(out, def)
		}
	}
	return out
}

// runSortLocked orders the visible rows: relevance score descending
// (only while scoring is enabled and a query is active), then each
// active column in priority order, then the original insertion index as
// a deterministic fallback independent of the sort routine's stability.
func (v *View[T]) runSortLocked() {
	start := time.Now()
	active := v.registry.ActiveSorts()
	byScore := v.scoring && v.query != ""

	slices.SortFunc(v.visible, func(a, b int) int {
		ma, mb := v.metas[a], v.metas[b]

		if byScore {
			if c := cmp.Compare(mb.Score, ma.Score); c != 0 {
				return c
			}
		}

		for _, s := range active {
			ra, ok := ma.Rank(s.Definition.Field)
			if !ok {
				ra = math.MinInt
			}
			rb, ok := mb.Rank(s.Definition.Field)
			if !ok {
				rb = math.MinInt
			}
			var c int
			if s.Order == column.Descending {
				c = cmp.Compare(rb, ra)
			} else {
				c = cmp.Compare(ra, rb)
			}
			if c != 0 {
				return c
			}
		}

		return cmp.Compare(ma.Index, mb.Index)
	})

	duration := time.Since(start)
	v.metrics.RecordSort(len(v.visible), duration)
	v.logger.LogSort(len(v.visible), len(active), duration)
}
