// Package gridgo computes, from an arbitrary in-memory dataset, the
// subset and order of rows a tabular UI should currently present, given
// column definitions, a free-text query, structured filter criteria and
// one-or-many active column sorts.
//
// The pipeline is pure row processing with production-ready pieces:
//
//   - Column registry with display/internal roles and per-column
//     callbacks (tokenizer, filter predicate, sort-value extractor)
//   - Metadata indexing with locale-aware, numeric-aware rank maps so
//     sorting compares integers, never strings
//   - Structured or callback filtering with OR-slice, regexp and
//     custom-predicate criteria
//   - Tokenized, relevance-scored search with per-field highlight ranges
//   - Stable priority-based multi-column sort
//   - Dirty-flag scheduling: writes are cheap, recomputation is lazy
//     and runs at most once per read
//
// It renders nothing, persists nothing and knows nothing about pixels;
// windowing, persistence and DOM concerns belong to the consumer.
//
// # Quick Start
//
//	view := gridgo.New[map[string]any]([]column.Definition{
//	    {Field: "name", Sortable: true, Searchable: true, Tokenize: true},
//	    {Field: "age", Sortable: true},
//	})
//	view.SetRows(rows)
//	view.SetQuery("apple")
//	_ = view.CycleSort("age", false)
//	for i, row := range view.Rows() {
//	    id, _ := view.RowID(i)
//	    hl, _ := view.RowHighlights(i)
//	    render(id, row, hl)
//	}
//
// Group many writes into one recomputation:
//
//	view.Batch(func(v *gridgo.View[map[string]any]) {
//	    v.SetRows(rows)
//	    v.SetFilter(filter.Criteria{"status": []any{"open", "pending"}})
//	    v.SetQuery("invoice")
//	})
package gridgo

import (
	"sync"

	"github.com/hupe1980/gridgo/column"
	"github.com/hupe1980/gridgo/filter"
	"github.com/hupe1980/gridgo/rowmeta"
	"github.com/hupe1980/gridgo/search"
)

// View is the row-pipeline controller: it owns the dataset, the column
// registry, the filter/query/sort state and the lazily recomputed
// visible view.
//
// There is one logical writer; a single mutex makes the lazy Rows()
// read safe to call from anywhere. All user callbacks run unguarded: a
// panicking callback aborts the current pipeline run.
type View[T any] struct {
	mu       sync.Mutex
	registry *column.Registry

	rows  []T
	metas []*rowmeta.Meta

	filterFn  filter.Func[T]
	criteria  filter.Criteria
	query     string
	tokenizer search.Tokenizer
	tokenized bool
	scoring   bool

	rowID   rowmeta.IDFunc[T]
	builder rowmeta.Builder[T]

	metaDirty   bool
	filterDirty bool
	sortDirty   bool

	// visible holds dataset positions of the surviving rows in their
	// final order.
	visible []int

	logger  *Logger
	metrics MetricsCollector
}

// New creates a View over the given column definitions. The dataset
// starts empty; load it with SetRows.
func New[T any](defs []column.Definition, optFns ...Option[T]) *View[T] {
	opts := applyOptions(optFns)

	v := &View[T]{
		registry:  column.NewRegistry(defs...),
		tokenizer: opts.tokenizer,
		tokenized: opts.tokenized,
		scoring:   opts.scoring,
		rowID:     opts.rowID,
		logger:    opts.logger,
		metrics:   opts.metricsCollector,
	}
	v.builder = rowmeta.Builder[T]{
		RowID:     opts.rowID,
		Tokenizer: opts.tokenizer,
		Locale:    opts.locale,
		Logger:    opts.logger.Logger,
	}
	return v
}

// SetRows replaces the dataset. All row metadata is rebuilt on the next
// read; nothing is reused across a dataset replacement, even for rows
// that are referentially unchanged.
func (v *View[T]) SetRows(rows []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rows = rows
	v.metaDirty = true
	v.filterDirty = true
}

// SetColumns replaces the full column definition set. Column state
// (visibility, sorts, widths) is reset and metadata is rebuilt.
func (v *View[T]) SetColumns(defs []column.Definition) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.registry.Replace(defs)
	v.metaDirty = true
	v.filterDirty = true
}

// Columns returns the registered column definitions.
func (v *View[T]) Columns() []column.Definition {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.registry.Definitions()
}

// ColumnState returns a copy of the mutable state of one column.
func (v *View[T]) ColumnState(fld string) (column.State, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	s, err := v.registry.State(fld)
	return s, translateError(err)
}

// SetColumnVisible toggles a column's visibility. Hiding a sorted
// column removes it from the active sort set.
func (v *View[T]) SetColumnVisible(fld string, visible bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.registry.SetVisible(fld, visible); err != nil {
		return translateError(err)
	}
	v.sortDirty = true
	return nil
}

// SetColumnWidth records a width hint for the consuming UI. It never
// triggers recomputation.
func (v *View[T]) SetColumnWidth(fld string, width float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return translateError(v.registry.SetWidth(fld, width))
}

// SetFilter installs criteria-map filtering and clears any callback
// filter. Pass nil to remove all restrictions.
func (v *View[T]) SetFilter(criteria filter.Criteria) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria = criteria
	v.filterFn = nil
	v.filterDirty = true
}

// SetFilterFunc installs callback filtering and clears any criteria
// map. Pass nil to remove all restrictions.
func (v *View[T]) SetFilterFunc(fn filter.Func[T]) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filterFn = fn
	v.criteria = nil
	v.filterDirty = true
}

// SetQuery replaces the free-text search query. An empty query keeps
// every filtered row with score zero.
func (v *View[T]) SetQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.query == query {
		return
	}
	v.query = query
	v.filterDirty = true
}

// Query returns the current search query.
func (v *View[T]) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// SetTokenizer replaces the table-wide tokenizer. Token caches are
// rebuilt on the next read.
func (v *View[T]) SetTokenizer(tok search.Tokenizer) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if tok == nil {
		tok = search.DefaultTokenizer
	}
	v.tokenizer = tok
	v.builder.Tokenizer = tok
	v.metaDirty = true
	v.filterDirty = true
}

// SetTokenizedSearch toggles tokenized search at runtime.
func (v *View[T]) SetTokenizedSearch(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.tokenized == enabled {
		return
	}
	v.tokenized = enabled
	v.filterDirty = true
}

// SetScoring toggles relevance scoring at runtime.
func (v *View[T]) SetScoring(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.scoring == enabled {
		return
	}
	v.scoring = enabled
	v.filterDirty = true
}

// CycleSort advances a column through unsorted -> asc -> desc ->
// unsorted. clearOthers implements exclusive vs. additive multi-column
// sort as one atomic transition. Unknown or unsortable columns fail
// fast.
func (v *View[T]) CycleSort(fld string, clearOthers bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.registry.CycleSort(fld, clearOthers); err != nil {
		return translateError(err)
	}
	v.sortDirty = true
	return nil
}

// SetSort assigns an explicit sort order to a column.
func (v *View[T]) SetSort(fld string, order column.Order, clearOthers bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.registry.SetSort(fld, order, clearOthers); err != nil {
		return translateError(err)
	}
	v.sortDirty = true
	return nil
}

// ClearSort removes a column's sort state. Its priority is discarded,
// not handed to another column.
func (v *View[T]) ClearSort(fld string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.registry.ClearSort(fld); err != nil {
		return translateError(err)
	}
	v.sortDirty = true
	return nil
}

// Batch groups several state writes and forces a single pipeline run
// when fn returns. Individual writes are cheap dirty-flag updates, so
// the batch exists to make the commit point explicit rather than to
// suppress intermediate work.
func (v *View[T]) Batch(fn func(view *View[T])) {
	fn(v)
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureLocked()
}

// Rows returns the filtered-and-sorted visible rows. The pipeline runs
// lazily: a read after filter-affecting writes runs
// Filter -> Search -> Sort, a read after sort-only writes runs Sort
// alone, and an unchanged view returns the memoized result. The
// returned slice is a defensive copy.
func (v *View[T]) Rows() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureLocked()

	out := make([]T, len(v.visible))
	for i, idx := range v.visible {
		out[i] = v.rows[idx]
	}
	return out
}

// Len returns the number of currently visible rows.
func (v *View[T]) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureLocked()
	return len(v.visible)
}

// RowID returns the stable id of the i-th visible row.
func (v *View[T]) RowID(i int) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureLocked()
	m, err := v.visibleMetaLocked(i)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

// RowSourceIndex returns the original dataset index of the i-th visible
// row.
func (v *View[T]) RowSourceIndex(i int) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureLocked()
	m, err := v.visibleMetaLocked(i)
	if err != nil {
		return 0, err
	}
	return m.Index, nil
}

// RowScore returns the relevance score of the i-th visible row from the
// last filter pass. Zero while no query is active.
func (v *View[T]) RowScore(i int) (float64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureLocked()
	m, err := v.visibleMetaLocked(i)
	if err != nil {
		return 0, err
	}
	return m.Score, nil
}

// RowHighlights returns the per-field highlight ranges of the i-th
// visible row. Ranges are half-open byte spans and are not merged;
// merging overlapping ranges belongs to the rendering layer.
func (v *View[T]) RowHighlights(i int) (map[string][]search.Range, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureLocked()
	m, err := v.visibleMetaLocked(i)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]search.Range, len(m.Highlights))
	for f, rs := range m.Highlights {
		cp := make([]search.Range, len(rs))
		copy(cp, rs)
		out[f] = cp
	}
	return out, nil
}

func (v *View[T]) visibleMetaLocked(i int) (*rowmeta.Meta, error) {
	if i < 0 || i >= len(v.visible) {
		return nil, ErrNotFound
	}
	return v.metas[v.visible[i]], nil
}

// Stats is a snapshot of the view's shape.
type Stats struct {
	// Rows is the unfiltered dataset size.
	Rows int
	// Visible is the number of rows surviving filter and search.
	Visible int
	// ActiveSorts is the number of visible columns with an active sort.
	ActiveSorts int
	// QueryTokens is the number of compiled query tokens.
	QueryTokens int
}

// Stats returns statistics about the current view.
func (v *View[T]) Stats() Stats {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureLocked()
	return Stats{
		Rows:        len(v.rows),
		Visible:     len(v.visible),
		ActiveSorts: len(v.registry.ActiveSorts()),
		QueryTokens: len(search.Compile(v.query, v.tokenized, v.tokenizer)),
	}
}
