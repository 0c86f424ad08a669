package rowmeta

import (
	"context"
	"log/slog"
	"reflect"
	"testing"

	"github.com/hupe1980/gridgo/column"
	"github.com/hupe1980/gridgo/search"
)

type warnCounter struct {
	warns int
}

func (h *warnCounter) Enabled(context.Context, slog.Level) bool { return true }
func (h *warnCounter) Handle(_ context.Context, r slog.Record) error {
	if r.Level == slog.LevelWarn {
		h.warns++
	}
	return nil
}
func (h *warnCounter) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *warnCounter) WithGroup(string) slog.Handler      { return h }

func nameReg() *column.Registry {
	return column.NewRegistry(
		column.Definition{Field: "name", Sortable: true, Searchable: true, Tokenize: true},
		column.Definition{Field: "age", Sortable: true},
	)
}

func TestBuildRanksNumericAware(t *testing.T) {
	rows := []map[string]any{
		{"name": "item10"},
		{"name": "Item1"},
		{"name": "item2"},
	}
	b := &Builder[map[string]any]{}
	metas := b.Build(rows, nameReg())

	rank := func(i int) int {
		r, ok := metas[i].Rank("name")
		if !ok {
			t.Fatalf("row %d has no rank", i)
		}
		return r
	}

	// Collation is case-insensitive and numeric aware: Item1 < item2 < item10.
	if !(rank(1) < rank(2) && rank(2) < rank(0)) {
		t.Fatalf("ranks = [%d %d %d], want Item1 < item2 < item10", rank(0), rank(1), rank(2))
	}
}

func TestBuildRanksMissingValue(t *testing.T) {
	rows := []map[string]any{
		{"name": "b"},
		{},
		{"name": "a"},
	}
	b := &Builder[map[string]any]{}
	metas := b.Build(rows, nameReg())

	if _, ok := metas[1].Rank("name"); ok {
		t.Fatal("missing value unexpectedly got a rank")
	}
	ra, _ := metas[2].Rank("name")
	rb, _ := metas[0].Rank("name")
	if !(ra < rb) {
		t.Fatalf("rank(a)=%d, rank(b)=%d, want a < b", ra, rb)
	}
	if ra != 0 {
		t.Fatalf("ranks are not dense 0-based: rank(a)=%d", ra)
	}
}

func TestBuildRanksCustomSortValue(t *testing.T) {
	reg := column.NewRegistry(column.Definition{
		Field:    "severity",
		Sortable: true,
		SortValue: func(v any) any {
			order := map[string]int{"low": 1, "medium": 2, "high": 3}
			return order[v.(string)]
		},
	})
	rows := []map[string]any{
		{"severity": "medium"},
		{"severity": "high"},
		{"severity": "low"},
	}
	b := &Builder[map[string]any]{}
	metas := b.Build(rows, reg)

	low, _ := metas[2].Rank("severity")
	med, _ := metas[0].Rank("severity")
	high, _ := metas[1].Rank("severity")
	if !(low < med && med < high) {
		t.Fatalf("ranks low=%d medium=%d high=%d violate extractor order", low, med, high)
	}
}

func TestBuildCompareValuesAndTokens(t *testing.T) {
	rows := []map[string]any{
		{"name": "Apple Pie", "age": 3},
	}
	b := &Builder[map[string]any]{}
	m := b.Build(rows, nameReg())[0]

	if got := m.CompareValue("name"); got != "apple pie" {
		t.Errorf("CompareValue(name) = %q, want %q", got, "apple pie")
	}
	if got := m.Tokens("name"); !reflect.DeepEqual(got, []string{"apple", "pie"}) {
		t.Errorf("Tokens(name) = %v", got)
	}
	// Non-string values get neither compare value nor tokens.
	if got := m.CompareValue("age"); got != "" {
		t.Errorf("CompareValue(age) = %q, want empty", got)
	}
}

func TestBuildCustomColumnTokenizer(t *testing.T) {
	reg := column.NewRegistry(column.Definition{
		Field:      "tags",
		Searchable: true,
		Tokenize:   true,
		Tokenizer: func(s string) []string {
			return []string{"custom"}
		},
	})
	rows := []map[string]any{{"tags": "a,b,c"}}
	b := &Builder[map[string]any]{}
	m := b.Build(rows, reg)[0]

	if got := m.Tokens("tags"); !reflect.DeepEqual(got, []string{"custom"}) {
		t.Errorf("Tokens(tags) = %v, want [custom]", got)
	}
}

func TestBuildIDs(t *testing.T) {
	t.Run("nil callback uses index silently", func(t *testing.T) {
		h := &warnCounter{}
		b := &Builder[map[string]any]{Logger: slog.New(h)}
		metas := b.Build([]map[string]any{{}, {}}, nameReg())
		if metas[0].ID != "0" || metas[1].ID != "1" {
			t.Fatalf("ids = %q %q, want 0 1", metas[0].ID, metas[1].ID)
		}
		if h.warns != 0 {
			t.Fatalf("warns = %d, want 0", h.warns)
		}
	})

	t.Run("callback ids kept", func(t *testing.T) {
		b := &Builder[map[string]any]{
			RowID: func(row map[string]any, _ int) string { return row["id"].(string) },
		}
		metas := b.Build([]map[string]any{{"id": "x"}, {"id": "y"}}, nameReg())
		if metas[0].ID != "x" || metas[1].ID != "y" {
			t.Fatalf("ids = %q %q, want x y", metas[0].ID, metas[1].ID)
		}
	})

	t.Run("empty and duplicate ids fall back to index, one warning", func(t *testing.T) {
		h := &warnCounter{}
		b := &Builder[map[string]any]{
			RowID:  func(row map[string]any, _ int) string { id, _ := row["id"].(string); return id },
			Logger: slog.New(h),
		}
		rows := []map[string]any{
			{"id": "dup"},
			{"id": "dup"}, // duplicate
			{},            // empty twice
			{},
		}
		metas := b.Build(rows, nameReg())
		if metas[0].ID != "dup" {
			t.Fatalf("metas[0].ID = %q, want dup", metas[0].ID)
		}
		if metas[1].ID != "1" || metas[2].ID != "2" || metas[3].ID != "3" {
			t.Fatalf("fallback ids = %q %q %q, want 1 2 3", metas[1].ID, metas[2].ID, metas[3].ID)
		}
		if h.warns != 1 {
			t.Fatalf("warns = %d, want exactly 1", h.warns)
		}
	})
}

func TestMetaResetMatch(t *testing.T) {
	b := &Builder[map[string]any]{}
	m := b.Build([]map[string]any{{"name": "x"}}, nameReg())[0]
	m.Score = 5
	m.AddHighlights("name", []search.Range{{Start: 0, End: 1}})
	m.ResetMatch()
	if m.Score != 0 || m.Highlights != nil {
		t.Fatalf("after ResetMatch: score=%v highlights=%v", m.Score, m.Highlights)
	}
}
