package gridgo_test

import (
	"fmt"

	"github.com/hupe1980/gridgo"
	"github.com/hupe1980/gridgo/column"
	"github.com/hupe1980/gridgo/filter"
)

func Example() {
	view := gridgo.New[map[string]any]([]column.Definition{
		{Field: "name", Sortable: true, Searchable: true, Tokenize: true},
		{Field: "age", Sortable: true},
	})

	view.SetRows([]map[string]any{
		{"name": "Apple Pie", "age": 3},
		{"name": "Apple", "age": 1},
		{"name": "Pineapple", "age": 2},
		{"name": "Cherry", "age": 4},
	})
	view.SetQuery("apple")

	for _, row := range view.Rows() {
		fmt.Println(row["name"])
	}
	// Output:
	// Apple
	// Apple Pie
	// Pineapple
}

func ExampleView_SetFilter() {
	view := gridgo.New[map[string]any]([]column.Definition{
		{Field: "name", Sortable: true},
		{Field: "status"},
	})

	view.SetRows([]map[string]any{
		{"name": "alpha", "status": "open"},
		{"name": "beta", "status": "closed"},
		{"name": "gamma", "status": "pending"},
	})
	view.SetFilter(filter.Criteria{"status": []any{"open", "pending"}})

	for _, row := range view.Rows() {
		fmt.Println(row["name"])
	}
	// Output:
	// alpha
	// gamma
}

func ExampleView_Batch() {
	view := gridgo.New[map[string]any]([]column.Definition{
		{Field: "name", Sortable: true},
		{Field: "age", Sortable: true},
	})

	view.Batch(func(v *gridgo.View[map[string]any]) {
		v.SetRows([]map[string]any{
			{"name": "b", "age": 30},
			{"name": "a", "age": 30},
			{"name": "c", "age": 25},
		})
		_ = v.SetSort("name", column.Ascending, false)
		_ = v.SetSort("age", column.Ascending, false)
	})

	for _, row := range view.Rows() {
		fmt.Printf("%s %d\n", row["name"], row["age"])
	}
	// Output:
	// c 25
	// a 30
	// b 30
}

func ExampleView_CycleSort() {
	view := gridgo.New[map[string]any]([]column.Definition{
		{Field: "name", Sortable: true},
	})
	view.SetRows([]map[string]any{
		{"name": "banana"},
		{"name": "apple"},
	})

	// unsorted -> asc
	_ = view.CycleSort("name", true)
	state, _ := view.ColumnState("name")
	fmt.Println(state.Sort.Order)

	// asc -> desc
	_ = view.CycleSort("name", true)
	state, _ = view.ColumnState("name")
	fmt.Println(state.Sort.Order)
	fmt.Println(view.Rows()[0]["name"])
	// Output:
	// asc
	// desc
	// banana
}
