package field

import "testing"

type address struct {
	City string
	Zip  string
}

type person struct {
	Name    string
	Age     int
	Address *address
	Tags    map[string]string
}

func TestLookup(t *testing.T) {
	row := map[string]any{
		"name": "Ada",
		"meta": map[string]any{
			"owner": map[string]any{"email": "ada@example.com"},
		},
	}
	p := person{
		Name:    "Grace",
		Age:     36,
		Address: &address{City: "Arlington"},
		Tags:    map[string]string{"team": "compilers"},
	}

	tests := []struct {
		name string
		v    any
		path string
		want any
	}{
		{name: "map top level", v: row, path: "name", want: "Ada"},
		{name: "map nested", v: row, path: "meta.owner.email", want: "ada@example.com"},
		{name: "map missing intermediate", v: row, path: "meta.billing.email", want: nil},
		{name: "map missing leaf", v: row, path: "missing", want: nil},
		{name: "struct field", v: p, path: "Name", want: "Grace"},
		{name: "struct field case folded", v: p, path: "age", want: 36},
		{name: "struct through pointer", v: p, path: "Address.City", want: "Arlington"},
		{name: "struct string map", v: p, path: "Tags.team", want: "compilers"},
		{name: "pointer row", v: &p, path: "Name", want: "Grace"},
		{name: "nil pointer intermediate", v: person{}, path: "Address.City", want: nil},
		{name: "nil row", v: nil, path: "anything", want: nil},
		{name: "scalar row", v: 42, path: "anything", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lookup(tt.v, tt.path)
			if got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
