package filter

import (
	"regexp"
	"strings"
	"testing"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		criterion any
		custom    Predicate
		want      bool
	}{
		{name: "equality string", value: "open", criterion: "open", want: true},
		{name: "equality mismatch", value: "open", criterion: "closed", want: false},
		{name: "equality int", value: 30, criterion: 30, want: true},
		{name: "equality numeric cross type", value: 30, criterion: float64(30), want: true},
		{name: "equality nil both", value: nil, criterion: nil, want: true},
		{name: "equality nil value", value: nil, criterion: "x", want: false},
		{name: "criterion slice OR", value: "pending", criterion: []any{"open", "pending"}, want: true},
		{name: "criterion slice OR miss", value: "closed", criterion: []any{"open", "pending"}, want: false},
		{name: "criterion typed slice", value: "pending", criterion: []string{"open", "pending"}, want: true},
		{name: "empty criterion slice is no restriction", value: "anything", criterion: []any{}, want: true},
		{name: "value slice OR", value: []any{"a", "b"}, criterion: "b", want: true},
		{name: "value slice OR miss", value: []any{"a", "b"}, criterion: "c", want: false},
		{name: "empty value slice never matches", value: []any{}, criterion: "a", want: false},
		{name: "regexp", value: "Apple Pie", criterion: regexp.MustCompile(`(?i)^app`), want: true},
		{name: "regexp non-string value coerces", value: 1234, criterion: regexp.MustCompile(`^12`), want: true},
		{name: "regexp nil value coerces to empty", value: nil, criterion: regexp.MustCompile(`^$`), want: true},
		{
			name:      "custom predicate wins over generic rules",
			value:     "LOUD",
			criterion: "loud",
			custom: func(value, criterion any) bool {
				return strings.EqualFold(value.(string), criterion.(string))
			},
			want: true,
		},
		{
			name:      "custom predicate applied per slice element",
			value:     "x",
			criterion: []any{"y", "x"},
			custom:    func(value, criterion any) bool { return value == criterion },
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(tt.value, tt.criterion, tt.custom)
			if got != tt.want {
				t.Errorf("Matches(%v, %v) = %v, want %v", tt.value, tt.criterion, got, tt.want)
			}
		})
	}
}

func TestApplyValueFunc(t *testing.T) {
	crit := ValueFunc(func(v any) bool {
		n, ok := v.(int)
		return ok && n >= 18
	})
	if !Apply(21, crit, nil) {
		t.Error("Apply(21, >=18) = false, want true")
	}
	if Apply(12, crit, nil) {
		t.Error("Apply(12, >=18) = true, want false")
	}

	// A bare func criterion is invoked directly too.
	bare := func(v any) bool { return v == "yes" }
	if !Apply("yes", bare, nil) {
		t.Error("Apply with bare func criterion = false, want true")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{value: "s", want: "s"},
		{value: 42, want: "42"},
		{value: 4.5, want: "4.5"},
		{value: true, want: "true"},
		{value: nil, want: ""},
	}
	for _, tt := range tests {
		if got := Stringify(tt.value); got != tt.want {
			t.Errorf("Stringify(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
