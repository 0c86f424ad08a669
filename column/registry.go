package column

import (
	"fmt"
	"sort"
)

// UnknownFieldError indicates an operation referenced a field that has
// no registered column.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("column: unknown field %q", e.Field)
}

// Registry holds the ordered column definitions and the mutable
// per-column state. It is the leaf dependency of the row pipeline and
// is not safe for concurrent use; the owning view serializes access.
type Registry struct {
	defs    []Definition
	byField map[string]int
	states  map[string]*State
}

// NewRegistry creates a registry for the given definitions. Display
// columns start visible, internal columns never become visible.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{}
	r.Replace(defs)
	return r
}

// Replace swaps the full definition set. All per-column state is reset;
// definitions are immutable once registered except by full replacement.
func (r *Registry) Replace(defs []Definition) {
	r.defs = make([]Definition, len(defs))
	copy(r.defs, defs)
	r.byField = make(map[string]int, len(defs))
	r.states = make(map[string]*State, len(defs))
	for i, d := range r.defs {
		r.byField[d.Field] = i
		r.states[d.Field] = &State{
			Field:   d.Field,
			Visible: d.Role == RoleDisplay,
		}
	}
}

// Len returns the number of registered columns.
func (r *Registry) Len() int { return len(r.defs) }

// Definitions returns the registered definitions in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Definition looks up a definition by field path.
func (r *Registry) Definition(field string) (Definition, bool) {
	i, ok := r.byField[field]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// State returns a copy of the mutable state for the given field.
func (r *Registry) State(field string) (State, error) {
	s, ok := r.states[field]
	if !ok {
		return State{}, &UnknownFieldError{Field: field}
	}
	return *s.clone(), nil
}

// SetVisible toggles column visibility. Internal columns cannot be made
// visible.
func (r *Registry) SetVisible(field string, visible bool) error {
	i, ok := r.byField[field]
	if !ok {
		return &UnknownFieldError{Field: field}
	}
	if visible && r.defs[i].Role == RoleInternal {
		return fmt.Errorf("column: field %q is internal and cannot be shown", field)
	}
	r.states[field].Visible = visible
	return nil
}

// SetWidth records a width hint for the column. Zero restores automatic
// sizing.
func (r *Registry) SetWidth(field string, width float64) error {
	s, ok := r.states[field]
	if !ok {
		return &UnknownFieldError{Field: field}
	}
	s.Width = width
	return nil
}

// CycleSort advances the column through unsorted -> asc -> desc ->
// unsorted. A column entering the ascending state becomes the new
// most-significant sort key without renumbering existing active sorts.
// When clearOthers is set, every other column's sort state is reset as
// part of the same transition.
func (r *Registry) CycleSort(field string, clearOthers bool) error {
	i, ok := r.byField[field]
	if !ok {
		return &UnknownFieldError{Field: field}
	}
	if !r.defs[i].Sortable {
		return fmt.Errorf("column: field %q is not sortable", field)
	}

	s := r.states[field]
	switch {
	case s.Sort == nil:
		s.Sort = &Sort{Order: Ascending, Priority: r.nextPriority()}
	case s.Sort.Order == Ascending:
		s.Sort.Order = Descending
	default:
		s.Sort = nil
	}

	if clearOthers {
		for f, other := range r.states {
			if f != field {
				other.Sort = nil
			}
		}
	}
	return nil
}

// SetSort assigns an explicit sort order. An unsorted column receives a
// fresh most-significant priority; a sorted column keeps its priority.
func (r *Registry) SetSort(field string, order Order, clearOthers bool) error {
	i, ok := r.byField[field]
	if !ok {
		return &UnknownFieldError{Field: field}
	}
	if !r.defs[i].Sortable {
		return fmt.Errorf("column: field %q is not sortable", field)
	}
	if order != Ascending && order != Descending {
		return fmt.Errorf("column: invalid sort order %q", order)
	}

	s := r.states[field]
	if s.Sort == nil {
		s.Sort = &Sort{Order: order, Priority: r.nextPriority()}
	} else {
		s.Sort.Order = order
	}

	if clearOthers {
		for f, other := range r.states {
			if f != field {
				other.Sort = nil
			}
		}
	}
	return nil
}

// ClearSort removes the column's sort state. Its priority is discarded,
// not reassigned.
func (r *Registry) ClearSort(field string) error {
	s, ok := r.states[field]
	if !ok {
		return &UnknownFieldError{Field: field}
	}
	s.Sort = nil
	return nil
}

// ActiveSort pairs a sorted column's definition with its sort state.
type ActiveSort struct {
	Definition Definition
	Order      Order
	Priority   int
}

// ActiveSorts returns the currently visible sorted columns in ascending
// priority order, i.e. most significant first.
func (r *Registry) ActiveSorts() []ActiveSort {
	var out []ActiveSort
	for _, d := range r.defs {
		s := r.states[d.Field]
		if !s.Visible || s.Sort == nil {
			continue
		}
		out = append(out, ActiveSort{Definition: d, Order: s.Sort.Order, Priority: s.Sort.Priority})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// nextPriority computes the priority for a newly activated sort:
// one below the current minimum active priority, bounded by the column
// count so a fresh table starts at a small value.
func (r *Registry) nextPriority() int {
	min := len(r.defs) + 1
	for _, s := range r.states {
		if s.Sort != nil && s.Sort.Priority < min {
			min = s.Sort.Priority
		}
	}
	return min - 1
}
