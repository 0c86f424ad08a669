package column

// Role determines whether a column is rendered by the consuming UI.
// Internal columns participate in indexing, search and filtering but
// are never handed to the rendering layer.
type Role uint8

const (
	// RoleDisplay marks a column that is rendered by the UI.
	RoleDisplay Role = iota
	// RoleInternal marks a column used only for indexing/search/filter.
	RoleInternal
)

// String returns the string representation of the Role.
func (r Role) String() string {
	switch r {
	case RoleDisplay:
		return "display"
	case RoleInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// SortValueFunc maps a field value to the value it should be ranked by.
// Returning nil falls back to the original field value.
//
// Implementations must be pure and synchronous.
type SortValueFunc func(value any) any

// FilterFunc is a custom per-column filter predicate. It receives the
// field value and the raw criterion and decides inclusion, replacing the
// generic matching rules for this column.
//
// Implementations must be pure and synchronous.
type FilterFunc func(value, criterion any) bool

// TokenizeFunc splits a field value into lowercase search tokens,
// replacing the table-wide tokenizer for this column.
//
// Implementations must be pure and synchronous.
type TokenizeFunc func(value string) []string

// Definition describes a single column. Definitions are immutable once
// registered; replace the whole set to change them.
type Definition struct {
	// Field is the dot-separated path used to read the value from a row.
	Field string

	// Role determines display vs. internal-only participation.
	Role Role

	// Sortable enables rank-map construction and sorting for this column.
	Sortable bool

	// Searchable includes this column in free-text search.
	Searchable bool

	// Tokenize caches per-field tokens so unquoted query tokens match
	// token-wise instead of against the whole value. Only meaningful
	// together with Searchable.
	Tokenize bool

	// Tokenizer overrides the table-wide tokenizer for this column.
	Tokenizer TokenizeFunc

	// Filter overrides the generic filter matching rules for this column.
	Filter FilterFunc

	// SortValue overrides the value used for rank-map ordering.
	SortValue SortValueFunc
}
