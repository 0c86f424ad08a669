package column

// Order is the direction of an active column sort.
type Order string

const (
	// Ascending sorts smaller ranks first.
	Ascending Order = "asc"
	// Descending sorts larger ranks first.
	Descending Order = "desc"
)

// Sort is the active sort of a single column. Priority determines
// precedence among multiple simultaneously active sorts; a lower
// priority is compared first.
type Sort struct {
	Order    Order
	Priority int
}

// State is the mutable per-column UI state. Among all columns with a
// non-nil Sort, priorities form a total order: no two active sorts
// share a priority.
type State struct {
	Field   string
	Visible bool

	// Sort is nil while the column is unsorted.
	Sort *Sort

	// Width is a rendering hint for the consuming UI. Zero means
	// automatic.
	Width float64
}

func (s *State) clone() *State {
	c := *s
	if s.Sort != nil {
		sc := *s.Sort
		c.Sort = &sc
	}
	return &c
}
