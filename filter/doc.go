// Package filter evaluates row inclusion criteria.
//
// A filter is either a callback over whole rows (Func) or a Criteria
// map from field path to criterion with AND semantics across keys.
// Criterion matching is recursive: slices OR their elements, regular
// expressions match the string form of the value, functions are invoked
// directly, and everything else compares for equality:
//
//	filter.Criteria{
//	    "status": []any{"open", "pending"},          // OR
//	    "name":   regexp.MustCompile(`^Ap`),          // regexp
//	    "age":    filter.ValueFunc(func(v any) bool { // direct
//	        n, _ := v.(int)
//	        return n >= 18
//	    }),
//	}
//
// Filtering always runs before search: a row failing its filter is
// excluded regardless of query match.
package filter
