package filter

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
)

// Func is the callback form of a filter: it decides inclusion for a
// whole row. Implementations must be pure and synchronous.
type Func[T any] func(row T, index int) bool

// Predicate is a custom per-column predicate, invoked with the field
// value and the raw criterion instead of the generic matching rules.
type Predicate func(value, criterion any) bool

// ValueFunc is a criterion that is itself a function. It is invoked
// directly with the field value instead of going through Matches.
type ValueFunc func(value any) bool

// Criteria is the structured form of a filter: field path to criterion,
// with AND semantics across keys.
type Criteria map[string]any

// Apply evaluates one criterion against one field value. A ValueFunc
// criterion is invoked directly; everything else goes through the
// recursive Matches rules. custom may be nil.
func Apply(value, criterion any, custom Predicate) bool {
	if fn, ok := criterion.(ValueFunc); ok {
		return fn(value)
	}
	if fn, ok := criterion.(func(value any) bool); ok {
		return fn(value)
	}
	return Matches(value, criterion, custom)
}

// Matches implements the recursive matching rule:
//
//  1. a slice criterion is an OR across its elements; an empty slice
//     means no restriction (always true)
//  2. a slice value is an OR across its elements; an empty slice never
//     matches
//  3. a custom column predicate, when present, decides
//  4. a *regexp.Regexp criterion is tested against the string
//     conversion of the value
//  5. anything else compares for equality
func Matches(value, criterion any, custom Predicate) bool {
	if items, ok := asSlice(criterion); ok {
		if len(items) == 0 {
			return true
		}
		for _, c := range items {
			if Matches(value, c, custom) {
				return true
			}
		}
		return false
	}

	if items, ok := asSlice(value); ok {
		for _, v := range items {
			if Matches(v, criterion, custom) {
				return true
			}
		}
		return false
	}

	if custom != nil {
		return custom(value, criterion)
	}

	if re, ok := criterion.(*regexp.Regexp); ok {
		return re.MatchString(Stringify(value))
	}

	return equal(value, criterion)
}

// asSlice reports whether v is a slice or array and returns its
// elements. Regular expressions and byte slices are treated as scalars.
func asSlice(v any) ([]any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case []any:
		return x, true
	case []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// equal compares criterion and value. Numeric values compare by
// magnitude across integer and float types; everything else requires
// comparable identical values.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	af, aok := asFloat64(a)
	bf, bok := asFloat64(b)
	if aok && bok {
		return af == bf
	}
	if aok != bok {
		return false
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// Stringify converts a value to its string form for regexp matching.
// It never panics, regardless of the value's type.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
