// Package field resolves dot-separated paths against arbitrary row
// values. Rows are opaque to the pipeline; Lookup is the only way it
// reads them. Missing intermediate keys resolve to nil, never panic.
package field

import (
	"reflect"
	"strings"
)

// Lookup reads the value at the given dot-separated path from v.
// Maps with string keys and exported struct fields are traversed;
// pointers and interfaces are dereferenced along the way. Any missing
// segment yields nil.
func Lookup(v any, path string) any {
	cur := v
	for path != "" {
		var seg string
		if i := strings.IndexByte(path, '.'); i >= 0 {
			seg, path = path[:i], path[i+1:]
		} else {
			seg, path = path, ""
		}
		cur = lookupSegment(cur, seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func lookupSegment(v any, key string) any {
	switch m := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return m[key]
	case map[string]string:
		if s, ok := m[key]; ok {
			return s
		}
		return nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil
		}
		return unwrap(mv)
	case reflect.Struct:
		fv := rv.FieldByName(key)
		if !fv.IsValid() {
			// Tolerate lower-cased path segments against exported fields.
			fv = rv.FieldByNameFunc(func(name string) bool {
				return strings.EqualFold(name, key)
			})
		}
		if !fv.IsValid() || !fv.CanInterface() {
			return nil
		}
		return unwrap(fv)
	default:
		return nil
	}
}

func unwrap(v reflect.Value) any {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.CanInterface() {
		return nil
	}
	return v.Interface()
}
