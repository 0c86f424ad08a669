package rowmeta

import (
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator builds the rank-map collator: case and diacritic
// insensitive ("base" sensitivity) and numeric-substring aware, so
// "item2" ranks before "item10". Collators are not safe for concurrent
// use; every rank-map build gets its own.
func newCollator(tag language.Tag) *collate.Collator {
	return collate.New(tag, collate.Loose, collate.Numeric)
}

type rankEntry struct {
	key  string // identity of the original value
	sort string // string form of the value being ranked
}

// buildRankMap assigns each distinct column value a dense 0-based rank
// in collated order. Null and undefined values are excluded; a missing
// rank sorts before every defined one at compare time. Precomputing
// ranks turns every pairwise sort comparison into an integer compare
// and keeps the total order stable no matter which rows survive
// filtering.
func buildRankMap(values []any, extract func(any) any, tag language.Tag) map[string]int {
	c := newCollator(tag)

	seen := make(map[string]struct{}, len(values))
	entries := make([]rankEntry, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		key := valueString(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		sv := v
		if extract != nil {
			if e := extract(v); e != nil {
				sv = e
			}
		}
		entries = append(entries, rankEntry{key: key, sort: valueString(sv)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if r := c.CompareString(entries[i].sort, entries[j].sort); r != 0 {
			return r < 0
		}
		// Equal under collation: fall back to the identity key so the
		// order is deterministic across builds.
		return entries[i].key < entries[j].key
	})

	ranks := make(map[string]int, len(entries))
	for i, e := range entries {
		ranks[e.key] = i
	}
	return ranks
}

// valueString renders a value for collation and for rank-map identity.
// Numbers use their decimal form, which the numeric-aware collator
// orders by magnitude.
func valueString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
