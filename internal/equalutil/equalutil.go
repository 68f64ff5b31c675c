// Package equalutil compares decoded attribute values.
//
// Attribute maps arrive from encoding/json (numbers as float64), from
// go.yaml.in/yaml/v4 (numbers as int or float64), or from Go code (any numeric
// type). Comparisons here treat numbers by value so that the same document
// compares equal regardless of which decoder produced it.
package equalutil

import (
	"encoding/json"
	"math"
)

// EqualValue reports whether two decoded values are equal.
// Numbers compare by value across representations, slices and maps compare
// element-wise, everything else compares with ==. Two integers compare
// exactly, even beyond the range a float64 represents.
func EqualValue(a, b any) bool {
	if ia, ok := toInteger(a); ok {
		if ib, ok := toInteger(b); ok {
			return ia == ib
		}
	}
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !EqualValue(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		return ok && EqualMaps(av, bv)
	}
	if !isPrimitive(a) || !isPrimitive(b) {
		return false
	}
	return a == b
}

// EqualMaps reports whether two maps hold the same keys with equal values.
// A nil map equals an empty one.
func EqualMaps(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !EqualValue(av, bv) {
			return false
		}
	}
	return true
}

func isPrimitive(v any) bool {
	switch v.(type) {
	case string, bool:
		return true
	}
	return false
}

// integer is an integer value as sign and magnitude, so every int64 and
// uint64 has exactly one representation.
type integer struct {
	neg bool
	mag uint64
}

func fromInt64(n int64) integer {
	if n < 0 {
		return integer{neg: true, mag: uint64(-(n + 1)) + 1}
	}
	return integer{mag: uint64(n)}
}

func toInteger(v any) (integer, bool) {
	switch n := v.(type) {
	case int:
		return fromInt64(int64(n)), true
	case int8:
		return fromInt64(int64(n)), true
	case int16:
		return fromInt64(int64(n)), true
	case int32:
		return fromInt64(int64(n)), true
	case int64:
		return fromInt64(n), true
	case uint:
		return integer{mag: uint64(n)}, true
	case uint8:
		return integer{mag: uint64(n)}, true
	case uint16:
		return integer{mag: uint64(n)}, true
	case uint32:
		return integer{mag: uint64(n)}, true
	case uint64:
		return integer{mag: n}, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return fromInt64(i), true
		}
	}
	return integer{}, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
