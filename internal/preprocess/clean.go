// Package preprocess provides the core data transformation functions behind
// the prepkit CLI: missing-value cleaning, numeric transforms, text
// processing, and list-structure manipulation.
//
// Every function is a pure mapping from its inputs to a new value. Inputs are
// never mutated, no state is retained between calls, and functions are total
// over their documented domain.
package preprocess

import "math"

// IsMissing reports whether a value is treated as a missing marker:
// nil, an empty string, or a float NaN.
func IsMissing(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return math.IsNaN(val)
	}
	return false
}

// RemoveMissing returns a new slice with all missing markers removed.
// The order of the remaining elements is preserved.
func RemoveMissing(values []any) []any {
	result := make([]any, 0, len(values))
	for _, v := range values {
		if !IsMissing(v) {
			result = append(result, v)
		}
	}
	return result
}

// FillMissing returns a new slice of the same length with every missing
// marker replaced by fill. Non-missing elements pass through unchanged.
func FillMissing(values []any, fill any) []any {
	result := make([]any, len(values))
	for i, v := range values {
		if IsMissing(v) {
			result[i] = fill
		} else {
			result[i] = v
		}
	}
	return result
}
