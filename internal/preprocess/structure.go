package preprocess

import (
	"math"
	"reflect"
)

// splitmix64 is the generator driving Shuffle. It is fully specified here so
// that a given seed produces the same permutation on every platform and
// across releases, with no dependence on math/rand stream stability.
type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// intn returns a uniform value in [0, n) using rejection sampling to avoid
// modulo bias. n must be positive.
func (s *splitmix64) intn(n int) int {
	bound := uint64(n)
	limit := -bound % bound // (2^64 - bound) % bound
	for {
		v := s.next()
		if v >= limit {
			return int(v % bound)
		}
	}
}

// Shuffle returns a new slice with the elements of values permuted by a
// Fisher-Yates pass driven by a splitmix64 sequence seeded from seed.
// The same (values, seed) pair always yields the same order, and the input
// slice is never mutated.
func Shuffle(values []any, seed int64) []any {
	result := make([]any, len(values))
	copy(result, values)

	rng := &splitmix64{state: uint64(seed)}
	for i := len(result) - 1; i > 0; i-- {
		j := rng.intn(i + 1)
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// Flatten recursively expands nested slices at any depth into a single flat
// slice, preserving left-to-right, depth-first order. Non-slice elements pass
// through unchanged; empty nested slices contribute nothing.
func Flatten(values []any) []any {
	result := make([]any, 0, len(values))
	for _, v := range values {
		if nested, ok := v.([]any); ok {
			result = append(result, Flatten(nested)...)
		} else {
			result = append(result, v)
		}
	}
	return result
}

// Unique returns the elements of values in first-occurrence order with later
// duplicates removed. Numerically equal values deduplicate across types, so
// 1, 1.0 and True collapse to the first of them seen. Comparable elements
// are tracked in a set; nested slices and other uncomparable values fall
// back to a DeepEqual scan.
func Unique(values []any) []any {
	seen := make(map[any]struct{}, len(values))
	var uncomparable []any
	result := make([]any, 0, len(values))

	for _, v := range values {
		if isComparable(v) {
			k := dedupeKey(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
		} else {
			if containsDeepEqual(uncomparable, v) {
				continue
			}
			uncomparable = append(uncomparable, v)
		}
		result = append(result, v)
	}
	return result
}

// numericKey is the set key for numeric elements. Integral values key on the
// int64 form so ints, whole floats and booleans of equal value collide.
type numericKey struct {
	i       int64
	f       float64
	isFloat bool
}

func dedupeKey(v any) any {
	switch val := v.(type) {
	case bool:
		if val {
			return numericKey{i: 1}
		}
		return numericKey{i: 0}
	case int64:
		return numericKey{i: val}
	case float64:
		if val == math.Trunc(val) && val >= math.MinInt64 && val < math.MaxInt64 {
			return numericKey{i: int64(val)}
		}
		return numericKey{f: val, isFloat: true}
	}
	return v
}

func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

func containsDeepEqual(haystack []any, needle any) bool {
	for _, h := range haystack {
		if reflect.DeepEqual(h, needle) {
			return true
		}
	}
	return false
}
