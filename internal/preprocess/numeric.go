package preprocess

import (
	"math"
	"strconv"
)

// Normalize rescales values linearly so the input range maps onto
// [minVal, maxVal]. A constant input has no range to stretch, so every
// element maps to minVal. Empty input yields an empty slice.
func Normalize(values []float64, minVal, maxVal float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	result := make([]float64, len(values))
	if hi == lo {
		for i := range result {
			result[i] = minVal
		}
		return result
	}

	scale := (maxVal - minVal) / (hi - lo)
	for i, v := range values {
		result[i] = minVal + (v-lo)*scale
	}
	return result
}

// Standardize applies a z-score transform using the population standard
// deviation (divide by N). Zero variance yields all zeros.
func Standardize(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(len(values)))

	result := make([]float64, len(values))
	if stddev == 0 {
		return result
	}
	for i, v := range values {
		result[i] = (v - mean) / stddev
	}
	return result
}

// Clip bounds each element to [minVal, maxVal]. Elements already inside the
// range pass through with their original type intact; elements outside it are
// replaced by the bound as given, so integer bounds clip to integers and
// float bounds to floats. Bounds must be int64 or float64.
func Clip(values []any, minVal, maxVal any) []any {
	lo := asFloat(minVal)
	hi := asFloat(maxVal)

	result := make([]any, len(values))
	for i, v := range values {
		switch {
		case asFloat(v) < lo:
			result[i] = minVal
		case asFloat(v) > hi:
			result[i] = maxVal
		default:
			result[i] = v
		}
	}
	return result
}

// asFloat converts a numeric element to float64 for comparison.
// Callers validate the sequence at the boundary, so anything else is a
// contract violation; NaN compares false against both bounds and passes
// through unchanged.
func asFloat(v any) float64 {
	switch val := v.(type) {
	case int64:
		return float64(val)
	case float64:
		return val
	case bool:
		if val {
			return 1
		}
		return 0
	}
	return math.NaN()
}

// ToIntegers parses each element as an integer, truncating parseable
// floating-point representations. Elements that fail to parse are silently
// dropped, so the result may be shorter than the input. This lossy behavior
// is deliberate; order is preserved among surviving elements.
func ToIntegers(values []any) []int64 {
	result := make([]int64, 0, len(values))
	for _, v := range values {
		switch val := v.(type) {
		case int64:
			result = append(result, val)
		case float64:
			if inInt64Range(val) {
				result = append(result, int64(val))
			}
		case string:
			if n, err := strconv.ParseInt(val, 10, 64); err == nil {
				result = append(result, n)
			} else if f, err := strconv.ParseFloat(val, 64); err == nil && inInt64Range(f) {
				result = append(result, int64(f))
			}
		}
	}
	return result
}

// inInt64Range reports whether truncating f to int64 is well defined.
// Excludes NaN, infinities and magnitudes beyond int64 (the comparisons are
// false for NaN, and math.MaxInt64 rounds to 2^63 as a float).
func inInt64Range(f float64) bool {
	return f >= math.MinInt64 && f < math.MaxInt64
}

// LogTransform maps each positive element to its natural logarithm.
// Non-positive elements are dropped, so log-transform([1, 2, 10, 100])
// yields [0.0, 0.693..., 2.302..., 4.605...].
func LogTransform(values []float64) []float64 {
	result := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			result = append(result, math.Log(v))
		}
	}
	return result
}

// Stats holds summary statistics for a numeric sequence.
type Stats struct {
	Count  int
	Mean   float64
	Stddev float64
	Min    float64
	Max    float64
}

// Describe computes count, mean, population standard deviation, minimum and
// maximum over values. An empty input yields a zero Stats.
func Describe(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	s := Stats{Count: len(values), Min: values[0], Max: values[0]}
	var sum float64
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - s.Mean
		variance += d * d
	}
	s.Stddev = math.Sqrt(variance / float64(len(values)))
	return s
}
