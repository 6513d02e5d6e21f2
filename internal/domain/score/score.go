// Package score defines the bounded score value shared by every scoring
// stage. Construction always clamps, so an out-of-range number can never
// leak into downstream stages or the export.
package score

import (
	"math"
	"sort"
)

// Bounds of the unit score scale.
const (
	minValue = 0.0
	maxValue = 1.0
)

// Value is a score on [0,1]. Build one with Clamp rather than a raw
// conversion so the bound holds structurally.
type Value float64

// Clamp builds a Value from an arbitrary float. NaN collapses to 0.
func Clamp(v float64) Value {
	if math.IsNaN(v) {
		return Value(minValue)
	}
	return Value(math.Max(minValue, math.Min(maxValue, v)))
}

// Float64 returns the underlying float.
func (v Value) Float64() float64 { return float64(v) }

// Round2 rounds to two decimals, the precision carried on every exported
// composite score.
func (v Value) Round2() Value {
	return Clamp(math.Round(float64(v)*100) / 100)
}

// Max returns the largest value in vs, or 0 for an empty slice.
func Max(vs []Value) Value {
	var m Value
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

// Median returns the batch median, averaging the two middle values for an
// even count. An empty slice yields 0.
func Median(vs []Value) Value {
	if len(vs) == 0 {
		return 0
	}
	sorted := make([]float64, len(vs))
	for i, v := range vs {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return Clamp(sorted[mid])
	}
	return Clamp((sorted[mid-1] + sorted[mid]) / 2)
}

// Normalize divides each value by the batch maximum and rounds to two
// decimals, so the best record in a non-empty batch lands exactly on 1.0.
// A batch whose maximum is 0 is returned rounded but otherwise untouched.
func Normalize(vs []Value) []Value {
	out := make([]Value, len(vs))
	m := Max(vs)
	for i, v := range vs {
		if m > 0 {
			out[i] = Clamp(float64(v) / float64(m)).Round2()
		} else {
			out[i] = v.Round2()
		}
	}
	return out
}
