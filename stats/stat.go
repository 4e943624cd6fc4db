// Package stats holds small statistics helpers shared by the evaluation
// packages.
package stats

import (
	"math"
	"sort"
)

// Percentile computes the pct-th percentile of vals where pct is in the range
// [0, 100]. Values between closest ranks are linearly interpolated. The input
// slice is not modified. Returns NaN on an empty input.
func Percentile(vals []float64, pct float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	pct = math.Max(math.Min(pct, 100.0), 0.0)

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	rank := pct / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	if lower == len(sorted)-1 {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// Median computes the 50th percentile of vals.
func Median(vals []float64) float64 {
	return Percentile(vals, 50.0)
}
