// Package rates converts between continuously-compounded and
// periodically-compounded rate representations, element-wise over batches.
package rates

import (
	"math"

	"github.com/meenmo/credlib/vec"
)

// ContinuousToDiscrete converts a continuously-compounded rate r into the
// equivalent rate compounded n times per year: n·(e^(r/n) − 1), via Expm1 so
// small rates survive the round trip. n = 0 yields NaN through the division.
func ContinuousToDiscrete(r, n []float64) []float64 {
	m := vec.BroadcastLen(r, n)
	rate := vec.Expand(r, m)
	periods := vec.Expand(n, m)

	out := make([]float64, m)
	for i := range out {
		out[i] = periods[i] * math.Expm1(rate[i]/periods[i])
	}
	return out
}

// DiscreteToContinuous is the inverse of ContinuousToDiscrete:
// n·ln(1 + r/n), via Log1p.
func DiscreteToContinuous(r, n []float64) []float64 {
	m := vec.BroadcastLen(r, n)
	rate := vec.Expand(r, m)
	periods := vec.Expand(n, m)

	out := make([]float64, m)
	for i := range out {
		out[i] = periods[i] * math.Log1p(rate[i]/periods[i])
	}
	return out
}
