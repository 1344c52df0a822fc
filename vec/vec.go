// Package vec provides the broadcast and element-wise helpers shared by the
// pricing packages.
//
// Every pricing function in this module operates on []float64 batches with a
// two-case broadcast contract: inputs either share one common length, or have
// length 1 and act as a scalar repeated across the batch. Anything else is
// caller misuse and surfaces as an index panic, consistent with the
// no-validation numeric contract of the pricing packages.
package vec

import "math"

// BroadcastLen returns the common batch length of the given inputs: the
// maximum of their lengths. Length-1 inputs broadcast to that length.
func BroadcastLen(xs ...[]float64) int {
	n := 0
	for _, x := range xs {
		if len(x) > n {
			n = len(x)
		}
	}
	return n
}

// Expand returns a fresh slice of length n holding x broadcast to the batch
// length: a length-1 x is repeated, otherwise x is copied element by element.
//
// The returned slice is always newly allocated, so callers may mutate it
// without touching the input.
func Expand(x []float64, n int) []float64 {
	out := make([]float64, n)
	if len(x) == 1 {
		for i := range out {
			out[i] = x[0]
		}
		return out
	}
	for i := range out {
		out[i] = x[i]
	}
	return out
}

// Fill returns a slice of length n with every element set to v.
func Fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Exp replaces every element of dst with math.Exp of itself.
func Exp(dst []float64) {
	for i, v := range dst {
		dst[i] = math.Exp(v)
	}
}

// Clip bounds every element of dst into [lo, hi[i]]: the lower bound is
// applied first, then the upper bound, so an upper bound below lo wins.
// NaN in either operand propagates.
func Clip(dst []float64, lo float64, hi []float64) {
	for i, v := range dst {
		dst[i] = math.Min(math.Max(v, lo), hi[i])
	}
}
