package credit

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/meenmo/credlib/vec"
)

const (
	// DefaultMaxIterations caps the Newton-Raphson loop when the caller
	// passes maxIterations <= 0.
	DefaultMaxIterations = 15

	// priceTolerance is the joint convergence threshold on the worst
	// absolute price residual across the batch, in percent-of-notional.
	priceTolerance = 1e-6
)

// SpreadResult is the output of SolveSpread.
type SpreadResult struct {
	// Spread is the implied credit spread per position, in absolute terms.
	// Positions where the iteration diverged hold whatever value the last
	// Newton step produced, possibly NaN or Inf.
	Spread []float64
	// Iterations is the number of Newton-Raphson updates performed. The
	// whole batch iterates together, so this is driven by the slowest
	// element.
	Iterations int
	// Converged reports whether every batch element's repriced value was
	// within tolerance of its target when the loop stopped.
	Converged bool
}

// SolveSpread implies the credit spread that reproduces an observed market
// price (in percent of notional) for the given recovery rate, by
// Newton-Raphson on Price with CR01 as the derivative.
//
// The effective recovery rate is first clipped into [0, price/100 − 0.1]:
// a recovery too close to the market-implied bound makes the hazard rate
// diverge and the iteration ill-conditioned. The clip is silent and the
// clipped value is what the solver prices with.
//
// The starting point comes from a current-yield approximation,
//
//	yield ≈ (coupon + (100−price)/t/100) / ((price+100)/2) · 100
//
// minus the interest rate. From there the loop repeats up to maxIterations
// times (<= 0 selects DefaultMaxIterations), stopping early only when the
// worst residual across the whole batch is within tolerance: elements that
// converge early keep repricing until the slowest one is done. Hitting the
// iteration cap is silent: the last guess is returned as-is, and the caller
// reads Converged if it cares. A NaN residual anywhere stops the loop, and a
// near-zero CR01 pushes Inf/NaN into that position without disturbing the
// rest of the batch.
func SolveSpread(maturity, coupon, interestRate, price, recoveryRate []float64, maxIterations int) SpreadResult {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	n := vec.BroadcastLen(maturity, coupon, interestRate, price, recoveryRate)
	t := vec.Expand(maturity, n)
	c := vec.Expand(coupon, n)
	r := vec.Expand(interestRate, n)
	target := vec.Expand(price, n)
	rec := vec.Expand(recoveryRate, n)

	// Keep the effective recovery at least 10% of notional below the
	// market price so the spread stays finite.
	recCap := make([]float64, n)
	for i := range recCap {
		recCap[i] = target[i]/100 - 0.1
	}
	vec.Clip(rec, 0, recCap)

	guess := make([]float64, n)
	for i := range guess {
		guess[i] = (c[i]+(100-target[i])/t[i]/100)/((target[i]+100)/2)*100 - r[i]
	}

	theoretical := Price(t, c, r, guess, rec)
	floats.Scale(100, theoretical)

	residual := make([]float64, n)
	iterations := 0
	for iterations < maxIterations {
		floats.SubTo(residual, theoretical, target)
		if !(floats.Norm(residual, math.Inf(1)) > priceTolerance) {
			break
		}
		cr01 := CR01(t, c, r, guess, rec, Delta)
		// cr01 is per basis point; /10000 converts the step back to
		// absolute spread units.
		for i := range guess {
			guess[i] += (target[i] - theoretical[i]) / cr01[i] / 10000
		}
		theoretical = Price(t, c, r, guess, rec)
		floats.Scale(100, theoretical)
		iterations++
	}

	floats.SubTo(residual, theoretical, target)
	return SpreadResult{
		Spread:     guess,
		Iterations: iterations,
		Converged:  floats.Norm(residual, math.Inf(1)) <= priceTolerance,
	}
}

// ImpliedSpread is the plain form of SolveSpread: it returns only the spread
// batch, silently unconverged positions included.
func ImpliedSpread(maturity, coupon, interestRate, price, recoveryRate []float64, maxIterations int) []float64 {
	return SolveSpread(maturity, coupon, interestRate, price, recoveryRate, maxIterations).Spread
}
