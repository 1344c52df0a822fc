package credit

import (
	"gonum.org/v1/gonum/floats"

	"github.com/meenmo/credlib/vec"
)

// Order selects which central-difference sensitivity a greek function
// returns. The zero value is Delta.
type Order int

const (
	// Delta is the first-order sensitivity: price change per 1bp bump,
	// in percent-of-notional terms.
	Delta Order = iota
	// Gamma is the second-order sensitivity of the same bump.
	Gamma
)

// bumpSize is the fixed finite-difference bump of 1 basis point. It is a
// design constant shared by CR01, IR01 and the spread solver, not a
// caller-configurable tolerance.
const bumpSize = 1e-4

// CR01 computes the price sensitivity of a defaultable bond to a 1bp move in
// the credit spread, by symmetric bump-and-reprice around Price.
//
// With order Delta the result is (P(s+h) − P(s−h)) / 2 / h / 1e2; with order
// Gamma it is (P(s+h) + P(s−h) − 2·P(s)) / h² / 1e4. NaN positions in the
// underlying price pass through unchanged.
func CR01(maturity, coupon, interestRate, spread, recoveryRate []float64, order Order) []float64 {
	n := vec.BroadcastLen(maturity, coupon, interestRate, spread, recoveryRate)

	up := vec.Expand(spread, n)
	floats.AddConst(bumpSize, up)
	down := vec.Expand(spread, n)
	floats.AddConst(-bumpSize, down)

	priceUp := Price(maturity, coupon, interestRate, up, recoveryRate)
	priceDown := Price(maturity, coupon, interestRate, down, recoveryRate)

	if order == Gamma {
		base := Price(maturity, coupon, interestRate, spread, recoveryRate)
		return secondDifference(priceUp, priceDown, base)
	}
	return centralDifference(priceUp, priceDown)
}

// IR01 computes the price sensitivity of a defaultable bond to a 1bp move in
// the interest rate; same scheme and scaling as CR01 with the bump applied to
// the rate instead of the spread.
func IR01(maturity, coupon, interestRate, spread, recoveryRate []float64, order Order) []float64 {
	n := vec.BroadcastLen(maturity, coupon, interestRate, spread, recoveryRate)

	up := vec.Expand(interestRate, n)
	floats.AddConst(bumpSize, up)
	down := vec.Expand(interestRate, n)
	floats.AddConst(-bumpSize, down)

	priceUp := Price(maturity, coupon, up, spread, recoveryRate)
	priceDown := Price(maturity, coupon, down, spread, recoveryRate)

	if order == Gamma {
		base := Price(maturity, coupon, interestRate, spread, recoveryRate)
		return secondDifference(priceUp, priceDown, base)
	}
	return centralDifference(priceUp, priceDown)
}

// The divisions below stay sequential (no folded constants): 1e-4 and 1e2
// are not powers of two, so folding would change the rounding of results
// relative to the scheme above.

func centralDifference(priceUp, priceDown []float64) []float64 {
	out := make([]float64, len(priceUp))
	for i := range out {
		out[i] = (priceUp[i] - priceDown[i]) / 2 / bumpSize / 1e2
	}
	return out
}

func secondDifference(priceUp, priceDown, base []float64) []float64 {
	out := make([]float64, len(priceUp))
	for i := range out {
		out[i] = (priceUp[i] + priceDown[i] - 2*base[i]) / (bumpSize * bumpSize) / 1e4
	}
	return out
}
