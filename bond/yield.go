// Package bond prices conventional (non-defaultable) fixed-coupon bonds off
// yield-to-maturity with discrete compounding. It is independent of the
// credit-intensity model in package credit and shares only the batch
// broadcast contract (see package vec).
package bond

import (
	"math"

	"github.com/meenmo/credlib/vec"
)

// PriceFromYield computes the clean price of a fixed-coupon bond from its
// yield to maturity, together with the analytic first and second derivatives
// of price with respect to yield.
//
// Inputs are element-wise batches: maturity in years, ytm and couponRate in
// absolute terms (0.05 = 5%), frequency in coupons per year. With
// n = maturity·frequency periods, y = ytm/frequency and cf =
// couponRate/frequency per period,
//
//	price = 100·((1+y)^(−n) + (cf/y)·(1 − (1+y)^(−n)))
//
// yieldDelta is dPrice/dYtm of that closed form (a DV01/modified-duration
// analog, negative for positive yields) and yieldGamma the second derivative
// scaled by the conventional 0.01 convexity factor. Unlike the credit greeks
// these are exact algebraic derivatives, not finite differences.
//
// ytm = 0 or frequency = 0 yields NaN/Inf at the affected positions; there
// are no guards.
func PriceFromYield(maturity, ytm, couponRate, frequency []float64) (price, yieldDelta, yieldGamma []float64) {
	n := vec.BroadcastLen(maturity, ytm, couponRate, frequency)
	t := vec.Expand(maturity, n)
	yield := vec.Expand(ytm, n)
	c := vec.Expand(couponRate, n)
	freq := vec.Expand(frequency, n)

	price = make([]float64, n)
	yieldDelta = make([]float64, n)
	yieldGamma = make([]float64, n)

	for i := range price {
		periods := t[i] * freq[i]
		y := yield[i] / freq[i]
		couponOnYield := (c[i] / freq[i]) / y

		// discount factor to maturity and the coupon annuity built on it
		aux := math.Pow(1+y, -periods)
		annuity := couponOnYield * (1 - aux)

		price[i] = 100 * (aux + annuity)

		// d(aux)/dy and d²(aux)/dy², then the product-rule expansion of
		// the closed form above
		deltaAux := -t[i] * aux / (1 + y)
		gammaAux := t[i] * aux * (1 + periods) / freq[i] / ((1 + y) * (1 + y))

		yieldDelta[i] = deltaAux*(1-couponOnYield) - annuity/yield[i]
		yieldGamma[i] = 0.01 * (gammaAux*(1-couponOnYield) +
			2*deltaAux*couponOnYield/yield[i] +
			2*annuity/(yield[i]*yield[i]))
	}
	return price, yieldDelta, yieldGamma
}
