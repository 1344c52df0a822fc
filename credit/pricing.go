// Package credit prices defaultable coupon bonds under a reduced-form
// (intensity-based) credit model with a flat hazard rate, and derives
// sensitivities and implied spreads from that closed form.
//
// All functions are pure, element-wise batch transforms over []float64 (see
// package vec for the broadcast contract). Rates, spreads and coupons are
// absolute (0.01 = 100bp); Price returns value per unit notional while the
// solver works in percent-of-notional. Singular inputs (recovery rate of 1,
// hazard-plus-rate of zero) produce NaN or Inf at the affected positions via
// native float division; no function in this package returns an error.
package credit

import (
	"gonum.org/v1/gonum/floats"

	"github.com/meenmo/credlib/vec"
)

// Price computes the model price of a defaultable bond per unit notional.
//
// The hazard rate is derived as λ = spread/(1−recoveryRate) and assumed flat
// over the bond's life. With k = λ + interestRate the closed form is
//
//	D = exp(−k·t)            joint survival-and-discount factor
//	I = (1 − D)/k            ∫₀ᵗ exp(−k·u) du
//	price = D + coupon·I + recoveryRate·λ·I
//
// i.e. principal repaid at maturity, the coupon stream decayed through
// survival and discounting, and the expected recovery on default. Positions
// where k = 0 (or recoveryRate = 1) come back NaN.
func Price(maturity, coupon, interestRate, spread, recoveryRate []float64) []float64 {
	n := vec.BroadcastLen(maturity, coupon, interestRate, spread, recoveryRate)
	t := vec.Expand(maturity, n)
	c := vec.Expand(coupon, n)
	r := vec.Expand(interestRate, n)
	s := vec.Expand(spread, n)
	rec := vec.Expand(recoveryRate, n)

	// λ = s / (1 − R)
	intensity := vec.Fill(n, 1)
	floats.Sub(intensity, rec)
	floats.DivTo(intensity, s, intensity)

	// k = λ + r
	decay := make([]float64, n)
	floats.AddTo(decay, intensity, r)

	// D = exp(−k·t)
	discount := make([]float64, n)
	floats.MulTo(discount, decay, t)
	floats.Scale(-1, discount)
	vec.Exp(discount)

	// I = (1 − D) / k
	annuity := vec.Fill(n, 1)
	floats.Sub(annuity, discount)
	floats.Div(annuity, decay)

	// price = D + c·I + R·λ·I
	price := make([]float64, n)
	floats.MulTo(price, c, annuity)
	floats.Add(price, discount)
	floats.Mul(intensity, annuity)
	floats.Mul(intensity, rec)
	floats.Add(price, intensity)
	return price
}
