package credit_test

import (
	"math"
	"testing"

	"github.com/meenmo/credlib/credit"
)

func TestPrice_KnownScenario(t *testing.T) {
	t.Parallel()

	// 5y 5% bond, 2% rate, 200bp spread, 40% recovery:
	// λ = 0.0333..., k = 0.0533..., D = 0.765928, I = 4.38885.
	got := credit.Price(
		[]float64{5},
		[]float64{0.05},
		[]float64{0.02},
		[]float64{0.02},
		[]float64{0.4},
	)
	if len(got) != 1 {
		t.Fatalf("expected 1 price, got %d", len(got))
	}
	want := 1.0438884365566283
	if math.Abs(got[0]-want) > 1e-12 {
		t.Fatalf("price mismatch: got %.16f want %.16f", got[0], want)
	}
}

func TestPrice_ZeroSpreadMatchesDiscountBond(t *testing.T) {
	t.Parallel()

	// With spread 0 the hazard rate vanishes and the recovery term drops,
	// leaving the pure discount-bond price exp(−rt) + c·(1−exp(−rt))/r.
	cases := []struct {
		maturity, coupon, rate float64
	}{
		{1, 0.05, 0.02},
		{5, 0.05, 0.02},
		{10, 0.0, 0.03},
		{30, 0.08, 0.045},
	}
	for _, tc := range cases {
		got := credit.Price(
			[]float64{tc.maturity},
			[]float64{tc.coupon},
			[]float64{tc.rate},
			[]float64{0},
			[]float64{0.4},
		)[0]
		d := math.Exp(-tc.rate * tc.maturity)
		want := d + tc.coupon*(1-d)/tc.rate
		if math.Abs(got-want) > 1e-14 {
			t.Errorf("t=%v c=%v r=%v: got %.16f want %.16f", tc.maturity, tc.coupon, tc.rate, got, want)
		}
	}
}

func TestPrice_FullRecoveryIsNaN(t *testing.T) {
	t.Parallel()

	// recovery 1 makes the hazard rate s/0: the price must come back NaN
	// through float division, never panic or error.
	got := credit.Price(
		[]float64{1},
		[]float64{0.05},
		[]float64{0.02},
		[]float64{0.01},
		[]float64{1.0},
	)[0]
	if !math.IsNaN(got) {
		t.Fatalf("expected NaN for recovery=1, got %v", got)
	}
}

func TestPrice_ZeroDecayIsNaN(t *testing.T) {
	t.Parallel()

	// spread 0 and rate 0 give k = 0 and a 0/0 annuity.
	got := credit.Price(
		[]float64{5},
		[]float64{0.05},
		[]float64{0},
		[]float64{0},
		[]float64{0.4},
	)[0]
	if !math.IsNaN(got) {
		t.Fatalf("expected NaN for k=0, got %v", got)
	}
}

func TestPrice_BroadcastsScalars(t *testing.T) {
	t.Parallel()

	// A length-1 input must behave exactly like the same value repeated.
	batch := credit.Price(
		[]float64{5, 5, 5},
		[]float64{0.05},
		[]float64{0.02},
		[]float64{0.01, 0.02, 0.03},
		[]float64{0.4},
	)
	if len(batch) != 3 {
		t.Fatalf("expected 3 prices, got %d", len(batch))
	}
	for i, s := range []float64{0.01, 0.02, 0.03} {
		single := credit.Price(
			[]float64{5},
			[]float64{0.05},
			[]float64{0.02},
			[]float64{s},
			[]float64{0.4},
		)[0]
		if batch[i] != single {
			t.Errorf("element %d: batch %v != single %v", i, batch[i], single)
		}
	}
}

func TestPrice_NaNIsolatedPerPosition(t *testing.T) {
	t.Parallel()

	// A singular position must not poison its neighbors.
	got := credit.Price(
		[]float64{5, 5},
		[]float64{0.05, 0.05},
		[]float64{0.02, 0.02},
		[]float64{0.02, 0.01},
		[]float64{0.4, 1.0},
	)
	if math.IsNaN(got[0]) {
		t.Fatalf("healthy position poisoned: %v", got)
	}
	if !math.IsNaN(got[1]) {
		t.Fatalf("singular position should be NaN: %v", got)
	}
}
