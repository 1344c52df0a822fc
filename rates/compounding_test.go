package rates_test

import (
	"math"
	"testing"

	"github.com/meenmo/credlib/rates"
)

func TestCompounding_RoundTrip(t *testing.T) {
	t.Parallel()

	rs := []float64{-0.05, -0.001, 0, 1e-12, 0.001, 0.02, 0.05, 0.15, 0.75}
	for _, n := range []float64{1, 2, 4, 12, 365} {
		discrete := rates.ContinuousToDiscrete(rs, []float64{n})
		back := rates.DiscreteToContinuous(discrete, []float64{n})
		for i, r := range rs {
			if math.Abs(back[i]-r) > 1e-15 {
				t.Errorf("n=%v r=%v: round trip gave %v", n, r, back[i])
			}
		}
	}
}

func TestCompounding_KnownValue(t *testing.T) {
	t.Parallel()

	// 5% continuous, semi-annual: 2·(e^0.025 − 1).
	got := rates.ContinuousToDiscrete([]float64{0.05}, []float64{2})[0]
	want := 2 * math.Expm1(0.025)
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
	if math.Abs(got-0.05063024104885768) > 1e-15 {
		t.Fatalf("unexpected semi-annual rate %v", got)
	}
}

func TestCompounding_OrderingAroundContinuous(t *testing.T) {
	t.Parallel()

	// For positive rates, fewer compounding periods need a higher quoted
	// rate to match the same continuous rate.
	r := []float64{0.05}
	annual := rates.ContinuousToDiscrete(r, []float64{1})[0]
	monthly := rates.ContinuousToDiscrete(r, []float64{12})[0]
	if !(annual > monthly && monthly > 0.05) {
		t.Fatalf("expected annual %v > monthly %v > continuous 0.05", annual, monthly)
	}
}

func TestCompounding_ZeroFrequencyIsNaN(t *testing.T) {
	t.Parallel()

	// n = 0 hits 0·expm1(+Inf) for positive rates; no guard, NaN out.
	got := rates.ContinuousToDiscrete([]float64{0.05}, []float64{0})[0]
	if !math.IsNaN(got) {
		t.Fatalf("expected NaN for n=0, got %v", got)
	}
}
