package phi

import (
	"math"
	"testing"
)

func TestDeviationAtTargets(t *testing.T) {
	if d := Deviation(Ratio); d != 0 {
		t.Fatalf("expected zero deviation at Ratio, got %g", d)
	}
	if d := Deviation(Inverse); d != 0 {
		t.Fatalf("expected zero deviation at Inverse, got %g", d)
	}
}

func TestDeviationPicksNearerTarget(t *testing.T) {
	// 1.5 sits closer to Inverse than to Ratio
	want := Inverse - 1.5
	if d := Deviation(1.5); math.Abs(d-want) > 1e-12 {
		t.Fatalf("expected %g, got %g", want, d)
	}
	// 0.7 sits closer to Ratio
	want = 0.7 - Ratio
	if d := Deviation(0.7); math.Abs(d-want) > 1e-12 {
		t.Fatalf("expected %g, got %g", want, d)
	}
}

func TestEfficiencyExactGeometricSeries(t *testing.T) {
	cases := []struct {
		name  string
		ratio float64
	}{
		{"contracting", Ratio},
		{"expanding", Inverse},
	}
	for _, tc := range cases {
		values := []float64{100}
		for i := 0; i < 5; i++ {
			values = append(values, values[len(values)-1]*tc.ratio)
		}
		eff := SeriesEfficiency(values)
		if math.Abs(eff-1.0) > 1e-9 {
			t.Fatalf("%s: expected efficiency 1.0, got %g", tc.name, eff)
		}
	}
}

func TestEfficiencyBelowOneOffTarget(t *testing.T) {
	eff := Efficiency([]float64{2.5, 0.2, 3.0})
	if eff >= 1.0 || eff <= 0 {
		t.Fatalf("expected efficiency in (0,1), got %g", eff)
	}
}

func TestEfficiencyEmptyInput(t *testing.T) {
	if eff := Efficiency(nil); eff != 1.0 {
		t.Fatalf("expected 1.0 for empty input, got %g", eff)
	}
	if eff := SeriesEfficiency([]float64{42}); eff != 1.0 {
		t.Fatalf("expected 1.0 for single value, got %g", eff)
	}
}

func TestEfficiencyBounded(t *testing.T) {
	inputs := [][]float64{
		{0, 0, 0},
		{1e9, -1e9},
		{0.001, 1000},
		{Ratio, Inverse, 7.3, -2.1},
	}
	for _, in := range inputs {
		eff := Efficiency(in)
		if eff <= 0 || eff > 1.0 || math.IsNaN(eff) {
			t.Fatalf("efficiency out of (0,1] for %v: %g", in, eff)
		}
	}
}

func TestConsecutiveRatiosSkipsNearZeroDenominator(t *testing.T) {
	ratios := ConsecutiveRatios([]float64{2, 0, 5, 10})
	// 0 -> 5 pair dropped, leaving 0/2 and 10/5
	if len(ratios) != 2 {
		t.Fatalf("expected 2 ratios, got %d: %v", len(ratios), ratios)
	}
	if ratios[0] != 0 || ratios[1] != 2 {
		t.Fatalf("unexpected ratios %v", ratios)
	}
}

func TestConsecutiveRatiosShortInput(t *testing.T) {
	if got := ConsecutiveRatios([]float64{1}); got != nil {
		t.Fatalf("expected nil for single value, got %v", got)
	}
	if got := ConsecutiveRatios(nil); got != nil {
		t.Fatalf("expected nil for nil input, got %v", got)
	}
}

func TestNormalizedPowersSumToOne(t *testing.T) {
	for _, n := range []int{1, 6, 12} {
		w := NormalizedPowers(n)
		if len(w) != n {
			t.Fatalf("expected %d weights, got %d", n, len(w))
		}
		var sum float64
		for _, v := range w {
			sum += v
		}
		if math.Abs(sum-1.0) > 1e-12 {
			t.Fatalf("n=%d: weights sum to %g", n, sum)
		}
		for i := 1; i < n; i++ {
			if w[i] >= w[i-1] {
				t.Fatalf("weights not strictly decreasing at %d: %v", i, w)
			}
		}
	}
}

func TestGoldenAngleValue(t *testing.T) {
	want := 360 * (1 - Ratio)
	if math.Abs(GoldenAngle-want) > 1e-9 {
		t.Fatalf("golden angle mismatch: %g vs %g", GoldenAngle, want)
	}
}
