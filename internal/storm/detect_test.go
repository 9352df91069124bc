package storm

import (
	"math"
	"math/rand"
	"testing"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

func perfectStorm() FieldData {
	return GeneratePhi(GenConfig{Bands: 5, BaseRadius: 50.0}, rand.New(rand.NewSource(1)))
}

func TestDetectPhiSpacingPerfectStorm(t *testing.T) {
	got := DetectPhiSpacing(perfectStorm())

	if len(got.MeasuredRatios) != 4 {
		t.Fatalf("ratios = %d, want 4", len(got.MeasuredRatios))
	}
	// Contracting bands measure the ratio itself, while the score is
	// taken against the inverse: a perfect storm deviates by exactly
	// phi from what the detector rewards.
	for i, r := range got.MeasuredRatios {
		if math.Abs(r-phi.Ratio) > 1e-9 {
			t.Fatalf("ratio %d = %g, want %g", i, r, phi.Ratio)
		}
	}
	if math.Abs(got.MeanDeviation-phi.Ratio) > 1e-9 {
		t.Fatalf("mean deviation = %g, want %g", got.MeanDeviation, phi.Ratio)
	}
	wantQuality := math.Exp(-3 * phi.Ratio)
	if math.Abs(got.Quality-wantQuality) > 1e-9 {
		t.Fatalf("quality = %g, want %g", got.Quality, wantQuality)
	}
	if math.Abs(got.Coupling-wantQuality*1.5) > 1e-9 {
		t.Fatalf("coupling = %g, want %g", got.Coupling, wantQuality*1.5)
	}
}

func TestDetectPhiSpacingInverseSpaced(t *testing.T) {
	// Bands expanding by exactly the inverse ratio score perfectly.
	f := FieldData{Bands: []Band{
		{X: []float64{10}, Y: []float64{0}},
		{X: []float64{10 * phi.Inverse}, Y: []float64{0}},
	}}
	got := DetectPhiSpacing(f)
	if math.Abs(got.Quality-1.0) > 1e-12 {
		t.Fatalf("quality = %g, want 1", got.Quality)
	}
	if math.Abs(got.Coupling-1.2) > 1e-12 {
		t.Fatalf("coupling = %g, want 1.2", got.Coupling)
	}
}

func TestDetectPhiSpacingDegenerate(t *testing.T) {
	if got := DetectPhiSpacing(FieldData{Bands: []Band{{X: []float64{1}, Y: []float64{0}}}}); got.Quality != 0 || got.Coupling != 0 {
		t.Fatalf("single band scored %+v", got)
	}

	// Two bands collapsed on the origin leave no usable ratios, which
	// counts as maximal deviation rather than zero.
	f := FieldData{Bands: []Band{
		{X: []float64{0}, Y: []float64{0}},
		{X: []float64{0}, Y: []float64{0}},
	}}
	got := DetectPhiSpacing(f)
	if math.Abs(got.Quality-math.Exp(-3)) > 1e-12 {
		t.Fatalf("quality = %g, want %g", got.Quality, math.Exp(-3))
	}
	if len(got.MeasuredRatios) != 0 {
		t.Fatalf("ratios = %v, want none", got.MeasuredRatios)
	}
}

func TestDetectSpiralCoherencePerfect(t *testing.T) {
	got := DetectSpiralCoherence(perfectStorm())
	if got < 0.999 || got > 1.0 {
		t.Fatalf("coherence = %g, want ~1 for noise-free spirals", got)
	}
}

func TestDetectSpiralCoherenceNoisy(t *testing.T) {
	f := GeneratePhi(DefaultGenConfig(), rand.New(rand.NewSource(11)))
	got := DetectSpiralCoherence(f)
	if got <= 0.8 || got > 1.0 {
		t.Fatalf("coherence = %g, want (0.8, 1] at 5%% noise", got)
	}
}

func TestDetectSpiralCoherenceScattered(t *testing.T) {
	angles := []float64{0, 3, 0.5, 2.8, 1.0, 2.0, 0.2, 2.5}
	b := Band{X: make([]float64, len(angles)), Y: make([]float64, len(angles))}
	for k, a := range angles {
		b.X[k] = math.Cos(a)
		b.Y[k] = math.Sin(a)
	}
	got := DetectSpiralCoherence(FieldData{Bands: []Band{b}})
	if got >= 0.5 {
		t.Fatalf("coherence = %g for scattered angles, want < 0.5", got)
	}
}

func TestUnwrapRecoversLinearAngle(t *testing.T) {
	n := 21
	wrapped := make([]float64, n)
	for k := 0; k < n; k++ {
		theta := 0.5 * float64(k)
		wrapped[k] = math.Atan2(math.Sin(theta), math.Cos(theta))
	}
	got := unwrap(wrapped)
	for k := 0; k < n; k++ {
		want := 0.5 * float64(k)
		if math.Abs((got[k]-got[0])-want) > 1e-9 {
			t.Fatalf("unwrapped[%d] = %g, want %g", k, got[k]-got[0], want)
		}
	}
}

func TestDetectEnergyCoupling(t *testing.T) {
	f := FieldData{Bands: []Band{
		{WindSpeed: 100, X: []float64{3}, Y: []float64{4}},
		{WindSpeed: 60, X: []float64{0, 6}, Y: []float64{8, 0}},
	}}
	// |100-60| / (7-5)^2 / 2 bands.
	got := DetectEnergyCoupling(f)
	if math.Abs(got-5.0) > 1e-12 {
		t.Fatalf("coupling = %g, want 5", got)
	}
}

func TestDetectEnergyCouplingDegenerate(t *testing.T) {
	if got := DetectEnergyCoupling(FieldData{Bands: []Band{{WindSpeed: 100}}}); got != 0 {
		t.Fatalf("single band coupling = %g, want 0", got)
	}
	// Equal radii leave a zero gap: the pair is skipped.
	f := FieldData{Bands: []Band{
		{WindSpeed: 100, X: []float64{5}, Y: []float64{0}},
		{WindSpeed: 60, X: []float64{0}, Y: []float64{5}},
	}}
	if got := DetectEnergyCoupling(f); got != 0 {
		t.Fatalf("zero-gap coupling = %g, want 0", got)
	}
}

func TestAnalyzeCombinesDetectors(t *testing.T) {
	f := perfectStorm()
	sig := Analyze(f)

	spacing := DetectPhiSpacing(f)
	if sig.PhiCoupling != spacing.Coupling || sig.PhiQuality != spacing.Quality {
		t.Fatalf("spacing signals diverge: %+v vs %+v", sig, spacing)
	}
	if sig.SpiralCoherence != DetectSpiralCoherence(f) {
		t.Fatal("spiral coherence diverges")
	}
	if sig.EnergyCoupling != DetectEnergyCoupling(f) {
		t.Fatal("energy coupling diverges")
	}

	vec := sig.Vector()
	if len(vec) != 4 || vec[0] != sig.PhiCoupling || vec[3] != sig.EnergyCoupling {
		t.Fatalf("vector = %v", vec)
	}
}
