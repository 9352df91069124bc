package storm

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

func TestGeneratePhiGeometry(t *testing.T) {
	cfg := GenConfig{Bands: 5, BaseRadius: 50.0, NoiseLevel: 0}
	f := GeneratePhi(cfg, rand.New(rand.NewSource(1)))

	if f.Kind != KindPhiRatio {
		t.Fatalf("kind = %q, want %q", f.Kind, KindPhiRatio)
	}
	if f.Quality != 1.0 {
		t.Fatalf("quality = %g, want 1 at zero noise", f.Quality)
	}
	if len(f.Bands) != 5 {
		t.Fatalf("bands = %d, want 5", len(f.Bands))
	}

	for i, b := range f.Bands {
		if b.Number != i+1 {
			t.Fatalf("band %d numbered %d", i, b.Number)
		}
		wantRadius := 50.0 * math.Pow(phi.Ratio, float64(i+1))
		if math.Abs(b.Radius-wantRadius) > 1e-12 {
			t.Fatalf("band %d radius = %g, want %g", i, b.Radius, wantRadius)
		}
		if len(b.X) != spiralPoints || len(b.Y) != spiralPoints {
			t.Fatalf("band %d has %d/%d samples", i, len(b.X), len(b.Y))
		}
		// Arm starts on the positive x axis at the band radius.
		if math.Abs(b.X[0]-b.Radius) > 1e-12 || b.Y[0] != 0 {
			t.Fatalf("band %d starts at (%g, %g), want (%g, 0)", i, b.X[0], b.Y[0], b.Radius)
		}
		wantWind := 150 * math.Exp(-0.3*float64(i+1))
		if math.Abs(b.WindSpeed-wantWind) > 1e-12 {
			t.Fatalf("band %d wind = %g, want %g", i, b.WindSpeed, wantWind)
		}
		if b.Pressure != 950+10*float64(i+1) {
			t.Fatalf("band %d pressure = %g", i, b.Pressure)
		}
	}

	// Consecutive phi powers contract.
	for i := 0; i < len(f.Bands)-1; i++ {
		if f.Bands[i+1].Radius >= f.Bands[i].Radius {
			t.Fatalf("band radii not contracting at %d", i)
		}
	}
}

func TestGeneratePhiDeterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	a := GeneratePhi(cfg, rand.New(rand.NewSource(42)))
	b := GeneratePhi(cfg, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different storms")
	}
	c := GeneratePhi(cfg, rand.New(rand.NewSource(43)))
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestGenerateRandomRanges(t *testing.T) {
	cfg := GenConfig{Bands: 5, BaseRadius: 50.0}
	f := GenerateRandom(cfg, rand.New(rand.NewSource(7)))

	if f.Kind != KindRandom {
		t.Fatalf("kind = %q, want %q", f.Kind, KindRandom)
	}
	if f.Quality != 0.1 {
		t.Fatalf("quality = %g, want 0.1", f.Quality)
	}
	for i, b := range f.Bands {
		n := float64(i + 1)
		if b.Radius < 25.0*n || b.Radius > 100.0*n {
			t.Fatalf("band %d radius %g outside [%g, %g]", i, b.Radius, 25.0*n, 100.0*n)
		}
		if b.WindSpeed < 70 || b.WindSpeed > 130 {
			t.Fatalf("band %d wind %g outside [70, 130]", i, b.WindSpeed)
		}
		if b.Pressure < 950 || b.Pressure > 1000 {
			t.Fatalf("band %d pressure %g outside [950, 1000]", i, b.Pressure)
		}
		if len(b.X) != spiralPoints {
			t.Fatalf("band %d has %d samples", i, len(b.X))
		}
	}
}

func TestGenerateIntensifyingTimeline(t *testing.T) {
	const steps = 6
	frames := GenerateIntensifying(steps, rand.New(rand.NewSource(3)))
	if len(frames) != steps {
		t.Fatalf("frames = %d, want %d", len(frames), steps)
	}

	for t0, fr := range frames {
		coupling := float64(t0) / steps
		if fr.Time != t0 {
			t.Fatalf("frame %d time = %d", t0, fr.Time)
		}
		if math.Abs(fr.CouplingStrength-coupling) > 1e-12 {
			t.Fatalf("frame %d coupling = %g, want %g", t0, fr.CouplingStrength, coupling)
		}
		if math.Abs(fr.MaxWind-(80+coupling*80)) > 1e-12 {
			t.Fatalf("frame %d max wind = %g", t0, fr.MaxWind)
		}
		if len(fr.Storm.Bands) != 4 {
			t.Fatalf("frame %d has %d bands, want 4", t0, len(fr.Storm.Bands))
		}
	}

	// Winds build and geometry cleans up over the run.
	for i := 0; i < len(frames)-1; i++ {
		if frames[i+1].MaxWind <= frames[i].MaxWind {
			t.Fatalf("max wind not building at step %d", i)
		}
		if frames[i+1].Storm.Quality <= frames[i].Storm.Quality {
			t.Fatalf("quality not improving at step %d", i)
		}
	}
}
