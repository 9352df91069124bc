package coupling

import (
	"math"
	"testing"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

func TestModeAtConstruction(t *testing.T) {
	warm := NewVortex(28.5, 6)
	if warm.Mode != ModeExplore {
		t.Fatalf("expected explore above formation SST, got %s", warm.Mode)
	}
	cool := NewVortex(25.0, 6)
	if cool.Mode != ModeExpand {
		t.Fatalf("expected expand below formation SST, got %s", cool.Mode)
	}
}

func TestUpdateEnergyTransitions(t *testing.T) {
	v := NewVortex(25.0, 6)

	if tr := v.UpdateEnergy(1.0); tr != TransitionNone {
		t.Fatalf("expected no change at 26.0, got %s", tr)
	}
	if tr := v.UpdateEnergy(1.0); tr != TransitionToExplore {
		t.Fatalf("expected switch to explore at 27.0, got %s", tr)
	}
	if tr := v.UpdateEnergy(0); tr != TransitionNone {
		t.Fatalf("expected no change staying at 27.0, got %s", tr)
	}
	if tr := v.UpdateEnergy(-3.0); tr != TransitionToExpand {
		t.Fatalf("expected switch to expand at 24.0, got %s", tr)
	}
}

func TestScaledThresholdMovesWithEnergy(t *testing.T) {
	// Cortex threshold is 0.75 of the current budget, so any positive
	// budget stays above it and the system holds explore mode.
	c := NewCortex(20.0)
	if c.Mode != ModeExplore {
		t.Fatalf("expected explore at construction, got %s", c.Mode)
	}
	if tr := c.UpdateEnergy(-15.0); tr != TransitionNone {
		t.Fatalf("expected no change at positive budget, got %s", tr)
	}
	// A negative budget sits below 0.75x of itself.
	if tr := c.UpdateEnergy(-35.0); tr != TransitionToExpand {
		t.Fatalf("expected switch to expand at negative budget, got %s", tr)
	}
}

func TestSetEnergySkipsModeCheck(t *testing.T) {
	m := NewMorpho(60.0, 6)
	if m.Mode != ModeExplore {
		t.Fatalf("expected explore, got %s", m.Mode)
	}
	m.SetEnergy(-10.0)
	if m.Mode != ModeExplore {
		t.Fatalf("SetEnergy must not re-evaluate mode, got %s", m.Mode)
	}
	if m.Energy != -10.0 {
		t.Fatalf("expected energy -10, got %g", m.Energy)
	}
}

func TestEfficiencyUniformGeometry(t *testing.T) {
	// Uniform elements give ratios of exactly 1, whose deviation is
	// 1-Ratio, so efficiency is exp(Ratio-1).
	eff := Efficiency(uniform(6))
	want := math.Exp(phi.Ratio - 1)
	if math.Abs(eff-want) > 1e-12 {
		t.Fatalf("expected %g, got %g", want, eff)
	}
}

func TestEfficiencyPhiGeometry(t *testing.T) {
	eff := Efficiency(phi.Powers(6))
	if math.Abs(eff-1.0) > 1e-9 {
		t.Fatalf("expected efficiency 1.0 for phi powers, got %g", eff)
	}
}

func TestEfficiencyDegenerateGeometry(t *testing.T) {
	want := math.Exp(-1)
	for _, geom := range [][]float64{nil, {5}, {0, 0, 0}} {
		if eff := Efficiency(geom); math.Abs(eff-want) > 1e-12 {
			t.Fatalf("expected exp(-1) for %v, got %g", geom, eff)
		}
	}
}
