package bioelectric

import (
	"math"
	"testing"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

// holdProtocol applies no field change, so steps only tick time and
// accumulate progress from the standing coherence.
func holdProtocol(durationHours float64) StimulationProtocol {
	return StimulationProtocol{
		Method:        MethodIonChannelDrugs,
		TargetVoltage: -50.0,
		DurationHours: durationHours,
		Intensity:     0,
	}
}

func TestStepRateAboveAndBelowFloor(t *testing.T) {
	s := NewSimulator("tail_fragment")
	r := phi.Ratio
	// Three usable phi ratios, coherence 1, modest field energy.
	s.Field.VoltageMap = []float64{4, 4 * r, 4 * r * r, 4 * r * r * r, 0, 0}

	rec, err := s.Step(holdProtocol(10), 1.0)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	// Budget is healthy: active regeneration at 10%/h.
	if math.Abs(rec.Progress-0.1) > 1e-9 {
		t.Fatalf("progress = %g, want 0.1", rec.Progress)
	}

	s.Field.MetabolicEnergy = 10.0
	rec, err = s.Step(holdProtocol(10), 1.0)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	// Starved: crystallize at 2%/h.
	if math.Abs(rec.Progress-0.12) > 1e-9 {
		t.Fatalf("progress = %g, want 0.12", rec.Progress)
	}
}

func TestStepCapsProgress(t *testing.T) {
	s := NewSimulator("tail_fragment")
	r := phi.Ratio
	s.Field.VoltageMap = []float64{4, 4 * r, 4 * r * r, 0, 0, 0}
	s.Progress = 0.95

	for i := 0; i < 3; i++ {
		rec, err := s.Step(holdProtocol(100), 10.0)
		if err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
		if rec.Progress > 1.0 {
			t.Fatalf("progress = %g, exceeds 1", rec.Progress)
		}
	}
	if s.Progress != 1.0 {
		t.Fatalf("final progress = %g, want capped at 1", s.Progress)
	}
}

func TestStepRejectsInvalidProtocol(t *testing.T) {
	s := NewSimulator("tail_fragment")
	bad := StimulationProtocol{Method: "telepathy", DurationHours: 10, Intensity: 0.5}
	if _, err := s.Step(bad, 1.0); err == nil {
		t.Fatal("expected error for unknown method")
	}
	if len(s.History) != 0 {
		t.Fatalf("failed step recorded history: %d entries", len(s.History))
	}
}

func TestRunProtocolStepCounts(t *testing.T) {
	s := NewSimulator("tail_fragment")
	phases := []StimulationProtocol{holdProtocol(12), holdProtocol(13)}

	history, err := s.RunProtocol(phases, 6.0)
	if err != nil {
		t.Fatalf("RunProtocol: %v", err)
	}
	// 12h yields two steps, 13h truncates to two.
	if len(history) != 4 {
		t.Fatalf("history length = %d, want 4", len(history))
	}
	if s.TimeHours != 24.0 {
		t.Fatalf("elapsed = %gh, want 24", s.TimeHours)
	}

	if _, err := s.RunProtocol(phases, 0); err == nil {
		t.Fatal("expected error for non-positive dt")
	}
}

func TestAtFindsNearestWindowedRecord(t *testing.T) {
	s := NewSimulator("tail_fragment")
	if _, err := s.RunProtocol([]StimulationProtocol{holdProtocol(24)}, 6.0); err != nil {
		t.Fatalf("RunProtocol: %v", err)
	}
	// History at 6, 12, 18, 24.
	rec, ok := s.At(0, 7)
	if !ok || rec.TimeHours != 6.0 {
		t.Fatalf("At(0,7) = %v %v, want record at 6h", rec.TimeHours, ok)
	}
	rec, ok = s.At(17, 2)
	if !ok || rec.TimeHours != 18.0 {
		t.Fatalf("At(17,2) = %v %v, want record at 18h", rec.TimeHours, ok)
	}
	if _, ok := s.At(48, 7); ok {
		t.Fatal("At(48,7) matched beyond the run")
	}
}

func TestPlanariaHeadRegenerationRun(t *testing.T) {
	s := NewSimulator("tail_fragment")
	if err := s.SetTarget("head"); err != nil {
		t.Fatalf("SetTarget: %v", err)
	}
	// Phi-distributed target pattern starts fully coherent.
	if c := s.Field.Coherence(); math.Abs(c-1.0) > 1e-9 {
		t.Fatalf("initial coherence = %g, want 1.0", c)
	}

	pf, ok := BuiltinProtocol("planaria-head")
	if !ok {
		t.Fatal("planaria-head protocol missing")
	}
	history, err := s.RunProtocol(pf.Phases, 6.0)
	if err != nil {
		t.Fatalf("RunProtocol: %v", err)
	}

	// 48h + 48h + 72h at 6h resolution.
	if len(history) != 28 {
		t.Fatalf("history length = %d, want 28", len(history))
	}
	if s.TimeHours != 168.0 {
		t.Fatalf("elapsed = %gh, want 168", s.TimeHours)
	}

	prev := 0.0
	for i, rec := range history {
		if rec.Progress < prev || rec.Progress > 1.0 {
			t.Fatalf("step %d: progress %g out of order (prev %g)", i, rec.Progress, prev)
		}
		prev = rec.Progress
		if rec.Coherence <= 0 || rec.Coherence > 1.0 {
			t.Fatalf("step %d: coherence %g out of range", i, rec.Coherence)
		}
	}
	if s.Progress <= 0 {
		t.Fatalf("no regeneration progress after %gh", s.TimeHours)
	}

	// Holding a ~950-unit field drains the budget fast; the run ends
	// deep in the starved regime.
	if final := history[len(history)-1].Energy; final >= exploreEnergy {
		t.Fatalf("final energy = %g, want below the metabolic floor", final)
	}

	// Measurement timepoints from the bench design all resolve.
	for _, tp := range DesignTimepoints {
		if _, ok := s.At(tp, DesignWindow); !ok {
			t.Fatalf("no record within %gh of timepoint %gh", DesignWindow, tp)
		}
	}
}
