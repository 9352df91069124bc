package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JinnZ2/Shadow-Hunting/internal/bioelectric"
	"github.com/JinnZ2/Shadow-Hunting/internal/curiosity"
	"github.com/JinnZ2/Shadow-Hunting/internal/shadow"
)

func checkPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("empty png at %s", path)
	}
}

func sampleHistory(steps int) []bioelectric.StepRecord {
	history := make([]bioelectric.StepRecord, steps)
	for i := range history {
		t := float64(i) / float64(steps-1)
		history[i] = bioelectric.StepRecord{
			TimeHours:     float64(i) * 12,
			Coherence:     0.3 + 0.6*t,
			Progress:      t,
			Energy:        90 - 70*t,
			PredictedForm: "head",
		}
	}
	return history
}

func sampleSeries(storms int) []curiosity.Observation {
	series := make([]curiosity.Observation, storms)
	for i := range series {
		series[i] = curiosity.Observation{
			StormNumber: i + 1,
			Kind:        "phi_ratio",
			JoyGain:     1.5 * float64(i+1),
			Resonance:   0.3 + 0.05*float64(i),
		}
	}
	return series
}

func TestEnergyBudgetChart(t *testing.T) {
	ledger := shadow.BrainLedger()
	path := filepath.Join(t.TempDir(), "charts", "brain.png")

	if err := EnergyBudgetChart(ledger, ledger, path); err != nil {
		t.Fatalf("EnergyBudgetChart() error = %v", err)
	}
	checkPNG(t, path)
}

func TestEnergyBudgetChart_TwoSystems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compare.png")

	err := EnergyBudgetChart(shadow.BrainLedger(), shadow.PhotosynthesisLedger(), path)
	if err != nil {
		t.Fatalf("EnergyBudgetChart() error = %v", err)
	}
	checkPNG(t, path)
}

func TestEnergyBudgetChart_NilLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	if err := EnergyBudgetChart(nil, shadow.BrainLedger(), path); err == nil {
		t.Fatal("expected error for nil ledger")
	}
	if err := EnergyBudgetChart(shadow.BrainLedger(), nil, path); err == nil {
		t.Fatal("expected error for nil ledger")
	}
}

func TestRegenTimeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "regen.png")

	if err := RegenTimeline(sampleHistory(13), path); err != nil {
		t.Fatalf("RegenTimeline() error = %v", err)
	}
	checkPNG(t, path)
}

func TestRegenTimeline_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regen.png")

	if err := RegenTimeline(nil, path); err == nil {
		t.Fatal("expected error for empty history")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("no file should be written for empty history")
	}
}

func TestJoyTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joy", "trace.png")

	if err := JoyTrace(sampleSeries(8), path); err != nil {
		t.Fatalf("JoyTrace() error = %v", err)
	}
	checkPNG(t, path)
}

func TestJoyTrace_SingleStorm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.png")

	if err := JoyTrace(sampleSeries(1), path); err != nil {
		t.Fatalf("JoyTrace() error = %v", err)
	}
	checkPNG(t, path)
}

func TestJoyTrace_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.png")

	if err := JoyTrace(nil, path); err == nil {
		t.Fatal("expected error for empty series")
	}
}

func TestWritePNG_BadDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	// Parent path is a regular file, so MkdirAll must fail.
	path := filepath.Join(blocker, "nested", "out.png")
	if err := JoyTrace(sampleSeries(2), path); err == nil {
		t.Fatal("expected error when parent dir cannot be created")
	}
}
