package catalog

import (
	"math"
	"testing"

	"github.com/JinnZ2/Shadow-Hunting/internal/shadow"
)

func TestDetectScanFailure(t *testing.T) {
	tests := []struct {
		name   string
		result shadow.ScanResult
		want   FailureKind
	}{
		{
			"degenerate-empty",
			shadow.ScanResult{},
			FailureDegenerateInput,
		},
		{
			"entropy-flat",
			shadow.ScanResult{
				PhiRatios: shadow.PhiRatioResult{Ratios: []float64{1.01, 0.99}},
				Coherence: shadow.CoherenceResult{Normalized: 0.99, Level: shadow.CoherenceLow},
			},
			FailureEntropyFlat,
		},
		{
			"nothing-significant",
			shadow.ScanResult{
				PhiRatios: shadow.PhiRatioResult{Ratios: []float64{1.3, 2.8}},
				Coherence: shadow.CoherenceResult{Normalized: 0.6, Level: shadow.CoherenceLow},
			},
			FailureNothingSignificant,
		},
		{
			"phi-hit",
			shadow.ScanResult{
				PhiRatios: shadow.PhiRatioResult{Ratios: []float64{1.62}, Significant: true},
			},
			FailureNone,
		},
		{
			"fibonacci-hit",
			shadow.ScanResult{
				PhiRatios: shadow.PhiRatioResult{Ratios: []float64{1.3}},
				Fibonacci: shadow.FibonacciResult{Fraction: 0.8, Significant: true},
			},
			FailureNone,
		},
		{
			"coherence-hit",
			shadow.ScanResult{
				PhiRatios: shadow.PhiRatioResult{Ratios: []float64{1.3}},
				Coherence: shadow.CoherenceResult{Coherence: 1.9, Level: shadow.CoherenceHigh},
			},
			FailureNone,
		},
		{
			"coupling-hit",
			shadow.ScanResult{
				PhiRatios: shadow.PhiRatioResult{Ratios: []float64{1.3}},
				Coupling:  shadow.FieldCouplingResult{HasSignature: true},
			},
			FailureNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectScanFailure(tt.result)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvaluateScan_PhiSeriesAccepted(t *testing.T) {
	series := make([]float64, 10)
	v := 100.0
	for i := range series {
		series[i] = v
		v *= 0.6180339887
	}

	result := shadow.Scan(series, shadow.DefaultScanConfig())
	ev := EvaluateScan(result, Strategies[StrategyStandard], StakesRoutine)

	if ev.Failure != FailureNone {
		t.Fatalf("failure: got %q, want %q", ev.Failure, FailureNone)
	}
	if math.Abs(ev.Significance-0.76) > 0.02 {
		t.Errorf("significance: got %.3f, want near 0.76", ev.Significance)
	}
	if ev.ShouldRetry {
		t.Error("clean phi series should not retry")
	}

	// Strong enough even for careful stakes.
	ev = EvaluateScan(result, Strategies[StrategyStandard], StakesCareful)
	if ev.ShouldRetry {
		t.Error("significance above the careful bar should not retry")
	}
}

func TestEvaluateScan_DegenerateInput(t *testing.T) {
	result := shadow.Scan([]float64{5.0}, shadow.DefaultScanConfig())
	ev := EvaluateScan(result, Strategies[StrategyStandard], StakesRoutine)

	if ev.Failure != FailureDegenerateInput {
		t.Fatalf("failure: got %q, want %q", ev.Failure, FailureDegenerateInput)
	}
	if ev.Significance > 0.3+1e-9 {
		t.Errorf("significance: got %.3f, want capped at 0.3", ev.Significance)
	}
	if ev.ShouldRetry {
		t.Error("degenerate input should not retry, no strategy fixes it")
	}
}

func TestEvaluateScan_FailureCapsSignificance(t *testing.T) {
	// A single element matches Fibonacci trivially, scoring 0.4 raw, but a
	// degenerate scan must never look like a finding.
	result := shadow.Scan([]float64{5.0}, shadow.DefaultScanConfig())
	ev := EvaluateScan(result, Strategies[StrategyStandard], StakesRoutine)
	if ev.Significance > 0.3+1e-9 {
		t.Errorf("significance: got %.3f, want <= 0.3", ev.Significance)
	}
}

func TestEvaluateScan_EmphasisWeighting(t *testing.T) {
	fibHeavy := shadow.ScanResult{
		PhiRatios: shadow.PhiRatioResult{Ratios: []float64{1.3}},
		Fibonacci: shadow.FibonacciResult{Fraction: 1.0, Significant: true},
	}

	sigFib := EvaluateScan(fibHeavy, Strategies[StrategyFibonacciFirst], StakesRoutine).Significance
	sigBal := EvaluateScan(fibHeavy, Strategies[StrategyStandard], StakesRoutine).Significance
	sigSpec := EvaluateScan(fibHeavy, Strategies[StrategySpectral], StakesRoutine).Significance

	if !(sigFib > sigBal && sigBal > sigSpec) {
		t.Errorf("emphasis ordering: fib=%.3f balanced=%.3f spectral=%.3f", sigFib, sigBal, sigSpec)
	}
}

func TestEvaluateScan_CarefulStakesRescanWeakHits(t *testing.T) {
	// Fibonacci hit with middling coherence lands between the routine bar
	// and the careful bar.
	weak := shadow.ScanResult{
		PhiRatios: shadow.PhiRatioResult{Ratios: []float64{1.3}},
		Fibonacci: shadow.FibonacciResult{Fraction: 1.0, Significant: true},
		Coherence: shadow.CoherenceResult{Normalized: 0.5, Coherence: 1.2, Level: shadow.CoherenceModerate},
	}

	routine := EvaluateScan(weak, Strategies[StrategyStandard], StakesRoutine)
	if routine.ShouldRetry {
		t.Errorf("routine stakes should trust the hit at %.3f", routine.Significance)
	}

	careful := EvaluateScan(weak, Strategies[StrategyStandard], StakesCareful)
	if !careful.ShouldRetry {
		t.Errorf("careful stakes should rescan at %.3f", careful.Significance)
	}
}
