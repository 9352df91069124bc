package catalog

import (
	"testing"
)

func TestSelectInitial_DefaultMapping(t *testing.T) {
	tests := []struct {
		name  string
		class ScanClass
		want  StrategyID
	}{
		{"neural-micro", ScanClass{DomainNeural, ScaleMicro, StakesRoutine}, StrategyStrict},
		{"neural-meso", ScanClass{DomainNeural, ScaleMeso, StakesRoutine}, StrategySpectral},
		{"botanical-meso", ScanClass{DomainBotanical, ScaleMeso, StakesRoutine}, StrategyFibonacciFirst},
		{"botanical-micro", ScanClass{DomainBotanical, ScaleMicro, StakesRoutine}, StrategyStrict},
		{"atmospheric-macro", ScanClass{DomainAtmospheric, ScaleMacro, StakesRoutine}, StrategyWideNet},
		{"atmospheric-meso", ScanClass{DomainAtmospheric, ScaleMeso, StakesRoutine}, StrategyStandard},
		{"bioelectric-micro", ScanClass{DomainBioelectric, ScaleMicro, StakesRoutine}, StrategyStrict},
		{"bioelectric-meso", ScanClass{DomainBioelectric, ScaleMeso, StakesRoutine}, StrategyStandard},
		{"cosmic-macro", ScanClass{DomainCosmic, ScaleMacro, StakesRoutine}, StrategySpectral},
		{"generic-macro", ScanClass{DomainGeneric, ScaleMacro, StakesRoutine}, StrategyWideNet},
		{"generic-meso", ScanClass{DomainGeneric, ScaleMeso, StakesRoutine}, StrategyStandard},
	}

	sel := NewStrategySelector(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sel.SelectInitial(tt.class)
			if got.ID != tt.want {
				t.Errorf("got %q, want %q", got.ID, tt.want)
			}
		})
	}
}

func TestSelectInitial_MemoryOverridesMapping(t *testing.T) {
	mem, err := NewScanMemory(newTestDB(t))
	if err != nil {
		t.Fatalf("NewScanMemory: %v", err)
	}

	// Bioelectric/meso maps to standard by default. Three accepted
	// spectral outcomes should override that.
	for i := 0; i < 3; i++ {
		if err := mem.RecordOutcome(outcome(StrategySpectral, 0.9, true)); err != nil {
			t.Fatalf("RecordOutcome: %v", err)
		}
	}

	sel := NewStrategySelector(mem)
	got := sel.SelectInitial(ScanClass{DomainBioelectric, ScaleMeso, StakesRoutine})
	if got.ID != StrategySpectral {
		t.Errorf("got %q, want %q (learned)", got.ID, StrategySpectral)
	}

	// A class with no history still uses the default mapping.
	got = sel.SelectInitial(ScanClass{DomainAtmospheric, ScaleMacro, StakesRoutine})
	if got.ID != StrategyWideNet {
		t.Errorf("got %q, want %q (default)", got.ID, StrategyWideNet)
	}
}

func TestSelectRetry_Escalation(t *testing.T) {
	tests := []struct {
		name    string
		failure FailureKind
		tried   []StrategyID
		want    StrategyID
	}{
		{"nothing-first", FailureNothingSignificant, []StrategyID{StrategyStandard}, StrategyWideNet},
		{"nothing-second", FailureNothingSignificant, []StrategyID{StrategyStandard, StrategyWideNet}, StrategyFibonacciFirst},
		{"flat-first", FailureEntropyFlat, []StrategyID{StrategyStandard}, StrategySpectral},
		{"flat-second", FailureEntropyFlat, []StrategyID{StrategyStandard, StrategySpectral}, StrategyWideNet},
		{"unknown-falls-back", FailureKind("odd"), []StrategyID{StrategyStandard}, StrategyWideNet},
	}

	sel := NewStrategySelector(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sel.SelectRetry(tt.failure, tt.tried)
			if got == nil {
				t.Fatal("got nil, want a strategy")
			}
			if got.ID != tt.want {
				t.Errorf("got %q, want %q", got.ID, tt.want)
			}
		})
	}
}

func TestSelectRetry_NeverRepeats(t *testing.T) {
	sel := NewStrategySelector(nil)

	tried := []StrategyID{StrategyStandard}
	for i := 0; i < 10; i++ {
		next := sel.SelectRetry(FailureNothingSignificant, tried)
		if next == nil {
			break
		}
		for _, id := range tried {
			if next.ID == id {
				t.Fatalf("repeated strategy %q after trying %v", next.ID, tried)
			}
		}
		tried = append(tried, next.ID)
	}

	if len(tried) != len(Strategies) {
		t.Errorf("exhausted after %d strategies, want %d", len(tried), len(Strategies))
	}
}

func TestSelectRetry_ExhaustedReturnsNil(t *testing.T) {
	sel := NewStrategySelector(nil)

	all := []StrategyID{
		StrategyStandard, StrategyWideNet, StrategyStrict,
		StrategyFibonacciFirst, StrategySpectral,
	}
	if got := sel.SelectRetry(FailureNothingSignificant, all); got != nil {
		t.Errorf("got %q, want nil when every strategy was tried", got.ID)
	}
}

func TestStrategies_TolerancesOrdered(t *testing.T) {
	strict := Strategies[StrategyStrict]
	std := Strategies[StrategyStandard]
	wide := Strategies[StrategyWideNet]

	if !(strict.RatioTolerance < std.RatioTolerance && std.RatioTolerance < wide.RatioTolerance) {
		t.Errorf("ratio tolerances not ordered: strict=%.2f standard=%.2f wide=%.2f",
			strict.RatioTolerance, std.RatioTolerance, wide.RatioTolerance)
	}
	if !(strict.FibTolerance < std.FibTolerance && std.FibTolerance < wide.FibTolerance) {
		t.Errorf("fib tolerances not ordered: strict=%.2f standard=%.2f wide=%.2f",
			strict.FibTolerance, std.FibTolerance, wide.FibTolerance)
	}
	if Strategies[StrategyFibonacciFirst].RunSpectral {
		t.Error("fibonacci_first should skip the spectral pass")
	}
}
