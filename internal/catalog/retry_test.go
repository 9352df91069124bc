package catalog

import (
	"testing"
)

func failedAttempt(strategy StrategyID, failure FailureKind) Attempt {
	return Attempt{
		Strategy: strategy,
		Evaluation: ScanEvaluation{
			Significance: 0.1,
			Failure:      failure,
			ShouldRetry:  true,
		},
	}
}

func TestShouldRetry_NoAttempts(t *testing.T) {
	engine := NewRetryEngine(NewStrategySelector(nil))
	class := ScanClass{DomainGeneric, ScaleMeso, StakesRoutine}

	retry, _ := engine.ShouldRetry(class, nil)
	if retry {
		t.Error("no attempts should not retry")
	}
}

func TestShouldRetry_GoodScanNoRetry(t *testing.T) {
	engine := NewRetryEngine(NewStrategySelector(nil))
	class := ScanClass{DomainGeneric, ScaleMeso, StakesRoutine}

	attempts := []Attempt{{
		Strategy: StrategyStandard,
		Evaluation: ScanEvaluation{
			Significance: 0.7,
			Failure:      FailureNone,
			ShouldRetry:  false,
		},
	}}

	retry, next := engine.ShouldRetry(class, attempts)
	if retry {
		t.Error("accepted scan should not retry")
	}
	if next != nil {
		t.Errorf("got strategy %q, want nil", next.ID)
	}
}

func TestShouldRetry_BadScanRetriesWithDifferentStrategy(t *testing.T) {
	engine := NewRetryEngine(NewStrategySelector(nil))
	class := ScanClass{DomainGeneric, ScaleMeso, StakesRoutine}

	attempts := []Attempt{failedAttempt(StrategyStandard, FailureNothingSignificant)}

	retry, next := engine.ShouldRetry(class, attempts)
	if !retry {
		t.Fatal("failed scan should retry")
	}
	if next == nil {
		t.Fatal("want a replacement strategy")
	}
	if next.ID == StrategyStandard {
		t.Errorf("retry repeated the failed strategy %q", next.ID)
	}
}

func TestShouldRetry_MaxRetries(t *testing.T) {
	engine := NewRetryEngine(NewStrategySelector(nil))
	class := ScanClass{DomainGeneric, ScaleMeso, StakesRoutine}

	attempts := []Attempt{
		failedAttempt(StrategyStandard, FailureNothingSignificant),
		failedAttempt(StrategyWideNet, FailureNothingSignificant),
		failedAttempt(StrategyFibonacciFirst, FailureNothingSignificant),
	}

	retry, _ := engine.ShouldRetry(class, attempts)
	if retry {
		t.Errorf("retried after %d attempts, want stop at 3", len(attempts))
	}
}

func TestShouldRetry_TwoAttemptsStillRetries(t *testing.T) {
	engine := NewRetryEngine(NewStrategySelector(nil))
	class := ScanClass{DomainGeneric, ScaleMeso, StakesRoutine}

	attempts := []Attempt{
		failedAttempt(StrategyStandard, FailureEntropyFlat),
		failedAttempt(StrategySpectral, FailureEntropyFlat),
	}

	retry, next := engine.ShouldRetry(class, attempts)
	if !retry {
		t.Fatal("second failure should still retry")
	}
	if next.ID == StrategyStandard || next.ID == StrategySpectral {
		t.Errorf("retry repeated a tried strategy %q", next.ID)
	}
}
