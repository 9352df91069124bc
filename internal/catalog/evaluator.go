package catalog

// #region imports
import (
	"github.com/JinnZ2/Shadow-Hunting/internal/shadow"
)

// #endregion

// #region acceptance

// Acceptance bars. Careful stakes demand more before a scan is trusted.
const (
	routineBar = 0.35
	carefulBar = 0.50
)

func acceptBar(stakes Stakes) float64 {
	if stakes == StakesCareful {
		return carefulBar
	}
	return routineBar
}

// #endregion

// #region evaluate

// EvaluateScan scores one scan attempt. Significance blends the four
// detector outputs under the strategy's emphasis; a detected failure caps
// it low enough that the retry threshold always fires.
func EvaluateScan(result shadow.ScanResult, cfg StrategyConfig, stakes Stakes) ScanEvaluation {
	failure := detectScanFailure(result)
	significance := scoreSignificance(result, cfg.Emphasis)

	if failure != FailureNone && significance > 0.3 {
		significance = 0.3
	}

	// Routine hunts trust any detector hit; careful stakes rescan weak hits
	// too. Degenerate input never retries, no tolerance change fixes an
	// empty series.
	shouldRetry := significance < acceptBar(stakes) &&
		failure != FailureDegenerateInput &&
		(failure != FailureNone || stakes == StakesCareful)

	return ScanEvaluation{
		Significance: significance,
		Failure:      failure,
		ShouldRetry:  shouldRetry,
	}
}

// #endregion

// #region detect-failure

func detectScanFailure(result shadow.ScanResult) FailureKind {
	// Fewer than two usable points: no ratios, nothing to assess.
	if len(result.PhiRatios.Ratios) == 0 {
		return FailureDegenerateInput
	}

	hit := result.PhiRatios.Significant ||
		result.Fibonacci.Significant ||
		result.Coherence.Level == shadow.CoherenceHigh ||
		result.Coupling.HasSignature
	if hit {
		return FailureNone
	}

	// Near-uniform distribution with no detector firing: the series is
	// flat noise as far as the proportional detectors can tell.
	if result.Coherence.Normalized > 0.97 {
		return FailureEntropyFlat
	}

	return FailureNothingSignificant
}

// #endregion

// #region significance-score

func scoreSignificance(result shadow.ScanResult, emphasis Emphasis) float64 {
	// Each component saturates at 1. Enrichment 4 is twice the detector's
	// own significance bar, coherence 1.5 is the HIGH threshold, three
	// spectral hits count as a full signature.
	ratio := clamp01(result.PhiRatios.Enrichment / 4.0)
	fib := clamp01(result.Fibonacci.Fraction)
	coh := clamp01(result.Coherence.Coherence / 1.5)
	spec := clamp01(float64(len(result.Coupling.Resonances)+len(result.Coupling.PhiRatios)) / 3.0)

	var wRatio, wFib, wCoh, wSpec float64
	switch emphasis {
	case EmphasisFibonacci:
		wRatio, wFib, wCoh, wSpec = 0.25, 0.45, 0.25, 0.05
	case EmphasisSpectral:
		wRatio, wFib, wCoh, wSpec = 0.20, 0.10, 0.25, 0.45
	default:
		wRatio, wFib, wCoh, wSpec = 0.30, 0.20, 0.30, 0.20
	}

	return wRatio*ratio + wFib*fib + wCoh*coh + wSpec*spec
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion
