package catalog

// #region imports
import (
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/JinnZ2/Shadow-Hunting/internal/shadow"
)

// #endregion

// #region input-result

// HuntInput describes one dataset to scan.
type HuntInput struct {
	ScanID      string // generated when empty
	Description string
	Series      []float64
	SampleRate  float64   // samples per unit time, <= 0 keeps frequencies in cycles per sample
	Expected    []float64 // expected resonance frequencies, optional
}

// HuntResult is the outcome of a full hunt: classification, every attempt,
// and the index of the accepted one.
type HuntResult struct {
	ScanID   string
	Class    ScanClass
	Attempts []Attempt
	Accepted int
}

// Final returns the accepted attempt's scan result.
func (r HuntResult) Final() shadow.ScanResult {
	return r.Attempts[r.Accepted].Result
}

// Evaluation returns the accepted attempt's evaluation.
func (r HuntResult) Evaluation() ScanEvaluation {
	return r.Attempts[r.Accepted].Evaluation
}

// #endregion

// #region hunter

// Hunter coordinates dataset classification, strategy selection, scanning,
// evaluation, and retry for one session.
type Hunter struct {
	selector  *StrategySelector
	retry     *RetryEngine
	memory    *ScanMemory
	adaptive  bool
	lastClass *ScanClass // previous hunt's classification for context inheritance
}

// NewHunter creates a fully wired hunter. Pass db for outcome persistence.
// Kill switch: set HUNT_ADAPTIVE=false to pin the standard strategy.
func NewHunter(db *sql.DB) (*Hunter, error) {
	adaptive := true
	if v := os.Getenv("HUNT_ADAPTIVE"); v == "false" {
		adaptive = false
	}

	mem, err := NewScanMemory(db)
	if err != nil {
		return nil, err
	}

	selector := NewStrategySelector(mem)
	retry := NewRetryEngine(selector)

	return &Hunter{
		selector: selector,
		retry:    retry,
		memory:   mem,
		adaptive: adaptive,
	}, nil
}

// Adaptive reports whether strategy learning and retries are active.
func (h *Hunter) Adaptive() bool {
	return h.adaptive
}

// #endregion

// #region classify

// Classify classifies a description, inheriting from the previous hunt
// when the description reads as a follow-up.
func (h *Hunter) Classify(desc string) ScanClass {
	var class ScanClass
	if h.lastClass != nil {
		class = Classify(desc, *h.lastClass)
	} else {
		class = Classify(desc)
	}
	h.lastClass = &class
	return class
}

// #endregion

// #region hunt

// Hunt runs the full pipeline over one dataset: classify, pick a strategy,
// scan, evaluate, retry on failure, and record every attempt. When no
// attempt clears the bar the most significant one is accepted.
func (h *Hunter) Hunt(in HuntInput) (HuntResult, error) {
	scanID := in.ScanID
	if scanID == "" {
		scanID = uuid.NewString()
	}

	class := h.Classify(in.Description)

	var strat StrategyConfig
	if h.adaptive {
		strat = h.selector.SelectInitial(class)
	} else {
		strat = Strategies[StrategyStandard]
	}

	log.Printf("[HUNT] classify: domain=%s scale=%s stakes=%s strategy=%s",
		class.Domain, class.Scale, class.Stakes, strat.ID)

	var attempts []Attempt
	for {
		result := h.scan(in, strat)
		eval := EvaluateScan(result, strat, class.Stakes)

		log.Printf("[HUNT] attempt %d: strategy=%s significance=%.2f failure=%s",
			len(attempts), strat.ID, eval.Significance, eval.Failure)

		attempts = append(attempts, Attempt{
			Strategy:   strat.ID,
			Result:     result,
			Evaluation: eval,
		})

		if !h.adaptive || !eval.ShouldRetry {
			break
		}
		retryOK, next := h.retry.ShouldRetry(class, attempts)
		if !retryOK || next == nil {
			break
		}
		strat = *next
	}

	accepted := len(attempts) - 1
	for i, a := range attempts {
		if a.Evaluation.Significance > attempts[accepted].Evaluation.Significance {
			accepted = i
		}
	}

	h.record(scanID, class, attempts, accepted)

	return HuntResult{
		ScanID:   scanID,
		Class:    class,
		Attempts: attempts,
		Accepted: accepted,
	}, nil
}

func (h *Hunter) scan(in HuntInput, strat StrategyConfig) shadow.ScanResult {
	cfg := shadow.DefaultScanConfig()
	cfg.RatioTolerance = strat.RatioTolerance
	cfg.FibTolerance = strat.FibTolerance
	cfg.SampleRate = in.SampleRate
	cfg.Expected = in.Expected

	if !strat.RunSpectral {
		return shadow.ScanResult{
			PhiRatios: shadow.DetectPhiRatios(in.Series, cfg.RatioTolerance),
			Fibonacci: shadow.DetectFibonacci(in.Series, cfg.FibTolerance),
			Coherence: shadow.DetectCoherence(in.Series),
		}
	}
	return shadow.Scan(in.Series, cfg)
}

// #endregion

// #region record

func (h *Hunter) record(scanID string, class ScanClass, attempts []Attempt, acceptedIdx int) {
	for i, a := range attempts {
		rec := OutcomeRecord{
			ScanID:       scanID,
			Domain:       class.Domain,
			Scale:        class.Scale,
			Stakes:       class.Stakes,
			StrategyID:   a.Strategy,
			AttemptNum:   i,
			Significance: a.Evaluation.Significance,
			Failure:      a.Evaluation.Failure,
			Accepted:     i == acceptedIdx,
			CreatedAt:    time.Now(),
		}
		if err := h.memory.RecordOutcome(rec); err != nil {
			log.Printf("[HUNT] failed to record outcome: %v", err)
		}
	}

	log.Printf("[HUNT] recorded %d attempts for scan %s (accepted=%d)",
		len(attempts), scanID, acceptedIdx)
}

// #endregion
