package replay

import (
	"fmt"
	"math"
	"strings"

	"github.com/JinnZ2/Shadow-Hunting/internal/curiosity"
)

// #region types
// StepResult captures the outcome of replaying one observation against its
// recorded expectations.
type StepResult struct {
	StormNumber int
	Kind        string
	Got         curiosity.Observation

	WantConfirmed bool
	WantState     curiosity.State

	Matched  bool
	Mismatch string // empty when the step matched
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalSteps int
	Matches    int
	Mismatches []string

	FinalHappiness float64
	FinalCuriosity float64
	FinalState     curiosity.State

	WantHappiness   float64
	JoyDelta        float64
	WithinTolerance bool
}

// #endregion types

// #region replay
// ReplayFromFixture feeds the fixture's observations through a fresh engine
// in order, comparing each step's confirmation and state against the
// recorded expectations. Operates entirely in-memory.
func ReplayFromFixture(f *Fixture) ([]StepResult, Summary) {
	engine := curiosity.NewEngine(f.Config.ToConfig())
	results := make([]StepResult, 0, len(f.Observations))

	for _, fo := range f.Observations {
		obs := engine.Observe(fo.ToSignals(), fo.Kind)

		r := StepResult{
			StormNumber:   obs.StormNumber,
			Kind:          fo.Kind,
			Got:           obs,
			WantConfirmed: fo.ExpectConfirmed,
			WantState:     curiosity.State(fo.ExpectState),
		}

		var faults []string
		if obs.Confirmed != fo.ExpectConfirmed {
			faults = append(faults, fmt.Sprintf("confirmed got %v, want %v", obs.Confirmed, fo.ExpectConfirmed))
		}
		if string(obs.State) != fo.ExpectState {
			faults = append(faults, fmt.Sprintf("state got %s, want %s", obs.State, fo.ExpectState))
		}
		if len(faults) == 0 {
			r.Matched = true
		} else {
			r.Mismatch = strings.Join(faults, "; ")
		}
		results = append(results, r)
	}

	return results, summarize(results, f.ExpectedFinal, engine)
}

func summarize(results []StepResult, want FixtureFinal, engine *curiosity.Engine) Summary {
	s := Summary{
		TotalSteps:     len(results),
		FinalHappiness: engine.Happiness(),
		FinalCuriosity: engine.Curiosity(),
		FinalState:     engine.State(),
		WantHappiness:  want.Happiness,
	}
	for _, r := range results {
		if r.Matched {
			s.Matches++
			continue
		}
		s.Mismatches = append(s.Mismatches, fmt.Sprintf("storm %d (%s): %s", r.StormNumber, r.Kind, r.Mismatch))
	}
	if want.Storms != 0 && want.Storms != engine.StormCount() {
		s.Mismatches = append(s.Mismatches, fmt.Sprintf("storms: got %d, want %d", engine.StormCount(), want.Storms))
	}

	// A zero-value final block means the fixture pins no end totals.
	if want == (FixtureFinal{}) {
		s.WithinTolerance = true
		return s
	}

	tol := want.Tolerance
	if tol <= 0 {
		tol = 1e-6
	}
	s.JoyDelta = s.FinalHappiness - want.Happiness
	s.WithinTolerance = math.Abs(s.JoyDelta) <= tol
	return s
}

// #endregion replay
