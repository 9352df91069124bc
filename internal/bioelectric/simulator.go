package bioelectric

import "fmt"

// #region simulator

// Simulator runs tissue regeneration under bioelectric guidance.
type Simulator struct {
	Field         *Field
	State         string
	TargetPattern string
	TimeHours     float64
	Progress      float64
	History       []StepRecord
}

// NewSimulator starts a simulation from the named tissue state.
func NewSimulator(initialState string) *Simulator {
	return &Simulator{
		Field: NewField(DefaultGridSize),
		State: initialState,
	}
}

// SetTarget defines what to regenerate and loads its pattern into the
// field.
func (s *Simulator) SetTarget(patternName string) error {
	if _, err := s.Field.SetTargetPattern(patternName); err != nil {
		return err
	}
	s.TargetPattern = patternName
	return nil
}

// #endregion simulator

// #region step

// Step advances the simulation by dtHours under the given protocol.
// Above the metabolic floor the tissue actively regenerates at 10% of
// coherence per hour; below it the form crystallizes at 2%.
func (s *Simulator) Step(p StimulationProtocol, dtHours float64) (StepRecord, error) {
	if err := s.Field.ApplyStimulation(p, dtHours); err != nil {
		return StepRecord{}, err
	}

	coherence := s.Field.Coherence()
	rate := 0.02
	if s.Field.MetabolicEnergy > exploreEnergy {
		rate = 0.1
	}
	s.Progress += coherence * rate * dtHours
	if s.Progress > 1.0 {
		s.Progress = 1.0
	}
	s.TimeHours += dtHours

	rec := StepRecord{
		TimeHours:     s.TimeHours,
		VoltageMap:    append([]float64(nil), s.Field.VoltageMap...),
		Coherence:     coherence,
		Progress:      s.Progress,
		Energy:        s.Field.MetabolicEnergy,
		PredictedForm: s.Field.PredictMorphology(),
	}
	s.History = append(s.History, rec)
	return rec, nil
}

// RunProtocol steps through every phase at the given resolution and
// returns the accumulated history.
func (s *Simulator) RunProtocol(phases []StimulationProtocol, dtHours float64) ([]StepRecord, error) {
	if dtHours <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %g", dtHours)
	}
	for _, p := range phases {
		steps := int(p.DurationHours / dtHours)
		for i := 0; i < steps; i++ {
			if _, err := s.Step(p, dtHours); err != nil {
				return nil, fmt.Errorf("phase %s: %w", p.Method, err)
			}
		}
	}
	return s.History, nil
}

// At returns the first history record within window hours of t, if any.
func (s *Simulator) At(t, window float64) (StepRecord, bool) {
	for _, rec := range s.History {
		d := rec.TimeHours - t
		if d < 0 {
			d = -d
		}
		if d < window {
			return rec, true
		}
	}
	return StepRecord{}, false
}

// #endregion step
