package coupling

import (
	"math"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

// #region system

// System is the energy/mode core shared by the four domain systems. The
// branching threshold is a function of the current budget because two of
// the systems scale theirs off it.
type System struct {
	Name   string
	Energy float64
	Mode   Mode

	threshold func(energy float64) float64
}

func newSystem(name string, energy float64, threshold func(float64) float64) System {
	s := System{Name: name, Energy: energy, threshold: threshold}
	s.Mode = ModeExpand
	if energy > threshold(energy) {
		s.Mode = ModeExplore
	}
	return s
}

// Threshold returns the branching threshold at the current energy budget.
func (s *System) Threshold() float64 {
	return s.threshold(s.Energy)
}

// UpdateEnergy applies delta to the budget and switches mode when the
// budget crosses the branching threshold. Landing exactly on the
// threshold changes nothing.
func (s *System) UpdateEnergy(delta float64) Transition {
	s.Energy += delta
	th := s.Threshold()
	switch {
	case s.Energy > th && s.Mode == ModeExpand:
		s.Mode = ModeExplore
		return TransitionToExplore
	case s.Energy < th && s.Mode == ModeExplore:
		s.Mode = ModeExpand
		return TransitionToExpand
	}
	return TransitionNone
}

// SetEnergy replaces the budget without re-evaluating the mode. Protocol
// phases use this to stage energy levels between stimulations.
func (s *System) SetEnergy(energy float64) {
	s.Energy = energy
}

// #endregion system

// #region efficiency

// Efficiency scores a geometry's phi alignment: exp of the negated mean
// deviation over consecutive element ratios. Degenerate geometry with no
// usable ratios carries a full unit of deviation, scoring exp(-1).
func Efficiency(geometry []float64) float64 {
	ratios := phi.ConsecutiveRatios(geometry)
	if len(ratios) == 0 {
		return math.Exp(-1)
	}
	var sum float64
	for _, r := range ratios {
		sum += phi.Deviation(r)
	}
	return math.Exp(-sum / float64(len(ratios)))
}

// #endregion efficiency

// #region helpers

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func copyVec(v []float64) []float64 {
	return append([]float64(nil), v...)
}

func uniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1 / float64(n)
	}
	return out
}

// #endregion helpers
