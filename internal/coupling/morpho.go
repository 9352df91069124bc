package coupling

import "math"

// #region morpho

// Morpho models voltage-guided tissue re-forming. Energy is the metabolic
// budget; regeneration needs 60% of it, so the threshold scales with the
// budget.
type Morpho struct {
	System
	VoltagePattern []float64
	CurrentForm    []float64
	target         []float64
	cfg            Config
}

// MorphoResult reports one stimulation pass.
type MorphoResult struct {
	Efficiency     float64
	VoltagePattern []float64
	CurrentForm    []float64
	Mode           Mode
	Progress       float64
}

// NewMorpho builds a morphogenetic system over the given tissue regions.
func NewMorpho(metabolicEnergy float64, regions int) *Morpho {
	m := &Morpho{
		VoltagePattern: make([]float64, regions),
		CurrentForm:    uniform(regions),
		cfg:            DefaultConfig(),
	}
	m.System = newSystem("Morphogenesis", metabolicEnergy, func(e float64) float64 {
		return 0.6 * e
	})
	return m
}

// SetTarget normalizes and stores the desired form.
func (m *Morpho) SetTarget(target []float64) {
	var sum float64
	for _, v := range target {
		sum += v
	}
	t := make([]float64, len(target))
	for i, v := range target {
		t[i] = v
		if sum != 0 {
			t[i] = v / sum
		}
	}
	m.target = t
}

// #endregion morpho

// #region stimulate

// Stimulate shifts the voltage pattern and, in explore mode, lets the
// form respond toward the target. Expand mode crystallizes the form.
func (m *Morpho) Stimulate(adjustment []float64) MorphoResult {
	for i := range m.VoltagePattern {
		if i < len(adjustment) {
			m.VoltagePattern[i] += adjustment[i]
		}
	}
	if m.Mode == ModeExplore && m.target != nil {
		a := m.cfg.RegenBlend
		for i := range m.CurrentForm {
			m.CurrentForm[i] = (1-a)*m.CurrentForm[i] + a*m.target[i]
		}
	}
	return MorphoResult{
		Efficiency:     Efficiency(m.CurrentForm),
		VoltagePattern: copyVec(m.VoltagePattern),
		CurrentForm:    copyVec(m.CurrentForm),
		Mode:           m.Mode,
		Progress:       m.Progress(),
	}
}

// Progress is 1 minus the distance between current and target form,
// clamped to [0, 1]. No target means zero progress.
func (m *Morpho) Progress() float64 {
	if m.target == nil {
		return 0
	}
	var sumSq float64
	for i := range m.CurrentForm {
		d := m.CurrentForm[i] - m.target[i]
		sumSq += d * d
	}
	return clamp01(1 - math.Sqrt(sumSq))
}

// #endregion stimulate
