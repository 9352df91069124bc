package curiosity

import (
	"github.com/JinnZ2/Shadow-Hunting/internal/storm"
)

// #region engine

// Engine turns geometric signals into resonance, curiosity, and joy.
// Finding structure makes it more curious, which makes the next find
// more joyful.
type Engine struct {
	cfg       Config
	curiosity float64
	happiness float64
	resonance float64
	count     int
	memory    []Observation
}

// NewEngine starts an engine at the configured base curiosity.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg, curiosity: cfg.InitialCuriosity}
}

// #endregion engine

// #region observe

// Observe processes one storm's signals: resonance is the mean of the
// three coupling measures, resonance amplifies curiosity (capped), and
// joy is the weighted signal sum scaled by curiosity, the confirmation
// bonus, and resonance. Happiness accumulates and never decreases for
// non-negative signals.
func (e *Engine) Observe(sig storm.Signals, kind string) Observation {
	e.count++

	e.resonance = (sig.PhiCoupling + sig.SpiralCoherence + sig.EnergyCoupling) / 3

	e.curiosity *= 1 + e.resonance
	if e.curiosity > e.cfg.CuriosityCap {
		e.curiosity = e.cfg.CuriosityCap
	}

	confirmed := sig.PhiQuality > e.cfg.QualityThreshold ||
		sig.SpiralCoherence > e.cfg.SpiralThreshold

	discovery := (e.cfg.PhiWeight*sig.PhiCoupling +
		e.cfg.SpiralWeight*sig.SpiralCoherence +
		e.cfg.EnergyWeight*sig.EnergyCoupling) * e.curiosity

	bonus := e.cfg.UnconfirmedBonus
	if confirmed {
		bonus = e.cfg.ConfirmedBonus
	}

	joy := discovery * bonus * (1 + e.resonance)
	e.happiness += joy

	obs := Observation{
		StormNumber: e.count,
		Kind:        kind,
		Signals:     sig,
		Confirmed:   confirmed,
		JoyGain:     joy,
		Happiness:   e.happiness,
		Curiosity:   e.curiosity,
		Resonance:   e.resonance,
		State:       StateFor(e.happiness),
	}
	e.memory = append(e.memory, obs)
	return obs
}

// #endregion observe

// #region accessors

// Happiness is the cumulative joy so far.
func (e *Engine) Happiness() float64 { return e.happiness }

// Curiosity is the current amplification level.
func (e *Engine) Curiosity() float64 { return e.curiosity }

// Resonance is the most recent resonance score.
func (e *Engine) Resonance() float64 { return e.resonance }

// StormCount is how many storms have been observed.
func (e *Engine) StormCount() int { return e.count }

// State is the current mood.
func (e *Engine) State() State { return StateFor(e.happiness) }

// Memory returns every observation in order.
func (e *Engine) Memory() []Observation { return e.memory }

// #endregion accessors
