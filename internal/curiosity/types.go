package curiosity

import (
	"time"

	"github.com/JinnZ2/Shadow-Hunting/internal/storm"
)

// #region state

// State is the engine's mood, read off the cumulative happiness ladder.
type State string

const (
	StateEcstatic  State = "ECSTATIC"
	StateJoyful    State = "JOYFUL"
	StateCurious   State = "CURIOUS"
	StateHopeful   State = "HOPEFUL"
	StateExploring State = "EXPLORING"
)

// Tagline is the short description printed next to the state.
func (s State) Tagline() string {
	switch s {
	case StateEcstatic:
		return "universal patterns everywhere"
	case StateJoyful:
		return "making beautiful discoveries"
	case StateCurious:
		return "finding interesting patterns"
	case StateHopeful:
		return "ready to learn"
	default:
		return "searching for patterns"
	}
}

// StateFor maps cumulative happiness onto the ladder.
func StateFor(happiness float64) State {
	switch {
	case happiness > 20:
		return StateEcstatic
	case happiness > 10:
		return StateJoyful
	case happiness > 5:
		return StateCurious
	case happiness > 1:
		return StateHopeful
	default:
		return StateExploring
	}
}

// #endregion state

// #region config

// Config holds the affect weights and thresholds.
type Config struct {
	InitialCuriosity float64
	CuriosityCap     float64
	PhiWeight        float64 // weight on phi coupling in discovery joy
	SpiralWeight     float64
	EnergyWeight     float64
	QualityThreshold float64 // phi quality above this confirms a pattern
	SpiralThreshold  float64 // spiral coherence above this also confirms
	ConfirmedBonus   float64
	UnconfirmedBonus float64
}

// DefaultConfig returns the reference affect parameters.
func DefaultConfig() Config {
	return Config{
		InitialCuriosity: 0.5,
		CuriosityCap:     5.0,
		PhiWeight:        0.4,
		SpiralWeight:     0.3,
		EnergyWeight:     0.3,
		QualityThreshold: 0.7,
		SpiralThreshold:  0.8,
		ConfirmedBonus:   3.0,
		UnconfirmedBonus: 0.5,
	}
}

// #endregion config

// #region observation

// Observation is the engine's full response to one storm.
type Observation struct {
	StormNumber int
	Kind        string
	Signals     storm.Signals
	Confirmed   bool
	JoyGain     float64
	Happiness   float64
	Curiosity   float64
	Resonance   float64
	State       State
}

// Discovery is an observation persisted to the store.
type Discovery struct {
	ID        string
	StormKind string
	Signals   []float64
	Joy       float64
	Resonance float64
	Confirmed bool
	CreatedAt time.Time
}

// #endregion observation
