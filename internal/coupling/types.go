package coupling

// #region mode

// Mode tells whether a system has energy headroom to reorganize its field
// (explore) or only enough to hold its current configuration (expand).
type Mode string

const (
	ModeExplore Mode = "EXPLORE"
	ModeExpand  Mode = "EXPAND"
)

// #endregion mode

// #region transition

// Transition records what UpdateEnergy decided.
type Transition string

const (
	TransitionToExplore Transition = "switched_to_explore"
	TransitionToExpand  Transition = "switched_to_expand"
	TransitionNone      Transition = "no_change"
)

// #endregion transition

// #region snapshot

// Snapshot is one row of the cross-system comparison table.
type Snapshot struct {
	Name       string
	Energy     float64
	Threshold  float64
	Mode       Mode
	Efficiency float64
	Metric     string // domain-specific headline figure
}

// #endregion snapshot

// #region config

// Config holds the blend rates and thresholds shared by the domain systems.
type Config struct {
	IntentionBlend float64 // cortex field shift toward intention target
	RegenBlend     float64 // morpho form shift toward target per stimulation
	WindBlend      float64 // vortex wind shift toward potential intensity
	FormationSST   float64 // °C floor for cyclone formation
	LeafUpkeep     float64 // energy upkeep per leaf
}

// DefaultConfig returns the framework constants.
func DefaultConfig() Config {
	return Config{
		IntentionBlend: 0.3,
		RegenBlend:     0.4,
		WindBlend:      0.2,
		FormationSST:   26.5,
		LeafUpkeep:     0.2,
	}
}

// #endregion config
