package logging

import "time"

// #region trigger
// Trigger identifies what produced an analysis_log row.
type Trigger string

const (
	// TriggerStep marks a committed simulation step.
	TriggerStep Trigger = "step"
	// TriggerScan marks a dataset scan evaluation.
	TriggerScan Trigger = "scan"
	// TriggerObserve marks a storm observation fed to the engine.
	TriggerObserve Trigger = "observe"
)

// #endregion trigger

// #region entry
// Entry is a single row in the analysis_log table.
type Entry struct {
	ID          int64
	RunVersion  string
	Trigger     Trigger
	SignalsJSON string
	Decision    string // "commit" | "confirmed" | "unconfirmed" | "accept" | "retry"
	Reason      string
	CreatedAt   time.Time
}

// #endregion entry

// #region observation-record
// ObservationRecord captures the exact engine inputs and outputs for one
// observed storm. Serialized as JSON into analysis_log.signals_json for
// deterministic replay.
type ObservationRecord struct {
	StormNumber int    `json:"storm_number"`
	Kind        string `json:"kind"`

	// Exact signals as observed at runtime
	PhiCoupling     float64 `json:"phi_coupling"`
	PhiQuality      float64 `json:"phi_quality"`
	SpiralCoherence float64 `json:"spiral_coherence"`
	EnergyCoupling  float64 `json:"energy_coupling"`

	// Engine output at decision time
	Confirmed bool    `json:"confirmed"`
	JoyGain   float64 `json:"joy_gain"`
	Happiness float64 `json:"happiness"`
	Curiosity float64 `json:"curiosity"`
	Resonance float64 `json:"resonance"`
	State     string  `json:"state"`
}

// RegenRecord captures the scalar field state after one regeneration step.
// The full voltage map lives in the run store as the version's field vector.
type RegenRecord struct {
	Hour          float64 `json:"hour"`
	Progress      float64 `json:"progress"`
	Coherence     float64 `json:"coherence"`
	Energy        float64 `json:"energy"`
	PredictedForm string  `json:"predicted_form"`
}

// #endregion observation-record
