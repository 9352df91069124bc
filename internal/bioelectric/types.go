package bioelectric

import "fmt"

// #region tissue-type

// TissueType tags a voltage signature with the tissue it encodes.
type TissueType string

const (
	TissueNerve      TissueType = "nerve"      // -70 to -90 mV, highly polarized
	TissueMuscle     TissueType = "muscle"     // -60 to -90 mV
	TissueEpithelial TissueType = "epithelial" // -40 to -60 mV
	TissueStem       TissueType = "stem"       // variable, responsive
	TissueTumor      TissueType = "tumor"      // -10 to -30 mV, depolarized
	TissueWound      TissueType = "wound"      // -20 to -40 mV, partially depolarized
)

// #endregion tissue-type

// #region stimulation-method

// StimulationMethod names a way of modifying a bioelectric pattern.
type StimulationMethod string

const (
	MethodIonChannelDrugs     StimulationMethod = "drugs"        // ivermectin, retigabine
	MethodGapJunctionBlockers StimulationMethod = "gap_junction" // octanol
	MethodDirectCurrent       StimulationMethod = "dc_field"
	MethodPulsedEM            StimulationMethod = "pem_field"
	MethodOptogenetics        StimulationMethod = "optogenetics"
	MethodPiezo               StimulationMethod = "piezo"
)

// KnownMethod reports whether m is one of the supported methods.
func KnownMethod(m StimulationMethod) bool {
	switch m {
	case MethodIonChannelDrugs, MethodGapJunctionBlockers, MethodDirectCurrent,
		MethodPulsedEM, MethodOptogenetics, MethodPiezo:
		return true
	}
	return false
}

// #endregion stimulation-method

// #region voltage-pattern

// VoltagePattern is a bioelectric signature that encodes a morphology.
type VoltagePattern struct {
	TissueType     TissueType
	VmemTarget     float64 // target membrane voltage, mV
	GapConductance float64 // 0-1, how electrically coupled cells are
	IonChannels    []float64
}

func (p VoltagePattern) String() string {
	return fmt.Sprintf("%s: %.1fmV, coupling=%.2f", p.TissueType, p.VmemTarget, p.GapConductance)
}

// #endregion voltage-pattern

// #region stimulation-protocol

// StimulationProtocol describes one bioelectric intervention phase.
type StimulationProtocol struct {
	Method        StimulationMethod `yaml:"method"`
	TargetVoltage float64           `yaml:"target_voltage"` // mV
	DurationHours float64           `yaml:"duration_hours"`
	FrequencyHz   float64           `yaml:"frequency_hz,omitempty"` // pulsed methods only
	Intensity     float64           `yaml:"intensity"`              // 0-1
}

func (p StimulationProtocol) String() string {
	if p.FrequencyHz > 0 {
		return fmt.Sprintf("%s: %.1fmV, %gh, %gHz", p.Method, p.TargetVoltage, p.DurationHours, p.FrequencyHz)
	}
	return fmt.Sprintf("%s: %.1fmV, %gh", p.Method, p.TargetVoltage, p.DurationHours)
}

// Validate checks the protocol is runnable.
func (p StimulationProtocol) Validate() error {
	if !KnownMethod(p.Method) {
		return fmt.Errorf("unknown stimulation method %q", p.Method)
	}
	if p.DurationHours <= 0 {
		return fmt.Errorf("duration must be positive, got %g", p.DurationHours)
	}
	if p.Intensity < 0 || p.Intensity > 1 {
		return fmt.Errorf("intensity must be in [0,1], got %g", p.Intensity)
	}
	return nil
}

// #endregion stimulation-protocol

// #region step-record

// StepRecord captures the field state after one simulation step.
type StepRecord struct {
	TimeHours     float64
	VoltageMap    []float64
	Coherence     float64
	Progress      float64
	Energy        float64
	PredictedForm string
}

// #endregion step-record
