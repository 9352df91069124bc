package bioelectric

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// #region protocol-file

// ProtocolFile is the on-disk form of a staged protocol.
type ProtocolFile struct {
	Name          string                `yaml:"name"`
	Description   string                `yaml:"description,omitempty"`
	InitialState  string                `yaml:"initial_state"`
	TargetPattern string                `yaml:"target_pattern"`
	Phases        []StimulationProtocol `yaml:"phases"`
}

// Validate checks the file names a known target and every phase is
// runnable.
func (pf ProtocolFile) Validate() error {
	if pf.Name == "" {
		return fmt.Errorf("protocol needs a name")
	}
	if _, ok := LookupPattern(pf.TargetPattern); !ok {
		return fmt.Errorf("target pattern %q not in library", pf.TargetPattern)
	}
	if len(pf.Phases) == 0 {
		return fmt.Errorf("protocol %q has no phases", pf.Name)
	}
	for i, p := range pf.Phases {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("phase %d: %w", i+1, err)
		}
	}
	return nil
}

// LoadProtocolFile parses and validates a YAML protocol.
func LoadProtocolFile(path string) (ProtocolFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ProtocolFile{}, fmt.Errorf("read protocol: %w", err)
	}
	var pf ProtocolFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return ProtocolFile{}, fmt.Errorf("parse protocol: %w", err)
	}
	if err := pf.Validate(); err != nil {
		return ProtocolFile{}, err
	}
	return pf, nil
}

// SaveProtocolFile writes a protocol as YAML.
func SaveProtocolFile(pf ProtocolFile, path string) error {
	data, err := yaml.Marshal(pf)
	if err != nil {
		return fmt.Errorf("marshal protocol: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// #endregion protocol-file

// #region builtin-protocols

// builtinProtocols are the staged protocols from the Levin-lab playbook.
var builtinProtocols = map[string]ProtocolFile{
	"planaria-head": {
		Name:          "planaria-head",
		Description:   "Regenerate a planaria head from a tail fragment",
		InitialState:  "tail_fragment",
		TargetPattern: "head",
		Phases: []StimulationProtocol{
			// Depolarize to initiate head formation
			{Method: MethodIonChannelDrugs, TargetVoltage: -60.0, DurationHours: 48.0, Intensity: 0.8},
			// Establish the gap junction network
			{Method: MethodDirectCurrent, TargetVoltage: -50.0, DurationHours: 48.0, Intensity: 0.6},
			// Stabilize at alpha frequency
			{Method: MethodPulsedEM, TargetVoltage: -55.0, DurationHours: 72.0, FrequencyHz: 10.0, Intensity: 0.4},
		},
	},
	"wound-heal": {
		Name:          "wound-heal",
		Description:   "Accelerate mammalian wound healing",
		InitialState:  "wounded",
		TargetPattern: "wound_heal",
		Phases: []StimulationProtocol{
			// Re-establish the injury current
			{Method: MethodDirectCurrent, TargetVoltage: -45.0, DurationHours: 24.0, Intensity: 1.0},
			// Guide cell migration at the Schumann resonance
			{Method: MethodPulsedEM, TargetVoltage: -50.0, DurationHours: 48.0, FrequencyHz: 7.83, Intensity: 0.7},
			// Tissue remodeling
			{Method: MethodPulsedEM, TargetVoltage: -55.0, DurationHours: 96.0, FrequencyHz: 10.0, Intensity: 0.5},
		},
	},
	"tumor-revert": {
		Name:          "tumor-revert",
		Description:   "Revert tumor cells toward the normal phenotype (experimental)",
		InitialState:  "tumor",
		TargetPattern: "tumor_revert",
		Phases: []StimulationProtocol{
			// Hyperpolarize to normal epithelial voltage
			{Method: MethodIonChannelDrugs, TargetVoltage: -55.0, DurationHours: 48.0, Intensity: 0.9},
			// Restore gap junction coupling
			{Method: MethodDirectCurrent, TargetVoltage: -60.0, DurationHours: 72.0, Intensity: 0.7},
			// Maintain the normal pattern
			{Method: MethodPulsedEM, TargetVoltage: -58.0, DurationHours: 216.0, FrequencyHz: 10.0, Intensity: 0.6},
		},
	},
}

// BuiltinProtocol returns a named built-in protocol.
func BuiltinProtocol(name string) (ProtocolFile, bool) {
	pf, ok := builtinProtocols[name]
	return pf, ok
}

// BuiltinProtocolNames lists the built-in protocols sorted by name.
func BuiltinProtocolNames() []string {
	names := make([]string, 0, len(builtinProtocols))
	for name := range builtinProtocols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// #endregion builtin-protocols

// #region experiment-design

// DesignTimepoints are the measurement hours for the bench protocol.
var DesignTimepoints = []float64{0, 48, 96, 168}

// DesignWindow is the match window in hours around each timepoint.
const DesignWindow = 7.0

// ExperimentDesign bundles everything a bench run of a protocol needs.
type ExperimentDesign struct {
	Protocol     ProtocolFile
	Materials    []string
	Measurements []string
	Criteria     []string
}

// DesignExperiment prepares the bench design for a protocol.
func DesignExperiment(pf ProtocolFile) ExperimentDesign {
	return ExperimentDesign{
		Protocol: pf,
		Materials: []string{
			"Planaria (Dugesia japonica or tigrina)",
			"Sterile razor blade or scalpel",
			"Spring water or dechlorinated tap water",
			"Ion channel modulator: Ivermectin (10-50 uM)",
			"Or: DC stimulation device (0.1-1.0 V/cm)",
			"Petri dishes",
			"Microscope for observation",
			"Optional: voltage-sensitive dye (DiBAC4(3))",
		},
		Measurements: []string{
			"Head regeneration speed (days to eyespot formation)",
			"Head vs tail polarity (correct orientation?)",
			"Morphology quality (eye spacing, brain structure)",
			"Voltage measurements with microelectrodes",
			"Optional: gene expression (Wnt, Notch pathways)",
		},
		Criteria: []string{
			"Experimental group regenerates faster than control",
			"Maintains correct polarity",
			"Functional behavior restored (phototaxis, feeding)",
			"Voltage pattern matches the target signature",
		},
	}
}

// #endregion experiment-design
