package shadow

import (
	"errors"
	"fmt"
)

// #region types

// Paradox is a regeneration observation the blueprint model cannot
// carry, paired with the field-coupling account of it.
type Paradox struct {
	Name        string
	Experiment  string
	Prediction  string
	Problem     string
	Explanation string
}

// InformationLayer describes where bioelectric pattern information
// lives at one spatial scale.
type InformationLayer struct {
	Scale     string
	Elements  string
	Stores    string
	Mechanism string
	Role      string
}

// AntennaProperty is one physical property that lets DNA couple to a
// surrounding field.
type AntennaProperty struct {
	Name         string
	Feature      string
	Coupling     string
	Frequency    string
	Optimization string
}

// CouplingMechanism is one bidirectional channel between field state
// and gene expression.
type CouplingMechanism struct {
	Name       string
	FieldToDNA string
	DNAToField string
	Feedback   string
	Timescale  string
}

// Planaria collects the regeneration evidence: the paradoxes, the
// information architecture, the antenna reading of DNA, and the
// coupling channels between field and genome.
type Planaria struct {
	Paradoxes  []Paradox
	Layers     []InformationLayer
	Antenna    []AntennaProperty
	Mechanisms []CouplingMechanism
	Boundaries []Boundary
}

// Validate checks that every record carries its full set of fields.
func (p *Planaria) Validate() error {
	if len(p.Paradoxes) == 0 {
		return errors.New("planaria: no paradoxes")
	}
	for _, px := range p.Paradoxes {
		if px.Name == "" || px.Experiment == "" || px.Prediction == "" || px.Problem == "" || px.Explanation == "" {
			return fmt.Errorf("planaria: paradox %q: incomplete record", px.Name)
		}
	}
	if len(p.Layers) == 0 {
		return errors.New("planaria: no information layers")
	}
	if len(p.Antenna) == 0 {
		return errors.New("planaria: no antenna properties")
	}
	if len(p.Mechanisms) == 0 {
		return errors.New("planaria: no coupling mechanisms")
	}
	if len(p.Boundaries) == 0 {
		return errors.New("planaria: no boundaries")
	}
	return nil
}

// #endregion types

// #region case

// PlanariaCase returns the regeneration dossier.
func PlanariaCase() *Planaria {
	return &Planaria{
		Paradoxes: []Paradox{
			{
				Name:        "cut anywhere, get a complete worm",
				Experiment:  "a worm cut into hundreds of pieces regenerates a full body from each",
				Prediction:  "every piece needs complete instructions for what it lacks",
				Problem:     "DNA is identical in every cell, yet each fragment knows what it is missing",
				Explanation: "cells read the field pattern and regenerate toward the complete geometry",
			},
			{
				Name:        "head-tail polarity maintained",
				Experiment:  "every fragment knows which end should grow a head",
				Prediction:  "polarity genes set the orientation",
				Problem:     "the same genes sit in every cell, yet middle fragments never grow two heads",
				Explanation: "the voltage gradient holds polarity and cells read the map",
			},
			{
				Name:        "two-headed worms breed true",
				Experiment:  "blocking gap junctions yields a worm that stays two-headed through later cuts",
				Prediction:  "unmutated DNA should revert the body to one head",
				Problem:     "the pattern persists across regeneration cycles with unchanged DNA",
				Explanation: "the pattern lives in the field and the altered field became the new normal",
			},
			{
				Name:        "target morphology overrides",
				Experiment:  "changing the voltage pattern regenerates a different species' head shape",
				Prediction:  "shape is fixed by the genome",
				Problem:     "one genome produces different body plans under different voltage patterns",
				Explanation: "the field sets the form and DNA tunes to it",
			},
			{
				Name:        "head fragments regenerate faster",
				Experiment:  "anterior fragments rebuild in a week, posterior fragments in two or more",
				Prediction:  "same genes, same speed",
				Problem:     "position changes the rate though the DNA is identical",
				Explanation: "the gradient is steeper at the head and drives regeneration harder",
			},
			{
				Name:        "memory survives decapitation",
				Experiment:  "trained worms keep their training after the head regrows",
				Prediction:  "memory lives in the brain and goes with it",
				Problem:     "memory survives complete brain removal and regrowth",
				Explanation: "memory is encoded body-wide in the bioelectric pattern, not only in neurons",
			},
			{
				Name:        "scale invariance",
				Experiment:  "a tiny fragment rebuilds a correctly proportioned miniature",
				Prediction:  "the blueprint specifies absolute sizes",
				Problem:     "a small fraction of the body scales everything down consistently",
				Explanation: "field ratios fix proportion regardless of absolute size",
			},
			{
				Name:        "morphology survives missing genes",
				Experiment:  "worms without cilia genes still regenerate correct gross morphology",
				Prediction:  "removing structural genes should disrupt the body plan",
				Problem:     "gross form is kept despite the missing components",
				Explanation: "the field guides morphology independent of specific proteins",
			},
		},
		Layers: []InformationLayer{
			{
				Scale:     "single cell (nm-um)",
				Elements:  "ion channels, gap junctions, membrane potential",
				Stores:    "cell type, differentiation state, division timing",
				Mechanism: "membrane voltage gates gene expression",
				Role:      "the cell reads the local field gradient",
			},
			{
				Scale:     "cell network (um-mm)",
				Elements:  "gap junction networks, electrical synapses",
				Stores:    "tissue identity, boundary positions, pattern memory",
				Mechanism: "electrically coupled cells compute as a network",
				Role:      "the network computes spatial position and form",
			},
			{
				Scale:     "organ and body (mm-cm)",
				Elements:  "long-range voltage gradients, bioelectric prepatterns",
				Stores:    "complete body plan, left-right asymmetry, segmentation",
				Mechanism: "gradients guide cell migration and differentiation",
				Role:      "a whole-body template for morphology",
			},
			{
				Scale:     "field (cm-m)",
				Elements:  "organism-environment electromagnetic coupling",
				Stores:    "the reachable space of body forms",
				Mechanism: "the bioelectric field couples to the larger morphogenetic field",
				Role:      "connection to the phi and Fibonacci regularities",
			},
		},
		Antenna: []AntennaProperty{
			{
				Name:         "structural",
				Feature:      "double helix geometry",
				Coupling:     "electromagnetic reception and transmission",
				Frequency:    "MHz to THz",
				Optimization: "phi-ratio pitch to diameter for broadband coupling",
			},
			{
				Name:         "electronic",
				Feature:      "pi-electron conduction along the backbone",
				Coupling:     "direct and alternating signal propagation",
				Frequency:    "DC to GHz",
				Optimization: "base stacking distance tunes conductance",
			},
			{
				Name:         "quantum",
				Feature:      "coherent base pair states",
				Coupling:     "non-local field interactions",
				Frequency:    "below classical measurement",
				Optimization: "hydrogen bond lengths enable tunneling",
			},
			{
				Name:         "biophotonic",
				Feature:      "ultra-weak photon emission",
				Coupling:     "optical signaling",
				Frequency:    "visible to ultraviolet",
				Optimization: "the helix acts as fiber optic and emitter",
			},
			{
				Name:         "mechanical",
				Feature:      "piezoelectric response",
				Coupling:     "mechano-electrical transduction",
				Frequency:    "acoustic to ultrasonic",
				Optimization: "the helical structure amplifies mechanical waves",
			},
		},
		Mechanisms: []CouplingMechanism{
			{
				Name:       "direct electromagnetic coupling",
				FieldToDNA: "an external field shifts the electron cloud and chromatin conformation",
				DNAToField: "expression builds ion channels that reshape the field",
				Feedback:   "the field shapes the response and the response remodels the field",
				Timescale:  "milliseconds to minutes",
			},
			{
				Name:       "voltage-gated transcription",
				FieldToDNA: "membrane voltage flips voltage-sensitive transcription factors",
				DNAToField: "new channels and pumps move the membrane voltage",
				Feedback:   "voltage picks the genes and the genes set the voltage",
				Timescale:  "minutes to hours",
			},
			{
				Name:       "epigenetic field memory",
				FieldToDNA: "a sustained field writes histone marks and a stable chromatin state",
				DNAToField: "the epigenetic state keeps producing the proteins that hold the field",
				Feedback:   "the field writes the code and the code maintains the field",
				Timescale:  "hours to lifespan",
			},
			{
				Name:       "quantum coherence",
				FieldToDNA: "a coherent field prepares quantum states in the base pairs",
				DNAToField: "DNA quantum states emit biophotons back into the field",
				Feedback:   "non-local correlation between field and genome",
				Timescale:  "femtoseconds to milliseconds",
			},
			{
				Name:       "geometric resonance",
				FieldToDNA: "field geometry selects genes by resonance",
				DNAToField: "the double helix radiates geometric field patterns",
				Feedback:   "geometric attractors steer both sides",
				Timescale:  "always active",
			},
		},
		Boundaries: []Boundary{
			{
				Name:       "information",
				Assumption: "DNA is the complete information for the organism",
				Shadow:     "DNA is partial information that the field completes",
				Missed:     "the morphogenetic field and the bioelectric code",
				Evidence:   "the same DNA yields different forms under different voltage patterns",
			},
			{
				Name:       "causation",
				Assumption: "genes build proteins build structure, bottom-up only",
				Shadow:     "field and DNA constrain each other in both directions",
				Missed:     "field constraints on gene expression",
				Evidence:   "changing the field overrides genetic instructions",
			},
			{
				Name:       "system",
				Assumption: "the organism is the sum of cells with the same DNA",
				Shadow:     "the organism is field plus cells, and the field is primary",
				Missed:     "holographic body plan storage and non-local coordination",
				Evidence:   "a fragment regenerates the whole from pattern memory",
			},
			{
				Name:       "temporal",
				Assumption: "development unfolds linearly from the zygote",
				Shadow:     "the target pattern pre-exists and guides development",
				Missed:     "attraction toward the target form",
				Evidence:   "embryos self-correct errors toward the target morphology",
			},
			{
				Name:       "energetic",
				Assumption: "metabolism powers cell processes",
				Shadow:     "metabolism also maintains the bioelectric field",
				Missed:     "energy spent on field coupling",
				Evidence:   "ion pumps are essential for regeneration",
			},
			{
				Name:       "quantum",
				Assumption: "classical biochemistry suffices",
				Shadow:     "coherence spans the genome and the field",
				Missed:     "non-local information and fast coordination",
				Evidence:   "regeneration coordinates faster than chemical signaling allows",
			},
			{
				Name:       "geometric",
				Assumption: "form emerges from gene regulatory networks",
				Shadow:     "form follows geometric field regularities",
				Missed:     "morphological principles shared across species",
				Evidence:   "phi ratios and Fibonacci counts recur across biology",
			},
		},
	}
}

// #endregion case
