package shadow

import (
	"errors"
	"fmt"
	"math"
)

// #region types

// Entry is one booked line of an energy budget.
type Entry struct {
	Category string
	Percent  float64
	Note     string
}

// ShadowEntry reallocates a slice of the budget to a function the
// standard account never books. Source names the overhead line the
// share comes from.
type ShadowEntry struct {
	Category  string
	Percent   float64
	Source    string
	Functions []string
	Gap       string
	Evidence  string
}

// Boundary marks a place where the standard equations stop asking.
type Boundary struct {
	Name       string
	Assumption string
	Shadow     string
	Missed     string
	Evidence   string
}

// CouplingScale describes energy coupling at one spatial scale.
type CouplingScale struct {
	Name         string
	Pairs        []string
	Measured     string
	Mechanism    string
	Organization string
}

// Ledger is a complete energy account for one system: the measured
// slice, the conventional overhead slice, and the shadow reallocation
// of that overhead into functional coupling.
type Ledger struct {
	System string

	BudgetTotal   float64
	MeasuredTotal float64
	OverheadTotal float64
	ShadowTotal   float64

	Measured   []Entry
	Overhead   []Entry
	Shadow     []ShadowEntry
	Boundaries []Boundary
	Scales     []CouplingScale
}

// #endregion types

// #region sums

func sumEntries(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Percent
	}
	return total
}

// MeasuredSum totals the lines the standard account books as output.
func (l *Ledger) MeasuredSum() float64 { return sumEntries(l.Measured) }

// OverheadSum totals the lines the standard account books as waste.
func (l *Ledger) OverheadSum() float64 { return sumEntries(l.Overhead) }

// Total returns the share of the budget the shadow account explains.
func (l *Ledger) Total() float64 {
	var total float64
	for _, e := range l.Shadow {
		total += e.Percent
	}
	return total
}

const sumTolerance = 1e-9

// Validate checks that every share is positive and that the booked
// sums match the ledger's declared totals.
func (l *Ledger) Validate() error {
	if l.System == "" {
		return errors.New("ledger: empty system name")
	}
	for _, e := range l.Measured {
		if e.Percent <= 0 {
			return fmt.Errorf("%s ledger: measured %q: non-positive share %.1f", l.System, e.Category, e.Percent)
		}
	}
	for _, e := range l.Overhead {
		if e.Percent <= 0 {
			return fmt.Errorf("%s ledger: overhead %q: non-positive share %.1f", l.System, e.Category, e.Percent)
		}
	}
	for _, e := range l.Shadow {
		if e.Percent <= 0 {
			return fmt.Errorf("%s ledger: shadow %q: non-positive share %.1f", l.System, e.Category, e.Percent)
		}
	}
	if got := l.MeasuredSum(); math.Abs(got-l.MeasuredTotal) > sumTolerance {
		return fmt.Errorf("%s ledger: measured lines sum to %.1f, want %.1f", l.System, got, l.MeasuredTotal)
	}
	if got := l.OverheadSum(); math.Abs(got-l.OverheadTotal) > sumTolerance {
		return fmt.Errorf("%s ledger: overhead lines sum to %.1f, want %.1f", l.System, got, l.OverheadTotal)
	}
	if got := l.MeasuredTotal + l.OverheadTotal; math.Abs(got-l.BudgetTotal) > sumTolerance {
		return fmt.Errorf("%s ledger: measured plus overhead is %.1f, want budget %.1f", l.System, got, l.BudgetTotal)
	}
	if got := l.Total(); math.Abs(got-l.ShadowTotal) > sumTolerance {
		return fmt.Errorf("%s ledger: shadow lines sum to %.1f, want %.1f", l.System, got, l.ShadowTotal)
	}
	return nil
}

// #endregion sums

// #region brain

// BrainLedger returns the energy account for the brain: a fifth of the
// body's budget, of which only a quarter is booked as output. The
// shadow reallocation explains the full budget as multi-scale coupling
// work.
func BrainLedger() *Ledger {
	return &Ledger{
		System:        "brain",
		BudgetTotal:   100,
		MeasuredTotal: 25,
		OverheadTotal: 75,
		ShadowTotal:   100,
		Measured: []Entry{
			{"action potentials", 10, "neuron firing"},
			{"synaptic transmission", 15, "chemical signals across synapses"},
		},
		Overhead: []Entry{
			{"resting potential maintenance", 20, "sodium-potassium pumps running constantly"},
			{"neurotransmitter recycling", 10, "repackaging vesicles"},
			{"ion homeostasis", 8, "holding ion gradients"},
			{"glial cell activity", 12, "support cells"},
			{"protein synthesis", 7, "building new proteins"},
			{"myelination maintenance", 5, "insulation upkeep"},
			{"unaccounted", 13, "unknown inefficiency"},
		},
		Shadow: []ShadowEntry{
			{
				Category: "electromagnetic field generation",
				Percent:  20,
				Source:   "resting potential maintenance",
				Functions: []string{
					"coherent field across the cortex",
					"long-range neural synchronization",
					"brain-wide state coordination",
					"non-local information integration",
				},
				Gap:      "the field is measured but never booked as output",
				Evidence: "EEG and MEG detect the fields with no account of what they do",
			},
			{
				Category: "glial network computation",
				Percent:  12,
				Source:   "glial cell activity",
				Functions: []string{
					"astrocyte calcium wave propagation",
					"tripartite synapse modulation",
					"extracellular potassium buffering",
					"blood flow regulation",
				},
				Gap:      "glia do not spike, so they are assumed not to compute",
				Evidence: "glial waves travel brain-wide and track cognition",
			},
			{
				Category: "quantum coherence maintenance",
				Percent:  8,
				Source:   "ion homeostasis",
				Functions: []string{
					"microtubule quantum states",
					"ion channel tunneling",
					"coherence held at body temperature",
				},
				Gap:      "classical instruments collapse the states they probe",
				Evidence: "anesthetics disrupt coherence in microtubules",
			},
			{
				Category: "consciousness field coupling",
				Percent:  13,
				Source:   "unaccounted",
				Functions: []string{
					"self-reference loop generation",
					"integrated information",
					"attention field modulation",
					"intent-to-action coupling",
				},
				Gap:      "subjective experience has no direct instrument",
				Evidence: "energy consumption shifts between conscious and unconscious states",
			},
			{
				Category: "chemical information networks",
				Percent:  10,
				Source:   "neurotransmitter recycling",
				Functions: []string{
					"volume transmission outside synapses",
					"neuromodulator gradient fields",
					"retrograde signaling cascades",
					"nitric oxide diffusion networks",
				},
				Gap:      "synapses are measured, diffusion fields are not",
				Evidence: "drugs act brain-wide without direct synaptic routes",
			},
			{
				Category: "structural memory encoding",
				Percent:  7,
				Source:   "protein synthesis",
				Functions: []string{
					"long-term memory consolidation",
					"synaptic weight persistence",
					"dendritic spine plasticity",
					"epigenetic information storage",
				},
				Gap:      "protein production is measured, information content is not",
				Evidence: "synthesis blockers prevent memory formation",
			},
			{
				Category: "temporal coordination network",
				Percent:  5,
				Source:   "myelination maintenance",
				Functions: []string{
					"precise spike timing control",
					"multi-frequency oscillation",
					"brain-region synchronization",
					"temporal binding of features",
				},
				Gap:      "conduction speed is measured, temporal coding is not",
				Evidence: "demyelination disrupts cognition beyond simple slowing",
			},
			{
				Category:  "measured neural firing",
				Percent:   10,
				Source:    "action potentials",
				Functions: []string{"action potential generation"},
				Gap:       "booked in full, but only part of the story",
				Evidence:  "binary spikes do not cover the analog behavior",
			},
			{
				Category:  "measured synaptic activity",
				Percent:   15,
				Source:    "synaptic transmission",
				Functions: []string{"chemical synapse transmission"},
				Gap:       "well measured, non-synaptic coupling is not",
				Evidence:  "synaptic blockers do not silence all communication",
			},
		},
		Boundaries: []Boundary{
			{
				Name:       "measurement",
				Assumption: "information is spike rate coding",
				Shadow:     "information is encoded in fields, chemistry, timing, and structure",
				Missed:     "non-spiking computation and field effects",
				Evidence:   "anesthesia eliminates consciousness without stopping spikes",
			},
			{
				Name:       "system",
				Assumption: "the brain is an isolated computational unit",
				Shadow:     "the brain is an open node in a body-environment network",
				Missed:     "gut-brain axis, heart-brain coupling, field interactions",
				Evidence:   "vagus nerve stimulation affects cognition, mood, and memory",
			},
			{
				Name:       "temporal",
				Assumption: "information moves in discrete spike intervals",
				Shadow:     "continuous analog processing runs across timescales",
				Missed:     "oscillations, phase coupling, temporal binding",
				Evidence:   "gamma-theta coupling is essential for memory formation",
			},
			{
				Name:       "spatial",
				Assumption: "computation happens at synapses and somas",
				Shadow:     "computation is distributed across dendrites, glia, and fields",
				Missed:     "dendritic computation and volume transmission",
				Evidence:   "single neurons compute functions once thought to need networks",
			},
			{
				Name:       "energetic",
				Assumption: "useful work is spikes plus synapses",
				Shadow:     "electrical, chemical, mechanical, and field energy all carry work",
				Missed:     "field energy, chemical gradients, structural work",
				Evidence:   "metabolic activity does not match spike rates in many regions",
			},
			{
				Name:       "quantum",
				Assumption: "classical physics suffices for neural computation",
				Shadow:     "quantum effects participate in the computation",
				Missed:     "microtubule states, ion channel tunneling",
				Evidence:   "anesthetic potency tracks coherence disruption",
			},
			{
				Name:       "consciousness",
				Assumption: "consciousness is an emergent side effect",
				Shadow:     "the brain couples to consciousness rather than emitting it",
				Missed:     "non-local awareness and field participation",
				Evidence:   "conscious state changes show up in metabolism before spike rates",
			},
			{
				Name:       "computational",
				Assumption: "the brain is a digital computer",
				Shadow:     "the brain is an analog field processor",
				Missed:     "continuous-state processing and field computation",
				Evidence:   "matching spike patterns does not reproduce the behavior",
			},
		},
		Scales: []CouplingScale{
			{
				Name: "molecular (nm)",
				Pairs: []string{
					"ion channel to ion channel",
					"neurotransmitter to receptor",
					"microtubule to microtubule",
				},
				Measured:     "partially, through receptor binding",
				Mechanism:    "chemical and quantum mechanical",
				Organization: "microtubule lattice spacing near phi",
			},
			{
				Name: "cellular (um)",
				Pairs: []string{
					"dendrite to dendrite through gap junctions",
					"neuron to astrocyte",
					"soma to extracellular field",
				},
				Measured:     "synapses yes, fields partially",
				Mechanism:    "electrical, chemical, field",
				Organization: "dendritic trees follow fractal branching",
			},
			{
				Name: "network (mm)",
				Pairs: []string{
					"cortical column to cortical column",
					"layer to layer",
					"local field to local field",
				},
				Measured:     "connectivity yes, field coupling no",
				Mechanism:    "fields and oscillatory synchrony",
				Organization: "columnar organization with layered thickness ratios",
			},
			{
				Name: "regional (cm)",
				Pairs: []string{
					"hippocampus to cortex",
					"thalamus to cortex",
					"region to region via white matter tracts",
				},
				Measured:     "anatomical tracts yes, dynamics partially",
				Mechanism:    "fiber bundles and oscillatory coupling",
				Organization: "tract geometry minimizes wiring",
			},
			{
				Name: "whole brain (10cm)",
				Pairs: []string{
					"hemisphere to hemisphere",
					"default mode network to task-positive network",
					"cortex to subcortex",
				},
				Measured:     "functional networks yes, field integration no",
				Mechanism:    "global field and standing waves",
				Organization: "whole-brain resonance modes",
			},
			{
				Name: "brain-body-environment (m)",
				Pairs: []string{
					"brain to heart",
					"brain to gut",
					"brain to environmental fields",
				},
				Measured:     "almost never",
				Mechanism:    "fields, chemistry, and resonance",
				Organization: "embedded in larger relational networks",
			},
		},
	}
}

// #endregion brain

// #region photosynthesis

// PhotosynthesisLedger returns the energy account for photosynthesis:
// six percent booked as glucose, the rest as loss. The shadow
// reallocation recovers most of the budget as coupling across canopy
// and ecosystem scales.
func PhotosynthesisLedger() *Ledger {
	return &Ledger{
		System:        "photosynthesis",
		BudgetTotal:   100,
		MeasuredTotal: 6,
		OverheadTotal: 94,
		ShadowTotal:   82,
		Measured: []Entry{
			{"glucose production", 6, "chemical bonds in glucose"},
		},
		Overhead: []Entry{
			{"reflection", 8, "bounces off the leaf surface"},
			{"wrong wavelength", 47, "outside chlorophyll absorption bands"},
			{"fluorescence", 3, "re-emitted light"},
			{"heat", 36, "booked as waste heat"},
		},
		Shadow: []ShadowEntry{
			{
				Category: "infrared ecosystem coupling",
				Percent:  20,
				Source:   "heat",
				Functions: []string{
					"atmospheric water vapor coupling",
					"leaf-to-leaf thermal signaling",
					"convection current generation",
					"soil microbe stimulation",
				},
				Gap:      "heat loss is measured, where the energy couples is not",
				Evidence: "canopies hold coordinated temperature and humidity patterns",
			},
			{
				Category: "spectral cascade coupling",
				Percent:  25,
				Source:   "wrong wavelength",
				Functions: []string{
					"green light penetration to lower canopy",
					"blue light cryptochrome signaling",
					"far-red shade detection",
					"photoperiod sensing",
				},
				Gap:      "absorption is measured, multi-wavelength coordination is not",
				Evidence: "plants grown under single wavelengths show stress responses",
			},
			{
				Category: "fluorescence signaling",
				Percent:  3,
				Source:   "fluorescence",
				Functions: []string{
					"photoprotection under saturation",
					"stress signaling to neighbors",
					"pollinator attraction",
				},
				Gap:      "photon emission is measured, information transfer is not",
				Evidence: "emission patterns change with stress before damage shows",
			},
			{
				Category: "reflection coordination",
				Percent:  5,
				Source:   "reflection",
				Functions: []string{
					"albedo regulation",
					"under-canopy light distribution",
					"leaf temperature control",
				},
				Gap:      "bounce-back is measured, spatial distribution is not",
				Evidence: "species carry distinct spectral signatures",
			},
			{
				Category: "electromagnetic field generation",
				Percent:  15,
				Source:   "heat and fluorescence",
				Functions: []string{
					"coherent field across the canopy",
					"root-shoot electrical signaling",
					"plant-to-plant communication",
				},
				Gap:      "fields from photosynthesis are not measured at all",
				Evidence: "soil electrical potential tracks canopy activity",
			},
			{
				Category: "quantum coherence transfer",
				Percent:  8,
				Source:   "below instrument resolution",
				Functions: []string{
					"excitonic energy transfer",
					"electron transport tunneling",
					"coherent superposition in chromophores",
				},
				Gap:      "classical instruments collapse the states they probe",
				Evidence: "light-harvesting complexes show coherence at room temperature",
			},
			{
				Category:  "measured glucose",
				Percent:   6,
				Source:    "glucose production",
				Functions: []string{"chemical bond formation"},
				Gap:       "the one output measured well",
				Evidence:  "standard assimilation measurements",
			},
		},
		Boundaries: []Boundary{
			{
				Name:       "system",
				Assumption: "the leaf is a closed system",
				Shadow:     "the leaf is an open node in a forest-scale transfer network",
				Missed:     "coupling between leaves, trees, atmosphere, and soil",
				Evidence:   "canopies show coordinated temperature and humidity patterns",
			},
			{
				Name:       "frequency",
				Assumption: "only chlorophyll absorption bands matter",
				Shadow:     "plants respond across the full spectrum",
				Missed:     "infrared coupling and ultraviolet signaling",
				Evidence:   "single-wavelength growth produces stress responses",
			},
			{
				Name:       "temporal",
				Assumption: "steady-state glucose production is the output",
				Shadow:     "storage and release run on multiple timescales",
				Missed:     "diurnal cycles, seasonal storage, stress reserves",
				Evidence:   "starch cycles never enter the efficiency figure",
			},
			{
				Name:       "spatial",
				Assumption: "a single leaf in isolation is the unit",
				Shadow:     "photosynthesis is a canopy-scale cooperative process",
				Missed:     "gradient optimization between canopy layers",
				Evidence:   "whole-plant efficiency exceeds isolated-leaf efficiency",
			},
			{
				Name:       "energetic",
				Assumption: "only chemical bonds count as output",
				Shadow:     "ATP, NADPH, pH gradients, and fields all carry energy",
				Missed:     "energy in forms other than glucose",
				Evidence:   "chloroplasts run energy-dependent processes beyond assimilation",
			},
			{
				Name:       "quantum",
				Assumption: "energy transfer is classical",
				Shadow:     "coherence enables near-unity transfer",
				Missed:     "coherent exciton transport",
				Evidence:   "coherence measured in light-harvesting complexes at room temperature",
			},
			{
				Name:       "information",
				Assumption: "photosynthesis is energy conversion only",
				Shadow:     "light carries energy, information, and coordination",
				Missed:     "light quality signals and temporal cues",
				Evidence:   "equal photon flux at different wavelengths drives different responses",
			},
		},
		Scales: []CouplingScale{
			{
				Name: "molecular (nm)",
				Pairs: []string{
					"chlorophyll a to chlorophyll b",
					"carotenoid to chlorophyll",
					"antenna complex to reaction center",
				},
				Measured:     "95 to 99 percent",
				Mechanism:    "resonance energy transfer",
				Organization: "phi-ratio spacing in photosystem geometry",
			},
			{
				Name: "chloroplast (um)",
				Pairs: []string{
					"thylakoid membrane to thylakoid membrane",
					"grana stack to stroma lamellae",
					"photosystem to photosystem",
				},
				Measured:     "not measured, assumed loss",
				Mechanism:    "transfer between stacked membranes",
				Organization: "spiral grana stacking",
			},
			{
				Name: "leaf (cm)",
				Pairs: []string{
					"upper epidermis to palisade mesophyll",
					"palisade to spongy mesophyll",
					"chloroplast to chloroplast",
				},
				Measured:     "not measured, booked as scattering loss",
				Mechanism:    "transfer across tissue layers",
				Organization: "vein networks follow branching ratios",
			},
			{
				Name: "canopy (m)",
				Pairs: []string{
					"sunlit leaf to shaded leaf",
					"tree to tree through the air",
					"canopy to understory",
				},
				Measured:     "not measured, booked as reflection waste",
				Mechanism:    "atmospheric transfer",
				Organization: "canopy architecture follows spacing ratios",
			},
			{
				Name: "ecosystem (km)",
				Pairs: []string{
					"forest canopy to atmosphere",
					"vegetation to soil",
					"biome to climate system",
				},
				Measured:     "not measured at all",
				Mechanism:    "planetary transfer network",
				Organization: "fractal forest distribution patterns",
			},
		},
	}
}

// #endregion photosynthesis

// Ledgers returns every built-in energy ledger.
func Ledgers() []*Ledger {
	return []*Ledger{BrainLedger(), PhotosynthesisLedger()}
}
