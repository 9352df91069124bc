package bioelectric

// #region library

// PatternNames lists the built-in patterns in lookup order. Morphology
// prediction iterates this order so tie-breaks stay deterministic.
var PatternNames = []string{"head", "tail", "limb", "wound_heal", "tumor_revert"}

// patternLibrary holds the standard voltage signatures (Levin lab data).
var patternLibrary = map[string]VoltagePattern{
	"head": {
		TissueType:     TissueNerve,
		VmemTarget:     -60.0,
		GapConductance: 0.8,
		IonChannels:    []float64{0.4, 0.3, 0.2, 0.1, 0.0, 0.0},
	},
	"tail": {
		TissueType:     TissueMuscle,
		VmemTarget:     -30.0,
		GapConductance: 0.5,
		IonChannels:    []float64{0.1, 0.2, 0.3, 0.3, 0.05, 0.05},
	},
	"limb": {
		TissueType:     TissueMuscle,
		VmemTarget:     -50.0,
		GapConductance: 0.7,
		IonChannels:    []float64{0.25, 0.25, 0.2, 0.15, 0.1, 0.05},
	},
	"wound_heal": {
		TissueType:     TissueEpithelial,
		VmemTarget:     -45.0,
		GapConductance: 0.6,
		IonChannels:    []float64{0.2, 0.2, 0.2, 0.2, 0.1, 0.1},
	},
	"tumor_revert": {
		TissueType:     TissueEpithelial,
		VmemTarget:     -55.0, // hyperpolarize back to normal
		GapConductance: 0.75,
		IonChannels:    []float64{0.3, 0.25, 0.2, 0.15, 0.08, 0.02},
	},
}

// LookupPattern returns the named library pattern.
func LookupPattern(name string) (VoltagePattern, bool) {
	p, ok := patternLibrary[name]
	return p, ok
}

// #endregion library
