package catalog

// #region imports
import (
	"strings"
)

// #endregion

// #region keywords

var bioelectricKeywords = []string{
	"planaria", "planarian", "flatworm", "regenerat", "vmem",
	"membrane potential", "gap junction", "bioelectric", "voltage map",
	"voltage gradient", "morphogen", "depolariz", "hyperpolariz",
	"ion channel", "blastema",
}

var atmosphericKeywords = []string{
	"hurricane", "cyclone", "typhoon", "storm", "rain band",
	"eyewall", "wind speed", "wind field", "intensification",
	"atmospher", "weather", "satellite imagery",
}

var cosmicKeywords = []string{
	"sunspot", "solar cycle", "solar activity", "tidal", "tide",
	"lunar", "orbital", "cosmic", "geomagnetic", "schumann",
	"ionospher", "magnetometer", "heliospher",
}

var botanicalKeywords = []string{
	"plant", "leaf", "leaves", "chlorophyll", "photosynthe",
	"chloroplast", "phyllotaxis", "canopy", "seed head", "sunflower",
	"botanical", "fluorescence", "photosystem", "stomata",
}

var neuralKeywords = []string{
	"eeg", "meg", "fmri", "brain", "neural", "neuron", "cortex",
	"cortical", "alpha band", "theta", "gamma band", "connectome",
	"consciousness", "meditation", "bold signal", "resting state",
}

// #endregion

// #region scale-keywords

var microKeywords = []string{
	"molecular", "protein", "nanometer", " nm", "angstrom",
	"cellular", "single cell", "ion channel", "gene expression",
	"spike train", "fret", "photosystem", "crystal structure",
}

var macroKeywords = []string{
	"ecosystem", "planetary", "global", "satellite", "kilometer",
	" km", "basin", "hemispher", "station network", "whole-sky",
}

// #endregion

// #region stakes-keywords

var carefulKeywords = []string{
	"publication", "publish", "peer review", "manuscript",
	"clinical", "patient", "diagnosis", "regulatory",
	"forecast", "warning", "grant", "irreversible",
}

// #endregion

// #region follow-up-words

// followUpWords are short descriptions that typically continue the previous hunt.
var followUpWords = []string{
	"same", "again", "another", "more", "also", "next",
	"rerun", "retry", "one more", "keep going", "continue",
	"second batch", "rest of",
}

// #endregion

// #region classify

// Classify maps a free-text dataset description to a ScanClass via keyword
// heuristics. prev carries the previous hunt's classification so short
// follow-up descriptions inherit its domain and stakes.
func Classify(desc string, prev ...ScanClass) ScanClass {
	lower := strings.ToLower(strings.TrimSpace(desc))
	words := strings.Fields(lower)
	wordCount := len(words)

	domain := classifyDomain(lower)
	scale := classifyScale(lower, domain)
	stakes := classifyStakes(lower)

	// Context inheritance: short follow-up descriptions continue the previous hunt.
	if len(prev) > 0 && wordCount <= 8 && isFollowUp(lower) {
		prevClass := prev[0]
		// Inherit domain when the current description matched nothing specific
		if domain == DomainGeneric && prevClass.Domain != DomainGeneric {
			domain = prevClass.Domain
			scale = classifyScale(lower, domain)
		}
		// Careful stakes always carry over on short follow-ups
		if prevClass.Stakes == StakesCareful {
			stakes = StakesCareful
		}
	}

	return ScanClass{
		Domain: domain,
		Scale:  scale,
		Stakes: stakes,
	}
}

// #endregion

// #region follow-up-detection

func isFollowUp(lower string) bool {
	for _, fw := range followUpWords {
		if strings.HasPrefix(lower, fw) {
			return true
		}
	}
	// Very short fragments ("run 7", "batch b") read as continuations.
	return len(strings.Fields(lower)) <= 2
}

// #endregion

// #region classify-domain

func classifyDomain(lower string) Domain {
	// Bioelectric first: "membrane potential in planaria" outranks
	// the generic biology vocabulary the other lists share.
	for _, kw := range bioelectricKeywords {
		if strings.Contains(lower, kw) {
			return DomainBioelectric
		}
	}
	for _, kw := range atmosphericKeywords {
		if strings.Contains(lower, kw) {
			return DomainAtmospheric
		}
	}
	for _, kw := range cosmicKeywords {
		if strings.Contains(lower, kw) {
			return DomainCosmic
		}
	}
	for _, kw := range botanicalKeywords {
		if strings.Contains(lower, kw) {
			return DomainBotanical
		}
	}
	for _, kw := range neuralKeywords {
		if strings.Contains(lower, kw) {
			return DomainNeural
		}
	}
	return DomainGeneric
}

// #endregion

// #region classify-scale

func classifyScale(lower string, domain Domain) Scale {
	for _, kw := range microKeywords {
		if strings.Contains(lower, kw) {
			return ScaleMicro
		}
	}
	for _, kw := range macroKeywords {
		if strings.Contains(lower, kw) {
			return ScaleMacro
		}
	}
	// Domain default when the text gives no unit hints
	switch domain {
	case DomainAtmospheric, DomainCosmic:
		return ScaleMacro
	default:
		return ScaleMeso
	}
}

// #endregion

// #region classify-stakes

func classifyStakes(lower string) Stakes {
	for _, kw := range carefulKeywords {
		if strings.Contains(lower, kw) {
			return StakesCareful
		}
	}
	return StakesRoutine
}

// #endregion
