package catalog

// #region imports
import (
	"fmt"
	"strings"
)

// #endregion

// #region source

// Source is a public database that likely holds shadow data: measurements
// collected for another purpose whose geometric structure was never analyzed.
type Source struct {
	Name           string
	URL            string
	DataType       string
	ShadowLocation string
	SearchStrategy string
	Domain         Domain
}

// #endregion

// #region registry

var builtin = []Source{
	{
		Name:           "PlanMine",
		URL:            "https://planmine.mpi-cbg.de/",
		DataType:       "planaria genomics, morphology, RNAi screens",
		ShadowLocation: "voltage measurements in supplementary data, failed regeneration attempts",
		SearchStrategy: "membrane potential data, gap junction expression patterns, ion channel distributions",
		Domain:         DomainBioelectric,
	},
	{
		Name:           "Levin Lab Publications",
		URL:            "https://ase.tufts.edu/biology/labs/levin/publications/",
		DataType:       "bioelectric pattern papers",
		ShadowLocation: "raw voltage mapping data, time series of Vmem changes",
		SearchStrategy: "supplementary voltage maps, gap junction blocking experiments, morphology scoring",
		Domain:         DomainBioelectric,
	},
	{
		Name:           "OpenNeuro",
		URL:            "https://openneuro.org/",
		DataType:       "fMRI, EEG, MEG datasets",
		ShadowLocation: "EM field measurements treated as noise, resting state data",
		SearchStrategy: "default mode network, alpha/theta coupling, geometric coherence in field patterns",
		Domain:         DomainNeural,
	},
	{
		Name:           "Human Connectome Project",
		URL:            "https://www.humanconnectome.org/",
		DataType:       "brain connectivity and function",
		ShadowLocation: "discarded outliers, inter-subject variability, metabolic data",
		SearchStrategy: "phi ratios in tract geometry, metabolic patterns vs neural activity",
		Domain:         DomainNeural,
	},
	{
		Name:           "PlantDB",
		URL:            "https://www.genome.jp/kegg/pathway.html",
		DataType:       "plant metabolism, photosynthesis pathways",
		ShadowLocation: "lost energy in metabolic flux models, fluorescence waste",
		SearchStrategy: "actual energy accounting, phi spacing in chloroplast structure",
		Domain:         DomainBotanical,
	},
	{
		Name:           "Photosynthesis Research Papers",
		URL:            "https://pubmed.ncbi.nlm.nih.gov/?term=photosynthesis+efficiency",
		DataType:       "published photosynthesis efficiency measurements",
		ShadowLocation: "supplementary spectral data, unexplained efficiency variations",
		SearchStrategy: "full spectrum data, FRET signatures at macro scales",
		Domain:         DomainBotanical,
	},
	{
		Name:           "Zenodo Plant Electrophysiology",
		URL:            "https://zenodo.org/",
		DataType:       "plant surface potential recordings",
		ShadowLocation: "raw archives shared but never reanalyzed, unanalyzed channels",
		SearchStrategy: "inter-spike intervals, phi ratios in spike timing, coherence across leaves",
		Domain:         DomainBotanical,
	},
	{
		Name:           "HURDAT2",
		URL:            "https://www.nhc.noaa.gov/data/hurdat/",
		DataType:       "Atlantic hurricane database",
		ShadowLocation: "storm structure data, pressure-wind relationships, intensification timing",
		SearchStrategy: "rain band spacing, geometric patterns in rapid intensification",
		Domain:         DomainAtmospheric,
	},
	{
		Name:           "IBTrACS",
		URL:            "https://www.ncdc.noaa.gov/ibtracs/",
		DataType:       "global tropical cyclone data",
		ShadowLocation: "multi-satellite observations, wind field reconstructions",
		SearchStrategy: "phi spiral patterns, FRET-like coupling in energy transfer",
		Domain:         DomainAtmospheric,
	},
	{
		Name:           "SILSO",
		URL:            "https://www.sidc.be/silso/",
		DataType:       "daily and monthly sunspot numbers",
		ShadowLocation: "cycle shape treated as quasi-periodic noise, hemispheric asymmetry residuals",
		SearchStrategy: "ratios between successive cycle amplitudes, spectral peaks beside the 11-year line",
		Domain:         DomainCosmic,
	},
	{
		Name:           "NOAA Tides and Currents",
		URL:            "https://tidesandcurrents.noaa.gov/",
		DataType:       "water levels and tidal harmonic constituents",
		ShadowLocation: "residuals after harmonic fit, minor constituents dropped from predictions",
		SearchStrategy: "constituent amplitude ratios, coherence of the residual series",
		Domain:         DomainCosmic,
	},
	{
		Name:           "BioGRID",
		URL:            "https://thebiogrid.org/",
		DataType:       "protein interactions, genetic interactions",
		ShadowLocation: "network topology data, interaction strengths",
		SearchStrategy: "geometric organization of networks, phi ratios in hub connectivity",
		Domain:         DomainGeneric,
	},
	{
		Name:           "Gene Expression Omnibus",
		URL:            "https://www.ncbi.nlm.nih.gov/geo/",
		DataType:       "gene expression datasets",
		ShadowLocation: "discarded samples, noise genes, time-series fluctuations",
		SearchStrategy: "voltage-responsive genes, geometric patterns in co-expression",
		Domain:         DomainGeneric,
	},
}

// Sources returns a copy of the built-in source registry.
func Sources() []Source {
	out := make([]Source, len(builtin))
	copy(out, builtin)
	return out
}

// SourcesByDomain returns the built-in sources tagged with d.
func SourcesByDomain(d Domain) []Source {
	var out []Source
	for _, s := range builtin {
		if s.Domain == d {
			out = append(out, s)
		}
	}
	return out
}

// SourceByName looks up a source case-insensitively.
func SourceByName(name string) (Source, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, s := range builtin {
		if strings.ToLower(s.Name) == want {
			return s, true
		}
	}
	return Source{}, false
}

// Domains lists the catalog domains in presentation order.
func Domains() []Domain {
	return []Domain{
		DomainBioelectric, DomainNeural, DomainBotanical,
		DomainAtmospheric, DomainCosmic, DomainGeneric,
	}
}

// #endregion

// #region protocol

// ProtocolSection is one named item list within a search protocol.
type ProtocolSection struct {
	Name  string
	Items []string
}

// SearchProtocol lists where to look and what to measure for one domain.
type SearchProtocol struct {
	Domain   Domain
	Title    string
	Sections []ProtocolSection
}

var protocols = map[Domain]SearchProtocol{
	DomainBioelectric: {
		Domain: DomainBioelectric,
		Title:  "planaria regeneration shadow search",
		Sections: []ProtocolSection{
			{"primary papers to check", []string{
				"Levin et al., bioelectric controls of regeneration",
				"Lobo et al., computational model of planarian regeneration",
				"anything mentioning membrane potential or gap junctions in planaria",
			}},
			{"shadow locations", []string{
				"supplementary voltage maps, shown but not analyzed",
				"time series of Vmem changes during regeneration",
				"failed regeneration experiments, two-headed and no-headed",
				"ion channel expression patterns",
				"gap junction connectivity networks",
			}},
			{"what to analyze", []string{
				"voltage gradients for phi-ratio steps",
				"resonance frequencies in voltage oscillations",
				"geometric organization of gap junction networks",
				"regeneration timing against field coherence",
				"measurement noise as geometric field fluctuation",
			}},
			{"specific measurements", []string{
				"head voltage, -50 to -70 mV",
				"tail voltage, -20 to -30 mV",
				"phi-ratio decay of the gradient from head to tail",
				"gap junction coupling strength across tissue regions",
				"time to regeneration vs initial voltage pattern coherence",
			}},
		},
	},
	DomainNeural: {
		Domain: DomainNeural,
		Title:  "brain field coupling shadow search",
		Sections: []ProtocolSection{
			{"databases to mine", []string{
				"OpenNeuro, raw EEG and MEG data",
				"Human Connectome Project, structural plus functional",
				"meditation and consciousness studies with field measurements",
			}},
			{"shadow locations", []string{
				"EM field data marked as artifact or noise",
				"resting state fluctuations dismissed as meaningless",
				"inter-subject variability averaged out",
				"metabolic data uncorrelated with the BOLD signal",
				"default mode network activity with unexplained metabolism",
			}},
			{"what to analyze", []string{
				"geometric coherence of EM field patterns",
				"alpha/theta coupling for phi-ratio relationships",
				"whether metabolism maintains the field rather than spikes",
				"field coherence against consciousness state",
				"meditation effects on geometric organization",
			}},
			{"specific measurements", []string{
				"alpha frequency, 8-12 Hz, and harmonics",
				"theta frequency, 4-8 Hz",
				"gamma frequency, 30-100 Hz",
				"theta/alpha ratio near 0.618",
				"field coherence across consciousness states",
				"metabolic activity in idle regions",
			}},
		},
	},
	DomainBotanical: {
		Domain: DomainBotanical,
		Title:  "photosynthesis coupling shadow search",
		Sections: []ProtocolSection{
			{"papers to check", []string{
				"anything claiming 6 percent efficiency",
				"spectral analysis of photosynthesis",
				"chloroplast structure papers",
				"FRET in photosynthetic complexes",
			}},
			{"shadow locations", []string{
				"lost energy in supplementary energy budgets",
				"full spectrum data beyond the published 400-700 nm window",
				"fluorescence measurements treated as waste",
				"IR emission data filed as heat loss",
				"structural data on chlorophyll spacing",
			}},
			{"what to analyze", []string{
				"where the 94 percent actually goes, with full accounting",
				"chlorophyll arrangement for phi-ratio spacing",
				"whether fluorescence emission is patterned or random",
				"IR coupling to the atmosphere for a FRET signature",
				"full spectrum efficiency, not just 400-700 nm",
			}},
			{"specific measurements", []string{
				"chlorophyll a/b spacing in photosystem II",
				"FRET efficiency at molecular scale, above 95 percent",
				"IR emission spectrum and directionality",
				"fluorescence timing and spatial patterns",
				"destination of energy that never reaches glucose",
			}},
		},
	},
	DomainAtmospheric: {
		Domain: DomainAtmospheric,
		Title:  "hurricane geometric coupling shadow search",
		Sections: []ProtocolSection{
			{"databases", []string{
				"HURDAT2, Atlantic hurricanes",
				"IBTrACS, global cyclones",
				"archived storm suite analyses",
				"satellite imagery archives",
			}},
			{"shadow locations", []string{
				"rain band spacing, rarely analyzed geometrically",
				"spiral structure measurements treated as approximate",
				"rapid intensification cases unpredicted by current models",
				"energy loss in thermodynamic models",
				"atmospheric coupling in the surrounding environment",
			}},
			{"what to analyze", []string{
				"fibonacci and phi patterns in rain band spacing",
				"spiral angle against the golden angle, 137.5 degrees",
				"intensification rate vs geometric coherence",
				"pressure-wind relationship for a field coupling signature",
				"destination of energy the budget writes off",
			}},
			{"specific measurements", []string{
				"distance between rain bands from center",
				"spiral arm angle relative to radius",
				"geometric coherence score for structure",
				"timing of rapid intensification",
				"ocean heat content correlation vs geometric patterns",
			}},
		},
	},
	DomainCosmic: {
		Domain: DomainCosmic,
		Title:  "solar and tidal coupling shadow search",
		Sections: []ProtocolSection{
			{"databases", []string{
				"SILSO sunspot number series",
				"NOAA tidal harmonic constituents",
				"long-baseline magnetometer archives",
			}},
			{"shadow locations", []string{
				"cycle shape residuals treated as quasi-periodic noise",
				"minor tidal constituents dropped from predictions",
				"hemispheric asymmetry averaged out",
				"geomagnetic quiet-day curves",
			}},
			{"what to analyze", []string{
				"ratios between successive cycle amplitudes",
				"spectral peaks beside the dominant period",
				"coherence of residual series after harmonic fit",
				"phase relationships across stations",
			}},
			{"specific measurements", []string{
				"amplitude ratio of consecutive sunspot cycles",
				"constituent amplitude ratios against the phi window",
				"residual series coherence score",
				"spectral peak spacing in cycles per year",
			}},
		},
	},
	DomainGeneric: {
		Domain: DomainGeneric,
		Title:  "generic shadow search",
		Sections: []ProtocolSection{
			{"where to start", []string{
				"BioGRID network topology exports",
				"GEO time-series submissions",
				"supplementary archives of any quantitative paper",
			}},
			{"shadow locations", []string{
				"supplementary materials never analyzed deeply",
				"non-significant results above p 0.05",
				"baseline and control measurements assumed boring",
				"time-series fluctuations treated as error",
				"multi-dimensional data collapsed to single metrics",
				"discarded pilot studies",
			}},
			{"what to analyze", []string{
				"phi-ratio patterns in measurements filed as random",
				"geometric coherence in noise",
				"energy waste that may be coupling",
				"field effects dismissed as artifacts",
			}},
			{"specific measurements", []string{
				"consecutive ratio distribution against the phi window",
				"normalized entropy of the value distribution",
				"spectral peak prominence and spacing",
				"fibonacci fraction after min-positive normalization",
			}},
		},
	},
}

// Protocol returns the search protocol for a domain, falling back to the
// generic protocol for unknown domains.
func Protocol(d Domain) SearchProtocol {
	if p, ok := protocols[d]; ok {
		return p
	}
	return protocols[DomainGeneric]
}

// #endregion

// #region rendering

// Render formats the protocol as an indented checklist.
func (p SearchProtocol) Render() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]\n", strings.ToUpper(p.Title)))
	for _, sec := range p.Sections {
		b.WriteString(fmt.Sprintf("\n%s:\n", sec.Name))
		for _, item := range sec.Items {
			b.WriteString(fmt.Sprintf("  - %s\n", item))
		}
	}
	return b.String()
}

// Describe formats a source entry for catalog listings.
func (s Source) Describe() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%s)\n", s.Name, s.Domain))
	b.WriteString(fmt.Sprintf("  url:      %s\n", s.URL))
	b.WriteString(fmt.Sprintf("  data:     %s\n", s.DataType))
	b.WriteString(fmt.Sprintf("  shadow:   %s\n", s.ShadowLocation))
	b.WriteString(fmt.Sprintf("  strategy: %s\n", s.SearchStrategy))
	return b.String()
}

// #endregion
