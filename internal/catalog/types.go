package catalog

// #region imports
import (
	"time"

	"github.com/JinnZ2/Shadow-Hunting/internal/shadow"
)

// #endregion

// #region domain

// Domain tags a data source or dataset with the research area it belongs to.
type Domain string

const (
	DomainNeural      Domain = "neural"
	DomainBotanical   Domain = "botanical"
	DomainAtmospheric Domain = "atmospheric"
	DomainBioelectric Domain = "bioelectric"
	DomainCosmic      Domain = "cosmic"
	DomainGeneric     Domain = "generic"
)

// #endregion

// #region scale

// Scale estimates the physical scale of the measurements in a dataset.
type Scale string

const (
	ScaleMicro Scale = "micro" // molecular and cellular
	ScaleMeso  Scale = "meso"  // tissue and whole organism
	ScaleMacro Scale = "macro" // ecosystem, storm system, planetary
)

// #endregion

// #region stakes

// Stakes indicates how costly a false positive would be for this scan.
type Stakes string

const (
	StakesRoutine Stakes = "routine"
	StakesCareful Stakes = "careful"
)

// #endregion

// #region strategy-id

// StrategyID identifies a scan strategy.
type StrategyID string

const (
	StrategyStandard       StrategyID = "standard"
	StrategyWideNet        StrategyID = "wide_net"
	StrategyStrict         StrategyID = "strict"
	StrategyFibonacciFirst StrategyID = "fibonacci_first"
	StrategySpectral       StrategyID = "spectral"
)

// #endregion

// #region emphasis

// Emphasis names the detector family that dominates the significance score.
type Emphasis string

const (
	EmphasisBalanced  Emphasis = "balanced"
	EmphasisFibonacci Emphasis = "fibonacci"
	EmphasisSpectral  Emphasis = "spectral"
)

// #endregion

// #region failure-kind

// FailureKind categorizes why a scan attempt found nothing usable.
type FailureKind string

const (
	FailureNone               FailureKind = "none"
	FailureNothingSignificant FailureKind = "nothing_significant"
	FailureDegenerateInput    FailureKind = "degenerate_input"
	FailureEntropyFlat        FailureKind = "entropy_flat"
)

// #endregion

// #region scan-class

// ScanClass is the full classification output for a dataset description.
type ScanClass struct {
	Domain Domain
	Scale  Scale
	Stakes Stakes
}

// #endregion

// #region strategy-config

// StrategyConfig defines the detector tolerances a strategy scans with.
type StrategyConfig struct {
	ID             StrategyID
	RatioTolerance float64
	FibTolerance   float64
	RunSpectral    bool // run the FFT detector, skip for short attention scans
	Emphasis       Emphasis
}

// #endregion

// #region scan-evaluation

// ScanEvaluation is the output of evaluating one scan attempt.
type ScanEvaluation struct {
	Significance float64
	Failure      FailureKind
	ShouldRetry  bool
}

// #endregion

// #region attempt

// Attempt records one scan attempt within a hunt.
type Attempt struct {
	Strategy   StrategyID
	Result     shadow.ScanResult
	Evaluation ScanEvaluation
}

// #endregion

// #region outcome-record

// OutcomeRecord is a single row for scan_outcomes.
type OutcomeRecord struct {
	ScanID       string
	Domain       Domain
	Scale        Scale
	Stakes       Stakes
	StrategyID   StrategyID
	AttemptNum   int
	Significance float64
	Failure      FailureKind
	Accepted     bool
	CreatedAt    time.Time
}

// #endregion
