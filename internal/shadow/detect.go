package shadow

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

// #region config

const (
	// DefaultRatioTolerance is the acceptance window around Ratio and
	// Inverse for phi-ratio matches.
	DefaultRatioTolerance = 0.1

	// DefaultFibTolerance is the relative error allowed when matching
	// normalized values against the Fibonacci sequence.
	DefaultFibTolerance = 0.15

	// ratioFloor guards ratio denominators against near-zero values.
	ratioFloor = 1e-10

	// peakProminenceFrac sets the spectral peak threshold as a fraction
	// of the maximum power.
	peakProminenceFrac = 0.1

	// resonanceWindow is the relative error allowed when matching a
	// spectral peak against an expected frequency.
	resonanceWindow = 0.1
)

// fibonacci is the comparison sequence for DetectFibonacci.
var fibonacci = []float64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}

// ScanConfig bundles the tolerances for a full detector pass.
type ScanConfig struct {
	RatioTolerance float64
	FibTolerance   float64
	// SampleRate converts FFT bins to real frequencies. Values <= 0
	// fall back to 1, leaving frequencies in cycles per sample.
	SampleRate float64
	// Expected lists frequencies to test spectral peaks against.
	Expected []float64
}

// DefaultScanConfig returns the standard detector tolerances.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		RatioTolerance: DefaultRatioTolerance,
		FibTolerance:   DefaultFibTolerance,
		SampleRate:     1,
	}
}

// #endregion config

// #region phi ratios

// Ratio match kinds.
const (
	MatchPhi     = "phi"
	MatchInverse = "1/phi"
)

// RatioMatch is one consecutive ratio that landed inside the phi window.
// Index is the position of the denominator in the input series.
type RatioMatch struct {
	Index int
	Ratio float64
	Kind  string
}

// PhiRatioResult reports phi-ratio structure in a series.
type PhiRatioResult struct {
	Ratios      []float64
	Matches     []RatioMatch
	Enrichment  float64
	Significant bool
}

// DetectPhiRatios scans consecutive ratios of data for values within tol
// of Ratio or Inverse. Enrichment normalizes the hit count against the
// width of the acceptance windows, so a uniform ratio distribution
// scores near 1; above 2 counts as significant.
func DetectPhiRatios(data []float64, tol float64) PhiRatioResult {
	var res PhiRatioResult
	if tol <= 0 {
		return res
	}
	for i := 0; i < len(data)-1; i++ {
		if math.Abs(data[i]) <= ratioFloor {
			continue
		}
		ratio := data[i+1] / data[i]
		res.Ratios = append(res.Ratios, ratio)
		switch {
		case math.Abs(ratio-phi.Ratio) < tol:
			res.Matches = append(res.Matches, RatioMatch{Index: i, Ratio: ratio, Kind: MatchPhi})
		case math.Abs(ratio-phi.Inverse) < tol:
			res.Matches = append(res.Matches, RatioMatch{Index: i, Ratio: ratio, Kind: MatchInverse})
		}
	}
	if len(res.Ratios) == 0 {
		return res
	}
	res.Enrichment = float64(len(res.Matches)) / (float64(len(res.Ratios)) * 2 * tol)
	res.Significant = res.Enrichment > 2.0
	return res
}

// #endregion phi ratios

// #region fibonacci

// FibMatch is one value that landed near a Fibonacci number after
// normalization. Value is the normalized value, Fibonacci the member hit.
type FibMatch struct {
	Index     int
	Value     float64
	Fibonacci float64
}

// FibonacciResult reports Fibonacci structure in a series.
type FibonacciResult struct {
	Matches     []FibMatch
	Fraction    float64
	Significant bool
}

// DetectFibonacci normalizes data by its smallest positive value and
// counts entries within tol relative error of a Fibonacci number.
// Fractions above 0.3 count as significant. A series with no positive
// values yields a zero result.
func DetectFibonacci(data []float64, tol float64) FibonacciResult {
	var res FibonacciResult
	if len(data) == 0 || tol <= 0 {
		return res
	}
	minPos := 0.0
	for _, v := range data {
		if v > 0 && (minPos == 0 || v < minPos) {
			minPos = v
		}
	}
	if minPos == 0 {
		return res
	}
	for i, v := range data {
		norm := v / minPos
		for _, fib := range fibonacci {
			if math.Abs(norm-fib)/fib < tol {
				res.Matches = append(res.Matches, FibMatch{Index: i, Value: norm, Fibonacci: fib})
				break
			}
		}
	}
	res.Fraction = float64(len(res.Matches)) / float64(len(data))
	res.Significant = res.Fraction > 0.3
	return res
}

// #endregion fibonacci

// #region coherence

// Coherence levels.
const (
	CoherenceHigh     = "HIGH"
	CoherenceModerate = "MODERATE"
	CoherenceLow      = "LOW"
)

// CoherenceResult reports how ordered a series is: low entropy plus phi
// enrichment scores high.
type CoherenceResult struct {
	Entropy    float64
	Normalized float64
	Enrichment float64
	Coherence  float64
	Level      string
}

// DetectCoherence scores geometric order in a series. The normalized
// Shannon entropy measures concentration, phi enrichment (at the default
// tolerance) amplifies it: coherence = (1 - H/Hmax) * (1 + enrichment).
func DetectCoherence(data []float64) CoherenceResult {
	res := CoherenceResult{Level: CoherenceLow}
	if len(data) == 0 {
		return res
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	for _, v := range data {
		p := v / (sum + 1e-10)
		if p < 1e-12 {
			p = 1e-12
		}
		res.Entropy -= p * math.Log2(p)
	}
	if maxEntropy := math.Log2(float64(len(data))); maxEntropy > 0 {
		res.Normalized = res.Entropy / maxEntropy
	}
	res.Enrichment = DetectPhiRatios(data, DefaultRatioTolerance).Enrichment
	res.Coherence = (1 - res.Normalized) * (1 + res.Enrichment)
	switch {
	case res.Coherence > 1.5:
		res.Level = CoherenceHigh
	case res.Coherence > 0.8:
		res.Level = CoherenceModerate
	}
	return res
}

// #endregion coherence

// #region field coupling

// Resonance pairs an expected frequency with a spectral peak that
// landed within the resonance window of it.
type Resonance struct {
	Expected float64
	Found    float64
}

// FreqRatio is a phi-related ratio between two successive spectral
// peaks, Ratio = To/From.
type FreqRatio struct {
	From  float64
	To    float64
	Ratio float64
}

// FieldCouplingResult reports oscillatory structure in a time series.
type FieldCouplingResult struct {
	PeakFrequencies []float64
	Resonances      []Resonance
	PhiRatios       []FreqRatio
	HasSignature    bool
}

// DetectFieldCoupling runs an FFT over the series, keeps spectral peaks
// whose prominence reaches a tenth of the maximum power, and tests them
// against the expected frequencies and against phi ratios between
// successive peaks. Peak frequencies are folded to their absolute value,
// scaled by sampleRate; sampleRate <= 0 falls back to 1.
func DetectFieldCoupling(series []float64, sampleRate float64, expected []float64) FieldCouplingResult {
	var res FieldCouplingResult
	n := len(series)
	if n < 3 {
		return res
	}
	if sampleRate <= 0 {
		sampleRate = 1
	}

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, series)

	// Unfold the half-spectrum so peak order matches a full transform.
	power := make([]float64, n)
	maxPower := 0.0
	for k := range power {
		m := k
		if m >= len(coeff) {
			m = n - k
		}
		c := coeff[m]
		power[k] = real(c)*real(c) + imag(c)*imag(c)
		if power[k] > maxPower {
			maxPower = power[k]
		}
	}

	for _, k := range peakIndices(power, maxPower*peakProminenceFrac) {
		m := k
		if m >= len(coeff) {
			m = n - k
		}
		res.PeakFrequencies = append(res.PeakFrequencies, fft.Freq(m)*sampleRate)
	}

	for _, exp := range expected {
		if exp <= 0 {
			continue
		}
		for _, pf := range res.PeakFrequencies {
			if math.Abs(pf-exp)/exp < resonanceWindow {
				res.Resonances = append(res.Resonances, Resonance{Expected: exp, Found: pf})
			}
		}
	}

	for i := 0; i+1 < len(res.PeakFrequencies); i++ {
		from := res.PeakFrequencies[i]
		to := res.PeakFrequencies[i+1]
		if from <= 0 {
			continue
		}
		ratio := to / from
		if phi.Deviation(ratio) < DefaultRatioTolerance {
			res.PhiRatios = append(res.PhiRatios, FreqRatio{From: from, To: to, Ratio: ratio})
		}
	}

	res.HasSignature = len(res.Resonances) > 0 || len(res.PhiRatios) > 0
	return res
}

// peakIndices returns the interior local maxima of power whose
// prominence reaches minProminence.
func peakIndices(power []float64, minProminence float64) []int {
	var peaks []int
	for i := 1; i < len(power)-1; i++ {
		if power[i] <= power[i-1] || power[i] <= power[i+1] {
			continue
		}
		if prominence(power, i) >= minProminence {
			peaks = append(peaks, i)
		}
	}
	return peaks
}

// prominence measures a peak against the higher of the two valley
// minima separating it from taller terrain on each side.
func prominence(power []float64, peak int) float64 {
	left := power[peak]
	for i := peak - 1; i >= 0; i-- {
		if power[i] > power[peak] {
			break
		}
		if power[i] < left {
			left = power[i]
		}
	}
	right := power[peak]
	for i := peak + 1; i < len(power); i++ {
		if power[i] > power[peak] {
			break
		}
		if power[i] < right {
			right = power[i]
		}
	}
	base := left
	if right > base {
		base = right
	}
	return power[peak] - base
}

// #endregion field coupling

// #region scan

// ScanResult collects the output of every detector over one series.
type ScanResult struct {
	PhiRatios PhiRatioResult
	Fibonacci FibonacciResult
	Coherence CoherenceResult
	Coupling  FieldCouplingResult
}

// Scan runs all four detectors over a series with the given tolerances.
func Scan(data []float64, cfg ScanConfig) ScanResult {
	return ScanResult{
		PhiRatios: DetectPhiRatios(data, cfg.RatioTolerance),
		Fibonacci: DetectFibonacci(data, cfg.FibTolerance),
		Coherence: DetectCoherence(data),
		Coupling:  DetectFieldCoupling(data, cfg.SampleRate, cfg.Expected),
	}
}

// #endregion scan
