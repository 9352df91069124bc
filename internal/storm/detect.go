package storm

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

// #region spacing

// Spacing is the band-spacing analysis of a storm.
type Spacing struct {
	Coupling       float64
	Quality        float64
	MeasuredRatios []float64
	Deviations     []float64
	MeanDeviation  float64
}

// DetectPhiSpacing scores how closely consecutive band radii follow
// the inverse golden ratio. Radii are measured as the mean distance of
// each arm's samples from the origin, so positional noise feeds
// straight into the score. Fewer than two bands carries no spacing
// information and scores zero.
func DetectPhiSpacing(f FieldData) Spacing {
	if len(f.Bands) < 2 {
		return Spacing{}
	}

	radii := make([]float64, len(f.Bands))
	for i, b := range f.Bands {
		radii[i] = meanRadius(b)
	}

	var ratios, devs []float64
	for i := 0; i < len(radii)-1; i++ {
		if radii[i] > 0 {
			ratio := radii[i+1] / radii[i]
			ratios = append(ratios, ratio)
			devs = append(devs, math.Abs(ratio-phi.Inverse)/phi.Inverse)
		}
	}

	// No usable ratios counts as maximal deviation.
	mean := 1.0
	if len(devs) > 0 {
		mean = stat.Mean(devs, nil)
	}
	quality := math.Exp(-3 * mean)

	return Spacing{
		Coupling:       quality * (1 + 0.1*float64(len(f.Bands))),
		Quality:        quality,
		MeasuredRatios: ratios,
		Deviations:     devs,
		MeanDeviation:  mean,
	}
}

func meanRadius(b Band) float64 {
	if len(b.X) == 0 {
		return 0
	}
	var sum float64
	for k := range b.X {
		sum += math.Hypot(b.X[k], b.Y[k])
	}
	return sum / float64(len(b.X))
}

// #endregion spacing

// #region spiral-coherence

// DetectSpiralCoherence measures arm organization. A clean spiral's
// unwrapped polar angle is linear in sample index, so the score is
// exp(-sigma) of the residuals around a least-squares line, averaged
// over bands.
func DetectSpiralCoherence(f FieldData) float64 {
	if len(f.Bands) == 0 {
		return 0
	}
	scores := make([]float64, 0, len(f.Bands))
	for _, b := range f.Bands {
		scores = append(scores, armCoherence(b))
	}
	return stat.Mean(scores, nil)
}

func armCoherence(b Band) float64 {
	n := len(b.X)
	if n < 2 {
		return 0
	}

	angles := make([]float64, n)
	for k := range angles {
		angles[k] = math.Atan2(b.Y[k], b.X[k])
	}
	unwrapped := unwrap(angles)

	idx := make([]float64, n)
	for k := range idx {
		idx[k] = float64(k)
	}
	alpha, beta := stat.LinearRegression(idx, unwrapped, nil, false)

	residuals := make([]float64, n)
	for k := range residuals {
		residuals[k] = unwrapped[k] - (alpha + beta*idx[k])
	}
	return math.Exp(-stat.PopStdDev(residuals, nil))
}

// unwrap removes 2-pi jumps so the angle series is continuous.
func unwrap(angles []float64) []float64 {
	out := make([]float64, len(angles))
	if len(out) == 0 {
		return out
	}
	out[0] = angles[0]
	for i := 1; i < len(angles); i++ {
		d := math.Mod(angles[i]-angles[i-1]+math.Pi, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		out[i] = out[i-1] + d - math.Pi
	}
	return out
}

// #endregion spiral-coherence

// #region energy-coupling

// DetectEnergyCoupling estimates resonance-style energy transfer
// between adjacent bands: wind speed difference over squared gap,
// summed and normalized by band count.
func DetectEnergyCoupling(f FieldData) float64 {
	if len(f.Bands) < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < len(f.Bands)-1; i++ {
		deltaE := math.Abs(f.Bands[i].WindSpeed - f.Bands[i+1].WindSpeed)
		gap := math.Abs(meanRadius(f.Bands[i+1]) - meanRadius(f.Bands[i]))
		if gap > 0 {
			sum += deltaE / (gap * gap)
		}
	}
	return sum / float64(len(f.Bands))
}

// #endregion energy-coupling

// Analyze runs every detector over one storm.
func Analyze(f FieldData) Signals {
	spacing := DetectPhiSpacing(f)
	return Signals{
		PhiCoupling:     spacing.Coupling,
		PhiQuality:      spacing.Quality,
		SpiralCoherence: DetectSpiralCoherence(f),
		EnergyCoupling:  DetectEnergyCoupling(f),
		MeasuredRatios:  spacing.MeasuredRatios,
		Deviations:      spacing.Deviations,
	}
}
