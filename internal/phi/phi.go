package phi

import "math"

// #region constants

// Ratio is the golden ratio conjugate (sqrt(5)-1)/2, the spacing target
// every coupling score in this repo compares against.
const Ratio = 0.6180339887498949

// Inverse is 1/Ratio, the golden ratio itself.
const Inverse = 1.618033988749895

// GoldenAngle is the golden angle in degrees, 360*(1-Ratio).
const GoldenAngle = 137.50776405003785

// ratioFloor guards ratio denominators against near-zero values.
const ratioFloor = 1e-10

// #endregion constants

// #region deviation

// Deviation returns the distance from r to the nearest of Ratio and Inverse.
func Deviation(r float64) float64 {
	d1 := math.Abs(r - Ratio)
	d2 := math.Abs(r - Inverse)
	if d2 < d1 {
		return d2
	}
	return d1
}

// #endregion deviation

// #region ratios

// ConsecutiveRatios returns v[i+1]/v[i] for each adjacent pair, skipping
// pairs whose denominator sits below the ratio floor.
func ConsecutiveRatios(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	ratios := make([]float64, 0, len(values)-1)
	for i := 0; i < len(values)-1; i++ {
		if math.Abs(values[i]) > ratioFloor {
			ratios = append(ratios, values[i+1]/values[i])
		}
	}
	return ratios
}

// #endregion ratios

// #region efficiency

// Efficiency scores how closely a set of ratios tracks Ratio or Inverse:
// exp of the negated mean deviation. Empty input scores 1.0.
// Bounded in (0, 1].
func Efficiency(ratios []float64) float64 {
	if len(ratios) == 0 {
		return 1.0
	}
	var sum float64
	for _, r := range ratios {
		sum += Deviation(r)
	}
	return math.Exp(-sum / float64(len(ratios)))
}

// SeriesEfficiency is Efficiency over the consecutive ratios of values.
func SeriesEfficiency(values []float64) float64 {
	return Efficiency(ConsecutiveRatios(values))
}

// #endregion efficiency

// #region powers

// Powers returns Ratio^0 .. Ratio^(n-1).
func Powers(n int) []float64 {
	out := make([]float64, n)
	p := 1.0
	for i := range out {
		out[i] = p
		p *= Ratio
	}
	return out
}

// NormalizedPowers returns Powers(n) scaled to sum to 1.
func NormalizedPowers(n int) []float64 {
	out := Powers(n)
	var sum float64
	for _, v := range out {
		sum += v
	}
	if sum == 0 {
		return out
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// #endregion powers
