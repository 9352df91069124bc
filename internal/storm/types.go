package storm

// Storm kinds as recorded on generated fields.
const (
	KindPhiRatio = "phi_ratio"
	KindRandom   = "random"
)

// #region types

// Band is one rain band: a sampled spiral arm plus its bulk
// measurements.
type Band struct {
	Number    int
	Radius    float64 // theoretical spacing radius, km
	X         []float64
	Y         []float64
	WindSpeed float64 // kt
	Pressure  float64 // hPa
}

// FieldData is a full synthetic cyclone observation.
type FieldData struct {
	Kind    string
	Center  [2]float64
	Bands   []Band
	Quality float64 // geometric quality the generator aimed for
}

// Frame is one step of an intensifying storm timeline.
type Frame struct {
	Storm            FieldData
	Time             int
	CouplingStrength float64
	MaxWind          float64 // kt
}

// Signals is the combined output of the geometric detectors.
type Signals struct {
	PhiCoupling     float64
	PhiQuality      float64
	SpiralCoherence float64
	EnergyCoupling  float64
	MeasuredRatios  []float64
	Deviations      []float64
}

// Vector flattens the scalar signals for similarity search and
// storage.
func (s Signals) Vector() []float64 {
	return []float64{s.PhiCoupling, s.PhiQuality, s.SpiralCoherence, s.EnergyCoupling}
}

// #endregion types

// #region config

// GenConfig shapes the synthetic generators.
type GenConfig struct {
	Center     [2]float64
	Bands      int
	BaseRadius float64
	NoiseLevel float64 // fraction of band radius, gaussian
}

// DefaultGenConfig matches the reference five-band storm.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Bands:      5,
		BaseRadius: 50.0,
		NoiseLevel: 0.05,
	}
}

// #endregion config
