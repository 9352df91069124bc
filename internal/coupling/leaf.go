package coupling

import (
	"math"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

// #region leaf

// Leaf models photosynthetic light capture over a whorl of leaves. Energy
// is incident light intensity; the threshold is maintenance upkeep per
// leaf.
type Leaf struct {
	System
	Chlorophyll []float64
	cfg         Config
}

// LeafResult reports one geometry optimization pass.
type LeafResult struct {
	Efficiency      float64
	Mode            Mode
	Chlorophyll     []float64
	PredictedOutput float64
}

// NewLeaf builds a photosynthetic system with uniform chlorophyll.
func NewLeaf(lightIntensity float64, leafCount int) *Leaf {
	l := &Leaf{Chlorophyll: make([]float64, leafCount), cfg: DefaultConfig()}
	for i := range l.Chlorophyll {
		l.Chlorophyll[i] = 1
	}
	upkeep := l.cfg.LeafUpkeep * float64(leafCount)
	l.System = newSystem("Photosynthesis", lightIntensity, func(float64) float64 {
		return upkeep
	})
	return l
}

// OptimizeGeometry redistributes chlorophyll along golden-angle spacing in
// explore mode; expand mode holds the existing pattern. The predicted
// output uses the 82% functional-transfer figure from the shadow ledger
// rather than the 6% glucose-only figure.
func (l *Leaf) OptimizeGeometry() LeafResult {
	if l.Mode == ModeExplore {
		var sum float64
		for i := range l.Chlorophyll {
			angle := math.Mod(float64(i)*phi.GoldenAngle, 360)
			light := l.Energy * (1 + 0.3*math.Sin(angle*math.Pi/180))
			l.Chlorophyll[i] = light
			sum += light
		}
		if sum > 0 {
			for i := range l.Chlorophyll {
				l.Chlorophyll[i] /= sum
			}
		}
	}
	eff := Efficiency(l.Chlorophyll)
	return LeafResult{
		Efficiency:      eff,
		Mode:            l.Mode,
		Chlorophyll:     copyVec(l.Chlorophyll),
		PredictedOutput: eff * l.Energy * 0.82,
	}
}

// #endregion leaf
