package coupling

import (
	"fmt"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

// #region compare

// Comparison bundles the cross-system demonstration run.
type Comparison struct {
	Rows           []Snapshot
	MeanEfficiency float64
}

// Compare runs one optimization pass on each of the four domain systems
// under the reference budgets (light 100, brain 20, tissue 50, ocean
// 28.5 °C) and collects the comparison table.
func Compare() Comparison {
	leaf := NewLeaf(100.0, 6)
	cortex := NewCortex(20.0)
	morpho := NewMorpho(50.0, 6)
	vortex := NewVortex(28.5, 6)

	leafRes := leaf.OptimizeGeometry()
	cortexRes := cortex.ApplyIntention(IntentionCreative)
	morpho.SetTarget(phi.Powers(6))
	morphoRes := morpho.Stimulate([]float64{0.1, 0.05, 0.02, 0.01, 0.005, 0.001})
	vortexRes := vortex.Step()

	rows := []Snapshot{
		{
			Name:       leaf.Name,
			Energy:     leaf.Energy,
			Threshold:  leaf.Threshold(),
			Mode:       leaf.Mode,
			Efficiency: leafRes.Efficiency,
			Metric:     fmt.Sprintf("%.1f units predicted output", leafRes.PredictedOutput),
		},
		{
			Name:       cortex.Name,
			Energy:     cortex.Energy,
			Threshold:  cortex.Threshold(),
			Mode:       cortex.Mode,
			Efficiency: cortexRes.Efficiency,
			Metric:     fmt.Sprintf("%.2f consciousness level", cortexRes.ConsciousnessLevel),
		},
		{
			Name:       morpho.Name,
			Energy:     morpho.Energy,
			Threshold:  morpho.Threshold(),
			Mode:       morpho.Mode,
			Efficiency: morphoRes.Efficiency,
			Metric:     fmt.Sprintf("%.1f%% regeneration progress", morphoRes.Progress*100),
		},
		{
			Name:       vortex.Name,
			Energy:     vortex.Energy,
			Threshold:  vortex.Threshold(),
			Mode:       vortex.Mode,
			Efficiency: vortexRes.Efficiency,
			Metric:     fmt.Sprintf("%.0f kt potential intensity", vortexRes.WindSpeed),
		},
	}

	var sum float64
	for _, r := range rows {
		sum += r.Efficiency
	}

	return Comparison{Rows: rows, MeanEfficiency: sum / float64(len(rows))}
}

// #endregion compare
