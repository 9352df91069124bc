package bioelectric

import (
	"fmt"
	"math"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

// #region field

// DefaultGridSize is the number of tissue regions along the field axis.
const DefaultGridSize = 6

// exploreEnergy is the metabolic floor for active regeneration.
const exploreEnergy = 30.0

// Field is the morphogenetic voltage field a tissue's DNA reads. One
// voltage per region plus a pairwise gap-junction coupling network.
type Field struct {
	GridSize        int
	VoltageMap      []float64
	GapJunctions    [][]float64
	MetabolicEnergy float64
}

// NewField builds a zeroed field with half-open gap junctions and a
// starting ATP budget of 50.
func NewField(gridSize int) *Field {
	f := &Field{
		GridSize:        gridSize,
		VoltageMap:      make([]float64, gridSize),
		GapJunctions:    make([][]float64, gridSize),
		MetabolicEnergy: 50.0,
	}
	for i := range f.GapJunctions {
		row := make([]float64, gridSize)
		for j := range row {
			row[j] = 0.5
		}
		f.GapJunctions[i] = row
	}
	return f
}

// #endregion field

// #region target-pattern

// SetTargetPattern loads a library pattern into the field: voltage
// distributed by normalized phi powers, gap junctions scaled by the
// pattern's conductance.
func (f *Field) SetTargetPattern(name string) (VoltagePattern, error) {
	pattern, ok := LookupPattern(name)
	if !ok {
		return VoltagePattern{}, fmt.Errorf("pattern %q not in library", name)
	}
	weights := phi.NormalizedPowers(f.GridSize)
	for i := range f.VoltageMap {
		f.VoltageMap[i] = pattern.VmemTarget * weights[i]
	}
	for i := range f.GapJunctions {
		for j := range f.GapJunctions[i] {
			f.GapJunctions[i][j] *= pattern.GapConductance
		}
	}
	return pattern, nil
}

// #endregion target-pattern

// #region energy

// Energy is the energy stored in the field: capacitor-like voltage
// energy plus a tenth of the coupling network.
func (f *Field) Energy() float64 {
	var voltage float64
	for _, v := range f.VoltageMap {
		voltage += v * v
	}
	var coupling float64
	for _, row := range f.GapJunctions {
		for _, g := range row {
			coupling += g
		}
	}
	return voltage + coupling*0.1
}

// #endregion energy

// #region coherence

// Coherence measures how well the voltage map follows phi-ratio
// geometry. Ratios are taken over regions with more than 1 mV of
// polarization; a map with no usable ratios scores zero.
func (f *Field) Coherence() float64 {
	var devs []float64
	for i := 0; i < len(f.VoltageMap)-1; i++ {
		if math.Abs(f.VoltageMap[i]) > 1.0 {
			ratio := math.Abs(f.VoltageMap[i+1] / f.VoltageMap[i])
			devs = append(devs, phi.Deviation(ratio))
		}
	}
	if len(devs) == 0 {
		return 0.0
	}
	var sum float64
	for _, d := range devs {
		sum += d
	}
	return math.Exp(-sum / float64(len(devs)))
}

// #endregion coherence

// #region stimulation

// ApplyStimulation advances the field by dtHours under the protocol.
// Optogenetic and piezo methods carry no field model yet and only pay
// the maintenance cost.
func (f *Field) ApplyStimulation(p StimulationProtocol, dtHours float64) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if dtHours <= 0 {
		return fmt.Errorf("dt must be positive, got %g", dtHours)
	}

	switch p.Method {
	case MethodIonChannelDrugs:
		// Drugs move the equilibrium toward the target voltage.
		shift := (p.TargetVoltage - f.meanVoltage()) * p.Intensity * (dtHours / p.DurationHours)
		for i := range f.VoltageMap {
			f.VoltageMap[i] += shift
		}
	case MethodGapJunctionBlockers:
		// Decouple the network (the two-headed planaria trick).
		factor := 1 - p.Intensity*dtHours/p.DurationHours
		for i := range f.GapJunctions {
			for j := range f.GapJunctions[i] {
				f.GapJunctions[i][j] *= factor
			}
		}
	case MethodDirectCurrent:
		// External DC field lays a gradient across the tissue.
		scale := p.Intensity * (dtHours / p.DurationHours)
		for i := range f.VoltageMap {
			f.VoltageMap[i] += f.gradientAt(i, p.TargetVoltage) * scale
		}
	case MethodPulsedEM:
		if p.FrequencyHz > 0 {
			pulse := p.Intensity * math.Sin(2*math.Pi*p.FrequencyHz*dtHours)
			for i := range f.VoltageMap {
				f.VoltageMap[i] += p.TargetVoltage * pulse * 0.1
			}
		}
	}

	// Maintenance cost of holding the new pattern.
	f.MetabolicEnergy -= f.Energy() * 0.01 * dtHours
	return nil
}

func (f *Field) meanVoltage() float64 {
	if len(f.VoltageMap) == 0 {
		return 0
	}
	var sum float64
	for _, v := range f.VoltageMap {
		sum += v
	}
	return sum / float64(len(f.VoltageMap))
}

// gradientAt is the linear ramp from 0 to target across the grid.
func (f *Field) gradientAt(i int, target float64) float64 {
	if f.GridSize < 2 {
		return target
	}
	return target * float64(i) / float64(f.GridSize-1)
}

// #endregion stimulation

// #region morphology

// PredictMorphology matches the voltage map against phi-weighted library
// signatures by cosine similarity and names the best fit.
func (f *Field) PredictMorphology() string {
	current := normalize(f.VoltageMap)

	bestName := ""
	bestSim := math.Inf(-1)
	powers := phi.Powers(f.GridSize)
	for _, name := range PatternNames {
		pattern := patternLibrary[name]
		target := make([]float64, f.GridSize)
		for i := range target {
			target[i] = pattern.VmemTarget * powers[i]
		}
		target = normalize(target)

		var sim float64
		for i := range current {
			sim += current[i] * target[i]
		}
		if sim > bestSim {
			bestSim = sim
			bestName = name
		}
	}
	return fmt.Sprintf("%s (%.1f%% match)", bestName, bestSim*100)
}

func normalize(v []float64) []float64 {
	var sumSq float64
	for _, x := range v {
		sumSq += x * x
	}
	norm := math.Sqrt(sumSq) + 1e-10
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

// #endregion morphology
