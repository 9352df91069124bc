package storm

import (
	"math"
	"math/rand"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

// spiralPoints is the sample count per band arm.
const spiralPoints = 100

// #region phi-generator

// GeneratePhi builds a cyclone whose rain bands sit at consecutive
// phi-ratio radii, each band a logarithmic spiral arm over three full
// turns. Wind decays and pressure rises outward. NoiseLevel jitters
// the sampled positions; zero noise gives perfect geometry.
func GeneratePhi(cfg GenConfig, rng *rand.Rand) FieldData {
	bands := make([]Band, 0, cfg.Bands)
	for i := 1; i <= cfg.Bands; i++ {
		radius := cfg.BaseRadius * math.Pow(phi.Ratio, float64(i))

		x := make([]float64, spiralPoints)
		y := make([]float64, spiralPoints)
		for k := 0; k < spiralPoints; k++ {
			theta := 6 * math.Pi * float64(k) / float64(spiralPoints-1)
			r := radius * math.Exp(phi.Ratio*theta/(2*math.Pi))
			x[k] = cfg.Center[0] + r*math.Cos(theta)
			y[k] = cfg.Center[1] + r*math.Sin(theta)
			if cfg.NoiseLevel > 0 {
				x[k] += rng.NormFloat64() * cfg.NoiseLevel * radius
				y[k] += rng.NormFloat64() * cfg.NoiseLevel * radius
			}
		}

		bands = append(bands, Band{
			Number:    i,
			Radius:    radius,
			X:         x,
			Y:         y,
			WindSpeed: 150 * math.Exp(-0.3*float64(i)),
			Pressure:  950 + 10*float64(i),
		})
	}
	return FieldData{
		Kind:    KindPhiRatio,
		Center:  cfg.Center,
		Bands:   bands,
		Quality: 1 - cfg.NoiseLevel,
	}
}

// #endregion phi-generator

// #region random-generator

// GenerateRandom builds a cyclone with no geometric organization:
// random band spacing, radial jitter, and independently phased arms.
func GenerateRandom(cfg GenConfig, rng *rand.Rand) FieldData {
	bands := make([]Band, 0, cfg.Bands)
	for i := 1; i <= cfg.Bands; i++ {
		radius := cfg.BaseRadius * (0.5 + 1.5*rng.Float64()) * float64(i)
		phaseX := rng.Float64() * 2 * math.Pi
		phaseY := rng.Float64() * 2 * math.Pi

		x := make([]float64, spiralPoints)
		y := make([]float64, spiralPoints)
		for k := 0; k < spiralPoints; k++ {
			theta := 6 * math.Pi * float64(k) / float64(spiralPoints-1)
			r := radius * (1 + 0.3*rng.Float64())
			x[k] = cfg.Center[0] + r*math.Cos(theta+phaseX)
			y[k] = cfg.Center[1] + r*math.Sin(theta+phaseY)
		}

		bands = append(bands, Band{
			Number:    i,
			Radius:    radius,
			X:         x,
			Y:         y,
			WindSpeed: 100 + (rng.Float64()*60 - 30),
			Pressure:  950 + rng.Float64()*50,
		})
	}
	return FieldData{
		Kind:    KindRandom,
		Center:  cfg.Center,
		Bands:   bands,
		Quality: 0.1,
	}
}

// #endregion random-generator

// #region intensifying-generator

// GenerateIntensifying produces a timeline of four-band storms whose
// geometry cleans up and whose winds build as coupling strengthens.
func GenerateIntensifying(steps int, rng *rand.Rand) []Frame {
	frames := make([]Frame, 0, steps)
	for t := 0; t < steps; t++ {
		coupling := float64(t) / float64(steps)
		cfg := GenConfig{
			Bands:      4,
			BaseRadius: 50.0,
			NoiseLevel: 0.3 * (1 - coupling),
		}
		frames = append(frames, Frame{
			Storm:            GeneratePhi(cfg, rng),
			Time:             t,
			CouplingStrength: coupling,
			MaxWind:          80 + coupling*80,
		})
	}
	return frames
}

// #endregion intensifying-generator
