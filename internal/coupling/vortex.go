package coupling

// #region vortex

// Vortex models tropical cyclone intensity driven by ocean heat. Energy
// is sea-surface temperature in °C; the threshold is the cyclone
// formation floor.
type Vortex struct {
	System
	RainBands       []float64
	WindSpeed       float64
	CentralPressure float64
	cfg             Config
}

// VortexResult reports one intensity step.
type VortexResult struct {
	Efficiency               float64
	WindSpeed                float64
	CentralPressure          float64
	Mode                     Mode
	IntensificationPredicted bool
	HarvestableEnergy        float64 // MW-scale estimate
}

// NewVortex builds an atmospheric system with uniform rain bands and
// ambient pressure.
func NewVortex(oceanHeat float64, bands int) *Vortex {
	v := &Vortex{
		RainBands:       uniform(bands),
		CentralPressure: 1013.0,
		cfg:             DefaultConfig(),
	}
	sst := v.cfg.FormationSST
	v.System = newSystem("Hurricane", oceanHeat, func(float64) float64 {
		return sst
	})
	return v
}

// PotentialIntensity estimates maximum sustainable wind in kt from band
// geometry and heat content.
func (v *Vortex) PotentialIntensity() float64 {
	return 85 + Efficiency(v.RainBands)*v.Energy*2.0
}

// Step measures band geometry and advances intensity one tick. Explore
// mode pulls wind toward potential intensity and drops pressure with it;
// expand mode decays the storm.
func (v *Vortex) Step() VortexResult {
	eff := Efficiency(v.RainBands)
	if v.Mode == ModeExplore {
		mpi := 85 + eff*v.Energy*2.0
		a := v.cfg.WindBlend
		v.WindSpeed = (1-a)*v.WindSpeed + a*mpi
		v.CentralPressure = 1013 - v.WindSpeed*0.8
	} else {
		v.WindSpeed *= 0.9
		v.CentralPressure += 2.0
	}
	return VortexResult{
		Efficiency:               eff,
		WindSpeed:                v.WindSpeed,
		CentralPressure:          v.CentralPressure,
		Mode:                     v.Mode,
		IntensificationPredicted: v.Mode == ModeExplore && eff > 0.7,
		HarvestableEnergy:        eff * v.Energy * 1000,
	}
}

// #endregion vortex
