package coupling

import "github.com/JinnZ2/Shadow-Hunting/internal/phi"

// #region healing-protocol

// HealingPhase is one stage of a staged bioelectric healing protocol.
type HealingPhase struct {
	Name        string
	Days        string
	Goal        string
	Energy      float64
	Stimulation []float64
	Result      MorphoResult
}

// HealingPlan is a complete staged protocol for one injury type.
type HealingPlan struct {
	Injury string
	Phases []HealingPhase
}

// HealingProtocol drives a morphogenetic system through the three-phase
// staged-energy protocol for the named injury and records per-phase
// outcomes. Energy is staged 60/45/30 across phases; stimulation voltage
// tapers as the form locks in.
func HealingProtocol(injuryType string) HealingPlan {
	morpho := NewMorpho(60.0, 6)
	morpho.SetTarget(phi.Powers(6))

	phases := []struct {
		name, days, goal string
		energy           float64
		stim             []float64
	}{
		{
			name:   "Phase 1: High Energy",
			days:   "Days 1-7",
			goal:   "Initiate regeneration (EXPLORE mode)",
			energy: 60.0,
			stim:   []float64{0.15, 0.10, 0.05, 0.02, 0.01, 0.005},
		},
		{
			name:   "Phase 2: Moderate Energy",
			days:   "Days 8-14",
			goal:   "Guide tissue organization",
			energy: 45.0,
			stim:   []float64{0.08, 0.05, 0.03, 0.01, 0.005, 0.002},
		},
		{
			name:   "Phase 3: Low Energy",
			days:   "Days 15+",
			goal:   "Crystallize final form",
			energy: 30.0,
			stim:   []float64{0.02, 0.01, 0.005, 0.002, 0.001, 0.0005},
		},
	}

	plan := HealingPlan{Injury: injuryType}
	for _, p := range phases {
		morpho.SetEnergy(p.energy)
		res := morpho.Stimulate(p.stim)
		plan.Phases = append(plan.Phases, HealingPhase{
			Name:        p.name,
			Days:        p.days,
			Goal:        p.goal,
			Energy:      p.energy,
			Stimulation: p.stim,
			Result:      res,
		})
	}
	return plan
}

// #endregion healing-protocol
