package coupling

import (
	"fmt"

	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

// #region intentions

// Intention names a field configuration the cortex can steer toward.
type Intention string

const (
	IntentionFocus    Intention = "focus"
	IntentionRelax    Intention = "relax"
	IntentionCreative Intention = "creative"
	IntentionHealing  Intention = "healing"
)

// BrainRegions lists the six field regions in cortex order.
var BrainRegions = []string{"frontal", "parietal", "temporal", "occipital", "limbic", "brainstem"}

// #endregion intentions

// #region cortex

// Cortex models consciousness as a coherence field over brain regions.
// Energy is the metabolic budget; the threshold is the 75% field
// maintenance share from the brain energy ledger, so it moves with the
// budget.
type Cortex struct {
	System
	Coherence          []float64
	ConsciousnessLevel float64
	cfg                Config
}

// CortexResult reports one intention pass.
type CortexResult struct {
	Efficiency         float64
	ConsciousnessLevel float64
	Mode               Mode
	FieldPattern       []float64
	Recommendation     string
}

// NewCortex builds a consciousness system with a uniform coherence field.
func NewCortex(metabolicEnergy float64) *Cortex {
	c := &Cortex{
		Coherence:          uniform(len(BrainRegions)),
		ConsciousnessLevel: 0.5,
		cfg:                DefaultConfig(),
	}
	c.System = newSystem("Consciousness", metabolicEnergy, func(e float64) float64 {
		return 0.75 * e
	})
	return c
}

// #endregion cortex

// #region apply-intention

// ApplyIntention blends the coherence field toward the intention target.
// Only explore mode can shift the field; expand mode holds it. Unknown
// intentions hold the current field.
func (c *Cortex) ApplyIntention(in Intention) CortexResult {
	target := c.intentionTarget(in)
	if c.Mode == ModeExplore && target != nil {
		a := c.cfg.IntentionBlend
		for i := range c.Coherence {
			c.Coherence[i] = (1-a)*c.Coherence[i] + a*target[i]
		}
	}
	eff := Efficiency(c.Coherence)
	c.ConsciousnessLevel = eff
	return CortexResult{
		Efficiency:         eff,
		ConsciousnessLevel: eff,
		Mode:               c.Mode,
		FieldPattern:       copyVec(c.Coherence),
		Recommendation:     recommendation(in, eff),
	}
}

func (c *Cortex) intentionTarget(in Intention) []float64 {
	switch in {
	case IntentionFocus:
		return []float64{0.4, 0.2, 0.15, 0.1, 0.1, 0.05}
	case IntentionRelax:
		return uniform(len(c.Coherence))
	case IntentionCreative:
		return phi.NormalizedPowers(len(c.Coherence))
	case IntentionHealing:
		return []float64{0.1, 0.1, 0.1, 0.1, 0.3, 0.3}
	}
	return nil
}

func recommendation(in Intention, efficiency float64) string {
	switch {
	case efficiency < 0.5:
		return fmt.Sprintf("Low coherence for %s. Consider: deep breathing, reduce stimuli, or rest.", in)
	case efficiency < 0.75:
		return fmt.Sprintf("Moderate coherence. Continue %s practice.", in)
	default:
		return fmt.Sprintf("High coherence achieved for %s. Optimal state.", in)
	}
}

// #endregion apply-intention
