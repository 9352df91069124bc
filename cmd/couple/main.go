package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/JinnZ2/Shadow-Hunting/internal/coupling"
	"github.com/JinnZ2/Shadow-Hunting/internal/phi"
)

// #region main

func main() {
	system := flag.String("system", "all", "leaf|cortex|morpho|vortex|all")
	steps := flag.Int("steps", 3, "steps for the morpho and vortex runs")
	protocol := flag.String("protocol", "", "print the staged healing protocol for an injury type")
	flag.Parse()

	if *protocol != "" {
		printHealingPlan(coupling.HealingProtocol(*protocol))
		return
	}

	switch strings.ToLower(*system) {
	case "leaf":
		runLeaf()
	case "cortex":
		runCortex()
	case "morpho":
		runMorpho(*steps)
	case "vortex":
		runVortex(*steps)
	case "all":
		runComparison()
	default:
		fmt.Fprintln(os.Stderr, "usage: couple [--system leaf|cortex|morpho|vortex|all] [--steps N] [--protocol injury]")
		os.Exit(2)
	}
}

// #endregion main

// #region leaf

func runLeaf() {
	leaf := coupling.NewLeaf(100.0, 6)
	fmt.Println("=== Photosynthesis: Leaf Geometry ===")
	fmt.Printf("  light %.0f | upkeep threshold %.0f | mode %s\n", leaf.Energy, leaf.Threshold(), leaf.Mode)

	res := leaf.OptimizeGeometry()
	fmt.Printf("\n  phi efficiency:   %.3f\n", res.Efficiency)
	fmt.Printf("  predicted output: %.1f units at the 82%% functional transfer rate\n", res.PredictedOutput)

	fmt.Println("\n  chlorophyll distribution (golden-angle whorl):")
	max := maxOf(res.Chlorophyll)
	for i, c := range res.Chlorophyll {
		fmt.Printf("    leaf %d  %.4f  %s\n", i+1, c, bar(c, max))
	}
}

// #endregion leaf

// #region cortex

func runCortex() {
	cortex := coupling.NewCortex(20.0)
	fmt.Println("=== Consciousness: Intention Steering ===")
	fmt.Printf("  metabolic budget %.0f | field maintenance %.0f | mode %s\n\n",
		cortex.Energy, cortex.Threshold(), cortex.Mode)

	intentions := []coupling.Intention{
		coupling.IntentionFocus,
		coupling.IntentionRelax,
		coupling.IntentionCreative,
		coupling.IntentionHealing,
	}
	for _, in := range intentions {
		res := cortex.ApplyIntention(in)
		fmt.Printf("  %-9s efficiency %.3f | consciousness %.2f | %s\n",
			in, res.Efficiency, res.ConsciousnessLevel, res.Recommendation)
	}

	fmt.Println("\n  final field pattern:")
	for i, region := range coupling.BrainRegions {
		fmt.Printf("    %-10s %.3f\n", region, cortex.Coherence[i])
	}
}

// #endregion cortex

// #region morpho

func runMorpho(steps int) {
	morpho := coupling.NewMorpho(50.0, 6)
	morpho.SetTarget(phi.Powers(6))
	fmt.Println("=== Morphogenesis: Voltage-Guided Regeneration ===")
	fmt.Printf("  metabolic budget %.0f | regeneration threshold %.0f | mode %s\n\n",
		morpho.Energy, morpho.Threshold(), morpho.Mode)

	adjustment := []float64{0.1, 0.05, 0.02, 0.01, 0.005, 0.001}
	for i := 0; i < steps; i++ {
		res := morpho.Stimulate(adjustment)
		fmt.Printf("  stimulation %d: efficiency %.3f | progress %5.1f%% | mode %s\n",
			i+1, res.Efficiency, res.Progress*100, res.Mode)
		for j := range adjustment {
			adjustment[j] *= 0.5
		}
	}
	fmt.Printf("\n  final regeneration progress: %.1f%%\n", morpho.Progress()*100)
}

// #endregion morpho

// #region vortex

func runVortex(steps int) {
	vortex := coupling.NewVortex(28.5, 6)
	fmt.Println("=== Hurricane: Ocean Heat Coupling ===")
	fmt.Printf("  SST %.1f C | formation floor %.1f C | mode %s\n", vortex.Energy, vortex.Threshold(), vortex.Mode)
	fmt.Printf("  potential intensity: %.0f kt\n\n", vortex.PotentialIntensity())

	for i := 0; i < steps; i++ {
		res := vortex.Step()
		tag := ""
		if res.IntensificationPredicted {
			tag = "  intensification predicted"
		}
		fmt.Printf("  step %d: wind %5.1f kt | pressure %6.1f hPa | eff %.3f%s\n",
			i+1, res.WindSpeed, res.CentralPressure, res.Efficiency, tag)
	}
}

// #endregion vortex

// #region comparison

func runComparison() {
	cmp := coupling.Compare()
	fmt.Println("=== Cross-System Energy Coupling ===")
	fmt.Println()
	fmt.Printf("  %-16s %8s %10s %-8s %10s  %s\n",
		"System", "Energy", "Threshold", "Mode", "Efficiency", "Headline")
	for _, row := range cmp.Rows {
		fmt.Printf("  %-16s %8.1f %10.1f %-8s %10.3f  %s\n",
			row.Name, row.Energy, row.Threshold, row.Mode, row.Efficiency, row.Metric)
	}
	fmt.Printf("\n  mean phi efficiency across systems: %.3f\n", cmp.MeanEfficiency)
}

// #endregion comparison

// #region healing-plan

func printHealingPlan(plan coupling.HealingPlan) {
	fmt.Printf("=== Staged Healing Protocol: %s ===\n", plan.Injury)
	for _, phase := range plan.Phases {
		fmt.Printf("\n%s (%s)\n", phase.Name, phase.Days)
		fmt.Printf("  goal:        %s\n", phase.Goal)
		fmt.Printf("  energy:      %.0f\n", phase.Energy)
		fmt.Printf("  stimulation: %v\n", phase.Stimulation)
		fmt.Printf("  result:      efficiency %.3f | progress %.1f%% | mode %s\n",
			phase.Result.Efficiency, phase.Result.Progress*100, phase.Result.Mode)
	}
}

// #endregion healing-plan

// #region helpers

func maxOf(v []float64) float64 {
	max := 0.0
	for _, x := range v {
		if x > max {
			max = x
		}
	}
	return max
}

func bar(v, max float64) string {
	if max <= 0 {
		return ""
	}
	return strings.Repeat("#", int(v/max*30))
}

// #endregion helpers
