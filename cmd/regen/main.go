package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/JinnZ2/Shadow-Hunting/internal/bioelectric"
	"github.com/JinnZ2/Shadow-Hunting/internal/history"
	"github.com/JinnZ2/Shadow-Hunting/internal/logging"
	"github.com/JinnZ2/Shadow-Hunting/internal/plot"
)

// #region main

func main() {
	protocol := flag.String("protocol", "planaria-head", "built-in protocol name")
	file := flag.String("file", "", "YAML protocol file (overrides --protocol)")
	hours := flag.Float64("hours", 6.0, "simulation step size in hours")
	dbPath := flag.String("db", "", "commit per-step versions to this SQLite db")
	plotPath := flag.String("plot", "", "write the timeline chart to this PNG")
	design := flag.Bool("design", false, "print the bench experiment design and exit")
	flag.Parse()

	if err := run(*protocol, *file, *hours, *dbPath, *plotPath, *design); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(name, file string, dtHours float64, dbPath, plotPath string, design bool) error {
	pf, err := resolveProtocol(name, file)
	if err != nil {
		return err
	}

	if design {
		printDesign(bioelectric.DesignExperiment(pf))
		return nil
	}

	sim := bioelectric.NewSimulator(pf.InitialState)
	if err := sim.SetTarget(pf.TargetPattern); err != nil {
		return err
	}

	fmt.Printf("=== Regeneration Run: %s ===\n", pf.Name)
	if pf.Description != "" {
		fmt.Printf("  %s\n", pf.Description)
	}
	fmt.Printf("  %s -> %s | %d phases | dt %.1f h\n\n", pf.InitialState, pf.TargetPattern, len(pf.Phases), dtHours)

	steps, err := sim.RunProtocol(pf.Phases, dtHours)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("protocol %q produced no steps", pf.Name)
	}

	printTimeline(steps)

	if dbPath != "" {
		if err := persist(dbPath, pf, steps); err != nil {
			return err
		}
	}
	if plotPath != "" {
		if err := plot.RegenTimeline(steps, plotPath); err != nil {
			return err
		}
		fmt.Printf("wrote timeline chart to %s\n", plotPath)
	}
	return nil
}

func resolveProtocol(name, file string) (bioelectric.ProtocolFile, error) {
	if file != "" {
		return bioelectric.LoadProtocolFile(file)
	}
	pf, ok := bioelectric.BuiltinProtocol(name)
	if !ok {
		return bioelectric.ProtocolFile{}, fmt.Errorf("unknown protocol %q (built-in: %s)",
			name, strings.Join(bioelectric.BuiltinProtocolNames(), ", "))
	}
	return pf, nil
}

// #endregion main

// #region timeline

func printTimeline(steps []bioelectric.StepRecord) {
	fmt.Printf("  %8s %10s %10s %8s  %s\n", "Hour", "Progress", "Coherence", "Energy", "Predicted")

	// Long runs print roughly a dozen evenly spaced rows plus the final one.
	stride := 1
	if len(steps) > 12 {
		stride = len(steps) / 12
	}
	for i, step := range steps {
		if i%stride != 0 && i != len(steps)-1 {
			continue
		}
		fmt.Printf("  %8.1f %9.1f%% %10.3f %8.1f  %s\n",
			step.TimeHours, step.Progress*100, step.Coherence, step.Energy, step.PredictedForm)
	}

	final := steps[len(steps)-1]
	fmt.Printf("\n  final: progress %.1f%% | coherence %.3f | energy %.1f | %s\n\n",
		final.Progress*100, final.Coherence, final.Energy, final.PredictedForm)
}

// #endregion timeline

// #region persist

func persist(dbPath string, pf bioelectric.ProtocolFile, steps []bioelectric.StepRecord) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	logger, err := logging.NewLogger(store.DB())
	if err != nil {
		return err
	}

	meta := history.RunMeta{Kind: "regeneration", Label: pf.Name}
	initial, err := store.CreateInitialRun(meta, len(steps[0].VoltageMap))
	if err != nil {
		return fmt.Errorf("create initial run: %w", err)
	}

	parent := initial.VersionID
	for _, step := range steps {
		metrics, err := json.Marshal(logging.RegenRecord{
			Hour:          step.TimeHours,
			Progress:      step.Progress,
			Coherence:     step.Coherence,
			Energy:        step.Energy,
			PredictedForm: step.PredictedForm,
		})
		if err != nil {
			return fmt.Errorf("marshal metrics: %w", err)
		}

		rec := history.RunRecord{
			VersionID:   uuid.New().String(),
			ParentID:    parent,
			FieldVector: step.VoltageMap,
			Meta:        meta,
			CreatedAt:   time.Now().UTC(),
			MetricsJSON: string(metrics),
		}
		if err := store.CommitRun(rec); err != nil {
			return fmt.Errorf("commit step at %.0f h: %w", step.TimeHours, err)
		}

		err = logger.LogStep(logging.Entry{
			RunVersion:  rec.VersionID,
			Trigger:     logging.TriggerStep,
			SignalsJSON: string(metrics),
			Decision:    "commit",
			Reason:      fmt.Sprintf("progress %.1f%%, %s", step.Progress*100, step.PredictedForm),
		})
		if err != nil {
			return err
		}
		parent = rec.VersionID
	}

	fmt.Printf("committed %d versions to %s (head %s)\n", len(steps), dbPath, shortID(parent))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion persist

// #region design

func printDesign(design bioelectric.ExperimentDesign) {
	pf := design.Protocol
	fmt.Printf("=== Bench Design: %s ===\n", pf.Name)
	if pf.Description != "" {
		fmt.Printf("  %s\n", pf.Description)
	}

	fmt.Println("\nProtocol phases:")
	for i, phase := range pf.Phases {
		fmt.Printf("  %d. %s\n", i+1, phase)
	}

	fmt.Printf("\nMeasurement timepoints (h): %v (window +/- %.0f h)\n",
		bioelectric.DesignTimepoints, bioelectric.DesignWindow)

	printChecklist("MATERIALS", design.Materials)
	printChecklist("MEASUREMENTS", design.Measurements)
	printChecklist("SUCCESS CRITERIA", design.Criteria)
}

func printChecklist(title string, items []string) {
	fmt.Printf("\n[%s]\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

// #endregion design
