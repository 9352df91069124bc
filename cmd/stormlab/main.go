package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/JinnZ2/Shadow-Hunting/internal/curiosity"
	"github.com/JinnZ2/Shadow-Hunting/internal/eval"
	"github.com/JinnZ2/Shadow-Hunting/internal/logging"
	"github.com/JinnZ2/Shadow-Hunting/internal/plot"
	"github.com/JinnZ2/Shadow-Hunting/internal/storm"
)

// #region main

func main() {
	storms := flag.Int("storms", 5, "number of storms to generate")
	kind := flag.String("kind", "mixed", "phi|random|mixed|intensifying")
	seed := flag.Int64("seed", 42, "generator seed")
	dbPath := flag.String("db", "", "persist discoveries and the analysis log to this SQLite db")
	plotPath := flag.String("plot", "", "write the joy trace to this PNG")
	evalMode := flag.Bool("eval", false, "run the scripted scenario battery and exit")
	flag.Parse()

	if *evalMode {
		report := eval.NewHarness(eval.DefaultConfig()).Run(*seed)
		fmt.Print(report.Render())
		if !report.Passed {
			os.Exit(1)
		}
		return
	}

	switch *kind {
	case "phi", "random", "mixed", "intensifying":
	default:
		fmt.Fprintln(os.Stderr, "usage: stormlab [--storms N] [--kind phi|random|mixed|intensifying] [--seed N] [--db path] [--plot out.png]")
		os.Exit(2)
	}

	if err := run(*storms, *kind, *seed, *dbPath, *plotPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(storms int, kind string, seed int64, dbPath, plotPath string) error {
	rng := rand.New(rand.NewSource(seed))
	engine := curiosity.NewEngine(curiosity.DefaultConfig())

	var store *curiosity.Store
	var logger *logging.Logger
	if dbPath != "" {
		var err error
		store, err = curiosity.NewStore(dbPath)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer store.Close()
		logger, err = logging.NewLogger(store.DB())
		if err != nil {
			return err
		}
	}
	runID := uuid.New().String()

	fmt.Printf("=== Storm Lab: %d %s storms, seed %d ===\n", storms, kind, seed)

	if kind == "intensifying" {
		for _, frame := range storm.GenerateIntensifying(storms, rng) {
			sig := storm.Analyze(frame.Storm)
			obs := engine.Observe(sig, frame.Storm.Kind)
			fmt.Printf("\nt=%d | coupling %.2f | max wind %.0f kt", frame.Time, frame.CouplingStrength, frame.MaxWind)
			printObservation(obs)
			recallEcho(store, obs)
			if err := record(store, logger, runID, obs); err != nil {
				return err
			}
		}
	} else {
		cfg := storm.DefaultGenConfig()
		for i := 0; i < storms; i++ {
			var field storm.FieldData
			if kind == "phi" || (kind == "mixed" && i%2 == 0) {
				field = storm.GeneratePhi(cfg, rng)
			} else {
				field = storm.GenerateRandom(cfg, rng)
			}
			obs := engine.Observe(storm.Analyze(field), field.Kind)
			printObservation(obs)
			recallEcho(store, obs)
			if err := record(store, logger, runID, obs); err != nil {
				return err
			}
		}
	}

	printSummary(engine, store, dbPath)

	if plotPath != "" {
		if err := plot.JoyTrace(engine.Memory(), plotPath); err != nil {
			return err
		}
		fmt.Printf("wrote joy trace to %s\n", plotPath)
	}
	return nil
}

// #endregion main

// #region output

func printObservation(obs curiosity.Observation) {
	fmt.Printf("\nSTORM #%d (%s)\n", obs.StormNumber, obs.Kind)
	fmt.Printf("  phi coupling:     %.4f\n", obs.Signals.PhiCoupling)
	fmt.Printf("  phi quality:      %.4f\n", obs.Signals.PhiQuality)
	fmt.Printf("  spiral coherence: %.4f\n", obs.Signals.SpiralCoherence)
	fmt.Printf("  energy coupling:  %.6f\n", obs.Signals.EnergyCoupling)
	fmt.Printf("  confirmed:        %v\n", obs.Confirmed)
	fmt.Printf("  joy gain:         %+.3f | happiness %.2f | curiosity %.2f\n",
		obs.JoyGain, obs.Happiness, obs.Curiosity)
	fmt.Printf("  state:            %s (%s)\n", obs.State, obs.State.Tagline())
}

// recallEcho prints past discoveries that resemble a confirmed one. Runs
// before the observation is saved so the pool holds only earlier storms.
func recallEcho(store *curiosity.Store, obs curiosity.Observation) {
	if store == nil || !obs.Confirmed {
		return
	}
	res, err := curiosity.Recall(store, obs.Signals, curiosity.DefaultRecallConfig())
	if err != nil || len(res.Matches) == 0 {
		return
	}
	fmt.Printf("  recalls:          %d similar past discoveries\n", len(res.Matches))
	for _, m := range res.Matches {
		fmt.Printf("    %-10s sim %.2f | joy %+.3f | %s\n",
			m.Discovery.StormKind, m.Similarity, m.Discovery.Joy, shortID(m.Discovery.ID))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printSummary(engine *curiosity.Engine, store *curiosity.Store, dbPath string) {
	confirmed := 0
	for _, obs := range engine.Memory() {
		if obs.Confirmed {
			confirmed++
		}
	}

	state := engine.State()
	fmt.Printf("\n=== Session Summary ===\n")
	fmt.Printf("  storms observed: %d\n", engine.StormCount())
	fmt.Printf("  confirmed:       %d\n", confirmed)
	fmt.Printf("  happiness:       %.2f\n", engine.Happiness())
	fmt.Printf("  curiosity:       %.2f\n", engine.Curiosity())
	fmt.Printf("  state:           %s (%s)\n", state, state.Tagline())

	if store != nil {
		if n, err := store.Count(); err == nil {
			fmt.Printf("  stored:          %d discoveries in %s\n", n, dbPath)
		}
	}
	fmt.Println()
}

// #endregion output

// #region record

func record(store *curiosity.Store, logger *logging.Logger, runID string, obs curiosity.Observation) error {
	if store == nil {
		return nil
	}
	if _, err := store.Save(obs); err != nil {
		return err
	}

	decision := "unconfirmed"
	if obs.Confirmed {
		decision = "confirmed"
	}
	signals, err := json.Marshal(logging.ObservationRecord{
		StormNumber:     obs.StormNumber,
		Kind:            obs.Kind,
		PhiCoupling:     obs.Signals.PhiCoupling,
		PhiQuality:      obs.Signals.PhiQuality,
		SpiralCoherence: obs.Signals.SpiralCoherence,
		EnergyCoupling:  obs.Signals.EnergyCoupling,
		Confirmed:       obs.Confirmed,
		JoyGain:         obs.JoyGain,
		Happiness:       obs.Happiness,
		Curiosity:       obs.Curiosity,
		Resonance:       obs.Resonance,
		State:           string(obs.State),
	})
	if err != nil {
		return fmt.Errorf("marshal observation: %w", err)
	}

	return logger.LogStep(logging.Entry{
		RunVersion:  runID,
		Trigger:     logging.TriggerObserve,
		SignalsJSON: string(signals),
		Decision:    decision,
		Reason:      fmt.Sprintf("joy %+.3f at storm %d", obs.JoyGain, obs.StormNumber),
	})
}

// #endregion record
