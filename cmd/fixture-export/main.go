package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/JinnZ2/Shadow-Hunting/internal/curiosity"
	"github.com/JinnZ2/Shadow-Hunting/internal/replay"
	"github.com/JinnZ2/Shadow-Hunting/internal/storm"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the discovery db")
	last := flag.Int("last", 8, "number of most recent discoveries to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --out path/to/fixture.json [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

func run(dbPath string, last int, outPath string) error {
	store, err := curiosity.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	discoveries, err := store.Recent(last)
	if err != nil {
		return fmt.Errorf("load discoveries: %w", err)
	}
	if len(discoveries) == 0 {
		return fmt.Errorf("no discoveries found in %s", dbPath)
	}

	// Recent returns newest first; the fixture replays chronologically.
	for i, j := 0, len(discoveries)-1; i < j; i, j = i+1, j-1 {
		discoveries[i], discoveries[j] = discoveries[j], discoveries[i]
	}

	fmt.Printf("Found %d discoveries\n", len(discoveries))
	fixture := buildFixture(discoveries)
	return writeFixture(fixture, outPath)
}

// #endregion extract

// #region build

// buildFixture replays the stored signals through a fresh engine under the
// reference config so the exported expectations are self-consistent. A
// stored run that used custom parameters gets a note per diverging storm.
func buildFixture(discoveries []curiosity.Discovery) replay.Fixture {
	cfg := curiosity.DefaultConfig()
	engine := curiosity.NewEngine(cfg)

	observations := make([]replay.FixtureObservation, len(discoveries))
	for i, d := range discoveries {
		sig := signalsFromVector(d.Signals)
		obs := engine.Observe(sig, d.StormKind)
		if obs.Confirmed != d.Confirmed {
			fmt.Printf("note: storm %d replays confirmed=%v but was stored confirmed=%v; exporting the replayed value\n",
				i+1, obs.Confirmed, d.Confirmed)
		}

		observations[i] = replay.FixtureObservation{
			Kind:            d.StormKind,
			PhiCoupling:     sig.PhiCoupling,
			PhiQuality:      sig.PhiQuality,
			SpiralCoherence: sig.SpiralCoherence,
			EnergyCoupling:  sig.EnergyCoupling,
			ExpectConfirmed: obs.Confirmed,
			ExpectState:     string(obs.State),
		}
	}

	return replay.Fixture{
		Description: fmt.Sprintf("Exported session: %d persisted discoveries", len(discoveries)),
		Config: replay.FixtureConfig{
			InitialCuriosity: cfg.InitialCuriosity,
			CuriosityCap:     cfg.CuriosityCap,
			PhiWeight:        cfg.PhiWeight,
			SpiralWeight:     cfg.SpiralWeight,
			EnergyWeight:     cfg.EnergyWeight,
			QualityThreshold: cfg.QualityThreshold,
			SpiralThreshold:  cfg.SpiralThreshold,
			ConfirmedBonus:   cfg.ConfirmedBonus,
			UnconfirmedBonus: cfg.UnconfirmedBonus,
		},
		Observations: observations,
		ExpectedFinal: replay.FixtureFinal{
			Happiness: engine.Happiness(),
			Tolerance: 0.001,
			Storms:    len(discoveries),
		},
	}
}

// signalsFromVector rebuilds detector signals from the stored flat vector,
// in Signals.Vector order.
func signalsFromVector(v []float64) storm.Signals {
	var sig storm.Signals
	if len(v) > 0 {
		sig.PhiCoupling = v[0]
	}
	if len(v) > 1 {
		sig.PhiQuality = v[1]
	}
	if len(v) > 2 {
		sig.SpiralCoherence = v[2]
	}
	if len(v) > 3 {
		sig.EnergyCoupling = v[3]
	}
	return sig
}

// #endregion build

// #region output

func writeFixture(fixture replay.Fixture, outPath string) error {
	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote fixture to %s (%d bytes, %d observations)\n", outPath, len(data), len(fixture.Observations))
	return nil
}

// #endregion output
