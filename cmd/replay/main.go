package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	_ "modernc.org/sqlite"

	"github.com/JinnZ2/Shadow-Hunting/internal/curiosity"
	"github.com/JinnZ2/Shadow-Hunting/internal/replay"
	"github.com/JinnZ2/Shadow-Hunting/internal/storm"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "re-replay the persisted discovery sequence (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	last := flag.Int("last", 50, "number of persisted discoveries to replay (DB mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/discoveries.db [--last N]")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *last)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	fmt.Printf("replaying %q: %d observations\n\n", f.Description, len(f.Observations))
	results, summary := replay.ReplayFromFixture(f)

	fmt.Printf("%-6s %-14s %-24s %-24s %s\n", "Storm", "Kind", "Expected", "Replayed", "Match")
	for _, r := range results {
		match := "DIFF"
		if r.Matched {
			match = "OK"
		}
		fmt.Printf("%-6d %-14s %-24s %-24s %s\n",
			r.StormNumber, r.Kind,
			confirmState(r.WantConfirmed, string(r.WantState)),
			confirmState(r.Got.Confirmed, string(r.Got.State)),
			match)
	}

	fmt.Printf("\nSummary: %d steps, %d match, %d diverge\n",
		summary.TotalSteps, summary.Matches, len(summary.Mismatches))
	for _, m := range summary.Mismatches {
		fmt.Printf("  %s\n", m)
	}

	if summary.WantHappiness != 0 {
		verdict := "within tolerance"
		if !summary.WithinTolerance {
			verdict = "OUTSIDE tolerance"
		}
		fmt.Printf("final happiness: got %.4f, want %.4f (delta %+.4f, %s)\n",
			summary.FinalHappiness, summary.WantHappiness, summary.JoyDelta, verdict)
	}
	fmt.Printf("final state: %s\n", summary.FinalState)

	if len(summary.Mismatches) > 0 || !summary.WithinTolerance {
		return 1
	}
	return 0
}

// #endregion fixture-mode

// #region db-mode

// joyTolerance bounds the per-step joy drift a DB replay accepts. The
// replay starts a fresh engine under the reference config, so stored runs
// that began mid-session or used custom parameters diverge here.
const joyTolerance = 1e-6

func runDBMode(dbPath string, last int) int {
	store, err := curiosity.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	discoveries, err := store.Recent(last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load discoveries: %v\n", err)
		return 2
	}
	if len(discoveries) == 0 {
		fmt.Fprintf(os.Stderr, "no discoveries found in %s\n", dbPath)
		return 2
	}

	// Recent returns newest first; replay runs chronologically.
	for i, j := 0, len(discoveries)-1; i < j; i, j = i+1, j-1 {
		discoveries[i], discoveries[j] = discoveries[j], discoveries[i]
	}

	fmt.Printf("replaying %d persisted discoveries from %s\n\n", len(discoveries), dbPath)
	fmt.Printf("%-6s %-14s %-24s %-24s %s\n", "Storm", "Kind", "Stored", "Replayed", "Match")

	engine := curiosity.NewEngine(curiosity.DefaultConfig())
	matches := 0
	for i, d := range discoveries {
		obs := engine.Observe(signalsFromVector(d.Signals), d.StormKind)

		matched := obs.Confirmed == d.Confirmed && math.Abs(obs.JoyGain-d.Joy) <= joyTolerance
		match := "DIFF"
		if matched {
			match = "OK"
			matches++
		}
		fmt.Printf("%-6d %-14s %-24s %-24s %s\n",
			i+1, d.StormKind,
			confirmJoy(d.Confirmed, d.Joy),
			confirmJoy(obs.Confirmed, obs.JoyGain),
			match)
	}

	diverge := len(discoveries) - matches
	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n", len(discoveries), matches, diverge)
	fmt.Printf("final: happiness %.4f, state %s\n", engine.Happiness(), engine.State())
	if diverge > 0 {
		fmt.Println("note: joy divergence usually means the stored run used custom parameters or started mid-session")
		return 1
	}
	return 0
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

// #endregion db-mode

// #region output

func confirmState(confirmed bool, state string) string {
	if confirmed {
		return "confirmed " + state
	}
	return "unconfirmed " + state
}

func confirmJoy(confirmed bool, joy float64) string {
	if confirmed {
		return fmt.Sprintf("confirmed joy %.3f", joy)
	}
	return fmt.Sprintf("unconfirmed joy %.3f", joy)
}

// #endregion output
