package catalog

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func outcome(strategy StrategyID, sig float64, accepted bool) OutcomeRecord {
	return OutcomeRecord{
		ScanID:       "scan-1",
		Domain:       DomainBioelectric,
		Scale:        ScaleMeso,
		Stakes:       StakesRoutine,
		StrategyID:   strategy,
		AttemptNum:   1,
		Significance: sig,
		Failure:      FailureNone,
		Accepted:     accepted,
		CreatedAt:    time.Now(),
	}
}

func TestBestStrategy_NoData(t *testing.T) {
	mem, err := NewScanMemory(newTestDB(t))
	if err != nil {
		t.Fatalf("NewScanMemory: %v", err)
	}

	id, _, err := mem.BestStrategy("bioelectric", "meso", "routine")
	if err != nil {
		t.Fatalf("BestStrategy: %v", err)
	}
	if id != "" {
		t.Errorf("got %q, want empty (no data)", id)
	}
}

func TestBestStrategy_BelowSampleThreshold(t *testing.T) {
	mem, err := NewScanMemory(newTestDB(t))
	if err != nil {
		t.Fatalf("NewScanMemory: %v", err)
	}

	// Two accepted samples are not enough to trust a strategy.
	for i := 0; i < 2; i++ {
		if err := mem.RecordOutcome(outcome(StrategyWideNet, 0.9, true)); err != nil {
			t.Fatalf("RecordOutcome: %v", err)
		}
	}

	id, _, err := mem.BestStrategy("bioelectric", "meso", "routine")
	if err != nil {
		t.Fatalf("BestStrategy: %v", err)
	}
	if id != "" {
		t.Errorf("got %q, want empty (below threshold)", id)
	}

	// Third sample crosses the threshold.
	if err := mem.RecordOutcome(outcome(StrategyWideNet, 0.9, true)); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}

	id, sig, err := mem.BestStrategy("bioelectric", "meso", "routine")
	if err != nil {
		t.Fatalf("BestStrategy: %v", err)
	}
	if id != StrategyWideNet {
		t.Errorf("got %q, want %q", id, StrategyWideNet)
	}
	if sig < 0.85 || sig > 0.95 {
		t.Errorf("weighted significance: got %.3f, want near 0.9", sig)
	}
}

func TestBestStrategy_PicksHigherSignificance(t *testing.T) {
	mem, err := NewScanMemory(newTestDB(t))
	if err != nil {
		t.Fatalf("NewScanMemory: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := mem.RecordOutcome(outcome(StrategyStandard, 0.4, true)); err != nil {
			t.Fatalf("RecordOutcome: %v", err)
		}
		if err := mem.RecordOutcome(outcome(StrategySpectral, 0.8, true)); err != nil {
			t.Fatalf("RecordOutcome: %v", err)
		}
	}

	id, _, err := mem.BestStrategy("bioelectric", "meso", "routine")
	if err != nil {
		t.Fatalf("BestStrategy: %v", err)
	}
	if id != StrategySpectral {
		t.Errorf("got %q, want %q", id, StrategySpectral)
	}
}

func TestBestStrategy_IgnoresRejected(t *testing.T) {
	mem, err := NewScanMemory(newTestDB(t))
	if err != nil {
		t.Fatalf("NewScanMemory: %v", err)
	}

	// Rejected attempts scored high but must not count.
	for i := 0; i < 3; i++ {
		if err := mem.RecordOutcome(outcome(StrategyStrict, 0.95, false)); err != nil {
			t.Fatalf("RecordOutcome: %v", err)
		}
	}

	id, _, err := mem.BestStrategy("bioelectric", "meso", "routine")
	if err != nil {
		t.Fatalf("BestStrategy: %v", err)
	}
	if id != "" {
		t.Errorf("got %q, want empty (rejected outcomes only)", id)
	}
}

func TestBestStrategy_ScopedToClass(t *testing.T) {
	mem, err := NewScanMemory(newTestDB(t))
	if err != nil {
		t.Fatalf("NewScanMemory: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := mem.RecordOutcome(outcome(StrategyFibonacciFirst, 0.7, true)); err != nil {
			t.Fatalf("RecordOutcome: %v", err)
		}
	}

	id, _, err := mem.BestStrategy("atmospheric", "macro", "routine")
	if err != nil {
		t.Fatalf("BestStrategy: %v", err)
	}
	if id != "" {
		t.Errorf("got %q, want empty (different class)", id)
	}
}
