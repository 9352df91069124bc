package curiosity

import (
	"math"
	"testing"
	"time"

	"github.com/JinnZ2/Shadow-Hunting/internal/storm"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3, 0}, []float64{1, 2, 3, 0}, 1.0},
		{"orthogonal", []float64{1, 0, 0, 0}, []float64{0, 1, 0, 0}, 0.0},
		{"opposite", []float64{1, 0, 0, 0}, []float64{-1, 0, 0, 0}, -1.0},
		{"zero vector", []float64{0, 0, 0, 0}, []float64{1, 0, 0, 0}, 0.0},
		{"length mismatch", []float64{1, 0}, []float64{1, 0, 0}, 0.0},
	}
	for _, tt := range tests {
		if got := cosine(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("%s: cosine = %g, want %g", tt.name, got, tt.want)
		}
	}
}

func TestRecallGates(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	pool := []Discovery{
		{ID: "fresh-phi", StormKind: storm.KindPhiRatio, Signals: []float64{1, 0, 0, 0}, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "stale-phi", StormKind: storm.KindPhiRatio, Signals: []float64{0.9, 0.1, 0, 0}, CreatedAt: now.Add(-15 * 24 * time.Hour)},
		{ID: "orthogonal", StormKind: storm.KindPhiRatio, Signals: []float64{0, 1, 0, 0}, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "fresh-random", StormKind: storm.KindRandom, Signals: []float64{1, 0.05, 0, 0}, CreatedAt: now.Add(-1 * time.Hour)},
	}
	cfg := RecallConfig{
		SimilarityFloor: 0.3,
		HalfLife:        7 * 24 * time.Hour,
		PerKindCap:      1,
		TopK:            5,
	}

	got := recallFrom(now, pool, []float64{1, 0, 0, 0}, cfg)

	if got.Considered != 4 {
		t.Fatalf("considered = %d, want 4", got.Considered)
	}
	// The orthogonal discovery dies at the similarity gate.
	if got.AboveFloor != 3 {
		t.Fatalf("above floor = %d, want 3", got.AboveFloor)
	}
	// The stale phi discovery outranks nothing after 15 days of decay,
	// and the kind cap admits only one phi match anyway.
	if len(got.Matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(got.Matches))
	}
	if got.Matches[0].Discovery.ID != "fresh-phi" {
		t.Fatalf("top match = %s, want fresh-phi", got.Matches[0].Discovery.ID)
	}
	if got.Matches[1].Discovery.ID != "fresh-random" {
		t.Fatalf("second match = %s, want fresh-random", got.Matches[1].Discovery.ID)
	}
	if got.Matches[0].Score <= got.Matches[1].Score {
		t.Fatalf("scores out of order: %g then %g", got.Matches[0].Score, got.Matches[1].Score)
	}
}

func TestRecallHalfLifeWeighting(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	pool := []Discovery{
		{ID: "aged", StormKind: storm.KindPhiRatio, Signals: []float64{1, 0, 0, 0}, CreatedAt: now.Add(-7 * 24 * time.Hour)},
	}
	cfg := RecallConfig{SimilarityFloor: 0.3, HalfLife: 7 * 24 * time.Hour, TopK: 5}

	got := recallFrom(now, pool, []float64{1, 0, 0, 0}, cfg)
	if len(got.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(got.Matches))
	}
	// Exactly one half-life old: similarity 1 decays to 0.5.
	if math.Abs(got.Matches[0].Score-0.5) > 1e-9 {
		t.Fatalf("score = %g, want 0.5", got.Matches[0].Score)
	}
	if math.Abs(got.Matches[0].Similarity-1.0) > 1e-12 {
		t.Fatalf("similarity = %g, want 1", got.Matches[0].Similarity)
	}
}

func TestRecallTopK(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	var pool []Discovery
	for i := 0; i < 6; i++ {
		pool = append(pool, Discovery{
			ID:        string(rune('a' + i)),
			StormKind: storm.KindPhiRatio,
			Signals:   []float64{1, 0, 0, 0},
			CreatedAt: now,
		})
	}
	cfg := RecallConfig{SimilarityFloor: 0.3, TopK: 3}

	got := recallFrom(now, pool, []float64{1, 0, 0, 0}, cfg)
	if len(got.Matches) != 3 {
		t.Fatalf("matches = %d, want top 3", len(got.Matches))
	}
}

func TestRecallNothingAboveFloor(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	pool := []Discovery{
		{ID: "off-axis", StormKind: storm.KindRandom, Signals: []float64{0, 0, 1, 0}, CreatedAt: now},
	}
	cfg := DefaultRecallConfig()

	got := recallFrom(now, pool, []float64{1, 0, 0, 0}, cfg)
	if len(got.Matches) != 0 || got.AboveFloor != 0 {
		t.Fatalf("recall = %+v, want empty", got)
	}
	if got.Reason == "" {
		t.Fatal("expected a gate reason")
	}
}

func TestRecallFromStore(t *testing.T) {
	s := tempStore(t)
	e := NewEngine(DefaultConfig())

	sig := storm.Signals{PhiCoupling: 0.3, PhiQuality: 0.2, SpiralCoherence: 0.9, EnergyCoupling: 0.1}
	obs := e.Observe(sig, storm.KindPhiRatio)
	if _, err := s.Save(obs); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Recall(s, sig, DefaultRecallConfig())
	if err != nil {
		t.Fatalf("Recall: %v", err)
	}
	// A just-saved identical signature recalls itself at similarity 1.
	if len(got.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(got.Matches))
	}
	if math.Abs(got.Matches[0].Similarity-1.0) > 1e-9 {
		t.Fatalf("similarity = %g, want 1", got.Matches[0].Similarity)
	}
}
