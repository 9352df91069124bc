package curiosity

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/JinnZ2/Shadow-Hunting/internal/storm"
)

// #region config

// RecallConfig holds thresholds and limits for the 3-gate recall
// pipeline.
type RecallConfig struct {
	SimilarityFloor float64       // Gate 1: min cosine similarity
	HalfLife        time.Duration // Gate 2: recency down-weighting
	PerKindCap      int           // Gate 3: max matches per storm kind
	TopK            int           // max matches overall
	Pool            int           // how many recent discoveries to consider
}

// DefaultRecallConfig returns sensible defaults for discovery recall.
func DefaultRecallConfig() RecallConfig {
	return RecallConfig{
		SimilarityFloor: 0.3,
		HalfLife:        7 * 24 * time.Hour,
		PerKindCap:      2,
		TopK:            5,
		Pool:            100,
	}
}

// #endregion config

// #region types

// Match is one recalled discovery with its ranking scores.
type Match struct {
	Discovery  Discovery
	Similarity float64
	Score      float64 // similarity weighted by recency
}

// RecallResult captures the outcome of the 3-gate recall pipeline.
type RecallResult struct {
	Considered int     // discoveries examined
	AboveFloor int     // discoveries past the similarity gate
	Matches    []Match // final matches after all gates
	Reason     string  // human-readable explanation
}

// #endregion types

// #region recall

// Recall runs the 3-gate recall pipeline over stored discoveries:
//  1. Similarity gate: drop discoveries below the cosine floor
//  2. Recency gate: half-life weighting of the similarity score
//  3. Diversity gate: cap matches per storm kind, then top-k
func Recall(s *Store, sig storm.Signals, cfg RecallConfig) (RecallResult, error) {
	pool, err := s.Recent(cfg.Pool)
	if err != nil {
		return RecallResult{}, fmt.Errorf("recall pool: %w", err)
	}
	return recallFrom(time.Now().UTC(), pool, sig.Vector(), cfg), nil
}

func recallFrom(now time.Time, pool []Discovery, vec []float64, cfg RecallConfig) RecallResult {
	result := RecallResult{Considered: len(pool)}

	var ranked []Match
	for _, d := range pool {
		sim := cosine(vec, d.Signals)
		if sim < cfg.SimilarityFloor {
			continue
		}
		result.AboveFloor++

		weight := 1.0
		if cfg.HalfLife > 0 {
			age := now.Sub(d.CreatedAt)
			weight = math.Pow(0.5, age.Hours()/cfg.HalfLife.Hours())
		}
		ranked = append(ranked, Match{Discovery: d, Similarity: sim, Score: sim * weight})
	}

	if result.AboveFloor == 0 {
		result.Reason = "gate1: no discoveries above similarity floor"
		return result
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	perKind := make(map[string]int)
	for _, m := range ranked {
		if cfg.PerKindCap > 0 && perKind[m.Discovery.StormKind] >= cfg.PerKindCap {
			continue
		}
		perKind[m.Discovery.StormKind]++
		result.Matches = append(result.Matches, m)
		if cfg.TopK > 0 && len(result.Matches) >= cfg.TopK {
			break
		}
	}

	result.Reason = fmt.Sprintf("recalled %d discoveries (gate1=%d, considered=%d)",
		len(result.Matches), result.AboveFloor, result.Considered)
	return result
}

// #endregion recall

// #region cosine

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na < 1e-12 || nb < 1e-12 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

// #endregion cosine
