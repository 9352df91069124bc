package catalog

// #region imports
import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"
)

// #endregion

// #region schema

const sourceEdgesSchema = `
CREATE TABLE IF NOT EXISTS source_edges (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    source_name TEXT NOT NULL,
    target_name TEXT NOT NULL,
    edge_kind   TEXT NOT NULL,
    weight      REAL NOT NULL DEFAULT 0.1,
    created_at  TEXT NOT NULL,
    updated_at  TEXT NOT NULL,
    UNIQUE(source_name, target_name, edge_kind)
);
CREATE INDEX IF NOT EXISTS idx_source_edges_from ON source_edges(source_name);
CREATE INDEX IF NOT EXISTS idx_source_edges_to ON source_edges(target_name);
`

// #endregion

// #region types

// Edge kinds.
const (
	EdgeSharedDomain  = "shared_domain"
	EdgeSharedShadow  = "shared_shadow"
	EdgeConfirmedPair = "confirmed_pair"
)

// Edge is a weighted association between two catalog sources.
type Edge struct {
	ID         int64
	SourceName string
	TargetName string
	Kind       string
	Weight     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WalkResult holds an ordered path from a graph walk.
type WalkResult struct {
	Names  []string  // source names in walk order
	Scores []float64 // cumulative scores at each node
}

// SourceGraph manages the source_edges table.
type SourceGraph struct {
	db *sql.DB
}

// #endregion

// #region constructor

// NewSourceGraph creates tables and returns a SourceGraph.
func NewSourceGraph(db *sql.DB) (*SourceGraph, error) {
	if _, err := db.Exec(sourceEdgesSchema); err != nil {
		return nil, fmt.Errorf("source graph schema: %w", err)
	}
	return &SourceGraph{db: db}, nil
}

// #endregion

// #region add-edge

// AddEdge inserts a new edge. An existing edge (same source, target, kind) is left untouched.
func (g *SourceGraph) AddEdge(sourceName, targetName, kind string, weight float64) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := g.db.Exec(
		`INSERT OR IGNORE INTO source_edges (source_name, target_name, edge_kind, weight, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sourceName, targetName, kind, weight, now, now,
	)
	return err
}

// #endregion

// #region strengthen

// Strengthen increases the weight of an edge by delta, capped at 1.0.
// A missing edge is created with weight=delta.
func (g *SourceGraph) Strengthen(sourceName, targetName, kind string, delta float64) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := g.db.Exec(
		`INSERT INTO source_edges (source_name, target_name, edge_kind, weight, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(source_name, target_name, edge_kind) DO UPDATE SET
		   weight = MIN(1.0, source_edges.weight + ?),
		   updated_at = ?`,
		sourceName, targetName, kind, delta, now, now,
		delta, now,
	)
	return err
}

// #endregion

// #region neighbors

// Neighbors returns all edges from sourceName with weight >= minWeight, heaviest first.
func (g *SourceGraph) Neighbors(sourceName string, minWeight float64) ([]Edge, error) {
	rows, err := g.db.Query(
		`SELECT id, source_name, target_name, edge_kind, weight, created_at, updated_at
		 FROM source_edges
		 WHERE source_name = ? AND weight >= ?
		 ORDER BY weight DESC`,
		sourceName, minWeight,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		var e Edge
		var createdAt, updatedAt string
		if err := rows.Scan(&e.ID, &e.SourceName, &e.TargetName, &e.Kind, &e.Weight, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// #endregion

// #region suggest

// Suggest performs a BFS from entryName, following edges with weight >= minWeight,
// up to maxDepth hops and maxNodes total. The result lists sources worth
// checking next, in visit order with cumulative scores.
func (g *SourceGraph) Suggest(entryName string, maxDepth int, minWeight float64, maxNodes int) (WalkResult, error) {
	if maxDepth <= 0 {
		maxDepth = 5
	}
	if maxNodes <= 0 {
		maxNodes = 10
	}

	result := WalkResult{
		Names:  []string{entryName},
		Scores: []float64{1.0},
	}
	visited := map[string]bool{entryName: true}

	// BFS queue: (name, depth, cumulativeScore)
	type queueItem struct {
		name  string
		depth int
		score float64
	}
	queue := []queueItem{{entryName, 0, 1.0}}

	for len(queue) > 0 {
		if len(result.Names) >= maxNodes {
			break
		}

		current := queue[0]
		queue = queue[1:]

		if current.depth >= maxDepth {
			continue
		}

		neighbors, err := g.Neighbors(current.name, minWeight)
		if err != nil {
			return result, fmt.Errorf("suggest neighbors: %w", err)
		}

		for _, edge := range neighbors {
			if len(result.Names) >= maxNodes {
				break
			}
			if visited[edge.TargetName] {
				continue
			}
			visited[edge.TargetName] = true
			cumScore := current.score * edge.Weight
			result.Names = append(result.Names, edge.TargetName)
			result.Scores = append(result.Scores, cumScore)
			queue = append(queue, queueItem{edge.TargetName, current.depth + 1, cumScore})
		}
	}

	return result, nil
}

// #endregion

// #region decay

// DecayAll applies exponential decay to all edge weights based on time since
// last update. Edges that fall below 0.01 are deleted; returns the delete count.
func (g *SourceGraph) DecayAll(halfLifeHours float64) (int64, error) {
	now := time.Now().UTC()
	halfLifeSec := halfLifeHours * 3600.0

	rows, err := g.db.Query(
		`SELECT id, weight, updated_at FROM source_edges`,
	)
	if err != nil {
		return 0, err
	}

	type decayItem struct {
		id        int64
		newWeight float64
	}
	var updates []decayItem
	var deletes []int64

	for rows.Next() {
		var id int64
		var weight float64
		var updatedAt string
		if err := rows.Scan(&id, &weight, &updatedAt); err != nil {
			rows.Close()
			return 0, err
		}
		t, _ := time.Parse(time.RFC3339, updatedAt)
		ageSec := now.Sub(t).Seconds()
		if ageSec <= 0 {
			continue
		}
		decayed := weight * math.Exp(-ageSec*math.Ln2/halfLifeSec)
		if decayed < 0.01 {
			deletes = append(deletes, id)
		} else {
			updates = append(updates, decayItem{id, decayed})
		}
	}
	rows.Close()

	nowStr := now.Format(time.RFC3339)
	for _, u := range updates {
		if _, err := g.db.Exec(`UPDATE source_edges SET weight = ?, updated_at = ? WHERE id = ?`, u.newWeight, nowStr, u.id); err != nil {
			return 0, err
		}
	}
	for _, id := range deletes {
		if _, err := g.db.Exec(`DELETE FROM source_edges WHERE id = ?`, id); err != nil {
			return 0, err
		}
	}

	return int64(len(deletes)), nil
}

// #endregion

// #region remove

// RemoveSource deletes all edges where name is either endpoint.
func (g *SourceGraph) RemoveSource(name string) error {
	_, err := g.db.Exec(
		`DELETE FROM source_edges WHERE source_name = ? OR target_name = ?`,
		name, name,
	)
	return err
}

// #endregion

// #region seed

// Seed weights for bootstrap edges.
const (
	sharedDomainWeight = 0.3
	sharedShadowWeight = 0.15
)

// shadowTerms is the vocabulary that marks two sources as hiding the same
// kind of shadow even across domains.
var shadowTerms = []string{
	"supplementary", "noise", "time series", "time-series",
	"discarded", "fluctuations", "waste", "residual", "failed",
}

// Seed bootstraps the association graph from a source list: same-domain
// pairs in both directions, then cross-domain pairs whose shadow locations
// share vocabulary. Returns the number of edges written.
func Seed(g *SourceGraph, sources []Source) (int, error) {
	count := 0
	for i := range sources {
		for j := range sources {
			if i == j {
				continue
			}
			a, b := sources[i], sources[j]
			switch {
			case a.Domain == b.Domain:
				if err := g.AddEdge(a.Name, b.Name, EdgeSharedDomain, sharedDomainWeight); err != nil {
					return count, err
				}
				count++
			case sharesShadowTerm(a.ShadowLocation, b.ShadowLocation):
				if err := g.AddEdge(a.Name, b.Name, EdgeSharedShadow, sharedShadowWeight); err != nil {
					return count, err
				}
				count++
			}
		}
	}
	return count, nil
}

func sharesShadowTerm(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	for _, term := range shadowTerms {
		if strings.Contains(la, term) && strings.Contains(lb, term) {
			return true
		}
	}
	return false
}

// #endregion

// #region record-discovery

// RecordDiscovery strengthens confirmed_pair edges, in both directions,
// between every source of the two domains a confirmed discovery linked.
// Returns the number of edges touched.
func RecordDiscovery(g *SourceGraph, a, b Domain, delta float64) (int, error) {
	count := 0
	for _, src := range SourcesByDomain(a) {
		for _, dst := range SourcesByDomain(b) {
			if src.Name == dst.Name {
				continue
			}
			if err := g.Strengthen(src.Name, dst.Name, EdgeConfirmedPair, delta); err != nil {
				return count, err
			}
			count++
			if err := g.Strengthen(dst.Name, src.Name, EdgeConfirmedPair, delta); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// #endregion
