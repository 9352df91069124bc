package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"github.com/JinnZ2/Shadow-Hunting/internal/catalog"
)

// #region main

func main() {
	dbPath := envOr("HUNT_DB", "shadow_hunt.db")

	fmt.Println("=== Source Graph Bootstrap ===")
	fmt.Printf("  DB: %s\n", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	graph, err := catalog.NewSourceGraph(db)
	if err != nil {
		log.Fatalf("init source graph: %v", err)
	}

	sources := catalog.Sources()
	domains := catalog.Domains()
	fmt.Printf("  catalog: %d sources across %d domains\n", len(sources), len(domains))
	for _, d := range domains {
		fmt.Printf("    %-14s %d sources\n", d, len(catalog.SourcesByDomain(d)))
	}

	fmt.Println("\n--- Seeding Association Edges ---")
	written, err := catalog.Seed(graph, sources)
	if err != nil {
		log.Fatalf("seed graph: %v", err)
	}
	fmt.Printf("  seed pass touched %d source pairs\n", written)

	counts, err := edgeCounts(db)
	if err != nil {
		log.Fatalf("count edges: %v", err)
	}
	for _, c := range counts {
		fmt.Printf("    %-16s %d edges\n", c.kind, c.n)
	}

	fmt.Println("\n=== Bootstrap Complete ===")
	fmt.Println("  suggest walks are now available in the hunt session")
}

// #endregion main

// #region edge-counts

type kindCount struct {
	kind string
	n    int
}

func edgeCounts(db *sql.DB) ([]kindCount, error) {
	rows, err := db.Query(`SELECT kind, COUNT(*) FROM source_edges GROUP BY kind ORDER BY kind`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []kindCount
	for rows.Next() {
		var c kindCount
		if err := rows.Scan(&c.kind, &c.n); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// #endregion edge-counts

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
