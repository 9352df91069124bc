package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	_ "modernc.org/sqlite"

	"github.com/JinnZ2/Shadow-Hunting/internal/history"
	"github.com/JinnZ2/Shadow-Hunting/internal/logging"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the run history db")
	last := flag.Int("last", 20, "show N most recent versions or log entries")
	version := flag.String("version", "", "show single version detail")
	showLog := flag.Bool("log", false, "show the analysis log instead of versions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/runs.db [--last N] [--version id] [--log] [--json]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *showLog:
		err = runLogMode(store, *last, *jsonOut)
	case *version != "":
		err = runDetailMode(store, *version, *jsonOut)
	default:
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	VersionID string   `json:"version_id"`
	ParentID  string   `json:"parent_id,omitempty"`
	Kind      string   `json:"kind"`
	Label     string   `json:"label"`
	FieldNorm float64  `json:"field_norm"`
	Progress  *float64 `json:"progress,omitempty"`
	CreatedAt string   `json:"created_at"`
}

func runListMode(store *history.Store, last int, jsonOut bool) error {
	versions, err := store.ListVersions(last)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Fprintln(os.Stderr, "no versions found")
		return nil
	}

	// Store returns DESC, reverse for chronological order.
	rows := make([]listRow, len(versions))
	for i, rec := range versions {
		lr := listRow{
			VersionID: rec.VersionID,
			ParentID:  rec.ParentID,
			Kind:      rec.Meta.Kind,
			Label:     rec.Meta.Label,
			FieldNorm: vectorNorm(rec.FieldVector),
			CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
		if m := parseMetrics(rec.MetricsJSON); m != nil {
			p := m.Progress * 100
			lr.Progress = &p
		}
		rows[len(versions)-1-i] = lr
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s %-14s %-16s %10s %9s  %s\n",
		"Version", "Kind", "Label", "Norm", "Progress", "Time")
	for _, r := range rows {
		progress := "-"
		if r.Progress != nil {
			progress = fmt.Sprintf("%.1f%%", *r.Progress)
		}
		fmt.Printf("%-10s %-14s %-16s %10.4f %9s  %s\n",
			shortID(r.VersionID), r.Kind, r.Label, r.FieldNorm, progress, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	VersionID string               `json:"version_id"`
	ParentID  string               `json:"parent_id,omitempty"`
	Kind      string               `json:"kind"`
	Label     string               `json:"label"`
	CreatedAt string               `json:"created_at"`
	FieldDim  int                  `json:"field_dim"`
	FieldNorm float64              `json:"field_norm"`
	Metrics   *logging.RegenRecord `json:"metrics,omitempty"`
}

func runDetailMode(store *history.Store, versionID string, jsonOut bool) error {
	rec, err := store.GetVersion(versionID)
	if err != nil {
		return err
	}

	out := detailOutput{
		VersionID: rec.VersionID,
		ParentID:  rec.ParentID,
		Kind:      rec.Meta.Kind,
		Label:     rec.Meta.Label,
		CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		FieldDim:  len(rec.FieldVector),
		FieldNorm: vectorNorm(rec.FieldVector),
		Metrics:   parseMetrics(rec.MetricsJSON),
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Version:    %s\n", out.VersionID)
	fmt.Printf("Parent:     %s\n", out.ParentID)
	fmt.Printf("Kind:       %s\n", out.Kind)
	fmt.Printf("Label:      %s\n", out.Label)
	fmt.Printf("Created:    %s\n", out.CreatedAt)
	fmt.Printf("Field:      dim %d, norm %.4f\n", out.FieldDim, out.FieldNorm)

	if out.Metrics != nil {
		fmt.Printf("\nStep metrics:\n")
		fmt.Printf("  Hour:       %.1f\n", out.Metrics.Hour)
		fmt.Printf("  Progress:   %.1f%%\n", out.Metrics.Progress*100)
		fmt.Printf("  Coherence:  %.3f\n", out.Metrics.Coherence)
		fmt.Printf("  Energy:     %.1f\n", out.Metrics.Energy)
		fmt.Printf("  Predicted:  %s\n", out.Metrics.PredictedForm)
	}
	return nil
}

// #endregion detail-mode

// #region log-mode

func runLogMode(store *history.Store, last int, jsonOut bool) error {
	logger, err := logging.NewLogger(store.DB())
	if err != nil {
		return err
	}

	entries, err := logger.Recent(last)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no log entries found")
		return nil
	}

	// Recent returns newest first, reverse for chronological order.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	if jsonOut {
		return printJSON(entries)
	}

	fmt.Printf("%-5s %-10s %-9s %-12s %-36s %s\n",
		"ID", "Version", "Trigger", "Decision", "Reason", "Time")
	for _, e := range entries {
		fmt.Printf("%-5d %-10s %-9s %-12s %-36s %s\n",
			e.ID, shortID(e.RunVersion), e.Trigger, e.Decision,
			truncate(e.Reason, 36), e.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion log-mode

// #region output

func vectorNorm(v []float64) float64 {
	var sum float64
	for _, f := range v {
		sum += f * f
	}
	return math.Sqrt(sum)
}

func parseMetrics(metricsJSON string) *logging.RegenRecord {
	if metricsJSON == "" {
		return nil
	}
	var m logging.RegenRecord
	if err := json.Unmarshal([]byte(metricsJSON), &m); err != nil {
		return nil
	}
	return &m
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// #endregion output
