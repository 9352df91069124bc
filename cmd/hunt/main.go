package main

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/JinnZ2/Shadow-Hunting/internal/catalog"
	"github.com/JinnZ2/Shadow-Hunting/internal/plot"
	"github.com/JinnZ2/Shadow-Hunting/internal/shadow"
)

// discoveryBar is the significance a clean scan needs before the session
// counts it as a discovery and strengthens cross-domain edges.
const discoveryBar = 0.5

// #region main

func main() {
	dataPath := flag.String("data", "", "scan a JSON or CSV series file and exit")
	desc := flag.String("desc", "", "dataset description used for classification")
	domain := flag.String("domain", "", "print the search protocol for a domain and exit")
	sources := flag.Bool("sources", false, "list the source catalog and exit")
	probe := flag.Bool("probe", false, "probe source availability and exit")
	ledger := flag.String("ledger", "", "print an energy ledger (brain|photosynthesis|planaria) and exit")
	chart := flag.String("chart", "", "write the brain/photosynthesis energy budget chart to this PNG and exit")
	dbPath := flag.String("db", envOr("HUNT_DB", "shadow_hunt.db"), "SQLite db for scan memory and the source graph")
	flag.Parse()

	switch {
	case *sources:
		printSources("")
		return
	case *domain != "":
		fmt.Print(catalog.Protocol(catalog.Domain(*domain)).Render())
		return
	case *probe:
		runProbe()
		return
	case *ledger != "":
		if err := printLedger(*ledger); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		return
	case *chart != "":
		if err := plot.EnergyBudgetChart(shadow.BrainLedger(), shadow.PhotosynthesisLedger(), *chart); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote energy budget chart to %s\n", *chart)
		return
	}

	session, err := newSession(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	if *dataPath != "" {
		if err := session.scanFile(*dataPath, *desc); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	session.repl()
}

// #endregion main

// #region session

// session holds the hunter, the source graph, and the scans run so far.
type session struct {
	db            *sql.DB
	hunter        *catalog.Hunter
	graph         *catalog.SourceGraph
	hunts         []catalog.HuntResult
	lastDiscovery catalog.Domain // domain of the previous discovery, for cross-linking
}

func newSession(dbPath string) (*session, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	hunter, err := catalog.NewHunter(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	graph, err := catalog.NewSourceGraph(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &session{db: db, hunter: hunter, graph: graph}, nil
}

func (s *session) Close() error {
	return s.db.Close()
}

// #endregion session

// #region scan

func (s *session) scanFile(path, desc string) error {
	series, err := loadSeries(path)
	if err != nil {
		return err
	}
	if desc == "" {
		desc = path
	}

	result, err := s.hunter.Hunt(catalog.HuntInput{Description: desc, Series: series})
	if err != nil {
		return err
	}
	s.hunts = append(s.hunts, result)
	s.printHunt(result)
	return nil
}

func (s *session) printHunt(result catalog.HuntResult) {
	fmt.Printf("\n=== Hunt %s ===\n", shortID(result.ScanID))
	fmt.Printf("  class: domain=%s scale=%s stakes=%s\n",
		result.Class.Domain, result.Class.Scale, result.Class.Stakes)

	fmt.Printf("\n  %-3s %-16s %12s %-20s\n", "#", "Strategy", "Significance", "Failure")
	for i, a := range result.Attempts {
		mark := ""
		if i == result.Accepted {
			mark = "  <- accepted"
		}
		fmt.Printf("  %-3d %-16s %12.2f %-20s%s\n",
			i, a.Strategy, a.Evaluation.Significance, a.Evaluation.Failure, mark)
	}

	fmt.Println()
	fmt.Print(indent(result.Final().Report(), "  "))

	if isDiscovery(result.Evaluation()) {
		fmt.Printf("\n  discovery: significance %.2f clears the %.2f bar\n",
			result.Evaluation().Significance, discoveryBar)
		s.linkDiscovery(result.Class.Domain)
	} else {
		fmt.Printf("\n  no discovery: significance %.2f, failure %s\n",
			result.Evaluation().Significance, result.Evaluation().Failure)
	}
}

// linkDiscovery strengthens confirmed-pair edges when two consecutive
// discoveries land in different domains.
func (s *session) linkDiscovery(d catalog.Domain) {
	if s.lastDiscovery != "" && s.lastDiscovery != d {
		n, err := catalog.RecordDiscovery(s.graph, s.lastDiscovery, d, 0.2)
		if err != nil {
			fmt.Printf("  graph error: %v\n", err)
		} else {
			fmt.Printf("  strengthened %d cross-domain edges (%s <-> %s)\n", n, s.lastDiscovery, d)
		}
	}
	s.lastDiscovery = d
}

func isDiscovery(eval catalog.ScanEvaluation) bool {
	return eval.Failure == catalog.FailureNone && eval.Significance >= discoveryBar
}

// #endregion scan

// #region repl

func (s *session) repl() {
	fmt.Println("Shadow hunt session ready.")
	fmt.Println("commands: scan <file> [description] | sources [domain] | protocol <domain> | suggest <source> | report | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		args := fields[1:]

		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return
		case "scan":
			if len(args) == 0 {
				fmt.Println("usage: scan <file> [description]")
				continue
			}
			if err := s.scanFile(args[0], strings.Join(args[1:], " ")); err != nil {
				fmt.Printf("scan error: %v\n", err)
			}
		case "sources":
			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}
			printSources(filter)
		case "protocol":
			if len(args) == 0 {
				fmt.Printf("usage: protocol <domain>  (domains: %s)\n", domainList())
				continue
			}
			fmt.Print(catalog.Protocol(catalog.Domain(args[0])).Render())
		case "suggest":
			if len(args) == 0 {
				fmt.Println("usage: suggest <source name>")
				continue
			}
			s.suggest(strings.Join(args, " "))
		case "report":
			s.report()
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func (s *session) suggest(name string) {
	src, ok := findSource(name)
	if !ok {
		fmt.Printf("no source matching %q in the catalog\n", name)
		return
	}

	walk, err := s.graph.Suggest(src.Name, 3, 0.05, 8)
	if err != nil {
		fmt.Printf("suggest error: %v\n", err)
		return
	}
	if len(walk.Names) <= 1 {
		fmt.Printf("no associations from %s yet (run bootstrap-graph to seed the catalog)\n", src.Name)
		return
	}

	fmt.Printf("suggested search order from %s:\n", src.Name)
	for i, n := range walk.Names {
		fmt.Printf("  %d. %-32s score %.3f\n", i+1, n, walk.Scores[i])
	}
}

func (s *session) report() {
	fmt.Printf("\n=== Session Report ===\n")
	if len(s.hunts) == 0 {
		fmt.Println("  no scans yet")
		return
	}

	discoveries := 0
	fmt.Printf("  %-3s %-10s %-12s %-16s %12s  %s\n",
		"#", "Scan", "Domain", "Strategy", "Significance", "Result")
	for i, h := range s.hunts {
		eval := h.Evaluation()
		verdict := "miss"
		if isDiscovery(eval) {
			verdict = "discovery"
			discoveries++
		}
		fmt.Printf("  %-3d %-10s %-12s %-16s %12.2f  %s\n",
			i+1, shortID(h.ScanID), h.Class.Domain, h.Attempts[h.Accepted].Strategy,
			eval.Significance, verdict)
	}
	fmt.Printf("\n  scans %d | discoveries %d | adaptive %v\n", len(s.hunts), discoveries, s.hunter.Adaptive())
}

// #endregion repl

// #region catalog-output

func printSources(filter string) {
	if filter != "" {
		list := catalog.SourcesByDomain(catalog.Domain(filter))
		if len(list) == 0 {
			fmt.Printf("no sources for domain %q (domains: %s)\n", filter, domainList())
			return
		}
		for _, src := range list {
			fmt.Println(src.Describe())
		}
		return
	}

	all := catalog.Sources()
	fmt.Printf("=== Source Catalog: %d sources ===\n\n", len(all))
	for _, d := range catalog.Domains() {
		for _, src := range catalog.SourcesByDomain(d) {
			fmt.Println(src.Describe())
		}
	}
}

func runProbe() {
	prober := catalog.NewProber(catalog.DefaultProbeConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	fmt.Print(catalog.FormatProbeReport(prober.ProbeAll(ctx, catalog.Sources())))
}

func findSource(name string) (catalog.Source, bool) {
	if src, ok := catalog.SourceByName(name); ok {
		return src, true
	}
	lower := strings.ToLower(name)
	for _, src := range catalog.Sources() {
		if strings.Contains(strings.ToLower(src.Name), lower) {
			return src, true
		}
	}
	return catalog.Source{}, false
}

func domainList() string {
	domains := catalog.Domains()
	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}

func printLedger(name string) error {
	switch strings.ToLower(name) {
	case "brain":
		fmt.Print(shadow.BrainLedger().Report())
	case "photosynthesis", "photo":
		fmt.Print(shadow.PhotosynthesisLedger().Report())
	case "planaria":
		fmt.Print(shadow.PlanariaCase().Report())
	default:
		return fmt.Errorf("unknown ledger %q (brain, photosynthesis, planaria)", name)
	}
	return nil
}

// #endregion catalog-output

// #region series-loading

// loadSeries reads a numeric series from a JSON array or a CSV file.
func loadSeries(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		var series []float64
		if err := json.Unmarshal(data, &series); err != nil {
			return nil, fmt.Errorf("parse %s: expected a JSON array of numbers: %w", path, err)
		}
		return series, nil
	}
	return parseCSV(path, data)
}

// parseCSV flattens numeric cells row by row. A non-numeric first row is
// treated as a header and skipped.
func parseCSV(path string, data []byte) ([]float64, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var series []float64
	for i, row := range records {
		vals := make([]float64, 0, len(row))
		numeric := true
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				numeric = false
				break
			}
			vals = append(vals, v)
		}
		if !numeric {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("parse %s: row %d is not numeric", path, i+1)
		}
		series = append(series, vals...)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no numeric values in %s", path)
	}
	return series, nil
}

// #endregion series-loading

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// #endregion helpers
