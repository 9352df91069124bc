package catalog

// #region imports
import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// #endregion

// #region config

// ProbeConfig holds availability check parameters.
type ProbeConfig struct {
	Timeout time.Duration
	Enabled bool
}

// DefaultProbeConfig returns default probe configuration.
// Reads from env vars: CATALOG_PROBE_ENABLED, CATALOG_PROBE_TIMEOUT.
func DefaultProbeConfig() ProbeConfig {
	cfg := ProbeConfig{
		Timeout: 10 * time.Second,
		Enabled: true,
	}
	if v := os.Getenv("CATALOG_PROBE_ENABLED"); v != "" {
		cfg.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("CATALOG_PROBE_TIMEOUT"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.Timeout = time.Duration(sec) * time.Second
		}
	}
	return cfg
}

// #endregion config

// #region prober

// ProbeResult reports one source's availability.
type ProbeResult struct {
	Name      string
	URL       string
	Status    int
	Reachable bool
	Err       string
	Elapsed   time.Duration
}

// Prober checks catalog URLs with HEAD requests. It never fetches data;
// scan input stays local.
type Prober struct {
	cfg    ProbeConfig
	client *http.Client
}

// NewProber creates a prober with the given config.
func NewProber(cfg ProbeConfig) *Prober {
	return &Prober{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Probe sends a HEAD request to one source URL. Status codes below 400
// count as reachable.
func (p *Prober) Probe(ctx context.Context, src Source) ProbeResult {
	res := ProbeResult{Name: src.Name, URL: src.URL}
	if !p.cfg.Enabled {
		res.Err = "probe disabled"
		return res
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, src.URL, nil)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	res.Elapsed = time.Since(start)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	resp.Body.Close()

	res.Status = resp.StatusCode
	res.Reachable = resp.StatusCode < 400
	return res
}

// ProbeAll checks every source in order.
func (p *Prober) ProbeAll(ctx context.Context, sources []Source) []ProbeResult {
	out := make([]ProbeResult, 0, len(sources))
	for _, s := range sources {
		out = append(out, p.Probe(ctx, s))
	}
	return out
}

// #endregion prober

// #region report

// FormatProbeReport renders availability results as a fixed-width listing.
func FormatProbeReport(results []ProbeResult) string {
	var b strings.Builder
	b.WriteString("[SOURCE AVAILABILITY]\n")
	for _, r := range results {
		switch {
		case r.Err != "":
			b.WriteString(fmt.Sprintf("  %-32s err   %s\n", r.Name, r.Err))
		case r.Reachable:
			b.WriteString(fmt.Sprintf("  %-32s ok    %d  %s\n", r.Name, r.Status, r.Elapsed.Round(time.Millisecond)))
		default:
			b.WriteString(fmt.Sprintf("  %-32s down  %d  %s\n", r.Name, r.Status, r.Elapsed.Round(time.Millisecond)))
		}
	}
	return b.String()
}

// #endregion report
