package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestDefaultProbeConfig(t *testing.T) {
	cfg := DefaultProbeConfig()
	if !cfg.Enabled {
		t.Error("probing should be enabled by default")
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout: got %v, want 10s", cfg.Timeout)
	}
}

func TestDefaultProbeConfig_Env(t *testing.T) {
	t.Setenv("CATALOG_PROBE_ENABLED", "false")
	t.Setenv("CATALOG_PROBE_TIMEOUT", "3")

	cfg := DefaultProbeConfig()
	if cfg.Enabled {
		t.Error("CATALOG_PROBE_ENABLED=false should disable probing")
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("timeout: got %v, want 3s", cfg.Timeout)
	}
}

func TestProbe_Reachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method: got %s, want HEAD", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewProber(ProbeConfig{Timeout: 2 * time.Second, Enabled: true})
	res := p.Probe(context.Background(), Source{Name: "test", URL: srv.URL})

	if !res.Reachable {
		t.Errorf("expected reachable, got %+v", res)
	}
	if res.Status != http.StatusOK {
		t.Errorf("status: got %d, want 200", res.Status)
	}
	if res.Err != "" {
		t.Errorf("unexpected error: %s", res.Err)
	}
}

func TestProbe_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewProber(ProbeConfig{Timeout: 2 * time.Second, Enabled: true})
	res := p.Probe(context.Background(), Source{Name: "test", URL: srv.URL})

	if res.Reachable {
		t.Error("5xx should not count as reachable")
	}
	if res.Status != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503", res.Status)
	}
}

func TestProbe_Disabled(t *testing.T) {
	p := NewProber(ProbeConfig{Timeout: 2 * time.Second, Enabled: false})
	res := p.Probe(context.Background(), Source{Name: "test", URL: "http://example.invalid/"})

	if res.Reachable {
		t.Error("disabled prober should never report reachable")
	}
	if res.Err == "" {
		t.Error("disabled prober should explain itself")
	}
}

func TestProbe_BadURL(t *testing.T) {
	p := NewProber(ProbeConfig{Timeout: 2 * time.Second, Enabled: true})
	res := p.Probe(context.Background(), Source{Name: "bad", URL: "://not-a-url"})

	if res.Reachable {
		t.Error("bad URL should not be reachable")
	}
	if res.Err == "" {
		t.Error("bad URL should carry an error")
	}
}

func TestProbeAll_Report(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ok.Close()
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer down.Close()

	p := NewProber(ProbeConfig{Timeout: 2 * time.Second, Enabled: true})
	results := p.ProbeAll(context.Background(), []Source{
		{Name: "alive", URL: ok.URL},
		{Name: "gone", URL: down.URL},
	})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Reachable || results[1].Reachable {
		t.Errorf("reachability: got %+v", results)
	}

	report := FormatProbeReport(results)
	for _, want := range []string{"[SOURCE AVAILABILITY]", "alive", "gone", "ok", "down"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
