package catalog

import (
	"strings"
	"testing"
)

func TestSources_Registry(t *testing.T) {
	all := Sources()
	if len(all) != 13 {
		t.Fatalf("expected 13 sources, got %d", len(all))
	}

	seen := map[string]bool{}
	for _, s := range all {
		if s.Name == "" || s.URL == "" || s.ShadowLocation == "" || s.SearchStrategy == "" {
			t.Errorf("incomplete source: %+v", s)
		}
		if !strings.HasPrefix(s.URL, "https://") {
			t.Errorf("source %q has non-https URL %q", s.Name, s.URL)
		}
		if seen[s.Name] {
			t.Errorf("duplicate source name %q", s.Name)
		}
		seen[s.Name] = true
	}

	// Every domain should have at least two sources to walk between.
	for _, d := range Domains() {
		if got := len(SourcesByDomain(d)); got < 2 {
			t.Errorf("domain %q has %d sources, want >= 2", d, got)
		}
	}
}

func TestSources_CopyIsolated(t *testing.T) {
	a := Sources()
	a[0].Name = "clobbered"
	b := Sources()
	if b[0].Name == "clobbered" {
		t.Error("Sources should return a copy, not the registry itself")
	}
}

func TestSourceByName(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantURL string
		wantOK  bool
	}{
		{"exact", "PlanMine", "https://planmine.mpi-cbg.de/", true},
		{"case-insensitive", "planmine", "https://planmine.mpi-cbg.de/", true},
		{"padded", "  hurdat2  ", "https://www.nhc.noaa.gov/data/hurdat/", true},
		{"multi-word", "gene expression omnibus", "https://www.ncbi.nlm.nih.gov/geo/", true},
		{"unknown", "atlantis archive", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, ok := SourceByName(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if ok && src.URL != tt.wantURL {
				t.Errorf("url: got %q, want %q", src.URL, tt.wantURL)
			}
		})
	}
}

func TestProtocol(t *testing.T) {
	tests := []struct {
		name      string
		domain    Domain
		wantTitle string
		wantItem  string
	}{
		{"bioelectric", DomainBioelectric, "planaria regeneration shadow search", "head voltage, -50 to -70 mV"},
		{"neural", DomainNeural, "brain field coupling shadow search", "theta/alpha ratio near 0.618"},
		{"botanical", DomainBotanical, "photosynthesis coupling shadow search", "chlorophyll a/b spacing in photosystem II"},
		{"atmospheric", DomainAtmospheric, "hurricane geometric coupling shadow search", "spiral angle against the golden angle, 137.5 degrees"},
		{"cosmic", DomainCosmic, "solar and tidal coupling shadow search", "amplitude ratio of consecutive sunspot cycles"},
		{"generic", DomainGeneric, "generic shadow search", "non-significant results above p 0.05"},
		{"unknown-falls-back", Domain("volcanic"), "generic shadow search", "discarded pilot studies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Protocol(tt.domain)
			if p.Title != tt.wantTitle {
				t.Fatalf("title: got %q, want %q", p.Title, tt.wantTitle)
			}
			rendered := p.Render()
			if !strings.Contains(rendered, tt.wantItem) {
				t.Errorf("rendered protocol missing %q:\n%s", tt.wantItem, rendered)
			}
		})
	}
}

func TestProtocolRender_Header(t *testing.T) {
	out := Protocol(DomainNeural).Render()
	if !strings.HasPrefix(out, "[BRAIN FIELD COUPLING SHADOW SEARCH]\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "\nshadow locations:\n") {
		t.Errorf("missing section heading:\n%s", out)
	}
	if !strings.Contains(out, "  - ") {
		t.Errorf("items should be rendered as list entries:\n%s", out)
	}
}

func TestSourceDescribe(t *testing.T) {
	src, ok := SourceByName("OpenNeuro")
	if !ok {
		t.Fatal("OpenNeuro missing from registry")
	}

	out := src.Describe()
	for _, want := range []string{"OpenNeuro (neural)", "https://openneuro.org/", "shadow:", "strategy:"} {
		if !strings.Contains(out, want) {
			t.Errorf("describe missing %q:\n%s", want, out)
		}
	}
}
