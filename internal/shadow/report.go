package shadow

import (
	"fmt"
	"strings"
)

// #region ledger report

// Report renders the ledger as a plain-text block: booked lines, the
// shadow reallocation, the equation boundaries, and the coupling
// scales.
func (l *Ledger) Report() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s ENERGY LEDGER]\n", strings.ToUpper(l.System)))
	b.WriteString(fmt.Sprintf("budget %.0f%%: %.0f%% booked as output, %.0f%% as overhead\n",
		l.BudgetTotal, l.MeasuredTotal, l.OverheadTotal))

	b.WriteString("\nmeasured output:\n")
	for _, e := range l.Measured {
		b.WriteString(fmt.Sprintf("  %-34s %5.1f%%  %s\n", e.Category, e.Percent, e.Note))
	}
	b.WriteString(fmt.Sprintf("  total: %.1f%%\n", l.MeasuredSum()))

	b.WriteString("\nbooked overhead:\n")
	for _, e := range l.Overhead {
		b.WriteString(fmt.Sprintf("  %-34s %5.1f%%  %s\n", e.Category, e.Percent, e.Note))
	}
	b.WriteString(fmt.Sprintf("  total: %.1f%%\n", l.OverheadSum()))

	b.WriteString("\nshadow reallocation:\n")
	for _, e := range l.Shadow {
		b.WriteString(fmt.Sprintf("  %-34s %5.1f%%  from %s\n", e.Category, e.Percent, e.Source))
		for _, fn := range e.Functions {
			b.WriteString(fmt.Sprintf("    - %s\n", fn))
		}
		b.WriteString(fmt.Sprintf("    gap: %s\n", e.Gap))
	}
	b.WriteString(fmt.Sprintf("  total: %.1f%%\n", l.Total()))

	writeBoundaries(&b, l.Boundaries)

	b.WriteString("\ncoupling scales:\n")
	for _, s := range l.Scales {
		b.WriteString(fmt.Sprintf("  %s: %s\n", s.Name, s.Mechanism))
		for _, p := range s.Pairs {
			b.WriteString(fmt.Sprintf("    %s\n", p))
		}
		b.WriteString(fmt.Sprintf("    measured: %s\n", s.Measured))
		b.WriteString(fmt.Sprintf("    organization: %s\n", s.Organization))
	}

	b.WriteString(fmt.Sprintf("\nstandard reading: %.0f%% productive, %.0f%% waste\n",
		l.MeasuredTotal, l.OverheadTotal))
	b.WriteString(fmt.Sprintf("shadow reading: %.0f%% accounted once coupling is booked\n",
		l.ShadowTotal))
	return b.String()
}

func writeBoundaries(b *strings.Builder, boundaries []Boundary) {
	b.WriteString("\nequation boundaries:\n")
	for _, bd := range boundaries {
		b.WriteString(fmt.Sprintf("  %s:\n", bd.Name))
		b.WriteString(fmt.Sprintf("    assumption: %s\n", bd.Assumption))
		b.WriteString(fmt.Sprintf("    shadow: %s\n", bd.Shadow))
		b.WriteString(fmt.Sprintf("    missed: %s\n", bd.Missed))
		b.WriteString(fmt.Sprintf("    evidence: %s\n", bd.Evidence))
	}
}

// #endregion ledger report

// #region planaria report

// Report renders the regeneration case as a plain-text block.
func (p *Planaria) Report() string {
	var b strings.Builder
	b.WriteString("[PLANARIA REGENERATION CASE]\n")

	b.WriteString("\nparadoxes:\n")
	for _, px := range p.Paradoxes {
		b.WriteString(fmt.Sprintf("  %s:\n", px.Name))
		b.WriteString(fmt.Sprintf("    experiment: %s\n", px.Experiment))
		b.WriteString(fmt.Sprintf("    blueprint model: %s\n", px.Prediction))
		b.WriteString(fmt.Sprintf("    problem: %s\n", px.Problem))
		b.WriteString(fmt.Sprintf("    field account: %s\n", px.Explanation))
	}

	b.WriteString("\nbioelectric information layers:\n")
	for _, ly := range p.Layers {
		b.WriteString(fmt.Sprintf("  %s: %s\n", ly.Scale, ly.Elements))
		b.WriteString(fmt.Sprintf("    stores: %s\n", ly.Stores))
		b.WriteString(fmt.Sprintf("    mechanism: %s\n", ly.Mechanism))
		b.WriteString(fmt.Sprintf("    role: %s\n", ly.Role))
	}

	b.WriteString("\nantenna properties:\n")
	for _, a := range p.Antenna {
		b.WriteString(fmt.Sprintf("  %s: %s\n", a.Name, a.Feature))
		b.WriteString(fmt.Sprintf("    coupling: %s, %s\n", a.Coupling, a.Frequency))
		b.WriteString(fmt.Sprintf("    geometry: %s\n", a.Optimization))
	}

	b.WriteString("\nfield-DNA coupling mechanisms:\n")
	for _, m := range p.Mechanisms {
		b.WriteString(fmt.Sprintf("  %s (%s):\n", m.Name, m.Timescale))
		b.WriteString(fmt.Sprintf("    field to DNA: %s\n", m.FieldToDNA))
		b.WriteString(fmt.Sprintf("    DNA to field: %s\n", m.DNAToField))
		b.WriteString(fmt.Sprintf("    feedback: %s\n", m.Feedback))
	}

	writeBoundaries(&b, p.Boundaries)
	return b.String()
}

// #endregion planaria report

// #region scan report

// Report renders the scan outcome as a short text block. Significant
// detectors are starred.
func (r ScanResult) Report() string {
	var b strings.Builder
	b.WriteString("[SCAN]\n")
	b.WriteString(fmt.Sprintf("phi ratios: %d/%d matched, enrichment %.2f%s\n",
		len(r.PhiRatios.Matches), len(r.PhiRatios.Ratios), r.PhiRatios.Enrichment, marker(r.PhiRatios.Significant)))
	b.WriteString(fmt.Sprintf("fibonacci: fraction %.2f%s\n",
		r.Fibonacci.Fraction, marker(r.Fibonacci.Significant)))
	b.WriteString(fmt.Sprintf("coherence: %.3f (%s)\n",
		r.Coherence.Coherence, r.Coherence.Level))
	b.WriteString(fmt.Sprintf("spectral peaks: %d, resonances %d, phi pairs %d%s\n",
		len(r.Coupling.PeakFrequencies), len(r.Coupling.Resonances), len(r.Coupling.PhiRatios), marker(r.Coupling.HasSignature)))
	return b.String()
}

func marker(hit bool) string {
	if hit {
		return " *"
	}
	return ""
}

// #endregion scan report
