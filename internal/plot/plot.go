package plot

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/JinnZ2/Shadow-Hunting/internal/bioelectric"
	"github.com/JinnZ2/Shadow-Hunting/internal/curiosity"
	"github.com/JinnZ2/Shadow-Hunting/internal/shadow"
)

var (
	colorMeasured  = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	colorOverhead  = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	colorShadow    = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	colorJoy       = color.RGBA{R: 230, G: 140, B: 30, A: 255}
	colorResonance = color.RGBA{R: 65, G: 105, B: 225, A: 255}
	colorThreshold = color.RGBA{R: 200, G: 60, B: 60, A: 255}
)

// #region energy-budget

// EnergyBudgetChart renders two bar panels side by side: the left panel
// books ledgerA the conventional way (measured output plus overhead), the
// right panel books ledgerB the shadow way (measured output plus
// reallocated coupling). Passing the same ledger twice reproduces the
// reference standard-versus-shadow figure for one system.
func EnergyBudgetChart(ledgerA, ledgerB *shadow.Ledger, path string) error {
	if ledgerA == nil || ledgerB == nil {
		return errors.New("energy budget chart: nil ledger")
	}

	standard, err := standardPanel(ledgerA)
	if err != nil {
		return fmt.Errorf("energy budget chart: %w", err)
	}
	shadowed, err := shadowPanel(ledgerB)
	if err != nil {
		return fmt.Errorf("energy budget chart: %w", err)
	}

	panels := [][]*gplot.Plot{{standard, shadowed}}
	if err := writePNG(panels, 12*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("energy budget chart: %w", err)
	}
	return nil
}

func standardPanel(l *shadow.Ledger) (*gplot.Plot, error) {
	p := gplot.New()
	p.Title.Text = "STANDARD VIEW: " + l.System
	p.Y.Label.Text = "energy %"
	p.Y.Min = 0

	measured, err := bars(entryValues(l.Measured), colorMeasured, 0)
	if err != nil {
		return nil, err
	}
	overhead, err := bars(entryValues(l.Overhead), colorOverhead, len(l.Measured))
	if err != nil {
		return nil, err
	}

	ref := hline(l.MeasuredTotal, colorMeasured)
	p.Add(measured, overhead, ref)
	// Reference lines carry no data range of their own.
	if top := l.MeasuredTotal * 1.15; p.Y.Max < top {
		p.Y.Max = top
	}
	p.Legend.Add("measured output", ref)
	p.Legend.Top = true
	p.NominalX(append(entryNames(l.Measured), entryNames(l.Overhead)...)...)
	return p, nil
}

func shadowPanel(l *shadow.Ledger) (*gplot.Plot, error) {
	p := gplot.New()
	p.Title.Text = "SHADOW VIEW: " + l.System
	p.Y.Label.Text = "energy %"
	p.Y.Min = 0

	measured, err := bars(entryValues(l.Measured), colorMeasured, 0)
	if err != nil {
		return nil, err
	}
	values := make(plotter.Values, len(l.Shadow))
	names := make([]string, len(l.Shadow))
	for i, e := range l.Shadow {
		values[i] = e.Percent
		names[i] = e.Category
	}
	reallocated, err := bars(values, colorShadow, len(l.Measured))
	if err != nil {
		return nil, err
	}

	ref := hline(l.MeasuredTotal+l.ShadowTotal, colorShadow)
	p.Add(measured, reallocated, ref)
	if top := (l.MeasuredTotal + l.ShadowTotal) * 1.15; p.Y.Max < top {
		p.Y.Max = top
	}
	p.Legend.Add("functional output", ref)
	p.Legend.Top = true
	p.NominalX(append(entryNames(l.Measured), names...)...)
	return p, nil
}

func bars(values plotter.Values, c color.Color, offset int) (*plotter.BarChart, error) {
	b, err := plotter.NewBarChart(values, vg.Points(22))
	if err != nil {
		return nil, err
	}
	b.Color = c
	b.LineStyle.Width = 0
	b.XMin = float64(offset)
	return b, nil
}

func entryValues(entries []shadow.Entry) plotter.Values {
	values := make(plotter.Values, len(entries))
	for i, e := range entries {
		values[i] = e.Percent
	}
	return values
}

func entryNames(entries []shadow.Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Category
	}
	return names
}

// #endregion energy-budget

// #region regen-timeline

// RegenTimeline renders three stacked line panels over a regeneration
// history: progress percent, field coherence, and the energy budget with
// the explore threshold marked.
func RegenTimeline(history []bioelectric.StepRecord, path string) error {
	if len(history) == 0 {
		return errors.New("regen timeline: no steps")
	}

	progress := make(plotter.XYs, len(history))
	coherence := make(plotter.XYs, len(history))
	energy := make(plotter.XYs, len(history))
	for i, step := range history {
		progress[i] = plotter.XY{X: step.TimeHours, Y: step.Progress * 100}
		coherence[i] = plotter.XY{X: step.TimeHours, Y: step.Coherence}
		energy[i] = plotter.XY{X: step.TimeHours, Y: step.Energy}
	}

	progressPanel, err := linePanel("regeneration progress", "progress %", progress, colorMeasured)
	if err != nil {
		return fmt.Errorf("regen timeline: %w", err)
	}
	progressPanel.Y.Min, progressPanel.Y.Max = 0, 100

	coherencePanel, err := linePanel("field coherence", "coherence", coherence, colorResonance)
	if err != nil {
		return fmt.Errorf("regen timeline: %w", err)
	}
	coherencePanel.Y.Min, coherencePanel.Y.Max = 0, 1

	energyPanel, err := linePanel("energy budget", "energy", energy, colorJoy)
	if err != nil {
		return fmt.Errorf("regen timeline: %w", err)
	}
	energyPanel.Y.Min = 0
	if energyPanel.Y.Max < 35 {
		energyPanel.Y.Max = 35
	}
	threshold := hline(30, colorThreshold)
	energyPanel.Add(threshold)
	energyPanel.Legend.Add("explore threshold", threshold)
	energyPanel.X.Label.Text = "hours"

	panels := [][]*gplot.Plot{{progressPanel}, {coherencePanel}, {energyPanel}}
	if err := writePNG(panels, 7*vg.Inch, 9*vg.Inch, path); err != nil {
		return fmt.Errorf("regen timeline: %w", err)
	}
	return nil
}

func linePanel(title, yLabel string, pts plotter.XYs, c color.Color) (*gplot.Plot, error) {
	p := gplot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = c
	p.Add(line)
	return p, nil
}

// #endregion regen-timeline

// #region joy-trace

// JoyTrace renders joy gain and resonance per observed storm.
func JoyTrace(series []curiosity.Observation, path string) error {
	if len(series) == 0 {
		return errors.New("joy trace: no observations")
	}

	joy := make(plotter.XYs, len(series))
	resonance := make(plotter.XYs, len(series))
	for i, obs := range series {
		joy[i] = plotter.XY{X: float64(obs.StormNumber), Y: obs.JoyGain}
		resonance[i] = plotter.XY{X: float64(obs.StormNumber), Y: obs.Resonance}
	}

	p := gplot.New()
	p.Title.Text = "discovery joy per storm"
	p.X.Label.Text = "storm"
	p.Y.Min = 0

	joyLine, joyPoints, err := plotter.NewLinePoints(joy)
	if err != nil {
		return fmt.Errorf("joy trace: %w", err)
	}
	joyLine.LineStyle.Width = vg.Points(1.5)
	joyLine.LineStyle.Color = colorJoy
	joyPoints.GlyphStyle.Color = colorJoy

	resLine, resPoints, err := plotter.NewLinePoints(resonance)
	if err != nil {
		return fmt.Errorf("joy trace: %w", err)
	}
	resLine.LineStyle.Width = vg.Points(1.5)
	resLine.LineStyle.Color = colorResonance
	resPoints.GlyphStyle.Color = colorResonance

	p.Add(joyLine, joyPoints, resLine, resPoints)
	p.Legend.Add("joy gain", joyLine, joyPoints)
	p.Legend.Add("resonance", resLine, resPoints)
	p.Legend.Top = true

	panels := [][]*gplot.Plot{{p}}
	if err := writePNG(panels, 7*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("joy trace: %w", err)
	}
	return nil
}

// #endregion joy-trace

// #region writer

func hline(y float64, c color.Color) *plotter.Function {
	f := plotter.NewFunction(func(float64) float64 { return y })
	f.LineStyle.Color = c
	f.LineStyle.Width = vg.Points(1)
	f.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	return f
}

// writePNG tiles the panels onto one canvas and writes the image,
// creating parent directories as needed.
func writePNG(panels [][]*gplot.Plot, width, height vg.Length, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create plot dir: %w", err)
		}
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: len(panels),
		Cols: len(panels[0]),
		PadX: vg.Points(12),
		PadY: vg.Points(12),
		PadTop: vg.Points(6), PadBottom: vg.Points(6),
		PadLeft: vg.Points(6), PadRight: vg.Points(6),
	}

	canvases := gplot.Align(panels, tiles, dc)
	for i := range panels {
		for j := range panels[i] {
			if panels[i][j] != nil {
				panels[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// #endregion writer
