package eval

import (
	"fmt"
	"strings"
)

// #region config
// Config shapes the scripted scenario runs.
type Config struct {
	CleanNoise    float64 // noise level for the clean phi scenario
	SeriesNoise   float64 // noise level for the learning series
	SeriesStorms  int     // storms in the curiosity growth series
	TimelineSteps int     // frames in the intensifying timeline
}

// DefaultConfig matches the reference demo script.
func DefaultConfig() Config {
	return Config{
		CleanNoise:    0.0,
		SeriesNoise:   0.1,
		SeriesStorms:  3,
		TimelineSteps: 6,
	}
}

// #endregion config

// #region result
// ScenarioResult captures a single scripted scenario outcome.
type ScenarioResult struct {
	Name   string
	Passed bool
	Detail string
}

// Report is the output of a harness run.
type Report struct {
	Seed      int64
	Passed    bool
	Scenarios []ScenarioResult
}

// Render formats the report as a text block.
func (r Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[SCENARIO EVALUATION] seed %d\n", r.Seed)
	for _, s := range r.Scenarios {
		verdict := "pass"
		if !s.Passed {
			verdict = "FAIL"
		}
		fmt.Fprintf(&b, "  %-26s %s  %s\n", s.Name, verdict, s.Detail)
	}
	if r.Passed {
		b.WriteString("all scenarios passed\n")
	} else {
		b.WriteString("scenario failures detected\n")
	}
	return b.String()
}

// #endregion result
