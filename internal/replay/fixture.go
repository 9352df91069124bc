package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/JinnZ2/Shadow-Hunting/internal/curiosity"
	"github.com/JinnZ2/Shadow-Hunting/internal/storm"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description   string               `json:"description"`
	Config        FixtureConfig        `json:"config"`
	Observations  []FixtureObservation `json:"observations"`
	ExpectedFinal FixtureFinal         `json:"expected_final"`
}

// FixtureConfig mirrors curiosity.Config with JSON tags.
type FixtureConfig struct {
	InitialCuriosity float64 `json:"initial_curiosity"`
	CuriosityCap     float64 `json:"curiosity_cap"`
	PhiWeight        float64 `json:"phi_weight"`
	SpiralWeight     float64 `json:"spiral_weight"`
	EnergyWeight     float64 `json:"energy_weight"`
	QualityThreshold float64 `json:"quality_threshold"`
	SpiralThreshold  float64 `json:"spiral_threshold"`
	ConfirmedBonus   float64 `json:"confirmed_bonus"`
	UnconfirmedBonus float64 `json:"unconfirmed_bonus"`
}

// FixtureObservation is one recorded storm plus the expected engine
// response at that step.
type FixtureObservation struct {
	Kind            string  `json:"kind"`
	PhiCoupling     float64 `json:"phi_coupling"`
	PhiQuality      float64 `json:"phi_quality"`
	SpiralCoherence float64 `json:"spiral_coherence"`
	EnergyCoupling  float64 `json:"energy_coupling"`

	ExpectConfirmed bool   `json:"expect_confirmed"`
	ExpectState     string `json:"expect_state"`
}

// FixtureFinal pins the end-of-run totals.
type FixtureFinal struct {
	Happiness float64 `json:"happiness"`
	Tolerance float64 `json:"tolerance"`
	Storms    int     `json:"storms"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToConfig converts a FixtureConfig to a domain curiosity.Config. A fixture
// that omits the config block falls back to the reference parameters.
func (fc *FixtureConfig) ToConfig() curiosity.Config {
	if *fc == (FixtureConfig{}) {
		return curiosity.DefaultConfig()
	}
	return curiosity.Config{
		InitialCuriosity: fc.InitialCuriosity,
		CuriosityCap:     fc.CuriosityCap,
		PhiWeight:        fc.PhiWeight,
		SpiralWeight:     fc.SpiralWeight,
		EnergyWeight:     fc.EnergyWeight,
		QualityThreshold: fc.QualityThreshold,
		SpiralThreshold:  fc.SpiralThreshold,
		ConfirmedBonus:   fc.ConfirmedBonus,
		UnconfirmedBonus: fc.UnconfirmedBonus,
	}
}

// ToSignals converts a FixtureObservation to domain storm.Signals.
func (fo *FixtureObservation) ToSignals() storm.Signals {
	return storm.Signals{
		PhiCoupling:     fo.PhiCoupling,
		PhiQuality:      fo.PhiQuality,
		SpiralCoherence: fo.SpiralCoherence,
		EnergyCoupling:  fo.EnergyCoupling,
	}
}

// #endregion fixture-loader
