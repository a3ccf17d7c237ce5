package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stillpage/stillpage/internal/app/classify"
	"github.com/stillpage/stillpage/internal/domain"
)

func sig(polarity float64, flags ...domain.Flag) domain.Signals {
	set := make(map[domain.Flag]bool, len(flags))
	for _, f := range flags {
		set[f] = true
	}
	return domain.Signals{Polarity: polarity, Subjectivity: 0.5, Flags: set}
}

func TestCascadeOrdering(t *testing.T) {
	c := classify.New(0, 0) // documented defaults

	tests := []struct {
		name string
		in   domain.Signals
		want domain.Mode
	}{
		{"numbness_in_band", sig(0.05, domain.FlagNumbness), domain.ModeNumb},
		{"numbness_negative_band_edge", sig(-0.10, domain.FlagNumbness), domain.ModeNumb},
		{"numbness_outside_band_falls_through", sig(0.40, domain.FlagNumbness), domain.ModePositive},
		{"numbness_beats_rumination_in_band", sig(0.0, domain.FlagNumbness, domain.FlagRumination), domain.ModeNumb},
		{"rumination_any_polarity", sig(-0.8, domain.FlagRumination), domain.ModeRumination},
		{"rumination_positive_polarity", sig(0.6, domain.FlagRumination), domain.ModeRumination},
		{"rumination_beats_pressure", sig(0.0, domain.FlagRumination, domain.FlagPressure), domain.ModeRumination},
		{"pressure_without_rumination", sig(-0.2, domain.FlagPressure), domain.ModePressure},
		{"pressure_beats_low_energy", sig(0.0, domain.FlagPressure, domain.FlagLowEnergy), domain.ModePressure},
		{"low_energy", sig(-0.3, domain.FlagLowEnergy), domain.ModeLowEnergy},
		{"low_energy_beats_positive_polarity", sig(0.5, domain.FlagLowEnergy), domain.ModeLowEnergy},
		{"positive_above_threshold", sig(0.30), domain.ModePositive},
		{"mildly_positive_is_baseline", sig(0.20), domain.ModeBaseline},
		{"negative_is_baseline", sig(-0.60), domain.ModeBaseline},
		{"zero_signal_baseline", sig(0.0), domain.ModeBaseline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.in))
		})
	}
}

// Classification must be total: any flag combination at any polarity
// yields exactly one member of the closed enumeration.
func TestClassifyTotal(t *testing.T) {
	c := classify.New(0, 0)

	flags := []domain.Flag{
		domain.FlagRumination, domain.FlagLowEnergy,
		domain.FlagNumbness, domain.FlagPressure,
	}
	polarities := []float64{-1, -0.5, -0.1, 0, 0.1, 0.2, 0.3, 1}

	known := make(map[domain.Mode]bool, len(domain.AllModes))
	for _, m := range domain.AllModes {
		known[m] = true
	}

	for mask := 0; mask < 1<<len(flags); mask++ {
		set := make(map[domain.Flag]bool)
		for i, f := range flags {
			if mask&(1<<i) != 0 {
				set[f] = true
			}
		}
		for _, p := range polarities {
			got := c.Classify(domain.Signals{Polarity: p, Flags: set})
			assert.True(t, known[got], "mask=%b polarity=%v got %q", mask, p, got)
		}
	}
}

func TestCustomThresholds(t *testing.T) {
	c := classify.New(0.3, 0.5)

	// wider neutral band keeps numbness in charge
	assert.Equal(t, domain.ModeNumb, c.Classify(sig(0.25, domain.FlagNumbness)))
	// higher positive threshold demotes moderate polarity
	assert.Equal(t, domain.ModeBaseline, c.Classify(sig(0.45)))
	assert.Equal(t, domain.ModePositive, c.Classify(sig(0.55)))
}
