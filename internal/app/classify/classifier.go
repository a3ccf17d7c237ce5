// Package classify maps lexical signals to exactly one emotional mode.
// The cascade is an explicit ordered rule list evaluated top to bottom,
// first match wins, so priority between co-firing flags is auditable.
package classify

import (
	"math"

	"github.com/stillpage/stillpage/internal/domain"
)

// Default thresholds. The neutral band keeps explicitly flat text from
// registering as mildly positive or negative; the positive threshold is
// stricter than the band so mildly positive text stays at baseline.
const (
	DefaultNeutralBand       = 0.10
	DefaultPositiveThreshold = 0.25
)

type rule struct {
	name  string
	match func(domain.Signals) bool
	mode  domain.Mode
}

// Classifier evaluates the rule cascade with fixed thresholds.
type Classifier struct {
	neutralBand       float64
	positiveThreshold float64
	cascade           []rule
}

func New(neutralBand, positiveThreshold float64) *Classifier {
	if neutralBand <= 0 {
		neutralBand = DefaultNeutralBand
	}
	if positiveThreshold <= 0 {
		positiveThreshold = DefaultPositiveThreshold
	}

	c := &Classifier{
		neutralBand:       neutralBand,
		positiveThreshold: positiveThreshold,
	}

	c.cascade = []rule{
		// Explicit denial of feeling wins only while polarity sits in
		// the neutral band; strongly polarized text falls through.
		{
			name: "numb_neutral",
			match: func(s domain.Signals) bool {
				return s.Has(domain.FlagNumbness) && math.Abs(s.Polarity) <= c.neutralBand
			},
			mode: domain.ModeNumb,
		},
		// Rumination is behavioral, not polarity-driven.
		{
			name: "rumination",
			match: func(s domain.Signals) bool {
				return s.Has(domain.FlagRumination)
			},
			mode: domain.ModeRumination,
		},
		// Overloaded but not looping. The rumination exclusion keeps
		// this rule distinct even though the cascade order already
		// resolves the overlap.
		{
			name: "pressure",
			match: func(s domain.Signals) bool {
				return s.Has(domain.FlagPressure) && !s.Has(domain.FlagRumination)
			},
			mode: domain.ModePressure,
		},
		{
			name: "low_energy",
			match: func(s domain.Signals) bool {
				return s.Has(domain.FlagLowEnergy)
			},
			mode: domain.ModeLowEnergy,
		},
		{
			name: "positive",
			match: func(s domain.Signals) bool {
				return s.Polarity > c.positiveThreshold
			},
			mode: domain.ModePositive,
		},
	}

	return c
}

// Classify is total: every input maps to exactly one mode, falling back
// to baseline when no rule matches.
func (c *Classifier) Classify(sig domain.Signals) domain.Mode {
	for _, r := range c.cascade {
		if r.match(sig) {
			return r.mode
		}
	}
	return domain.ModeBaseline
}
