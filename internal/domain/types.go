package domain

import "time"

type SessionID string

// Mode is the internal emotional category attached to an entry at
// classification time. It drives template selection only and is never
// serialized to callers in any form.
type Mode string

const (
	ModeBaseline   Mode = "baseline"
	ModeLowEnergy  Mode = "low_energy"
	ModeRumination Mode = "rumination"
	ModePressure   Mode = "pressure"
	ModeNumb       Mode = "numb_neutral"
	ModePositive   Mode = "positive"
)

// AllModes lists the closed enumeration in a fixed order.
var AllModes = []Mode{
	ModeBaseline,
	ModeLowEnergy,
	ModeRumination,
	ModePressure,
	ModeNumb,
	ModePositive,
}

// AllThemes lists the recognized content themes in alphabetical order.
// Unlike modes, theme names are ordinary vocabulary and may appear in
// composed text.
var AllThemes = []string{
	"creativity",
	"gratitude",
	"growth",
	"health",
	"loss",
	"relationships",
	"stress",
	"work",
}

// ThemeConfidence grades how strongly the detected themes are present,
// by keyword hits for the strongest single theme.
type ThemeConfidence string

const (
	ThemeConfidenceLow    ThemeConfidence = "low"
	ThemeConfidenceMedium ThemeConfidence = "medium"
	ThemeConfidenceHigh   ThemeConfidence = "high"
)

// Flag is a named boolean rule hit from the keyword detectors,
// independent of the polarity score.
type Flag string

const (
	FlagRumination Flag = "rumination"
	FlagLowEnergy  Flag = "low_energy"
	FlagNumbness   Flag = "numbness"
	FlagPressure   Flag = "pressure"
)

// Signals are the derived lexical signals for one entry. They are
// recomputed per entry and never persisted.
type Signals struct {
	Polarity     float64 // [-1.0, 1.0]
	Subjectivity float64 // [0.0, 1.0]
	Flags        map[Flag]bool

	// Themes are the detected content themes, alphabetical, with a
	// confidence grade for the strongest one.
	Themes          []string
	ThemeConfidence ThemeConfidence
}

func (s Signals) Has(f Flag) bool {
	return s.Flags[f]
}

// Entry is one submitted journal entry. Seq is assigned by the store on
// append, unique and monotonic within a session; entries are immutable
// afterwards and never reordered.
type Entry struct {
	Seq       int64
	SessionID SessionID
	Text      string
	Mode      Mode
	Themes    []string
	CreatedAt time.Time
}

// ReflectionSummary describes a recurring tone over the most recent
// window of a session's entries. LowAffect marks the combined
// low-energy/numb reading; TopTheme, when non-empty, names a content
// theme that recurred alongside the tone. Computed on demand, not
// persisted.
type ReflectionSummary struct {
	Dominant  Mode
	LowAffect bool
	TopTheme  string
	Window    int
}
