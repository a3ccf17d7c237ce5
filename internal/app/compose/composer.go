// Package compose turns a mode and the insight flags into the final
// reply text. All phrasing is template-based; selection within a table
// is the entry sequence modulo the table size, so responses vary across
// a session without any randomness.
package compose

import (
	"fmt"
	"strings"

	"github.com/stillpage/stillpage/internal/domain"
)

// Reply is the composed response for one entry. Empty optional fields
// mean "absent".
type Reply struct {
	Reflection     string
	EngagementNote string
	Summary        string
	Prompt         string
}

type Composer struct{}

func New() *Composer {
	return &Composer{}
}

// Validate checks the template tables at startup. A missing table is a
// configuration defect and must abort process initialization, never a
// request.
func (c *Composer) Validate() error {
	for _, m := range domain.AllModes {
		if len(reflections[m]) == 0 {
			return fmt.Errorf("no reflection templates for mode %s", m)
		}
	}
	if len(engagementNotes) == 0 {
		return fmt.Errorf("no engagement note templates")
	}
	for _, m := range []domain.Mode{
		domain.ModeRumination, domain.ModePressure,
		domain.ModePositive, domain.ModeBaseline,
	} {
		if toneSummaries[m] == "" {
			return fmt.Errorf("no tone summary for mode %s", m)
		}
	}
	if lowAffectSummary == "" {
		return fmt.Errorf("no low-affect tone summary")
	}
	for _, theme := range domain.AllThemes {
		if themeAdditions[theme] == "" {
			return fmt.Errorf("no addition for theme %s", theme)
		}
	}
	return nil
}

// Compose builds the reply for one classified entry. seq is the entry's
// per-session sequence number and drives template selection; the
// engagement note appears iff consistent, the summary sentence iff a
// recurring tone was found. theme, when non-empty, is the entry's
// leading theme and gets woven into the reflection, so two entries of
// the same mode and sequence can still read differently.
func (c *Composer) Compose(mode domain.Mode, seq int64, consistent bool, summary *domain.ReflectionSummary, theme string) Reply {
	r := Reply{
		Reflection: pick(reflections[mode], seq),
		Prompt:     pick(prompts[mode], seq),
	}

	if addition, ok := themeAdditions[theme]; ok {
		r.Reflection += " I notice you're " + addition + "."
	}

	if consistent {
		r.EngagementNote = pick(engagementNotes, seq)
	}

	if summary != nil {
		r.Summary = summaryText(summary)
	}

	return r
}

func summaryText(s *domain.ReflectionSummary) string {
	if s.LowAffect {
		text := lowAffectSummary
		if s.TopTheme != "" {
			text += fmt.Sprintf(lowAffectThemeSummary, s.TopTheme)
		}
		return text
	}

	text, ok := toneSummaries[s.Dominant]
	if !ok {
		// Dominant modes outside the table are in the low-affect class;
		// reaching here means the aggregator and tables drifted apart.
		text = lowAffectSummary
	}
	if s.TopTheme != "" {
		text += fmt.Sprintf(recurringThemeSummary, capitalize(s.TopTheme))
	}
	return text
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func pick(table []string, seq int64) string {
	if len(table) == 0 {
		return ""
	}
	if seq < 0 {
		seq = -seq
	}
	return table[int(seq)%len(table)]
}
