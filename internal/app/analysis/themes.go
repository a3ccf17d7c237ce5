package analysis

import (
	"strings"

	"github.com/stillpage/stillpage/internal/domain"
)

// Theme keyword sets, keyed by the names in domain.AllThemes. A theme
// fires when any of its keywords appears as a whole word in the
// normalized text; the number of distinct keywords that hit grades the
// confidence. Keywords are written in normalized form.
var themeKeywords = map[string][]string{
	"creativity": {
		"create", "creative", "art", "music", "write", "writing",
		"paint", "painting", "design", "imagine", "inspiration",
		"craft", "hobby", "idea", "ideas",
	},
	"gratitude": {
		"grateful", "gratitude", "thankful", "thank", "appreciate",
		"appreciated", "blessed", "fortunate", "lucky",
	},
	"growth": {
		"learn", "learning", "learned", "growth", "improve",
		"improving", "progress", "develop", "goal", "goals",
		"achievement", "accomplish", "accomplished", "challenge",
		"opportunity", "skill", "skills",
	},
	"health": {
		"health", "healthy", "exercise", "workout", "fitness",
		"sleep", "slept", "diet", "doctor", "sick", "illness",
		"energy", "tired", "fatigue", "pain",
	},
	"loss": {
		"loss", "lost", "grief", "grieving", "miss", "missing",
		"death", "died", "gone", "mourning", "goodbye", "farewell",
	},
	"relationships": {
		"friend", "friends", "friendship", "family", "partner",
		"relationship", "love", "loved", "husband", "wife",
		"boyfriend", "girlfriend", "mother", "father", "sister",
		"brother", "parents", "kids", "children",
	},
	"stress": {
		"stress", "stressed", "stressful", "overwhelmed", "worried",
		"worry", "worrying", "tense", "anxious", "anxiety", "burden",
		"pressure", "frantic",
	},
	"work": {
		"work", "working", "job", "career", "office", "project",
		"meeting", "meetings", "deadline", "deadlines", "boss",
		"coworker", "colleague", "business", "interview", "promotion",
	},
}

const (
	highConfidenceHits   = 3
	mediumConfidenceHits = 2
)

// detectThemes matches the keyword sets against the normalized text.
// Themes come back in alphabetical order; the confidence reflects the
// strongest single theme (distinct keywords hit, not occurrences).
func detectThemes(normalized string) ([]string, domain.ThemeConfidence) {
	if normalized == "" {
		return nil, domain.ThemeConfidenceLow
	}

	padded := " " + normalized + " "

	var themes []string
	best := 0
	for _, theme := range domain.AllThemes {
		hits := 0
		for _, kw := range themeKeywords[theme] {
			if strings.Contains(padded, " "+kw+" ") {
				hits++
			}
		}
		if hits > 0 {
			themes = append(themes, theme)
		}
		if hits > best {
			best = hits
		}
	}

	switch {
	case best >= highConfidenceHits:
		return themes, domain.ThemeConfidenceHigh
	case best >= mediumConfidenceHits:
		return themes, domain.ThemeConfidenceMedium
	default:
		return themes, domain.ThemeConfidenceLow
	}
}
