package analysis

import (
	"strings"

	"github.com/stillpage/stillpage/internal/domain"
)

// Keyword flag detectors. Each flag fires when any phrase of its set
// appears as a whole-word sequence in the normalized text. Phrases are
// written in normalized form (lowercase, apostrophes removed). Detectors
// are independent and may co-fire; the classifier cascade resolves
// priority.
var flagPhrases = map[domain.Flag][]string{
	domain.FlagRumination: {
		"keep thinking about",
		"keeps thinking about",
		"cant stop thinking",
		"keep replaying",
		"keeps replaying",
		"keep looping",
		"keeps looping",
		"keep going over",
		"keep coming back to",
		"over and over",
		"should have",
		"shouldnt have",
		"what if i",
		"cant let go of",
		"cant switch off",
		"mind keeps racing",
		"ruminating",
	},
	domain.FlagLowEnergy: {
		"no energy",
		"low energy",
		"tired",
		"exhausted",
		"drained",
		"fatigued",
		"worn out",
		"run down",
		"burned out",
		"burnt out",
		"sluggish",
		"listless",
		"no motivation",
		"cant get motivated",
		"dont feel like doing",
		"dont want to do anything",
		"cant get out of bed",
	},
	domain.FlagNumbness: {
		"dont feel sad or happy",
		"dont feel happy or sad",
		"neither sad nor happy",
		"neither happy nor sad",
		"dont feel anything",
		"cant feel anything",
		"cant feel much of anything",
		"feel nothing",
		"feel numb",
		"feeling numb",
		"just blank",
		"kind of blank",
		"feeling blank",
		"no feelings either way",
		"empty inside",
	},
	domain.FlagPressure: {
		"so much to do",
		"too much to do",
		"so much on my plate",
		"too much on my plate",
		"overwhelmed",
		"under pressure",
		"deadline",
		"deadlines",
		"no time for",
		"piling up",
		"pulled in every direction",
		"cant keep up",
		"behind on everything",
		"too many things",
		"everything at once",
		"supposed to be doing",
	},
}

// detectFlags matches every phrase set against the normalized text.
func detectFlags(normalized string) map[domain.Flag]bool {
	flags := make(map[domain.Flag]bool, len(flagPhrases))
	if normalized == "" {
		return flags
	}

	padded := " " + normalized + " "
	for flag, phrases := range flagPhrases {
		for _, p := range phrases {
			if strings.Contains(padded, " "+p+" ") {
				flags[flag] = true
				break
			}
		}
	}
	return flags
}
