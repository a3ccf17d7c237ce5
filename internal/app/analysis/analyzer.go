// Package analysis turns raw entry text into lexical signals: a
// polarity/subjectivity score from a fixed lexicon, a set of independent
// keyword flags, and the content themes the entry touches. Everything
// here is pure and deterministic; identical text always yields identical
// signals.
package analysis

import (
	"strings"
	"unicode"

	"github.com/stillpage/stillpage/internal/domain"
)

// Analyze computes the signals for one entry. It never fails: empty or
// whitespace-only text yields zero polarity, zero subjectivity and no
// flags.
func Analyze(text string) domain.Signals {
	norm := Normalize(text)
	tokens := strings.Fields(norm)

	polarity, subjectivity := score(tokens)
	themes, confidence := detectThemes(norm)

	return domain.Signals{
		Polarity:        polarity,
		Subjectivity:    subjectivity,
		Flags:           detectFlags(norm),
		Themes:          themes,
		ThemeConfidence: confidence,
	}
}

// Normalize lowercases the text, drops apostrophes ("don't" → "dont")
// and replaces all other punctuation with spaces, collapsing runs of
// whitespace. Phrase sets and the lexicon are written against this form.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		switch {
		case r == '\'' || r == '’':
			// drop
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
