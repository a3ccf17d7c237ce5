package insights

import "github.com/stillpage/stillpage/internal/domain"

// DefaultSummaryWindow is how many recent entries the aggregator scans.
const DefaultSummaryWindow = 3

// minThemeRecurrence is how many entries in the window must carry a
// theme before it counts as recurring.
const minThemeRecurrence = 2

// Summarize scans the last window entries of the session history and
// reports a recurring tone when one mode holds a majority. Low-energy
// and numb entries read as the same low-affect tone and are counted
// together. A content theme appearing in enough of the window's entries
// is reported alongside the tone. Returns nil when the history is
// shorter than the window or no majority exists, so a summary can never
// appear before the window has filled.
func Summarize(history []*domain.Entry, window int) *domain.ReflectionSummary {
	if window <= 0 {
		window = DefaultSummaryWindow
	}
	if len(history) < window {
		return nil
	}

	tail := history[len(history)-window:]

	counts := make(map[domain.Mode]int, len(domain.AllModes))
	lowAffect := 0
	for _, e := range tail {
		counts[e.Mode]++
		if e.Mode == domain.ModeLowEnergy || e.Mode == domain.ModeNumb {
			lowAffect++
		}
	}

	majority := window/2 + 1

	// The combined class is checked first so mixed low-energy/numb
	// windows still surface.
	if lowAffect >= majority {
		dominant := domain.ModeLowEnergy
		if counts[domain.ModeNumb] > counts[domain.ModeLowEnergy] {
			dominant = domain.ModeNumb
		}
		return &domain.ReflectionSummary{
			Dominant:  dominant,
			LowAffect: true,
			TopTheme:  topTheme(tail),
			Window:    window,
		}
	}

	// Fixed iteration order keeps the result reproducible.
	for _, m := range []domain.Mode{
		domain.ModeRumination,
		domain.ModePressure,
		domain.ModePositive,
		domain.ModeBaseline,
	} {
		if counts[m] >= majority {
			return &domain.ReflectionSummary{
				Dominant: m,
				TopTheme: topTheme(tail),
				Window:   window,
			}
		}
	}

	return nil
}

// topTheme returns the most frequent theme across the window, or "" when
// none recurs. Ties break toward the alphabetically first theme so the
// result is reproducible.
func topTheme(tail []*domain.Entry) string {
	counts := make(map[string]int)
	for _, e := range tail {
		for _, theme := range e.Themes {
			counts[theme]++
		}
	}

	top, best := "", 0
	for _, theme := range domain.AllThemes {
		if counts[theme] > best {
			top, best = theme, counts[theme]
		}
	}
	if best < minThemeRecurrence {
		return ""
	}
	return top
}
