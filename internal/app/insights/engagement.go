// Package insights derives cross-entry observations from a session's
// recent history: a consistency check for the engagement note and a
// recurring-tone summary for the pattern aggregator. Both are pure
// functions over the ordered history slice.
package insights

import (
	"time"

	"github.com/stillpage/stillpage/internal/domain"
)

// DefaultRecencyWindow is the maximum gap between consecutive entries
// for the session to still count as a consistent rhythm.
const DefaultRecencyWindow = 48 * time.Hour

// consistencySpan is how many trailing entries the gap check covers.
const consistencySpan = 3

// Consistent reports whether the session shows a consistent journaling
// rhythm. history is oldest-first and already includes the entry being
// submitted. It is false with fewer than two entries — the first entry
// of a session never earns a note — and true when every consecutive gap
// among the trailing entries stays within the window. The check is
// re-evaluated from scratch on every submission; there is no streak
// state and no cap.
func Consistent(history []*domain.Entry, window time.Duration) bool {
	if window <= 0 {
		window = DefaultRecencyWindow
	}
	if len(history) < 2 {
		return false
	}

	tail := history
	if len(tail) > consistencySpan {
		tail = tail[len(tail)-consistencySpan:]
	}

	for i := 1; i < len(tail); i++ {
		if tail[i].CreatedAt.Sub(tail[i-1].CreatedAt) > window {
			return false
		}
	}
	return true
}
