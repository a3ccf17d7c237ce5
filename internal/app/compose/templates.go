package compose

import "github.com/stillpage/stillpage/internal/domain"

// Template tables. Content rules, enforced by Validate and the package
// tests: no mode identifiers, no clinical or diagnostic vocabulary, no
// numerals. The wording mirrors the entry's tone without naming it.

var reflections = map[domain.Mode][]string{
	domain.ModeBaseline: {
		"Thank you for taking the time to write today — it's an act of care in itself.",
		"You're making space to check in with yourself, and that's worth recognizing.",
		"There's value in simply putting your thoughts into words, and you're doing that.",
		"You're showing up to reflect, even when things feel uncertain, and that takes effort.",
	},
	domain.ModeLowEnergy: {
		"It sounds like one of those flat, low-energy days — wanting something different without the energy to start it.",
		"There's a tiredness in what you've written that doesn't need fixing. Sometimes the energy just isn't there.",
		"You're here and writing, even when motivation isn't, and that counts for something.",
		"This reads like a day where nothing quite lands, and it's okay for a day to be like that.",
	},
	domain.ModeRumination: {
		"It sounds like your mind keeps circling back over the same ground, and that's a heavy way to spend a day.",
		"The same thoughts seem to be asking for your attention again and again. You don't have to resolve them tonight.",
		"You're carrying a loop of what-ifs and should-haves, and noticing the loop is already a step outside it.",
		"Your mind is holding a lot of replays right now. Writing them down is one way of setting them somewhere.",
	},
	domain.ModePressure: {
		"There's a lot stacked up in front of you, and feeling stretched by it makes sense.",
		"It sounds like the list is long and the day is short. That weight is real, even when nothing on the list is.",
		"You're holding many obligations at once, and naming that is a fair place to stop for now.",
		"So much is asking for your attention at the same time. It's understandable to feel pulled thin.",
	},
	domain.ModeNumb: {
		"A flat, in-between kind of day comes through in your words, and it doesn't need to be anything more than that.",
		"Not every day has a strong color to it. Noticing the blankness is itself a kind of attention.",
		"It sounds like today sits somewhere in the middle — not heavy, not light. That's a real place to be.",
		"You've described a muted, neutral stretch, and putting words to it matters even when the words feel gray.",
	},
	domain.ModePositive: {
		"There's a warmth in what you've shared today, and it comes through clearly.",
		"It sounds like you're experiencing some lightness right now, and that's meaningful.",
		"The good energy in your words feels genuine and present.",
		"You're noticing good things around you, and taking time to acknowledge them matters.",
	},
}

// Optional gentle prompts, per mode. Low-effort for low-energy and numb
// days, grounding for looping or pressured ones. No prompt for positive
// entries; the reflection stands on its own there.
var prompts = map[domain.Mode][]string{
	domain.ModeBaseline: {
		"What else feels present as you sit with this?",
		"Is there more that wants to be said?",
		"What are you noticing as you write?",
	},
	domain.ModeLowEnergy: {
		"If today didn't need to be productive, what might make it feel a little lighter?",
		"Is there anything you're letting yourself off the hook for today?",
		"What's one thing you're not forcing yourself to do right now?",
	},
	domain.ModeRumination: {
		"Is there anything you're holding that doesn't need to be solved today?",
		"What would it feel like to set this down, just for a moment?",
		"What's one thing that feels steady right now, even if it's small?",
	},
	domain.ModePressure: {
		"If one thing could wait until tomorrow, which would it be?",
		"What's actually yours to carry here, and what belongs to someone else?",
		"Where could the day give back a little room?",
	},
	domain.ModeNumb: {
		"What's one small thing you noticed today, even a dull one?",
		"How does it feel to put this flatness into words?",
		"Is there anything quietly present underneath the blankness?",
	},
}

// Engagement note variants. Gentle acknowledgment of showing up, never a
// count or a streak.
var engagementNotes = []string{
	"You're showing up for yourself again, and that matters.",
	"You keep coming back to the page, and that steadiness is worth noticing.",
	"Returning to write like this is its own quiet kind of care.",
}

// Recurring-tone phrasings for the reflection summary. Keyed by the
// dominant mode of the window; the low-affect class has its own entry.
var toneSummaries = map[domain.Mode]string{
	domain.ModeRumination: "Your recent entries carry a sense of weight and mental looping. You're holding a lot, and noticing that is enough for now.",
	domain.ModePressure:   "A stretched, lots-to-carry feeling runs through your recent entries. Naming it is already a way of setting some of it down.",
	domain.ModePositive:   "A lighter, warmer tone has been running through your recent entries. It can be worth pausing on what's feeding that.",
	domain.ModeBaseline:   "A steady, reflective quality runs through your recent entries. You keep taking time to notice where you are.",
}

// lowAffectSummary covers the combined low-energy/numb reading.
const lowAffectSummary = "Looking back over your last few entries, a quieter, lower-energy tone keeps showing up. That isn't something to fix — just something worth noticing."

// Theme fragments, woven into the reflection when an entry leans
// clearly into one theme. Phrased as observations of what the writer is
// doing, never as labels.
var themeAdditions = map[string]string{
	"creativity":    "connecting with your creative side and seeing what that stirs up",
	"gratitude":     "noticing what you're grateful for, even in small moments",
	"growth":        "paying attention to where you're changing and what you're learning",
	"health":        "tuning in to how you're feeling, body and mind",
	"loss":          "sitting with something painful, and that's not easy",
	"relationships": "thinking about the people who matter to you",
	"stress":        "holding a lot right now, and feeling the weight of it",
	"work":          "working through what's happening in your professional life",
}

// Sentence fragments appended to a reflection summary when a theme
// recurs across the window. The low-affect class gets its own softer
// phrasing.
const (
	lowAffectThemeSummary = " You've also mentioned %s a few times during these stretches."
	recurringThemeSummary = " %s keeps finding its way into what you write."
)
