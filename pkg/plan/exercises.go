package plan

// Action item categories.
const (
	CategorySpeechPace = "Speech Pace"
	CategoryFluency    = "Fluency"
	CategoryRhythm     = "Rhythm & Flow"
	CategoryConfidence = "Confidence"
	CategoryOverall    = "Overall Fluency"
)

// exerciseTable maps a category to its fixed practice exercises. No
// randomness: the same category always yields the same list.
var exerciseTable = map[string][]string{
	CategorySpeechPace: {
		"Read aloud for 5 minutes daily at target pace",
		"Record and review your practice sessions",
		"Use a metronome app to maintain rhythm",
	},
	CategoryFluency: {
		"Practice the 'pause and think' technique",
		"Record yourself for filler word awareness",
		"Use the 'chunking' method for structured responses",
		"Practice with a filler word counter app",
	},
	CategoryRhythm: {
		"Practice strategic pausing exercises",
		"Use breath control techniques",
		"Study great speakers' pause patterns",
	},
	CategoryConfidence: {
		"Power posing before interviews",
		"Vocal projection exercises",
		"Mirror practice for body language",
		"Confidence affirmations",
	},
	CategoryOverall: {
		"Daily tongue twisters for articulation",
		"Storytelling practice for flow",
		"Improv exercises for spontaneous speaking",
		"Structured response frameworks (STAR, PREP)",
	},
}

// Exercises returns the fixed practice list for a category. The returned
// slice is a copy so callers can cap or trim it safely.
func Exercises(category string) []string {
	src := exerciseTable[category]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
