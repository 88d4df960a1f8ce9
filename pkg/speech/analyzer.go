package speech

import (
	"math"
	"regexp"
	"strings"

	"interview-insights/pkg/session"
)

// fillerVocabulary is the fixed term list checked against every answer.
// Multi-word phrases are matched as phrases, not as their parts.
var fillerVocabulary = []string{
	"um", "uh", "like", "you know", "actually", "basically",
	"literally", "right", "so", "well", "i mean", "kind of",
	"sort of", "yeah", "ohh", "hmm", "huh", "er", "ah", "mm",
}

var fillerPatterns = compileFillerPatterns()

func compileFillerPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(fillerVocabulary))
	for _, term := range fillerVocabulary {
		patterns[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return patterns
}

// defaultAnswerSeconds stands in when an answer has no usable timing.
const defaultAnswerSeconds = 60

// Analyze extracts speech delivery analytics from a completed session.
// It never fails: missing timings take the 60 second default with a normal
// pause classification, and a session with no answers yields all zeroes.
func Analyze(s *session.Session) *Analytics {
	a := &Analytics{
		DetectedFillerWords: make(map[string]int),
		QuestionCount:       len(s.Answers),
	}

	var totalTime float64
	pauseCounts := struct{ long, normal, short int }{}

	for i, answer := range s.Answers {
		a.TotalWords += len(strings.Fields(answer))

		lower := strings.ToLower(answer)
		for _, term := range fillerVocabulary {
			if n := len(fillerPatterns[term].FindAllStringIndex(lower, -1)); n > 0 {
				a.FillerWordCount += n
				a.DetectedFillerWords[term] += n
			}
		}

		timing, ok := s.TimingFor(i)
		if !ok || timing.TimeUsed <= 0 {
			totalTime += defaultAnswerSeconds
			pauseCounts.normal++
			continue
		}
		totalTime += timing.TimeUsed
		wpm := float64(timing.WordsSpoken) / (timing.TimeUsed / 60)
		switch {
		case wpm < 100:
			pauseCounts.long++
		case wpm > 160:
			pauseCounts.short++
		default:
			pauseCounts.normal++
		}
	}

	a.TotalTimeSeconds = int(math.Round(totalTime))
	if totalTime > 0 {
		a.WordsPerMinute = int(math.Round(float64(a.TotalWords) / totalTime * 60))
	}
	if a.TotalWords > 0 {
		a.FillerPercentage = math.Round(float64(a.FillerWordCount)/float64(a.TotalWords)*1000) / 10
	}

	a.PauseAnalysis = classifyPauses(pauseCounts.long, pauseCounts.normal, pauseCounts.short)
	a.SpeechRate, a.SpeechRateDesc = RateLabel(a.WordsPerMinute)

	return a
}

// classifyPauses maps the per-answer pause counts to a session-level pattern.
// A pattern wins only when its count exceeds the other two combined.
func classifyPauses(long, normal, short int) PauseAnalysis {
	switch {
	case long > normal+short:
		return PauseAnalysis{
			Pattern:        PatternLongPauses,
			Description:    "You tend to have lengthy pauses between thoughts.",
			Recommendation: "Practice maintaining a steady flow with shorter pauses.",
		}
	case short > normal+long:
		return PauseAnalysis{
			Pattern:        PatternRushed,
			Description:    "You speak with minimal pauses.",
			Recommendation: "Add strategic pauses to emphasize key points.",
		}
	default:
		return PauseAnalysis{
			Pattern:        PatternBalanced,
			Description:    "Your pause pattern shows good variety.",
			Recommendation: "Continue maintaining your current pause pattern.",
		}
	}
}

// RateLabel classifies an aggregate words-per-minute figure.
func RateLabel(wpm int) (label, description string) {
	switch {
	case wpm < 120:
		return RateSlow, "You speak relatively slowly. Consider picking up the pace slightly to maintain engagement."
	case wpm > 160:
		return RateFast, "You speak quite quickly. Consider slowing down slightly for better clarity."
	default:
		return RateGood, "Your speech rate is optimal for clear communication."
	}
}
