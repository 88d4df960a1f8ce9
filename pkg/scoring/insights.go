package scoring

import (
	"fmt"
	"math"

	"interview-insights/pkg/audio"
	"interview-insights/pkg/speech"
)

// Insights pairs the qualitative strength and improvement observations.
// Each list is capped at ten entries.
type Insights struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

const maxInsights = 10

// insightContext is what the rule predicates see.
type insightContext struct {
	analytics *speech.Analytics
	scores    ScoreSet
	aggregate *audio.Aggregate
	measured  bool
}

// insightRule classifies one observed condition. Exactly one of the returned
// strings is non-empty when the rule fires.
type insightRule func(c insightContext) (strength, improvement string)

// insightRules is evaluated in order; the order is part of the contract
// since lists truncate at maxInsights.
var insightRules = []insightRule{
	func(c insightContext) (string, string) {
		switch c.analytics.SpeechRate {
		case speech.RateGood:
			return "Excellent speech pacing for clear communication", ""
		case speech.RateSlow:
			return "", "Consider speaking slightly faster to maintain audience engagement"
		case speech.RateFast:
			return "", "Try speaking slightly slower to improve clarity and comprehension"
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		switch {
		case c.analytics.FillerPercentage < 3:
			return "Minimal use of filler words - very articulate speech", ""
		case c.analytics.FillerPercentage < 6:
			return "Good control over filler words usage", ""
		default:
			return "", fmt.Sprintf("Reduce filler words usage (currently %.1f%%)", c.analytics.FillerPercentage)
		}
	},
	func(c insightContext) (string, string) {
		if c.analytics.PauseAnalysis.Pattern == speech.PatternBalanced {
			return "Well-balanced pause pattern enhances speech flow", ""
		}
		return "", "Improve pause timing: " + c.analytics.PauseAnalysis.Recommendation
	},
	func(c insightContext) (string, string) {
		if c.analytics.WordsPerMinute >= 120 && c.analytics.WordsPerMinute <= 160 {
			return "Optimal speaking speed for professional communication", ""
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		switch {
		case c.scores.OverallConfidence >= 80:
			return "Strong overall confidence in speech delivery", ""
		case c.scores.OverallConfidence < 70:
			return "", "Focus on building confidence through practice and preparation"
		}
		return "", ""
	},

	// The remaining rules only apply to measured audio; fallback defaults
	// would otherwise praise a voice nobody heard.
	func(c insightContext) (string, string) {
		if c.measured && c.aggregate.Confidence.Average > 0.6 {
			pct := int(math.Round(c.aggregate.Confidence.Average * 100))
			return fmt.Sprintf("Strong confidence level (%d%%) - Your voice projects assurance", pct), ""
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		if c.measured && c.aggregate.Tone.AverageExpressiveness > 0.6 {
			return "Excellent expressiveness - Your speech is engaging and dynamic", ""
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		if c.measured && c.aggregate.Tone.AverageClarity > 0.7 {
			return "Clear articulation makes your answers easy to follow", ""
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		if c.measured && c.aggregate.VoiceQuality.AverageScore > 0.7 {
			return "High voice quality score - Clear and professional delivery", ""
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		if c.measured && c.aggregate.Energy.VolumeConsistency > 0.7 {
			return "Consistent volume control - Steady and controlled delivery", ""
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		if c.measured && c.aggregate.Pitch.Consistency > 0.7 {
			return "Steady pitch control throughout your answers", ""
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		if !c.measured {
			return "", ""
		}
		switch c.aggregate.Pitch.PredominantLevel {
		case "low":
			return "", "Consider varying your pitch more to add dynamism to your speech"
		case "high":
			return "", "Try lowering your pitch occasionally for emphasis and authority"
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		if c.measured && c.aggregate.Tone.AverageExpressiveness < 0.5 {
			return "", "Work on adding more expression and emotion to your voice"
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		if c.measured && c.aggregate.VoiceQuality.AverageBreathiness > 0.5 {
			return "", "Practice breath control to reduce breathiness in your voice"
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		if c.measured && c.aggregate.VoiceQuality.AverageStrain > 0.5 {
			return "", "Relax your vocal cords to reduce strain and speak more naturally"
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		if c.measured && c.aggregate.Confidence.Average < 0.5 {
			return "", "Focus on projecting more confidence through steadier tone and volume"
		}
		return "", ""
	},
	func(c insightContext) (string, string) {
		if c.measured && c.aggregate.Energy.VolumeConsistency < 0.5 {
			return "", "Work on maintaining consistent volume throughout your responses"
		}
		return "", ""
	},
}

// GenerateInsights evaluates the rule table over the analytics, scores and
// aggregate. Pass the aggregate as produced by the aggregator; nil means no
// audio was captured and only the speech rules apply.
func GenerateInsights(a *speech.Analytics, scores ScoreSet, agg *audio.Aggregate) Insights {
	c := insightContext{
		analytics: a,
		scores:    scores,
		aggregate: EnsureAggregate(agg),
		measured:  agg.Measured(),
	}

	out := Insights{Strengths: []string{}, Improvements: []string{}}
	for _, rule := range insightRules {
		strength, improvement := rule(c)
		if strength != "" && len(out.Strengths) < maxInsights {
			out.Strengths = append(out.Strengths, strength)
		}
		if improvement != "" && len(out.Improvements) < maxInsights {
			out.Improvements = append(out.Improvements, improvement)
		}
	}
	return out
}
