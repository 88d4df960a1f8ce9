// Package scoring combines speech analytics and the audio aggregate into
// normalized confidence sub-scores and qualitative insight lists.
package scoring

import (
	"math"

	"interview-insights/pkg/audio"
	"interview-insights/pkg/speech"
)

// ScoreSet holds the normalized 0-100 confidence sub-scores.
type ScoreSet struct {
	VoiceModulationScore int `json:"voiceModulationScore"`
	SpeechPaceScore      int `json:"speechrate"`
	Fluency              int `json:"fluency"`
	OverallConfidence    int `json:"overallConfidence"`
}

// Options tunes score computation.
type Options struct {
	// IncludeExpressivenessPlaceholder switches the overall confidence to
	// the legacy four-way mean that averages in a fixed facial
	// expressiveness placeholder of 75.
	IncludeExpressivenessPlaceholder bool
}

const expressivenessPlaceholder = 75

// Score derives the confidence sub-scores from speech analytics. The audio
// aggregate does not participate in the numeric scores; it only drives the
// audio-conditional insight rules.
func Score(a *speech.Analytics, opts Options) ScoreSet {
	fluency := int(math.Round(math.Min(100, math.Max(0, 100-a.FillerPercentage*2))))

	pace := 65
	if a.WordsPerMinute >= 120 && a.WordsPerMinute <= 160 {
		pace = 85
	}

	var modulation int
	switch a.PauseAnalysis.Pattern {
	case speech.PatternBalanced:
		modulation = 90
	case speech.PatternRushed:
		modulation = 60
	default:
		modulation = 75
	}

	var overall int
	if opts.IncludeExpressivenessPlaceholder {
		overall = int(math.Round(float64(modulation+pace+fluency+expressivenessPlaceholder) / 4))
	} else {
		overall = int(math.Round(float64(modulation+pace+fluency) / 3))
	}

	return ScoreSet{
		VoiceModulationScore: modulation,
		SpeechPaceScore:      pace,
		Fluency:              fluency,
		OverallConfidence:    overall,
	}
}

// EnsureAggregate returns the measured aggregate when frames were captured
// and the documented fallback otherwise, so consumers never branch on nil.
func EnsureAggregate(agg *audio.Aggregate) *audio.Aggregate {
	if agg == nil {
		return audio.DefaultAggregate()
	}
	return agg
}
