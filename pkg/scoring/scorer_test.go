package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-insights/pkg/audio"
	"interview-insights/pkg/speech"
)

func balancedAnalytics() *speech.Analytics {
	return &speech.Analytics{
		TotalWords:       300,
		WordsPerMinute:   140,
		SpeechRate:       speech.RateGood,
		FillerPercentage: 2.0,
		PauseAnalysis:    speech.PauseAnalysis{Pattern: speech.PatternBalanced},
	}
}

func TestScoreBalancedSession(t *testing.T) {
	s := Score(balancedAnalytics(), Options{})

	assert.Equal(t, 96, s.Fluency)
	assert.Equal(t, 85, s.SpeechPaceScore)
	assert.Equal(t, 90, s.VoiceModulationScore)
	// round((90+85+96)/3) = round(90.33)
	assert.Equal(t, 90, s.OverallConfidence)
}

func TestScoreLegacyFourWayMean(t *testing.T) {
	s := Score(balancedAnalytics(), Options{IncludeExpressivenessPlaceholder: true})

	// round((90+85+96+75)/4) = round(86.5)
	assert.Equal(t, 87, s.OverallConfidence)
}

func TestScoreFluencyClamps(t *testing.T) {
	a := balancedAnalytics()
	a.FillerPercentage = 60
	s := Score(a, Options{})
	assert.Equal(t, 0, s.Fluency)

	a.FillerPercentage = 0
	s = Score(a, Options{})
	assert.Equal(t, 100, s.Fluency)
}

func TestScorePaceAndModulationBands(t *testing.T) {
	a := balancedAnalytics()
	a.WordsPerMinute = 119
	assert.Equal(t, 65, Score(a, Options{}).SpeechPaceScore)
	a.WordsPerMinute = 120
	assert.Equal(t, 85, Score(a, Options{}).SpeechPaceScore)
	a.WordsPerMinute = 161
	assert.Equal(t, 65, Score(a, Options{}).SpeechPaceScore)

	a.PauseAnalysis.Pattern = speech.PatternRushed
	assert.Equal(t, 60, Score(a, Options{}).VoiceModulationScore)
	a.PauseAnalysis.Pattern = speech.PatternLongPauses
	assert.Equal(t, 75, Score(a, Options{}).VoiceModulationScore)
}

func TestEnsureAggregate(t *testing.T) {
	def := EnsureAggregate(nil)
	require.NotNil(t, def)
	assert.Equal(t, audio.OriginFallback, def.Origin)

	measured := &audio.Aggregate{Origin: audio.OriginMeasured}
	assert.Same(t, measured, EnsureAggregate(measured))
}

func TestGenerateInsightsSpeechRules(t *testing.T) {
	a := balancedAnalytics()
	scores := Score(a, Options{})

	got := GenerateInsights(a, scores, nil)

	assert.Contains(t, got.Strengths, "Excellent speech pacing for clear communication")
	assert.Contains(t, got.Strengths, "Minimal use of filler words - very articulate speech")
	assert.Contains(t, got.Strengths, "Well-balanced pause pattern enhances speech flow")
	assert.Contains(t, got.Strengths, "Optimal speaking speed for professional communication")
	assert.Contains(t, got.Strengths, "Strong overall confidence in speech delivery")
	assert.Empty(t, got.Improvements)
}

func TestGenerateInsightsImprovements(t *testing.T) {
	a := &speech.Analytics{
		WordsPerMinute:   70,
		SpeechRate:       speech.RateSlow,
		FillerPercentage: 20.0,
		PauseAnalysis: speech.PauseAnalysis{
			Pattern:        speech.PatternLongPauses,
			Recommendation: "Practice maintaining a steady flow with shorter pauses.",
		},
	}
	scores := Score(a, Options{})

	got := GenerateInsights(a, scores, nil)

	assert.Contains(t, got.Improvements, "Consider speaking slightly faster to maintain audience engagement")
	assert.Contains(t, got.Improvements, "Reduce filler words usage (currently 20.0%)")
	assert.Contains(t, got.Improvements, "Improve pause timing: Practice maintaining a steady flow with shorter pauses.")
	assert.Contains(t, got.Improvements, "Focus on building confidence through practice and preparation")
}

func TestGenerateInsightsAudioRulesNeedMeasuredAggregate(t *testing.T) {
	a := balancedAnalytics()
	scores := Score(a, Options{})

	// Fallback defaults must not produce audio praise.
	withoutAudio := GenerateInsights(a, scores, nil)
	for _, s := range withoutAudio.Strengths {
		assert.NotContains(t, s, "voice")
	}

	agg := audio.DefaultAggregate()
	agg.Origin = audio.OriginMeasured
	agg.Confidence.Average = 0.82
	agg.Tone.AverageExpressiveness = 0.7
	agg.VoiceQuality.AverageScore = 0.8
	agg.Energy.VolumeConsistency = 0.9

	withAudio := GenerateInsights(a, scores, agg)
	assert.Contains(t, withAudio.Strengths, "Strong confidence level (82%) - Your voice projects assurance")
	assert.Contains(t, withAudio.Strengths, "Excellent expressiveness - Your speech is engaging and dynamic")
	assert.Contains(t, withAudio.Strengths, "High voice quality score - Clear and professional delivery")
	assert.Contains(t, withAudio.Strengths, "Consistent volume control - Steady and controlled delivery")
}

func TestGenerateInsightsAudioImprovements(t *testing.T) {
	a := balancedAnalytics()
	scores := Score(a, Options{})

	agg := audio.DefaultAggregate()
	agg.Origin = audio.OriginMeasured
	agg.Pitch.PredominantLevel = "low"
	agg.Tone.AverageExpressiveness = 0.3
	agg.VoiceQuality.AverageBreathiness = 0.6
	agg.VoiceQuality.AverageStrain = 0.7
	agg.Confidence.Average = 0.4
	agg.Energy.VolumeConsistency = 0.2

	got := GenerateInsights(a, scores, agg)
	assert.Contains(t, got.Improvements, "Consider varying your pitch more to add dynamism to your speech")
	assert.Contains(t, got.Improvements, "Work on adding more expression and emotion to your voice")
	assert.Contains(t, got.Improvements, "Practice breath control to reduce breathiness in your voice")
	assert.Contains(t, got.Improvements, "Relax your vocal cords to reduce strain and speak more naturally")
	assert.Contains(t, got.Improvements, "Focus on projecting more confidence through steadier tone and volume")
	assert.Contains(t, got.Improvements, "Work on maintaining consistent volume throughout your responses")
}

func TestGenerateInsightsCap(t *testing.T) {
	a := balancedAnalytics()
	scores := Score(a, Options{})

	agg := audio.DefaultAggregate()
	agg.Origin = audio.OriginMeasured
	agg.Confidence.Average = 0.9
	agg.Tone.AverageExpressiveness = 0.9
	agg.Tone.AverageClarity = 0.9
	agg.VoiceQuality.AverageScore = 0.9
	agg.Energy.VolumeConsistency = 0.9
	agg.Pitch.Consistency = 0.9

	got := GenerateInsights(a, scores, agg)
	assert.LessOrEqual(t, len(got.Strengths), 10)
	assert.LessOrEqual(t, len(got.Improvements), 10)
}
