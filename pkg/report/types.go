package report

import (
	"math"
	"sort"
	"strings"
	"time"

	"interview-insights/pkg/audio"
	"interview-insights/pkg/correlation"
	"interview-insights/pkg/plan"
	"interview-insights/pkg/scoring"
	"interview-insights/pkg/speech"
)

// PitchProfile summarizes pitch for the report, with consistency as a
// percentage.
type PitchProfile struct {
	Average     int    `json:"average"`
	Range       int    `json:"range"`
	Level       string `json:"level"`
	Trend       string `json:"trend"`
	Consistency int    `json:"consistency"`
}

// VoiceQualitySection blends voice quality and tonal figures, the scored
// ones as percentages.
type VoiceQualitySection struct {
	Overall        string  `json:"overall"`
	Score          int     `json:"score"`
	Clarity        int     `json:"clarity"`
	Warmth         int     `json:"warmth"`
	Expressiveness int     `json:"expressiveness"`
	Breathiness    float64 `json:"breathiness"`
	Hoarseness     float64 `json:"hoarseness"`
	Strain         float64 `json:"strain"`
}

// PauseDetail restates the pause analysis with a display title.
type PauseDetail struct {
	Pattern        string `json:"pattern"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// FillerBreakdown details filler word usage.
type FillerBreakdown struct {
	TotalCount    int            `json:"totalCount"`
	Percentage    float64        `json:"percentage"`
	DetectedWords map[string]int `json:"detectedWords"`
	Categories    []string       `json:"categories"`
}

// SpeakingStats gives whole-session speaking figures.
type SpeakingStats struct {
	TotalSpeakingTime int `json:"totalSpeakingTime"`
	TotalWordsSpoken  int `json:"totalWordsSpoken"`
	QuestionsAnswered int `json:"questionsAnswered"`
	AvgWordsPerAnswer int `json:"avgWordsPerAnswer"`
}

// VolumeSection and ConfidenceSection feed VolumeEnergyConfidence.
type VolumeSection struct {
	Level       string  `json:"level"`
	Brightness  float64 `json:"brightness"`
	Consistency float64 `json:"consistency"`
}

type ConfidenceSection struct {
	Average     float64 `json:"average"`
	Consistency float64 `json:"consistency"`
	Trend       string  `json:"trend"`
}

// VolumeEnergyConfidence pairs the volume and confidence summaries.
type VolumeEnergyConfidence struct {
	Volume     VolumeSection     `json:"volume"`
	Confidence ConfidenceSection `json:"confidence"`
}

// Report is the assembled performance report. It is fully JSON-serializable
// and crosses a process boundary, so it carries no behavior and no cycles.
type Report struct {
	ID                     string                     `json:"id"`
	Analytics              *speech.Analytics          `json:"analytics"`
	AudioMetrics           *audio.Aggregate           `json:"audioMetrics"`
	ConfidenceScores       scoring.ScoreSet           `json:"confidenceScores"`
	Insights               scoring.Insights           `json:"insights"`
	Feedback               string                     `json:"feedback"`
	Correlations           *correlation.Correlations  `json:"correlations"`
	ActionItems            []plan.ActionItem          `json:"actionItems"`
	PitchProfile           PitchProfile               `json:"pitchProfile"`
	VoiceQuality           VoiceQualitySection        `json:"voiceQuality"`
	PauseAnalysisDetailed  PauseDetail                `json:"pauseAnalysisDetailed"`
	FillerWordsBreakdown   FillerBreakdown            `json:"fillerWordsBreakdown"`
	SpeakingStats          SpeakingStats              `json:"speakingStats"`
	VolumeEnergyConfidence VolumeEnergyConfidence     `json:"volumeEnergyConfidence"`
	Fallbacks              []string                   `json:"fallbacks"`
	GeneratedAt            time.Time                  `json:"generatedAt"`
}

func pitchProfile(agg *audio.Aggregate) PitchProfile {
	return PitchProfile{
		Average:     agg.Pitch.Average,
		Range:       agg.Pitch.Range,
		Level:       agg.Pitch.PredominantLevel,
		Trend:       agg.Pitch.PredominantTrend,
		Consistency: pct(agg.Pitch.Consistency),
	}
}

func voiceQualitySection(agg *audio.Aggregate) VoiceQualitySection {
	return VoiceQualitySection{
		Overall:        agg.VoiceQuality.Overall,
		Score:          pct(agg.VoiceQuality.AverageScore),
		Clarity:        pct(agg.Tone.AverageClarity),
		Warmth:         pct(agg.Tone.AverageWarmth),
		Expressiveness: pct(agg.Tone.AverageExpressiveness),
		Breathiness:    agg.VoiceQuality.AverageBreathiness,
		Hoarseness:     agg.VoiceQuality.AverageHoarseness,
		Strain:         agg.VoiceQuality.AverageStrain,
	}
}

func pauseDetail(a *speech.Analytics) PauseDetail {
	return PauseDetail{
		Pattern:        a.PauseAnalysis.Pattern,
		Title:          a.PauseAnalysis.Pattern,
		Description:    a.PauseAnalysis.Description,
		Recommendation: a.PauseAnalysis.Recommendation,
	}
}

func fillerBreakdown(a *speech.Analytics) FillerBreakdown {
	categories := make([]string, 0, len(a.DetectedFillerWords))
	for word := range a.DetectedFillerWords {
		categories = append(categories, word)
	}
	sort.Strings(categories)
	if len(categories) == 0 {
		categories = []string{"um", "uh", "like"}
	}
	return FillerBreakdown{
		TotalCount:    a.FillerWordCount,
		Percentage:    a.FillerPercentage,
		DetectedWords: a.DetectedFillerWords,
		Categories:    categories,
	}
}

func speakingStats(a *speech.Analytics) SpeakingStats {
	stats := SpeakingStats{
		TotalSpeakingTime: a.TotalTimeSeconds,
		TotalWordsSpoken:  a.TotalWords,
		QuestionsAnswered: a.QuestionCount,
	}
	if a.QuestionCount > 0 {
		stats.AvgWordsPerAnswer = int(math.Round(float64(a.TotalWords) / float64(a.QuestionCount)))
	}
	return stats
}

func volumeEnergyConfidence(agg *audio.Aggregate) VolumeEnergyConfidence {
	return VolumeEnergyConfidence{
		Volume: VolumeSection{
			Level:       strings.ReplaceAll(agg.Energy.PredominantVolume, "_", " "),
			Brightness:  agg.Energy.AverageBrightness,
			Consistency: agg.Energy.VolumeConsistency,
		},
		Confidence: ConfidenceSection{
			Average:     agg.Confidence.Average,
			Consistency: agg.Confidence.Consistency,
			Trend:       agg.Confidence.Trend,
		},
	}
}

func pct(v float64) int {
	return int(math.Round(v * 100))
}
