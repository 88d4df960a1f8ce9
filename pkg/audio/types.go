package audio

// PitchSample carries per-frame fundamental frequency measurements.
// Pointer fields distinguish "not sampled" from a legitimate zero.
type PitchSample struct {
	Mean  *float64 `json:"mean,omitempty"`
	Trend *string  `json:"trend,omitempty"`
	Level *string  `json:"level,omitempty"`
}

// ToneSample carries per-frame tonal characteristics.
type ToneSample struct {
	EmotionalTone  *string  `json:"emotional_tone,omitempty"`
	Quality        *string  `json:"quality,omitempty"`
	Expressiveness *float64 `json:"expressiveness,omitempty"`
	Warmth         *float64 `json:"warmth,omitempty"`
	Clarity        *float64 `json:"clarity,omitempty"`
}

// EnergySample carries per-frame loudness and spectral energy measurements.
type EnergySample struct {
	VolumeLevel *string  `json:"volume_level,omitempty"`
	Mean        *float64 `json:"mean,omitempty"`
	Brightness  *float64 `json:"brightness,omitempty"`
}

// VoiceQualitySample carries per-frame voice quality assessments.
type VoiceQualitySample struct {
	Overall      *string  `json:"overall,omitempty"`
	QualityScore *float64 `json:"quality_score,omitempty"`
	Breathiness  *float64 `json:"breathiness,omitempty"`
	Hoarseness   *float64 `json:"hoarseness,omitempty"`
	Strain       *float64 `json:"strain,omitempty"`
}

// FrameMetric is one low-level audio feature frame produced by the upstream
// capture layer. Any field may be missing; aggregation treats missing values
// as not sampled, never as zero.
type FrameMetric struct {
	Pitch           *PitchSample        `json:"pitch,omitempty"`
	Tone            *ToneSample         `json:"tone,omitempty"`
	Energy          *EnergySample       `json:"energy,omitempty"`
	VoiceQuality    *VoiceQualitySample `json:"voice_quality,omitempty"`
	ConfidenceScore *float64            `json:"confidence_score,omitempty"`
}

// Origin tags an Aggregate with how it was produced.
type Origin string

const (
	// OriginMeasured marks an aggregate computed from real frames.
	OriginMeasured Origin = "measured"
	// OriginFallback marks an aggregate built entirely from documented defaults.
	OriginFallback Origin = "fallback"
)

// Trend labels for numeric series.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// PitchSummary aggregates pitch across all frames of a session.
type PitchSummary struct {
	Average          int     `json:"average"`
	Range            int     `json:"range"`
	PredominantLevel string  `json:"predominantLevel"`
	PredominantTrend string  `json:"predominantTrend"`
	Consistency      float64 `json:"consistency"`
}

// ToneSummary aggregates tonal characteristics across all frames.
type ToneSummary struct {
	PredominantEmotion    string  `json:"predominantEmotion"`
	EmotionalVariety      int     `json:"emotionalVariety"`
	PredominantQuality    string  `json:"predominantQuality"`
	AverageExpressiveness float64 `json:"averageExpressiveness"`
	AverageWarmth         float64 `json:"averageWarmth"`
	AverageClarity        float64 `json:"averageClarity"`
}

// EnergySummary aggregates volume and energy across all frames.
type EnergySummary struct {
	PredominantVolume string  `json:"predominantVolume"`
	AverageEnergy     float64 `json:"averageEnergy"`
	AverageBrightness float64 `json:"averageBrightness"`
	VolumeConsistency float64 `json:"volumeConsistency"`
}

// VoiceQualitySummary aggregates voice quality across all frames.
type VoiceQualitySummary struct {
	Overall            string  `json:"overall"`
	AverageScore       float64 `json:"averageScore"`
	AverageBreathiness float64 `json:"averageBreathiness"`
	AverageHoarseness  float64 `json:"averageHoarseness"`
	AverageStrain      float64 `json:"averageStrain"`
}

// ConfidenceSummary aggregates the per-frame confidence score.
type ConfidenceSummary struct {
	Average     float64 `json:"average"`
	Consistency float64 `json:"consistency"`
	Trend       string  `json:"trend"`
}

// Aggregate is the stable summary of a session's audio frames. It is never
// mutated after creation. Origin records whether the values were measured or
// are the documented fallback defaults, so consumers can branch without
// null checks scattered everywhere.
type Aggregate struct {
	Origin       Origin              `json:"origin"`
	Pitch        PitchSummary        `json:"pitch"`
	Tone         ToneSummary         `json:"tone"`
	Energy       EnergySummary       `json:"energy"`
	VoiceQuality VoiceQualitySummary `json:"voiceQuality"`
	Confidence   ConfidenceSummary   `json:"confidence"`
}

// Measured reports whether the aggregate was computed from real frames.
func (a *Aggregate) Measured() bool {
	return a != nil && a.Origin == OriginMeasured
}
