package audio

// Per-dimension defaults applied when a particular series has no samples at
// all. These must stay in sync with DefaultAggregate so downstream scoring
// behaves identically whether audio arrived with thin coverage or not at all.
const (
	defaultPitchLevel     = "medium"
	defaultPitchTrend     = TrendStable
	defaultConsistency    = 0.5
	defaultEmotion        = "neutral"
	defaultToneQuality    = "neutral"
	defaultExpressiveness = 0.5
	defaultWarmth         = 0.5
	defaultClarity        = 0.5
	defaultVolume         = "normal"
	defaultEnergyMean     = 0.05
	defaultQualityOverall = "good"
	defaultQualityScore   = 0.7
	defaultBreathiness    = 0.3
	defaultHoarseness     = 0.2
	defaultStrain         = 0.2
	defaultConfidence     = 0.5
)

// DefaultAggregate returns the fixed fallback aggregate used when no audio
// frames were supplied for the session. The values describe a plausible
// average speaker rather than zeros, which keeps downstream scores stable.
func DefaultAggregate() *Aggregate {
	return &Aggregate{
		Origin: OriginFallback,
		Pitch: PitchSummary{
			Average:          150,
			Range:            50,
			PredominantLevel: "medium",
			PredominantTrend: TrendStable,
			Consistency:      0.7,
		},
		Tone: ToneSummary{
			PredominantEmotion:    "confident",
			EmotionalVariety:      3,
			PredominantQuality:    "neutral",
			AverageExpressiveness: 0.65,
			AverageWarmth:         0.6,
			AverageClarity:        0.75,
		},
		Energy: EnergySummary{
			PredominantVolume: "medium_volume",
			AverageEnergy:     0.05,
			AverageBrightness: 2800,
			VolumeConsistency: 0.7,
		},
		VoiceQuality: VoiceQualitySummary{
			Overall:            "good",
			AverageScore:       0.75,
			AverageBreathiness: 0.3,
			AverageHoarseness:  0.2,
			AverageStrain:      0.25,
		},
		Confidence: ConfidenceSummary{
			Average:     0.72,
			Consistency: 0.68,
			Trend:       TrendStable,
		},
	}
}
