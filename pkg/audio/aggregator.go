package audio

import (
	"math"
)

// AggregateFrames reduces the flattened frame sequence of a session into a
// stable summary. It returns nil when no frames are supplied; callers fall
// back to DefaultAggregate. The computation is pure: the input is read-only
// and the result is never mutated afterwards.
func AggregateFrames(frames []FrameMetric) *Aggregate {
	if len(frames) == 0 {
		return nil
	}
	var c frameCollector
	for _, m := range frames {
		c.add(m)
	}
	return c.finalize()
}

// frameCollector accumulates the per-dimension series a summary is computed
// from. The sync and async entry points share it so both produce identical
// results for the same frames.
type frameCollector struct {
	pitchValues    []float64
	pitchTrends    []string
	pitchLevels    []string
	emotionalTones []string
	toneQualities  []string
	expressiveness []float64
	warmth         []float64
	clarity        []float64
	volumeLevels   []string
	energyValues   []float64
	brightness     []float64
	voiceQualities []string
	qualityScores  []float64
	breathiness    []float64
	hoarseness     []float64
	strain         []float64
	confidences    []float64
}

func (c *frameCollector) add(m FrameMetric) {
	if p := m.Pitch; p != nil {
		if v, ok := sample(p.Mean); ok && v > 0 {
			c.pitchValues = append(c.pitchValues, v)
		}
		appendLabel(&c.pitchTrends, p.Trend)
		appendLabel(&c.pitchLevels, p.Level)
	}
	if t := m.Tone; t != nil {
		appendLabel(&c.emotionalTones, t.EmotionalTone)
		appendLabel(&c.toneQualities, t.Quality)
		appendSample(&c.expressiveness, t.Expressiveness)
		appendSample(&c.warmth, t.Warmth)
		appendSample(&c.clarity, t.Clarity)
	}
	if e := m.Energy; e != nil {
		appendLabel(&c.volumeLevels, e.VolumeLevel)
		appendSample(&c.energyValues, e.Mean)
		appendSample(&c.brightness, e.Brightness)
	}
	if q := m.VoiceQuality; q != nil {
		appendLabel(&c.voiceQualities, q.Overall)
		appendSample(&c.qualityScores, q.QualityScore)
		appendSample(&c.breathiness, q.Breathiness)
		appendSample(&c.hoarseness, q.Hoarseness)
		appendSample(&c.strain, q.Strain)
	}
	appendSample(&c.confidences, m.ConfidenceScore)
}

func (c *frameCollector) finalize() *Aggregate {
	return &Aggregate{
		Origin: OriginMeasured,
		Pitch: PitchSummary{
			Average:          int(math.Round(meanOr(c.pitchValues, 0))),
			Range:            int(math.Round(rangeOf(c.pitchValues))),
			PredominantLevel: modeOr(c.pitchLevels, defaultPitchLevel),
			PredominantTrend: modeOr(c.pitchTrends, defaultPitchTrend),
			Consistency:      consistency(c.pitchValues),
		},
		Tone: ToneSummary{
			PredominantEmotion:    modeOr(c.emotionalTones, defaultEmotion),
			EmotionalVariety:      distinctCount(c.emotionalTones),
			PredominantQuality:    modeOr(c.toneQualities, defaultToneQuality),
			AverageExpressiveness: meanOr(c.expressiveness, defaultExpressiveness),
			AverageWarmth:         meanOr(c.warmth, defaultWarmth),
			AverageClarity:        meanOr(c.clarity, defaultClarity),
		},
		Energy: EnergySummary{
			PredominantVolume: modeOr(c.volumeLevels, defaultVolume),
			AverageEnergy:     meanOr(c.energyValues, defaultEnergyMean),
			AverageBrightness: math.Round(meanOr(c.brightness, 0)),
			VolumeConsistency: volumeConsistency(c.volumeLevels),
		},
		VoiceQuality: VoiceQualitySummary{
			Overall:            modeOr(c.voiceQualities, defaultQualityOverall),
			AverageScore:       meanOr(c.qualityScores, defaultQualityScore),
			AverageBreathiness: meanOr(c.breathiness, defaultBreathiness),
			AverageHoarseness:  meanOr(c.hoarseness, defaultHoarseness),
			AverageStrain:      meanOr(c.strain, defaultStrain),
		},
		Confidence: ConfidenceSummary{
			Average:     meanOr(c.confidences, defaultConfidence),
			Consistency: consistency(c.confidences),
			Trend:       trend(c.confidences),
		},
	}
}

// sample validates a pointer sample, rejecting NaN and infinities.
func sample(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

func appendSample(dst *[]float64, v *float64) {
	if val, ok := sample(v); ok {
		*dst = append(*dst, val)
	}
}

func appendLabel(dst *[]string, v *string) {
	if v != nil && *v != "" {
		*dst = append(*dst, *v)
	}
}

func meanOr(values []float64, fallback float64) float64 {
	if len(values) == 0 {
		return fallback
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSquaredDiff := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquaredDiff += diff * diff
	}
	return math.Sqrt(sumSquaredDiff / float64(len(values)))
}

// consistency converts the coefficient of variation into a 0..1 score where
// lower variation means higher consistency. Fewer than two samples gives the
// neutral default.
func consistency(values []float64) float64 {
	if len(values) < 2 {
		return defaultConsistency
	}
	avg := meanOr(values, 0)
	denom := avg
	if denom == 0 {
		denom = 1
	}
	cv := stdDev(values, avg) / denom
	return clamp01(1 - cv)
}

// volumeConsistency measures how many distinct discrete volume levels
// appeared. Volume level is categorical, so a CV-based measure does not apply.
func volumeConsistency(levels []string) float64 {
	if len(levels) == 0 {
		return defaultConsistency
	}
	return clamp01(1 - float64(distinctCount(levels)-1)/4)
}

// trend compares the mean of the first half of the series against the second
// half. The rule needs at least three samples; with fewer it reports stable.
func trend(values []float64) string {
	if len(values) < 3 {
		return TrendStable
	}
	half := len(values) / 2
	firstAvg := meanOr(values[:half], 0)
	secondAvg := meanOr(values[half:], 0)

	switch {
	case secondAvg > firstAvg+0.1:
		return TrendImproving
	case secondAvg < firstAvg-0.1:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func rangeOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}

// modeOr returns the most frequent value, ties broken by first-seen order.
func modeOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	frequency := make(map[string]int, len(values))
	best := values[0]
	bestCount := 0
	for _, v := range values {
		frequency[v]++
		if frequency[v] > bestCount {
			bestCount = frequency[v]
			best = v
		}
	}
	return best
}

func distinctCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
