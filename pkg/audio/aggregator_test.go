package audio

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestAggregateFramesEmpty(t *testing.T) {
	assert.Nil(t, AggregateFrames(nil))
	assert.Nil(t, AggregateFrames([]FrameMetric{}))
}

func TestDefaultAggregate(t *testing.T) {
	agg := DefaultAggregate()
	require.NotNil(t, agg)

	assert.Equal(t, OriginFallback, agg.Origin)
	assert.False(t, agg.Measured())

	assert.Equal(t, 150, agg.Pitch.Average)
	assert.Equal(t, 50, agg.Pitch.Range)
	assert.Equal(t, "medium", agg.Pitch.PredominantLevel)
	assert.Equal(t, TrendStable, agg.Pitch.PredominantTrend)
	assert.Equal(t, 0.7, agg.Pitch.Consistency)

	assert.Equal(t, "confident", agg.Tone.PredominantEmotion)
	assert.Equal(t, 3, agg.Tone.EmotionalVariety)
	assert.Equal(t, 0.6, agg.Tone.AverageWarmth)
	assert.Equal(t, 0.75, agg.Tone.AverageClarity)
	assert.Equal(t, 0.65, agg.Tone.AverageExpressiveness)

	assert.Equal(t, "medium_volume", agg.Energy.PredominantVolume)
	assert.Equal(t, 2800.0, agg.Energy.AverageBrightness)
	assert.Equal(t, 0.7, agg.Energy.VolumeConsistency)

	assert.Equal(t, "good", agg.VoiceQuality.Overall)
	assert.Equal(t, 0.75, agg.VoiceQuality.AverageScore)
	assert.Equal(t, 0.3, agg.VoiceQuality.AverageBreathiness)
	assert.Equal(t, 0.2, agg.VoiceQuality.AverageHoarseness)
	assert.Equal(t, 0.25, agg.VoiceQuality.AverageStrain)

	assert.Equal(t, 0.72, agg.Confidence.Average)
	assert.Equal(t, 0.68, agg.Confidence.Consistency)
	assert.Equal(t, TrendStable, agg.Confidence.Trend)
}

func TestAggregateFramesPitch(t *testing.T) {
	frames := []FrameMetric{
		{Pitch: &PitchSample{Mean: fptr(100), Level: sptr("low"), Trend: sptr("stable")}},
		{Pitch: &PitchSample{Mean: fptr(200), Level: sptr("high"), Trend: sptr("stable")}},
		{Pitch: &PitchSample{Mean: fptr(150), Level: sptr("high"), Trend: sptr("rising")}},
	}

	agg := AggregateFrames(frames)
	require.NotNil(t, agg)
	require.True(t, agg.Measured())

	assert.Equal(t, 150, agg.Pitch.Average)
	assert.Equal(t, 100, agg.Pitch.Range)
	assert.Equal(t, "high", agg.Pitch.PredominantLevel)
	assert.Equal(t, "stable", agg.Pitch.PredominantTrend)
}

func TestAggregateFramesRejectsInvalidPitch(t *testing.T) {
	frames := []FrameMetric{
		{Pitch: &PitchSample{Mean: fptr(120)}},
		{Pitch: &PitchSample{Mean: fptr(0)}},
		{Pitch: &PitchSample{Mean: fptr(-40)}},
		{Pitch: &PitchSample{Mean: fptr(math.NaN())}},
		{Pitch: &PitchSample{Mean: fptr(math.Inf(1))}},
		{Pitch: &PitchSample{}},
	}

	agg := AggregateFrames(frames)
	require.NotNil(t, agg)

	// Only the single positive finite value survives the filter.
	assert.Equal(t, 120, agg.Pitch.Average)
	assert.Equal(t, 0, agg.Pitch.Range)
	assert.Equal(t, defaultConsistency, agg.Pitch.Consistency)
}

func TestAggregateFramesSeriesDefaults(t *testing.T) {
	// A frame with only a confidence score leaves the other series empty, so
	// every other dimension takes its per-series default.
	frames := []FrameMetric{{ConfidenceScore: fptr(0.8)}}

	agg := AggregateFrames(frames)
	require.NotNil(t, agg)
	assert.True(t, agg.Measured())

	assert.Equal(t, 0, agg.Pitch.Average)
	assert.Equal(t, "medium", agg.Pitch.PredominantLevel)
	assert.Equal(t, TrendStable, agg.Pitch.PredominantTrend)
	assert.Equal(t, "neutral", agg.Tone.PredominantEmotion)
	assert.Equal(t, 0.5, agg.Tone.AverageExpressiveness)
	assert.Equal(t, "normal", agg.Energy.PredominantVolume)
	assert.Equal(t, 0.05, agg.Energy.AverageEnergy)
	assert.Equal(t, "good", agg.VoiceQuality.Overall)
	assert.Equal(t, 0.7, agg.VoiceQuality.AverageScore)
	assert.Equal(t, 0.8, agg.Confidence.Average)
}

func TestConsistency(t *testing.T) {
	assert.Equal(t, defaultConsistency, consistency(nil))
	assert.Equal(t, defaultConsistency, consistency([]float64{5}))

	// Identical samples have zero variation.
	assert.Equal(t, 1.0, consistency([]float64{3, 3, 3, 3}))

	// Wildly varying samples clamp to zero rather than going negative.
	assert.Equal(t, 0.0, consistency([]float64{0, 0, 0, 100}))
}

func TestVolumeConsistency(t *testing.T) {
	assert.Equal(t, defaultConsistency, volumeConsistency(nil))
	assert.Equal(t, 1.0, volumeConsistency([]string{"normal", "normal"}))
	assert.Equal(t, 0.75, volumeConsistency([]string{"normal", "loud"}))
	assert.Equal(t, 0.0, volumeConsistency([]string{"a", "b", "c", "d", "e"}))
}

func TestTrend(t *testing.T) {
	assert.Equal(t, TrendStable, trend(nil))
	assert.Equal(t, TrendStable, trend([]float64{0.1, 0.9}))
	assert.Equal(t, TrendImproving, trend([]float64{0.2, 0.2, 0.8, 0.8}))
	assert.Equal(t, TrendDeclining, trend([]float64{0.8, 0.8, 0.2, 0.2}))
	assert.Equal(t, TrendStable, trend([]float64{0.5, 0.5, 0.55, 0.52}))
}

func TestModeFirstSeenTieBreak(t *testing.T) {
	assert.Equal(t, "calm", modeOr([]string{"calm", "excited", "excited", "calm"}, "x"))
	assert.Equal(t, "fallback", modeOr(nil, "fallback"))
}

func TestAggregateAsyncMatchesSync(t *testing.T) {
	frames := make([]FrameMetric, 0, 500)
	for i := 0; i < 500; i++ {
		frames = append(frames, FrameMetric{
			Pitch:           &PitchSample{Mean: fptr(100 + float64(i%50)), Level: sptr("medium")},
			ConfidenceScore: fptr(0.5 + float64(i)/1000),
		})
	}

	want := AggregateFrames(frames)

	res := <-AggregateAsync(context.Background(), frames, 64)
	require.NoError(t, res.Err)
	assert.Equal(t, want, res.Aggregate)
}

func TestAggregateAsyncEmpty(t *testing.T) {
	res := <-AggregateAsync(context.Background(), nil, 0)
	require.NoError(t, res.Err)
	assert.Nil(t, res.Aggregate)
}

func TestAggregateAsyncCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames := make([]FrameMetric, 1000)
	select {
	case res := <-AggregateAsync(ctx, frames, 10):
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.Nil(t, res.Aggregate)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for async result")
	}
}
