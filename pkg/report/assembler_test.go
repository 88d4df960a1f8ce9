package report

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-insights/pkg/audio"
	"interview-insights/pkg/correlation"
	"interview-insights/pkg/errors"
	"interview-insights/pkg/session"
)

func fptr(v float64) *float64 { return &v }

func testSession(id string) *session.Session {
	return &session.Session{
		ID:        id,
		Questions: []string{"Tell me about yourself", "Why this role"},
		Answers: []string{
			"Well I have been um working on distributed systems for five years",
			"I enjoy the problem space and the team culture here",
		},
		Timings: []session.Timing{
			{WordsSpoken: 12, TimeUsed: 6},
			{WordsSpoken: 10, TimeUsed: 5},
		},
	}
}

func testVerbal() *correlation.VerbalScore {
	return &correlation.VerbalScore{
		OverallScore: 75,
		Metrics: map[string]correlation.Metric{
			correlation.MetricAnswerCorrectness:     {Score: 80},
			correlation.MetricConceptsUnderstanding: {Score: 70},
			correlation.MetricDomainKnowledge:       {Score: 75},
			correlation.MetricResponseStructure:     {Score: 72},
			correlation.MetricDepthOfExplanation:    {Score: 68},
			correlation.MetricVocabularyRichness:    {Score: 70},
		},
	}
}

func TestGenerateFullReport(t *testing.T) {
	as := NewAssembler(nil, Options{})

	s := testSession("s-full")
	s.AudioAnalysis = []session.FrameBatch{
		{Metrics: []audio.FrameMetric{
			{Pitch: &audio.PitchSample{Mean: fptr(160)}, ConfidenceScore: fptr(0.7)},
			{Pitch: &audio.PitchSample{Mean: fptr(170)}, ConfidenceScore: fptr(0.75)},
			{Pitch: &audio.PitchSample{Mean: fptr(165)}, ConfidenceScore: fptr(0.8)},
		}},
	}

	r, err := as.Generate(context.Background(), s, testVerbal())
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.NotEmpty(t, r.ID)
	assert.False(t, r.GeneratedAt.IsZero())
	assert.True(t, r.AudioMetrics.Measured())
	assert.Empty(t, r.Fallbacks)
	assert.NotNil(t, r.Correlations)
	assert.False(t, r.Correlations.VerbalDegraded)
	assert.Equal(t, 165, r.PitchProfile.Average)
	assert.Equal(t, r.Analytics.PauseAnalysis.Pattern, r.PauseAnalysisDetailed.Pattern)
	assert.Contains(t, r.Feedback, "Overall confidence level")
	assert.Equal(t, 2, r.SpeakingStats.QuestionsAnswered)
	assert.Equal(t, 11, r.SpeakingStats.AvgWordsPerAnswer)
}

func TestGenerateNoAudioUsesDefaults(t *testing.T) {
	as := NewAssembler(nil, Options{})

	r, err := as.Generate(context.Background(), testSession("s-noaudio"), testVerbal())
	require.NoError(t, err)

	assert.Equal(t, audio.OriginFallback, r.AudioMetrics.Origin)
	assert.Contains(t, r.Fallbacks, FallbackAudioMetrics)
	assert.Equal(t, 150, r.PitchProfile.Average)
	assert.Equal(t, 0.72, r.VolumeEnergyConfidence.Confidence.Average)
	assert.Equal(t, "medium volume", r.VolumeEnergyConfidence.Volume.Level)

	// The report must still serialize cleanly.
	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"audioMetrics"`)
}

func TestGenerateNoVerbalDegrades(t *testing.T) {
	as := NewAssembler(nil, Options{})

	r, err := as.Generate(context.Background(), testSession("s-noverbal"), nil)
	require.NoError(t, err)

	assert.Contains(t, r.Fallbacks, FallbackVerbalScore)
	assert.True(t, r.Correlations.VerbalDegraded)
}

func TestGenerateEmptySession(t *testing.T) {
	as := NewAssembler(nil, Options{})

	r, err := as.Generate(context.Background(), &session.Session{ID: "s-empty"}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrInsufficientData))

	// Cleanly empty, not partially populated.
	require.NotNil(t, r)
	assert.Nil(t, r.Analytics)
	assert.Nil(t, r.AudioMetrics)
	assert.Empty(t, r.ActionItems)
	assert.Empty(t, r.Insights.Strengths)
	assert.False(t, r.GeneratedAt.IsZero())
}

func TestGenerateMemoized(t *testing.T) {
	as := NewAssembler(nil, Options{})

	first, err := as.Generate(context.Background(), testSession("s-memo"), testVerbal())
	require.NoError(t, err)
	second, err := as.Generate(context.Background(), testSession("s-memo"), testVerbal())
	require.NoError(t, err)

	// Verbatim: same instance, identical JSON including generatedAt.
	assert.Same(t, first, second)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.Equal(t, a, b)
}

func TestGenerateFirstWriterWins(t *testing.T) {
	as := NewAssembler(nil, Options{})

	const workers = 8
	results := make([]*Report, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := as.Generate(context.Background(), testSession("s-race"), testVerbal())
			require.NoError(t, err)
			results[i] = r
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, 1, as.cache.len())
}

func TestMemoCachePutIfAbsent(t *testing.T) {
	c := newMemoCache()

	first := &Report{ID: "first"}
	second := &Report{ID: "second"}

	got, stored := c.putIfAbsent("k", first)
	assert.True(t, stored)
	assert.Same(t, first, got)

	// Later write for the same key is a no-op.
	got, stored = c.putIfAbsent("k", second)
	assert.False(t, stored)
	assert.Same(t, first, got)

	got, ok := c.get("k")
	assert.True(t, ok)
	assert.Same(t, first, got)
}
