// Package report assembles the final multi-factor performance report from
// the analytics, aggregation, scoring, correlation and planning stages.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"interview-insights/pkg/audio"
	"interview-insights/pkg/correlation"
	"interview-insights/pkg/errors"
	"interview-insights/pkg/metrics"
	"interview-insights/pkg/plan"
	"interview-insights/pkg/scoring"
	"interview-insights/pkg/session"
	"interview-insights/pkg/speech"
)

// Options tunes report assembly.
type Options struct {
	// Scoring selects the overall-confidence formula variant.
	Scoring scoring.Options
	// AudioChunkSize is handed to the async aggregator; zero means its
	// default.
	AudioChunkSize int
}

// Assembler runs the full pipeline and memoizes results per session
// fingerprint. Safe for concurrent use.
type Assembler struct {
	logger *logrus.Logger
	engine *correlation.Engine
	opts   Options
	cache  *memoCache
}

// NewAssembler creates an assembler. A nil logger falls back to the logrus
// standard logger.
func NewAssembler(logger *logrus.Logger, opts Options) *Assembler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Assembler{
		logger: logger,
		engine: correlation.NewEngine(logger),
		opts:   opts,
		cache:  newMemoCache(),
	}
}

// Fallback section names recorded on the report.
const (
	FallbackAudioMetrics = "audioMetrics"
	FallbackVerbalScore  = "verbalScore"
)

// Generate produces the performance report for a session. The verbal score
// may be nil; verbal-dependent sections degrade and are listed under
// Fallbacks. A session with no answers yields a cleanly empty report and
// ErrInsufficientData. Repeat calls for the same session fingerprint return
// the memoized report verbatim.
func (as *Assembler) Generate(ctx context.Context, s *session.Session, verbal *correlation.VerbalScore) (*Report, error) {
	start := time.Now()
	fingerprint := s.Fingerprint()

	if cached, ok := as.cache.get(fingerprint); ok {
		if metrics.Enabled() && metrics.ReportCacheHits != nil {
			metrics.ReportCacheHits.Inc()
		}
		as.logger.WithField("fingerprint", fingerprint).Debug("Returning memoized report")
		return cached, nil
	}
	if metrics.Enabled() && metrics.ReportCacheMisses != nil {
		metrics.ReportCacheMisses.Inc()
	}

	if len(s.Answers) == 0 {
		if metrics.Enabled() && metrics.ReportsGenerated != nil {
			metrics.ReportsGenerated.WithLabelValues("insufficient_data").Inc()
		}
		return emptyReport(), errors.NewInsufficientData(fingerprint)
	}

	analytics := speech.Analyze(s)

	agg, err := as.aggregateAudio(ctx, s)
	if err != nil {
		return nil, err
	}

	fallbacks := []string{}
	if agg == nil {
		fallbacks = append(fallbacks, FallbackAudioMetrics)
		if metrics.Enabled() && metrics.FallbackAggregates != nil {
			metrics.FallbackAggregates.Inc()
		}
	}
	if verbal == nil {
		fallbacks = append(fallbacks, FallbackVerbalScore)
		if metrics.Enabled() && metrics.DegradedCorrelations != nil {
			metrics.DegradedCorrelations.Inc()
		}
	}

	scores := scoring.Score(analytics, as.opts.Scoring)
	insights := scoring.GenerateInsights(analytics, scores, agg)
	correlations := as.engine.Analyze(verbal, analytics, agg)
	actionItems := plan.BuildActionItems(correlations)

	enhanced := scoring.EnsureAggregate(agg)

	r := &Report{
		ID:                     uuid.NewString(),
		Analytics:              analytics,
		AudioMetrics:           enhanced,
		ConfidenceScores:       scores,
		Insights:               insights,
		Feedback:               feedback(analytics, scores),
		Correlations:           correlations,
		ActionItems:            actionItems,
		PitchProfile:           pitchProfile(enhanced),
		VoiceQuality:           voiceQualitySection(enhanced),
		PauseAnalysisDetailed:  pauseDetail(analytics),
		FillerWordsBreakdown:   fillerBreakdown(analytics),
		SpeakingStats:          speakingStats(analytics),
		VolumeEnergyConfidence: volumeEnergyConfidence(enhanced),
		Fallbacks:              fallbacks,
		GeneratedAt:            time.Now().UTC(),
	}

	final, stored := as.cache.putIfAbsent(fingerprint, r)
	if !stored {
		as.logger.WithField("fingerprint", fingerprint).
			Debug("Concurrent computation finished first, using cached report")
	}

	if metrics.Enabled() && metrics.ReportsGenerated != nil {
		metrics.ReportsGenerated.WithLabelValues("ok").Inc()
	}
	metrics.ObserveReportDuration(start)

	as.logger.WithFields(logrus.Fields{
		"fingerprint":  fingerprint,
		"action_items": len(final.ActionItems),
		"fallbacks":    final.Fallbacks,
	}).Info("Performance report generated")

	return final, nil
}

// aggregateAudio runs the async aggregator and waits for its result, so
// large frame sequences never block other work on the caller's goroutine.
// Returns nil when the session has no frames.
func (as *Assembler) aggregateAudio(ctx context.Context, s *session.Session) (*audio.Aggregate, error) {
	frames := s.Frames()
	if len(frames) == 0 {
		return nil, nil
	}

	start := time.Now()
	res := <-audio.AggregateAsync(ctx, frames, as.opts.AudioChunkSize)
	if res.Err != nil {
		return nil, errors.Wrap(res.Err, "audio aggregation interrupted")
	}
	metrics.ObserveAggregation(start, len(frames))
	return res.Aggregate, nil
}

func feedback(a *speech.Analytics, scores scoring.ScoreSet) string {
	return fmt.Sprintf(
		"Speech rate: %s. %s Filler words usage: %.1f%%. Pause pattern: %s. Overall confidence level: %d%%.",
		a.SpeechRate, a.SpeechRateDesc, a.FillerPercentage, a.PauseAnalysis.Pattern, scores.OverallConfidence,
	)
}

// emptyReport is the cleanly empty shape returned for insufficient data:
// every list present but empty, no section populated from defaults.
func emptyReport() *Report {
	return &Report{
		ID: uuid.NewString(),
		Insights: scoring.Insights{
			Strengths:    []string{},
			Improvements: []string{},
		},
		ActionItems: []plan.ActionItem{},
		Fallbacks:   []string{},
		GeneratedAt: time.Now().UTC(),
	}
}
