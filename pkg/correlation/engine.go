// Package correlation compares the externally supplied verbal content score
// against the non-verbal delivery profile, producing per-factor signed
// impact scores and an overall correlation strength.
package correlation

import (
	"github.com/sirupsen/logrus"

	"interview-insights/pkg/audio"
	"interview-insights/pkg/scoring"
	"interview-insights/pkg/speech"
)

// Engine runs the factor analyses. Safe for concurrent use; it holds no
// per-session state.
type Engine struct {
	logger *logrus.Logger
}

// NewEngine creates an engine. A nil logger falls back to the logrus
// standard logger.
func NewEngine(logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Engine{logger: logger}
}

// Analyze produces the full correlation set. A nil verbal score is not an
// error: the verbal-dependent comparisons degrade to their audio-only
// branches and the result is flagged so the report can mark the sections.
// The aggregate may be nil; documented fallback defaults are used.
func (e *Engine) Analyze(verbal *VerbalScore, a *speech.Analytics, agg *audio.Aggregate) *Correlations {
	agg = scoring.EnsureAggregate(agg)

	if verbal == nil {
		e.logger.WithField("reason", "missing verbal score").
			Warn("Correlation degraded to audio-only analysis")
	}

	c := &Correlations{
		SpeechRateImpact:      analyzeSpeechRate(verbal, a),
		FillerWordsImpact:     analyzeFillerWords(verbal, a),
		PausePatternImpact:    analyzePausePattern(verbal, a),
		ConfidenceCorrelation: analyzeConfidence(verbal, agg),
		FluencyImpact:         analyzeFluency(verbal, a),
		OverallCorrelation:    analyzeOverall(verbal, a, agg),
		VerbalDegraded:        verbal == nil,
	}

	e.logger.WithFields(logrus.Fields{
		"correlation_strength": c.OverallCorrelation.CorrelationStrength,
		"interpretation":       c.OverallCorrelation.Interpretation.Level,
		"filler_severity":      c.FillerWordsImpact.Severity,
	}).Debug("Correlation analysis complete")

	return c
}
