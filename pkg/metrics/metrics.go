// Package metrics collects pipeline instrumentation on a private registry.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var (
	registry       *prometheus.Registry
	registryOnce   sync.Once
	metricsEnabled = true

	// Report pipeline metrics
	ReportsGenerated  *prometheus.CounterVec
	ReportDuration    prometheus.Histogram
	ReportCacheHits   prometheus.Counter
	ReportCacheMisses prometheus.Counter

	// Aggregation metrics
	FramesProcessed     prometheus.Counter
	AggregationDuration prometheus.Histogram
	FallbackAggregates  prometheus.Counter

	// Correlation metrics
	DegradedCorrelations prometheus.Counter
)

// Init initializes all metrics and registers them with Prometheus
func Init(logger *logrus.Logger) {
	registryOnce.Do(func() {
		registry = prometheus.NewRegistry()

		ReportsGenerated = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insights_reports_generated_total",
				Help: "Total number of reports generated",
			},
			[]string{"outcome"},
		)

		ReportDuration = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insights_report_duration_seconds",
				Help:    "Time spent assembling a report",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		)

		ReportCacheHits = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "insights_report_cache_hits_total",
				Help: "Total number of memoized report hits",
			},
		)

		ReportCacheMisses = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "insights_report_cache_misses_total",
				Help: "Total number of report computations not served from cache",
			},
		)

		FramesProcessed = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "insights_audio_frames_processed_total",
				Help: "Total number of audio feature frames aggregated",
			},
		)

		AggregationDuration = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insights_audio_aggregation_duration_seconds",
				Help:    "Time spent aggregating audio frames",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
			},
		)

		FallbackAggregates = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "insights_audio_fallback_aggregates_total",
				Help: "Total number of sessions scored with default audio aggregates",
			},
		)

		DegradedCorrelations = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "insights_correlations_degraded_total",
				Help: "Total number of correlation analyses without a verbal score",
			},
		)

		registry.MustRegister(
			ReportsGenerated,
			ReportDuration,
			ReportCacheHits,
			ReportCacheMisses,
			FramesProcessed,
			AggregationDuration,
			FallbackAggregates,
			DegradedCorrelations,
		)

		logger.Info("Prometheus metrics initialized")
	})
}

// GetRegistry returns the private registry, initializing metrics with the
// standard logger if Init was never called.
func GetRegistry() *prometheus.Registry {
	Init(logrus.StandardLogger())
	return registry
}

// SetEnabled toggles metric recording.
func SetEnabled(enabled bool) {
	metricsEnabled = enabled
}

// Enabled reports whether metric recording is on.
func Enabled() bool {
	return metricsEnabled
}

// ObserveReportDuration records one report assembly duration.
func ObserveReportDuration(start time.Time) {
	if metricsEnabled && ReportDuration != nil {
		ReportDuration.Observe(time.Since(start).Seconds())
	}
}

// ObserveAggregation records one aggregation pass.
func ObserveAggregation(start time.Time, frames int) {
	if !metricsEnabled || AggregationDuration == nil {
		return
	}
	AggregationDuration.Observe(time.Since(start).Seconds())
	FramesProcessed.Add(float64(frames))
}
