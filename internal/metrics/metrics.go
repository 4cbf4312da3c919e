// Package metrics provides the centralized Prometheus registry for the
// prediction service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pitwall",
		Name:      "predictions_total",
		Help:      "Total number of race prediction requests served",
	})
	PredictionFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pitwall",
		Name:      "prediction_failures_total",
		Help:      "Total number of prediction requests that failed",
	})
	EncodingMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pitwall",
		Name:      "encoding_misses_total",
		Help:      "Categorical values unseen during model fitting, by feature",
	}, []string{"feature"})
	InferenceFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pitwall",
		Name:      "inference_fallbacks_total",
		Help:      "Entrants predicted via the grid-perturbation fallback",
	})
	ScalingFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pitwall",
		Name:      "scaling_failures_total",
		Help:      "Feature vectors served unscaled after a scaler failure",
	})
	StrategiesSynthesizedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pitwall",
		Name:      "strategies_synthesized_total",
		Help:      "Total number of tire strategies synthesized",
	})
	PredictionLogFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pitwall",
		Name:      "prediction_log_failures_total",
		Help:      "Prediction log writes that failed and were swallowed",
	})
	ResultsSyncRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pitwall",
		Name:      "results_sync_runs_total",
		Help:      "Historical results sync runs",
	})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pitwall",
		Name:      "response_cache_hits_total",
		Help:      "Prediction requests served from the response cache",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pitwall",
		Name:      "response_cache_misses_total",
		Help:      "Prediction requests that missed the response cache",
	})
)

// Gauge metrics
var (
	ArtifactsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pitwall",
		Name:      "artifacts_loaded",
		Help:      "1 when the trained model artifacts loaded at startup, 0 otherwise",
	})
	LastSyncRaces = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pitwall",
		Name:      "last_sync_races",
		Help:      "Race results fetched by the most recent sync run",
	})
)

// Histogram metrics
var (
	PredictionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pitwall",
		Name:      "prediction_duration_seconds",
		Help:      "Duration of the full prediction pipeline in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	ResultsSyncDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pitwall",
		Name:      "results_sync_duration_seconds",
		Help:      "Duration of historical results sync runs in seconds",
		Buckets:   []float64{1, 5, 10, 30, 60, 300, 600},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PredictionsTotal)
		registry.MustRegister(PredictionFailuresTotal)
		registry.MustRegister(EncodingMissesTotal)
		registry.MustRegister(InferenceFallbacksTotal)
		registry.MustRegister(ScalingFailuresTotal)
		registry.MustRegister(StrategiesSynthesizedTotal)
		registry.MustRegister(PredictionLogFailuresTotal)
		registry.MustRegister(ResultsSyncRunsTotal)
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)

		registry.MustRegister(ArtifactsLoaded)
		registry.MustRegister(LastSyncRaces)

		registry.MustRegister(PredictionDuration)
		registry.MustRegister(ResultsSyncDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordPrediction records one served prediction request.
func RecordPrediction(durationSeconds float64) {
	PredictionsTotal.Inc()
	PredictionDuration.Observe(durationSeconds)
}

// RecordEncodingMiss records an unseen categorical value for a feature.
func RecordEncodingMiss(feature string) {
	EncodingMissesTotal.WithLabelValues(feature).Inc()
}

// RecordInferenceFallback records one entrant served by the grid fallback.
func RecordInferenceFallback() {
	InferenceFallbacksTotal.Inc()
}

// RecordResultsSync records one historical results sync run.
func RecordResultsSync(races int, durationSeconds float64) {
	ResultsSyncRunsTotal.Inc()
	LastSyncRaces.Set(float64(races))
	ResultsSyncDuration.Observe(durationSeconds)
}
