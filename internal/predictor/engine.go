// Package predictor runs the full race-outcome pipeline: conditions,
// per-entrant strategy, feature building, model inference and probability
// ranking.
package predictor

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitwall/internal/artifacts"
	"github.com/yourusername/pitwall/internal/features"
	"github.com/yourusername/pitwall/internal/metrics"
	"github.com/yourusername/pitwall/internal/models"
	"github.com/yourusername/pitwall/internal/predlog"
	"github.com/yourusername/pitwall/internal/profiles"
	"github.com/yourusername/pitwall/internal/strategy"
	"github.com/yourusername/pitwall/internal/weather"
)

var (
	// ErrNoEntrants is returned for a request with an empty field.
	ErrNoEntrants = errors.New("prediction request has no entrants")
)

// Engine wires the pipeline stages together. Construct once at startup; all
// stages are read-only afterwards and the engine is safe for concurrent use
// provided its randomness source is.
type Engine struct {
	artifacts *artifacts.Store
	profiles  *profiles.Store
	weather   *weather.Synthesizer
	strategy  *strategy.Synthesizer
	outcome   *OutcomePredictor
	ranker    *Ranker
	sink      predlog.Sink
	logger    *logrus.Logger
	now       func() time.Time
}

// NewEngine builds the pipeline. store may be nil when artifacts failed to
// load; Predict then returns artifacts.ErrUnavailable while strategy
// synthesis keeps working for callers that use it directly.
func NewEngine(store *artifacts.Store, prof *profiles.Store, rng *rand.Rand, sink predlog.Sink, logger *logrus.Logger) *Engine {
	e := &Engine{
		artifacts: store,
		profiles:  prof,
		weather:   weather.NewSynthesizer(rng),
		strategy:  strategy.NewSynthesizer(prof, rng),
		ranker:    NewRanker(prof),
		sink:      sink,
		logger:    logger,
		now:       time.Now,
	}
	if store != nil {
		e.outcome = NewOutcomePredictor(store, rng, logger)
		metrics.ArtifactsLoaded.Set(1)
	}
	return e
}

// Available reports whether the trained artifacts loaded and Predict can
// serve model-backed forecasts.
func (e *Engine) Available() bool {
	return e.artifacts != nil
}

// Strategy synthesizes a tire strategy for one entrant without running the
// model pipeline. Works even when artifacts are unavailable.
func (e *Engine) Strategy(driver, constructor string, grid int, w models.Weather, circuit string) string {
	metrics.StrategiesSynthesizedTotal.Inc()
	return e.strategy.Synthesize(driver, constructor, grid, w, circuit)
}

// Predict runs the whole pipeline for one race. Per-entrant model failures
// degrade to the grid fallback; only missing artifacts or an empty field
// fail the request.
func (e *Engine) Predict(ctx context.Context, circuit string, w models.Weather, entrants []models.Entrant) (*models.RaceForecast, error) {
	start := e.now()

	if e.artifacts == nil {
		metrics.PredictionFailuresTotal.Inc()
		return nil, artifacts.ErrUnavailable
	}
	if len(entrants) == 0 {
		metrics.PredictionFailuresTotal.Inc()
		return nil, ErrNoEntrants
	}
	if !w.Valid() {
		// Unrecognized categories behave as dry running.
		w = models.WeatherDry
	}

	conditions := e.weather.Conditions(circuit, w)
	circuitProfile := e.profiles.Circuit(circuit)

	strategies := make([]string, len(entrants))
	for i, ent := range entrants {
		strategies[i] = e.Strategy(ent.Driver, ent.Constructor, ent.Grid, w, circuit)

		vec, misses := features.Build(features.Input{
			Entrant:      ent,
			Conditions:   conditions,
			Driver:       e.profiles.Driver(ent.Driver),
			Constructor:  e.profiles.Constructor(ent.Constructor),
			Circuit:      circuitProfile,
			TireStrategy: strategies[i],
		}, e.artifacts.Encoders)
		for _, feature := range misses {
			metrics.RecordEncodingMiss(feature)
		}

		// The raw regression output is advisory only; the ranker owns the
		// externally visible ordering. Computed anyway so fallback and
		// scaling problems surface in logs and metrics, not in results.
		out := e.outcome.Predict(vec, ent.Grid)
		if out.Fallback {
			metrics.RecordInferenceFallback()
		}
		if !out.Scaled {
			metrics.ScalingFailuresTotal.Inc()
		}
	}

	// Rank returns records ordered by probability, which is already final
	// position ascending.
	records := e.ranker.Rank(entrants, conditions, strategies)

	forecast := &models.RaceForecast{
		RequestID:   uuid.New(),
		GeneratedAt: start,
		Conditions:  conditions,
		Predictions: records,
	}

	e.writeLog(ctx, forecast)

	elapsed := e.now().Sub(start).Seconds()
	metrics.RecordPrediction(elapsed)
	e.logger.WithFields(logrus.Fields{
		"request_id": forecast.RequestID,
		"circuit":    circuit,
		"weather":    w,
		"entrants":   len(entrants),
		"top_pick":   forecast.TopPick().Driver,
		"elapsed_ms": elapsed * 1000,
	}).Info("race forecast generated")

	return forecast, nil
}

func (e *Engine) writeLog(ctx context.Context, f *models.RaceForecast) {
	if e.sink == nil {
		return
	}
	if err := e.sink.Write(ctx, predlog.FromForecast(f)); err != nil {
		metrics.PredictionLogFailuresTotal.Inc()
		e.logger.WithFields(logrus.Fields{
			"request_id": f.RequestID,
			"circuit":    f.Conditions.Circuit,
		}).WithError(err).Warn("prediction log write failed")
	}
}
