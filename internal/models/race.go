// Package models defines the domain types shared across the prediction pipeline.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Weather is the coarse weather category supplied with a prediction request.
type Weather string

// Supported weather categories. Unrecognized values behave as Dry.
const (
	WeatherDry   Weather = "Dry"
	WeatherMixed Weather = "Mixed"
	WeatherWet   Weather = "Wet"
)

// Valid reports whether w is one of the supported categories.
func (w Weather) Valid() bool {
	switch w {
	case WeatherDry, WeatherMixed, WeatherWet:
		return true
	}
	return false
}

// Entrant is one driver/constructor/grid tuple in a prediction request.
type Entrant struct {
	Driver      string `json:"driver" binding:"required"`
	Constructor string `json:"constructor" binding:"required"`
	Grid        int    `json:"grid" binding:"required,gte=1"`
}

// RaceConditions holds the synthesized atmospheric state for one request.
// Created once per request and shared read-only across all entrants.
type RaceConditions struct {
	Circuit     string  `json:"circuit"`
	Weather     Weather `json:"weather"`
	Temperature float64 `json:"temperature"`
	TrackTemp   float64 `json:"track_temp"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// PredictionRecord is the per-entrant output of the pipeline. PredictedPosition
// is assigned from the probability ranking, never from the raw regression
// output; across one forecast the positions form a permutation of 1..N.
type PredictionRecord struct {
	Driver            string  `json:"driver"`
	Constructor       string  `json:"constructor"`
	Grid              int     `json:"grid"`
	PredictedPosition int     `json:"predicted_position"`
	PodiumChance      bool    `json:"podium_chance"`
	PointsChance      bool    `json:"points_chance"`
	PointsEarned      int     `json:"points_earned"`
	WinProbability    float64 `json:"win_probability"`
	TireStrategy      string  `json:"tire_strategy"`
}

// RaceForecast is the full response for one prediction request, predictions
// sorted by final position ascending.
type RaceForecast struct {
	RequestID   uuid.UUID          `json:"request_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Conditions  RaceConditions     `json:"race_info"`
	Predictions []PredictionRecord `json:"predictions"`
}

// TopPick returns the predicted winner, or a zero record for an empty forecast.
func (f *RaceForecast) TopPick() PredictionRecord {
	if len(f.Predictions) == 0 {
		return PredictionRecord{}
	}
	return f.Predictions[0]
}
