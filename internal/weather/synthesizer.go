// Package weather synthesizes per-race atmospheric conditions from circuit
// identity and a coarse weather category.
package weather

import (
	"math/rand"

	"github.com/yourusername/pitwall/internal/models"
)

// Synthesizer draws race conditions from circuit climate bands and
// weather-conditioned humidity/wind ranges. Output is intentionally
// stochastic: repeated calls with identical inputs may differ.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a synthesizer using the given randomness source.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Conditions produces the shared atmospheric state for one request. Track
// temperature is the ambient temperature plus a solar-heating offset of 5-25
// degrees, so it is always at least the ambient value.
func (s *Synthesizer) Conditions(circuit string, w models.Weather) models.RaceConditions {
	band, ok := climateTable[circuit]
	if !ok {
		band = defaultClimate
	}
	temp := float64(band.Min + s.rng.Intn(band.Max-band.Min+1))

	var humidity, wind float64
	switch w {
	case models.WeatherWet:
		humidity = s.uniform(80, 95)
		wind = s.uniform(10, 20)
	case models.WeatherMixed:
		humidity = s.uniform(60, 85)
		wind = s.uniform(5, 15)
	default:
		humidity = s.uniform(30, 70)
		wind = s.uniform(0, 10)
	}

	return models.RaceConditions{
		Circuit:     circuit,
		Weather:     w,
		Temperature: temp,
		TrackTemp:   temp + s.uniform(5, 25),
		Humidity:    humidity,
		WindSpeed:   wind,
	}
}

func (s *Synthesizer) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
