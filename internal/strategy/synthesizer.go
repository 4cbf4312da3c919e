// Package strategy synthesizes a personalized tire strategy for one race
// entrant from driver personality, team philosophy, grid position, circuit
// character and weather.
package strategy

import (
	"math/rand"

	"github.com/yourusername/pitwall/internal/models"
	"github.com/yourusername/pitwall/internal/profiles"
)

// Aggression thresholds above which the aggressive bucket is chosen, per
// weather regime.
const (
	wetAggressiveThreshold   = 0.7
	mixedAggressiveThreshold = 0.7
	dryAggressiveThreshold   = 0.75
)

// Synthesizer is the tire-strategy decision engine. Output is stochastic by
// design: identical inputs may yield different templates, but tiering,
// thresholds and precedence are fixed.
type Synthesizer struct {
	profiles *profiles.Store
	rng      *rand.Rand
}

// NewSynthesizer creates a synthesizer over the given profile store and
// randomness source.
func NewSynthesizer(store *profiles.Store, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{profiles: store, rng: rng}
}

// Synthesize picks one strategy template for the entrant. The returned string
// is always a non-empty member of the weather-conditioned catalog (or the
// fixed Ferrari call).
func (s *Synthesizer) Synthesize(driver, constructor string, grid int, w models.Weather, circuit string) string {
	dp := s.profiles.Driver(driver)
	cp := s.profiles.Constructor(constructor)
	circ := s.profiles.Circuit(circuit)

	aggression := (dp.Aggression + cp.Aggression) / 2

	// Grid tier sets the baseline: front runners protect position, the back
	// of the grid has nothing to lose.
	var altChance float64
	switch {
	case grid <= 3:
		aggression *= 0.7
		altChance = 0.10
	case grid <= 6:
		aggression *= 0.85
		altChance = 0.20
	case grid <= 10:
		altChance = 0.35
	default:
		aggression *= 1.3
		altChance = 0.50
	}

	// Hard-to-pass tracks reward strategic risk.
	if circ.OvertakingDifficulty > 0.8 {
		aggression *= 1.2
		altChance += 0.15
	}

	switch w {
	case models.WeatherWet:
		if s.profiles.IsWetSpecialist(driver) {
			aggression *= 1.2
		}
		return s.pick(wetCatalog, aggression, wetAggressiveThreshold, altChance)

	case models.WeatherMixed:
		return s.pick(mixedCatalog, aggression, mixedAggressiveThreshold, altChance)

	default:
		cat := dryNormalCatalog
		if circ.TireWear > 0.7 {
			cat = dryHighDegCatalog
		}

		switch constructor {
		case "Mercedes":
			aggression *= 0.8
		case "Red Bull Racing":
			aggression *= 1.1
		case "Ferrari":
			if s.rng.Float64() < 0.15 {
				return ferrariMasterPlan
			}
		}

		switch {
		case driver == "Max Verstappen" && grid > 5:
			aggression *= 1.3
		case driver == "Lewis Hamilton" && circ.StrategyImportance > 0.8:
			aggression *= 1.1
		}

		return s.pick(cat, aggression, dryAggressiveThreshold, altChance)
	}
}

// pick applies the fixed precedence: alternative draw first, then the
// aggression threshold, conservative otherwise.
func (s *Synthesizer) pick(cat catalog, aggression, threshold, altChance float64) string {
	if s.rng.Float64() < altChance {
		return s.choice(cat.Alternative)
	}
	if aggression > threshold {
		return s.choice(cat.Aggressive)
	}
	return s.choice(cat.Conservative)
}

func (s *Synthesizer) choice(templates []string) string {
	return templates[s.rng.Intn(len(templates))]
}
