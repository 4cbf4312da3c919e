package predictor

import (
	"sort"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"

	"github.com/yourusername/pitwall/internal/models"
	"github.com/yourusername/pitwall/internal/profiles"
)

// Pre-normalization bounds on a single entrant's win likelihood. No entrant
// is ever a dead cert or a dead loss, whatever the heuristics multiply to.
const (
	winLikelihoodFloor = 0.1
	winLikelihoodCap   = 35.0
)

// pointsTable maps finishing position to championship points.
var pointsTable = map[int]int{
	1: 25, 2: 18, 3: 15, 4: 12, 5: 10,
	6: 8, 7: 6, 8: 4, 9: 2, 10: 1,
}

// Ranker turns per-entrant win-likelihood heuristics into the final field
// ordering. The raw regression positions are deliberately ignored here: the
// externally visible ranking is probability-driven end to end.
type Ranker struct {
	profiles *profiles.Store
}

func NewRanker(store *profiles.Store) *Ranker {
	return &Ranker{profiles: store}
}

// Rank computes normalized win probabilities for the field and derives final
// positions, podium/points flags and points from the probability order.
// Strategies is indexed parallel to entrants. Ties keep input order.
func (r *Ranker) Rank(entrants []models.Entrant, conditions models.RaceConditions, strategies []string) []models.PredictionRecord {
	likelihoods := make([]float64, len(entrants))
	for i, e := range entrants {
		likelihoods[i] = r.winLikelihood(e, conditions.Weather)
	}

	scale := 1.0
	if sum := floats.Sum(likelihoods); sum > 0 {
		scale = 100 / sum
	}

	records := make([]models.PredictionRecord, len(entrants))
	for i, e := range entrants {
		records[i] = models.PredictionRecord{
			Driver:         e.Driver,
			Constructor:    e.Constructor,
			Grid:           e.Grid,
			WinProbability: roundProbability(likelihoods[i] * scale),
			TireStrategy:   strategies[i],
		}
	}

	sort.SliceStable(records, func(a, b int) bool {
		return records[a].WinProbability > records[b].WinProbability
	})

	for i := range records {
		pos := i + 1
		records[i].PredictedPosition = pos
		records[i].PodiumChance = pos <= 3
		records[i].PointsChance = pos <= 10
		records[i].PointsEarned = pointsTable[pos]
	}

	return records
}

// winLikelihood estimates a single entrant's pre-normalization win chance
// from constructor strength, driver win record, grid slot and weather.
func (r *Ranker) winLikelihood(e models.Entrant, weather models.Weather) float64 {
	base := r.profiles.BaseWinChance(e.Constructor)
	driver := r.profiles.Driver(e.Driver)

	likelihood := base * driver.WinFactor * gridDecay(e.Grid) * r.weatherAdjustment(e.Driver, weather)

	if likelihood < winLikelihoodFloor {
		return winLikelihoodFloor
	}
	if likelihood > winLikelihoodCap {
		return winLikelihoodCap
	}
	return likelihood
}

// gridDecay discounts win chances by starting slot. Front rows decay fast,
// the midfield slower, the back of the grid barely matters.
func gridDecay(grid int) float64 {
	var decay float64
	switch {
	case grid <= 5:
		decay = 1.0 - float64(grid-1)*0.1
	case grid <= 10:
		decay = 0.6 - float64(grid-6)*0.08
	default:
		decay = 0.2 - float64(grid-11)*0.02
	}
	if decay < 0.01 {
		return 0.01
	}
	return decay
}

func (r *Ranker) weatherAdjustment(driver string, weather models.Weather) float64 {
	switch weather {
	case models.WeatherWet:
		if r.profiles.IsWetSpecialist(driver) {
			return 1.3
		}
		return 0.85
	case models.WeatherMixed:
		return 0.95
	default:
		return 1.0
	}
}

// roundProbability rounds to two decimal places for presentation.
func roundProbability(p float64) float64 {
	f, _ := decimal.NewFromFloat(p).Round(2).Float64()
	return f
}
