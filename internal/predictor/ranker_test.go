package predictor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pitwall/internal/models"
	"github.com/yourusername/pitwall/internal/profiles"
)

func testField(n int) ([]models.Entrant, []string) {
	drivers := []string{
		"Max Verstappen", "Lando Norris", "Charles Leclerc", "Lewis Hamilton",
		"Oscar Piastri", "George Russell", "Carlos Sainz", "Fernando Alonso",
		"Sergio Perez", "Lance Stroll", "Pierre Gasly", "Esteban Ocon",
		"Alexander Albon", "Yuki Tsunoda", "Nico Hulkenberg", "Kevin Magnussen",
		"Valtteri Bottas", "Zhou Guanyu", "Daniel Ricciardo", "Logan Sargeant",
	}
	constructors := []string{
		"Red Bull", "McLaren", "Ferrari", "Mercedes",
		"McLaren", "Mercedes", "Ferrari", "Aston Martin",
		"Red Bull", "Aston Martin", "Alpine", "Alpine",
		"Williams", "RB", "Haas", "Haas",
		"Kick Sauber", "Kick Sauber", "RB", "Williams",
	}

	entrants := make([]models.Entrant, n)
	strategies := make([]string, n)
	for i := 0; i < n; i++ {
		entrants[i] = models.Entrant{
			Driver:      drivers[i%len(drivers)],
			Constructor: constructors[i%len(constructors)],
			Grid:        i + 1,
		}
		strategies[i] = "Medium → Hard"
	}
	return entrants, strategies
}

func TestRankPositionsArePermutation(t *testing.T) {
	ranker := NewRanker(profiles.NewStore())
	conditions := models.RaceConditions{Circuit: "Monaco Circuit", Weather: models.WeatherDry}

	for _, n := range []int{1, 2, 5, 20} {
		t.Run(fmt.Sprintf("field_of_%d", n), func(t *testing.T) {
			entrants, strategies := testField(n)
			records := ranker.Rank(entrants, conditions, strategies)

			require.Len(t, records, n)
			seen := make(map[int]bool, n)
			for i, rec := range records {
				assert.Equal(t, i+1, rec.PredictedPosition, "records come back position ascending")
				assert.False(t, seen[rec.PredictedPosition])
				seen[rec.PredictedPosition] = true
			}
		})
	}
}

func TestRankProbabilitiesSumToHundred(t *testing.T) {
	ranker := NewRanker(profiles.NewStore())
	entrants, strategies := testField(20)

	records := ranker.Rank(entrants, models.RaceConditions{Weather: models.WeatherWet}, strategies)

	var sum float64
	for _, rec := range records {
		assert.Greater(t, rec.WinProbability, 0.0)
		sum += rec.WinProbability
	}
	// Per-record rounding to two decimals leaves at most n*0.005 drift.
	assert.InDelta(t, 100.0, sum, 0.1)
}

func TestRankPodiumPointsAndScoring(t *testing.T) {
	ranker := NewRanker(profiles.NewStore())
	entrants, strategies := testField(20)

	records := ranker.Rank(entrants, models.RaceConditions{Weather: models.WeatherDry}, strategies)

	wantPoints := []int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1}
	for _, rec := range records {
		pos := rec.PredictedPosition
		assert.Equal(t, pos <= 3, rec.PodiumChance)
		assert.Equal(t, pos <= 10, rec.PointsChance)
		if pos <= 10 {
			assert.Equal(t, wantPoints[pos-1], rec.PointsEarned)
		} else {
			assert.Zero(t, rec.PointsEarned)
		}
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	ranker := NewRanker(profiles.NewStore())
	// Same unknown driver and constructor from the same grid slot produces
	// identical likelihoods.
	entrants := []models.Entrant{
		{Driver: "Rookie A", Constructor: "Newcomer GP", Grid: 10},
		{Driver: "Rookie B", Constructor: "Newcomer GP", Grid: 10},
	}

	records := ranker.Rank(entrants, models.RaceConditions{Weather: models.WeatherDry}, []string{"s", "s"})

	assert.Equal(t, "Rookie A", records[0].Driver)
	assert.Equal(t, "Rookie B", records[1].Driver)
}

func TestRankUnknownEntitiesDoNotPanic(t *testing.T) {
	ranker := NewRanker(profiles.NewStore())
	entrants := []models.Entrant{{Driver: "", Constructor: "", Grid: 1}}

	records := ranker.Rank(entrants, models.RaceConditions{Weather: "Hail"}, []string{""})

	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].PredictedPosition)
	assert.InDelta(t, 100.0, records[0].WinProbability, 0.01, "a field of one takes the whole distribution")
}

func TestGridDecay(t *testing.T) {
	assert.InDelta(t, 1.0, gridDecay(1), 1e-9)
	assert.InDelta(t, 0.6, gridDecay(5), 1e-9)
	assert.InDelta(t, 0.6, gridDecay(6), 1e-9)
	assert.InDelta(t, 0.28, gridDecay(10), 1e-9)
	assert.InDelta(t, 0.2, gridDecay(11), 1e-9)
	assert.InDelta(t, 0.02, gridDecay(20), 1e-9)

	// Monotonic non-increasing across the whole grid, floored at 0.01.
	prev := gridDecay(1)
	for g := 2; g <= 30; g++ {
		cur := gridDecay(g)
		assert.LessOrEqual(t, cur, prev, "grid %d", g)
		assert.GreaterOrEqual(t, cur, 0.01)
		prev = cur
	}
}

func TestWinLikelihoodClamped(t *testing.T) {
	r := NewRanker(profiles.NewStore())

	// A title contender on pole cannot exceed the cap.
	best := r.winLikelihood(models.Entrant{Driver: "Max Verstappen", Constructor: "McLaren", Grid: 1}, models.WeatherDry)
	assert.LessOrEqual(t, best, winLikelihoodCap)

	// A backmarker from the pit lane cannot fall below the floor.
	worst := r.winLikelihood(models.Entrant{Driver: "Unknown", Constructor: "Unknown", Grid: 40}, models.WeatherMixed)
	assert.GreaterOrEqual(t, worst, winLikelihoodFloor)
}

func TestWinLikelihoodOrdering(t *testing.T) {
	r := NewRanker(profiles.NewStore())

	// A front-row title contender always out-rates a rookie starting midfield.
	contender := r.winLikelihood(models.Entrant{Driver: "Max Verstappen", Constructor: "Red Bull Racing", Grid: 1}, models.WeatherDry)
	rookie := r.winLikelihood(models.Entrant{Driver: "Kimi Antonelli", Constructor: "Mercedes", Grid: 7}, models.WeatherDry)
	assert.Greater(t, contender, rookie)

	// Pole beats the back row for the same entrant.
	pole := r.winLikelihood(models.Entrant{Driver: "Lando Norris", Constructor: "McLaren", Grid: 1}, models.WeatherDry)
	back := r.winLikelihood(models.Entrant{Driver: "Lando Norris", Constructor: "McLaren", Grid: 18}, models.WeatherDry)
	assert.Greater(t, pole, back)
}

func TestWeatherAdjustment(t *testing.T) {
	r := NewRanker(profiles.NewStore())

	assert.Equal(t, 1.3, r.weatherAdjustment("Lewis Hamilton", models.WeatherWet))
	assert.Equal(t, 0.85, r.weatherAdjustment("Lance Stroll", models.WeatherWet))
	assert.Equal(t, 0.95, r.weatherAdjustment("Lewis Hamilton", models.WeatherMixed))
	assert.Equal(t, 1.0, r.weatherAdjustment("Lewis Hamilton", models.WeatherDry))
	assert.Equal(t, 1.0, r.weatherAdjustment("Lewis Hamilton", models.Weather("Hail")), "unrecognized weather behaves as dry")
}
