package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/pitwall/internal/models"
	"github.com/yourusername/pitwall/internal/profiles"
)

func newTestSynthesizer(seed int64) *Synthesizer {
	return NewSynthesizer(profiles.NewStore(), rand.New(rand.NewSource(seed)))
}

func TestSynthesizeCatalogMembership(t *testing.T) {
	tests := []struct {
		name    string
		weather models.Weather
		circuit string
		allowed []string
	}{
		{
			name:    "wet stays in the wet catalog",
			weather: models.WeatherWet,
			circuit: "Silverstone Circuit",
			allowed: wetCatalog.templates(),
		},
		{
			name:    "mixed stays in the mixed catalog",
			weather: models.WeatherMixed,
			circuit: "Monaco Circuit",
			allowed: mixedCatalog.templates(),
		},
		{
			name:    "dry on a high-wear circuit uses the high-degradation catalog",
			weather: models.WeatherDry,
			circuit: "Silverstone Circuit",
			allowed: dryHighDegCatalog.templates(),
		},
		{
			name:    "dry on a normal circuit uses the normal catalog",
			weather: models.WeatherDry,
			circuit: "Monza Circuit",
			allowed: dryNormalCatalog.templates(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSynthesizer(7)
			for i := 0; i < 300; i++ {
				got := s.Synthesize("Lando Norris", "McLaren", 4, tt.weather, tt.circuit)
				assert.Contains(t, tt.allowed, got)
			}
		})
	}
}

func TestSynthesizeNeverEmpty(t *testing.T) {
	s := newTestSynthesizer(11)

	for _, w := range []models.Weather{models.WeatherDry, models.WeatherMixed, models.WeatherWet} {
		for grid := 1; grid <= 20; grid++ {
			got := s.Synthesize("Nobody", "No Team", grid, w, "Nowhere")
			assert.NotEmpty(t, got)
		}
	}
}

func TestSynthesizeFerrariMasterPlan(t *testing.T) {
	s := newTestSynthesizer(13)

	hits := 0
	for i := 0; i < 2000; i++ {
		if s.Synthesize("Charles Leclerc", "Ferrari", 2, models.WeatherDry, "Monza Circuit") == ferrariMasterPlan {
			hits++
		}
	}
	// Flat 15% draw; with 2000 samples the count should land well inside
	// [200, 400].
	assert.Greater(t, hits, 200)
	assert.Less(t, hits, 400)

	// Never fires outside dry weather or for other teams.
	for i := 0; i < 500; i++ {
		assert.NotEqual(t, ferrariMasterPlan,
			s.Synthesize("Charles Leclerc", "Ferrari", 2, models.WeatherWet, "Monza Circuit"))
		assert.NotEqual(t, ferrariMasterPlan,
			s.Synthesize("Lando Norris", "McLaren", 2, models.WeatherDry, "Monza Circuit"))
	}
}

func TestSynthesizeBackOfGridPrefersAlternatives(t *testing.T) {
	countAlternatives := func(grid int, seed int64) int {
		s := newTestSynthesizer(seed)
		alt := 0
		for i := 0; i < 1000; i++ {
			got := s.Synthesize("Lance Stroll", "Aston Martin", grid, models.WeatherDry, "Monza Circuit")
			for _, a := range dryNormalCatalog.Alternative {
				if got == a {
					alt++
					break
				}
			}
		}
		return alt
	}

	front := countAlternatives(1, 17)
	back := countAlternatives(18, 17)
	assert.Greater(t, back, front, "back of the grid should gamble more often")
}

func TestSynthesizeWetSpecialistMoreAggressive(t *testing.T) {
	countAggressive := func(driver string, seed int64) int {
		s := newTestSynthesizer(seed)
		n := 0
		for i := 0; i < 1000; i++ {
			got := s.Synthesize(driver, "Mercedes", 8, models.WeatherWet, "Suzuka Circuit")
			for _, a := range wetCatalog.Aggressive {
				if got == a {
					n++
					break
				}
			}
		}
		return n
	}

	specialist := countAggressive("Lewis Hamilton", 19)
	regular := countAggressive("Lance Stroll", 19)
	assert.Greater(t, specialist, regular)
}
