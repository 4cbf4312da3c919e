package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pitwall/internal/artifacts"
	"github.com/yourusername/pitwall/internal/models"
)

func testEncoders() *artifacts.EncoderSet {
	return artifacts.NewEncoderSet(map[string]artifacts.LabelEncoder{
		"driver":        {"Max Verstappen": 7},
		"constructor":   {"Red Bull": 4},
		"circuit":       {"Monaco Circuit": 11},
		"weather":       {"Dry": 0, "Wet": 2},
		"tire_strategy": {"Soft → Medium": 5},
		"circuit_type":  {"Street": 3},
	})
}

func testInput() Input {
	return Input{
		Entrant: models.Entrant{Driver: "Max Verstappen", Constructor: "Red Bull", Grid: 2},
		Conditions: models.RaceConditions{
			Circuit:     "Monaco Circuit",
			Weather:     models.WeatherDry,
			Temperature: 24.5,
			TrackTemp:   38.0,
			Humidity:    55.0,
			WindSpeed:   12.0,
		},
		Driver:       models.DriverProfile{Experience: 10, RecentForm: 2.1, QualiGap: -0.3},
		Constructor:  models.ConstructorProfile{Standing: 1, Efficiency: 0.95},
		Circuit:      models.CircuitProfile{Type: "Street", DRSZones: 1, LapLength: 3.337},
		TireStrategy: "Soft → Medium",
	}
}

func TestBuildVectorLayout(t *testing.T) {
	vec, misses := Build(testInput(), testEncoders())

	require.Len(t, vec, VectorSize)
	require.Len(t, Names, VectorSize)
	assert.Empty(t, misses)

	want := []float64{
		2,     // grid
		4,     // constructor_encoded
		11,    // circuit_encoded
		7,     // driver_encoded
		0,     // weather_encoded
		5,     // tire_strategy_encoded
		24.5,  // temperature
		55.0,  // humidity
		12.0,  // wind_speed
		38.0,  // track_temp
		10,    // driver_experience
		2.1,   // recent_form
		-0.3,  // quali_gap
		1,     // constructor_standing
		0.95,  // constructor_efficiency
		3,     // circuit_type_encoded
		1,     // drs_zones
		3.337, // lap_length
	}
	assert.Equal(t, want, vec)
}

func TestBuildEncodeMissSubstitutesZero(t *testing.T) {
	in := testInput()
	in.Entrant.Driver = "Ayrton Senna"
	in.Conditions.Circuit = "Kyalami"

	vec, misses := Build(in, testEncoders())

	require.Len(t, vec, VectorSize)
	assert.Zero(t, vec[2], "unseen circuit encodes to 0")
	assert.Zero(t, vec[3], "unseen driver encodes to 0")
	assert.ElementsMatch(t, []string{"driver", "circuit"}, misses)
}

func TestBuildAllCategoricalsMissing(t *testing.T) {
	in := testInput()
	empty := artifacts.NewEncoderSet(map[string]artifacts.LabelEncoder{})

	vec, misses := Build(in, empty)

	require.Len(t, vec, VectorSize)
	assert.Len(t, misses, 6, "every categorical feature reports a miss")
	// Numeric features survive untouched.
	assert.Equal(t, 24.5, vec[6])
	assert.Equal(t, 3.337, vec[17])
}
