// Package features assembles the fixed-order numeric feature vector consumed
// by the trained estimators.
package features

import (
	"github.com/yourusername/pitwall/internal/artifacts"
	"github.com/yourusername/pitwall/internal/models"
)

// VectorSize is the fixed width of the serving feature vector.
const VectorSize = 18

// Names lists the canonical feature order. Index positions are load-bearing:
// the scaler's fitted column indices refer to this layout.
var Names = []string{
	"grid",
	"constructor_encoded",
	"circuit_encoded",
	"driver_encoded",
	"weather_encoded",
	"tire_strategy_encoded",
	"temperature",
	"humidity",
	"wind_speed",
	"track_temp",
	"driver_experience",
	"recent_form",
	"quali_gap",
	"constructor_standing",
	"constructor_efficiency",
	"circuit_type_encoded",
	"drs_zones",
	"lap_length",
}

// Input carries everything one entrant's vector is built from.
type Input struct {
	Entrant      models.Entrant
	Conditions   models.RaceConditions
	Driver       models.DriverProfile
	Constructor  models.ConstructorProfile
	Circuit      models.CircuitProfile
	TireStrategy string
}

// Build produces the 18-element vector for one entrant. Every categorical is
// encoded with the pre-fitted encoders; a lookup miss substitutes code 0 and
// is reported in the returned miss list rather than failing the entrant.
func Build(in Input, enc *artifacts.EncoderSet) ([]float64, []string) {
	var misses []string

	encode := func(feature, value string) float64 {
		code, ok := enc.Encode(feature, value)
		if !ok {
			misses = append(misses, feature)
			return 0
		}
		return float64(code)
	}

	vec := []float64{
		float64(in.Entrant.Grid),
		encode("constructor", in.Entrant.Constructor),
		encode("circuit", in.Conditions.Circuit),
		encode("driver", in.Entrant.Driver),
		encode("weather", string(in.Conditions.Weather)),
		encode("tire_strategy", in.TireStrategy),
		in.Conditions.Temperature,
		in.Conditions.Humidity,
		in.Conditions.WindSpeed,
		in.Conditions.TrackTemp,
		float64(in.Driver.Experience),
		in.Driver.RecentForm,
		in.Driver.QualiGap,
		float64(in.Constructor.Standing),
		in.Constructor.Efficiency,
		encode("circuit_type", in.Circuit.Type),
		float64(in.Circuit.DRSZones),
		in.Circuit.LapLength,
	}

	return vec, misses
}
