package datasource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pitwall/internal/models"
	"github.com/yourusername/pitwall/internal/randutil"
)

const seasonPayload = `{
	"MRData": {
		"RaceTable": {
			"Races": [
				{
					"season": "2024", "round": "1", "raceName": "Bahrain Grand Prix",
					"date": "2024-03-02",
					"Circuit": {"circuitName": "Bahrain International Circuit"},
					"Results": [
						{
							"position": "1", "grid": "1", "points": "25", "status": "Finished",
							"Driver": {"givenName": "Max", "familyName": "Verstappen"},
							"Constructor": {"name": "Red Bull"}
						},
						{
							"position": "R", "grid": "18", "points": "0", "status": "Retired",
							"Driver": {"givenName": "Logan", "familyName": "Sargeant"},
							"Constructor": {"name": "Williams"}
						}
					]
				},
				{
					"season": "2024", "round": "12", "raceName": "British Grand Prix",
					"date": "2024-07-07",
					"Circuit": {"circuitName": "Silverstone Circuit"},
					"Results": [
						{
							"position": "1", "grid": "2", "points": "25", "status": "Finished",
							"Driver": {"givenName": "Lewis", "familyName": "Hamilton"},
							"Constructor": {"name": "Mercedes"}
						}
					]
				}
			]
		}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*ErgastClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	httpClient := NewRateLimitedHTTPClient(cfg, nil)
	return NewErgastClient(srv.URL, httpClient, randutil.NewLocked(1)), srv
}

func TestFetchSeason(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte(seasonPayload))
	})

	rows, races, err := client.FetchSeason(context.Background(), "2024")
	require.NoError(t, err)
	assert.Equal(t, "/2024/results.json?limit=1000", gotPath)
	assert.Equal(t, 2, races)
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, "2024", first.Season)
	assert.Equal(t, "Bahrain Grand Prix", first.RaceName)
	assert.Equal(t, "Max Verstappen", first.Driver)
	assert.Equal(t, "Red Bull", first.Constructor)
	assert.Equal(t, 1, first.Grid)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 25.0, first.Points)
	assert.Equal(t, models.WeatherDry, first.Weather)
	assert.Equal(t, "+0.000s", first.GapToLeader)

	// A non-numeric classification parses to position 0.
	dnf := rows[1]
	assert.Equal(t, 0, dnf.Position)
	assert.Equal(t, 18, dnf.Grid)

	// Per-race simulated columns are shared across the race's rows.
	assert.Equal(t, rows[0].TireStrategy, rows[1].TireStrategy)
	assert.Equal(t, rows[0].FastestLap, rows[1].FastestLap)
}

func TestFetchSeasonServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rows, races, err := client.FetchSeason(context.Background(), "1949")
	assert.Nil(t, rows)
	assert.Zero(t, races)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestFetchSeasonBadJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, _, err := client.FetchSeason(context.Background(), "2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding season 2024 response")
}

func TestSimulateWeather(t *testing.T) {
	tests := []struct {
		circuit string
		want    models.Weather
	}{
		{"Circuit de Spa-Francorchamps", models.WeatherWet},
		{"Suzuka Circuit", models.WeatherWet},
		{"Autódromo José Carlos Pace", models.WeatherDry}, // known as Interlagos, but matched by name
		{"Silverstone Circuit", models.WeatherWet},
		{"Circuit de Monaco", models.WeatherMixed},
		{"Istanbul Park", models.WeatherMixed},
		{"Monza", models.WeatherDry},
		{"Bahrain International Circuit", models.WeatherDry},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, simulateWeather(tt.circuit), tt.circuit)
	}
}

func TestSimulateTireStrategy(t *testing.T) {
	client := NewErgastClient("http://unused", nil, randutil.NewLocked(3))

	assert.Equal(t, "Intermediate → Wet", client.simulateTireStrategy(models.WeatherWet))

	dry := map[string]bool{"Soft → Medium": true, "Medium → Hard": true, "Soft → Hard": true}
	for i := 0; i < 50; i++ {
		assert.True(t, dry[client.simulateTireStrategy(models.WeatherDry)])
	}

	mixed := map[string]bool{"Soft → Medium": true, "Medium → Hard": true}
	for i := 0; i < 50; i++ {
		assert.True(t, mixed[client.simulateTireStrategy(models.WeatherMixed)])
	}
}

func TestSimulateGap(t *testing.T) {
	client := NewErgastClient("http://unused", nil, randutil.NewLocked(11))

	assert.Equal(t, "+0.000s", client.simulateGap(1))

	for i := 0; i < 50; i++ {
		assert.Regexp(t, `^\+\d+\.\d{3}s$`, client.simulateGap(5))
		assert.Regexp(t, `^(\+\d+\.\d{3}s|DNF)$`, client.simulateGap(15))
	}
}
