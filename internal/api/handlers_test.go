package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pitwall/internal/artifacts"
	"github.com/yourusername/pitwall/internal/predictor"
	"github.com/yourusername/pitwall/internal/predlog"
	"github.com/yourusername/pitwall/internal/profiles"
	"github.com/yourusername/pitwall/internal/randutil"
)

func testArtifacts() *artifacts.Store {
	coeffs := make([]float64, 18)
	coeffs[0] = 0.8
	return &artifacts.Store{
		Encoders: artifacts.NewEncoderSet(nil),
		Scaler:   &artifacts.Scaler{},
		Position: &artifacts.LinearModel{Intercept: 1, Coefficients: coeffs},
		Podium:   &artifacts.LogisticModel{Intercept: -1, Coefficients: make([]float64, 18)},
		Points:   &artifacts.LogisticModel{Intercept: 0, Coefficients: make([]float64, 18)},
	}
}

func testRouter(store *artifacts.Store, cacheTTL time.Duration) http.Handler {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	engine := predictor.NewEngine(store, profiles.NewStore(), randutil.NewLocked(5), predlog.NopSink{}, logger)
	return NewServer("127.0.0.1:0", engine, cacheTTL, logger).httpServer.Handler
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const predictBody = `{
	"circuit": "Monaco Circuit",
	"weather": "Dry",
	"entries": [
		{"driver": "Max Verstappen", "constructor": "Red Bull", "grid": 1},
		{"driver": "Lando Norris", "constructor": "McLaren", "grid": 2}
	]
}`

func TestPredictRace(t *testing.T) {
	router := testRouter(testArtifacts(), 0)

	w := doJSON(t, router, http.MethodPost, "/api/predict", predictBody)
	require.Equal(t, http.StatusOK, w.Code)

	var result PredictionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.RequestID)
	assert.Equal(t, "Monaco Circuit", result.RaceInfo.Circuit)
	require.Len(t, result.Predictions, 2)
	assert.Equal(t, 1, result.Predictions[0].PredictedPosition)
	assert.Equal(t, 2, result.Predictions[1].PredictedPosition)
}

func TestPredictRaceBadRequests(t *testing.T) {
	router := testRouter(testArtifacts(), 0)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"circuit":`},
		{"missing circuit", `{"weather": "Dry", "entries": [{"driver": "a", "constructor": "b", "grid": 1}]}`},
		{"empty entries", `{"circuit": "Monza", "weather": "Dry", "entries": []}`},
		{"entry without grid", `{"circuit": "Monza", "weather": "Dry", "entries": [{"driver": "a", "constructor": "b"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/predict", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestPredictRaceWithoutArtifacts(t *testing.T) {
	router := testRouter(nil, 0)

	w := doJSON(t, router, http.MethodPost, "/api/predict", predictBody)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPredictRaceCacheReplaysResponse(t *testing.T) {
	router := testRouter(testArtifacts(), time.Minute)

	first := doJSON(t, router, http.MethodPost, "/api/predict", predictBody)
	second := doJSON(t, router, http.MethodPost, "/api/predict", predictBody)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String(), "identical requests inside the TTL share a forecast")

	// A different field misses the cache.
	other := doJSON(t, router, http.MethodPost, "/api/predict", strings.Replace(predictBody, `"grid": 2`, `"grid": 5`, 1))
	require.Equal(t, http.StatusOK, other.Code)
	assert.NotEqual(t, first.Body.String(), other.Body.String())
}

func TestPredictRaceZeroTTLDisablesCache(t *testing.T) {
	router := testRouter(testArtifacts(), 0)

	var first, second PredictionResult
	require.NoError(t, json.Unmarshal(doJSON(t, router, http.MethodPost, "/api/predict", predictBody).Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(doJSON(t, router, http.MethodPost, "/api/predict", predictBody).Body.Bytes(), &second))

	assert.NotEqual(t, first.RequestID, second.RequestID, "every request gets a fresh forecast")
}

func TestReferenceDataEndpoints(t *testing.T) {
	router := testRouter(nil, 0)

	// Reference data keeps working when the model artifacts are missing.
	for _, path := range []string{"/api/teams", "/api/circuits", "/api/driver-stats", "/api/constructor-standings", "/"} {
		w := doJSON(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := doJSON(t, router, http.MethodGet, "/api/teams", "")
	var teams map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	assert.Len(t, teams, 10)
	assert.Contains(t, teams, "McLaren")
}

func TestCORSPreflight(t *testing.T) {
	router := testRouter(nil, 0)

	w := doJSON(t, router, http.MethodOptions, "/api/predict", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
