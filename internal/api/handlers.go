package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitwall/internal/artifacts"
	"github.com/yourusername/pitwall/internal/models"
	"github.com/yourusername/pitwall/internal/predictor"
	"github.com/yourusername/pitwall/internal/refdata"
)

// PredictionRequest is the body of POST /api/predict.
type PredictionRequest struct {
	Circuit string           `json:"circuit" binding:"required"`
	Weather string           `json:"weather" binding:"required"`
	Entries []models.Entrant `json:"entries" binding:"required,min=1,dive"`
}

// PredictionResult is the response envelope for POST /api/predict.
type PredictionResult struct {
	Success     bool                      `json:"success"`
	RequestID   string                    `json:"request_id"`
	Predictions []models.PredictionRecord `json:"predictions"`
	RaceInfo    models.RaceConditions     `json:"race_info"`
}

// Handler serves the prediction and reference-data endpoints.
type Handler struct {
	engine *predictor.Engine
	cache  *forecastCache
	logger *logrus.Logger
}

func NewHandler(engine *predictor.Engine, cache *forecastCache, logger *logrus.Logger) *Handler {
	return &Handler{engine: engine, cache: cache, logger: logger}
}

// PredictRace handles POST /api/predict
func (h *Handler) PredictRace(c *gin.Context) {
	var req PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	weather := models.Weather(req.Weather)
	key := h.cache.key(req.Circuit, weather, req.Entries)
	if forecast, ok := h.cache.get(key); ok {
		c.JSON(http.StatusOK, toResult(forecast))
		return
	}

	forecast, err := h.engine.Predict(c.Request.Context(), req.Circuit, weather, req.Entries)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, artifacts.ErrUnavailable) {
			status = http.StatusServiceUnavailable
		}
		h.logger.WithError(err).Error("prediction request failed")
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.cache.set(key, forecast)
	c.JSON(http.StatusOK, toResult(forecast))
}

func toResult(f *models.RaceForecast) PredictionResult {
	return PredictionResult{
		Success:     true,
		RequestID:   f.RequestID.String(),
		Predictions: f.Predictions,
		RaceInfo:    f.Conditions,
	}
}

// GetTeams handles GET /api/teams
func (h *Handler) GetTeams(c *gin.Context) {
	c.JSON(http.StatusOK, refdata.Teams())
}

// GetCircuits handles GET /api/circuits
func (h *Handler) GetCircuits(c *gin.Context) {
	c.JSON(http.StatusOK, refdata.Calendar())
}

// GetDriverStats handles GET /api/driver-stats
func (h *Handler) GetDriverStats(c *gin.Context) {
	c.JSON(http.StatusOK, refdata.Drivers())
}

// GetConstructorStandings handles GET /api/constructor-standings
func (h *Handler) GetConstructorStandings(c *gin.Context) {
	c.JSON(http.StatusOK, refdata.ConstructorStandings())
}

// Root handles GET /
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pitwall race predictor API",
		"status":  "operational",
		"endpoints": gin.H{
			"teams":                 "/api/teams",
			"circuits":              "/api/circuits",
			"predict":               "/api/predict",
			"driver_stats":          "/api/driver-stats",
			"constructor_standings": "/api/constructor-standings",
		},
	})
}
