// Package logger provides audit-style logging for forecast activity.
package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitwall/internal/models"
)

// ForecastLogger provides a dedicated audit trail for served forecasts.
type ForecastLogger struct {
	*logrus.Entry
}

// NewForecastLogger creates a new forecast audit logger.
func NewForecastLogger(baseLogger *logrus.Logger) *ForecastLogger {
	return &ForecastLogger{
		Entry: baseLogger.WithField("component", "forecast"),
	}
}

// LogForecast logs one served forecast with its top pick.
func (fl *ForecastLogger) LogForecast(f *models.RaceForecast) {
	top := f.TopPick()
	fl.WithFields(logrus.Fields{
		"request_id":      f.RequestID,
		"circuit":         f.Conditions.Circuit,
		"weather":         f.Conditions.Weather,
		"temperature":     f.Conditions.Temperature,
		"track_temp":      f.Conditions.TrackTemp,
		"entry_count":     len(f.Predictions),
		"top_driver":      top.Driver,
		"top_probability": top.WinProbability,
	}).Info("Forecast served")
}

// LogResultsSync logs one completed historical results sync.
func (fl *ForecastLogger) LogResultsSync(seasons []string, races, rows int) {
	fl.WithFields(logrus.Fields{
		"seasons": seasons,
		"races":   races,
		"rows":    rows,
	}).Info("Historical results synced")
}
