// Package predlog records one append-only line per prediction request.
// Logging is strictly best-effort: every sink error is swallowed at the call
// site and a failed write never affects the response.
package predlog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/pitwall/internal/models"
)

// Record is the persisted summary of one prediction request.
type Record struct {
	Timestamp         time.Time
	RequestID         uuid.UUID
	Circuit           string
	Weather           models.Weather
	Temperature       float64
	TrackTemp         float64
	EntryCount        int
	TopDriver         string
	TopWinProbability float64
}

// FromForecast builds the log record for one completed forecast.
func FromForecast(f *models.RaceForecast) Record {
	top := f.TopPick()
	return Record{
		Timestamp:         f.GeneratedAt,
		RequestID:         f.RequestID,
		Circuit:           f.Conditions.Circuit,
		Weather:           f.Conditions.Weather,
		Temperature:       f.Conditions.Temperature,
		TrackTemp:         f.Conditions.TrackTemp,
		EntryCount:        len(f.Predictions),
		TopDriver:         top.Driver,
		TopWinProbability: top.WinProbability,
	}
}

// Sink appends prediction records somewhere durable.
type Sink interface {
	Write(ctx context.Context, rec Record) error
}

// NopSink discards every record.
type NopSink struct{}

func (NopSink) Write(context.Context, Record) error { return nil }

// MultiSink fans a record out to several sinks. Write returns the first
// error but still attempts every sink.
type MultiSink []Sink

func (m MultiSink) Write(ctx context.Context, rec Record) error {
	var firstErr error
	for _, s := range m {
		if err := s.Write(ctx, rec); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
