package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/pitwall/internal/database"
	"github.com/yourusername/pitwall/internal/predlog"
)

// PostgresPredictionLogRepository implements PredictionLogRepository for
// PostgreSQL. It doubles as a predlog.Sink.
type PostgresPredictionLogRepository struct {
	db *database.DB
}

// NewPostgresPredictionLogRepository creates a new prediction log repository
func NewPostgresPredictionLogRepository(db *database.DB) *PostgresPredictionLogRepository {
	return &PostgresPredictionLogRepository{db: db}
}

// Insert appends a single prediction log record
func (r *PostgresPredictionLogRepository) Insert(ctx context.Context, rec predlog.Record) error {
	query := `
		INSERT INTO prediction_log
			(logged_at, request_id, circuit, weather, temperature, track_temp,
			 entry_count, top_driver, top_win_probability)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Pool().Exec(ctx, query,
		rec.Timestamp, rec.RequestID, rec.Circuit, string(rec.Weather),
		rec.Temperature, rec.TrackTemp, rec.EntryCount,
		rec.TopDriver, rec.TopWinProbability,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction log record: %w", err)
	}

	return nil
}

// Write implements predlog.Sink.
func (r *PostgresPredictionLogRepository) Write(ctx context.Context, rec predlog.Record) error {
	return r.Insert(ctx, rec)
}
