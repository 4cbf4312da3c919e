// Package repository provides PostgreSQL data access for the prediction
// service's two persisted datasets: the prediction log and historical race
// results.
package repository

import (
	"context"

	"github.com/yourusername/pitwall/internal/models"
	"github.com/yourusername/pitwall/internal/predlog"
)

// PredictionLogRepository defines the interface for prediction log access
type PredictionLogRepository interface {
	Insert(ctx context.Context, rec predlog.Record) error
}

// RaceResultRepository defines the interface for historical results access
type RaceResultRepository interface {
	InsertBatch(ctx context.Context, results []models.RaceResult) error
	GetBySeason(ctx context.Context, season string) ([]models.RaceResult, error)
	Count(ctx context.Context) (int, error)
}
