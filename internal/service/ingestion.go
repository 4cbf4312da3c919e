// Package service implements the historical results ingestion workflow: it
// fetches season results, writes the flattened CSV dataset the training
// pipeline consumes, and optionally mirrors rows into PostgreSQL.
package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitwall/internal/datasource"
	"github.com/yourusername/pitwall/internal/metrics"
	"github.com/yourusername/pitwall/internal/models"
	"github.com/yourusername/pitwall/internal/repository"
)

var datasetHeader = []string{
	"season", "round", "race_name", "circuit", "date",
	"driver", "constructor", "grid", "position", "points",
	"status", "weather", "tire_strategy", "gap_to_leader", "fastest_lap_time",
}

// IngestionService handles the results ingestion workflow
type IngestionService struct {
	client     *datasource.ErgastClient
	resultRepo repository.RaceResultRepository // nil when the Postgres mirror is disabled
	outputPath string
	logger     *logrus.Logger
}

// NewIngestionService creates a new ingestion service. resultRepo may be nil.
func NewIngestionService(client *datasource.ErgastClient, resultRepo repository.RaceResultRepository, outputPath string, logger *logrus.Logger) *IngestionService {
	return &IngestionService{
		client:     client,
		resultRepo: resultRepo,
		outputPath: outputPath,
		logger:     logger,
	}
}

// SyncSeasons fetches every listed season, rewrites the CSV dataset and
// mirrors the rows into PostgreSQL when a repository is configured. A failed
// season is logged and skipped; the sync continues with the rest.
func (s *IngestionService) SyncSeasons(ctx context.Context, seasons []string) (*SyncReport, error) {
	start := time.Now()
	report := &SyncReport{Seasons: seasons}

	var rows []models.RaceResult
	for _, season := range seasons {
		seasonRows, races, err := s.client.FetchSeason(ctx, season)
		if err != nil {
			report.Errors++
			s.logger.WithField("season", season).WithError(err).Error("season fetch failed, skipping")
			continue
		}
		s.logger.WithFields(logrus.Fields{
			"season": season,
			"races":  races,
			"rows":   len(seasonRows),
		}).Info("season fetched")
		report.Races += races
		rows = append(rows, seasonRows...)
	}

	if len(rows) == 0 {
		return report, fmt.Errorf("no results fetched for seasons %v", seasons)
	}
	report.Rows = len(rows)

	if err := s.writeCSV(rows); err != nil {
		return report, err
	}

	if s.resultRepo != nil {
		if err := s.resultRepo.InsertBatch(ctx, rows); err != nil {
			return report, fmt.Errorf("storing results: %w", err)
		}
	}

	form, err := SummarizeForm(rows)
	if err != nil {
		s.logger.WithError(err).Warn("form summary failed")
	} else {
		report.Form = form
		if len(form) > 0 {
			s.logger.WithFields(logrus.Fields{
				"drivers":     len(form),
				"best_form":   form[0].Driver,
				"mean_finish": form[0].MeanFinish,
			}).Info("driver form summarized")
		}
	}

	report.Duration = time.Since(start)
	metrics.RecordResultsSync(report.Races, report.Duration.Seconds())
	s.logger.WithFields(logrus.Fields{
		"seasons":  seasons,
		"races":    report.Races,
		"rows":     report.Rows,
		"errors":   report.Errors,
		"duration": report.Duration,
	}).Info("results sync complete")

	return report, nil
}

// writeCSV rewrites the full dataset file atomically.
func (s *IngestionService) writeCSV(rows []models.RaceResult) error {
	if err := os.MkdirAll(filepath.Dir(s.outputPath), 0o755); err != nil {
		return fmt.Errorf("creating dataset directory: %w", err)
	}

	tmp := s.outputPath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating dataset file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(datasetHeader); err != nil {
		f.Close()
		return fmt.Errorf("writing dataset header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Season, row.Round, row.RaceName, row.Circuit, row.Date,
			row.Driver, row.Constructor,
			strconv.Itoa(row.Grid), strconv.Itoa(row.Position),
			strconv.FormatFloat(row.Points, 'f', -1, 64),
			row.Status, string(row.Weather), row.TireStrategy,
			row.GapToLeader, row.FastestLap,
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("writing dataset row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing dataset: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing dataset file: %w", err)
	}

	if err := os.Rename(tmp, s.outputPath); err != nil {
		return fmt.Errorf("replacing dataset file: %w", err)
	}
	return nil
}
