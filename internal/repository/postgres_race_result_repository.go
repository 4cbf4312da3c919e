package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yourusername/pitwall/internal/database"
	"github.com/yourusername/pitwall/internal/models"
)

// PostgresRaceResultRepository implements RaceResultRepository for PostgreSQL
type PostgresRaceResultRepository struct {
	db *database.DB
}

// NewPostgresRaceResultRepository creates a new race result repository
func NewPostgresRaceResultRepository(db *database.DB) RaceResultRepository {
	return &PostgresRaceResultRepository{db: db}
}

// InsertBatch inserts results using high-performance COPY. Existing
// (season, round, driver) rows are cleared first so re-syncing a season is
// idempotent.
func (r *PostgresRaceResultRepository) InsertBatch(ctx context.Context, results []models.RaceResult) error {
	if len(results) == 0 {
		return nil
	}

	seasons := make(map[string]struct{})
	for _, res := range results {
		seasons[res.Season] = struct{}{}
	}
	for season := range seasons {
		if _, err := r.db.Pool().Exec(ctx,
			`DELETE FROM race_results WHERE season = $1`, season); err != nil {
			return fmt.Errorf("failed to clear season %s: %w", season, err)
		}
	}

	columns := []string{
		"season", "round", "race_name", "circuit", "race_date",
		"driver", "constructor", "grid", "position", "points",
		"status", "weather", "tire_strategy", "gap_to_leader", "fastest_lap_time",
	}

	rows := make([][]interface{}, len(results))
	for i, res := range results {
		rows[i] = []interface{}{
			res.Season, res.Round, res.RaceName, res.Circuit, res.Date,
			res.Driver, res.Constructor, res.Grid, res.Position, res.Points,
			res.Status, string(res.Weather), res.TireStrategy, res.GapToLeader, res.FastestLap,
		}
	}

	copyCount, err := r.db.Pool().CopyFrom(
		ctx,
		pgx.Identifier{"race_results"},
		columns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to batch insert race results: %w", err)
	}

	if copyCount != int64(len(results)) {
		return fmt.Errorf("inserted %d rows, expected %d", copyCount, len(results))
	}

	return nil
}

// GetBySeason retrieves all results for one season ordered by round
func (r *PostgresRaceResultRepository) GetBySeason(ctx context.Context, season string) ([]models.RaceResult, error) {
	query := `
		SELECT season, round, race_name, circuit, race_date,
		       driver, constructor, grid, position, points,
		       status, weather, tire_strategy, gap_to_leader, fastest_lap_time
		FROM race_results
		WHERE season = $1
		ORDER BY round, position
	`

	rows, err := r.db.Pool().Query(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query race results: %w", err)
	}
	defer rows.Close()

	var results []models.RaceResult
	for rows.Next() {
		var res models.RaceResult
		var weather string
		if err := rows.Scan(
			&res.Season, &res.Round, &res.RaceName, &res.Circuit, &res.Date,
			&res.Driver, &res.Constructor, &res.Grid, &res.Position, &res.Points,
			&res.Status, &weather, &res.TireStrategy, &res.GapToLeader, &res.FastestLap,
		); err != nil {
			return nil, fmt.Errorf("failed to scan race result: %w", err)
		}
		res.Weather = models.Weather(weather)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read race results: %w", err)
	}

	return results, nil
}

// Count returns the total number of stored result rows
func (r *PostgresRaceResultRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM race_results`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count race results: %w", err)
	}
	return count, nil
}
