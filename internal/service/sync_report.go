package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/yourusername/pitwall/internal/models"
)

// SyncReport summarizes one results sync run
type SyncReport struct {
	Seasons  []string
	Races    int
	Rows     int
	Errors   int
	Duration time.Duration
	Form     []FormSummary // per-driver form, best mean finish first
}

// String returns a human-readable summary
func (r *SyncReport) String() string {
	return fmt.Sprintf("seasons=%v races=%d rows=%d errors=%d duration=%v",
		r.Seasons, r.Races, r.Rows, r.Errors, r.Duration)
}

// FormSummary describes one driver's finishing-position distribution over a
// set of result rows.
type FormSummary struct {
	Driver       string  `json:"driver"`
	Races        int     `json:"races"`
	MeanFinish   float64 `json:"mean_finish"`
	MedianFinish float64 `json:"median_finish"`
	StdDev       float64 `json:"std_dev"`
	BestFinish   int     `json:"best_finish"`
}

// SummarizeForm computes per-driver form statistics from result rows, ordered
// by mean finish ascending. Rows with a zero position (unclassified) are
// skipped.
func SummarizeForm(rows []models.RaceResult) ([]FormSummary, error) {
	byDriver := make(map[string][]float64)
	for _, row := range rows {
		if row.Position <= 0 {
			continue
		}
		byDriver[row.Driver] = append(byDriver[row.Driver], float64(row.Position))
	}

	summaries := make([]FormSummary, 0, len(byDriver))
	for driver, positions := range byDriver {
		mean, err := stats.Mean(positions)
		if err != nil {
			return nil, fmt.Errorf("computing mean for %s: %w", driver, err)
		}
		median, err := stats.Median(positions)
		if err != nil {
			return nil, fmt.Errorf("computing median for %s: %w", driver, err)
		}
		stddev, err := stats.StdDevP(positions)
		if err != nil {
			return nil, fmt.Errorf("computing stddev for %s: %w", driver, err)
		}
		best, err := stats.Min(positions)
		if err != nil {
			return nil, fmt.Errorf("computing best finish for %s: %w", driver, err)
		}
		summaries = append(summaries, FormSummary{
			Driver:       driver,
			Races:        len(positions),
			MeanFinish:   mean,
			MedianFinish: median,
			StdDev:       stddev,
			BestFinish:   int(best),
		})
	}

	sort.Slice(summaries, func(a, b int) bool {
		if summaries[a].MeanFinish != summaries[b].MeanFinish {
			return summaries[a].MeanFinish < summaries[b].MeanFinish
		}
		return summaries[a].Driver < summaries[b].Driver
	})
	return summaries, nil
}
