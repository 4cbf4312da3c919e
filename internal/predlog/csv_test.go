package predlog

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pitwall/internal/models"
)

func sampleRecord() Record {
	return Record{
		Timestamp:         time.Date(2025, 5, 25, 14, 0, 0, 0, time.UTC),
		RequestID:         uuid.MustParse("a2f3c1d4-0000-4000-8000-000000000001"),
		Circuit:           "Monaco Circuit",
		Weather:           models.WeatherDry,
		Temperature:       24.5,
		TrackTemp:         38.25,
		EntryCount:        20,
		TopDriver:         "Max Verstappen",
		TopWinProbability: 23.456,
	}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVSinkWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "predictions.csv")
	sink := NewCSVSink(path)

	require.NoError(t, sink.Write(context.Background(), sampleRecord()))
	require.NoError(t, sink.Write(context.Background(), sampleRecord()))

	rows := readRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, rows[1], rows[2])
}

func TestCSVSinkRowFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "predictions.csv")
	sink := NewCSVSink(path)

	require.NoError(t, sink.Write(context.Background(), sampleRecord()))

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"2025-05-25 14:00:00",
		"a2f3c1d4-0000-4000-8000-000000000001",
		"Monaco Circuit",
		"Dry",
		"24.5",
		"38.2", // track temp keeps one decimal place
		"20",
		"Max Verstappen",
		"23.46",
	}, rows[1])
}

func TestCSVSinkAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "predictions.csv")
	require.NoError(t, os.WriteFile(path, []byte("timestamp,request_id\nold,row\n"), 0o644))

	sink := NewCSVSink(path)
	require.NoError(t, sink.Write(context.Background(), sampleRecord()))

	rows := readRows(t, path)
	require.Len(t, rows, 3, "a non-empty file never gets a second header")
	assert.Equal(t, "old", rows[1][0])
}

func TestMultiSinkAttemptsAllSinks(t *testing.T) {
	var calls int
	fail := sinkFunc(func(context.Context, Record) error {
		calls++
		return errors.New("boom")
	})
	ok := sinkFunc(func(context.Context, Record) error {
		calls++
		return nil
	})

	err := MultiSink{fail, ok, fail}.Write(context.Background(), sampleRecord())
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 3, calls)
}

func TestFromForecast(t *testing.T) {
	f := &models.RaceForecast{
		RequestID:   uuid.New(),
		GeneratedAt: time.Now(),
		Conditions:  models.RaceConditions{Circuit: "Monza", Weather: models.WeatherMixed, Temperature: 22, TrackTemp: 31},
		Predictions: []models.PredictionRecord{
			{Driver: "Lando Norris", WinProbability: 28.5},
			{Driver: "Max Verstappen", WinProbability: 25.0},
		},
	}

	rec := FromForecast(f)
	assert.Equal(t, f.RequestID, rec.RequestID)
	assert.Equal(t, "Monza", rec.Circuit)
	assert.Equal(t, 2, rec.EntryCount)
	assert.Equal(t, "Lando Norris", rec.TopDriver)
	assert.Equal(t, 28.5, rec.TopWinProbability)
}

type sinkFunc func(context.Context, Record) error

func (f sinkFunc) Write(ctx context.Context, rec Record) error { return f(ctx, rec) }
