package predlog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
)

var csvHeader = []string{
	"timestamp", "request_id", "circuit", "weather",
	"temperature", "track_temp", "entry_count",
	"top_driver", "top_win_probability",
}

// CSVSink appends records to a CSV file, writing the header when it creates
// the file. Safe for concurrent use.
type CSVSink struct {
	mu   sync.Mutex
	path string
}

func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

func (s *CSVSink) Write(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, statErr := os.Stat(s.path)
	writeHeader := statErr != nil || info.Size() == 0

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening prediction log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("writing prediction log header: %w", err)
		}
	}
	row := []string{
		rec.Timestamp.Format("2006-01-02 15:04:05"),
		rec.RequestID.String(),
		rec.Circuit,
		string(rec.Weather),
		strconv.FormatFloat(rec.Temperature, 'f', 1, 64),
		strconv.FormatFloat(rec.TrackTemp, 'f', 1, 64),
		strconv.Itoa(rec.EntryCount),
		rec.TopDriver,
		strconv.FormatFloat(rec.TopWinProbability, 'f', 2, 64),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("writing prediction log row: %w", err)
	}
	w.Flush()
	return w.Error()
}
