package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pitwall/internal/models"
)

func TestSummarizeForm(t *testing.T) {
	rows := []models.RaceResult{
		{Driver: "Max Verstappen", Position: 1},
		{Driver: "Max Verstappen", Position: 3},
		{Driver: "Max Verstappen", Position: 2},
		{Driver: "Lance Stroll", Position: 12},
		{Driver: "Lance Stroll", Position: 0}, // unclassified, skipped
	}

	summaries, err := SummarizeForm(rows)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Ordered by mean finish, best first.
	assert.Equal(t, "Max Verstappen", summaries[0].Driver)
	assert.Equal(t, "Lance Stroll", summaries[1].Driver)

	ver := summaries[0]
	assert.Equal(t, 3, ver.Races)
	assert.InDelta(t, 2.0, ver.MeanFinish, 1e-9)
	assert.InDelta(t, 2.0, ver.MedianFinish, 1e-9)
	assert.InDelta(t, 0.8165, ver.StdDev, 0.001)
	assert.Equal(t, 1, ver.BestFinish)

	str := summaries[1]
	assert.Equal(t, 1, str.Races, "zero positions never count as races")
	assert.Equal(t, 12, str.BestFinish)
	assert.Zero(t, str.StdDev)
}

func TestSummarizeFormEmpty(t *testing.T) {
	summaries, err := SummarizeForm(nil)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	// All rows unclassified behaves like no rows at all.
	summaries, err = SummarizeForm([]models.RaceResult{{Driver: "X", Position: 0}})
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestSyncReportString(t *testing.T) {
	r := SyncReport{Seasons: []string{"2023", "2024"}, Races: 46, Rows: 920, Errors: 1, Duration: 3 * time.Second}
	assert.Equal(t, "seasons=[2023 2024] races=46 rows=920 errors=1 duration=3s", r.String())
}
