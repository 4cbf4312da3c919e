package models

// RaceResult is one flattened row of the historical results dataset produced
// by the ingestion pipeline. Column order matches the training data layout.
type RaceResult struct {
	Season        string  `json:"season"`
	Round         string  `json:"round"`
	RaceName      string  `json:"race_name"`
	Circuit       string  `json:"circuit"`
	Date          string  `json:"date"`
	Driver        string  `json:"driver"`
	Constructor   string  `json:"constructor"`
	Grid          int     `json:"grid"`
	Position      int     `json:"position"`
	Points        float64 `json:"points"`
	Status        string  `json:"status"`
	Weather       Weather `json:"weather"`
	TireStrategy  string  `json:"tire_strategy"`
	GapToLeader   string  `json:"gap_to_leader"`
	FastestLap    string  `json:"fastest_lap_time"`
}
