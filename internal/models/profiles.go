package models

// DriverProfile holds the static performance and personality attributes for a
// driver. Experience and the predictive fields feed the feature vector;
// Aggression, RiskTolerance and Adaptability only influence tire strategy.
type DriverProfile struct {
	Experience    int     `json:"experience"`
	RecentForm    float64 `json:"recent_form"` // average finishing position, lower is better
	QualiGap      float64 `json:"quali_gap"`   // seconds relative to teammate, negative is faster
	WinFactor     float64 `json:"win_factor"`
	Aggression    float64 `json:"aggression"`
	RiskTolerance float64 `json:"risk_tolerance"`
	Adaptability  float64 `json:"adaptability"`
}

// ConstructorProfile holds the static competitiveness attributes for a team.
// Standing, Efficiency and PaceFactor feed predictions; Aggression,
// RiskTolerance and Innovation only influence tire strategy.
type ConstructorProfile struct {
	Standing      int     `json:"standing"` // championship position, 1 is best
	Efficiency    float64 `json:"efficiency"`
	PaceFactor    float64 `json:"pace_factor"`
	Aggression    float64 `json:"aggression"`
	RiskTolerance float64 `json:"risk_tolerance"`
	Innovation    float64 `json:"innovation"`
}

// CircuitProfile holds the static layout and strategy characteristics of a
// circuit.
type CircuitProfile struct {
	Type                 string  `json:"type"` // Street, Power, Balanced or Twisty
	DRSZones             int     `json:"drs_zones"`
	LapLength            float64 `json:"lap_length"` // kilometres
	OvertakingDifficulty float64 `json:"overtaking_difficulty"`
	TireWear             float64 `json:"tire_wear"`
	StrategyImportance   float64 `json:"strategy_importance"`
}
