package profiles

import "github.com/yourusername/pitwall/internal/models"

// driverTable covers the 2025 field. Aggression/risk/adaptability describe how
// a driver races; the remaining fields describe how well.
var driverTable = map[string]models.DriverProfile{
	// Championship contenders
	"Max Verstappen":  {Experience: 10, RecentForm: 1.5, QualiGap: -0.4, WinFactor: 1.4, Aggression: 0.9, RiskTolerance: 0.85, Adaptability: 0.9},
	"Lewis Hamilton":  {Experience: 18, RecentForm: 3.2, QualiGap: -0.1, WinFactor: 1.3, Aggression: 0.7, RiskTolerance: 0.6, Adaptability: 0.95},
	"Charles Leclerc": {Experience: 7, RecentForm: 2.8, QualiGap: -0.2, WinFactor: 1.25, Aggression: 0.85, RiskTolerance: 0.8, Adaptability: 0.8},
	"Lando Norris":    {Experience: 6, RecentForm: 2.1, QualiGap: -0.25, WinFactor: 1.2, Aggression: 0.75, RiskTolerance: 0.7, Adaptability: 0.85},

	// Regular podium contenders
	"George Russell":  {Experience: 4, RecentForm: 4.1, QualiGap: 0.0, WinFactor: 1.15, Aggression: 0.6, RiskTolerance: 0.5, Adaptability: 0.8},
	"Fernando Alonso": {Experience: 23, RecentForm: 5.3, QualiGap: 0.1, WinFactor: 1.2, Aggression: 0.75, RiskTolerance: 0.8, Adaptability: 0.95},
	"Oscar Piastri":   {Experience: 2, RecentForm: 3.4, QualiGap: -0.1, WinFactor: 1.1, Aggression: 0.65, RiskTolerance: 0.6, Adaptability: 0.8},
	"Carlos Sainz":    {Experience: 10, RecentForm: 4.8, QualiGap: 0.2, WinFactor: 1.1, Aggression: 0.7, RiskTolerance: 0.65, Adaptability: 0.75},

	// Midfield
	"Pierre Gasly":    {Experience: 7, RecentForm: 7.2, QualiGap: 0.3, WinFactor: 1.0, Aggression: 0.8, RiskTolerance: 0.75, Adaptability: 0.8},
	"Alex Albon":      {Experience: 5, RecentForm: 8.5, QualiGap: 0.25, WinFactor: 0.95, Aggression: 0.6, RiskTolerance: 0.55, Adaptability: 0.7},
	"Nico Hülkenberg": {Experience: 15, RecentForm: 9.2, QualiGap: 0.15, WinFactor: 0.95, Aggression: 0.65, RiskTolerance: 0.6, Adaptability: 0.8},
	"Esteban Ocon":    {Experience: 8, RecentForm: 8.7, QualiGap: 0.3, WinFactor: 0.9, Aggression: 0.6, RiskTolerance: 0.55, Adaptability: 0.7},

	// Lower midfield
	"Lance Stroll": {Experience: 8, RecentForm: 11.8, QualiGap: 0.4, WinFactor: 0.85, Aggression: 0.5, RiskTolerance: 0.4, Adaptability: 0.6},
	"Yuki Tsunoda": {Experience: 4, RecentForm: 10.1, QualiGap: 0.35, WinFactor: 0.9, Aggression: 0.7, RiskTolerance: 0.7, Adaptability: 0.65},

	// Rookies
	"Kimi Antonelli":    {Experience: 1, RecentForm: 12.5, QualiGap: 0.6, WinFactor: 0.8, Aggression: 0.8, RiskTolerance: 0.9, Adaptability: 0.6},
	"Oliver Bearman":    {Experience: 1, RecentForm: 14.2, QualiGap: 0.7, WinFactor: 0.8, Aggression: 0.75, RiskTolerance: 0.8, Adaptability: 0.65},
	"Franco Colapinto":  {Experience: 1, RecentForm: 15.1, QualiGap: 0.8, WinFactor: 0.75, Aggression: 0.7, RiskTolerance: 0.75, Adaptability: 0.6},
	"Gabriel Bortoleto": {Experience: 1, RecentForm: 16.3, QualiGap: 0.9, WinFactor: 0.7, Aggression: 0.7, RiskTolerance: 0.8, Adaptability: 0.6},
	"Isack Hadjar":      {Experience: 1, RecentForm: 15.8, QualiGap: 0.85, WinFactor: 0.75, Aggression: 0.75, RiskTolerance: 0.8, Adaptability: 0.6},
	"Liam Lawson":       {Experience: 2, RecentForm: 13.9, QualiGap: 0.55, WinFactor: 0.85, Aggression: 0.8, RiskTolerance: 0.75, Adaptability: 0.65},
}

// defaultDriver is the neutral profile returned for names not in the table.
// Callers cannot distinguish an unknown driver from a known backmarker.
var defaultDriver = models.DriverProfile{
	Experience:    3,
	RecentForm:    15.0,
	QualiGap:      0.8,
	WinFactor:     0.7,
	Aggression:    0.6,
	RiskTolerance: 0.6,
	Adaptability:  0.6,
}

// wetSpecialists get the aggression boost in wet strategy selection and the
// favourable weather adjustment in win-likelihood scoring.
var wetSpecialists = map[string]bool{
	"Lewis Hamilton":  true,
	"Max Verstappen":  true,
	"Fernando Alonso": true,
}
