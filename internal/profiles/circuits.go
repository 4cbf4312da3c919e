package profiles

import "github.com/yourusername/pitwall/internal/models"

// circuitTable merges layout data with the strategy factors that drive tire
// selection. Circuits absent from the table get the Balanced default.
var circuitTable = map[string]models.CircuitProfile{
	// Street circuits where track position is everything
	"Monaco Circuit":            {Type: "Street", DRSZones: 1, LapLength: 3.337, OvertakingDifficulty: 0.95, TireWear: 0.3, StrategyImportance: 0.9},
	"Marina Bay Street Circuit": {Type: "Street", DRSZones: 3, LapLength: 5.063, OvertakingDifficulty: 0.8, TireWear: 0.5, StrategyImportance: 0.8},
	"Baku City Circuit":         {Type: "Street", DRSZones: 2, LapLength: 6.003, OvertakingDifficulty: 0.3, TireWear: 0.5, StrategyImportance: 0.6},
	"Jeddah Corniche Circuit":   {Type: "Street", DRSZones: 3, LapLength: 6.174, OvertakingDifficulty: 0.5, TireWear: 0.6, StrategyImportance: 0.6},
	"Las Vegas Strip Circuit":   {Type: "Street", DRSZones: 2, LapLength: 6.201, OvertakingDifficulty: 0.5, TireWear: 0.6, StrategyImportance: 0.6},

	// High tire wear
	"Circuit de Spa-Francorchamps":   {Type: "Power", DRSZones: 2, LapLength: 7.004, OvertakingDifficulty: 0.3, TireWear: 0.8, StrategyImportance: 0.7},
	"Silverstone Circuit":            {Type: "Balanced", DRSZones: 2, LapLength: 5.891, OvertakingDifficulty: 0.4, TireWear: 0.75, StrategyImportance: 0.7},
	"Circuit de Barcelona-Catalunya": {Type: "Balanced", DRSZones: 2, LapLength: 5.0, OvertakingDifficulty: 0.7, TireWear: 0.6, StrategyImportance: 0.8},

	// Power tracks
	"Monza Circuit": {Type: "Power", DRSZones: 2, LapLength: 5.793, OvertakingDifficulty: 0.2, TireWear: 0.4, StrategyImportance: 0.5},

	// Twisty, hard to pass
	"Hungaroring": {Type: "Twisty", DRSZones: 1, LapLength: 4.381, OvertakingDifficulty: 0.85, TireWear: 0.4, StrategyImportance: 0.85},

	// Balanced
	"Circuit Gilles Villeneuve": {Type: "Balanced", DRSZones: 2, LapLength: 5.0, OvertakingDifficulty: 0.5, TireWear: 0.6, StrategyImportance: 0.6},
	"Circuit of the Americas":   {Type: "Balanced", DRSZones: 2, LapLength: 5.0, OvertakingDifficulty: 0.4, TireWear: 0.7, StrategyImportance: 0.65},
}

// defaultCircuit is the neutral profile for circuits not in the table.
var defaultCircuit = models.CircuitProfile{
	Type:                 "Balanced",
	DRSZones:             2,
	LapLength:            5.0,
	OvertakingDifficulty: 0.5,
	TireWear:             0.6,
	StrategyImportance:   0.6,
}
