package profiles

import "github.com/yourusername/pitwall/internal/models"

// constructorTable reflects 2025 competitiveness plus each pit wall's
// strategic philosophy.
var constructorTable = map[string]models.ConstructorProfile{
	"McLaren":         {Standing: 1, Efficiency: 0.98, PaceFactor: 1.0, Aggression: 0.7, RiskTolerance: 0.65, Innovation: 0.85},
	"Ferrari":         {Standing: 2, Efficiency: 0.95, PaceFactor: 0.98, Aggression: 0.8, RiskTolerance: 0.75, Innovation: 0.7},
	"Red Bull Racing": {Standing: 3, Efficiency: 0.93, PaceFactor: 0.96, Aggression: 0.85, RiskTolerance: 0.8, Innovation: 0.9},
	"Mercedes":        {Standing: 4, Efficiency: 0.90, PaceFactor: 0.94, Aggression: 0.6, RiskTolerance: 0.5, Innovation: 0.8},
	"Aston Martin":    {Standing: 5, Efficiency: 0.85, PaceFactor: 0.88, Aggression: 0.7, RiskTolerance: 0.6, Innovation: 0.8},
	"Alpine":          {Standing: 6, Efficiency: 0.82, PaceFactor: 0.85, Aggression: 0.75, RiskTolerance: 0.7, Innovation: 0.7},
	"Haas":            {Standing: 7, Efficiency: 0.80, PaceFactor: 0.83, Aggression: 0.65, RiskTolerance: 0.75, Innovation: 0.5},
	"RB":              {Standing: 8, Efficiency: 0.79, PaceFactor: 0.84, Aggression: 0.75, RiskTolerance: 0.7, Innovation: 0.75},
	"Williams":        {Standing: 9, Efficiency: 0.78, PaceFactor: 0.82, Aggression: 0.6, RiskTolerance: 0.8, Innovation: 0.6},
	"Kick Sauber":     {Standing: 10, Efficiency: 0.75, PaceFactor: 0.80, Aggression: 0.7, RiskTolerance: 0.8, Innovation: 0.6},
}

// defaultConstructor is the neutral profile for unknown team names.
var defaultConstructor = models.ConstructorProfile{
	Standing:      10,
	Efficiency:    0.75,
	PaceFactor:    0.80,
	Aggression:    0.6,
	RiskTolerance: 0.6,
	Innovation:    0.6,
}

// baseWinChance is the point-scale constructor strength used as the first
// factor of the win-likelihood heuristic.
var baseWinChance = map[string]float64{
	"McLaren":         25,
	"Ferrari":         22,
	"Red Bull Racing": 20,
	"Mercedes":        18,
	"Aston Martin":    8,
	"Alpine":          4,
	"Williams":        2,
	"RB":              1.5,
	"Haas":            1,
	"Kick Sauber":     0.5,
}

const defaultBaseWinChance = 1.0
