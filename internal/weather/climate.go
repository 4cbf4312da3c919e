package weather

// climateBand is the known ambient temperature range for a circuit, degrees C.
type climateBand struct {
	Min, Max int
}

// climateTable maps each 2025 circuit to its typical race-weekend climate.
var climateTable = map[string]climateBand{
	"Bahrain International Circuit":  {25, 35},
	"Jeddah Corniche Circuit":        {28, 38},
	"Albert Park Circuit":            {18, 28},
	"Suzuka Circuit":                 {15, 25},
	"Shanghai International Circuit": {12, 22},
	"Miami International Autodrome":  {26, 35},
	"Imola":                          {16, 26},
	"Monaco Circuit":                 {18, 28},
	"Circuit de Barcelona-Catalunya": {16, 26},
	"Circuit Gilles Villeneuve":      {12, 22},
	"Red Bull Ring":                  {14, 24},
	"Silverstone Circuit":            {12, 22},
	"Hungaroring":                    {18, 30},
	"Circuit de Spa-Francorchamps":   {10, 20},
	"Circuit Zandvoort":              {12, 22},
	"Monza Circuit":                  {16, 26},
	"Marina Bay Street Circuit":      {26, 32},
	"Baku City Circuit":              {20, 30},
	"Circuit of the Americas":        {18, 28},
	"Autódromo Hermanos Rodríguez":   {16, 24},
	"Interlagos":                     {18, 28},
	"Las Vegas Strip Circuit":        {10, 25},
	"Losail International Circuit":   {22, 32},
	"Yas Marina Circuit":             {24, 32},
}

// defaultClimate is the mid-range band used for circuits not in the table.
var defaultClimate = climateBand{16, 26}
