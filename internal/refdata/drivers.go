package refdata

// DriverStats summarizes one driver's career record.
type DriverStats struct {
	Wins          int    `json:"wins"`
	Podiums       int    `json:"podiums"`
	Poles         int    `json:"poles"`
	Championships int    `json:"championships"`
	Debut         int    `json:"debut"`
	Age           int    `json:"age"`
	Country       string `json:"country"`
	Image         string `json:"image"`
}

// Drivers returns career statistics keyed by driver name.
func Drivers() map[string]DriverStats {
	return driverStats
}

var driverStats = map[string]DriverStats{
	"Max Verstappen": {
		Wins: 65, Podiums: 117, Poles: 44, Championships: 4,
		Debut: 2015, Age: 27, Country: "Netherlands", Image: "/images/drivers/max-verstappen.jpg",
	},
	"Lewis Hamilton": {
		Wins: 105, Podiums: 202, Poles: 104, Championships: 7,
		Debut: 2007, Age: 40, Country: "United Kingdom", Image: "/images/drivers/lewis-hamilton.jpg",
	},
	"Charles Leclerc": {
		Wins: 8, Podiums: 47, Poles: 26, Championships: 0,
		Debut: 2018, Age: 27, Country: "Monaco", Image: "/images/drivers/charles-leclerc.jpg",
	},
	"Lando Norris": {
		Wins: 8, Podiums: 36, Poles: 12, Championships: 0,
		Debut: 2019, Age: 25, Country: "United Kingdom", Image: "/images/drivers/lando-norris.jpg",
	},
	"George Russell": {
		Wins: 4, Podiums: 20, Poles: 6, Championships: 0,
		Debut: 2019, Age: 27, Country: "United Kingdom", Image: "/images/drivers/george-russell.jpg",
	},
	"Fernando Alonso": {
		Wins: 32, Podiums: 106, Poles: 22, Championships: 2,
		Debut: 2001, Age: 43, Country: "Spain", Image: "/images/drivers/fernando-alonso.jpg",
	},
	"Oscar Piastri": {
		Wins: 7, Podiums: 20, Poles: 4, Championships: 0,
		Debut: 2023, Age: 23, Country: "Australia", Image: "/images/drivers/oscar-piastri.jpg",
	},
	"Carlos Sainz": {
		Wins: 4, Podiums: 27, Poles: 6, Championships: 0,
		Debut: 2015, Age: 30, Country: "Spain", Image: "/images/drivers/carlos-sainz.jpg",
	},
	"Pierre Gasly": {
		Wins: 1, Podiums: 5, Poles: 0, Championships: 0,
		Debut: 2017, Age: 28, Country: "France", Image: "/images/drivers/pierre-gasly.jpg",
	},
	"Alex Albon": {
		Wins: 0, Podiums: 2, Poles: 0, Championships: 0,
		Debut: 2019, Age: 28, Country: "Thailand", Image: "/images/drivers/alex-albon.jpg",
	},
	"Lance Stroll": {
		Wins: 0, Podiums: 3, Poles: 1, Championships: 0,
		Debut: 2017, Age: 26, Country: "Canada", Image: "/images/drivers/lance-stroll.jpg",
	},
	"Yuki Tsunoda": {
		Wins: 0, Podiums: 0, Poles: 0, Championships: 0,
		Debut: 2021, Age: 25, Country: "Japan", Image: "/images/drivers/yuki-tsunoda.jpg",
	},
	"Nico Hülkenberg": {
		Wins: 0, Podiums: 1, Poles: 1, Championships: 0,
		Debut: 2010, Age: 37, Country: "Germany", Image: "/images/drivers/nico-hulkenberg.jpg",
	},
	"Esteban Ocon": {
		Wins: 1, Podiums: 4, Poles: 0, Championships: 0,
		Debut: 2016, Age: 28, Country: "France", Image: "/images/drivers/esteban-ocon.jpg",
	},
	"Kimi Antonelli": {
		Wins: 0, Podiums: 1, Poles: 0, Championships: 0,
		Debut: 2025, Age: 18, Country: "Italy", Image: "/images/drivers/kimi-antonelli.jpg",
	},
	"Oliver Bearman": {
		Wins: 0, Podiums: 0, Poles: 0, Championships: 0,
		Debut: 2024, Age: 19, Country: "United Kingdom", Image: "/images/drivers/oliver-bearman.jpg",
	},
	"Franco Colapinto": {
		Wins: 0, Podiums: 0, Poles: 0, Championships: 0,
		Debut: 2025, Age: 22, Country: "Argentina", Image: "/images/drivers/franco-colapinto.jpg",
	},
	"Gabriel Bortoleto": {
		Wins: 0, Podiums: 0, Poles: 0, Championships: 0,
		Debut: 2025, Age: 20, Country: "Brazil", Image: "/images/drivers/gabriel-bortoleto.jpg",
	},
	"Isack Hadjar": {
		Wins: 0, Podiums: 0, Poles: 0, Championships: 0,
		Debut: 2025, Age: 20, Country: "France", Image: "/images/drivers/isack-hadjar.jpg",
	},
	"Liam Lawson": {
		Wins: 0, Podiums: 0, Poles: 0, Championships: 0,
		Debut: 2023, Age: 23, Country: "New Zealand", Image: "/images/drivers/liam-lawson.jpg",
	},
}
