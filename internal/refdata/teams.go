// Package refdata serves the static 2025-season reference tables exposed by
// the read-only API endpoints: team profiles, the race calendar, driver
// career statistics and constructor standings.
package refdata

// Team describes one constructor entry for the current season.
type Team struct {
	Drivers        []string `json:"drivers"`
	Car            string   `json:"car"`
	Principal      string   `json:"principal"`
	Engine         string   `json:"engine"`
	Founded        int      `json:"founded"`
	Championships  int      `json:"championships"`
	Base           string   `json:"base"`
	Color          string   `json:"color"`
	SecondaryColor string   `json:"secondaryColor"`
}

// Teams returns the current-season team table keyed by constructor name.
func Teams() map[string]Team {
	return currentTeams
}

var currentTeams = map[string]Team{
	"Red Bull Racing": {
		Drivers:        []string{"Max Verstappen", "Yuki Tsunoda"},
		Car:            "RB21",
		Principal:      "Laurent Mekies",
		Engine:         "Honda RBPT",
		Founded:        2005,
		Championships:  6,
		Base:           "Milton Keynes, UK",
		Color:          "#0600EF",
		SecondaryColor: "#DC143C",
	},
	"McLaren": {
		Drivers:        []string{"Lando Norris", "Oscar Piastri"},
		Car:            "MCL39",
		Principal:      "Andrea Stella",
		Engine:         "Mercedes",
		Founded:        1963,
		Championships:  8,
		Base:           "Woking, UK",
		Color:          "#FF8700",
		SecondaryColor: "#000000",
	},
	"Ferrari": {
		Drivers:        []string{"Charles Leclerc", "Lewis Hamilton"},
		Car:            "SF-25",
		Principal:      "Frédéric Vasseur",
		Engine:         "Ferrari",
		Founded:        1929,
		Championships:  16,
		Base:           "Maranello, Italy",
		Color:          "#DC0000",
		SecondaryColor: "#FFF200",
	},
	"Mercedes": {
		Drivers:        []string{"George Russell", "Kimi Antonelli"},
		Car:            "W16",
		Principal:      "Toto Wolff",
		Engine:         "Mercedes",
		Founded:        1954,
		Championships:  8,
		Base:           "Brackley, UK",
		Color:          "#00D2BE",
		SecondaryColor: "#000000",
	},
	"Aston Martin": {
		Drivers:        []string{"Fernando Alonso", "Lance Stroll"},
		Car:            "AMR25",
		Principal:      "Mike Krack",
		Engine:         "Mercedes",
		Founded:        2021,
		Championships:  0,
		Base:           "Silverstone, UK",
		Color:          "#006F62",
		SecondaryColor: "#CEDC00",
	},
	"Alpine": {
		Drivers:        []string{"Pierre Gasly", "Franco Colapinto"},
		Car:            "A525",
		Principal:      "Oliver Oakes",
		Engine:         "Renault",
		Founded:        2021,
		Championships:  0,
		Base:           "Enstone, UK",
		Color:          "#0090FF",
		SecondaryColor: "#FF87BC",
	},
	"Williams": {
		Drivers:        []string{"Alex Albon", "Carlos Sainz"},
		Car:            "FW47",
		Principal:      "James Vowles",
		Engine:         "Mercedes",
		Founded:        1977,
		Championships:  9,
		Base:           "Grove, UK",
		Color:          "#005AFF",
		SecondaryColor: "#FFFFFF",
	},
	"RB": {
		Drivers:        []string{"Liam Lawson", "Isack Hadjar"},
		Car:            "VCARB 01",
		Principal:      "Alan Permane",
		Engine:         "Honda RBPT",
		Founded:        2020,
		Championships:  0,
		Base:           "Faenza, Italy",
		Color:          "#6692FF",
		SecondaryColor: "#C8102E",
	},
	"Kick Sauber": {
		Drivers:        []string{"Nico Hülkenberg", "Gabriel Bortoleto"},
		Car:            "C45",
		Principal:      "Alessandro Alunni Bravi",
		Engine:         "Ferrari",
		Founded:        1993,
		Championships:  0,
		Base:           "Hinwil, Switzerland",
		Color:          "#52E252",
		SecondaryColor: "#000000",
	},
	"Haas": {
		Drivers:        []string{"Esteban Ocon", "Oliver Bearman"},
		Car:            "VF-25",
		Principal:      "Ayao Komatsu",
		Engine:         "Ferrari",
		Founded:        2016,
		Championships:  0,
		Base:           "Kannapolis, USA",
		Color:          "#FFFFFF",
		SecondaryColor: "#787878",
	},
}
