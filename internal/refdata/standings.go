package refdata

// Standing is one row of the constructor championship table.
type Standing struct {
	Position int    `json:"position"`
	Team     string `json:"team"`
	Points   int    `json:"points"`
	Wins     int    `json:"wins"`
}

// ConstructorStandings returns the championship table in position order.
func ConstructorStandings() []Standing {
	return constructorStandings
}

var constructorStandings = []Standing{
	{Position: 1, Team: "McLaren", Points: 666, Wins: 6},
	{Position: 2, Team: "Ferrari", Points: 652, Wins: 5},
	{Position: 3, Team: "Red Bull Racing", Points: 589, Wins: 9},
	{Position: 4, Team: "Mercedes", Points: 382, Wins: 3},
	{Position: 5, Team: "Aston Martin", Points: 94, Wins: 0},
	{Position: 6, Team: "Alpine", Points: 65, Wins: 0},
	{Position: 7, Team: "Haas", Points: 58, Wins: 0},
	{Position: 8, Team: "RB", Points: 46, Wins: 0},
	{Position: 9, Team: "Williams", Points: 17, Wins: 0},
	{Position: 10, Team: "Kick Sauber", Points: 0, Wins: 0},
}
