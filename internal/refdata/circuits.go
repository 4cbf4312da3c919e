package refdata

// Round is one calendar entry for the current season.
type Round struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Round   int    `json:"round"`
	Date    string `json:"date"`
}

// Calendar returns the current-season race calendar in round order.
func Calendar() []Round {
	return calendar2025
}

var calendar2025 = []Round{
	{Name: "Bahrain International Circuit", Country: "Bahrain", Round: 1, Date: "2025-03-16"},
	{Name: "Jeddah Corniche Circuit", Country: "Saudi Arabia", Round: 2, Date: "2025-03-23"},
	{Name: "Albert Park Circuit", Country: "Australia", Round: 3, Date: "2025-04-06"},
	{Name: "Suzuka Circuit", Country: "Japan", Round: 4, Date: "2025-04-13"},
	{Name: "Shanghai International Circuit", Country: "China", Round: 5, Date: "2025-04-20"},
	{Name: "Miami International Autodrome", Country: "USA", Round: 6, Date: "2025-05-04"},
	{Name: "Imola", Country: "Italy", Round: 7, Date: "2025-05-18"},
	{Name: "Monaco Circuit", Country: "Monaco", Round: 8, Date: "2025-05-25"},
	{Name: "Circuit de Barcelona-Catalunya", Country: "Spain", Round: 9, Date: "2025-06-01"},
	{Name: "Circuit Gilles Villeneuve", Country: "Canada", Round: 10, Date: "2025-06-15"},
	{Name: "Red Bull Ring", Country: "Austria", Round: 11, Date: "2025-06-29"},
	{Name: "Silverstone Circuit", Country: "United Kingdom", Round: 12, Date: "2025-07-06"},
	{Name: "Hungaroring", Country: "Hungary", Round: 13, Date: "2025-07-20"},
	{Name: "Circuit de Spa-Francorchamps", Country: "Belgium", Round: 14, Date: "2025-07-27"},
	{Name: "Circuit Zandvoort", Country: "Netherlands", Round: 15, Date: "2025-08-31"},
	{Name: "Monza Circuit", Country: "Italy", Round: 16, Date: "2025-09-07"},
	{Name: "Baku City Circuit", Country: "Azerbaijan", Round: 17, Date: "2025-09-21"},
	{Name: "Marina Bay Street Circuit", Country: "Singapore", Round: 18, Date: "2025-10-05"},
	{Name: "Circuit of the Americas", Country: "USA", Round: 19, Date: "2025-10-19"},
	{Name: "Autódromo Hermanos Rodríguez", Country: "Mexico", Round: 20, Date: "2025-10-26"},
	{Name: "Interlagos", Country: "Brazil", Round: 21, Date: "2025-11-09"},
	{Name: "Las Vegas Strip Circuit", Country: "USA", Round: 22, Date: "2025-11-22"},
	{Name: "Losail International Circuit", Country: "Qatar", Round: 23, Date: "2025-11-30"},
	{Name: "Yas Marina Circuit", Country: "UAE", Round: 24, Date: "2025-12-07"},
}
