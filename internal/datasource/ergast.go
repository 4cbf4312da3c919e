package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/yourusername/pitwall/internal/models"
)

// ergast API response shapes, limited to the fields the dataset needs.
type ergastResponse struct {
	MRData struct {
		RaceTable struct {
			Races []ergastRace `json:"Races"`
		} `json:"RaceTable"`
	} `json:"MRData"`
}

type ergastRace struct {
	Season   string `json:"season"`
	Round    string `json:"round"`
	RaceName string `json:"raceName"`
	Date     string `json:"date"`
	Circuit  struct {
		CircuitName string `json:"circuitName"`
	} `json:"Circuit"`
	Results []ergastResult `json:"Results"`
}

type ergastResult struct {
	Position string `json:"position"`
	Grid     string `json:"grid"`
	Points   string `json:"points"`
	Status   string `json:"status"`
	Driver   struct {
		GivenName  string `json:"givenName"`
		FamilyName string `json:"familyName"`
	} `json:"Driver"`
	Constructor struct {
		Name string `json:"name"`
	} `json:"Constructor"`
}

// ErgastClient fetches season results. The upstream data carries no weather
// or tire information, so those columns are simulated per race the same way
// the training pipeline expects them.
type ErgastClient struct {
	baseURL string
	http    *RateLimitedHTTPClient
	rng     *rand.Rand
}

// NewErgastClient creates a client for the given API base URL, e.g.
// "https://api.jolpi.ca/ergast/f1".
func NewErgastClient(baseURL string, httpClient *RateLimitedHTTPClient, rng *rand.Rand) *ErgastClient {
	return &ErgastClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		rng:     rng,
	}
}

// FetchSeason returns all flattened result rows for one season.
func (c *ErgastClient) FetchSeason(ctx context.Context, season string) ([]models.RaceResult, int, error) {
	url := fmt.Sprintf("%s/%s/results.json?limit=1000", c.baseURL, season)

	resp, err := c.http.Get(ctx, url)
	if err != nil {
		return nil, 0, fmt.Errorf("fetching season %s: %w", season, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("fetching season %s: unexpected status %d", season, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading season %s response: %w", season, err)
	}

	var parsed ergastResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, 0, fmt.Errorf("decoding season %s response: %w", season, err)
	}

	var rows []models.RaceResult
	for _, race := range parsed.MRData.RaceTable.Races {
		rows = append(rows, c.flattenRace(race)...)
	}
	return rows, len(parsed.MRData.RaceTable.Races), nil
}

// flattenRace expands one race into per-driver rows. Weather, tire strategy
// and the fastest lap are drawn once per race; the gap depends on position.
func (c *ErgastClient) flattenRace(race ergastRace) []models.RaceResult {
	w := simulateWeather(race.Circuit.CircuitName)
	tires := c.simulateTireStrategy(w)
	fastestLap := c.simulateFastestLap()

	rows := make([]models.RaceResult, 0, len(race.Results))
	for _, result := range race.Results {
		position := atoiOrZero(result.Position)
		rows = append(rows, models.RaceResult{
			Season:       race.Season,
			Round:        race.Round,
			RaceName:     race.RaceName,
			Circuit:      race.Circuit.CircuitName,
			Date:         race.Date,
			Driver:       result.Driver.GivenName + " " + result.Driver.FamilyName,
			Constructor:  result.Constructor.Name,
			Grid:         atoiOrZero(result.Grid),
			Position:     position,
			Points:       atofOrZero(result.Points),
			Status:       result.Status,
			Weather:      w,
			TireStrategy: tires,
			GapToLeader:  c.simulateGap(position),
			FastestLap:   fastestLap,
		})
	}
	return rows
}

// simulateWeather assigns a deterministic weather category to circuits with
// a reputation for rain or changeable conditions.
func simulateWeather(circuitName string) models.Weather {
	lower := strings.ToLower(circuitName)
	for _, word := range []string{"spa", "suzuka", "interlagos", "silverstone"} {
		if strings.Contains(lower, word) {
			return models.WeatherWet
		}
	}
	for _, word := range []string{"monaco", "nürburgring", "istanbul"} {
		if strings.Contains(lower, word) {
			return models.WeatherMixed
		}
	}
	return models.WeatherDry
}

func (c *ErgastClient) simulateTireStrategy(w models.Weather) string {
	switch w {
	case models.WeatherWet:
		return "Intermediate → Wet"
	case models.WeatherMixed:
		return pick(c.rng, "Soft → Medium", "Medium → Hard")
	default:
		return pick(c.rng, "Soft → Medium", "Medium → Hard", "Soft → Hard")
	}
}

func (c *ErgastClient) simulateFastestLap() string {
	seconds := 25 + c.rng.Intn(16)
	millis := c.rng.Intn(1000)
	return fmt.Sprintf("1:%02d.%03d", seconds, millis)
}

func (c *ErgastClient) simulateGap(position int) string {
	switch {
	case position == 1:
		return "+0.000s"
	case position <= 10:
		return fmt.Sprintf("+%.3fs", float64(position)*(1.0+c.rng.Float64()*2.0))
	case c.rng.Float64() < 0.1:
		return "DNF"
	default:
		return fmt.Sprintf("+%.3fs", float64(position)*(2.5+c.rng.Float64()*4.0))
	}
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func atofOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
