// Package main provides a one-shot CLI forecaster for a single race.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/pitwall/internal/artifacts"
	"github.com/yourusername/pitwall/internal/config"
	"github.com/yourusername/pitwall/internal/logger"
	"github.com/yourusername/pitwall/internal/models"
	"github.com/yourusername/pitwall/internal/predictor"
	"github.com/yourusername/pitwall/internal/predlog"
	"github.com/yourusername/pitwall/internal/profiles"
	"github.com/yourusername/pitwall/internal/randutil"
	"github.com/yourusername/pitwall/internal/refdata"
)

var (
	configFile  string
	circuit     string
	weatherFlag string
	entriesFile string
	seed        int64

	appLog *logrus.Logger
	cfg    *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().StringVar(&circuit, "circuit", "Monaco Circuit", "Circuit name")
	rootCmd.Flags().StringVar(&weatherFlag, "weather", "Dry", "Weather category: Dry, Mixed or Wet")
	rootCmd.Flags().StringVar(&entriesFile, "entries", "", "JSON file with entrants [{driver, constructor, grid}]; defaults to the current grid")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 uses the current time)")
}

var rootCmd = &cobra.Command{
	Use:   "predict",
	Short: "Forecast one race from the command line",
	Long:  `Runs the full prediction pipeline once and prints the forecast as JSON.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		appLog = logger.NewLogger("warn", cfg.App.Environment)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForecast(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runForecast(ctx context.Context) error {
	store, err := artifacts.Load(cfg.Artifacts.Dir, appLog)
	if err != nil {
		return fmt.Errorf("loading model artifacts: %w", err)
	}

	entrants, err := loadEntrants()
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.NewLocked(seed)

	engine := predictor.NewEngine(store, profiles.NewStore(), rng, predlog.NopSink{}, appLog)

	forecast, err := engine.Predict(ctx, circuit, models.Weather(weatherFlag), entrants)
	if err != nil {
		return fmt.Errorf("forecast failed: %w", err)
	}

	out, err := json.MarshalIndent(forecast, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding forecast: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// loadEntrants reads the entrants file, or builds the current full grid from
// the team table with grid order following constructor standings.
func loadEntrants() ([]models.Entrant, error) {
	if entriesFile != "" {
		data, err := os.ReadFile(entriesFile)
		if err != nil {
			return nil, fmt.Errorf("reading entries file: %w", err)
		}
		var entrants []models.Entrant
		if err := json.Unmarshal(data, &entrants); err != nil {
			return nil, fmt.Errorf("parsing entries file: %w", err)
		}
		return entrants, nil
	}

	teams := refdata.Teams()
	var entrants []models.Entrant
	grid := 1
	for _, standing := range refdata.ConstructorStandings() {
		team, ok := teams[standing.Team]
		if !ok {
			continue
		}
		for _, driver := range team.Drivers {
			entrants = append(entrants, models.Entrant{
				Driver:      driver,
				Constructor: standing.Team,
				Grid:        grid,
			})
			grid++
		}
	}
	return entrants, nil
}
