// Package main provides the historical results fetcher, one-shot or on a
// cron schedule.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/pitwall/internal/config"
	"github.com/yourusername/pitwall/internal/database"
	"github.com/yourusername/pitwall/internal/datasource"
	"github.com/yourusername/pitwall/internal/logger"
	"github.com/yourusername/pitwall/internal/randutil"
	"github.com/yourusername/pitwall/internal/repository"
	"github.com/yourusername/pitwall/internal/scheduler"
	"github.com/yourusername/pitwall/internal/service"
)

var (
	configFile string
	daemon     bool

	appLog    *logrus.Logger
	cfg       *config.Config
	ingestion *service.IngestionService
	db        *database.DB
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().BoolVar(&daemon, "daemon", false, "Run on the configured cron schedule instead of once")
}

var rootCmd = &cobra.Command{
	Use:   "fetch-results",
	Short: "Fetch historical race results into the training dataset",
	Long:  `Pulls season results from the Ergast API, flattens them into the CSV dataset the training pipeline consumes, and optionally mirrors them into PostgreSQL.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(cmd.Context()); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if daemon {
			return runScheduled()
		}
		return runOnce(cmd.Context())
	},
}

func main() {
	defer func() {
		if db != nil {
			db.Close()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if err := config.LoadSecretsFromAWS(context.Background(), cfg); err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if len(cfg.Ingestion.Seasons) == 0 {
		return fmt.Errorf("no seasons configured under ingestion.seasons")
	}
	if cfg.Ingestion.OutputPath == "" {
		return fmt.Errorf("ingestion.output_path is required")
	}
	appLog = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	return nil
}

func setupDependencies(ctx context.Context) error {
	httpClient := datasource.NewRateLimitedHTTPClient(datasource.HTTPClientConfig{
		Timeout:           time.Duration(cfg.Ingestion.TimeoutSeconds) * time.Second,
		MaxRetries:        cfg.Ingestion.RetryAttempts,
		RetryWaitMin:      time.Second,
		RetryWaitMax:      30 * time.Second,
		RateLimit:         cfg.Ingestion.RequestsPerSecond,
		CircuitBreakerMax: 5,
	}, log.New(os.Stderr, "ergast: ", log.LstdFlags))

	client := datasource.NewErgastClient(cfg.Ingestion.BaseURL, httpClient, randutil.NewLocked(time.Now().UnixNano()))

	var resultRepo repository.RaceResultRepository
	if cfg.Ingestion.StoreEnabled {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		var err error
		db, err = database.NewDB(connectCtx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		if err := db.EnsureSchema(connectCtx); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
		resultRepo = repository.NewPostgresRaceResultRepository(db)
	}

	ingestion = service.NewIngestionService(client, resultRepo, cfg.Ingestion.OutputPath, appLog)
	return nil
}

func runOnce(ctx context.Context) error {
	report, err := ingestion.SyncSeasons(ctx, cfg.Ingestion.Seasons)
	if err != nil {
		return err
	}
	appLog.WithField("report", report.String()).Info("Sync finished")

	top := report.Form
	if len(top) > 5 {
		top = top[:5]
	}
	for _, f := range top {
		appLog.WithFields(logrus.Fields{
			"driver":      f.Driver,
			"races":       f.Races,
			"mean_finish": f.MeanFinish,
			"best_finish": f.BestFinish,
		}).Info("Driver form")
	}
	return nil
}

func runScheduled() error {
	if cfg.Ingestion.Schedule == "" {
		return fmt.Errorf("ingestion.schedule is required in daemon mode")
	}

	sched := scheduler.NewScheduler(ingestion, appLog)
	if err := sched.ScheduleResultsSync(cfg.Ingestion.Schedule, cfg.Ingestion.Seasons); err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	sched.Stop()
	return nil
}
