// Package main provides the entry point for the prediction API server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitwall/internal/api"
	"github.com/yourusername/pitwall/internal/artifacts"
	"github.com/yourusername/pitwall/internal/config"
	"github.com/yourusername/pitwall/internal/database"
	"github.com/yourusername/pitwall/internal/health"
	"github.com/yourusername/pitwall/internal/logger"
	"github.com/yourusername/pitwall/internal/metrics"
	"github.com/yourusername/pitwall/internal/predictor"
	"github.com/yourusername/pitwall/internal/predlog"
	"github.com/yourusername/pitwall/internal/profiles"
	"github.com/yourusername/pitwall/internal/randutil"
	"github.com/yourusername/pitwall/internal/repository"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	configPath := os.Getenv("PITWALL_CONFIG_PATH")
	cfg, err := config.LoadWithDefaults(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := config.LoadSecretsFromAWS(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to load secrets: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"version":     Version,
	}).Info("pitwall prediction service starting")

	// Artifacts are optional at startup: without them the predict endpoint
	// reports unavailable but the process still serves reference data.
	store, err := artifacts.Load(cfg.Artifacts.Dir, appLog)
	if err != nil {
		appLog.WithError(err).Warn("Model artifacts unavailable, predictions disabled")
		store = nil
	}

	var db *database.DB
	if cfg.NeedsDatabase() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err = database.NewDB(ctx, &cfg.Database)
		cancel()
		if err != nil {
			appLog.WithError(err).Fatal("Failed to connect to database")
		}
		defer db.Close()

		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		err = db.EnsureSchema(ctx)
		cancel()
		if err != nil {
			appLog.WithError(err).Fatal("Failed to ensure database schema")
		}
		appLog.Info("Database connection established")
	}

	var sinks predlog.MultiSink
	if cfg.PredictionLog.CSVPath != "" {
		sinks = append(sinks, predlog.NewCSVSink(cfg.PredictionLog.CSVPath))
	}
	if cfg.PredictionLog.PostgresEnabled {
		sinks = append(sinks, repository.NewPostgresPredictionLogRepository(db))
	}
	var sink predlog.Sink = predlog.NopSink{}
	if len(sinks) > 0 {
		sink = sinks
	}

	rng := randutil.NewLocked(time.Now().UnixNano())
	engine := predictor.NewEngine(store, profiles.NewStore(), rng, sink, appLog)

	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Commit:      GitCommit,
		Port:        strconv.Itoa(cfg.Health.Port),
		Logger:      appLog,
		DB:          dbPinger(db),
		Artifacts:   engine,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := healthServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		go func() {
			mux := http.NewServeMux()
			mux.Handle(cfg.Metrics.Path, metrics.Handler())
			addr := ":" + strconv.Itoa(cfg.Metrics.Port)
			appLog.WithField("addr", addr).Info("Metrics server starting")
			if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
				appLog.WithError(err).Error("Metrics server error")
			}
		}()
	}

	apiServer := api.NewServer(cfg.ListenAddr(), engine, cfg.CacheTTL(), appLog)

	errCh := make(chan error, 1)
	go func() {
		errCh <- apiServer.Start()
	}()
	healthServer.SetReady(true)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		appLog.WithField("signal", sig).Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			appLog.WithError(err).Error("API server stopped unexpectedly")
		}
	}

	healthServer.SetReady(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Error("Error during API server shutdown")
	}

	appLog.Info("pitwall prediction service shut down")
}

// dbPinger adapts a possibly-nil DB to the health server's interface.
func dbPinger(db *database.DB) health.DatabasePinger {
	if db == nil {
		return nil
	}
	return db
}
