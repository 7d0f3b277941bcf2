// Command httpd runs the creative-radar HTTP service: content tagging,
// ranking and full analysis runs over request-supplied records.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonesrussell/creative-radar/internal/api"
	"github.com/jonesrussell/creative-radar/internal/config"
	"github.com/jonesrussell/creative-radar/internal/database"
	"github.com/jonesrussell/creative-radar/internal/logging"
	"github.com/jonesrussell/creative-radar/internal/ranker"
	"github.com/jonesrussell/creative-radar/internal/telemetry"
)

const (
	defaultConfigPath = "config.yml"
	shutdownTimeout   = 15 * time.Second
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting service",
		"name", cfg.Service.Name,
		"version", cfg.Service.Version,
		"port", cfg.Service.Port)

	provider := telemetry.NewProvider()

	var runsRepo *database.RunsRepository
	if cfg.Database.Enabled {
		db, dbErr := database.NewPostgresConnection(cfg.Database)
		if dbErr != nil {
			logger.Error("database connection failed, run history disabled", "error", dbErr)
		} else {
			defer db.Close()
			runsRepo = database.NewRunsRepository(db)
			logger.Info("run history enabled", "database", cfg.Database.Database)
		}
	}

	weights := rankingWeights(cfg.Ranking)
	handler := api.NewHandler(weights, cfg.Pipeline.TopN, runsRepo, provider.Tracer, logger)
	server := api.NewServer(handler, cfg, provider.Handler(), logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("service stopped")
}

// rankingWeights builds the objective weights from config, falling back
// to the engine defaults for any weight left unset.
func rankingWeights(cfg config.RankingConfig) ranker.Weights {
	w := ranker.DefaultWeights()
	if cfg.FitWeight != 0 {
		w.Fit = cfg.FitWeight
	}
	if cfg.PerformanceWeight != 0 {
		w.Performance = cfg.PerformanceWeight
	}
	if cfg.FormatWeight != 0 {
		w.Format = cfg.FormatWeight
	}
	if cfg.RepeatabilityWeight != 0 {
		w.Repeatability = cfg.RepeatabilityWeight
	}
	if cfg.RiskWeight != 0 {
		w.Risk = cfg.RiskWeight
	}
	return w
}
