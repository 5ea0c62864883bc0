package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/stockpulse/quote-data/internal/api"
	"github.com/stockpulse/quote-data/internal/config"
	"github.com/stockpulse/quote-data/internal/database"
	"github.com/stockpulse/quote-data/internal/directory"
	"github.com/stockpulse/quote-data/internal/history"
	"github.com/stockpulse/quote-data/internal/poller"
	"github.com/stockpulse/quote-data/internal/version"
	"github.com/stockpulse/quote-data/internal/writer"
)

func main() {
	configPath := flag.String("config", "configs/gatherer.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	runID := uuid.New()
	logger.Info("starting gatherer",
		"version", version.Version,
		"commit", version.Commit,
		"run_id", runID,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"api_url", cfg.API.BaseURL,
		"interval", cfg.Poller.Interval,
		"max_rounds", cfg.Poller.MaxRounds,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Build the company directory
	dir := directory.Default()
	if len(cfg.Tracking.Companies) > 0 {
		entries := make([]directory.Entry, len(cfg.Tracking.Companies))
		for i, c := range cfg.Tracking.Companies {
			entries[i] = directory.Entry{Name: c.Name, Ticker: c.Ticker}
		}
		dir, err = directory.New(entries)
		if err != nil {
			logger.Error("invalid tracking config", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("company directory ready", "companies", dir.Len())

	// Create API client
	client := api.NewClient(
		cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger),
	)

	// CSV snapshot sink
	csvWriter := writer.NewCSVWriter(cfg.Snapshot.Path, logger)
	if err := csvWriter.Init(); err != nil {
		logger.Error("failed to initialize snapshot file", "error", err)
		os.Exit(1)
	}

	sinks := []poller.SnapshotSink{csvWriter}

	// Optional database sink
	if cfg.Database.Enabled {
		logger.Info("connecting to database",
			"host", cfg.Database.Timescale.Host,
			"port", cfg.Database.Timescale.Port,
			"database", cfg.Database.Timescale.Name,
		)

		pool, err := database.Connect(ctx, cfg.Database.Timescale)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		sinks = append(sinks, writer.NewPostgresWriter(pool, runID, logger))
		logger.Info("database connected")
	}

	// Build and run the polling loop
	buffer := history.New(cfg.Poller.HistorySize)
	p := poller.New(
		poller.Config{
			Interval:  cfg.Poller.Interval,
			MaxRounds: cfg.Poller.MaxRounds,
		},
		client, dir, buffer, sinks, logger,
	)

	// Single top-level guard: any error from the loop is logged once and
	// the process exits. The last written snapshot stays on disk.
	if err := p.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("gatherer stopped")
			return
		}
		logger.Error("gatherer stopped on error", "error", err)
		os.Exit(1)
	}

	logger.Info("gatherer finished")
}
