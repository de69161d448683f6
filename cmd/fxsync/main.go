package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"expenso/internal/config"
	"expenso/internal/fx"
	"expenso/internal/logger"
	"expenso/internal/repository/postgres"
)

// fxsync fetches the current HKD-based rate table and persists it,
// meant to run on a cron schedule.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg := logger.New(cfg.Log)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.FX.TimeoutSecs)*time.Second)
	defer cancel()

	client := fx.NewClient(&cfg.FX)
	rates, err := client.FetchRates(ctx)
	if err != nil {
		return fmt.Errorf("fetching rates: %w", err)
	}

	converter := fx.NewConverter()
	converter.SetRates(rates, fx.SourceLive)

	repo := postgres.NewFXRateRepo(db)
	if err := repo.UpsertAll(context.Background(), converter.Snapshot()); err != nil {
		return fmt.Errorf("persisting rates: %w", err)
	}

	logg.Info().Int("currencies", len(rates)).Msg("fx rates synced")
	return nil
}
