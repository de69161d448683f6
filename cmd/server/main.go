package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"expenso/internal/config"
	"expenso/internal/domain"
	"expenso/internal/fx"
	"expenso/internal/handler"
	"expenso/internal/logger"
	"expenso/internal/parser"
	"expenso/internal/parser/xai"
	"expenso/internal/port"
	"expenso/internal/repository/postgres"
	"expenso/internal/router"
	"expenso/internal/service"
	s3storage "expenso/internal/storage/s3"
)

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

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	expenseRepo := postgres.NewExpenseRepo(db)
	fxRateRepo := postgres.NewFXRateRepo(db)
	receiptRepo := postgres.NewReceiptFileRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Seed the converter: persisted rates first, then a live fetch.
	converter := fx.NewConverter()
	seedRates(context.Background(), cfg, converter, fxRateRepo, fx.NewClient(&cfg.FX), logg)

	// Parse session with remote LLM fallback
	remote := xai.NewParser(&cfg.Parser)
	session := parser.NewSession(remote, logg)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	expenseSvc := service.NewExpenseService(expenseRepo, converter, logg)
	parseSvc := service.NewParseService(session)
	receiptSvc := service.NewReceiptService(receiptRepo, s3Client, cfg.S3, logg)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	parseH := handler.NewParseHandler(parseSvc)
	expenseH := handler.NewExpenseHandler(expenseSvc)
	receiptH := handler.NewReceiptHandler(receiptSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, logg, authSvc, authH, parseH, expenseH, receiptH, healthH)

	logg.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// seedRates loads the last persisted rate table, then tries a live fetch.
// Startup never fails on rate problems; the fallback table covers the gap.
func seedRates(ctx context.Context, cfg *config.Config, converter *fx.Converter, repo port.FXRateRepository, source port.RateSource, logg zerolog.Logger) {
	if rows, err := repo.GetAll(ctx); err == nil && len(rows) > 0 {
		rates := make(map[domain.Currency]decimal.Decimal, len(rows))
		for _, row := range rows {
			rates[row.Currency] = row.Rate
		}
		converter.SetRates(rates, rows[0].Source)
		logg.Info().Int("currencies", len(rows)).Msg("loaded persisted fx rates")
	}

	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.FX.TimeoutSecs)*time.Second)
	defer cancel()

	rates, err := source.FetchRates(fetchCtx)
	if err != nil {
		logg.Warn().Err(err).Str("rate_source", converter.Source()).Msg("live fx fetch failed")
		return
	}
	converter.SetRates(rates, fx.SourceLive)
	if err := repo.UpsertAll(ctx, converter.Snapshot()); err != nil {
		logg.Warn().Err(err).Msg("persisting fx rates failed")
	}
	logg.Info().Int("currencies", len(rates)).Msg("live fx rates loaded")
}
