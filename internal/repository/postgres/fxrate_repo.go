package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"expenso/internal/domain"
	"expenso/internal/port"
)

type fxRateRepo struct {
	db *sqlx.DB
}

// NewFXRateRepo creates a new PostgreSQL-backed FXRateRepository.
func NewFXRateRepo(db *sqlx.DB) port.FXRateRepository {
	return &fxRateRepo{db: db}
}

func (r *fxRateRepo) UpsertAll(ctx context.Context, rates []domain.FXRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("fxRateRepo.UpsertAll begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, rate := range rates {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO fx_rates (currency, rate, source, fetched_at)
			VALUES (:currency, :rate, :source, :fetched_at)
			ON CONFLICT (currency)
			DO UPDATE SET rate = EXCLUDED.rate, source = EXCLUDED.source, fetched_at = EXCLUDED.fetched_at`,
			rate)
		if err != nil {
			return fmt.Errorf("fxRateRepo.UpsertAll %s: %w", rate.Currency, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("fxRateRepo.UpsertAll commit: %w", err)
	}
	return nil
}

func (r *fxRateRepo) GetAll(ctx context.Context) ([]domain.FXRate, error) {
	rates := []domain.FXRate{}
	err := r.db.SelectContext(ctx, &rates,
		"SELECT * FROM fx_rates ORDER BY currency")
	if err != nil {
		return nil, fmt.Errorf("fxRateRepo.GetAll: %w", err)
	}
	return rates, nil
}
