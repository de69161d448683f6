package port

import (
	"context"

	"github.com/shopspring/decimal"

	"expenso/internal/domain"
)

// RateSource fetches live exchange rates quoted as units per 1 HKD.
type RateSource interface {
	FetchRates(ctx context.Context) (map[domain.Currency]decimal.Decimal, error)
}
