package fx

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"expenso/internal/domain"
)

// Rate sources.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// FallbackRates quotes units per 1 HKD, used whenever a live rate is
// unavailable.
var FallbackRates = map[domain.Currency]decimal.Decimal{
	domain.CurrencyHKD: decimal.NewFromFloat(1.0),
	domain.CurrencyTWD: decimal.NewFromFloat(4.12),
	domain.CurrencyUSD: decimal.NewFromFloat(0.128),
	domain.CurrencyCNY: decimal.NewFromFloat(0.93),
	domain.CurrencyJPY: decimal.NewFromFloat(19.5),
	domain.CurrencyEUR: decimal.NewFromFloat(0.118),
	domain.CurrencyGBP: decimal.NewFromFloat(0.1),
	domain.CurrencySGD: decimal.NewFromFloat(0.17),
	domain.CurrencyKRW: decimal.NewFromFloat(178.0),
	domain.CurrencyMYR: decimal.NewFromFloat(0.57),
}

// Converter converts amounts into the base currency using the current rate
// table. It starts on fallback rates and can be re-seeded with live rates.
type Converter struct {
	mu     sync.RWMutex
	rates  map[domain.Currency]decimal.Decimal
	source string
	asOf   time.Time
}

// NewConverter creates a converter seeded with the fallback rate table.
func NewConverter() *Converter {
	rates := make(map[domain.Currency]decimal.Decimal, len(FallbackRates))
	for cur, rate := range FallbackRates {
		rates[cur] = rate
	}
	return &Converter{rates: rates, source: SourceFallback, asOf: time.Now()}
}

// SetRates replaces the rate table. The base currency is always pinned to 1.
func (c *Converter) SetRates(rates map[domain.Currency]decimal.Decimal, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rates = make(map[domain.Currency]decimal.Decimal, len(rates))
	for cur, rate := range rates {
		c.rates[cur] = rate
	}
	c.rates[domain.BaseCurrency] = decimal.NewFromInt(1)
	c.source = source
	c.asOf = time.Now()
}

// ToBase converts amount in the given currency to the base currency,
// rounded to 2 decimal places. Unknown or zero rates leave the amount
// unchanged rather than failing the save.
func (c *Converter) ToBase(amount float64, currency domain.Currency) decimal.Decimal {
	c.mu.RLock()
	rate, ok := c.rates[currency]
	c.mu.RUnlock()

	amt := decimal.NewFromFloat(amount)
	if !ok || rate.IsZero() {
		return amt.Round(2)
	}
	return amt.Div(rate).Round(2)
}

// Source reports whether the current table came from a live fetch or the
// fallback.
func (c *Converter) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// Snapshot returns the current table as persistable FXRate rows.
func (c *Converter) Snapshot() []domain.FXRate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rows := make([]domain.FXRate, 0, len(c.rates))
	for _, cur := range domain.Currencies {
		rate, ok := c.rates[cur]
		if !ok {
			continue
		}
		rows = append(rows, domain.FXRate{
			Currency:  cur,
			Rate:      rate,
			Source:    c.source,
			FetchedAt: c.asOf,
		})
	}
	return rows
}
