package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date form used everywhere in the system.
const DateLayout = "2006-01-02"

// ExpenseRecord is the canonical output of a parse: a transient, fully
// structured expense. It is never mutated after construction; downstream
// edits produce a new record.
type ExpenseRecord struct {
	Date     string   `json:"date"`
	Merchant string   `json:"merchant"`
	Category Category `json:"category"`
	Currency Currency `json:"currency"`
	Amount   float64  `json:"amount"`
	Items    string   `json:"items"`
}

// Coerce returns a copy of r with out-of-enum values clamped to their
// defaults: unknown category → Other, unknown currency → base currency,
// invalid date → now's date, empty items → merchant.
func (r ExpenseRecord) Coerce(now time.Time) ExpenseRecord {
	if !r.Category.IsValid() {
		r.Category = CategoryOther
	}
	if !r.Currency.IsValid() {
		r.Currency = BaseCurrency
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		r.Date = now.Format(DateLayout)
	}
	if r.Items == "" {
		r.Items = r.Merchant
	}
	return r
}

// Validate checks the record invariants: positive amount, non-empty
// merchant, enum membership, and a valid calendar date.
func (r ExpenseRecord) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidRecord
	}
	if r.Merchant == "" {
		return ErrInvalidRecord
	}
	if !r.Category.IsValid() || !r.Currency.IsValid() {
		return ErrInvalidRecord
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrInvalidRecord
	}
	return nil
}

// Expense is a persisted expense row owned by a user.
type Expense struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	UserID    uuid.UUID       `db:"user_id" json:"user_id"`
	Date      string          `db:"date" json:"date"`
	Merchant  string          `db:"merchant" json:"merchant"`
	Category  Category        `db:"category" json:"category"`
	Currency  Currency        `db:"currency" json:"currency"`
	Amount    float64         `db:"amount" json:"amount"`
	AmountHKD decimal.Decimal `db:"amount_hkd" json:"amount_hkd"`
	Items     string          `db:"items" json:"items"`
	Source    Source          `db:"source" json:"source"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// User represents a registered account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// FXRate is the exchange rate for one currency: units per 1 HKD.
type FXRate struct {
	Currency  Currency        `db:"currency" json:"currency"`
	Rate      decimal.Decimal `db:"rate" json:"rate"`
	Source    string          `db:"source" json:"source"` // "live" or "fallback"
	FetchedAt time.Time       `db:"fetched_at" json:"fetched_at"`
}

// ReceiptFile is the metadata row for an uploaded receipt image or PDF.
// OCR happens outside this system; only the original bytes are kept.
type ReceiptFile struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	FileName    string    `db:"file_name" json:"file_name"`
	ContentType string    `db:"content_type" json:"content_type"`
	SizeBytes   int64     `db:"size_bytes" json:"size_bytes"`
	StorageKey  string    `db:"storage_key" json:"storage_key"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// CategoryTotal is one row of a per-category breakdown.
type CategoryTotal struct {
	Category Category        `db:"category" json:"category"`
	TotalHKD decimal.Decimal `db:"total_hkd" json:"total_hkd"`
}

// MerchantTotal is one row of a per-merchant breakdown.
type MerchantTotal struct {
	Merchant string          `db:"merchant" json:"merchant"`
	TotalHKD decimal.Decimal `db:"total_hkd" json:"total_hkd"`
	Visits   int             `db:"visits" json:"visits"`
}

// CurrencyTotal is one row of a per-currency breakdown.
type CurrencyTotal struct {
	Currency Currency        `db:"currency" json:"currency"`
	TotalHKD decimal.Decimal `db:"total_hkd" json:"total_hkd"`
}

// MonthlySummary aggregates one calendar month of a user's spending,
// all in the base currency.
type MonthlySummary struct {
	Month             string          `json:"month"` // YYYY-MM
	TotalHKD          decimal.Decimal `json:"total_hkd"`
	Transactions      int             `json:"transactions"`
	AvgPerTransaction decimal.Decimal `json:"avg_per_transaction"`
	AvgPerDay         decimal.Decimal `json:"avg_per_day"`
	ActiveDays        int             `json:"active_days"`
	ByCategory        []CategoryTotal `json:"by_category"`
	TopMerchants      []MerchantTotal `json:"top_merchants"`
	ByCurrency        []CurrencyTotal `json:"by_currency"`
}

// ParseUsage is a snapshot of the session's parse counters.
type ParseUsage struct {
	LocalParses int64 `json:"local_parses"`
	RemoteCalls int64 `json:"remote_calls"`
	CacheHits   int64 `json:"cache_hits"`
}

// Total returns the total number of parse requests served.
func (u ParseUsage) Total() int64 {
	return u.LocalParses + u.RemoteCalls + u.CacheHits
}
