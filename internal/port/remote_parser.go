package port

import (
	"context"

	"expenso/internal/domain"
)

// RemoteParser abstracts the LLM fallback used when the local parser
// cannot produce a record. Implementations must return a record that
// already satisfies domain.ExpenseRecord.Validate.
type RemoteParser interface {
	Parse(ctx context.Context, text string) (*domain.ExpenseRecord, error)
}
