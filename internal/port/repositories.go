package port

import (
	"context"

	"github.com/google/uuid"

	"expenso/internal/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// ExpenseRepository persists finalized expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Expense, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Expense, int, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)
	MonthlySummary(ctx context.Context, userID uuid.UUID, month string) (*domain.MonthlySummary, error)
	Months(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// FXRateRepository persists exchange rates keyed by currency.
type FXRateRepository interface {
	UpsertAll(ctx context.Context, rates []domain.FXRate) error
	GetAll(ctx context.Context) ([]domain.FXRate, error)
}

// ReceiptFileRepository persists metadata for uploaded receipt files.
type ReceiptFileRepository interface {
	Create(ctx context.Context, file *domain.ReceiptFile) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.ReceiptFile, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ReceiptFile, int, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
