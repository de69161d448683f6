package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"expenso/internal/domain"
	"expenso/internal/fx"
	"expenso/internal/port"
)

// SaveExpenseInput is the DTO for saving a reviewed expense record.
type SaveExpenseInput struct {
	Record domain.ExpenseRecord `json:"record" binding:"required"`
	Source domain.Source        `json:"source" binding:"required"`
}

// UpdateExpenseInput is the DTO for editing a saved expense.
type UpdateExpenseInput struct {
	Date     string          `json:"date" binding:"required"`
	Merchant string          `json:"merchant" binding:"required"`
	Category domain.Category `json:"category" binding:"required"`
	Currency domain.Currency `json:"currency" binding:"required"`
	Amount   float64         `json:"amount" binding:"required,gt=0"`
	Items    string          `json:"items"`
}

// ExpenseService defines the expense persistence contract.
type ExpenseService interface {
	Save(ctx context.Context, userID uuid.UUID, input SaveExpenseInput) (*domain.Expense, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Expense, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Expense, int, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Expense, error)
	Update(ctx context.Context, userID, id uuid.UUID, input UpdateExpenseInput) (*domain.Expense, error)
	Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)
	MonthlySummary(ctx context.Context, userID uuid.UUID, month string) (*domain.MonthlySummary, error)
	Months(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type expenseService struct {
	repo      port.ExpenseRepository
	converter *fx.Converter
	log       zerolog.Logger
}

// NewExpenseService creates a new ExpenseService implementation.
func NewExpenseService(repo port.ExpenseRepository, converter *fx.Converter, log zerolog.Logger) ExpenseService {
	return &expenseService{
		repo:      repo,
		converter: converter,
		log:       log.With().Str("component", "service.Expense").Logger(),
	}
}

func (s *expenseService) Save(ctx context.Context, userID uuid.UUID, input SaveExpenseInput) (*domain.Expense, error) {
	if !domain.AllowedSources[input.Source] {
		return nil, domain.ErrInvalidSource
	}
	if err := input.Record.Validate(); err != nil {
		return nil, err
	}

	rec := input.Record
	expense := &domain.Expense{
		UserID:    userID,
		Date:      rec.Date,
		Merchant:  rec.Merchant,
		Category:  rec.Category,
		Currency:  rec.Currency,
		Amount:    rec.Amount,
		AmountHKD: s.converter.ToBase(rec.Amount, rec.Currency),
		Items:     rec.Items,
		Source:    input.Source,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("expense.Save: %w", err)
	}

	s.log.Info().
		Str("expense_id", expense.ID.String()).
		Str("merchant", expense.Merchant).
		Str("currency", string(expense.Currency)).
		Str("amount_hkd", expense.AmountHKD.String()).
		Str("rate_source", s.converter.Source()).
		Msg("expense saved")
	return expense, nil
}

func (s *expenseService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Expense, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *expenseService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Expense, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, userID, offset, limit)
}

func (s *expenseService) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Expense, error) {
	return s.repo.ListAll(ctx, userID)
}

func (s *expenseService) Update(ctx context.Context, userID, id uuid.UUID, input UpdateExpenseInput) (*domain.Expense, error) {
	expense, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	rec := domain.ExpenseRecord{
		Date:     input.Date,
		Merchant: input.Merchant,
		Category: input.Category,
		Currency: input.Currency,
		Amount:   input.Amount,
		Items:    input.Items,
	}
	if rec.Items == "" {
		rec.Items = rec.Merchant
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	expense.Date = rec.Date
	expense.Merchant = rec.Merchant
	expense.Category = rec.Category
	expense.Currency = rec.Currency
	expense.Amount = rec.Amount
	expense.AmountHKD = s.converter.ToBase(rec.Amount, rec.Currency)
	expense.Items = rec.Items

	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("expense.Update: %w", err)
	}
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	deleted, err := s.repo.Delete(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("expense.Delete: %w", err)
	}
	s.log.Info().Int("requested", len(ids)).Int("deleted", deleted).Msg("expenses deleted")
	return deleted, nil
}

func (s *expenseService) MonthlySummary(ctx context.Context, userID uuid.UUID, month string) (*domain.MonthlySummary, error) {
	return s.repo.MonthlySummary(ctx, userID, month)
}

func (s *expenseService) Months(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.repo.Months(ctx, userID)
}
