package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"expenso/internal/domain"
	"expenso/internal/port"
)

type expenseRepo struct {
	db *sqlx.DB
}

// NewExpenseRepo creates a new PostgreSQL-backed ExpenseRepository.
func NewExpenseRepo(db *sqlx.DB) port.ExpenseRepository {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) Create(ctx context.Context, expense *domain.Expense) error {
	expense.ID = uuid.New()
	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO expenses (id, user_id, date, merchant, category, currency, amount, amount_hkd, items, source, created_at, updated_at)
		VALUES (:id, :user_id, :date, :merchant, :category, :currency, :amount, :amount_hkd, :items, :source, :created_at, :updated_at)`,
		expense)
	if err != nil {
		return fmt.Errorf("expenseRepo.Create: %w", err)
	}
	return nil
}

func (r *expenseRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.GetContext(ctx, &expense,
		"SELECT * FROM expenses WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("expenseRepo.GetByID: %w", err)
	}
	return &expense, nil
}

func (r *expenseRepo) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Expense, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM expenses WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("expenseRepo.List count: %w", err)
	}

	expenses := []domain.Expense{}
	err = r.db.SelectContext(ctx, &expenses, `
		SELECT * FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("expenseRepo.List: %w", err)
	}
	return expenses, total, nil
}

func (r *expenseRepo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	err := r.db.SelectContext(ctx, &expenses, `
		SELECT * FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("expenseRepo.ListAll: %w", err)
	}
	return expenses, nil
}

func (r *expenseRepo) Update(ctx context.Context, expense *domain.Expense) error {
	expense.UpdatedAt = time.Now().UTC()

	res, err := r.db.NamedExecContext(ctx, `
		UPDATE expenses
		SET date = :date, merchant = :merchant, category = :category,
		    currency = :currency, amount = :amount, amount_hkd = :amount_hkd,
		    items = :items, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id`,
		expense)
	if err != nil {
		return fmt.Errorf("expenseRepo.Update: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("expenseRepo.Update rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *expenseRepo) Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(
		"DELETE FROM expenses WHERE user_id = ? AND id IN (?)", userID, ids)
	if err != nil {
		return 0, fmt.Errorf("expenseRepo.Delete build: %w", err)
	}
	query = r.db.Rebind(query)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("expenseRepo.Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expenseRepo.Delete rows: %w", err)
	}
	return int(rows), nil
}

func (r *expenseRepo) MonthlySummary(ctx context.Context, userID uuid.UUID, month string) (*domain.MonthlySummary, error) {
	prefix := month + "%"

	var head struct {
		TotalHKD     decimal.Decimal `db:"total_hkd"`
		Transactions int             `db:"transactions"`
		ActiveDays   int             `db:"active_days"`
	}
	err := r.db.GetContext(ctx, &head, `
		SELECT COALESCE(SUM(amount_hkd), 0) AS total_hkd,
		       COUNT(*) AS transactions,
		       COUNT(DISTINCT date) AS active_days
		FROM expenses
		WHERE user_id = $1 AND date LIKE $2`,
		userID, prefix)
	if err != nil {
		return nil, fmt.Errorf("expenseRepo.MonthlySummary head: %w", err)
	}

	summary := &domain.MonthlySummary{
		Month:        month,
		TotalHKD:     head.TotalHKD,
		Transactions: head.Transactions,
		ActiveDays:   head.ActiveDays,
		ByCategory:   []domain.CategoryTotal{},
		TopMerchants: []domain.MerchantTotal{},
		ByCurrency:   []domain.CurrencyTotal{},
	}
	if head.Transactions > 0 {
		summary.AvgPerTransaction = head.TotalHKD.Div(decimal.NewFromInt(int64(head.Transactions))).Round(2)
	}
	if head.ActiveDays > 0 {
		summary.AvgPerDay = head.TotalHKD.Div(decimal.NewFromInt(int64(head.ActiveDays))).Round(2)
	}

	err = r.db.SelectContext(ctx, &summary.ByCategory, `
		SELECT category, SUM(amount_hkd) AS total_hkd
		FROM expenses
		WHERE user_id = $1 AND date LIKE $2
		GROUP BY category
		ORDER BY total_hkd DESC`,
		userID, prefix)
	if err != nil {
		return nil, fmt.Errorf("expenseRepo.MonthlySummary categories: %w", err)
	}

	err = r.db.SelectContext(ctx, &summary.TopMerchants, `
		SELECT merchant, SUM(amount_hkd) AS total_hkd, COUNT(*) AS visits
		FROM expenses
		WHERE user_id = $1 AND date LIKE $2
		GROUP BY merchant
		ORDER BY total_hkd DESC
		LIMIT 10`,
		userID, prefix)
	if err != nil {
		return nil, fmt.Errorf("expenseRepo.MonthlySummary merchants: %w", err)
	}

	err = r.db.SelectContext(ctx, &summary.ByCurrency, `
		SELECT currency, SUM(amount_hkd) AS total_hkd
		FROM expenses
		WHERE user_id = $1 AND date LIKE $2
		GROUP BY currency
		ORDER BY total_hkd DESC`,
		userID, prefix)
	if err != nil {
		return nil, fmt.Errorf("expenseRepo.MonthlySummary currencies: %w", err)
	}

	return summary, nil
}

func (r *expenseRepo) Months(ctx context.Context, userID uuid.UUID) ([]string, error) {
	months := []string{}
	err := r.db.SelectContext(ctx, &months, `
		SELECT DISTINCT SUBSTRING(date FROM 1 FOR 7) AS month
		FROM expenses
		WHERE user_id = $1
		ORDER BY month DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("expenseRepo.Months: %w", err)
	}
	return months, nil
}
