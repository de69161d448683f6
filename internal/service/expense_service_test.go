package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"expenso/internal/domain"
	"expenso/internal/fx"
	"expenso/mocks"
)

func testRecord() domain.ExpenseRecord {
	return domain.ExpenseRecord{
		Date:     "2025-03-14",
		Merchant: "夜市",
		Category: domain.CategoryFood,
		Currency: domain.CurrencyTWD,
		Amount:   412,
		Items:    "小吃",
	}
}

func newExpenseService(repo *mocks.MockExpenseRepo) ExpenseService {
	return NewExpenseService(repo, fx.NewConverter(), zerolog.Nop())
}

func TestExpenseService_Save_ConvertsToBase(t *testing.T) {
	repo := new(mocks.MockExpenseRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Expense")).Return(nil).Once()
	svc := newExpenseService(repo)

	userID := uuid.New()
	expense, err := svc.Save(context.Background(), userID, SaveExpenseInput{
		Record: testRecord(),
		Source: domain.SourceFreeText,
	})
	require.NoError(t, err)

	assert.Equal(t, userID, expense.UserID)
	assert.Equal(t, 412.0, expense.Amount)
	// 412 TWD at the 4.12 fallback rate is exactly 100 HKD.
	assert.True(t, expense.AmountHKD.Equal(decimal.NewFromInt(100)), expense.AmountHKD.String())
	assert.Equal(t, domain.SourceFreeText, expense.Source)
	repo.AssertExpectations(t)
}

func TestExpenseService_Save_RejectsInvalidSource(t *testing.T) {
	repo := new(mocks.MockExpenseRepo)
	svc := newExpenseService(repo)

	_, err := svc.Save(context.Background(), uuid.New(), SaveExpenseInput{
		Record: testRecord(),
		Source: domain.Source("carrier_pigeon"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSource)
	repo.AssertNotCalled(t, "Create")
}

func TestExpenseService_Save_RejectsInvalidRecord(t *testing.T) {
	repo := new(mocks.MockExpenseRepo)
	svc := newExpenseService(repo)

	rec := testRecord()
	rec.Amount = 0
	_, err := svc.Save(context.Background(), uuid.New(), SaveExpenseInput{
		Record: rec,
		Source: domain.SourceFreeText,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)
}

func TestExpenseService_Update_Reconverts(t *testing.T) {
	userID := uuid.New()
	existing := &domain.Expense{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     "2025-03-14",
		Merchant: "夜市",
		Category: domain.CategoryFood,
		Currency: domain.CurrencyTWD,
		Amount:   412,
	}

	repo := new(mocks.MockExpenseRepo)
	repo.On("GetByID", mock.Anything, userID, existing.ID).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Expense")).Return(nil).Once()
	svc := newExpenseService(repo)

	updated, err := svc.Update(context.Background(), userID, existing.ID, UpdateExpenseInput{
		Date:     "2025-03-15",
		Merchant: "夜市",
		Category: domain.CategoryFood,
		Currency: domain.CurrencyHKD,
		Amount:   80,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-15", updated.Date)
	assert.True(t, updated.AmountHKD.Equal(decimal.NewFromInt(80)), updated.AmountHKD.String())
	// Empty items falls back to the merchant.
	assert.Equal(t, "夜市", updated.Items)
	repo.AssertExpectations(t)
}

func TestExpenseService_Delete(t *testing.T) {
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	repo := new(mocks.MockExpenseRepo)
	repo.On("Delete", mock.Anything, userID, ids).Return(2, nil).Once()
	svc := newExpenseService(repo)

	deleted, err := svc.Delete(context.Background(), userID, ids)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	repo.AssertExpectations(t)
}

func TestExpenseService_List_ClampsPagination(t *testing.T) {
	userID := uuid.New()
	repo := new(mocks.MockExpenseRepo)
	repo.On("List", mock.Anything, userID, 0, 50).Return([]domain.Expense{}, 0, nil).Once()
	svc := newExpenseService(repo)

	_, _, err := svc.List(context.Background(), userID, -3, 5000)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
