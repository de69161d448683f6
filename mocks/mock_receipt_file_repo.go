package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"expenso/internal/domain"
)

// MockReceiptFileRepo is a mock implementation of port.ReceiptFileRepository.
type MockReceiptFileRepo struct {
	mock.Mock
}

func (m *MockReceiptFileRepo) Create(ctx context.Context, file *domain.ReceiptFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockReceiptFileRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.ReceiptFile, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReceiptFile), args.Error(1)
}

func (m *MockReceiptFileRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ReceiptFile, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ReceiptFile), args.Int(1), args.Error(2)
}

func (m *MockReceiptFileRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
