package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"expenso/internal/domain"
)

// MockFXRateRepo is a mock implementation of port.FXRateRepository.
type MockFXRateRepo struct {
	mock.Mock
}

func (m *MockFXRateRepo) UpsertAll(ctx context.Context, rates []domain.FXRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

func (m *MockFXRateRepo) GetAll(ctx context.Context) ([]domain.FXRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FXRate), args.Error(1)
}
