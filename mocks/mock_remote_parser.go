package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"expenso/internal/domain"
)

// MockRemoteParser is a mock implementation of port.RemoteParser.
type MockRemoteParser struct {
	mock.Mock
}

func (m *MockRemoteParser) Parse(ctx context.Context, text string) (*domain.ExpenseRecord, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseRecord), args.Error(1)
}
