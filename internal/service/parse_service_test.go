package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"expenso/internal/domain"
	"expenso/internal/parser"
	"expenso/mocks"
)

func newParseService(remote *mocks.MockRemoteParser) ParseService {
	return NewParseService(parser.NewSession(remote, zerolog.Nop()))
}

func TestParseService_LocalParse(t *testing.T) {
	remote := new(mocks.MockRemoteParser)
	svc := newParseService(remote)

	result, err := svc.Parse(context.Background(), ParseInput{
		Text:   "Coffee at Starbucks 150 dollars today",
		Source: domain.SourceFreeText,
	})
	require.NoError(t, err)

	assert.Equal(t, parser.ProvenanceLocal, result.Provenance)
	assert.Equal(t, "Starbucks", result.Record.Merchant)
	assert.Equal(t, int64(1), svc.Usage().LocalParses)
	remote.AssertNotCalled(t, "Parse")
}

func TestParseService_RemoteFallback(t *testing.T) {
	remote := new(mocks.MockRemoteParser)
	remote.On("Parse", mock.Anything, "夜市隨便吃吃").Return(&domain.ExpenseRecord{
		Date: "2025-03-14", Merchant: "夜市", Category: domain.CategoryFood,
		Currency: domain.CurrencyTWD, Amount: 90, Items: "小吃",
	}, nil).Once()
	svc := newParseService(remote)

	result, err := svc.Parse(context.Background(), ParseInput{Text: "夜市隨便吃吃"})
	require.NoError(t, err)
	assert.Equal(t, parser.ProvenanceRemote, result.Provenance)
	remote.AssertExpectations(t)
}

func TestParseService_RejectsInvalidSource(t *testing.T) {
	svc := newParseService(new(mocks.MockRemoteParser))

	_, err := svc.Parse(context.Background(), ParseInput{
		Text:   "coffee 45",
		Source: domain.Source("smoke_signal"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSource)
}

func TestParseService_FailuresMapToParseFailed(t *testing.T) {
	remote := new(mocks.MockRemoteParser)
	remote.On("Parse", mock.Anything, mock.Anything).
		Return(nil, parser.NewTransportError(errors.New("timeout"))).Once()
	svc := newParseService(remote)

	_, err := svc.Parse(context.Background(), ParseInput{Text: "hello there"})
	assert.ErrorIs(t, err, domain.ErrParseFailed)
}

func TestParseService_Reset(t *testing.T) {
	remote := new(mocks.MockRemoteParser)
	svc := newParseService(remote)

	_, err := svc.Parse(context.Background(), ParseInput{Text: "coffee at Blue Bottle 60"})
	require.NoError(t, err)
	require.Equal(t, int64(1), svc.Usage().Total())

	svc.Reset()
	assert.Equal(t, int64(0), svc.Usage().Total())
}
