package service

import (
	"context"
	"errors"
	"fmt"

	"expenso/internal/domain"
	"expenso/internal/parser"
)

// ParseInput is the DTO for parse requests.
type ParseInput struct {
	Text   string        `json:"text" binding:"required"`
	Source domain.Source `json:"source"`
}

// ParseResult pairs the structured record with which path produced it.
type ParseResult struct {
	Record     domain.ExpenseRecord `json:"record"`
	Provenance parser.Provenance    `json:"provenance"`
}

// ParseService turns free text into reviewed expense records.
type ParseService interface {
	Parse(ctx context.Context, input ParseInput) (*ParseResult, error)
	Usage() domain.ParseUsage
	Reset()
}

type parseService struct {
	session *parser.Session
}

// NewParseService creates a ParseService around a parse session.
func NewParseService(session *parser.Session) ParseService {
	return &parseService{session: session}
}

func (s *parseService) Parse(ctx context.Context, input ParseInput) (*ParseResult, error) {
	if input.Source != "" && !domain.AllowedSources[input.Source] {
		return nil, domain.ErrInvalidSource
	}

	rec, prov, err := s.session.Parse(ctx, input.Text)
	if err != nil {
		var transport *parser.TransportError
		var schema *parser.SchemaError
		if parser.IsLocalFailure(err) || errors.As(err, &transport) || errors.As(err, &schema) {
			return nil, fmt.Errorf("%w: %s", domain.ErrParseFailed, err)
		}
		return nil, err
	}
	return &ParseResult{Record: *rec, Provenance: prov}, nil
}

func (s *parseService) Usage() domain.ParseUsage {
	return s.session.Usage()
}

func (s *parseService) Reset() {
	s.session.Reset()
}
