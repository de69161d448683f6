package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"expenso/internal/config"
	"expenso/internal/domain"
	"expenso/internal/port"
)

// UploadReceiptInput carries an incoming receipt file.
type UploadReceiptInput struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Body        io.Reader
}

// ReceiptService stores receipt files and their metadata. OCR happens
// outside this system; only the original bytes are kept for audit.
type ReceiptService interface {
	Upload(ctx context.Context, userID uuid.UUID, input UploadReceiptInput) (*domain.ReceiptFile, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.ReceiptFile, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ReceiptFile, int, error)
	Download(ctx context.Context, userID, id uuid.UUID) (*domain.ReceiptFile, []byte, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	PresignedURL(ctx context.Context, userID, id uuid.UUID) (string, error)
}

type receiptService struct {
	repo    port.ReceiptFileRepository
	storage port.ObjectStorage
	cfg     config.S3Config
	log     zerolog.Logger
}

// NewReceiptService creates a new ReceiptService implementation.
func NewReceiptService(
	repo port.ReceiptFileRepository,
	storage port.ObjectStorage,
	cfg config.S3Config,
	log zerolog.Logger,
) ReceiptService {
	return &receiptService{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		log:     log.With().Str("component", "service.Receipt").Logger(),
	}
}

func (s *receiptService) Upload(ctx context.Context, userID uuid.UUID, input UploadReceiptInput) (*domain.ReceiptFile, error) {
	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if _, ok := domain.AllowedContentTypes[contentType]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.SizeBytes > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	id := uuid.New()
	key := fmt.Sprintf("receipts/%s/%s%s", userID, id, filepath.Ext(input.FileName))

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Key:         key,
		Body:        input.Body,
		ContentType: contentType,
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("receipt upload failed")
		return nil, domain.ErrUploadFailed
	}

	file := &domain.ReceiptFile{
		ID:          id,
		UserID:      userID,
		FileName:    input.FileName,
		ContentType: contentType,
		SizeBytes:   input.SizeBytes,
		StorageKey:  key,
	}
	if err := s.repo.Create(ctx, file); err != nil {
		return nil, fmt.Errorf("receipt.Upload: %w", err)
	}

	s.log.Info().
		Str("file_id", file.ID.String()).
		Str("key", key).
		Int64("size_bytes", file.SizeBytes).
		Msg("receipt stored")
	return file, nil
}

func (s *receiptService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.ReceiptFile, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *receiptService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ReceiptFile, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUser(ctx, userID, offset, limit)
}

// Download returns the stored receipt bytes with their metadata row.
func (s *receiptService) Download(ctx context.Context, userID, id uuid.UUID) (*domain.ReceiptFile, []byte, error) {
	file, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.storage.Download(ctx, file.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("receipt.Download: %w", err)
	}
	return file, data, nil
}

// Delete removes the stored object first, then the metadata row. A failed
// object delete keeps the row, so the file stays listed and retryable.
func (s *receiptService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	file, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, file.StorageKey); err != nil {
		return fmt.Errorf("receipt.Delete: %w", err)
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.log.Info().
		Str("file_id", id.String()).
		Str("key", file.StorageKey).
		Msg("receipt deleted")
	return nil
}

func (s *receiptService) PresignedURL(ctx context.Context, userID, id uuid.UUID) (string, error) {
	file, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return "", err
	}
	url, err := s.storage.GetPresignedURL(ctx, file.StorageKey, s.cfg.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("receipt.PresignedURL: %w", err)
	}
	return url, nil
}
