package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"expenso/internal/domain"
	"expenso/internal/port"
)

type receiptFileRepo struct {
	db *sqlx.DB
}

// NewReceiptFileRepo creates a new PostgreSQL-backed ReceiptFileRepository.
func NewReceiptFileRepo(db *sqlx.DB) port.ReceiptFileRepository {
	return &receiptFileRepo{db: db}
}

func (r *receiptFileRepo) Create(ctx context.Context, file *domain.ReceiptFile) error {
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	file.CreatedAt = time.Now().UTC()

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO receipt_files (id, user_id, file_name, content_type, size_bytes, storage_key, created_at)
		VALUES (:id, :user_id, :file_name, :content_type, :size_bytes, :storage_key, :created_at)`,
		file)
	if err != nil {
		return fmt.Errorf("receiptFileRepo.Create: %w", err)
	}
	return nil
}

func (r *receiptFileRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.ReceiptFile, error) {
	var file domain.ReceiptFile
	err := r.db.GetContext(ctx, &file,
		"SELECT * FROM receipt_files WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("receiptFileRepo.GetByID: %w", err)
	}
	return &file, nil
}

func (r *receiptFileRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ReceiptFile, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM receipt_files WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("receiptFileRepo.ListByUser count: %w", err)
	}

	files := []domain.ReceiptFile{}
	err = r.db.SelectContext(ctx, &files, `
		SELECT * FROM receipt_files
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("receiptFileRepo.ListByUser: %w", err)
	}
	return files, total, nil
}

func (r *receiptFileRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM receipt_files WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("receiptFileRepo.Delete: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("receiptFileRepo.Delete: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
