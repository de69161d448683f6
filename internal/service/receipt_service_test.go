package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"expenso/internal/config"
	"expenso/internal/domain"
	"expenso/internal/port"
	"expenso/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Bucket:        "expenso-receipts",
		MaxFileSizeMB: 1,
		PresignExpiry: 3600,
	}
}

func newReceiptService(repo *mocks.MockReceiptFileRepo, storage *mocks.MockObjectStorage) ReceiptService {
	return NewReceiptService(repo, storage, testS3Config(), zerolog.Nop())
}

func TestReceiptService_Upload(t *testing.T) {
	repo := new(mocks.MockReceiptFileRepo)
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return strings.HasPrefix(in.Key, "receipts/") &&
			strings.HasSuffix(in.Key, ".jpg")
	})).Return(&port.UploadOutput{Location: "s3://x"}, nil).Once()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ReceiptFile")).Return(nil).Once()
	svc := newReceiptService(repo, storage)

	file, err := svc.Upload(context.Background(), uuid.New(), UploadReceiptInput{
		FileName:    "receipt.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   1024,
		Body:        strings.NewReader("fake image bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, "receipt.jpg", file.FileName)
	assert.Equal(t, "image/jpeg", file.ContentType)
	storage.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestReceiptService_Upload_RejectsUnsupportedType(t *testing.T) {
	svc := newReceiptService(new(mocks.MockReceiptFileRepo), new(mocks.MockObjectStorage))

	_, err := svc.Upload(context.Background(), uuid.New(), UploadReceiptInput{
		FileName:    "notes.txt",
		ContentType: "text/plain",
		SizeBytes:   10,
		Body:        strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestReceiptService_Upload_RejectsOversizedFile(t *testing.T) {
	svc := newReceiptService(new(mocks.MockReceiptFileRepo), new(mocks.MockObjectStorage))

	_, err := svc.Upload(context.Background(), uuid.New(), UploadReceiptInput{
		FileName:    "huge.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2 * 1024 * 1024, // over the 1 MB test limit
		Body:        strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestReceiptService_Upload_StorageFailure(t *testing.T) {
	repo := new(mocks.MockReceiptFileRepo)
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()
	svc := newReceiptService(repo, storage)

	_, err := svc.Upload(context.Background(), uuid.New(), UploadReceiptInput{
		FileName:    "receipt.png",
		ContentType: "image/png",
		SizeBytes:   100,
		Body:        strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	repo.AssertNotCalled(t, "Create")
}

func TestReceiptService_PresignedURL(t *testing.T) {
	userID := uuid.New()
	file := &domain.ReceiptFile{ID: uuid.New(), UserID: userID, StorageKey: "receipts/a/b.jpg"}

	repo := new(mocks.MockReceiptFileRepo)
	repo.On("GetByID", mock.Anything, userID, file.ID).Return(file, nil).Once()
	storage := new(mocks.MockObjectStorage)
	storage.On("GetPresignedURL", mock.Anything, file.StorageKey, int64(3600)).
		Return("https://signed.example/b.jpg", nil).Once()
	svc := newReceiptService(repo, storage)

	url, err := svc.PresignedURL(context.Background(), userID, file.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/b.jpg", url)
}

func TestReceiptService_Download(t *testing.T) {
	userID := uuid.New()
	file := &domain.ReceiptFile{
		ID:          uuid.New(),
		UserID:      userID,
		FileName:    "receipt.png",
		ContentType: "image/png",
		StorageKey:  "receipts/a/c.png",
	}

	repo := new(mocks.MockReceiptFileRepo)
	repo.On("GetByID", mock.Anything, userID, file.ID).Return(file, nil).Once()
	storage := new(mocks.MockObjectStorage)
	storage.On("Download", mock.Anything, file.StorageKey).
		Return([]byte("png bytes"), nil).Once()
	svc := newReceiptService(repo, storage)

	got, data, err := svc.Download(context.Background(), userID, file.ID)
	require.NoError(t, err)
	assert.Equal(t, file, got)
	assert.Equal(t, []byte("png bytes"), data)
}

func TestReceiptService_Delete(t *testing.T) {
	userID := uuid.New()
	file := &domain.ReceiptFile{ID: uuid.New(), UserID: userID, StorageKey: "receipts/a/d.pdf"}

	repo := new(mocks.MockReceiptFileRepo)
	repo.On("GetByID", mock.Anything, userID, file.ID).Return(file, nil).Once()
	repo.On("Delete", mock.Anything, userID, file.ID).Return(nil).Once()
	storage := new(mocks.MockObjectStorage)
	storage.On("Delete", mock.Anything, file.StorageKey).Return(nil).Once()
	svc := newReceiptService(repo, storage)

	require.NoError(t, svc.Delete(context.Background(), userID, file.ID))
	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestReceiptService_Delete_StorageFailureKeepsRow(t *testing.T) {
	userID := uuid.New()
	file := &domain.ReceiptFile{ID: uuid.New(), UserID: userID, StorageKey: "receipts/a/e.jpg"}

	repo := new(mocks.MockReceiptFileRepo)
	repo.On("GetByID", mock.Anything, userID, file.ID).Return(file, nil).Once()
	storage := new(mocks.MockObjectStorage)
	storage.On("Delete", mock.Anything, file.StorageKey).Return(assert.AnError).Once()
	svc := newReceiptService(repo, storage)

	err := svc.Delete(context.Background(), userID, file.ID)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestReceiptService_Delete_NotFound(t *testing.T) {
	repo := new(mocks.MockReceiptFileRepo)
	repo.On("GetByID", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrNotFound).Once()
	svc := newReceiptService(repo, new(mocks.MockObjectStorage))

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
