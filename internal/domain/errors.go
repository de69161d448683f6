package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrPasswordTooShort    = errors.New("password must be at least 4 characters")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrInvalidRecord       = errors.New("expense record failed validation")
	ErrInvalidSource       = errors.New("invalid expense source")
	ErrParseFailed         = errors.New("parsing failed; try clearer input or rephrase")
)
