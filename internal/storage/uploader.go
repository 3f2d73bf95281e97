package storage

import (
	"context"
	"io"
)

//go:generate mockgen -source=uploader.go -destination=../mocks/storage_mocks.go -package=mocks

// UploadResult describes a stored object
type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader stores and removes public files such as sponsor logos
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	GetPublicURL(key string) string
}
