package storage

import (
	"context"
	"io"
)

// FileStorage archives generated report artifacts.
type FileStorage interface {
	// Save writes a file and returns the stored path/key
	Save(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Open retrieves a stored file
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)
}
