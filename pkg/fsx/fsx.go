// Package fsx abstracts blob storage behind a small filesystem-like port.
package fsx

import (
	"context"
	"io"
)

// FileSystem is the storage port used for resume files.
type FileSystem interface {
	// WriteFile stores data at path, overwriting any existing object.
	WriteFile(ctx context.Context, path string, data []byte) error

	// ReadFile loads the full object at path into memory.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// ReadFileStream opens the object at path for streaming reads.
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)

	// DeleteFile removes the object at path.
	DeleteFile(ctx context.Context, path string) error

	// Join builds a storage path from segments.
	Join(parts ...string) string
}
