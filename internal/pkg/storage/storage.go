package storage

import (
	"context"
	"io"
)

// FileStorage persists generated report artifacts and hands back the paths
// and URLs the console serves as downloads.
type FileStorage interface {
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
	GetURL(ctx context.Context, path string) (string, error)
	Exists(ctx context.Context, path string) (bool, error)
}
