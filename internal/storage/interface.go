package storage

import (
	"context"
	"time"
)

// Client is the storage surface the dashboard service needs: one folder
// per generated dashboard holding the PNG figure, the HTML report, and any
// sidecar files.
type Client interface {
	// Close releases the client's resources
	Close() error

	// StoreFile stores a file inside the dashboard folder for the given timestamp
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) (string, error)

	// GetFile retrieves a file by its storage path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListDashboards lists stored dashboard folders, newest first, up to limit
	ListDashboards(ctx context.Context, limit int) ([]string, error)
}
