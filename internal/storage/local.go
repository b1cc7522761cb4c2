package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LocalClient stores dashboards on the local filesystem
type LocalClient struct {
	baseDir string
}

// NewLocalClient creates a local storage client rooted at baseDir
func NewLocalClient(baseDir string) (*LocalClient, error) {
	if baseDir == "" {
		baseDir = "reports"
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	return &LocalClient{baseDir: baseDir}, nil
}

// BaseDir returns the root directory of this client
func (l *LocalClient) BaseDir() string {
	return l.baseDir
}

// Close is a no-op for local storage
func (l *LocalClient) Close() error {
	return nil
}

// StoreFile stores a file in the dashboard folder for the given timestamp
// and returns its storage path relative to the base directory
func (l *LocalClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) (string, error) {
	relPath := filepath.Join(DashboardFolderPath(timestamp), filename)
	fullPath := filepath.Join(l.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", filepath.Dir(fullPath), err)
	}
	if err := os.WriteFile(fullPath, fileData, 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}

	return relPath, nil
}

// GetFile retrieves a file by its path relative to the base directory
func (l *LocalClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	fullPath := filepath.Join(l.baseDir, filePath)

	// Reject paths that escape the base directory
	absBase, _ := filepath.Abs(l.baseDir)
	absPath, _ := filepath.Abs(fullPath)
	if absPath != absBase && !isWithin(absBase, absPath) {
		return nil, fmt.Errorf("invalid file path %s", filePath)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fullPath, err)
	}
	return data, nil
}

// ListDashboards lists stored dashboard folders (those containing an
// index.html), newest first
func (l *LocalClient) ListDashboards(ctx context.Context, limit int) ([]string, error) {
	var folders []string

	err := filepath.Walk(l.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if !info.IsDir() && info.Name() == "index.html" {
			relPath, _ := filepath.Rel(l.baseDir, filepath.Dir(path))
			folders = append(folders, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk storage directory: %w", err)
	}

	// Folder names sort chronologically; reverse for newest first
	sort.Sort(sort.Reverse(sort.StringSlice(folders)))

	if limit > 0 && limit < len(folders) {
		folders = folders[:limit]
	}
	return folders, nil
}

func isWithin(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !startsWithDotDot(rel))
}

func startsWithDotDot(rel string) bool {
	return len(rel) >= 2 && rel[:2] == ".." && (len(rel) == 2 || rel[2] == filepath.Separator)
}
