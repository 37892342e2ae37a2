package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"resume-builder/internal/shared/storage/object"
)

// Store implements ObjectStore using the local filesystem. URLs are paths
// under the router's static artifact mount.
type Store struct {
	baseDir string
	baseURL string
}

// New creates a new local object store rooted at baseDir.
func New(baseDir, baseURL string) object.ObjectStore {
	if baseURL == "" {
		baseURL = "/artifacts"
	}
	return &Store{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}
}

// SaveWithKey writes the reader to disk at a specific storage key.
func (s *Store) SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	clean, err := s.cleanKey(storageKey)
	if err != nil {
		return 0, err
	}

	fullPath := filepath.Join(s.baseDir, clean)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return 0, fmt.Errorf("write body: %w", err)
	}
	_ = contentType
	return written, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean, err := s.cleanKey(storageKey)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, clean))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// URL returns the static-mount path the router serves the artifact under.
func (s *Store) URL(ctx context.Context, storageKey string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean, err := s.cleanKey(storageKey)
	if err != nil {
		return "", err
	}
	return s.baseURL + "/" + path.Clean(filepath.ToSlash(clean)), nil
}

func (s *Store) cleanKey(storageKey string) (string, error) {
	clean := filepath.Clean(storageKey)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key")
	}
	return clean, nil
}

var _ object.ObjectStore = (*Store)(nil)
