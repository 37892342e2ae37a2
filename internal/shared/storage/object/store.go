package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary artifacts.
type ObjectStore interface {
	// SaveWithKey writes the reader contents at the given storage key.
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	// Open opens a stored object for reading.
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	// URL returns a caller-usable URL for the stored object.
	URL(ctx context.Context, storageKey string) (string, error)
}
