package port

import (
	"context"
	"errors"
	"time"
)

// ErrLayoutNotFound is returned by a LayoutStore when nothing is stored under a key.
var ErrLayoutNotFound = errors.New("layout not found")

// LayoutInfo describes one stored buffer without loading it.
type LayoutInfo struct {
	Key       string
	Size      int
	UpdatedAt time.Time
}

// LayoutStore persists serialized canvas layouts. The buffer is opaque to
// the store; keys are chosen by the caller.
type LayoutStore interface {
	Save(ctx context.Context, key string, data []byte) error
	// Load returns ErrLayoutNotFound when key holds nothing.
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	// List returns the entries whose key starts with prefix, sorted by key.
	List(ctx context.Context, prefix string) ([]LayoutInfo, error)
}
