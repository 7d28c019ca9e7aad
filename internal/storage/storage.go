package storage

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the storage medium cannot be reached.
// Callers match it with errors.Is.
var ErrUnavailable = errors.New("storage unavailable")

// Medium is one key-value storage device. Each key holds a single serialized
// document (a JSON array for collections, a JSON object for singletons).
// GetItem returns (nil, nil) for an absent key.
type Medium interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
}
