// Package storage provides a typed key-value store used as the persistence
// layer for the demo. Values are JSON-encoded text; the file-backed
// implementation keeps one document per key under a data directory.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("storage: key not found")
	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("storage: corrupt value")
)

// Store is the raw key-value contract. Implementations must be safe for
// concurrent use within a single process; cross-process writers are not
// coordinated.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// GetJSON reads a key and decodes it into T. A missing key returns
// ErrNotFound; an undecodable value returns ErrCorrupt wrapping the cause.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var v T
	raw, err := s.Get(ctx, key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("%w: key %q: %v", ErrCorrupt, key, err)
	}
	return v, nil
}

// SetJSON encodes v and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode key %q: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
