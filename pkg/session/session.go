// Package session holds the single authenticated identity for a process
// lifetime, mirrored into the key-value store so it survives restarts.
//
// The holder is constructed explicitly and passed to whoever needs it; there
// is no package-level singleton.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dolarasia/dolarasia/pkg/dto"
	"github.com/dolarasia/dolarasia/pkg/storage"
)

// Key is the storage key mirroring the live session.
const Key = "session-user"

// Holder owns at most one authenticated user, credential already stripped.
type Holder struct {
	store  storage.Store
	logger *slog.Logger

	mu      sync.RWMutex
	current *dto.UserRead
}

// NewHolder loads any persisted session from the store. A corrupt stored
// value is treated as no session and the entry is purged.
func NewHolder(ctx context.Context, store storage.Store, logger *slog.Logger) (*Holder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Holder{store: store, logger: logger}

	u, err := storage.GetJSON[*dto.UserRead](ctx, store, Key)
	switch {
	case err == nil:
		h.current = u
	case errors.Is(err, storage.ErrNotFound):
		// no session persisted
	case errors.Is(err, storage.ErrCorrupt):
		logger.Warn("discarding corrupt session entry", "key", Key)
		if err := store.Remove(ctx, Key); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return h, nil
}

// Current returns the live user, or nil when nobody is signed in.
func (h *Holder) Current() *dto.UserRead {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// IsAuthenticated reports whether a user is signed in.
func (h *Holder) IsAuthenticated() bool {
	return h.Current() != nil
}

// IsAdmin reports whether the signed-in user has the admin role.
func (h *Holder) IsAdmin() bool {
	u := h.Current()
	return u != nil && u.IsAdmin
}

// Set makes u the live user and mirrors it into the store.
func (h *Holder) Set(ctx context.Context, u *dto.UserRead) error {
	if err := storage.SetJSON(ctx, h.store, Key, u); err != nil {
		return err
	}
	h.mu.Lock()
	h.current = u
	h.mu.Unlock()
	h.logger.Debug("session started", "userID", u.ID, "email", u.Email)
	return nil
}

// Clear ends the session and removes the persisted mirror.
func (h *Holder) Clear(ctx context.Context) error {
	if err := h.store.Remove(ctx, Key); err != nil {
		return err
	}
	h.mu.Lock()
	h.current = nil
	h.mu.Unlock()
	h.logger.Debug("session cleared")
	return nil
}
