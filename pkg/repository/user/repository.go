// Package user implements the user repository over the key-value store.
package user

import (
	"context"
	"errors"
	"log/slog"

	domainuser "github.com/dolarasia/dolarasia/pkg/domain/user"
	"github.com/dolarasia/dolarasia/pkg/storage"
)

// Key is the storage key holding the serialized user collection.
const Key = "users"

// Repository stores the whole user collection as one JSON document. Every
// mutation reads all, changes in memory, and writes all back.
type Repository struct {
	store  storage.Store
	logger *slog.Logger
}

// New creates a user repository over the given store.
func New(store storage.Store, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{store: store, logger: logger}
}

// All returns every stored user in insertion order. An absent key is an
// empty collection.
func (r *Repository) All(ctx context.Context) ([]*domainuser.User, error) {
	users, err := storage.GetJSON[[]*domainuser.User](ctx, r.store, Key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return users, err
}

// GetByEmail returns the user with an exact email match.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domainuser.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainuser.ErrUserNotFound
}

// Create appends a user, enforcing email uniqueness, and rewrites the
// collection.
func (r *Repository) Create(ctx context.Context, u *domainuser.User) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.Email == u.Email {
			return domainuser.ErrEmailTaken
		}
	}
	users = append(users, u)
	if err := storage.SetJSON(ctx, r.store, Key, users); err != nil {
		return err
	}
	r.logger.Debug("user created", "userID", u.ID, "email", u.Email)
	return nil
}
