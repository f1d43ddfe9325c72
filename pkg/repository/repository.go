// Package repository defines the persistence contracts for users and
// transactions. Implementations are whole-collection rewrites over the
// key-value store; there are no partial updates.
package repository

import (
	"context"

	"github.com/dolarasia/dolarasia/pkg/domain/exchange"
	"github.com/dolarasia/dolarasia/pkg/domain/user"
	"github.com/google/uuid"
)

// User is the persistence contract for user records.
type User interface {
	// All returns every stored user in insertion order.
	All(ctx context.Context) ([]*user.User, error)
	// GetByEmail returns the user with an exact email match, or
	// user.ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	// Create appends a user and rewrites the collection. Fails with
	// user.ErrEmailTaken when the email is already present.
	Create(ctx context.Context, u *user.User) error
}

// Transaction is the persistence contract for the append-only exchange ledger.
type Transaction interface {
	// Create appends a transaction and rewrites the collection.
	Create(ctx context.Context, tx *exchange.Transaction) error
	// ListByUser returns the user's transactions, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*exchange.Transaction, error)
	// ListAll returns every transaction, newest first.
	ListAll(ctx context.Context) ([]*exchange.Transaction, error)
}
