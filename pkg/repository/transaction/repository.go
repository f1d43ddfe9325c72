// Package transaction implements the append-only exchange ledger over the
// key-value store.
package transaction

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/dolarasia/dolarasia/pkg/domain/exchange"
	"github.com/dolarasia/dolarasia/pkg/storage"
	"github.com/google/uuid"
)

// Key is the storage key holding the serialized transaction collection.
const Key = "transactions"

// Repository stores the whole ledger as one JSON document. Records are only
// ever appended; sorting and filtering happen at read time.
type Repository struct {
	store  storage.Store
	logger *slog.Logger
}

// New creates a transaction repository over the given store.
func New(store storage.Store, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{store: store, logger: logger}
}

func (r *Repository) all(ctx context.Context) ([]*exchange.Transaction, error) {
	txs, err := storage.GetJSON[[]*exchange.Transaction](ctx, r.store, Key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return txs, err
}

// Create appends a transaction and rewrites the collection.
func (r *Repository) Create(ctx context.Context, tx *exchange.Transaction) error {
	txs, err := r.all(ctx)
	if err != nil {
		return err
	}
	txs = append(txs, tx)
	if err := storage.SetJSON(ctx, r.store, Key, txs); err != nil {
		return err
	}
	r.logger.Debug("transaction recorded",
		"txID", tx.ID,
		"userID", tx.UserID,
		"direction", tx.Direction,
	)
	return nil
}

// ListByUser returns the user's transactions, newest first by CreatedAt.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*exchange.Transaction, error) {
	txs, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	var out []*exchange.Transaction
	for _, tx := range txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// ListAll returns every transaction, newest first by CreatedAt.
func (r *Repository) ListAll(ctx context.Context) ([]*exchange.Transaction, error) {
	txs, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(txs)
	return txs, nil
}

func sortNewestFirst(txs []*exchange.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
}
