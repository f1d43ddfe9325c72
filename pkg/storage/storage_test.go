package storage_test

import (
	"context"
	"testing"

	"github.com/dolarasia/dolarasia/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func stores(t *testing.T) map[string]storage.Store {
	t.Helper()
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return map[string]storage.Store{
		"file":   fs,
		"memory": storage.NewMemoryStore(),
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, storage.SetJSON(ctx, s, "rec", record{Name: "usd", Count: 3}))
			got, err := storage.GetJSON[record](ctx, s, "rec")
			require.NoError(t, err)
			assert.Equal(t, record{Name: "usd", Count: 3}, got)
		})
	}
}

func TestGet_MissingKey(t *testing.T) {
	t.Parallel()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := storage.GetJSON[record](context.Background(), s, "absent")
			assert.ErrorIs(t, err, storage.ErrNotFound)
		})
	}
}

func TestGet_CorruptValue(t *testing.T) {
	t.Parallel()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "bad", []byte("{not json")))
			_, err := storage.GetJSON[record](ctx, s, "bad")
			assert.ErrorIs(t, err, storage.ErrCorrupt)
		})
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, storage.SetJSON(ctx, s, "rec", record{}))
			require.NoError(t, s.Remove(ctx, "rec"))
			_, err := s.Get(ctx, "rec")
			assert.ErrorIs(t, err, storage.ErrNotFound)

			// Removing an absent key stays silent.
			assert.NoError(t, s.Remove(ctx, "rec"))
		})
	}
}

func TestSet_Overwrite(t *testing.T) {
	t.Parallel()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, storage.SetJSON(ctx, s, "rec", record{Count: 1}))
			require.NoError(t, storage.SetJSON(ctx, s, "rec", record{Count: 2}))
			got, err := storage.GetJSON[record](ctx, s, "rec")
			require.NoError(t, err)
			assert.Equal(t, 2, got.Count)
		})
	}
}
