package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/dolarasia/dolarasia/pkg/dto"
	"github.com/dolarasia/dolarasia/pkg/session"
	"github.com/dolarasia/dolarasia/pkg/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser(isAdmin bool) *dto.UserRead {
	return &dto.UserRead{
		ID:        uuid.New(),
		Email:     "budi@example.com",
		FullName:  "Budi Santoso",
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().UTC(),
	}
}

func TestNewHolder_EmptyStore(t *testing.T) {
	t.Parallel()
	h, err := session.NewHolder(context.Background(), storage.NewMemoryStore(), nil)
	require.NoError(t, err)
	assert.Nil(t, h.Current())
	assert.False(t, h.IsAuthenticated())
	assert.False(t, h.IsAdmin())
}

func TestSet_PersistsAcrossRestart(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()

	h, err := session.NewHolder(ctx, store, nil)
	require.NoError(t, err)
	u := sampleUser(false)
	require.NoError(t, h.Set(ctx, u))

	// A fresh holder over the same store resumes the session.
	h2, err := session.NewHolder(ctx, store, nil)
	require.NoError(t, err)
	require.NotNil(t, h2.Current())
	assert.Equal(t, u.ID, h2.Current().ID)
	assert.True(t, h2.IsAuthenticated())
}

func TestClear_RemovesMirror(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()

	h, err := session.NewHolder(ctx, store, nil)
	require.NoError(t, err)
	require.NoError(t, h.Set(ctx, sampleUser(false)))
	require.NoError(t, h.Clear(ctx))

	assert.False(t, h.IsAuthenticated())
	_, err = store.Get(ctx, session.Key)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNewHolder_CorruptEntryIsPurged(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, session.Key, []byte("{{{")))

	h, err := session.NewHolder(ctx, store, nil)
	require.NoError(t, err)
	assert.Nil(t, h.Current())

	// The corrupt entry is gone, not left to fail the next read.
	_, err = store.Get(ctx, session.Key)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIsAdmin(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()

	h, err := session.NewHolder(ctx, store, nil)
	require.NoError(t, err)
	require.NoError(t, h.Set(ctx, sampleUser(true)))
	assert.True(t, h.IsAdmin())

	require.NoError(t, h.Set(ctx, sampleUser(false)))
	assert.False(t, h.IsAdmin())
}
