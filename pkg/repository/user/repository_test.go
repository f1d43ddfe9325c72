package user_test

import (
	"context"
	"testing"

	domainuser "github.com/dolarasia/dolarasia/pkg/domain/user"
	userrepo "github.com/dolarasia/dolarasia/pkg/repository/user"
	"github.com/dolarasia/dolarasia/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*userrepo.Repository, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	return userrepo.New(store, nil), store
}

func mustUser(t *testing.T, email string) *domainuser.User {
	t.Helper()
	u, err := domainuser.New(email, "secret", "Test User", "+628111", "Jakarta", "ID01")
	require.NoError(t, err)
	return u
}

func TestCreate_And_GetByEmail(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	u := mustUser(t, "budi@example.com")
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "secret", got.Password)
}

func TestGetByEmail_CaseSensitive(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, mustUser(t, "Budi@example.com")))

	_, err := repo.GetByEmail(ctx, "budi@example.com")
	assert.ErrorIs(t, err, domainuser.ErrUserNotFound)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, mustUser(t, "budi@example.com")))

	err := repo.Create(ctx, mustUser(t, "budi@example.com"))
	assert.ErrorIs(t, err, domainuser.ErrEmailTaken)

	// The collection is untouched by the failed insert.
	users, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAll_EmptyStore(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	users, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestAll_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, e := range emails {
		require.NoError(t, repo.Create(ctx, mustUser(t, e)))
	}

	users, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i, e := range emails {
		assert.Equal(t, e, users[i].Email)
	}
}
