package signup

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Ping(ctx))

	exists, err := store.UserExists(ctx, "a@b.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.SaveUser(ctx, User{Name: "Alice", Email: "a@b.com", Password: "secret1"}))

	exists, err = store.UserExists(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, exists)

	err = store.SaveUser(ctx, User{Name: "Mallory", Email: "a@b.com", Password: "secret2"})
	assert.Equal(t, ErrDuplicateAccount, err)
}
