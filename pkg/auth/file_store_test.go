package auth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventify-app/eventify/pkg/auth"
)

func TestFileStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := auth.NewFileStore(path)

	_, ok, err := store.Get(ctx, auth.TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, auth.TokenKey, "tok"))
	require.NoError(t, store.Set(ctx, auth.UserKey, `{"id":"u1"}`))

	// A second instance sees the same file.
	other := auth.NewFileStore(path)
	v, ok, err := other.Get(ctx, auth.UserKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"u1"}`, v)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Delete(ctx, auth.TokenKey, auth.UserKey))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Delete(ctx, "missing"))
}

func TestFileStore_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))

	_, _, err := auth.NewFileStore(path).Get(context.Background(), auth.TokenKey)
	assert.ErrorIs(t, err, auth.ErrStoreFailed)
}

func TestFileStore_WithManager(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	authn := new(MockAuthenticator)
	authn.On("Login", ctx, "jane@example.com", "secret123").
		Return(auth.Credentials{Success: true, Token: "tok", User: jane}, nil)

	require.True(t, auth.NewManager(auth.NewFileStore(path), authn).Login(ctx, "jane@example.com", "secret123").Success)

	restored := auth.NewManager(auth.NewFileStore(path), authn)
	require.NoError(t, restored.Restore(ctx))
	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "Jane", restored.Session().User.FirstName)
}
