package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eventify-app/eventify/pkg/auth"
)

var jane = &auth.User{ID: "u1", Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func TestManager_Login(t *testing.T) {
	t.Parallel()

	t.Run("success persists session", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		store := auth.NewMemoryStore()
		authn := new(MockAuthenticator)
		authn.On("Login", mock.Anything, "jane@example.com", "secret123").
			Return(auth.Credentials{Success: true, Message: "Welcome back", Token: "tok", User: jane}, nil)

		m := auth.NewManager(store, authn)
		assert.True(t, m.Loading())

		res := m.Login(ctx, "jane@example.com", "secret123")
		assert.Equal(t, auth.LoginResult{Success: true, Message: "Welcome back"}, res)
		assert.True(t, m.IsAuthenticated())
		assert.False(t, m.Loading())
		assert.Equal(t, &auth.Session{Token: "tok", User: *jane}, m.Session())

		token, ok, err := store.Get(ctx, auth.TokenKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "tok", token)

		user, ok, err := store.Get(ctx, auth.UserKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `{"id":"u1","email":"jane@example.com","firstName":"Jane","lastName":"Doe"}`, user)

		authn.AssertExpectations(t)
	})

	t.Run("remote rejection", func(t *testing.T) {
		t.Parallel()
		authn := new(MockAuthenticator)
		authn.On("Login", mock.Anything, "jane@example.com", "wrong").
			Return(auth.Credentials{Success: false, Message: "Invalid credentials"}, nil)

		m := auth.NewManager(auth.NewMemoryStore(), authn)
		res := m.Login(context.Background(), "jane@example.com", "wrong")
		assert.Equal(t, auth.LoginResult{Success: false, Message: "Invalid credentials"}, res)
		assert.False(t, m.IsAuthenticated())
		assert.Nil(t, m.Session())
	})

	t.Run("transport error with public message", func(t *testing.T) {
		t.Parallel()
		authn := new(MockAuthenticator)
		authn.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(auth.Credentials{}, publicErr{msg: "Account locked"})

		m := auth.NewManager(auth.NewMemoryStore(), authn)
		res := m.Login(context.Background(), "a@b.co", "x")
		assert.Equal(t, "Account locked", res.Message)
		assert.False(t, res.Success)
	})

	t.Run("transport error without message", func(t *testing.T) {
		t.Parallel()
		authn := new(MockAuthenticator)
		authn.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(auth.Credentials{}, errors.New("dial tcp: connection refused"))

		m := auth.NewManager(auth.NewMemoryStore(), authn)
		res := m.Login(context.Background(), "a@b.co", "x")
		assert.Equal(t, auth.LoginResult{Success: false, Message: auth.DefaultLoginFailure}, res)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		authn := new(MockAuthenticator)
		authn.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(auth.Credentials{Success: true, Token: "tok", User: jane}, nil)

		m := auth.NewManager(failingStore{err: errors.New("disk full")}, authn)
		res := m.Login(context.Background(), "a@b.co", "x")
		assert.False(t, res.Success)
		assert.False(t, m.IsAuthenticated())
	})
}

func TestManager_Restore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("both keys present", func(t *testing.T) {
		t.Parallel()
		store := auth.NewMemoryStore()
		require.NoError(t, store.Set(ctx, auth.TokenKey, "tok"))
		require.NoError(t, store.Set(ctx, auth.UserKey, `{"id":"u1","email":"jane@example.com"}`))

		m := auth.NewManager(store, new(MockAuthenticator))
		require.NoError(t, m.Restore(ctx))
		assert.False(t, m.Loading())
		assert.True(t, m.IsAuthenticated())
		assert.Equal(t, "jane@example.com", m.Session().User.Email)
	})

	t.Run("token only", func(t *testing.T) {
		t.Parallel()
		store := auth.NewMemoryStore()
		require.NoError(t, store.Set(ctx, auth.TokenKey, "tok"))

		m := auth.NewManager(store, new(MockAuthenticator))
		require.NoError(t, m.Restore(ctx))
		assert.False(t, m.Loading())
		assert.False(t, m.IsAuthenticated())
	})

	t.Run("corrupt user", func(t *testing.T) {
		t.Parallel()
		store := auth.NewMemoryStore()
		require.NoError(t, store.Set(ctx, auth.TokenKey, "tok"))
		require.NoError(t, store.Set(ctx, auth.UserKey, "{not json"))

		m := auth.NewManager(store, new(MockAuthenticator))
		require.NoError(t, m.Restore(ctx))
		assert.False(t, m.IsAuthenticated())
	})

	t.Run("store error", func(t *testing.T) {
		t.Parallel()
		m := auth.NewManager(failingStore{err: errors.New("boom")}, new(MockAuthenticator))
		assert.ErrorIs(t, m.Restore(ctx), auth.ErrStoreFailed)
		assert.False(t, m.Loading())
	})

	t.Run("namespaces are isolated", func(t *testing.T) {
		t.Parallel()
		store := auth.NewMemoryStore()
		authn := new(MockAuthenticator)
		authn.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(auth.Credentials{Success: true, Token: "tok", User: jane}, nil)

		a := auth.NewManager(store, authn, auth.WithNamespace("a"))
		require.True(t, a.Login(ctx, "jane@example.com", "secret123").Success)

		_, ok, err := store.Get(ctx, "a:"+auth.TokenKey)
		require.NoError(t, err)
		assert.True(t, ok)

		b := auth.NewManager(store, authn, auth.WithNamespace("b"))
		require.NoError(t, b.Restore(ctx))
		assert.False(t, b.IsAuthenticated())

		a2 := auth.NewManager(store, authn, auth.WithNamespace("a"))
		require.NoError(t, a2.Restore(ctx))
		assert.True(t, a2.IsAuthenticated())
	})
}

func TestManager_Logout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for name, remoteErr := range map[string]error{
		"remote ok":     nil,
		"remote failed": errors.New("network down"),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			store := auth.NewMemoryStore()
			authn := new(MockAuthenticator)
			authn.On("Login", mock.Anything, mock.Anything, mock.Anything).
				Return(auth.Credentials{Success: true, Token: "tok", User: jane}, nil)
			authn.On("Logout", mock.Anything, "tok").Return(remoteErr)

			m := auth.NewManager(store, authn)
			require.True(t, m.Login(ctx, "jane@example.com", "secret123").Success)

			require.NoError(t, m.Logout(ctx))
			assert.False(t, m.IsAuthenticated())
			assert.Nil(t, m.Session())

			_, ok, _ := store.Get(ctx, auth.TokenKey)
			assert.False(t, ok)
			_, ok, _ = store.Get(ctx, auth.UserKey)
			assert.False(t, ok)

			authn.AssertExpectations(t)
		})
	}
}

func TestManager_Rotate(t *testing.T) {
	t.Parallel()

	t.Run("moves signed-in session", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		store := auth.NewMemoryStore()
		authn := new(MockAuthenticator)
		authn.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(auth.Credentials{Success: true, Token: "tok", User: jane}, nil)

		m := auth.NewManager(store, authn, auth.WithNamespace("planted"))
		require.True(t, m.Login(ctx, "jane@example.com", "secret123").Success)

		require.NoError(t, m.Rotate(ctx, "fresh"))
		assert.Equal(t, "fresh", m.Namespace())
		assert.True(t, m.IsAuthenticated())

		_, ok, err := store.Get(ctx, "planted:"+auth.TokenKey)
		require.NoError(t, err)
		assert.False(t, ok)
		_, ok, err = store.Get(ctx, "planted:"+auth.UserKey)
		require.NoError(t, err)
		assert.False(t, ok)

		restored := auth.NewManager(store, authn, auth.WithNamespace("fresh"))
		require.NoError(t, restored.Restore(ctx))
		assert.Equal(t, &auth.Session{Token: "tok", User: *jane}, restored.Session())

		stale := auth.NewManager(store, authn, auth.WithNamespace("planted"))
		require.NoError(t, stale.Restore(ctx))
		assert.Nil(t, stale.Session())
	})

	t.Run("anonymous session only changes namespace", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		store := auth.NewMemoryStore()

		m := auth.NewManager(store, new(MockAuthenticator), auth.WithNamespace("a"))
		require.NoError(t, m.Rotate(ctx, "b"))
		assert.Equal(t, "b", m.Namespace())
		assert.Nil(t, m.Session())

		_, ok, err := store.Get(ctx, "b:"+auth.TokenKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestManager_TokenExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	for name, tc := range map[string]struct {
		token string
		want  bool
	}{
		"opaque":  {token: "opaque-token", want: true},
		"valid":   {token: signedToken(t, now.Add(time.Hour)), want: true},
		"expired": {token: signedToken(t, now.Add(-time.Minute)), want: false},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			store := auth.NewMemoryStore()
			require.NoError(t, store.Set(ctx, auth.TokenKey, tc.token))
			require.NoError(t, store.Set(ctx, auth.UserKey, `{"id":"u1"}`))

			m := auth.NewManager(store, new(MockAuthenticator), auth.WithClock(clock))
			require.NoError(t, m.Restore(ctx))
			assert.Equal(t, tc.want, m.IsAuthenticated())

			exp, isJWT := auth.TokenExpiry(tc.token)
			if isJWT {
				require.NotNil(t, m.Session().ExpiresAt)
				assert.WithinDuration(t, exp, *m.Session().ExpiresAt, 0)
			} else {
				assert.Nil(t, m.Session().ExpiresAt)
			}

			tok, err := m.Token()
			if tc.want {
				require.NoError(t, err)
				assert.Equal(t, tc.token, tok)
			} else {
				assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
			}
		})
	}
}

func TestManager_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	authn := new(MockAuthenticator)
	authn.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(auth.Credentials{Success: true, Token: "tok", User: jane}, nil)
	authn.On("Logout", mock.Anything, mock.Anything).Return(nil)

	m := auth.NewManager(auth.NewMemoryStore(), authn)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				m.Login(ctx, "jane@example.com", "secret123")
			} else {
				_ = m.Logout(ctx)
			}
			_ = m.IsAuthenticated()
			_ = m.Session()
		}()
	}
	wg.Wait()
}

func TestNewManager_PanicsWithoutDeps(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { auth.NewManager(nil, new(MockAuthenticator)) })
	assert.Panics(t, func() { auth.NewManager(auth.NewMemoryStore(), nil) })
}
