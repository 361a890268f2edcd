package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/eventify-app/eventify/pkg/logger"
)

// Manager holds the authentication state of one client and mirrors it into a
// Store. It starts in the loading state until Restore is called.
type Manager struct {
	store     Store
	authn     Authenticator
	namespace string
	logger    *slog.Logger
	now       func() time.Time

	mu      sync.RWMutex
	session *Session
	loading bool
}

// NewManager creates a Manager. It panics when store or authn is nil.
func NewManager(store Store, authn Authenticator, opts ...Option) *Manager {
	if store == nil {
		panic("auth: store is required")
	}
	if authn == nil {
		panic("auth: authenticator is required")
	}

	m := &Manager{
		store:   store,
		authn:   authn,
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
		loading: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) key(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return namespacedKey(m.namespace, name)
}

func namespacedKey(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + ":" + name
}

// Restore loads a previously persisted session. The session is set only when
// both the token and the user are stored and the user decodes. A corrupt user
// record is logged and treated as absent. The loading flag is cleared in
// every case.
func (m *Manager) Restore(ctx context.Context) error {
	defer m.setLoading(false)

	token, okToken, err := m.store.Get(ctx, m.key(TokenKey))
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	raw, okUser, err := m.store.Get(ctx, m.key(UserKey))
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	if !okToken || !okUser || token == "" || raw == "" {
		return nil
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		m.logger.WarnContext(ctx, "Stored user is not valid JSON, ignoring session",
			logger.Component("auth"),
			logger.Error(err),
		)
		return nil
	}

	m.mu.Lock()
	m.session = newSession(token, user)
	m.mu.Unlock()
	return nil
}

// Login authenticates against the remote service. On success the token and
// user are persisted and become the current session. Failures never return
// an error; they are reported through LoginResult.Message.
func (m *Manager) Login(ctx context.Context, email, password string) LoginResult {
	creds, err := m.authn.Login(ctx, email, password)
	if err != nil {
		m.logger.DebugContext(ctx, "Remote login failed", logger.Component("auth"), logger.Error(err))
		return LoginResult{Success: false, Message: loginFailureMessage(err)}
	}

	if !creds.Success {
		return LoginResult{Success: false, Message: creds.Message}
	}
	if creds.Token == "" || creds.User == nil {
		return LoginResult{Success: false, Message: DefaultLoginFailure}
	}

	userJSON, err := json.Marshal(creds.User)
	if err != nil {
		return LoginResult{Success: false, Message: DefaultLoginFailure}
	}
	if err := m.store.Set(ctx, m.key(TokenKey), creds.Token); err != nil {
		m.logger.ErrorContext(ctx, "Failed to persist token", logger.Component("auth"), logger.Error(err))
		return LoginResult{Success: false, Message: DefaultLoginFailure}
	}
	if err := m.store.Set(ctx, m.key(UserKey), string(userJSON)); err != nil {
		m.logger.ErrorContext(ctx, "Failed to persist user", logger.Component("auth"), logger.Error(err))
		_ = m.store.Delete(ctx, m.key(TokenKey))
		return LoginResult{Success: false, Message: DefaultLoginFailure}
	}

	m.mu.Lock()
	m.session = newSession(creds.Token, *creds.User)
	m.loading = false
	m.mu.Unlock()

	return LoginResult{Success: true, Message: creds.Message}
}

func loginFailureMessage(err error) string {
	var pub PublicError
	if errors.As(err, &pub) && pub.PublicMessage() != "" {
		return pub.PublicMessage()
	}
	return DefaultLoginFailure
}

// Logout notifies the remote service and clears the session. A remote
// failure is logged only; local state and stored keys are always removed.
// The returned error reports store failures.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.RLock()
	var token string
	if m.session != nil {
		token = m.session.Token
	}
	m.mu.RUnlock()

	if err := m.authn.Logout(ctx, token); err != nil {
		m.logger.ErrorContext(ctx, "Logout error", logger.Component("auth"), logger.Error(err))
	}

	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()

	if err := m.store.Delete(ctx, m.key(TokenKey), m.key(UserKey)); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

// Rotate moves the stored session to a new namespace and deletes the keys
// under the old one. Call it after a successful login so an identifier
// issued before authentication never refers to a signed-in session.
func (m *Manager) Rotate(ctx context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if namespace == m.namespace {
		return nil
	}

	if m.session != nil {
		userJSON, err := json.Marshal(m.session.User)
		if err != nil {
			return errors.Join(ErrStoreFailed, err)
		}
		if err := m.store.Set(ctx, namespacedKey(namespace, TokenKey), m.session.Token); err != nil {
			return errors.Join(ErrStoreFailed, err)
		}
		if err := m.store.Set(ctx, namespacedKey(namespace, UserKey), string(userJSON)); err != nil {
			_ = m.store.Delete(ctx, namespacedKey(namespace, TokenKey))
			return errors.Join(ErrStoreFailed, err)
		}
	}

	old := m.namespace
	if err := m.store.Delete(ctx, namespacedKey(old, TokenKey), namespacedKey(old, UserKey)); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	m.namespace = namespace
	return nil
}

// Namespace returns the prefix of the store keys.
func (m *Manager) Namespace() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.namespace
}

// IsAuthenticated reports whether a session is set and its token, when it is
// a JWT with an exp claim, has not expired.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil || m.session.Token == "" {
		return false
	}
	return !TokenExpired(m.session.Token, m.now())
}

// Session returns a copy of the current session, or nil.
func (m *Manager) Session() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return nil
	}
	s := *m.session
	return &s
}

// Token returns the current token or ErrNotAuthenticated.
func (m *Manager) Token() (string, error) {
	if !m.IsAuthenticated() {
		return "", ErrNotAuthenticated
	}
	return m.Session().Token, nil
}

// Loading reports whether Restore has not completed yet.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
