package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vagali/vagali/internal/client/api"
	"github.com/vagali/vagali/internal/client/credstore"
	"github.com/vagali/vagali/internal/logging"
)

// Manager is the single source of truth for the session. It keeps the
// in-memory state, the credential store, and the API client's token binding
// consistent: after any operation returns, either all three agree on an
// authenticated user or all three are empty.
type Manager struct {
	api    api.Client
	creds  *credstore.Credentials
	logger logging.Logger

	mu    sync.Mutex
	user  *User
	token string
	subs  []func(*User)
}

func NewManager(apiClient api.Client, creds *credstore.Credentials, logger logging.Logger) *Manager {
	return &Manager{api: apiClient, creds: creds, logger: logger}
}

// Subscribe registers a session-changed callback. It fires after login,
// logout, restore, and role/name mutations, with the current user (nil when
// logged out). Callbacks run synchronously on the mutating call.
func (m *Manager) Subscribe(fn func(*User)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Current returns a copy of the authenticated user, or nil when logged out.
func (m *Manager) Current() *User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token returns the active token, or "" when logged out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Restore primes the session from the credential store. A valid persisted
// pair activates the token and populates memory; anything else (empty store,
// half-written pair, corrupt record) leaves the session empty. Restore never
// fails the startup path: store errors are logged and treated as "no session".
func (m *Manager) Restore(ctx context.Context) {
	token, record, err := m.creds.Load(ctx)
	if err != nil {
		m.logger.Warn(ctx, "could not read persisted session", "error", err)
		return
	}
	if record == nil {
		return
	}

	m.api.SetToken(token)
	m.set(token, userFromRecord(record))
	m.logger.Info(ctx, "session restored", "user_id", record.ID)
}

// Login authenticates against the backend. On success it normalizes the
// payload, persists the pair, activates the token, and updates memory, in
// that order; nothing is touched on failure. All transport and server
// failures surface as ErrAuthentication; an incomplete success body is
// logged distinctly but reported the same way. If persisting fails the
// session ends logged out everywhere: the store is already empty at that
// point, so the token binding and memory are dropped to match.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrIncompleteResponse) {
			m.logger.Error(ctx, "auth endpoint returned incomplete response", "error", err)
		} else {
			m.logger.Warn(ctx, "login failed", "error", err)
		}
		return ErrAuthentication
	}

	user := &User{
		ID:       res.User.ID,
		FullName: res.User.FullName,
		Email:    res.User.Email,
		Role:     roleFromFlag(res.User.IsProfessional),
	}
	if user.FullName == "" {
		user.FullName = user.Email
	}
	if user.FullName == "" {
		user.FullName = "user"
	}

	if err := m.creds.Save(ctx, res.Token, user.toRecord()); err != nil {
		// Save cleared the store; clear the other two surfaces so they agree.
		m.logger.Warn(ctx, "could not persist session, logging out", "error", err)
		m.api.ClearToken()
		m.set("", nil)
		return fmt.Errorf("persisting session: %w", err)
	}
	m.api.SetToken(res.Token)
	m.set(res.Token, user)

	m.logger.Info(ctx, "login successful", "user_id", user.ID, "role", user.Role)
	return nil
}

// Logout clears the token binding, the credential store, and memory. It
// always succeeds; logging out without a session is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	m.api.ClearToken()
	if err := m.creds.Clear(ctx); err != nil {
		m.logger.Warn(ctx, "could not clear persisted session", "error", err)
	}
	m.set("", nil)
}

// SetRole updates the role locally and persists it. The backend round-trip
// is the caller's responsibility; this only reflects an already confirmed
// change. No-op without an active session.
func (m *Manager) SetRole(ctx context.Context, role Role) {
	m.mutate(ctx, func(u *User) { u.Role = role })
}

// SetDisplayName updates only the display name, persists it, and updates
// memory. No-op without an active session.
func (m *Manager) SetDisplayName(ctx context.Context, name string) {
	m.mutate(ctx, func(u *User) { u.FullName = name })
}

func (m *Manager) mutate(ctx context.Context, fn func(*User)) {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return
	}
	u := *m.user
	token := m.token
	m.mu.Unlock()

	fn(&u)

	if err := m.creds.Save(ctx, token, u.toRecord()); err != nil {
		m.logger.Warn(ctx, "could not persist session update", "error", err)
	}
	m.set(token, &u)
}

// set replaces the in-memory state and notifies subscribers.
func (m *Manager) set(token string, user *User) {
	m.mu.Lock()
	m.token = token
	m.user = user
	subs := make([]func(*User), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		var u *User
		if user != nil {
			c := *user
			u = &c
		}
		fn(u)
	}
}
