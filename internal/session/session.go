// Package session owns the current-user state: restoring it from a stored
// token at startup, login/signup/logout, and the authenticated flag that
// gates the protected views.
package session

import (
	"context"
	"fmt"
	"sync"

	"sheetdash/internal/api"
	"sheetdash/internal/logging"
	"sheetdash/internal/models"
	"sheetdash/internal/store"
)

// AuthError marks a failed login, signup, or token verification. The
// wrapped error carries the transport/server detail.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Manager holds the session. Exactly one exists per running app.
type Manager struct {
	api   api.Client
	store store.Store
	log   logging.Logger

	mu   sync.Mutex
	user *models.User
}

func NewManager(client api.Client, st store.Store, log logging.Logger) *Manager {
	return &Manager{api: client, store: st, log: log}
}

// Initialize restores the session from a persisted token. On any
// verification failure the stored token is cleared and the session is left
// unauthenticated; the failure is logged, never surfaced. Callers must
// wait for Initialize before rendering gated views.
func (m *Manager) Initialize(ctx context.Context) error {
	token, err := m.store.GetToken(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	if tokenExpired(token) {
		m.log.Info(ctx, "stored token expired, clearing")
		return m.store.RemoveToken(ctx)
	}

	user, err := m.api.Verify(ctx)
	if err != nil {
		m.log.Info(ctx, "stored token rejected, clearing", "error", err)
		return m.store.RemoveToken(ctx)
	}

	m.setUser(user)
	return nil
}

// Login authenticates with the given credentials. The token is persisted
// and the user set together; if persisting fails the session stays
// unauthenticated, so no partially-authenticated state is observable.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	token, user, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, &AuthError{Err: err}
	}

	if err := m.store.SetToken(ctx, token); err != nil {
		return nil, err
	}

	m.setUser(user)
	return user, nil
}

// Signup creates an account and starts a session, with the same atomicity
// contract as Login.
func (m *Manager) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	token, user, err := m.api.Signup(ctx, name, email, password)
	if err != nil {
		return nil, &AuthError{Err: err}
	}

	if err := m.store.SetToken(ctx, token); err != nil {
		return nil, err
	}

	m.setUser(user)
	return user, nil
}

// Logout clears the persisted token and the in-memory user. Idempotent.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.RemoveToken(ctx); err != nil {
		return err
	}
	m.setUser(nil)
	return nil
}

func (m *Manager) setUser(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
}

// CurrentUser returns the authenticated user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

func (m *Manager) IsAuthenticated() bool {
	return m.CurrentUser() != nil
}

// Token exposes the persisted credential for collaborators that attach it
// out-of-band (the realtime channel connects with the token as a query
// parameter, not a header).
func (m *Manager) Token(ctx context.Context) (string, error) {
	return m.store.GetToken(ctx)
}
