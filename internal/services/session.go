package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/dmitrijs2005/homeowner/internal/logging"
	"github.com/dmitrijs2005/homeowner/internal/models"
)

// SessionState is the login state of a SessionManager.
type SessionState int

const (
	LoggedOut SessionState = iota
	LoggedIn
)

func (s SessionState) String() string {
	switch s {
	case LoggedIn:
		return "logged in"
	default:
		return "logged out"
	}
}

// SessionManager tracks who is logged in against an AccountStore.
// Session state lives only in memory and starts LoggedOut.
type SessionManager struct {
	mu      sync.Mutex
	store   *AccountStore
	log     logging.Logger
	current *models.Account
}

func NewSessionManager(store *AccountStore, log logging.Logger) *SessionManager {
	return &SessionManager{store: store, log: log}
}

// Store returns the underlying account store.
func (m *SessionManager) Store() *AccountStore { return m.store }

// Login scans the accounts in store order and logs in the first one whose
// username and password both match. On failure the session is unchanged and
// common.ErrInvalidCredentials is returned.
func (m *SessionManager) Login(ctx context.Context, username, password string) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.store.ListAccounts() {
		if a.VerifyCredentials(username, password) {
			m.current = &a
			m.log.Info(ctx, "login succeeded", "username", username, "admin", a.IsAdmin)
			return a, nil
		}
	}

	m.log.Warn(ctx, "login failed", "username", username)
	return models.Account{}, common.ErrInvalidCredentials
}

// Logout ends the session. Calling it while logged out does nothing.
func (m *SessionManager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}

// CurrentUser returns the logged-in account. An account that has been
// removed from the store behind the manager's back ends the session.
func (m *SessionManager) CurrentUser() (models.Account, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return models.Account{}, false
	}
	if _, ok := m.store.FindByID(m.current.ID); !ok {
		m.current = nil
		return models.Account{}, false
	}
	return *m.current, true
}

func (m *SessionManager) IsLoggedIn() bool {
	_, ok := m.CurrentUser()
	return ok
}

func (m *SessionManager) State() SessionState {
	if m.IsLoggedIn() {
		return LoggedIn
	}
	return LoggedOut
}

// RequireAdmin returns the current user if it is an admin.
func (m *SessionManager) RequireAdmin() (models.Account, error) {
	cur, ok := m.CurrentUser()
	if !ok {
		return models.Account{}, common.ErrNotLoggedIn
	}
	if !cur.IsAdmin {
		return models.Account{}, common.ErrForbidden
	}
	return cur, nil
}

// LastCreatedUser returns the newest account created in this process.
func (m *SessionManager) LastCreatedUser() (models.Account, bool) {
	return m.store.LastCreated()
}

func (m *SessionManager) CreateAccount(ctx context.Context, username, password string) (models.Account, error) {
	return m.store.CreateAccount(ctx, username, password)
}

func (m *SessionManager) ListAccounts() []models.Account {
	return m.store.ListAccounts()
}

// DeleteAccount removes acc from the store and logs out if acc was the
// current user.
func (m *SessionManager) DeleteAccount(ctx context.Context, acc models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.DeleteAccount(ctx, acc); err != nil {
		return err
	}
	if m.current != nil && m.current.ID == acc.ID {
		m.current = nil
		m.log.Info(ctx, "current user deleted, session ended", "username", acc.Username)
	}
	return nil
}

// ClearAllAccounts logs out and removes every account.
func (m *SessionManager) ClearAllAccounts(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	return m.store.Clear(ctx)
}
