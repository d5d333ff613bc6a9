package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/dmitrijs2005/homeowner/internal/logging"
	"github.com/dmitrijs2005/homeowner/internal/models"
	"github.com/dmitrijs2005/homeowner/internal/repositories/accounts"
	"github.com/google/uuid"
)

// AccountStore is the in-memory account set backed by a Repository.
//
// Every mutation builds the next set, persists it and only then swaps it in,
// so after a failed write the in-memory state still matches what is on disk.
type AccountStore struct {
	mu          sync.Mutex
	repo        accounts.Repository
	log         logging.Logger
	accounts    []models.Account
	lastCreated *models.Account
}

// OpenAccountStore restores the account set from repo. When repo holds no
// data yet, an empty set is persisted so the storage location exists.
//
// A decode failure yields a *common.CorruptStateError and no store; callers
// decide whether to quarantine the data (see RecoverAccountStore).
func OpenAccountStore(ctx context.Context, repo accounts.Repository, log logging.Logger) (*AccountStore, error) {
	s := &AccountStore{
		repo: repo,
		log:  log.With("path", repo.Path()),
	}
	if err := s.restore(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// RecoverAccountStore opens the store like OpenAccountStore, but when the
// persisted data is corrupt it moves it aside and starts with an empty set.
func RecoverAccountStore(ctx context.Context, repo accounts.Repository, log logging.Logger) (*AccountStore, error) {
	s, err := OpenAccountStore(ctx, repo, log)
	if !errors.Is(err, common.ErrCorruptState) {
		return s, err
	}

	log.Warn(ctx, "account data is corrupt, moving it aside", "path", repo.Path(), "error", err)
	moved, qerr := repo.Quarantine(ctx)
	if qerr != nil {
		return nil, &common.StorageError{Op: "quarantine", Path: repo.Path(), Err: qerr}
	}
	log.Info(ctx, "corrupt account data quarantined", "moved_to", moved)

	return OpenAccountStore(ctx, repo, log)
}

func (s *AccountStore) restore(ctx context.Context) error {
	loaded, err := s.repo.Load(ctx)
	if errors.Is(err, common.ErrNoData) {
		s.log.Info(ctx, "no account data, creating empty store")
		return s.save(ctx, nil)
	}
	if err != nil {
		s.log.Error(ctx, "failed to restore accounts", "error", err)
		return err
	}

	if err := validate(loaded); err != nil {
		s.log.Error(ctx, "restored accounts are inconsistent", "error", err)
		return &common.CorruptStateError{Path: s.repo.Path(), Err: err}
	}

	s.accounts = loaded
	s.log.Debug(ctx, "accounts restored", "count", len(loaded))
	return nil
}

func validate(list []models.Account) error {
	names := make(map[string]struct{}, len(list))
	ids := make(map[uuid.UUID]struct{}, len(list))
	for _, a := range list {
		if _, ok := names[a.Username]; ok {
			return fmt.Errorf("duplicate username %q", a.Username)
		}
		if _, ok := ids[a.ID]; ok {
			return fmt.Errorf("duplicate account id %s", a.ID)
		}
		names[a.Username] = struct{}{}
		ids[a.ID] = struct{}{}
	}
	return nil
}

// save writes next to the repository. It does not touch s.accounts.
func (s *AccountStore) save(ctx context.Context, next []models.Account) error {
	if err := s.repo.Save(ctx, next); err != nil {
		s.log.Error(ctx, "failed to persist accounts", "error", err)
		return err
	}
	s.log.Debug(ctx, "accounts persisted", "count", len(next))
	return nil
}

func (s *AccountStore) indexByUsername(username string) int {
	return slices.IndexFunc(s.accounts, func(a models.Account) bool { return a.Username == username })
}

func (s *AccountStore) indexByID(id uuid.UUID) int {
	return slices.IndexFunc(s.accounts, func(a models.Account) bool { return a.ID == id })
}

// CreateAccount appends a new account and persists the set. The account is
// an admin iff the store is empty at call time.
//
// It returns common.ErrDuplicateUsername, without writing anything, if the
// username is taken.
func (s *AccountStore) CreateAccount(ctx context.Context, username, password string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexByUsername(username) >= 0 {
		s.log.Debug(ctx, "username already taken", "username", username)
		return models.Account{}, common.ErrDuplicateUsername
	}

	acc := models.NewAccount(username, password, len(s.accounts) == 0)
	next := append(slices.Clone(s.accounts), acc)
	if err := s.save(ctx, next); err != nil {
		return models.Account{}, err
	}

	s.accounts = next
	s.lastCreated = &acc
	s.log.Info(ctx, "account created", "username", acc.Username, "admin", acc.IsAdmin)
	return acc, nil
}

// DeleteAccount removes the account with acc's ID and persists the set.
// Deleting an account that is not in the store is not an error.
func (s *AccountStore) DeleteAccount(ctx context.Context, acc models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.accounts)
	i := s.indexByID(acc.ID)
	if i >= 0 {
		next = slices.Delete(next, i, i+1)
	}
	if err := s.save(ctx, next); err != nil {
		return err
	}

	s.accounts = next
	if i < 0 {
		s.log.Debug(ctx, "account to delete not found", "username", acc.Username)
		return nil
	}
	if s.lastCreated != nil && s.lastCreated.ID == acc.ID {
		s.lastCreated = nil
	}
	s.log.Info(ctx, "account deleted", "username", acc.Username)
	return nil
}

// ListAccounts returns a copy of the accounts in insertion order.
func (s *AccountStore) ListAccounts() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.accounts)
}

func (s *AccountStore) FindByUsername(username string) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexByUsername(username); i >= 0 {
		return s.accounts[i], true
	}
	return models.Account{}, false
}

func (s *AccountStore) FindByID(id uuid.UUID) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexByID(id); i >= 0 {
		return s.accounts[i], true
	}
	return models.Account{}, false
}

// Clear removes every account and persists the empty set.
func (s *AccountStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, nil); err != nil {
		return err
	}
	n := len(s.accounts)
	s.accounts = nil
	s.lastCreated = nil
	s.log.Info(ctx, "all accounts cleared", "count", n)
	return nil
}

// Persist writes the current set to the repository.
func (s *AccountStore) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, s.accounts)
}

// LastCreated returns the account most recently created by this store
// instance, unless it has since been deleted.
func (s *AccountStore) LastCreated() (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastCreated == nil {
		return models.Account{}, false
	}
	return *s.lastCreated, true
}

func (s *AccountStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

// Path returns where the account set is persisted.
func (s *AccountStore) Path() string { return s.repo.Path() }

// Close releases the repository.
func (s *AccountStore) Close() error { return s.repo.Close() }
