package accounts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/natefinch/atomic"
	"github.com/sirupsen/logrus"

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/domain"
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/utils"
)

// Named outcomes of store operations. Callers are expected to branch on
// these, not parse messages.
var (
	ErrStoreUnreadable = errors.New("account store unreadable")
	ErrDenied          = errors.New("access denied")
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountUnknown  = errors.New("account unknown")
	ErrAdminImmutable  = errors.New("admin account cannot be changed")
)

// The bootstrap account. It always exists and is always active.
const (
	BootstrapUser     = "admin"
	bootstrapPassword = "admin123"
)

// Store persists accounts as a single JSON object keyed by username at a
// fixed path. Every mutation is a read-modify-write of the whole file under
// a process-level mutex; writes go through an atomic rename so a crash never
// leaves a torn file. Two separate processes writing the same file remain
// last-write-wins.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a store backed by the JSON file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load decodes the whole account file. A missing file is an empty store, not
// an error. An unreadable or corrupt file also yields an empty store, but
// with ErrStoreUnreadable so the caller can log it instead of silently
// swallowing a damaged file.
func (s *Store) Load() (map[string]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (map[string]domain.Account, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]domain.Account{}, nil // No accounts yet
		}
		return map[string]domain.Account{}, fmt.Errorf("%w: %v", ErrStoreUnreadable, err)
	}
	accounts := map[string]domain.Account{}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return map[string]domain.Account{}, fmt.Errorf("%w: %v", ErrStoreUnreadable, err)
	}
	return accounts, nil
}

// Save overwrites the backing file wholesale.
func (s *Store) Save(accounts map[string]domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(accounts)
}

func (s *Store) saveLocked(accounts map[string]domain.Account) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return err
	}
	return atomic.WriteFile(s.path, bytes.NewReader(data))
}

// Bootstrap ensures the default admin account exists and is active.
// Idempotent: running it against a store that already has the account
// changes nothing.
func (s *Store) Bootstrap() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts, err := s.loadLocked()
	if err != nil {
		logrus.WithField("path", s.path).Warnf("account store unreadable, starting empty: %v", err)
	}
	if _, ok := accounts[BootstrapUser]; ok {
		return nil
	}
	accounts[BootstrapUser] = domain.Account{
		Password:  utils.HashPassword(bootstrapPassword),
		Active:    true,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	return s.saveLocked(accounts)
}

// Authenticate checks username and password against the store. Unknown user,
// wrong password and blocked account all come back as the same ErrDenied so
// nothing about the failure leaks to the login form.
func (s *Store) Authenticate(username, password string) error {
	accounts, err := s.Load()
	if err != nil {
		logrus.Warnf("authenticate with unreadable store: %v", err)
	}
	acct, ok := accounts[username]
	if !ok || !acct.Active {
		return ErrDenied
	}
	if acct.Password != utils.HashPassword(password) {
		return ErrDenied
	}
	return nil
}

// Create adds a new active account. Usernames are unique; a duplicate is
// rejected with ErrAccountExists and the store is left untouched.
func (s *Store) Create(username, password string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts, err := s.loadLocked()
	if err != nil {
		logrus.Warnf("create with unreadable store: %v", err)
	}
	if _, ok := accounts[username]; ok {
		return domain.Account{}, ErrAccountExists
	}
	acct := domain.Account{
		Username:  username,
		Password:  utils.HashPassword(password),
		Active:    true,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	accounts[username] = acct
	if err := s.saveLocked(accounts); err != nil {
		return domain.Account{}, err
	}
	return acct, nil
}

// SetActive flips the active flag of an account. The bootstrap admin can
// never be deactivated (or reactivated, it is always active) through this
// path. Accounts are never deleted, only blocked.
func (s *Store) SetActive(username string, active bool) error {
	if username == BootstrapUser {
		return ErrAdminImmutable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts, err := s.loadLocked()
	if err != nil {
		logrus.Warnf("set active with unreadable store: %v", err)
	}
	acct, ok := accounts[username]
	if !ok {
		return ErrAccountUnknown
	}
	acct.Active = active
	accounts[username] = acct
	return s.saveLocked(accounts)
}

// List returns every account sorted by username, with the Username field
// filled in from the map key.
func (s *Store) List() ([]domain.Account, error) {
	accounts, err := s.Load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Account, 0, len(accounts))
	for name, acct := range accounts {
		acct.Username = name
		out = append(out, acct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}
