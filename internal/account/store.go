package account

import (
	"errors"
	"sync"
)

var (
	// ErrUsernameTaken is returned by SignUp for a duplicate username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrMissingCredentials is returned when username or password is empty.
	ErrMissingCredentials = errors.New("please enter both username and password")

	// ErrInvalidCredentials is returned by SignIn on a bad username/password pair.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound is returned when no account exists for a username.
	ErrNotFound = errors.New("account not found")
)

// Store is an in-memory account registry. It is constructed once at
// startup and passed to every consumer; all access goes through the
// mutex so concurrent screens never race on the same profile.
// Enumeration order is sign-up order, which the scoreboard relies on
// for stable tie-breaking.
type Store struct {
	mu       sync.Mutex
	accounts map[string]*Account
	order    []string
}

// NewStore creates an empty account store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*Account),
	}
}

// SignUp registers a new account. The username must be unused and both
// credentials non-empty.
func (s *Store) SignUp(username, password string) (*Account, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[username]; exists {
		return nil, ErrUsernameTaken
	}

	acc := NewAccount(username, password)
	s.accounts[username] = acc
	s.order = append(s.order, username)
	return copyAccount(acc), nil
}

// SignIn checks credentials and returns the matching account.
func (s *Store) SignIn(username, password string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok || acc.Password != password {
		return nil, ErrInvalidCredentials
	}
	return copyAccount(acc), nil
}

// Get returns a snapshot of the account for username.
func (s *Store) Get(username string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return nil, ErrNotFound
	}
	return copyAccount(acc), nil
}

// Update applies fn to the stored account under the lock. fn receives
// the live account and may mutate it freely.
func (s *Store) Update(username string, fn func(*Account)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return ErrNotFound
	}
	fn(acc)
	return nil
}

// All returns snapshots of every account in sign-up order.
func (s *Store) All() []*Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Account, 0, len(s.order))
	for _, username := range s.order {
		out = append(out, copyAccount(s.accounts[username]))
	}
	return out
}

// Len returns the number of registered accounts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

func copyAccount(acc *Account) *Account {
	dup := *acc
	dup.WeakAreas = append([]string(nil), acc.WeakAreas...)
	return &dup
}
