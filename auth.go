package budgify

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
)

// AuthStore holds the registered users, keyed by username.
//
// The first user ever registered becomes admin, every later one is a plain
// user. Users are never edited nor deleted, so the user file is append-only.
type AuthStore struct {
	mu    sync.Mutex
	store *FileStore
	users map[string]User
}

// NewAuthStore creates an empty auth store backed by store. Call Load to read it.
func NewAuthStore(store *FileStore) *AuthStore {
	return &AuthStore{store: store, users: make(map[string]User)}
}

// Load reads every user from the store and returns a copy of the mapping.
//
// Malformed lines are logged and skipped. If a username appears twice, the
// first line wins.
func (a *AuthStore) Load() (map[string]User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	lines, err := a.store.ReadUserLines()
	if err != nil {
		return nil, fmt.Errorf("cannot load users: %w", err)
	}

	users := make(map[string]User, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		u, err := DecodeUser(line)
		if err != nil {
			var derr *DecodeError
			if errors.As(err, &derr) {
				derr.Line = i + 1
				derr.Text = redactPassword(line)
			}
			log.Printf("skip-malformed-user file=%q err=%v", a.store.UsersPath(), err)
			continue
		}
		if _, exists := users[u.Username]; exists {
			log.Printf("skip-duplicate-user file=%q line=%d username=%q", a.store.UsersPath(), i+1, u.Username)
			continue
		}
		users[u.Username] = u
	}
	a.users = users
	return a.copyUsers(), nil
}

// Register creates a new user and appends it to the user file.
//
// The role is admin if no user exists yet, user otherwise.
func (a *AuthStore) Register(username, password string) (User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case username == "":
		return User{}, &ValidationError{Field: "username", Reason: "username is required"}
	case password == "":
		return User{}, &ValidationError{Field: "password", Reason: "password is required"}
	case strings.Contains(username, fieldSep) || strings.Contains(password, fieldSep):
		return User{}, &ValidationError{Field: "username", Reason: "username and password cannot contain a comma"}
	case strings.TrimSpace(username) != username:
		return User{}, &ValidationError{Field: "username", Reason: "username cannot start or end with spaces"}
	}
	if _, exists := a.users[username]; exists {
		return User{}, fmt.Errorf("cannot register %q: %w", username, ErrDuplicateUsername)
	}

	u := User{Username: username, Password: password, Role: RoleUser}
	if len(a.users) == 0 {
		u.Role = RoleAdmin
	}
	if err := a.store.AppendUser(EncodeUser(u)); err != nil {
		return User{}, fmt.Errorf("cannot register %q: %w", username, err)
	}
	a.users[username] = u
	log.Printf("register-user username=%q role=%s", u.Username, u.Role)
	return u, nil
}

// Authenticate returns the user matching username and password, or ErrAuth.
func (a *AuthStore) Authenticate(username, password string) (User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	u, exists := a.users[username]
	if !exists || u.Password != password {
		return User{}, ErrAuth
	}
	return u, nil
}

// Len returns the number of registered users.
func (a *AuthStore) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.users)
}

func (a *AuthStore) copyUsers() map[string]User {
	users := make(map[string]User, len(a.users))
	for k, v := range a.users {
		users[k] = v
	}
	return users
}

// redactPassword hides the password field of a user line before logging it.
func redactPassword(line string) string {
	parts := strings.Split(line, fieldSep)
	if len(parts) > 1 {
		parts[1] = "***"
	}
	return strings.Join(parts, fieldSep)
}
