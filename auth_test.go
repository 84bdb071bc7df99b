package budgify

import (
	"errors"
	"os"
	"testing"
)

func TestAuthStore_Register(t *testing.T) {
	s := newTestStore(t)
	a := NewAuthStore(s)
	if _, err := a.Load(); err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}

	tests := []struct {
		username string
		role     Role
	}{
		{"alice", RoleAdmin},
		{"bob", RoleUser},
		{"carol", RoleUser},
	}
	for _, tt := range tests {
		u, err := a.Register(tt.username, "pw-"+tt.username)
		if err != nil {
			t.Fatalf("Register(%q) returned an unexpected error: %v", tt.username, err)
		}
		if u.Role != tt.role {
			t.Errorf("Register(%q).Role = %v, want %v", tt.username, u.Role, tt.role)
		}
	}

	// Roles survive a reload from the file.
	users, err := NewAuthStore(s).Load()
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if len(users) != 3 || users["alice"].Role != RoleAdmin || users["bob"].Role != RoleUser {
		t.Errorf("Load() = %v", users)
	}
}

func TestAuthStore_RegisterDuplicate(t *testing.T) {
	s := newTestStore(t)
	a := NewAuthStore(s)
	if _, err := a.Register("alice", "pw"); err != nil {
		t.Fatal(err)
	}
	before, _ := os.ReadFile(s.UsersPath())

	if _, err := a.Register("alice", "other"); !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Register() error = %v, want ErrDuplicateUsername", err)
	}
	after, _ := os.ReadFile(s.UsersPath())
	if string(before) != string(after) {
		t.Errorf("user file changed on a rejected registration:\n%s", after)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}

	// Usernames are case-sensitive.
	if u, err := a.Register("Alice", "pw"); err != nil || u.Role != RoleUser {
		t.Errorf("Register(\"Alice\") = %v, %v", u, err)
	}
}

func TestAuthStore_RegisterValidation(t *testing.T) {
	a := NewAuthStore(newTestStore(t))
	tests := []struct{ username, password string }{
		{"", "pw"},
		{"alice", ""},
		{"al,ice", "pw"},
		{"alice", "p,w"},
		{" alice", "pw"},
	}
	for _, tt := range tests {
		_, err := a.Register(tt.username, tt.password)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Register(%q, %q) error = %v, want *ValidationError", tt.username, tt.password, err)
		}
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestAuthStore_Authenticate(t *testing.T) {
	a := NewAuthStore(newTestStore(t))
	if _, err := a.Register("alice", "secret"); err != nil {
		t.Fatal(err)
	}

	u, err := a.Authenticate("alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate() returned an unexpected error: %v", err)
	}
	if u.Username != "alice" || !u.IsAdmin() {
		t.Errorf("Authenticate() = %v", u)
	}

	for _, tt := range []struct{ username, password string }{
		{"alice", "Secret"},
		{"alice", ""},
		{"bob", "secret"},
	} {
		if _, err := a.Authenticate(tt.username, tt.password); !errors.Is(err, ErrAuth) {
			t.Errorf("Authenticate(%q, %q) error = %v, want ErrAuth", tt.username, tt.password, err)
		}
	}
}

func TestAuthStore_LoadSkipsMalformed(t *testing.T) {
	s := newTestStore(t)
	content := "alice,pw,admin\nbroken line\nbob,pw,superuser\nalice,other,user\ncarol,pw,user\n"
	if err := os.WriteFile(s.UsersPath(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	a := NewAuthStore(s)
	users, err := a.Load()
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("Load() = %v, want alice and carol", users)
	}
	if users["alice"].Password != "pw" {
		t.Errorf("duplicate username: got %v, want the first line to win", users["alice"])
	}
	// A store that already has users never hands out admin again.
	if u, err := a.Register("dave", "pw"); err != nil || u.Role != RoleUser {
		t.Errorf("Register(\"dave\") = %v, %v", u, err)
	}
}
