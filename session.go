package budgify

import (
	"fmt"
	"log"
	"sync"
)

// Session is the logged-in state of one user over a ledger.
//
// A Session is created by Login and ends with Logout. After Logout every
// method returns ErrLoggedOut.
//
// Removing or editing a transaction requires the admin role. The check is
// done here rather than in the Ledger, which stays role-agnostic.
type Session struct {
	mu     sync.Mutex
	user   User
	ledger *Ledger
	closed bool
}

// Login authenticates username and loads the ledger.
func Login(auth *AuthStore, ledger *Ledger, username, password string) (*Session, error) {
	u, err := auth.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	if _, err := ledger.Load(); err != nil {
		return nil, err
	}
	log.Printf("login username=%q role=%s", u.Username, u.Role)
	return &Session{user: u, ledger: ledger}, nil
}

// User returns the logged-in user.
func (s *Session) User() User { return s.user }

// IsAdmin reports whether the logged-in user is an admin.
func (s *Session) IsAdmin() bool { return s.user.IsAdmin() }

// Logout closes the session.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		log.Printf("logout username=%q", s.user.Username)
	}
	s.closed = true
}

// LoggedIn reports whether the session is still open.
func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

func (s *Session) check(admin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrLoggedOut
	}
	if admin && !s.user.IsAdmin() {
		return fmt.Errorf("user %q: %w", s.user.Username, ErrForbidden)
	}
	return nil
}

// All returns every transaction of the ledger.
func (s *Session) All() ([]Transaction, error) {
	if err := s.check(false); err != nil {
		return nil, err
	}
	return s.ledger.All(), nil
}

// Add records a new transaction.
func (s *Session) Add(t Transaction) error {
	if err := s.check(false); err != nil {
		return err
	}
	return s.ledger.Add(t)
}

// Remove deletes a transaction. Admin only.
func (s *Session) Remove(t Transaction) error {
	if err := s.check(true); err != nil {
		return err
	}
	return s.ledger.Remove(t)
}

// Replace edits a transaction by removing old and adding updated. Admin only.
func (s *Session) Replace(old, updated Transaction) error {
	if err := s.check(true); err != nil {
		return err
	}
	return s.ledger.Replace(old, updated)
}

// Query returns the transactions matching c.
func (s *Session) Query(c Criteria) ([]Transaction, error) {
	if err := s.check(false); err != nil {
		return nil, err
	}
	return Filter(s.ledger.All(), c), nil
}

// Dashboard holds every derived view of one filtered list of transactions.
type Dashboard struct {
	Criteria     Criteria
	Transactions []Transaction
	Totals       Totals
	Categories   []CategorySum
	Months       []MonthPoint
	Trend        []TrendPoint
}

// NewDashboard computes every view over transactions.
func NewDashboard(transactions []Transaction, c Criteria) *Dashboard {
	return &Dashboard{
		Criteria:     c,
		Transactions: transactions,
		Totals:       ComputeTotals(transactions),
		Categories:   ByCategory(transactions),
		Months:       ByMonth(transactions),
		Trend:        Trend(transactions),
	}
}

// Dashboard filters the ledger with c and computes every view over the result.
func (s *Session) Dashboard(c Criteria) (*Dashboard, error) {
	transactions, err := s.Query(c)
	if err != nil {
		return nil, err
	}
	return NewDashboard(transactions, c), nil
}
