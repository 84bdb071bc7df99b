package budgify

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateUsername is returned when registering a username that already exists.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrAuth is returned when a username and password do not match a registered user.
	ErrAuth = errors.New("invalid username or password")
	// ErrNotFound is returned when removing a transaction the ledger does not hold.
	ErrNotFound = errors.New("transaction not found")
	// ErrForbidden is returned when the session role does not allow the operation.
	ErrForbidden = errors.New("operation requires the admin role")
	// ErrLoggedOut is returned by any operation on a closed session.
	ErrLoggedOut = errors.New("session is logged out")
)

// DecodeError reports a record line that could not be decoded.
// Readers skip such lines and keep going.
type DecodeError struct {
	Line int    // 1-based line number, 0 when unknown
	Text string // raw line
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: cannot decode %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("cannot decode %q: %v", e.Text, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IOError reports a record file that could not be read or written.
type IOError struct {
	Op   string // "read", "append", "rewrite" or "export"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ValidationError reports user input rejected before any mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
