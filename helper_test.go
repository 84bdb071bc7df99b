package budgify

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
)

// cmpOpts compares the package value types, which hold unexported fields.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b Transaction) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Date) bool { return a == b }),
}

// D is a helper for test to create a decimal from a string constant.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// mustDecode is a helper for test to create a transaction from a record line.
func mustDecode(t *testing.T, line string) Transaction {
	t.Helper()
	tx, err := DecodeTransaction(line)
	if err != nil {
		t.Fatalf("DecodeTransaction(%q) returned an unexpected error: %v", line, err)
	}
	return tx
}

// newTestStore returns a store over two files in a fresh temporary directory.
func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	tmp := t.TempDir()
	return NewFileStore(filepath.Join(tmp, "expenses.csv"), filepath.Join(tmp, "users.csv"))
}

// cmpEmpty makes nil and empty slices equal.
var cmpEmpty = cmpopts.EquateEmpty()
