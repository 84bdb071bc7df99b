package budgify

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
)

// Ledger represents the list of transactions of a session, in file order.
//
// The file store is the source of truth: after every mutation the ledger
// reloads the whole file instead of trusting its in-memory delta, so that
// All always reflects what is on disk.
//
// A Ledger does not check roles. Callers must only remove transactions on
// behalf of an admin, see Session.
type Ledger struct {
	mu           sync.Mutex
	store        *FileStore
	transactions []Transaction
}

// NewLedger creates an empty ledger backed by store. Call Load to read it.
func NewLedger(store *FileStore) *Ledger {
	return &Ledger{store: store}
}

// Load reads every transaction from the store.
//
// Lines that cannot be decoded are logged and skipped. On error the
// in-memory transactions are left unchanged.
func (l *Ledger) Load() ([]Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(); err != nil {
		return nil, err
	}
	return l.snapshot(), nil
}

// Add appends t to the ledger and its file.
func (l *Ledger) Add(t Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.add(t)
}

// Remove deletes the first transaction equal to t and rewrites the file
// with the remaining ones. It returns ErrNotFound, without touching the
// file, if no transaction equals t.
func (l *Ledger) Remove(t Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remove(t)
}

// Replace removes old and adds updated in its place at the end of the ledger.
//
// Both steps run under one lock. There is no rollback: if adding fails, old
// stays removed.
func (l *Ledger) Replace(old, updated Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.remove(old); err != nil {
		return err
	}
	return l.add(updated)
}

// All returns a copy of the transactions currently held.
func (l *Ledger) All() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Len returns the number of transactions currently held.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.transactions)
}

func (l *Ledger) add(t Transaction) error {
	if err := l.store.AppendTransaction(EncodeTransaction(t)); err != nil {
		return fmt.Errorf("cannot add transaction: %w", err)
	}
	return l.load()
}

func (l *Ledger) remove(t Transaction) error {
	i := l.index(t)
	if i < 0 {
		return ErrNotFound
	}

	lines := make([]string, 0, len(l.transactions)-1)
	for j, tx := range l.transactions {
		if j == i {
			continue
		}
		lines = append(lines, EncodeTransaction(tx))
	}
	if err := l.store.RewriteTransactions(lines); err != nil {
		return fmt.Errorf("cannot remove transaction: %w", err)
	}
	return l.load()
}

// load replaces the in-memory transactions with the content of the file.
func (l *Ledger) load() error {
	lines, err := l.store.ReadTransactionLines()
	if err != nil {
		return fmt.Errorf("cannot load ledger: %w", err)
	}

	transactions := make([]Transaction, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue // Skip empty lines
		}
		t, err := DecodeTransaction(line)
		if err != nil {
			var derr *DecodeError
			if errors.As(err, &derr) {
				derr.Line = i + 1
			}
			log.Printf("skip-malformed-transaction file=%q err=%v", l.store.TransactionsPath(), err)
			continue
		}
		transactions = append(transactions, t)
	}
	l.transactions = transactions
	return nil
}

func (l *Ledger) index(t Transaction) int {
	for i, tx := range l.transactions {
		if tx.Equal(t) {
			return i
		}
	}
	return -1
}

func (l *Ledger) snapshot() []Transaction {
	return append([]Transaction(nil), l.transactions...)
}
