package budgify

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore persists the transaction and user records in two flat files,
// one record per line.
//
// Adding a record appends one line. Removing or editing a transaction
// rewrites the whole file, since lines carry no identity. A rewrite is not
// atomic: a crash in the middle of it can leave a truncated file.
//
// All methods are safe for concurrent use within one process; the files
// are assumed to have no other writer.
type FileStore struct {
	mu           sync.Mutex
	transactions string
	users        string
}

// NewFileStore returns a store over the given file paths. Files are created on first write.
func NewFileStore(transactionsPath, usersPath string) *FileStore {
	return &FileStore{transactions: transactionsPath, users: usersPath}
}

// TransactionsPath returns the path of the transaction file.
func (s *FileStore) TransactionsPath() string { return s.transactions }

// UsersPath returns the path of the user file.
func (s *FileStore) UsersPath() string { return s.users }

// AppendTransaction appends one record line to the transaction file.
func (s *FileStore) AppendTransaction(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return appendLine(s.transactions, line)
}

// RewriteTransactions replaces the content of the transaction file with lines.
func (s *FileStore) RewriteTransactions(lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rewriteLines(s.transactions, lines)
}

// ReadTransactionLines returns every line of the transaction file.
// A missing file reads as no lines.
func (s *FileStore) ReadTransactionLines() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readLines(s.transactions)
}

// AppendUser appends one record line to the user file.
func (s *FileStore) AppendUser(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return appendLine(s.users, line)
}

// ReadUserLines returns every line of the user file.
// A missing file reads as no lines.
func (s *FileStore) ReadUserLines() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readLines(s.users)
}

// readLines reads all lines of filename.
func readLines(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &IOError{Op: "read", Path: filename, Err: err}
	}
	defer f.Close()

	// lines have no length limit: a record is only rejected when decoded.
	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, &IOError{Op: "read", Path: filename, Err: err}
		}
	}
}

// appendLine opens filename in append mode, creating it if it doesn't exist, and writes line.
// A file edited by hand may lack its final newline, it is completed first.
func appendLine(filename, line string) error {
	if err := ensureDir(filename); err != nil {
		return &IOError{Op: "append", Path: filename, Err: err}
	}
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return &IOError{Op: "append", Path: filename, Err: err}
	}
	terminated, err := endsWithNewline(f)
	if err != nil {
		f.Close()
		return &IOError{Op: "append", Path: filename, Err: err}
	}
	if !terminated {
		line = "\n" + line
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return &IOError{Op: "append", Path: filename, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "append", Path: filename, Err: err}
	}
	log.Printf("append-record file=%q", filename)
	return nil
}

// endsWithNewline reports whether f is empty or its last byte is a newline.
func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}

// rewriteLines truncates filename and writes all lines.
func rewriteLines(filename string, lines []string) error {
	if err := ensureDir(filename); err != nil {
		return &IOError{Op: "rewrite", Path: filename, Err: err}
	}
	f, err := os.Create(filename)
	if err != nil {
		return &IOError{Op: "rewrite", Path: filename, Err: err}
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return &IOError{Op: "rewrite", Path: filename, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &IOError{Op: "rewrite", Path: filename, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "rewrite", Path: filename, Err: err}
	}
	log.Printf("rewrite-records file=%q count=%d", filename, len(lines))
	return nil
}

// ensureDir creates the directory holding filename.
func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
