package budgify

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Export writes transactions to w in the record format, preceded by ExportHeader.
func Export(w io.Writer, transactions []Transaction) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, ExportHeader); err != nil {
		return fmt.Errorf("export error: %w", err)
	}
	for _, t := range transactions {
		if _, err := fmt.Fprintln(bw, EncodeTransaction(t)); err != nil {
			return fmt.Errorf("export error: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export error: %w", err)
	}
	return nil
}

// ExportFile writes transactions to filename, replacing its content.
func ExportFile(filename string, transactions []Transaction) error {
	f, err := os.Create(filename)
	if err != nil {
		return &IOError{Op: "export", Path: filename, Err: err}
	}
	if err := Export(f, transactions); err != nil {
		f.Close()
		return &IOError{Op: "export", Path: filename, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "export", Path: filename, Err: err}
	}
	return nil
}
