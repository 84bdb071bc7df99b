package budgify

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the line codec of the record files.
//
// A transaction is one line of six comma separated fields:
//
//	2024-01-05,Food,-20.00,lunch,Cash,
//
// and a user is one line of three fields:
//
//	alice,secret,admin
//
// Fields are not escaped: a comma inside a description or tags shifts the
// following fields when the line is read back. Decoding keeps the first
// fields and ignores any extra one, like the files have always been read.

const (
	fieldSep          = ","
	transactionFields = 6
	userFields        = 3
)

// ExportHeader is the header line written by Export. Record files never carry it.
const ExportHeader = "Date,Category,Amount,Description,Payment,Tags"

// EncodeTransaction returns the record line of t, without line terminator.
func EncodeTransaction(t Transaction) string {
	if strings.Contains(t.description, fieldSep) || strings.Contains(t.tags, fieldSep) {
		log.Printf("encode-transaction-delimiter date=%s description=%q tags=%q: fields will shift on reload", t.date, t.description, t.tags)
	}
	return strings.Join([]string{
		t.date.String(),
		string(t.category),
		t.amount.StringFixed(centPlaces),
		t.description,
		string(t.payment),
		t.tags,
	}, fieldSep)
}

// DecodeTransaction parses a record line into a transaction.
// Any failure is returned as a *DecodeError.
func DecodeTransaction(line string) (Transaction, error) {
	fail := func(err error) (Transaction, error) {
		return Transaction{}, &DecodeError{Text: line, Err: err}
	}

	parts := strings.Split(line, fieldSep)
	if len(parts) < transactionFields {
		return fail(fmt.Errorf("want %d fields, got %d", transactionFields, len(parts)))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	on, err := DecodeDate(parts[0])
	if err != nil {
		return fail(err)
	}
	category, err := ParseCategory(parts[1])
	if err != nil {
		return fail(err)
	}
	amount, err := decimal.NewFromString(parts[2])
	if err != nil {
		return fail(fmt.Errorf("invalid amount %q: %w", parts[2], err))
	}
	payment, err := ParsePaymentMethod(parts[4])
	if err != nil {
		return fail(err)
	}

	t, err := NewTransaction(on, category, amount, parts[3], payment, parts[5])
	if err != nil {
		return fail(err)
	}
	return t, nil
}

// EncodeUser returns the record line of u, without line terminator.
func EncodeUser(u User) string {
	return strings.Join([]string{u.Username, u.Password, string(u.Role)}, fieldSep)
}

// DecodeUser parses a record line into a user.
// Any failure is returned as a *DecodeError.
func DecodeUser(line string) (User, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) < userFields {
		return User{}, &DecodeError{Text: line, Err: fmt.Errorf("want %d fields, got %d", userFields, len(parts))}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return User{}, &DecodeError{Text: line, Err: errors.New("empty username")}
	}
	role, err := ParseRole(parts[2])
	if err != nil {
		return User{}, &DecodeError{Text: line, Err: err}
	}
	return User{Username: parts[0], Password: parts[1], Role: role}, nil
}
