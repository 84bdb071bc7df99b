package budgify

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// centPlaces is the number of decimal places kept on amounts.
const centPlaces = 2

// Transaction is a single signed monetary record.
//
// A positive amount is an income, a negative one an expense. A Transaction
// cannot be modified once built: an edit is a removal followed by the
// addition of a new value.
type Transaction struct {
	date        Date
	category    Category
	amount      decimal.Decimal
	description string
	payment     PaymentMethod
	tags        string
}

// NewTransaction creates a transaction, rounding the amount to cents.
//
// It returns a *ValidationError if the date is missing, or if the category
// or payment method is not part of its enumeration.
func NewTransaction(on Date, category Category, amount decimal.Decimal, description string, payment PaymentMethod, tags string) (Transaction, error) {
	if on.IsZero() {
		return Transaction{}, &ValidationError{Field: "date", Reason: "date is required"}
	}
	if !category.Valid() {
		return Transaction{}, &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", category)}
	}
	if !payment.Valid() {
		return Transaction{}, &ValidationError{Field: "payment", Reason: fmt.Sprintf("unknown payment method %q", payment)}
	}
	return Transaction{
		date:        on,
		category:    category,
		amount:      amount.Round(centPlaces),
		description: strings.TrimSpace(description),
		payment:     payment,
		tags:        strings.TrimSpace(tags),
	}, nil
}

// ParseTransaction creates a transaction from raw user input.
//
// Date, category and amount are required, the amount must be numeric. An
// empty payment method defaults to Other.
func ParseTransaction(on, category, amount, description, payment, tags string) (Transaction, error) {
	if strings.TrimSpace(on) == "" {
		return Transaction{}, &ValidationError{Field: "date", Reason: "date is required"}
	}
	day, err := ParseDate(on)
	if err != nil {
		return Transaction{}, &ValidationError{Field: "date", Reason: err.Error()}
	}
	if strings.TrimSpace(category) == "" {
		return Transaction{}, &ValidationError{Field: "category", Reason: "category is required"}
	}
	cat, err := ParseCategory(category)
	if err != nil {
		return Transaction{}, &ValidationError{Field: "category", Reason: err.Error()}
	}
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return Transaction{}, &ValidationError{Field: "amount", Reason: "amount is required"}
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return Transaction{}, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", amount)}
	}
	method := OtherPayment
	if strings.TrimSpace(payment) != "" {
		method, err = ParsePaymentMethod(payment)
		if err != nil {
			return Transaction{}, &ValidationError{Field: "payment", Reason: err.Error()}
		}
	}
	return NewTransaction(day, cat, value, description, method, tags)
}

func (t Transaction) Date() Date                   { return t.date }
func (t Transaction) Category() Category           { return t.category }
func (t Transaction) Amount() decimal.Decimal      { return t.amount }
func (t Transaction) Description() string          { return t.description }
func (t Transaction) PaymentMethod() PaymentMethod { return t.payment }
func (t Transaction) Tags() string                 { return t.tags }

// IsIncome reports whether the transaction has a positive amount.
func (t Transaction) IsIncome() bool { return t.amount.IsPositive() }

// IsExpense reports whether the transaction has a negative amount.
func (t Transaction) IsExpense() bool { return t.amount.IsNegative() }

// Equal reports whether t and u hold the same values in every field.
func (t Transaction) Equal(u Transaction) bool {
	return t.date == u.date &&
		t.category == u.category &&
		t.amount.Equal(u.amount) &&
		t.description == u.description &&
		t.payment == u.payment &&
		t.tags == u.tags
}

func (t Transaction) String() string {
	return EncodeTransaction(t)
}
