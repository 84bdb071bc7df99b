package budgify

import (
	"fmt"
	"strings"
)

// Category is the spending or income category of a transaction.
type Category string

// Categories a transaction can be filed under.
const (
	Housing        Category = "Housing"
	Food           Category = "Food"
	Transportation Category = "Transportation"
	Utilities      Category = "Utilities"
	Healthcare     Category = "Healthcare"
	Entertainment  Category = "Entertainment"
	Education      Category = "Education"
	Savings        Category = "Savings"
	Investments    Category = "Investments"
	Debt           Category = "Debt"
	OtherCategory  Category = "Other"
)

// AllCategories is the filter value matching every category.
// It is not a valid category for a transaction.
const AllCategories Category = "all"

var categories = []Category{
	Housing, Food, Transportation, Utilities, Healthcare, Entertainment,
	Education, Savings, Investments, Debt, OtherCategory,
}

// Categories returns the fixed enumeration of categories, in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	for _, x := range categories {
		if x == c {
			return true
		}
	}
	return false
}

// ParseCategory returns the category named s, ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// PaymentMethod is how a transaction was paid or received.
type PaymentMethod string

const (
	Cash           PaymentMethod = "Cash"
	CreditCard     PaymentMethod = "Credit Card"
	DebitCard      PaymentMethod = "Debit Card"
	BankTransfer   PaymentMethod = "Bank Transfer"
	DigitalWallet  PaymentMethod = "Digital Wallet"
	Cryptocurrency PaymentMethod = "Cryptocurrency"
	OtherPayment   PaymentMethod = "Other"
)

var paymentMethods = []PaymentMethod{
	Cash, CreditCard, DebitCard, BankTransfer, DigitalWallet, Cryptocurrency, OtherPayment,
}

// PaymentMethods returns the fixed enumeration of payment methods.
func PaymentMethods() []PaymentMethod {
	return append([]PaymentMethod(nil), paymentMethods...)
}

// Valid reports whether p is one of the enumerated payment methods.
func (p PaymentMethod) Valid() bool {
	for _, x := range paymentMethods {
		if x == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethod returns the payment method named s, ignoring case.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	for _, p := range paymentMethods {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}
