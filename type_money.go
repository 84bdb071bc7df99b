package budgify

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used to display amounts when none is configured.
const DefaultCurrency = "USD"

// FormatAmount formats value as money in the given currency, e.g. "-$20.00".
// Amounts carry no currency in the record files; currency only drives display.
func FormatAmount(value decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, currency).Currency()
	units := value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(units.IntPart())
}

// SignedAmount is like FormatAmount with an explicit "+" on incomes. Zero is "-".
func SignedAmount(value decimal.Decimal, currency string) string {
	if value.IsZero() {
		return "-"
	}
	if value.IsPositive() {
		return "+" + FormatAmount(value, currency)
	}
	return FormatAmount(value, currency)
}

// ValidCurrency reports whether code is an ISO 4217 currency known to the formatter.
func ValidCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
