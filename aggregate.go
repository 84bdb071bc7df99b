package budgify

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// The aggregation functions are stateless: they work on whatever list of
// transactions they are given, normally the output of Filter, so that every
// report reflects the active filter.

// Totals is the income, expense and balance of a list of transactions.
type Totals struct {
	Income  decimal.Decimal // sum of positive amounts
	Expense decimal.Decimal // sum of negative amounts, kept negative
	Balance decimal.Decimal // Income + Expense
}

// CategorySum is the income and expense of one category.
type CategorySum struct {
	Category Category
	Income   decimal.Decimal // sum of positive amounts
	Expense  decimal.Decimal // sum of negative amounts, kept negative
}

// Total returns the net amount of the category.
func (c CategorySum) Total() decimal.Decimal { return c.Income.Add(c.Expense) }

// MonthPoint is the income and expense of one month.
type MonthPoint struct {
	Month   string          // year-month key, e.g. "2024-01"
	Income  decimal.Decimal // sum of positive amounts
	Expense decimal.Decimal // absolute value of the sum of negative amounts
}

// TrendPoint is the running balance right after one transaction.
type TrendPoint struct {
	Date    Date
	Balance decimal.Decimal
}

// ComputeTotals sums incomes and expenses. Zero amounts count in neither.
func ComputeTotals(transactions []Transaction) Totals {
	var t Totals
	for _, tx := range transactions {
		switch {
		case tx.IsIncome():
			t.Income = t.Income.Add(tx.amount)
		case tx.IsExpense():
			t.Expense = t.Expense.Add(tx.amount)
		}
	}
	t.Balance = t.Income.Add(t.Expense)
	return t
}

// ByCategory returns one entry per category of the enumeration, in
// enumeration order, including categories with no transaction.
func ByCategory(transactions []Transaction) []CategorySum {
	sums := make([]CategorySum, len(categories))
	index := make(map[Category]int, len(categories))
	for i, c := range categories {
		sums[i] = CategorySum{Category: c}
		index[c] = i
	}
	for _, tx := range transactions {
		i, ok := index[tx.category]
		if !ok {
			continue
		}
		switch {
		case tx.IsIncome():
			sums[i].Income = sums[i].Income.Add(tx.amount)
		case tx.IsExpense():
			sums[i].Expense = sums[i].Expense.Add(tx.amount)
		}
	}
	return sums
}

// ByMonth groups transactions by year-month and returns the months in
// chronological order. Expenses are reported as positive values.
//
// A month appears as soon as it has an income or an expense.
func ByMonth(transactions []Transaction) []MonthPoint {
	points := make(map[string]*MonthPoint)
	for _, tx := range transactions {
		if tx.amount.IsZero() {
			continue
		}
		key := tx.date.MonthKey()
		p, ok := points[key]
		if !ok {
			p = &MonthPoint{Month: key}
			points[key] = p
		}
		if tx.IsIncome() {
			p.Income = p.Income.Add(tx.amount)
		} else {
			p.Expense = p.Expense.Add(tx.amount.Abs())
		}
	}

	keys := make([]string, 0, len(points))
	for k := range points {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]MonthPoint, 0, len(keys))
	for _, k := range keys {
		series = append(series, *points[k])
	}
	return series
}

// Trend returns the running balance after each transaction, walking them by
// date. Transactions on the same date keep their relative order and each
// produce their own point.
func Trend(transactions []Transaction) []TrendPoint {
	sorted := slices.Clone(transactions)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		switch {
		case a.date.Before(b.date):
			return -1
		case a.date.After(b.date):
			return 1
		default:
			return 0
		}
	})

	trend := make([]TrendPoint, 0, len(sorted))
	running := decimal.Zero
	for _, tx := range sorted {
		running = running.Add(tx.amount)
		trend = append(trend, TrendPoint{Date: tx.date, Balance: running})
	}
	return trend
}
