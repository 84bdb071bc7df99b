// Package renderer renders ledger views as markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/budgify"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templates embed.FS

// Row is a transaction with its 1-based position in the unfiltered ledger.
type Row struct {
	Index int
	budgify.Transaction
}

// Rows numbers transactions from 1, in order.
func Rows(transactions []budgify.Transaction) []Row {
	rows := make([]Row, len(transactions))
	for i, t := range transactions {
		rows[i] = Row{Index: i + 1, Transaction: t}
	}
	return rows
}

// Select returns the transactions of all matching c, numbered by their
// position in all.
func Select(all []budgify.Transaction, c budgify.Criteria) []Row {
	var rows []Row
	for i, t := range all {
		if c.Match(t) {
			rows = append(rows, Row{Index: i + 1, Transaction: t})
		}
	}
	return rows
}

// view is the data handed to every template.
type view struct {
	Title      string
	Filter     string
	Rows       []Row
	Totals     budgify.Totals
	Categories []budgify.CategorySum
	Months     []budgify.MonthPoint
	Trend      []budgify.TrendPoint
}

func newView(title string, d *budgify.Dashboard, rows []Row) view {
	return view{
		Title:      title,
		Filter:     Filter(d.Criteria),
		Rows:       rows,
		Totals:     d.Totals,
		Categories: d.Categories,
		Months:     d.Months,
		Trend:      d.Trend,
	}
}

// Filter describes the criteria in plain words.
func Filter(c budgify.Criteria) string {
	var parts []string
	if c.Category != "" && c.Category != budgify.AllCategories {
		parts = append(parts, fmt.Sprintf("category %s", c.Category))
	}
	if c.Search != "" {
		parts = append(parts, fmt.Sprintf("matching %q", c.Search))
	}
	if !c.Range.IsOpen() {
		parts = append(parts, c.Range.String())
	}
	if len(parts) == 0 {
		return "no filter"
	}
	return strings.Join(parts, ", ")
}

// Transactions renders a table of transactions.
func Transactions(rows []Row, currency string) string {
	return render(currency, "transactions", "", view{Rows: rows})
}

// Dashboard renders totals, category breakdown, monthly series and trend of d.
// rows are the transactions d was computed from.
func Dashboard(d *budgify.Dashboard, rows []Row, currency string) string {
	return render(currency, "dashboard", "", newView("Dashboard", d, rows))
}

// Categories renders the category breakdown of d.
func Categories(d *budgify.Dashboard, rows []Row, currency string) string {
	return render(currency, "report", "categories", newView("Spending by Category", d, rows))
}

// Monthly renders the monthly income and expense of d.
func Monthly(d *budgify.Dashboard, rows []Row, currency string) string {
	return render(currency, "report", "monthly", newView("Monthly Overview", d, rows))
}

// Trend renders the running balance of d.
func Trend(d *budgify.Dashboard, rows []Row, currency string) string {
	return render(currency, "report", "trend", newView("Balance Trend", d, rows))
}

// render executes the template name. When body is set, it becomes the "body"
// partial of the generic report template.
func render(currency, name, body string, data view) string {
	tmpl, err := parse(currency)
	if err != nil {
		return fmt.Sprintf("error parsing templates: %v", err)
	}
	if body != "" {
		if _, err := tmpl.New("body").Parse(fmt.Sprintf("{{template %q .}}", body)); err != nil {
			return fmt.Sprintf("error parsing partial template %q: %v", body, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}

// parse loads every template with the helpers bound to currency.
func parse(currency string) (*template.Template, error) {
	funcs := template.FuncMap{
		"money":  func(d decimal.Decimal) string { return budgify.FormatAmount(d, currency) },
		"signed": func(d decimal.Decimal) string { return budgify.SignedAmount(d, currency) },
		"cell":   cell,
	}
	return template.New("budgify").Funcs(funcs).ParseFS(templates, "templates/*.md")
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
