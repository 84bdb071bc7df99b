package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/budgify"
)

// filterFlags are the selection flags shared by tx and the reports.
type filterFlags struct {
	category string
	search   string
	start    string
	date     string
	period   string
}

func (p *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "c", string(budgify.AllCategories), `Category to show, or "all".`)
	f.StringVar(&p.search, "q", "", "Text to search in description, category and tags, ignoring case.")
	f.StringVar(&p.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&p.date, "d", "", "The end date for the range.")
	f.StringVar(&p.period, "p", "", "Predefined period ending at -d (day, week, month, quarter, year).")
}

// criteria parses the flags.
func (p *filterFlags) criteria() (budgify.Criteria, error) {
	c := budgify.Criteria{
		Category: budgify.AllCategories,
		Search:   strings.TrimSpace(p.search),
	}
	if p.category != "" && !strings.EqualFold(p.category, string(budgify.AllCategories)) {
		category, err := budgify.ParseCategory(p.category)
		if err != nil {
			return c, err
		}
		c.Category = category
	}

	var end budgify.Date
	if p.date != "" {
		var err error
		if end, err = budgify.ParseDate(p.date); err != nil {
			return c, fmt.Errorf("error parsing end date: %w", err)
		}
	}

	switch {
	case p.start != "":
		start, err := budgify.ParseDate(p.start)
		if err != nil {
			return c, fmt.Errorf("error parsing start date: %w", err)
		}
		c.Range = budgify.NewRange(start, end)
	case p.period != "":
		period, err := budgify.ParsePeriod(p.period)
		if err != nil {
			return c, fmt.Errorf("error parsing period: %w", err)
		}
		if end.IsZero() {
			end = budgify.Today()
		}
		c.Range = period.Range(end)
	case !end.IsZero():
		c.Range = budgify.Until(end)
	}
	return c, nil
}
