package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgify"
	"github.com/etnz/budgify/renderer"
	"github.com/google/subcommands"
)

// report holds what every report command shares: the filter flags and the
// computation of the dashboard.
type report struct {
	filter filterFlags
}

// run filters the ledger, computes the dashboard and prints what render makes of it.
func (r *report) run(render func(d *budgify.Dashboard, rows []renderer.Row, currency string) string) subcommands.ExitStatus {
	c, err := r.filter.criteria()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, cfg, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Logout()

	all, err := s.All()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err := s.Dashboard(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(render(d, renderer.Select(all, c), cfg.Currency))
	return subcommands.ExitSuccess
}

const reportFlagsUsage = `[-c <category>] [-q <text>] [-p <period> | -s <start_date>] [-d <end_date>]`

type dashboardCmd struct{ report }

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display totals, category breakdown, monthly overview and balance trend" }
func (*dashboardCmd) Usage() string {
	return `budgify dashboard ` + reportFlagsUsage + `

  Displays every report at once over the selected transactions.
`
}
func (c *dashboardCmd) SetFlags(f *flag.FlagSet) { c.filter.SetFlags(f) }
func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(renderer.Dashboard)
}

type categoriesCmd struct{ report }

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "display income and expense per category" }
func (*categoriesCmd) Usage() string {
	return `budgify categories ` + reportFlagsUsage + `

  Displays the income, expense and net amount of every category.
`
}
func (c *categoriesCmd) SetFlags(f *flag.FlagSet) { c.filter.SetFlags(f) }
func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(renderer.Categories)
}

type monthlyCmd struct{ report }

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display income and expense per month" }
func (*monthlyCmd) Usage() string {
	return `budgify monthly ` + reportFlagsUsage + `

  Displays the income and expense of every month holding a transaction.
`
}
func (c *monthlyCmd) SetFlags(f *flag.FlagSet) { c.filter.SetFlags(f) }
func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(renderer.Monthly)
}

type trendCmd struct{ report }

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display the running balance" }
func (*trendCmd) Usage() string {
	return `budgify trend ` + reportFlagsUsage + `

  Displays the balance after each transaction, in date order.
`
}
func (c *trendCmd) SetFlags(f *flag.FlagSet) { c.filter.SetFlags(f) }
func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(renderer.Trend)
}
