package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgify/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	filter filterFlags
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `budgify tx [-c <category>] [-q <text>] [-p <period> | -s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger, with options for filtering and limiting the output.
  The # column is the transaction index used by rm and edit.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	p.filter.SetFlags(f)
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	c, err := p.filter.criteria()
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
	rows := renderer.Select(all, c)

	if p.head > 0 && len(rows) > p.head {
		rows = rows[:p.head]
	}
	if p.tail > 0 && len(rows) > p.tail {
		rows = rows[len(rows)-p.tail:]
	}

	printMarkdown(renderer.Transactions(rows, cfg.Currency))
	return subcommands.ExitSuccess
}
