package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type editCmd struct {
	index int
	tx    transactionFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change a transaction (admin only)" }
func (*editCmd) Usage() string {
	return `budgify edit -i <index> [-d <date>] [-c <category>] [-a <amount>] [-m <description>] [-pay <method>] [-t <tags>]

  Replaces the transaction listed as #<index> by "budgify tx" without filters.
  Fields not given on the command line are kept. The edited transaction moves
  to the end of the ledger. Requires the admin role.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", 0, "Index of the transaction to edit (required)")
	c.tx.SetFlags(f, "")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.index < 1 {
		fmt.Fprintln(os.Stderr, "Error: -i flag is required.")
		return subcommands.ExitUsageError
	}
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	s, cfg, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Logout()

	old, err := transactionAt(s, c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// start from the old values and override the ones given.
	fields := transactionFlags{
		date:        old.Date().String(),
		category:    string(old.Category()),
		amount:      old.Amount().String(),
		description: old.Description(),
		payment:     string(old.PaymentMethod()),
		tags:        old.Tags(),
	}
	override := map[string]func(){
		"d":   func() { fields.date = c.tx.date },
		"c":   func() { fields.category = c.tx.category },
		"a":   func() { fields.amount = c.tx.amount },
		"m":   func() { fields.description = c.tx.description },
		"pay": func() { fields.payment = c.tx.payment },
		"t":   func() { fields.tags = c.tx.tags },
	}
	for name, apply := range override {
		if set[name] {
			apply()
		}
	}

	updated, err := fields.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := s.Replace(old, updated); err != nil {
		fmt.Fprintf(os.Stderr, "Error editing transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Replaced %s with %s in %s\n", old, updated, cfg.LedgerFile)
	return subcommands.ExitSuccess
}
