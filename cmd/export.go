package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgify"
	"github.com/google/subcommands"
)

type exportCmd struct {
	filter filterFlags
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions as CSV with a header line" }
func (*exportCmd) Usage() string {
	return `budgify export [-o <file>] ` + reportFlagsUsage + `

  Writes the selected transactions as CSV, preceded by a header line.
  Writes to the standard output when -o is not set.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.filter.SetFlags(f)
	f.StringVar(&c.output, "o", "", "Output file")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	criteria, err := c.filter.criteria()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, _, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Logout()

	transactions, err := s.Query(criteria)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		err = budgify.Export(stdout, transactions)
	} else {
		err = budgify.ExportFile(c.output, transactions)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Fprintf(stdout, "Exported %d transactions to %s\n", len(transactions), c.output)
	}
	return subcommands.ExitSuccess
}
