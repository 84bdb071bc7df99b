package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/budgify"
	"github.com/google/subcommands"
)

// transactionFlags are the fields of a transaction typed on the command line.
type transactionFlags struct {
	date        string
	category    string
	amount      string
	description string
	payment     string
	tags        string
}

func (t *transactionFlags) SetFlags(f *flag.FlagSet, date string) {
	f.StringVar(&t.date, "d", date, "Transaction date.")
	f.StringVar(&t.category, "c", "", "Category ("+joinCategories()+").")
	f.StringVar(&t.amount, "a", "", "Amount, positive for an income, negative for an expense.")
	f.StringVar(&t.description, "m", "", "Description of the transaction.")
	f.StringVar(&t.payment, "pay", "", "Payment method ("+joinPaymentMethods()+"). Defaults to Other.")
	f.StringVar(&t.tags, "t", "", "Free form tags.")
}

func (t *transactionFlags) parse() (budgify.Transaction, error) {
	return budgify.ParseTransaction(t.date, t.category, t.amount, t.description, t.payment, t.tags)
}

type addCmd struct {
	tx transactionFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `budgify add -c <category> -a <amount> [-d <date>] [-m <description>] [-pay <method>] [-t <tags>]

  Appends a transaction to the ledger. Use a negative amount for an expense.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.tx.SetFlags(f, budgify.Today().String())
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := c.tx.parse()
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

	if err := s.Add(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully appended transaction to %s\n", cfg.LedgerFile)
	return subcommands.ExitSuccess
}

func joinCategories() string {
	names := make([]string, 0, len(budgify.Categories()))
	for _, c := range budgify.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func joinPaymentMethods() string {
	names := make([]string, 0, len(budgify.PaymentMethods()))
	for _, p := range budgify.PaymentMethods() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}
