// Package cmd implements the CLI application to manage a budget ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/budgify"
	"github.com/google/subcommands"
)

// command is a subcommand with the group it is listed under.
type command struct {
	subcommands.Command
	group string
}

func commands() []command {
	return []command{
		{&addCmd{}, "transactions"},
		{&rmCmd{}, "transactions"},
		{&editCmd{}, "transactions"},
		{&txCmd{}, "transactions"},

		{&dashboardCmd{}, "reports"},
		{&categoriesCmd{}, "reports"},
		{&monthlyCmd{}, "reports"},
		{&trendCmd{}, "reports"},
		{&exportCmd{}, "reports"},

		{&signupCmd{}, "users"},
		{&whoamiCmd{}, "users"},

		{&topicCmd{}, "help"},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range commands() {
		c.Register(cmd.Command, cmd.group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a TOML configuration file (defaults to "+defaultConfigFile+" when it exists)")
var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file containing transactions (defaults to "+defaultLedgerFile+")")
var usersFile = flag.String("users-file", "", "Path to the file containing registered users (defaults to "+defaultUsersFile+")")
var currency = flag.String("currency", "", "ISO 4217 code of the currency used to display amounts (defaults to "+budgify.DefaultCurrency+")")
var username = flag.String("u", "", "Username to log in with, prompted for when empty")
var verbose = flag.Bool("v", false, "Log internal events on stderr")

// stdout receives the command output, stdin the interactive answers.
var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// Verbose reports whether logging is enabled by the command line, the environment or the config file.
func Verbose() bool {
	cfg, err := loadConfig()
	return err == nil && cfg.Verbose
}

// openSession loads the configuration and logs the user in.
func openSession() (*budgify.Session, *Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := login(cfg, newPrompter())
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

// transactionAt returns the transaction at the 1-based index of the unfiltered listing.
func transactionAt(s *budgify.Session, index int) (budgify.Transaction, error) {
	all, err := s.All()
	if err != nil {
		return budgify.Transaction{}, err
	}
	if index < 1 || index > len(all) {
		return budgify.Transaction{}, fmt.Errorf("no transaction #%d, the ledger holds %d: %w", index, len(all), budgify.ErrNotFound)
	}
	return all[index-1], nil
}
