package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgify"
	"github.com/google/subcommands"
)

type signupCmd struct{}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "register a new user" }
func (*signupCmd) Usage() string {
	return `budgify [-u <username>] signup

  Registers a new user. The username and the password are prompted for unless
  they are configured (-u, BUDGIFY_USER, BUDGIFY_PASSWORD).

  The first user ever registered is the admin, the only one allowed to remove
  or edit transactions.
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	u, err := signup(cfg, newPrompter())
	var verr *budgify.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, budgify.ErrDuplicateUsername):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Registered %s with the %s role in %s\n", u.Username, u.Role, cfg.UsersFile)
	return subcommands.ExitSuccess
}

// signup registers the configured user, prompting for missing credentials.
func signup(cfg *Config, p *prompter) (budgify.User, error) {
	auth := budgify.NewAuthStore(cfg.store())
	if _, err := auth.Load(); err != nil {
		return budgify.User{}, err
	}

	user, password := cfg.User, cfg.Password
	if user == "" {
		var err error
		if user, err = p.line("Username: "); err != nil {
			return budgify.User{}, err
		}
	}
	if password == "" {
		var err error
		if password, err = p.password("Password: "); err != nil {
			return budgify.User{}, err
		}
		confirm, err := p.password("Confirm password: ")
		if err != nil {
			return budgify.User{}, err
		}
		if confirm != password {
			return budgify.User{}, &budgify.ValidationError{Field: "password", Reason: "passwords do not match"}
		}
	}
	return auth.Register(user, password)
}
