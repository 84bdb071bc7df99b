package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/budgify"
	"golang.org/x/term"
)

// errCanceled is returned when the user leaves the login prompt.
var errCanceled = errors.New("login canceled")

// prompter asks questions on out and reads the answers from in.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	// fd is the terminal used to read passwords without echo, -1 if none.
	fd int
}

func newPrompter() *prompter {
	p := &prompter{in: bufio.NewReader(stdin), out: os.Stderr, fd: -1}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

// line prints label and reads one trimmed line. It returns "" at end of input.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	s, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// password is like line but does not echo on a terminal.
func (p *prompter) password(label string) (string, error) {
	if p.fd < 0 {
		return p.line(label)
	}
	fmt.Fprint(p.out, label)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// login opens a session over the configured files.
//
// When both the user and the password are configured, a single attempt is
// made. Otherwise the missing credentials are prompted for until they are
// accepted. An empty username cancels.
func login(cfg *Config, p *prompter) (*budgify.Session, error) {
	store := cfg.store()
	auth := budgify.NewAuthStore(store)
	if _, err := auth.Load(); err != nil {
		return nil, err
	}
	ledger := budgify.NewLedger(store)

	if cfg.User != "" && cfg.Password != "" {
		return budgify.Login(auth, ledger, cfg.User, cfg.Password)
	}
	if auth.Len() == 0 {
		return nil, fmt.Errorf("no user registered in %q, run signup first", cfg.UsersFile)
	}

	user := cfg.User
	for {
		if user == "" {
			var err error
			if user, err = p.line("Username: "); err != nil {
				return nil, err
			}
			if user == "" {
				return nil, errCanceled
			}
		}
		password, err := p.password(fmt.Sprintf("Password for %s: ", user))
		if err != nil {
			return nil, err
		}

		s, err := budgify.Login(auth, ledger, user, password)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, budgify.ErrAuth) {
			return nil, err
		}
		fmt.Fprintf(p.out, "%v, try again (empty username to cancel).\n", err)
		user = ""
	}
}
