package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// setFlag overrides a global string flag for the duration of the test.
func setFlag(t *testing.T, p **string, value string) {
	t.Helper()
	old := *p
	*p = &value
	t.Cleanup(func() { *p = old })
}

// newWorkspace points the global flags to fresh record files and logs in as user.
func newWorkspace(t *testing.T, user string) (ledger, users string) {
	t.Helper()
	tmp := t.TempDir()
	ledger = filepath.Join(tmp, "expenses.csv")
	users = filepath.Join(tmp, "users.csv")
	setFlag(t, &ledgerFile, ledger)
	setFlag(t, &usersFile, users)
	setFlag(t, &configFile, filepath.Join(tmp, "none.toml"))
	t.Setenv("BUDGIFY_USER", user)
	t.Setenv("BUDGIFY_PASSWORD", "secret")

	// an explicit config file that does not exist is an error, so create an empty one.
	if err := os.WriteFile(*configFile, nil, 0644); err != nil {
		t.Fatal(err)
	}

	oldIn := stdin
	stdin = strings.NewReader("")
	t.Cleanup(func() { stdin = oldIn })
	return ledger, users
}

// run executes c with args and returns its status and output.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("failed to parse %v: %v", args, err)
	}

	var b bytes.Buffer
	old := stdout
	stdout = &b
	defer func() { stdout = old }()

	status := c.Execute(context.Background(), f)
	return status, b.String()
}

func readFile(t *testing.T, filename string) string {
	t.Helper()
	content, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", filename, err)
	}
	return string(content)
}

func TestSignup_Roles(t *testing.T) {
	_, users := newWorkspace(t, "alice")

	status, out := run(t, &signupCmd{})
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.Contains(out, "Registered alice with the admin role") {
		t.Errorf("unexpected output %q", out)
	}

	t.Setenv("BUDGIFY_USER", "bob")
	if status, _ := run(t, &signupCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if status, _ := run(t, &signupCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError for a duplicate username, got %v", status)
	}

	want := "alice,secret,admin\nbob,secret,user\n"
	if got := readFile(t, users); got != want {
		t.Errorf("users file mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}

	_, out = run(t, &whoamiCmd{})
	if out != "bob (user)\n" {
		t.Errorf("whoami output = %q, want %q", out, "bob (user)\n")
	}
}

func TestAddListRemove(t *testing.T) {
	ledger, _ := newWorkspace(t, "alice")
	run(t, &signupCmd{})
	t.Setenv("BUDGIFY_USER", "bob")
	run(t, &signupCmd{})

	// bob, a plain user, can add and list.
	if status, _ := run(t, &addCmd{}, "-d", "2024-01-05", "-c", "food", "-a", "-20", "-m", "lunch", "-pay", "cash"); status != subcommands.ExitSuccess {
		t.Fatalf("add: expected ExitSuccess, got %v", status)
	}
	if status, _ := run(t, &addCmd{}, "-d", "2024-01-20", "-c", "Other", "-a", "1000", "-m", "paycheck"); status != subcommands.ExitSuccess {
		t.Fatalf("add: expected ExitSuccess, got %v", status)
	}

	status, out := run(t, &txCmd{}, "-q", "PAY")
	if status != subcommands.ExitSuccess {
		t.Fatalf("tx: expected ExitSuccess, got %v", status)
	}
	if !strings.Contains(out, "| 2 | 2024-01-20 | Other | +$1,000.00 | paycheck | Other |  |") {
		t.Errorf("tx output does not list the paycheck as #2:\n%s", out)
	}
	if strings.Contains(out, "lunch") {
		t.Errorf("tx output lists a filtered out transaction:\n%s", out)
	}

	// but not remove.
	if status, _ := run(t, &rmCmd{}, "-i", "1"); status != subcommands.ExitFailure {
		t.Errorf("rm by a user: expected ExitFailure, got %v", status)
	}
	before := "2024-01-05,Food,-20.00,lunch,Cash,\n2024-01-20,Other,1000.00,paycheck,Other,\n"
	if got := readFile(t, ledger); got != before {
		t.Errorf("ledger changed after a forbidden rm.\nGot:\n%s\nWant:\n%s", got, before)
	}

	t.Setenv("BUDGIFY_USER", "alice")
	if status, _ := run(t, &rmCmd{}, "-i", "3"); status != subcommands.ExitFailure {
		t.Errorf("rm of a missing index: expected ExitFailure, got %v", status)
	}
	if status, _ := run(t, &rmCmd{}, "-i", "1"); status != subcommands.ExitSuccess {
		t.Fatalf("rm by the admin: expected ExitSuccess, got %v", status)
	}
	after := "2024-01-20,Other,1000.00,paycheck,Other,\n"
	if got := readFile(t, ledger); got != after {
		t.Errorf("ledger mismatch after rm.\nGot:\n%s\nWant:\n%s", got, after)
	}
}

func TestAdd_Validation(t *testing.T) {
	ledger, _ := newWorkspace(t, "alice")
	run(t, &signupCmd{})

	tests := []struct {
		name string
		args []string
	}{
		{"missing category", []string{"-a", "-1"}},
		{"missing amount", []string{"-c", "food"}},
		{"bad amount", []string{"-c", "food", "-a", "ten"}},
		{"bad date", []string{"-c", "food", "-a", "1", "-d", "tomorrow"}},
		{"bad payment", []string{"-c", "food", "-a", "1", "-pay", "cheque"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status, _ := run(t, &addCmd{}, tt.args...); status != subcommands.ExitUsageError {
				t.Errorf("Expected ExitUsageError, got %v", status)
			}
		})
	}
	if _, err := os.Stat(ledger); !os.IsNotExist(err) {
		t.Errorf("ledger file was written by invalid adds: %v", err)
	}
}

func TestEdit(t *testing.T) {
	ledger, _ := newWorkspace(t, "alice")
	run(t, &signupCmd{})
	run(t, &addCmd{}, "-d", "2024-01-05", "-c", "food", "-a", "-20", "-m", "lunch", "-pay", "cash")
	run(t, &addCmd{}, "-d", "2024-01-06", "-c", "food", "-a", "-5", "-m", "coffee", "-pay", "cash")

	status, _ := run(t, &editCmd{}, "-i", "1", "-a", "-22.5", "-t", "")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	want := "2024-01-06,Food,-5.00,coffee,Cash,\n2024-01-05,Food,-22.50,lunch,Cash,\n"
	if got := readFile(t, ledger); got != want {
		t.Errorf("ledger mismatch after edit.\nGot:\n%s\nWant:\n%s", got, want)
	}

	if status, _ := run(t, &editCmd{}, "-i", "1", "-c", "groceries"); status != subcommands.ExitUsageError {
		t.Errorf("edit with an unknown category: expected ExitUsageError, got %v", status)
	}
}

func TestExport(t *testing.T) {
	newWorkspace(t, "alice")
	run(t, &signupCmd{})
	run(t, &addCmd{}, "-d", "2024-01-05", "-c", "food", "-a", "-20", "-m", "lunch", "-pay", "cash")
	run(t, &addCmd{}, "-d", "2024-02-01", "-c", "housing", "-a", "-700", "-m", "rent", "-pay", "bank transfer")

	output := filepath.Join(t.TempDir(), "out.csv")
	status, out := run(t, &exportCmd{}, "-o", output, "-s", "2024-02-01")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.Contains(out, "Exported 1 transactions") {
		t.Errorf("unexpected output %q", out)
	}
	want := "Date,Category,Amount,Description,Payment,Tags\n2024-02-01,Housing,-700.00,rent,Bank Transfer,\n"
	if got := readFile(t, output); got != want {
		t.Errorf("export mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestReports(t *testing.T) {
	newWorkspace(t, "alice")
	run(t, &signupCmd{})
	run(t, &addCmd{}, "-d", "2024-01-05", "-c", "food", "-a", "-20", "-m", "lunch", "-pay", "cash")
	run(t, &addCmd{}, "-d", "2024-01-20", "-c", "other", "-a", "1000", "-m", "paycheck")

	tests := []struct {
		cmd  subcommands.Command
		args []string
		want string
	}{
		{&dashboardCmd{}, nil, "| $1,000.00 | -$20.00 | $980.00 |"},
		{&categoriesCmd{}, []string{"-c", "food"}, "| Food | $0.00 | -$20.00 | -$20.00 |"},
		{&monthlyCmd{}, nil, "| 2024-01 | $1,000.00 | $20.00 |"},
		{&trendCmd{}, []string{"-d", "2024-01-10"}, "| 2024-01-05 | -$20.00 |"},
	}
	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			status, out := run(t, tt.cmd, tt.args...)
			if status != subcommands.ExitSuccess {
				t.Fatalf("Expected ExitSuccess, got %v", status)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output does not contain %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestWhoami_WrongPassword(t *testing.T) {
	newWorkspace(t, "alice")
	t.Setenv("BUDGIFY_PASSWORD", "wrong")
	run(t, &signupCmd{})

	t.Setenv("BUDGIFY_PASSWORD", "secret")
	if status, _ := run(t, &whoamiCmd{}); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure with a wrong password, got %v", status)
	}
}

func TestTopic(t *testing.T) {
	status, out := run(t, &topicCmd{}, "file-format")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.HasPrefix(out, "# File format") {
		t.Errorf("unexpected topic output:\n%s", out)
	}
	if status, _ := run(t, &topicCmd{}, "nope"); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure for an unknown topic, got %v", status)
	}
}
