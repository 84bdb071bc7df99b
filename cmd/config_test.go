package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/budgify"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "budgify.toml")
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoadConfig_Layers(t *testing.T) {
	setFlag(t, &configFile, writeConfig(t, `
ledger_file = "file.csv"
users_file = "file-users.csv"
currency = "EUR"
user = "file-user"
`))
	setFlag(t, &ledgerFile, "")
	setFlag(t, &usersFile, "")
	setFlag(t, &currency, "")
	setFlag(t, &username, "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() returned an unexpected error: %v", err)
	}
	want := &Config{LedgerFile: "file.csv", UsersFile: "file-users.csv", Currency: "EUR", User: "file-user"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("file layer (-want +got):\n%s", diff)
	}

	t.Setenv("BUDGIFY_USERS_FILE", "env-users.csv")
	t.Setenv("BUDGIFY_CURRENCY", "GBP")
	t.Setenv("BUDGIFY_PASSWORD", "env-secret")
	t.Setenv("BUDGIFY_VERBOSE", "true")
	setFlag(t, &currency, "JPY")

	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() returned an unexpected error: %v", err)
	}
	want = &Config{LedgerFile: "file.csv", UsersFile: "env-users.csv", Currency: "JPY", User: "file-user", Password: "env-secret", Verbose: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("env and flag layers (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setFlag(t, &configFile, "")
	setFlag(t, &ledgerFile, "")
	setFlag(t, &usersFile, "")
	setFlag(t, &currency, "")
	setFlag(t, &username, "")

	// no budgify.toml in the working directory.
	t.Chdir(t.TempDir())
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() returned an unexpected error: %v", err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("defaults (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	setFlag(t, &ledgerFile, "")
	setFlag(t, &usersFile, "")
	setFlag(t, &username, "")

	t.Run("missing explicit file", func(t *testing.T) {
		setFlag(t, &configFile, filepath.Join(t.TempDir(), "missing.toml"))
		setFlag(t, &currency, "")
		if _, err := loadConfig(); err == nil {
			t.Error("loadConfig() expected an error")
		}
	})
	t.Run("malformed file", func(t *testing.T) {
		setFlag(t, &configFile, writeConfig(t, `currency = `))
		setFlag(t, &currency, "")
		if _, err := loadConfig(); err == nil {
			t.Error("loadConfig() expected an error")
		}
	})
	t.Run("unknown currency", func(t *testing.T) {
		setFlag(t, &configFile, writeConfig(t, ``))
		setFlag(t, &currency, "XYZ")
		var verr *budgify.ValidationError
		if _, err := loadConfig(); !errors.As(err, &verr) || verr.Field != "currency" {
			t.Errorf("loadConfig() error = %v, want a currency *ValidationError", err)
		}
	})
}
