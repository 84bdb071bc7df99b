package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/etnz/budgify"
)

const (
	defaultConfigFile = "budgify.toml"
	defaultLedgerFile = "expenses.csv"
	defaultUsersFile  = "users.csv"
)

// Config is the resolved application configuration.
//
// Each layer overrides the previous one: defaults, the TOML file, the
// environment and the command line flags.
type Config struct {
	LedgerFile string `toml:"ledger_file" env:"BUDGIFY_LEDGER_FILE"`
	UsersFile  string `toml:"users_file" env:"BUDGIFY_USERS_FILE"`
	Currency   string `toml:"currency" env:"BUDGIFY_CURRENCY"`
	User       string `toml:"user" env:"BUDGIFY_USER"`
	// Password is never read from the config file.
	Password string `toml:"-" env:"BUDGIFY_PASSWORD"`
	Verbose  bool   `toml:"verbose" env:"BUDGIFY_VERBOSE"`
}

func defaultConfig() *Config {
	return &Config{
		LedgerFile: defaultLedgerFile,
		UsersFile:  defaultUsersFile,
		Currency:   budgify.DefaultCurrency,
	}
}

// loadConfig resolves the configuration from every layer.
func loadConfig() (*Config, error) {
	cfg := defaultConfig()

	filename, explicit := *configFile, *configFile != ""
	if !explicit {
		filename = defaultConfigFile
	}
	if _, err := toml.DecodeFile(filename, cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot read config file %q: %w", filename, err)
		}
	} else {
		log.Printf("load-config file=%q", filename)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from environment: %w", err)
	}

	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	if *usersFile != "" {
		cfg.UsersFile = *usersFile
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *username != "" {
		cfg.User = *username
	}
	if *verbose {
		cfg.Verbose = true
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.LedgerFile == "":
		return &budgify.ValidationError{Field: "ledger_file", Reason: "ledger file path is required"}
	case c.UsersFile == "":
		return &budgify.ValidationError{Field: "users_file", Reason: "users file path is required"}
	case !budgify.ValidCurrency(c.Currency):
		return &budgify.ValidationError{Field: "currency", Reason: fmt.Sprintf("unknown currency %q", c.Currency)}
	}
	return nil
}

// store opens the record files named by the configuration.
func (c *Config) store() *budgify.FileStore {
	return budgify.NewFileStore(c.LedgerFile, c.UsersFile)
}
