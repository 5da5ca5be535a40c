// Package config loads the pas configuration.
//
// The configuration is read from defaults, then an optional YAML file, then
// the environment:
//
//	lunchmoney:
//	  token: <access token>      # or LUNCHMONEY_ACCESS_TOKEN
//	  base_url: https://dev.lunchmoney.app/v1
//	yahoo:
//	  base_url: https://query1.finance.yahoo.com
//	  user_agent: Mozilla/5.0 ...
//	timeout: 30s
package config

import (
	"os"
	"time"

	"github.com/etnz/pricedassets/lunchmoney"
	"github.com/etnz/pricedassets/yahoo"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file.
const (
	EnvAccessToken       = "LUNCHMONEY_ACCESS_TOKEN"
	EnvLunchMoneyBaseURL = "LUNCHMONEY_BASE_URL"
	EnvYahooBaseURL      = "YAHOO_BASE_URL"
)

// DefaultFile is loaded when no file is given, if it exists.
const DefaultFile = "pas.yaml"

type LunchMoney struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"`
}

type Yahoo struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
}

type Config struct {
	LunchMoney LunchMoney    `yaml:"lunchmoney"`
	Yahoo      Yahoo         `yaml:"yahoo"`
	Timeout    time.Duration `yaml:"timeout"`
}

// ConfigurationError is returned when a required setting is missing.
type ConfigurationError struct {
	Key string // the environment variable to set
}

func (e *ConfigurationError) Error() string {
	return e.Key + " is not set"
}

func Default() Config {
	return Config{
		LunchMoney: LunchMoney{BaseURL: lunchmoney.DefaultBaseURL},
		Yahoo:      Yahoo{BaseURL: yahoo.DefaultBaseURL, UserAgent: yahoo.DefaultUserAgent},
		Timeout:    30 * time.Second,
	}
}

// Load reads the YAML configuration from path. If path is empty, DefaultFile
// is read if it exists. Environment variables override the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAccessToken); v != "" {
		cfg.LunchMoney.Token = v
	}
	if v := os.Getenv(EnvLunchMoneyBaseURL); v != "" {
		cfg.LunchMoney.BaseURL = v
	}
	if v := os.Getenv(EnvYahooBaseURL); v != "" {
		cfg.Yahoo.BaseURL = v
	}
}

// Validate checks that the settings required to reach the ledger are set.
func (c Config) Validate() error {
	if c.LunchMoney.Token == "" {
		return &ConfigurationError{Key: EnvAccessToken}
	}
	return nil
}
