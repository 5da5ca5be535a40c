// Package cmd implements the pas CLI application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/pricedassets/config"
	"github.com/etnz/pricedassets/lunchmoney"
	"github.com/etnz/pricedassets/yahoo"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML configuration file (default "+config.DefaultFile+" if it exists)")
var Verbose = flag.Bool("v", false, "Log debug messages")
var rawOutput = flag.Bool("raw", false, "Print markdown reports without terminal rendering")

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

// commands lists all the pas subcommands, per group.
var commands = map[string][]subcommands.Command{
	"ledger": {&updateCmd{}, &listCmd{}},
	"quotes": {&quoteCmd{}, &checkCmd{}},
	"help":   {&topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for group, cmds := range commands {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

// newLogger returns the application logger, at debug level in verbose mode.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	if *Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create logger, logs are disabled: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

// loadConfig loads the configuration, and validates it when the ledger is needed.
func loadConfig(needLedger bool) (config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return cfg, err
	}
	if needLedger {
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func newLedger(cfg config.Config, logger *zap.Logger) *lunchmoney.Client {
	return lunchmoney.New(cfg.LunchMoney.Token,
		lunchmoney.WithBaseURL(cfg.LunchMoney.BaseURL),
		lunchmoney.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		lunchmoney.WithLogger(logger),
	)
}

func newQuotes(cfg config.Config, logger *zap.Logger) *yahoo.Client {
	return yahoo.New(
		yahoo.WithBaseURL(cfg.Yahoo.BaseURL),
		yahoo.WithUserAgent(cfg.Yahoo.UserAgent),
		yahoo.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		yahoo.WithLogger(logger),
	)
}

// printMarkdown prints a markdown document rendered for the terminal.
func printMarkdown(md string) {
	if *rawOutput {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
