package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricedassets"
	"github.com/etnz/pricedassets/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type updateCmd struct {
	dryRun bool
	report bool
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "update priced assets in Lunch Money with Yahoo Finance quotes"
}
func (*updateCmd) Usage() string {
	return `pas update [-dry-run] [-report]

  Updates every priced asset of the Lunch Money ledger: fetches the current
  price of its symbol, and writes back its name, currency and balance.

  Assets whose name is not a descriptor are left untouched, see 'pas topic descriptor'.
  A failure on one asset is logged and does not stop the update of the others.

`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "dry-run", false, "fetch quotes but do not write to the ledger")
	f.BoolVar(&c.report, "report", false, "print a summary of the update")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	logger := newLogger()
	defer logger.Sync()

	updater := &pricedassets.Updater{
		Ledger: newLedger(cfg, logger),
		Quotes: newQuotes(cfg, logger),
		Logger: logger,
		DryRun: c.dryRun,
	}
	results, err := updater.UpdateAll(ctx)
	if err != nil {
		logger.Error("update aborted", zap.Error(err))
		return subcommands.ExitFailure
	}

	if c.report {
		printMarkdown(renderer.ResultsMarkdown(results))
	}
	return subcommands.ExitSuccess
}
