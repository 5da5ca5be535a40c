package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricedassets"
	"github.com/etnz/pricedassets/renderer"
	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "print the current quote of symbols" }
func (*quoteCmd) Usage() string {
	return `pas quote <symbol>...

  Prints the current price and currency of Yahoo Finance symbols.

Usage Examples:
$ pas quote AAPL IWDA.AS

`
}
func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (*quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one symbol expected")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	logger := newLogger()
	defer logger.Sync()

	provider := newQuotes(cfg, logger)
	status := subcommands.ExitSuccess
	var quotes []pricedassets.Quote
	for _, symbol := range f.Args() {
		q, err := provider.Quote(ctx, symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", &pricedassets.QuoteFetchError{Symbol: symbol, Err: err})
			status = subcommands.ExitFailure
			continue
		}
		quotes = append(quotes, q)
	}
	if len(quotes) > 0 {
		printMarkdown(renderer.QuotesMarkdown(quotes))
	}
	return status
}
