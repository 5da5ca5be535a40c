package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricedassets"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "check asset descriptors" }
func (*checkCmd) Usage() string {
	return `pas check <descriptor>...

  Parses asset descriptors, and prints their canonical form and value.

Usage Examples:
$ pas check "Apple [AAPL]: 10 @ USD 227.52"

`
}
func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (*checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one descriptor expected")
		return subcommands.ExitUsageError
	}
	status := subcommands.ExitSuccess
	for _, text := range f.Args() {
		a, err := pricedassets.Parse(text)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			status = subcommands.ExitFailure
			continue
		}
		if m, ok := a.Money(); ok {
			fmt.Fprintf(stdout, "%s = %s\n", a, m)
			continue
		}
		fmt.Fprintln(stdout, a)
	}
	return status
}
