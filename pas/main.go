// Command pas keeps the priced assets of a Lunch Money ledger in sync with Yahoo Finance quotes.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pricedassets/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	// Returns immediately unless the shell is asking for completions.
	cmd.Completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
