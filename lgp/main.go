// Command lgp updates a ledger price database with historical prices.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pricedb/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	cmd.Register(commander)

	flag.Parse()
	// A bare invocation updates the database.
	if flag.NArg() == 0 {
		if err := flag.CommandLine.Parse([]string{"run"}); err != nil {
			os.Exit(int(subcommands.ExitUsageError))
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
