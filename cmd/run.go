package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricedb"
	"github.com/google/subcommands"
)

type runCmd struct {
	dryRun bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "fetch missing prices and merge them into the price database" }
func (*runCmd) Usage() string {
	return `lgp run [-n]

  Lists the commodities of the ledger journal, fetches their historical
  prices from the configured provider and appends the new price lines to
  the price database.

  Prices are fetched from the latest date already in the database, or from
  the first transaction of the journal for an empty database. Lines already
  in the database are never modified nor duplicated.

  See 'lgp topic config' for the environment variables.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "Fetch and report, but do not write the database.")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	provider, err := cfg.NewProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := update(ctx, cfg, cfg.NewJournal(), provider, c.dryRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, pricedb.ErrNoWindow) {
			fmt.Fprintln(os.Stderr, "Check that ledger can read the journal (LEDGER_BIN, LEDGER_FILE).")
		}
		return subcommands.ExitFailure
	}
	printMarkdown(report.Markdown())
	return subcommands.ExitSuccess
}

// update performs a whole price update of cfg's database, pricing the commodities
// of journal with provider.
func update(ctx context.Context, cfg Config, journal pricedb.Journal, provider pricedb.Provider, dryRun bool) (*pricedb.Report, error) {
	logger := cfg.Logger()

	// Fail before any network access if the result cannot be saved.
	if err := pricedb.CheckWritable(cfg.Database); err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	db, err := pricedb.ReadDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	run := pricedb.NewRun(db, journal, provider, opts, logger)
	report, err := run.Execute(ctx)
	if err != nil {
		return nil, err
	}
	if dryRun {
		logger.Infof("dry run: %d new lines not written to %s", report.Added(), cfg.Database)
		return report, nil
	}
	if err := pricedb.WriteDatabase(cfg.Database, db); err != nil {
		return nil, err
	}
	logger.Infof("%d new lines written to %s", report.Added(), cfg.Database)
	return report, nil
}
