package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/pricedb"
	"github.com/google/subcommands"
)

type planCmd struct{}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "show what a run would fetch, without fetching" }
func (*planCmd) Usage() string {
	return `lgp plan

  Shows the quote window and, for every commodity of the journal, the
  provider symbols a run would try, in order. Nothing is fetched and the
  database is not modified.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {}

func (c *planCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	md, err := plan(ctx, cfg, cfg.NewJournal())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// plan describes, in markdown, the run cfg would perform on journal.
func plan(ctx context.Context, cfg Config, journal pricedb.Journal) (string, error) {
	opts, err := cfg.Options()
	if err != nil {
		return "", err
	}
	provider, err := cfg.NewProvider()
	if err != nil {
		return "", err
	}
	db, err := pricedb.ReadDatabase(cfg.Database)
	if err != nil {
		return "", err
	}
	run := pricedb.NewRun(db, journal, provider, opts, cfg.Logger())
	w, err := run.Window(ctx)
	if err != nil {
		return "", err
	}
	commodities, err := run.Commodities(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Price update plan\n\n")
	fmt.Fprintf(&b, "Provider **%s**, prices in %s, window %s (%d days).\n\n", provider.Name(), provider.Currency(), w, w.Days())
	fmt.Fprintf(&b, "| Commodity | Symbols |\n|:---|:---|\n")
	for _, commodity := range commodities {
		symbols := "*blacklisted*"
		if !run.Blacklisted(commodity) {
			symbols = strings.Join(run.Symbols(commodity), ", ")
		}
		if symbols == "" {
			symbols = "*none*"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", commodity, symbols)
	}
	return b.String(), nil
}
