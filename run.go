package pricedb

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/pricedb/date"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// BlacklistSetting is the environment variable that configures the blacklist.
const BlacklistSetting = "LEDGER_PRICE_COMMODITY_BLACKLIST"

// Options configures a Run.
type Options struct {
	Format    Format
	Base      string    // base or reporting currency
	Blacklist []string  // nil means the provider's default blacklist
	Symbols   SymbolMap // explicit provider symbols per commodity
	Today     date.Date // zero means date.Today()
}

// Run is a single update of a price database.
//
// The existing price lines, the window and the commodity list are computed on
// first use and kept for the rest of the run.
type Run struct {
	db       *Database
	journal  Journal
	provider Provider
	opts     Options
	log      log.FieldLogger
	id       string

	prices      []string
	pricesDone  bool
	window      date.Range
	fromJournal bool
	windowDone  bool
	commodities []string
	listDone    bool
}

// NewRun returns a run updating db with quotes from provider.
func NewRun(db *Database, journal Journal, provider Provider, opts Options, logger log.FieldLogger) *Run {
	if opts.Today.IsZero() {
		opts.Today = date.Today()
	}
	if opts.Blacklist == nil {
		opts.Blacklist = provider.Blacklist()
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	id := uuid.NewString()
	return &Run{
		db:       db,
		journal:  journal,
		provider: provider,
		opts:     opts,
		id:       id,
		log:      logger.WithFields(log.Fields{"run": id, "provider": provider.Name()}),
	}
}

// Prices returns the price lines present in the database when the run started.
func (r *Run) Prices() []string {
	if !r.pricesDone {
		r.prices = r.opts.Format.PriceLines(r.db.Lines)
		r.pricesDone = true
		if _, _, err := r.opts.Format.LastDate(r.prices); err != nil {
			r.log.Warnf("ignoring unreadable price dates: %v", err)
		}
	}
	return r.prices
}

// Window returns the quote window of the run.
func (r *Run) Window(ctx context.Context) (date.Range, error) {
	if !r.windowDone {
		w, fromJournal, err := Window(ctx, r.opts.Format, r.Prices(), r.journal, r.opts.Today)
		if err != nil {
			return w, err
		}
		r.window, r.fromJournal, r.windowDone = w, fromJournal, true
	}
	return r.window, nil
}

// Commodities returns the commodities to price, in journal order.
func (r *Run) Commodities(ctx context.Context) ([]string, error) {
	if !r.listDone {
		listed, err := r.journal.Commodities(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not list the journal commodities: %w", err)
		}
		r.commodities = Commodities(listed, r.opts.Base, r.provider.Currency())
		r.listDone = true
	}
	return r.commodities, nil
}

// Blacklisted reports whether commodity must not be fetched.
func (r *Run) Blacklisted(commodity string) bool {
	return slices.Contains(r.opts.Blacklist, commodity)
}

// Symbols returns the provider symbols that would be tried for commodity, in order.
func (r *Run) Symbols(commodity string) []string {
	var symbols []string
	for _, c := range r.candidates(commodity) {
		if s, ok := r.provider.Symbol(c); ok {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

func (r *Run) candidates(commodity string) []Candidate {
	return Candidates(commodity, r.provider.Currency(), r.opts.Symbols[commodity])
}

// Execute fetches the prices of every commodity and merges them into the database.
//
// Only errors that prevent the whole run are returned: a commodity that cannot be
// priced is reported as failed and contributes no line.
func (r *Run) Execute(ctx context.Context) (*Report, error) {
	w, err := r.Window(ctx)
	if err != nil {
		return nil, err
	}
	commodities, err := r.Commodities(ctx)
	if err != nil {
		return nil, err
	}
	r.log.Infof("quote window %s", w)

	report := &Report{ID: r.id, Provider: r.provider.Name(), Window: w, FromJournal: r.fromJournal}
	merged := r.db.Lines
	for _, commodity := range commodities {
		logger := r.log.WithField("commodity", commodity)
		outcome := Outcome{Commodity: commodity}

		switch {
		case r.Blacklisted(commodity):
			logger.Infof("skipping %s: blacklisted, use %s to configure the blacklist", commodity, BlacklistSetting)
			outcome.Status = StatusBlacklisted
		case w.Days() == 0:
			outcome.Status = StatusUpToDate
		default:
			logger.Infof("getting historical quotes for %s", commodity)
			records, symbol, err := r.fetch(ctx, commodity, w)
			if err != nil {
				logger.Warnf("could not get quotes: %v", err)
				outcome.Status, outcome.Err = StatusFailed, err
				break
			}
			lines := make([]string, 0, len(records))
			for _, rec := range records {
				lines = append(lines, r.opts.Format.Line(rec))
			}
			before := len(merged)
			merged = Merge(merged, lines)

			outcome.Symbol, outcome.Fetched, outcome.Added = symbol, len(records), len(merged)-before
			outcome.Status = StatusAdded
			if outcome.Added == 0 {
				outcome.Status = StatusUpToDate
			}
			logger.WithField("symbol", symbol).Infof("%d quotes, %d new", outcome.Fetched, outcome.Added)
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	r.db.Lines = merged
	return report, nil
}

// fetch tries every candidate of commodity in order, and returns the records of
// the first one that yields quotes.
func (r *Run) fetch(ctx context.Context, commodity string, w date.Range) ([]PriceRecord, string, error) {
	var errs error
	for _, c := range r.candidates(commodity) {
		symbol, ok := r.provider.Symbol(c)
		if !ok {
			continue
		}
		logger := r.log.WithFields(log.Fields{"commodity": commodity, "symbol": symbol})

		points, err := r.provider.Fetch(ctx, symbol, w)
		if err != nil {
			logger.Debugf("%s candidate failed: %v", c.Kind, err)
			errs = errors.Join(errs, fmt.Errorf("%s: %w", symbol, err))
			continue
		}
		if len(points) == 0 {
			logger.Debugf("%s candidate returned no quote", c.Kind)
			errs = errors.Join(errs, fmt.Errorf("%s: empty response", symbol))
			continue
		}

		records, err := normalizeAll(points, c, w)
		if err != nil {
			logger.Debugf("%s candidate response is unreadable: %v", c.Kind, err)
			errs = errors.Join(errs, fmt.Errorf("%s: %w", symbol, err))
			continue
		}
		return records, symbol, nil
	}
	if errs == nil {
		return nil, "", fmt.Errorf("%w for %s: no symbol to query %s", ErrUnavailable, commodity, r.provider.Name())
	}
	return nil, "", fmt.Errorf("%w for %s: %w", ErrUnavailable, commodity, errs)
}

func normalizeAll(points []Point, c Candidate, w date.Range) ([]PriceRecord, error) {
	records := make([]PriceRecord, 0, len(points))
	for _, p := range points {
		rec, ok, err := Normalize(p, c, w)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, rec)
		}
	}
	return records, nil
}
