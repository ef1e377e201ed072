package pricedb

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/pricedb/date"
)

// LastDate returns the latest date among price lines.
//
// Lines whose date cannot be read are ignored and reported in err; ok is false when
// no date could be read at all.
func (f Format) LastDate(prices []string) (last date.Date, ok bool, err error) {
	for _, line := range prices {
		day, perr := f.Date(line)
		if perr != nil {
			err = errors.Join(err, perr)
			continue
		}
		if !ok || day.After(last) {
			last, ok = day, true
		}
	}
	return last, ok, err
}

// Window computes the quote window of a run.
//
// It starts at the latest date of the existing price lines, inclusive, so that
// prices of that same day can be refreshed. For a database without prices, it
// starts at the first transaction of the journal. It ends today.
func Window(ctx context.Context, f Format, prices []string, journal Journal, today date.Date) (w date.Range, fromJournal bool, err error) {
	last, ok, _ := f.LastDate(prices)
	if ok {
		return date.NewRange(last, today), false, nil
	}
	first, err := journal.FirstDate(ctx)
	if err != nil {
		return w, true, fmt.Errorf("%w: the database has no price and the journal start is unknown: %w", ErrNoWindow, err)
	}
	if first.IsZero() {
		return w, true, fmt.Errorf("%w: the journal has no transaction date", ErrNoWindow)
	}
	return date.NewRange(first, today), true, nil
}
