package pricedb

import (
	"context"
	"slices"

	"github.com/etnz/pricedb/date"
)

//go:generate mockgen -source=journal.go -destination=mock_journal_test.go -package=pricedb

// Journal is the ledger journal whose commodities are priced.
type Journal interface {
	// Commodities returns the commodities used in the journal, one code per entry.
	Commodities(ctx context.Context) ([]string, error)
	// FirstDate returns the date of the earliest transaction of the journal.
	FirstDate(ctx context.Context) (date.Date, error)
}

// Commodities builds the list of commodities to price from the journal's list.
//
// The "$" entry is dropped, base is appended so that a relative price for it can be
// recorded, and currency, the currency quotes are expressed in, is removed. Order is
// preserved and duplicates are removed.
func Commodities(listed []string, base, currency string) []string {
	seen := map[string]struct{}{"$": {}, "": {}, currency: {}}
	var commodities []string
	for _, c := range slices.Concat(listed, []string{base}) {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		commodities = append(commodities, c)
	}
	return commodities
}
