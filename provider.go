package pricedb

import (
	"context"
	"time"

	"github.com/etnz/pricedb/date"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=provider.go -destination=mock_provider_test.go -package=pricedb

// Point is one raw price point, in the shape a provider returns it.
type Point interface {
	// Quote returns when and at what value the point was quoted.
	// timed is false when the provider only knows the day of the quote.
	Quote() (at time.Time, value decimal.Decimal, timed bool, err error)
}

// Provider is a source of historical quotes.
type Provider interface {
	// Name identifies the provider in configuration and logs.
	Name() string
	// Currency is the currency quotes are expressed in.
	Currency() string
	// Blacklist returns the commodities the provider is known not to quote.
	Blacklist() []string
	// Symbol returns the provider's symbol for a candidate, or false if the
	// provider cannot express that kind of candidate.
	Symbol(c Candidate) (string, bool)
	// Fetch returns the points of symbol within w. Providers may return more
	// history than requested.
	Fetch(ctx context.Context, symbol string, w date.Range) ([]Point, error)
}
