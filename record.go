package pricedb

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is an amount expressed in a currency, rendered as a ledger amount with a
// currency prefix (e.g. "USD1.0945").
type Price struct {
	Currency string
	Amount   decimal.Decimal
}

// String returns the ledger representation of the price.
func (p Price) String() string { return p.Currency + p.Amount.String() }

// PriceRecord asserts that, at Time, one unit of Symbol was worth Price.
type PriceRecord struct {
	Time   time.Time
	Symbol string
	Price  Price
}
