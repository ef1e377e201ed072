package pricedb

import (
	"time"

	"github.com/etnz/pricedb/date"
	"github.com/shopspring/decimal"
)

// daily is a test Point known by day only.
type daily struct {
	on    date.Date
	value string
}

func (p daily) Quote() (time.Time, decimal.Decimal, bool, error) {
	v, err := decimal.NewFromString(p.value)
	return p.on.At(12, 0, 0, time.UTC), v, false, err
}

// timed is a test Point with an intraday instant.
type timed struct {
	at    time.Time
	value string
}

func (p timed) Quote() (time.Time, decimal.Decimal, bool, error) {
	v, err := decimal.NewFromString(p.value)
	return p.at, v, true, err
}

// D is a helper for test to create dates from const.
func D(y int, m time.Month, d int) date.Date { return date.New(y, m, d) }

// USD is a helper for test to create usd prices from const.
func USD(v string) Price { return Price{Currency: "USD", Amount: decimal.RequireFromString(v)} }
