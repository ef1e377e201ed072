package pricedb

import (
	"fmt"
	"time"

	"github.com/etnz/pricedb/date"
	"github.com/shopspring/decimal"
)

// InvertedPrecision is the number of decimals kept when inverting a pair.
const InvertedPrecision = 8

// Normalize turns a raw point fetched for c into a PriceRecord.
//
// Points only known by day are set at the end of that day. ok is false when the
// record falls outside w.
func Normalize(p Point, c Candidate, w date.Range) (r PriceRecord, ok bool, err error) {
	at, value, timed, err := p.Quote()
	if err != nil {
		return r, false, err
	}
	if !timed {
		at = date.Of(at).EndOfDay(time.UTC)
	}
	if !w.Contains(date.Of(at)) {
		return r, false, nil
	}
	if !value.IsPositive() {
		return r, false, fmt.Errorf("invalid quote %s for %s on %s", value, c.Commodity, date.Of(at))
	}
	if c.Kind == Inverted {
		value = decimal.NewFromInt(1).DivRound(value, InvertedPrecision)
	}
	return PriceRecord{
		Time:   at,
		Symbol: c.Commodity,
		Price:  Price{Currency: c.Currency, Amount: value},
	}, true, nil
}
