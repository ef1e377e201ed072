package eodhd

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/etnz/pricedb"
	"github.com/etnz/pricedb/date"
	"github.com/shopspring/decimal"
)

// This file contains functions to access the EODHD API.

// fetchPrices returns the daily prices for a given EODHD ticker.
// The EODHD ticker format is typically "SYMBOL.EXCHANGECODE".
//
// When nextOpen is set, each day is priced with the open of the next day.
func (p *Provider) fetchPrices(ctx context.Context, ticker string, from, to date.Date, nextOpen bool) ([]pricedb.Point, error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json
	// [
	//
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },

	// bounds are included in the response, and time is limited to 1 year with free subscription.
	q := url.Values{}
	q.Set("fmt", "json")
	q.Set("api_token", p.APIKey)
	q.Set("from", from.String())
	q.Set("to", to.String())
	addr := fmt.Sprintf("%s/eod/%s?%s", p.BaseURL, url.PathEscape(ticker), q.Encode())

	// that's the payload
	content := make([]eod, 0)
	if err := pricedb.GetJSON(ctx, p.Client, addr, nil, &content); err != nil {
		return nil, err
	}

	points := make([]pricedb.Point, 0, len(content))
	for _, info := range content {
		if nextOpen {
			info = eod{Date: info.Date.Add(-1), Close: info.Open}
		}
		if info.Close.IsZero() {
			continue // no trade that day
		}
		points = append(points, info)
	}
	return points, nil
}

// eod is one day of the eod endpoint.
type eod struct {
	Date  date.Date       `json:"date"`
	Close decimal.Decimal `json:"close"`
	Open  decimal.Decimal `json:"open"`
	// AdjustedClose decimal.Decimal        `json:"adjusted_close"`
}

func (e eod) Quote() (time.Time, decimal.Decimal, bool, error) {
	if e.Date.IsZero() {
		return time.Time{}, e.Close, false, fmt.Errorf("eodhd price without date")
	}
	return e.Date.EndOfDay(time.UTC), e.Close, false, nil
}
