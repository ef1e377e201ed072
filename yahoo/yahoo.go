// Package yahoo fetches daily closes from the Yahoo Finance chart API.
package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/etnz/pricedb"
	"github.com/etnz/pricedb/date"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the chart endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// Provider quotes in USD.
type Provider struct {
	Client  *http.Client
	BaseURL string
}

// New returns a Provider using a daily cached client.
func New() *Provider {
	return &Provider{Client: pricedb.DailyClient(), BaseURL: DefaultBaseURL}
}

func (*Provider) Name() string        { return "yahoo" }
func (*Provider) Currency() string    { return "USD" }
func (*Provider) Blacklist() []string { return []string{} }

// Symbol returns "EURUSD=X" for currency pairs, "BTC-USD" for crypto currencies
// and the commodity itself otherwise.
//
// Yahoo has no inverted crypto pair, and crypto codes are never asked as
// tickers: "BTC" and "ETH" are listed stocks.
func (p *Provider) Symbol(c pricedb.Candidate) (string, bool) {
	if c.Symbol != "" {
		return c.Symbol, true
	}
	forex := pricedb.IsCurrency(c.Commodity) && pricedb.IsCurrency(c.Currency) && !pricedb.IsCrypto(c.Commodity)
	switch c.Kind {
	case pricedb.Pair:
		if forex {
			return c.Commodity + c.Currency + "=X", true
		}
		return c.Commodity + "-" + c.Currency, true
	case pricedb.Inverted:
		return c.Currency + c.Commodity + "=X", forex
	default:
		return c.Commodity, !pricedb.IsCrypto(c.Commodity)
	}
}

// chart is the response structure from Yahoo Finance chart API.
type chart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency  string `json:"currency"`
				GMTOffset int    `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch returns the daily closes of symbol within w.
func (p *Provider) Fetch(ctx context.Context, symbol string, w date.Range) ([]pricedb.Point, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("period1", fmt.Sprint(w.From.Unix()))
	q.Set("period2", fmt.Sprint(w.To.Add(1).Unix()))
	addr := p.BaseURL + url.PathEscape(symbol) + "?" + q.Encode()

	header := http.Header{"User-Agent": {"Mozilla/5.0"}}
	var c chart
	if err := pricedb.GetJSON(ctx, p.Client, addr, header, &c); err != nil {
		return nil, err
	}
	if c.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", c.Chart.Error.Description)
	}
	if len(c.Chart.Result) == 0 || len(c.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	result := c.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	// bars are dated in the exchange's time zone.
	loc := time.FixedZone("exchange", result.Meta.GMTOffset)
	points := make([]pricedb.Point, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue // skip null bars (holidays etc.)
		}
		points = append(points, bar{At: time.Unix(ts, 0).In(loc), Close: *closes[i]})
	}
	return points, nil
}

// bar is one daily bar. Its timestamp is the session start, only its day matters.
type bar struct {
	At    time.Time
	Close float64
}

func (b bar) Quote() (time.Time, decimal.Decimal, bool, error) {
	return date.Of(b.At).EndOfDay(time.UTC), decimal.NewFromFloat(b.Close), false, nil
}
