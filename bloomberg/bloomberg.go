// Package bloomberg fetches historical prices from Bloomberg's bulk time series API.
package bloomberg

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/pricedb"
	"github.com/etnz/pricedb/date"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the bulk time series endpoint.
const DefaultBaseURL = "https://www.bloomberg.com/markets/api/bulk-time-series/price/"

// the endpoint only answers to browsers.
var browserHeader = http.Header{
	"User-Agent":      {"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_14_4) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/73.0.3683.86 Safari/537.36"},
	"Accept":          {"text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3"},
	"Accept-Language": {"en-US,en;q=0.9"},
	"Cookie":          {""},
}

// Provider quotes everything in USD.
type Provider struct {
	Client  *http.Client
	BaseURL string
}

// New returns a Provider using a daily cached client.
func New() *Provider {
	return &Provider{Client: pricedb.DailyClient(), BaseURL: DefaultBaseURL}
}

func (*Provider) Name() string     { return "bloomberg" }
func (*Provider) Currency() string { return "USD" }

// Blacklist returns BTC and ETH: Bloomberg doesn't quote them.
func (*Provider) Blacklist() []string { return []string{"BTC", "ETH"} }

// Symbol returns "EURUSD:CUR" for pairs, and the commodity itself otherwise.
func (p *Provider) Symbol(c pricedb.Candidate) (string, bool) {
	if c.Symbol != "" {
		return c.Symbol, true
	}
	// Bloomberg tickers carry their market, "AAPL:US".
	ticker := strings.Contains(c.Commodity, ":")
	switch c.Kind {
	case pricedb.Pair:
		return c.Commodity + c.Currency + ":CUR", !ticker
	case pricedb.Inverted:
		return c.Currency + c.Commodity + ":CUR", !ticker
	default:
		return c.Commodity, ticker
	}
}

// timeFrame returns the shortest time frame that covers w.
func timeFrame(w date.Range) string {
	switch days := w.Days(); {
	case days <= 1:
		return "1_DAY"
	case days <= 31:
		return "1_MONTH"
	case days <= 365:
		return "1_YEAR"
	default:
		return "5_YEAR"
	}
}

// Fetch returns the daily closes of symbol. Bloomberg only supports relative time
// frames, so the response covers at least w and usually more.
func (p *Provider) Fetch(ctx context.Context, symbol string, w date.Range) ([]pricedb.Point, error) {
	addr := fmt.Sprintf("%s%s?timeFrame=%s", p.BaseURL, symbol, timeFrame(w))

	var jobj any
	if err := pricedb.GetJSON(ctx, p.Client, addr, browserHeader, &jobj); err != nil {
		return nil, err
	}
	if _, ok := jobj.([]any); !ok {
		return nil, fmt.Errorf("could not parse response from Bloomberg: %v", jobj)
	}

	path := "$[0].price"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("could not get quotes for %s: %q %w", symbol, path, err)
	}
	prices, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("could not get quotes for %s: %v", symbol, jval)
	}

	points := make([]pricedb.Point, 0, len(prices))
	for _, v := range prices {
		points = append(points, point{v})
	}
	return points, nil
}

// point is one {"date": "2024-01-02", "value": 1.0945} entry.
type point struct{ raw any }

func (p point) Quote() (at time.Time, value decimal.Decimal, timed bool, err error) {
	m, ok := p.raw.(map[string]any)
	if !ok {
		return at, value, false, fmt.Errorf("unexpected bloomberg price %v", p.raw)
	}
	str, ok := m["date"].(string)
	if !ok {
		return at, value, false, fmt.Errorf("bloomberg price without date: %v", p.raw)
	}
	day, err := date.Parse(str)
	if err != nil {
		return at, value, false, err
	}
	f, ok := m["value"].(float64)
	if !ok {
		return at, value, false, fmt.Errorf("bloomberg price without value: %v", p.raw)
	}
	return day.EndOfDay(time.UTC), decimal.NewFromFloat(f), false, nil
}
