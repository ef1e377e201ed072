// Package binance fetches daily crypto prices from Binance spot klines.
package binance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/etnz/pricedb"
	"github.com/etnz/pricedb/date"
	"github.com/shopspring/decimal"
)

// maxLimit is the largest number of klines binance returns per request.
const maxLimit = 1000

// Provider quotes crypto currencies in USDT.
type Provider struct {
	client *binance.Client
}

// New returns a Provider. Keys are optional for market data.
func New(apiKey, secretKey string) *Provider {
	return &Provider{client: binance.NewClient(apiKey, secretKey)}
}

// WithBaseURL points the provider at another endpoint (testnet, tests).
func (p *Provider) WithBaseURL(baseURL string) *Provider {
	p.client.BaseURL = baseURL
	return p
}

func (*Provider) Name() string        { return "binance" }
func (*Provider) Currency() string    { return "USDT" }
func (*Provider) Blacklist() []string { return []string{} }

// Symbol returns "BTCUSDT" for pairs. Direct symbols must be given explicitly.
func (p *Provider) Symbol(c pricedb.Candidate) (string, bool) {
	if c.Symbol != "" {
		return c.Symbol, true
	}
	switch c.Kind {
	case pricedb.Pair:
		return c.Commodity + c.Currency, true
	case pricedb.Inverted:
		return c.Currency + c.Commodity, true
	default:
		return "", false
	}
}

// Fetch returns the daily klines of symbol within w, paging through the window.
func (p *Provider) Fetch(ctx context.Context, symbol string, w date.Range) ([]pricedb.Point, error) {
	var points []pricedb.Point
	from := w.From.Unix() * 1000
	end := w.To.Add(1).Unix()*1000 - 1

	for from <= end {
		klines, err := p.client.NewKlinesService().
			Symbol(symbol).
			Interval("1d").
			StartTime(from).
			EndTime(end).
			Limit(maxLimit).
			Do(ctx)
		if err != nil {
			var apiErr *common.APIError
			if errors.As(err, &apiErr) {
				return nil, fmt.Errorf("binance api error %d: %s", apiErr.Code, apiErr.Message)
			}
			return nil, err
		}
		if len(klines) == 0 {
			break
		}
		for _, k := range klines {
			points = append(points, kline{CloseTime: k.CloseTime, Close: k.Close})
		}
		last := klines[len(klines)-1]
		from = last.CloseTime + 1
		if len(klines) < maxLimit {
			break
		}
	}
	return points, nil
}

// kline is a daily candle: it closes at 23:59:59.999 UTC.
type kline struct {
	CloseTime int64
	Close     string
}

func (k kline) Quote() (time.Time, decimal.Decimal, bool, error) {
	value, err := decimal.NewFromString(k.Close)
	if err != nil {
		return time.Time{}, value, false, fmt.Errorf("parsing close price %q: %w", k.Close, err)
	}
	at := time.UnixMilli(k.CloseTime).UTC().Truncate(time.Second)
	return at, value, true, nil
}
