// Package eodhd fetches end of day prices from eodhd.com.
package eodhd

import (
	"context"
	"net/http"
	"strings"

	"github.com/etnz/pricedb"
	"github.com/etnz/pricedb/date"
)

// nice to redirect to https://eodhd.com/financial-summary/00XN.XETRA

// DefaultBaseURL is the eodhd API root.
const DefaultBaseURL = "https://eodhd.com/api"

// DemoKey is eodhd's public key, limited to a few tickers (MCD.US, EURUSD.FOREX...).
const DemoKey = "demo"

// Provider quotes forex pairs and exchange traded assets, in USD.
type Provider struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
}

// New returns a Provider using a daily cached client.
func New(apiKey string) *Provider {
	if apiKey == "" {
		apiKey = DemoKey
	}
	return &Provider{Client: pricedb.DailyClient(), BaseURL: DefaultBaseURL, APIKey: apiKey}
}

func (*Provider) Name() string        { return "eodhd" }
func (*Provider) Currency() string    { return "USD" }
func (*Provider) Blacklist() []string { return []string{} }

// Symbol returns "EURUSD.FOREX" for pairs and "BTC-USD.CC" for crypto currencies.
// Tickers are "CODE.EXCHANGE", US exchanges by default.
func (p *Provider) Symbol(c pricedb.Candidate) (string, bool) {
	if c.Symbol != "" {
		return c.Symbol, true
	}
	if pricedb.IsCrypto(c.Commodity) {
		return c.Commodity + "-" + c.Currency + ".CC", c.Kind == pricedb.Pair
	}
	switch c.Kind {
	case pricedb.Pair:
		// The Ticker for forex is in the format "fromCurrency+toCurrency.FOREX".
		return c.Commodity + c.Currency + ".FOREX", true
	case pricedb.Inverted:
		return c.Currency + c.Commodity + ".FOREX", true
	default:
		if strings.Contains(c.Commodity, ".") {
			return c.Commodity, true
		}
		return c.Commodity + ".US", true
	}
}

// Fetch returns the daily prices of ticker within w.
func (p *Provider) Fetch(ctx context.Context, ticker string, w date.Range) ([]pricedb.Point, error) {
	if strings.HasSuffix(ticker, ".FOREX") {
		// eodhd forex sucks, the so called close value is probably buggy and equal to the open most of the time.
		// Instead the open of the next day is the closer to the truth, so be it.
		return p.fetchPrices(ctx, ticker, w.From.Add(1), w.To.Add(1), true)
	}
	return p.fetchPrices(ctx, ticker, w.From, w.To, false)
}
