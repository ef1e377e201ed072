package pricedb

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// Kind tells how a candidate symbol relates to the priced commodity.
type Kind int

const (
	// Direct is the commodity itself, quoted in the provider's currency.
	Direct Kind = iota
	// Pair is the commodity against the quote currency: one commodity in currency.
	Pair
	// Inverted is the quote currency against the commodity: its value is inverted.
	Inverted
)

func (k Kind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Pair:
		return "pair"
	case Inverted:
		return "inverted"
	default:
		return "unknown"
	}
}

// Candidate is one way of asking a provider for the price of a commodity.
type Candidate struct {
	Commodity string // as written in the database
	Currency  string // the currency the price is expressed in
	Kind      Kind
	Symbol    string // explicit provider symbol, if any
}

// IsCurrency reports whether code is an ISO 4217 currency.
func IsCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// cryptoCurrencies are crypto currency codes. Several of them are also stock
// tickers, BTC and ETH among them, so they must never be tried as tickers first.
var cryptoCurrencies = map[string]bool{
	"BTC": true, "ETH": true, "LTC": true, "BCH": true, "XRP": true, "ADA": true,
	"DOGE": true, "DOT": true, "SOL": true, "XLM": true, "USDT": true, "USDC": true,
}

// IsCrypto reports whether code is a well known crypto currency.
func IsCrypto(code string) bool { return cryptoCurrencies[strings.ToUpper(code)] }

// Candidates returns the candidates for commodity, most likely to succeed first.
//
// Currencies, crypto currencies included, are tried as a pair first, then as an
// inverted pair and then directly, anything else directly first. Explicit symbols replace the generated candidates.
func Candidates(commodity, currency string, symbols []string) []Candidate {
	if len(symbols) > 0 {
		candidates := make([]Candidate, 0, len(symbols))
		for _, s := range symbols {
			candidates = append(candidates, Candidate{Commodity: commodity, Currency: currency, Kind: Direct, Symbol: s})
		}
		return candidates
	}
	kinds := []Kind{Direct, Pair, Inverted}
	if IsCurrency(commodity) || IsCrypto(commodity) {
		kinds = []Kind{Pair, Inverted, Direct}
	}
	candidates := make([]Candidate, 0, len(kinds))
	for _, k := range kinds {
		candidates = append(candidates, Candidate{Commodity: commodity, Currency: currency, Kind: k})
	}
	return candidates
}
