package pricedb

import (
	"reflect"
	"testing"
)

func TestCommodities(t *testing.T) {
	testCases := []struct {
		name     string
		listed   []string
		base     string
		currency string
		want     []string
	}{
		{"base is the quote currency", []string{"$", "EUR", "USD", "AAPL"}, "USD", "USD", []string{"EUR", "AAPL"}},
		{"base is priced", []string{"$", "USD", "GBP"}, "EUR", "USD", []string{"GBP", "EUR"}},
		{"duplicates", []string{"EUR", "EUR", "GBP"}, "EUR", "USD", []string{"EUR", "GBP"}},
		{"empty journal", nil, "CHF", "USD", []string{"CHF"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Commodities(tc.listed, tc.base, tc.currency)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Commodities() = %q, want %q", got, tc.want)
			}
		})
	}
}
