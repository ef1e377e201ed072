package pricedb

import (
	"fmt"
	"strings"

	"github.com/etnz/pricedb/date"
)

const (
	// DefaultTemplate is the ledger price directive.
	DefaultTemplate = "P %{date} %{time} %{symbol} %{price}"
	// DefaultDateFormat is the strftime pattern of dates in the database.
	DefaultDateFormat = "%Y/%m/%d"

	timeLayout = "15:04:05"
)

var placeholders = []string{"date", "time", "symbol", "price"}

// notBare are the characters ledger does not accept in an unquoted commodity.
const notBare = " \t\r\n0123456789.,;:?!-+*/^&|=<>{}[]()@"

// LedgerSymbol returns commodity as ledger writes it: quoted unless it is a bare
// symbol, as in "VANGUARD 500".
func LedgerSymbol(commodity string) string {
	if len(commodity) >= 2 && strings.HasPrefix(commodity, `"`) && strings.HasSuffix(commodity, `"`) {
		return commodity
	}
	if strings.ContainsAny(commodity, notBare) {
		return `"` + commodity + `"`
	}
	return commodity
}

// Format describes how price lines are written to, and read from, the database.
//
// Placeholders in Template are written either "{name}" or "%{name}".
// Deduplication is purely textual, so a Format must stay the same across runs.
type Format struct {
	Template   string
	DateFormat string
}

// DefaultFormat returns the ledger price directive format.
func DefaultFormat() Format {
	return Format{Template: DefaultTemplate, DateFormat: DefaultDateFormat}
}

// Validate checks that the format can both write and read back price lines.
func (f Format) Validate() error {
	for _, name := range []string{"date", "symbol", "price"} {
		if !strings.Contains(f.Template, "{"+name+"}") {
			return fmt.Errorf("price format %q has no {%s} placeholder", f.Template, name)
		}
	}
	if f.directive() == "" {
		return fmt.Errorf("price format %q must start with a directive such as \"P \"", f.Template)
	}
	if strings.ContainsAny(f.DateFormat, " \t") {
		return fmt.Errorf("date format %q must not contain blanks", f.DateFormat)
	}
	if f.DateFormat == "" {
		return fmt.Errorf("date format is empty")
	}
	return nil
}

// directive returns the literal text that starts every price line.
func (f Format) directive() string {
	prefix, _, _ := strings.Cut(f.Template, "{")
	return strings.TrimSuffix(prefix, "%")
}

// dateField returns the index of the date among the blank separated fields of a line.
func (f Format) dateField() int {
	for i, field := range strings.Fields(f.Template) {
		if strings.Contains(field, "{date}") {
			return i
		}
	}
	return 1
}

// IsPrice reports whether line is a price line.
func (f Format) IsPrice(line string) bool {
	return strings.HasPrefix(line, f.directive())
}

// PriceLines returns the price lines among lines, in order.
func (f Format) PriceLines(lines []string) []string {
	var prices []string
	for _, line := range lines {
		if f.IsPrice(line) {
			prices = append(prices, line)
		}
	}
	return prices
}

// Date reads the date of a price line.
func (f Format) Date(line string) (date.Date, error) {
	fields := strings.Fields(line)
	i := f.dateField()
	if i >= len(fields) {
		return date.Date{}, fmt.Errorf("price line %q has no date field", line)
	}
	return date.ParseFormat(f.DateFormat, fields[i])
}

// Line formats a record as a price line. The symbol is quoted when ledger
// requires it.
//
// It panics if the record has no symbol: this is a bug in the caller.
func (f Format) Line(r PriceRecord) string {
	if r.Symbol == "" {
		panic("pricedb: formatting a price record without a symbol")
	}
	values := map[string]string{
		"date":   date.Of(r.Time).Format(f.DateFormat),
		"time":   r.Time.Format(timeLayout),
		"symbol": LedgerSymbol(r.Symbol),
		"price":  r.Price.String(),
	}
	pairs := make([]string, 0, 4*len(placeholders))
	for _, name := range placeholders {
		pairs = append(pairs, "%{"+name+"}", values[name], "{"+name+"}", values[name])
	}
	return strings.NewReplacer(pairs...).Replace(f.Template)
}
