package pricedb

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/etnz/pricedb/date"
)

// Status is the outcome of pricing one commodity.
type Status string

const (
	StatusAdded       Status = "added"
	StatusUpToDate    Status = "up-to-date"
	StatusBlacklisted Status = "blacklisted"
	StatusFailed      Status = "failed"
)

// Outcome reports what happened to one commodity during a run.
type Outcome struct {
	Commodity string
	Status    Status
	Symbol    string // provider symbol that answered
	Fetched   int    // records within the window
	Added     int    // lines appended to the database
	Err       error
}

// Report summarizes a run.
type Report struct {
	ID          string
	Provider    string
	Window      date.Range
	FromJournal bool // the window starts at the journal's first transaction
	Outcomes    []Outcome
}

// Added returns the total number of lines appended to the database.
func (r *Report) Added() (n int) {
	for _, o := range r.Outcomes {
		n += o.Added
	}
	return n
}

// Failed returns the outcomes of commodities that could not be priced.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Markdown renders the report as a markdown document.
func (r *Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Price update\n\n")

	since := humanize.Time(r.Window.From.EndOfDay(time.Local))
	origin := "the latest price"
	if r.FromJournal {
		origin = "the first transaction"
	}
	fmt.Fprintf(&b, "Provider **%s**, window %s, starting at %s (%s).\n\n", r.Provider, r.Window, origin, since)
	if r.ID != "" {
		fmt.Fprintf(&b, "Run `%s`.\n\n", r.ID)
	}

	if len(r.Outcomes) == 0 {
		fmt.Fprintf(&b, "No commodity to price.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "| Commodity | Status | Symbol | Fetched | Added |\n")
	fmt.Fprintf(&b, "|:---|:---|:---|---:|---:|\n")
	for _, o := range r.Outcomes {
		symbol := o.Symbol
		if symbol == "" {
			symbol = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %d |\n", o.Commodity, o.Status, symbol, o.Fetched, o.Added)
	}
	fmt.Fprintf(&b, "\n**%d** new price lines.\n", r.Added())

	if failed := r.Failed(); len(failed) > 0 {
		fmt.Fprintf(&b, "\n## Failures\n\nIt may be worthwhile getting these prices manually.\n\n")
		for _, o := range failed {
			fmt.Fprintf(&b, "- **%s**: %s\n", o.Commodity, strings.ReplaceAll(fmt.Sprint(o.Err), "\n", "; "))
		}
	}
	return b.String()
}
