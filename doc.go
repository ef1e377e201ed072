// Package pricedb maintains a ledger price database: a flat, line oriented file of
// price directives such as
//
//	P 2024/01/02 23:59:59 EUR USD1.0945
//
// For every commodity of a ledger journal, a Run fetches historical quotes from a
// Provider and merges the new price lines into the existing database without
// duplicating the ones already present.
//
// The main pieces are:
//   - Window calculation: new prices are fetched from the latest date already in the
//     database, or from the first transaction of the journal for a fresh database.
//   - Candidate resolution: a commodity is turned into an ordered list of provider
//     symbols (currency pair, inverted pair, direct ticker), tried in order until one
//     of them yields quotes.
//   - Normalization: provider specific points are turned into PriceRecords, then
//     formatted as lines with the database's Format.
//   - Merge: existing lines are kept in order, untouched, and only lines that are not
//     already present are appended.
//
// This package serves as the foundational logic for the `lgp` command-line tool.
package pricedb
