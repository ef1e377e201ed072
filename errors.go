package pricedb

import "errors"

var (
	// ErrNoDatabasePath is returned when no price database path is configured.
	ErrNoDatabasePath = errors.New("price database path is not set")
	// ErrNoWindow is returned when the fetch window cannot be established.
	ErrNoWindow = errors.New("cannot establish the quote window")
	// ErrUnavailable is returned when no candidate symbol yields quotes for a commodity.
	ErrUnavailable = errors.New("no quotes available")
)
