package kakeibo

import "errors"

var (
	// ErrInvalidID is returned when removing an id that is zero or not in the ledger.
	ErrInvalidID = errors.New("invalid item id")

	// ErrNotFound is returned when looking up an id that is not in the ledger.
	ErrNotFound = errors.New("item not found")
)
