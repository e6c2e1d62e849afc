package store

import "errors"

// Sentinel errors returned by the credential store and the ledger. Handlers
// match on these to pick the user-visible message; anything else is an
// infrastructure failure.
var (
	// ErrInvalidInput flags an empty or malformed registration field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyExists flags a duplicate username on register.
	ErrAlreadyExists = errors.New("username taken")
	// ErrNotFound flags a transaction id with no row behind it.
	ErrNotFound = errors.New("transaction not found")
	// ErrNotOwner flags a transaction that belongs to a different user.
	ErrNotOwner = errors.New("not the owner")
	// ErrInvalidAmount flags a non-numeric or non-positive amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidType flags a type other than deposit or withdraw.
	ErrInvalidType = errors.New("invalid type")
)
