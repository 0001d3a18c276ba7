package domain

import "errors"

var (
	// ErrAddressNotFound is thrown when ingesting an output paying to an
	// address with no registered key pair.
	ErrAddressNotFound = errors.New("address is not registered in the wallet")
	// ErrInsufficientFunds is thrown when the requested spend amount exceeds
	// the wallet balance.
	ErrInsufficientFunds = errors.New("balance is not enough to cover the requested amount")
)
