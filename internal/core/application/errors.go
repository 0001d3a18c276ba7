package application

import "errors"

var (
	// ErrNullAmount ...
	ErrNullAmount = errors.New("amount must be greater than 0")
	// ErrNullTxID ...
	ErrNullTxID = errors.New("txid must not be null")
	// ErrNullAddress ...
	ErrNullAddress = errors.New("address must not be null")
)
