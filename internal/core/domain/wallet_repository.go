package domain

import "context"

// WalletRepository is the persistence boundary of the wallet. Mutations
// go through UpdateWallet so that read-modify-write cycles run under the
// implementation's exclusive lock or transaction, preserving the
// single-writer assumption of the Wallet model.
type WalletRepository interface {
	// GetOrCreateWallet returns the stored wallet, creating and persisting
	// a fresh one if none exists yet.
	GetOrCreateWallet(ctx context.Context) (*Wallet, error)
	// GetWallet returns the stored wallet or fails if none exists.
	GetWallet(ctx context.Context) (*Wallet, error)
	// UpdateWallet applies updateFn to the stored wallet and persists the
	// returned value. If updateFn errors, nothing is persisted and the
	// error is returned as is.
	UpdateWallet(
		ctx context.Context,
		updateFn func(w *Wallet) (*Wallet, error),
	) error
}
