package inmemory

import (
	"context"
	"sync"

	"github.com/purse-network/purse/internal/core/domain"
)

// WalletRepositoryImpl represents an in memory storage for the wallet.
// A single RWMutex guards both the coin collection and the address book
// so that their joint invariant is maintained atomically.
type WalletRepositoryImpl struct {
	wallet *domain.Wallet
	lock   *sync.RWMutex
}

// NewWalletRepositoryImpl returns a new empty WalletRepositoryImpl.
func NewWalletRepositoryImpl() *WalletRepositoryImpl {
	return &WalletRepositoryImpl{
		lock: &sync.RWMutex{},
	}
}

// GetOrCreateWallet returns the stored wallet, creating a fresh one with
// its default key pair if the repository is still empty.
func (r *WalletRepositoryImpl) GetOrCreateWallet(
	ctx context.Context,
) (*domain.Wallet, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.wallet == nil {
		w, err := domain.NewWallet()
		if err != nil {
			return nil, err
		}
		r.wallet = w
	}

	return r.wallet.Clone(), nil
}

// GetWallet returns a copy of the stored wallet.
func (r *WalletRepositoryImpl) GetWallet(
	ctx context.Context,
) (*domain.Wallet, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.wallet == nil {
		return nil, ErrWalletNotFound
	}

	return r.wallet.Clone(), nil
}

// UpdateWallet applies updateFn to a copy of the stored wallet and swaps
// it in on success. A failing updateFn leaves the stored wallet
// untouched.
func (r *WalletRepositoryImpl) UpdateWallet(
	ctx context.Context,
	updateFn func(w *domain.Wallet) (*domain.Wallet, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.wallet == nil {
		return ErrWalletNotFound
	}

	updatedWallet, err := updateFn(r.wallet.Clone())
	if err != nil {
		return err
	}

	r.wallet = updatedWallet
	return nil
}
