package dbbadger

import (
	"context"
	"sync"

	"github.com/timshannon/badgerhold/v4"

	"github.com/purse-network/purse/internal/core/domain"
)

const walletKey = "wallet"

type walletRepositoryImpl struct {
	db *DbManager
	// lock serializes read-modify-write cycles, badger transactions alone
	// do not protect the wallet's joint coin/address-book invariant.
	lock *sync.Mutex
}

// NewWalletRepositoryImpl returns a WalletRepository persisting the
// wallet as a single record of the given badgerhold store.
func NewWalletRepositoryImpl(db *DbManager) domain.WalletRepository {
	return &walletRepositoryImpl{
		db:   db,
		lock: &sync.Mutex{},
	}
}

func (r *walletRepositoryImpl) GetOrCreateWallet(
	ctx context.Context,
) (*domain.Wallet, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	wallet, err := r.getWallet()
	if err != nil {
		if err != ErrWalletNotFound {
			return nil, err
		}

		wallet, err = domain.NewWallet()
		if err != nil {
			return nil, err
		}
		if err := r.db.Store.Insert(walletKey, *wallet); err != nil {
			return nil, err
		}
	}

	return wallet, nil
}

func (r *walletRepositoryImpl) GetWallet(
	ctx context.Context,
) (*domain.Wallet, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.getWallet()
}

func (r *walletRepositoryImpl) UpdateWallet(
	ctx context.Context,
	updateFn func(w *domain.Wallet) (*domain.Wallet, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	wallet, err := r.getWallet()
	if err != nil {
		return err
	}

	updatedWallet, err := updateFn(wallet)
	if err != nil {
		return err
	}

	return r.db.Store.Update(walletKey, *updatedWallet)
}

func (r *walletRepositoryImpl) getWallet() (*domain.Wallet, error) {
	var wallet domain.Wallet
	if err := r.db.Store.Get(walletKey, &wallet); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}

	return &wallet, nil
}
