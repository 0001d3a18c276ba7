package dbbadger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"

	"github.com/purse-network/purse/internal/core/domain"
)

func TestGetOrCreateWallet(t *testing.T) {
	repo, cleanup := newTestRepository(t, "")
	defer cleanup()
	ctx := context.Background()

	_, err := repo.GetWallet(ctx)
	require.EqualError(t, err, ErrWalletNotFound.Error())

	w, err := repo.GetOrCreateWallet(ctx)
	require.NoError(t, err)
	require.NotNil(t, w)

	sameWallet, err := repo.GetOrCreateWallet(ctx)
	require.NoError(t, err)
	require.Equal(t, w.DefaultKey, sameWallet.DefaultKey)
}

func TestUpdateWallet(t *testing.T) {
	repo, cleanup := newTestRepository(t, "")
	defer cleanup()
	ctx := context.Background()

	_, err := repo.GetOrCreateWallet(ctx)
	require.NoError(t, err)

	var address string
	err = repo.UpdateWallet(ctx, func(w *domain.Wallet) (*domain.Wallet, error) {
		addr, err := w.NewAddress()
		if err != nil {
			return nil, err
		}
		address = addr

		if err := w.AddUtxo(
			domain.Utxo{Value: 2100, Address: addr}, randstr.Hex(32), 1,
		); err != nil {
			return nil, err
		}
		return w, nil
	})
	require.NoError(t, err)

	w, err := repo.GetWallet(ctx)
	require.NoError(t, err)
	require.True(t, w.HasKey(address))
	require.Equal(t, uint64(2100), w.Balance())
}

func TestFailingUpdateWalletRollsBack(t *testing.T) {
	repo, cleanup := newTestRepository(t, "")
	defer cleanup()
	ctx := context.Background()

	_, err := repo.GetOrCreateWallet(ctx)
	require.NoError(t, err)

	err = repo.UpdateWallet(ctx, func(w *domain.Wallet) (*domain.Wallet, error) {
		return nil, w.AddUtxo(
			domain.Utxo{Value: 100, Address: "unknown"}, randstr.Hex(32), 0,
		)
	})
	require.EqualError(t, err, domain.ErrAddressNotFound.Error())

	w, err := repo.GetWallet(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(0), w.Balance())
}

func TestWalletSurvivesReopen(t *testing.T) {
	dbDir := t.TempDir()
	ctx := context.Background()

	repo, cleanup := newTestRepository(t, dbDir)

	w, err := repo.GetOrCreateWallet(ctx)
	require.NoError(t, err)

	txids := []string{randstr.Hex(32), randstr.Hex(32)}
	var address string
	err = repo.UpdateWallet(ctx, func(w *domain.Wallet) (*domain.Wallet, error) {
		addr, err := w.NewAddress()
		if err != nil {
			return nil, err
		}
		address = addr

		for i, txid := range txids {
			if err := w.AddUtxo(
				domain.Utxo{Value: uint64(1000 * (i + 1)), Address: addr},
				txid, uint32(i),
			); err != nil {
				return nil, err
			}
		}
		return w, nil
	})
	require.NoError(t, err)
	cleanup()

	repo, cleanup = newTestRepository(t, dbDir)
	defer cleanup()

	reloaded, err := repo.GetWallet(ctx)
	require.NoError(t, err)
	require.Equal(t, w.DefaultKey, reloaded.DefaultKey)
	require.True(t, reloaded.HasKey(address))
	require.Equal(t, uint64(3000), reloaded.Balance())

	coins := reloaded.ListCoins()
	require.Len(t, coins, 2)
	for i, coin := range coins {
		require.Equal(t, txids[i], coin.TxID)
	}

	result, err := reloaded.SelectAndSpend(1000)
	require.NoError(t, err)
	require.Len(t, result.Inputs, 1)
	require.Equal(t, uint64(0), result.Change)
}

func newTestRepository(
	t *testing.T, dbDir string,
) (domain.WalletRepository, func()) {
	t.Helper()

	db, err := NewDbManager(dbDir, nil)
	require.NoError(t, err)

	return NewWalletRepositoryImpl(db), func() {
		require.NoError(t, db.Close())
	}
}
