package application

import (
	"context"
	"encoding/hex"

	log "github.com/sirupsen/logrus"

	"github.com/purse-network/purse/internal/core/domain"
)

// WalletService is the application boundary of the wallet. It wraps the
// repository so that every mutation runs through a single serialized
// update, and translates domain entities into read models for the
// interfaces. Domain errors pass through unwrapped so that callers can
// match on domain.ErrAddressNotFound and domain.ErrInsufficientFunds.
type WalletService interface {
	GetInfo(ctx context.Context) (*WalletInfo, error)
	GetBalance(ctx context.Context) (uint64, error)
	NewAddress(ctx context.Context) (string, error)
	HasAddress(ctx context.Context, address string) (bool, error)
	ListAddresses(ctx context.Context) ([]string, error)
	ListCoins(ctx context.Context) ([]CoinInfo, error)
	IngestUtxo(ctx context.Context, utxo UtxoInfo) error
	Spend(ctx context.Context, amount uint64) (*SpendInfo, error)
}

type walletService struct {
	repo domain.WalletRepository
}

// NewWalletService returns a WalletService backed by the given
// repository, creating and persisting the wallet if the store is empty.
func NewWalletService(
	ctx context.Context,
	repo domain.WalletRepository,
) (WalletService, error) {
	if _, err := repo.GetOrCreateWallet(ctx); err != nil {
		return nil, err
	}

	return &walletService{repo: repo}, nil
}

func (s *walletService) GetInfo(ctx context.Context) (*WalletInfo, error) {
	w, err := s.repo.GetWallet(ctx)
	if err != nil {
		return nil, err
	}

	return &WalletInfo{
		DefaultPublicKey: hex.EncodeToString(w.DefaultKey.PublicKey),
		AddressCount:     len(w.ListAddresses()),
		CoinCount:        len(w.ListCoins()),
		Balance:          w.Balance(),
	}, nil
}

func (s *walletService) GetBalance(ctx context.Context) (uint64, error) {
	w, err := s.repo.GetWallet(ctx)
	if err != nil {
		return 0, err
	}

	return w.Balance(), nil
}

func (s *walletService) NewAddress(ctx context.Context) (string, error) {
	var address string
	if err := s.repo.UpdateWallet(
		ctx,
		func(w *domain.Wallet) (*domain.Wallet, error) {
			addr, err := w.NewAddress()
			if err != nil {
				return nil, err
			}
			address = addr
			return w, nil
		},
	); err != nil {
		return "", err
	}

	log.WithField("address", address).Debug("minted new receiving address")
	return address, nil
}

// HasAddress returns whether the given address was minted by this
// wallet. Ledger watchers use it to decide if an observed output should
// be fed to IngestUtxo.
func (s *walletService) HasAddress(
	ctx context.Context,
	address string,
) (bool, error) {
	w, err := s.repo.GetWallet(ctx)
	if err != nil {
		return false, err
	}

	return w.HasKey(address), nil
}

func (s *walletService) ListAddresses(ctx context.Context) ([]string, error) {
	w, err := s.repo.GetWallet(ctx)
	if err != nil {
		return nil, err
	}

	return w.ListAddresses(), nil
}

func (s *walletService) ListCoins(ctx context.Context) ([]CoinInfo, error) {
	w, err := s.repo.GetWallet(ctx)
	if err != nil {
		return nil, err
	}

	return coinInfoFromDomain(w.ListCoins()), nil
}

func (s *walletService) IngestUtxo(ctx context.Context, utxo UtxoInfo) error {
	if len(utxo.TxID) <= 0 {
		return ErrNullTxID
	}
	if len(utxo.Address) <= 0 {
		return ErrNullAddress
	}

	if err := s.repo.UpdateWallet(
		ctx,
		func(w *domain.Wallet) (*domain.Wallet, error) {
			if err := w.AddUtxo(
				domain.Utxo{Value: utxo.Value, Address: utxo.Address},
				utxo.TxID, utxo.VOut,
			); err != nil {
				return nil, err
			}
			return w, nil
		},
	); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"txid":  utxo.TxID,
		"vout":  utxo.VOut,
		"value": utxo.Value,
	}).Debug("ingested utxo")
	return nil
}

func (s *walletService) Spend(
	ctx context.Context,
	amount uint64,
) (*SpendInfo, error) {
	if amount <= 0 {
		return nil, ErrNullAmount
	}

	var result *domain.SpendResult
	if err := s.repo.UpdateWallet(
		ctx,
		func(w *domain.Wallet) (*domain.Wallet, error) {
			res, err := w.SelectAndSpend(amount)
			if err != nil {
				return nil, err
			}
			result = res
			return w, nil
		},
	); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"id":     result.ID,
		"inputs": len(result.Inputs),
		"change": result.Change,
	}).Debug("selected coins for spending")
	return spendInfoFromDomain(result), nil
}
