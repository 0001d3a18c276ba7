package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/purse-network/purse/internal/config"
	"github.com/purse-network/purse/internal/core/application"
	"github.com/purse-network/purse/internal/core/domain"
	dbbadger "github.com/purse-network/purse/internal/infrastructure/storage/db/badger"
	"github.com/purse-network/purse/internal/infrastructure/storage/db/inmemory"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "purse CLI"
	app.Usage = "Command line interface for the purse wallet"
	app.Commands = append(
		app.Commands,
		&info,
		&address,
		&addresses,
		&balance,
		&receive,
		&send,
		&listutxos,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

// getWalletService loads the config and builds the wallet service on top
// of the configured store. The returned cleanup must be deferred by the
// caller to release the store.
func getWalletService() (application.WalletService, func(), error) {
	if err := config.InitConfig(); err != nil {
		return nil, nil, err
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	var repo domain.WalletRepository
	cleanup := func() {}

	if config.GetString(config.DBTypeKey) == config.DBInMemory {
		repo = inmemory.NewWalletRepositoryImpl()
	} else {
		db, err := dbbadger.NewDbManager(config.GetDbDir(), log.StandardLogger())
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			if err := db.Close(); err != nil {
				log.WithError(err).Warn("error while closing wallet store")
			}
		}
		repo = dbbadger.NewWalletRepositoryImpl(db)
	}

	svc, err := application.NewWalletService(context.Background(), repo)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return svc, cleanup, nil
}

func printRespJSON(resp interface{}) {
	respJSON, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fatal(err)
	}

	fmt.Println(string(respJSON))
}

func fatal(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[purse] %v\n", err)
	os.Exit(1)
}

var satsPerUnit = decimal.NewFromInt(100000000)

// parseAmount converts a coin-denominated decimal amount string into
// satoshis.
func parseAmount(str string) (uint64, error) {
	amount, err := decimal.NewFromString(str)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", err)
	}

	sats := amount.Mul(satsPerUnit)
	if sats.Sign() <= 0 {
		return 0, errors.New("amount must be positive")
	}
	if !sats.IsInteger() {
		return 0, errors.New("amount supports at most 8 decimal places")
	}

	bigSats := sats.BigInt()
	if !bigSats.IsUint64() {
		return 0, errors.New("amount is out of range")
	}

	return bigSats.Uint64(), nil
}

// formatAmount renders an amount of satoshis as a coin-denominated
// decimal string.
func formatAmount(sats uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(sats), -8).String()
}
