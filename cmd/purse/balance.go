package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var balance = cli.Command{
	Name:   "balance",
	Usage:  "get the total balance of the wallet",
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	svc, cleanup, err := getWalletService()
	if err != nil {
		return err
	}
	defer cleanup()

	sats, err := svc.GetBalance(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"balance_sats": sats,
		"balance":      formatAmount(sats),
	})

	return nil
}
