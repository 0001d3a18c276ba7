package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var listutxos = cli.Command{
	Name:   "utxos",
	Usage:  "get the list of all coins held by the wallet, oldest first",
	Action: listUtxosAction,
}

func listUtxosAction(ctx *cli.Context) error {
	svc, cleanup, err := getWalletService()
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := svc.ListCoins(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{"utxos": resp})

	return nil
}
