package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var address = cli.Command{
	Name:   "address",
	Usage:  "mint a new receiving address",
	Action: addressAction,
}

func addressAction(ctx *cli.Context) error {
	svc, cleanup, err := getWalletService()
	if err != nil {
		return err
	}
	defer cleanup()

	addr, err := svc.NewAddress(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(map[string]string{"address": addr})

	return nil
}
