package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var addresses = cli.Command{
	Name:   "addresses",
	Usage:  "list all minted receiving addresses",
	Action: addressesAction,
}

func addressesAction(ctx *cli.Context) error {
	svc, cleanup, err := getWalletService()
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := svc.ListAddresses(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(map[string][]string{"addresses": resp})

	return nil
}
