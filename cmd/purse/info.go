package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var info = cli.Command{
	Name:   "info",
	Usage:  "get summary info about the wallet",
	Action: infoAction,
}

func infoAction(ctx *cli.Context) error {
	svc, cleanup, err := getWalletService()
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := svc.GetInfo(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(resp)

	return nil
}
