package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var send = cli.Command{
	Name: "send",
	Usage: "select and consume coins to cover the given amount, printing the " +
		"signed inputs and change for the external transaction builder",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "the amount to spend as a decimal string, ie. 0.0001",
			Required: true,
		},
	},
	Action: sendAction,
}

func sendAction(ctx *cli.Context) error {
	svc, cleanup, err := getWalletService()
	if err != nil {
		return err
	}
	defer cleanup()

	sats, err := parseAmount(ctx.String("amount"))
	if err != nil {
		return err
	}

	resp, err := svc.Spend(context.Background(), sats)
	if err != nil {
		return err
	}

	printRespJSON(resp)

	return nil
}
