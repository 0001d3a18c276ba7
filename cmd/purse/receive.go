package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/purse-network/purse/internal/core/application"
)

var receive = cli.Command{
	Name: "receive",
	Usage: "register a confirmed output paying to one of the wallet addresses; " +
		"also used to restore a coin consumed by a spend whose transaction got rejected",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "txid",
			Usage:    "the id of the transaction containing the output",
			Required: true,
		},
		&cli.UintFlag{
			Name:  "vout",
			Usage: "the index of the output within the transaction",
		},
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "the output amount as a decimal string, ie. 0.0001",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "address",
			Usage:    "the wallet address the output pays to",
			Required: true,
		},
	},
	Action: receiveAction,
}

func receiveAction(ctx *cli.Context) error {
	svc, cleanup, err := getWalletService()
	if err != nil {
		return err
	}
	defer cleanup()

	sats, err := parseAmount(ctx.String("amount"))
	if err != nil {
		return err
	}

	utxo := application.UtxoInfo{
		TxID:    ctx.String("txid"),
		VOut:    uint32(ctx.Uint("vout")),
		Value:   sats,
		Address: ctx.String("address"),
	}
	if err := svc.IngestUtxo(context.Background(), utxo); err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"txid":  utxo.TxID,
		"vout":  utxo.VOut,
		"value": utxo.Value,
	})

	return nil
}
