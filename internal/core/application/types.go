package application

import (
	"encoding/hex"

	"github.com/purse-network/purse/internal/core/domain"
)

// UtxoInfo describes an output observed on the ledger, as reported by an
// external watcher or by the operator.
type UtxoInfo struct {
	TxID    string
	VOut    uint32
	Value   uint64
	Address string
}

// CoinInfo is the read model of a coin held by the wallet.
type CoinInfo struct {
	TxID    string `json:"txid"`
	VOut    uint32 `json:"vout"`
	Value   uint64 `json:"value"`
	Address string `json:"address"`
}

// InputInfo is the read model of a signed transaction input, with key
// material and signature in hex.
type InputInfo struct {
	TxID      string `json:"txid"`
	VOut      uint32 `json:"vout"`
	PublicKey string `json:"pubkey"`
	Signature string `json:"signature"`
}

// SpendInfo carries the signed inputs and change of a completed coin
// selection, along with the handle identifying the spend.
type SpendInfo struct {
	ID     string      `json:"id"`
	Inputs []InputInfo `json:"inputs"`
	Change uint64      `json:"change"`
}

// WalletInfo is the summary returned by GetInfo.
type WalletInfo struct {
	DefaultPublicKey string `json:"default_pubkey"`
	AddressCount     int    `json:"address_count"`
	CoinCount        int    `json:"coin_count"`
	Balance          uint64 `json:"balance"`
}

func coinInfoFromDomain(coins []domain.Coin) []CoinInfo {
	list := make([]CoinInfo, 0, len(coins))
	for _, coin := range coins {
		list = append(list, CoinInfo{
			TxID:    coin.TxID,
			VOut:    coin.VOut,
			Value:   coin.Value,
			Address: coin.Address,
		})
	}
	return list
}

func spendInfoFromDomain(result *domain.SpendResult) *SpendInfo {
	inputs := make([]InputInfo, 0, len(result.Inputs))
	for _, input := range result.Inputs {
		inputs = append(inputs, InputInfo{
			TxID:      input.TxID,
			VOut:      input.VOut,
			PublicKey: hex.EncodeToString(input.PublicKey),
			Signature: hex.EncodeToString(input.Signature),
		})
	}

	return &SpendInfo{
		ID:     result.ID.String(),
		Inputs: inputs,
		Change: result.Change,
	}
}
