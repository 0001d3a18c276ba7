package domain

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// Utxo is the value/address pair of an unspent transaction output as
// observed on the underlying ledger.
type Utxo struct {
	Value   uint64
	Address string
}

// CoinKey identifies a coin by the outpoint of the transaction that
// created it.
type CoinKey struct {
	TxID string
	VOut uint32
}

// Coin pairs an owned Utxo with the outpoint needed to reference it as
// the input of a future transaction.
type Coin struct {
	Utxo
	TxID string
	VOut uint32
}

// TxInput is the authorization to consume one coin inside a new
// transaction: the outpoint it references plus the public key and
// signature proving ownership.
type TxInput struct {
	TxID      string
	VOut      uint32
	PublicKey []byte
	Signature []byte
}

// SpendResult carries the outcome of a coin selection. ID is a handle
// generated per spend so that callers can correlate an eventual external
// reconciliation with the removal that produced it.
type SpendResult struct {
	ID     uuid.UUID
	Inputs []TxInput
	Change uint64
}

// Key returns the CoinKey of the current coin.
func (c *Coin) Key() CoinKey {
	return CoinKey{
		TxID: c.TxID,
		VOut: c.VOut,
	}
}

// Bytes returns the canonical serialization of the coin, the message
// signed when the coin is consumed as a transaction input.
func (c *Coin) Bytes() []byte {
	buf := make([]byte, 12, 12+len(c.TxID)+len(c.Address))
	binary.LittleEndian.PutUint64(buf[:8], c.Value)
	binary.LittleEndian.PutUint32(buf[8:12], c.VOut)
	buf = append(buf, c.TxID...)
	buf = append(buf, c.Address...)
	return buf
}
