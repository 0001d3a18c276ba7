package domain

import (
	"github.com/purse-network/purse/pkg/keyring"
)

// KeyPair holds the raw secp256k1 key material bound to one wallet
// address. Private key bytes are kept for signing only and are never
// returned by any wallet method.
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// Wallet is the ledger of the coins owned by this party. Coins keeps
// insertion order, oldest first, and is drained from the front by
// SelectAndSpend. Every coin address has an entry in Keys.
//
// A Wallet assumes a single logical writer. Callers must serialize
// access to it, the repository implementations do so with their own
// locking.
type Wallet struct {
	Coins      []Coin
	Keys       map[string]KeyPair
	DefaultKey KeyPair
}

// NewWallet returns a wallet holding no coins and an empty address book,
// along with a freshly generated default identity key pair.
func NewWallet() (*Wallet, error) {
	pubKey, prvKey, err := keyring.GenerateKeyPair()
	if err != nil {
		return nil, err
	}

	return &Wallet{
		Coins: make([]Coin, 0),
		Keys:  map[string]KeyPair{},
		DefaultKey: KeyPair{
			PublicKey:  pubKey,
			PrivateKey: prvKey,
		},
	}, nil
}

// Clone returns a deep copy of the wallet. Key material is shared since
// it is immutable once minted.
func (w *Wallet) Clone() *Wallet {
	coins := make([]Coin, len(w.Coins))
	copy(coins, w.Coins)

	keys := make(map[string]KeyPair, len(w.Keys))
	for addr, pair := range w.Keys {
		keys[addr] = pair
	}

	return &Wallet{
		Coins:      coins,
		Keys:       keys,
		DefaultKey: w.DefaultKey,
	}
}
