package keyring

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// addressVersion is the base58check version byte prepended to the
// pubkey hash of every derived address.
const addressVersion = byte(0x00)

var (
	// ErrInvalidPublicKey ...
	ErrInvalidPublicKey = errors.New("public key is not a valid compressed secp256k1 point")
	// ErrInvalidPrivateKey ...
	ErrInvalidPrivateKey = errors.New("private key must be a 32-byte secp256k1 scalar")
	// ErrInvalidSignature ...
	ErrInvalidSignature = errors.New("signature is not in DER format")
)

// GenerateKeyPair returns a fresh secp256k1 key pair as raw bytes, the
// public key in compressed format.
func GenerateKeyPair() (pubKey, privKey []byte, err error) {
	prvKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, nil, err
	}

	return prvKey.PubKey().SerializeCompressed(), prvKey.Serialize(), nil
}

// DeriveAddress returns the address bound to the given compressed public
// key, the base58check encoding of its hash160.
func DeriveAddress(pubKey []byte) (string, error) {
	if _, err := btcec.ParsePubKey(pubKey); err != nil {
		return "", ErrInvalidPublicKey
	}

	return base58.CheckEncode(btcutil.Hash160(pubKey), addressVersion), nil
}

// Sign produces a DER encoded ECDSA signature over the double-sha256
// digest of the given message.
func Sign(privKey, message []byte) ([]byte, error) {
	if len(privKey) != btcec.PrivKeyBytesLen {
		return nil, ErrInvalidPrivateKey
	}

	prvKey, _ := btcec.PrivKeyFromBytes(privKey)
	sig := ecdsa.Sign(prvKey, chainhash.DoubleHashB(message))

	return sig.Serialize(), nil
}

// Verify returns whether the given DER signature is valid for the message
// and the compressed public key.
func Verify(pubKey, message, sig []byte) (bool, error) {
	pub, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return false, ErrInvalidPublicKey
	}

	parsedSig, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false, ErrInvalidSignature
	}

	return parsedSig.Verify(chainhash.DoubleHashB(message), pub), nil
}
