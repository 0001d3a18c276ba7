package keyring_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"

	"github.com/purse-network/purse/pkg/keyring"
)

func TestGenerateKeyPair(t *testing.T) {
	t.Parallel()

	pubKey, prvKey, err := keyring.GenerateKeyPair()
	require.NoError(t, err)
	require.Len(t, pubKey, 33)
	require.Len(t, prvKey, 32)

	otherPubKey, otherPrvKey, err := keyring.GenerateKeyPair()
	require.NoError(t, err)
	require.NotEqual(t, pubKey, otherPubKey)
	require.NotEqual(t, prvKey, otherPrvKey)
}

func TestDeriveAddress(t *testing.T) {
	t.Parallel()

	pubKey, _, err := keyring.GenerateKeyPair()
	require.NoError(t, err)

	addr, err := keyring.DeriveAddress(pubKey)
	require.NoError(t, err)
	require.NotEmpty(t, addr)

	hash, version, err := base58.CheckDecode(addr)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), version)
	require.Len(t, hash, 20)

	sameAddr, err := keyring.DeriveAddress(pubKey)
	require.NoError(t, err)
	require.Equal(t, addr, sameAddr)
}

func TestFailingDeriveAddress(t *testing.T) {
	t.Parallel()

	_, err := keyring.DeriveAddress(make([]byte, 33))
	require.EqualError(t, err, keyring.ErrInvalidPublicKey.Error())

	_, err = keyring.DeriveAddress(nil)
	require.EqualError(t, err, keyring.ErrInvalidPublicKey.Error())
}

func TestSignVerify(t *testing.T) {
	t.Parallel()

	pubKey, prvKey, err := keyring.GenerateKeyPair()
	require.NoError(t, err)

	message := randstr.Bytes(64)
	sig, err := keyring.Sign(prvKey, message)
	require.NoError(t, err)

	ok, err := keyring.Verify(pubKey, message, sig)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = keyring.Verify(pubKey, randstr.Bytes(64), sig)
	require.NoError(t, err)
	require.False(t, ok)

	otherPubKey, _, err := keyring.GenerateKeyPair()
	require.NoError(t, err)
	ok, err = keyring.Verify(otherPubKey, message, sig)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFailingSignVerify(t *testing.T) {
	t.Parallel()

	_, err := keyring.Sign(randstr.Bytes(16), randstr.Bytes(64))
	require.EqualError(t, err, keyring.ErrInvalidPrivateKey.Error())

	pubKey, _, err := keyring.GenerateKeyPair()
	require.NoError(t, err)

	_, err = keyring.Verify(pubKey, randstr.Bytes(64), make([]byte, 70))
	require.EqualError(t, err, keyring.ErrInvalidSignature.Error())
}
