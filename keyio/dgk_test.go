package keyio

import (
	"testing"

	"github.com/adwise-fiu/Ciphercraft/dgk"
	"github.com/stretchr/testify/require"
)

func generateTestDGKKeys(t *testing.T) (*dgk.PublicKey, *dgk.PrivateKey) {
	t.Helper()
	pub, priv, err := dgk.GenerateKeyPair(dgk.KeyGenParams{L: 8, T: 32, K: 256})
	require.NoError(t, err)
	return pub, priv
}

func TestDGKPublicKeyRoundTrip(t *testing.T) {
	pub, _ := generateTestDGKKeys(t)

	pem, err := EncodeDGKPublicKey(pub)
	require.NoError(t, err)
	require.Contains(t, string(pem), "PUBLIC KEY")

	got, err := DecodeDGKPublicKey(pem)
	require.NoError(t, err)
	require.True(t, pub.Equal(got))
}

func TestDGKPrivateKeyRoundTrip(t *testing.T) {
	_, priv := generateTestDGKKeys(t)

	pem, err := EncodeDGKPrivateKey(priv)
	require.NoError(t, err)
	require.Contains(t, string(pem), "PRIVATE KEY")

	got, err := DecodeDGKPrivateKey(pem)
	require.NoError(t, err)
	require.True(t, priv.Equal(got))
}

func TestDecodeDGKPublicKeyRejectsOtherAlgorithm(t *testing.T) {
	pub, _ := generateTestDGKKeys(t)
	der, err := EncodeDGKPublicKey(pub)
	require.NoError(t, err)

	_, err = DecodePaillierPublicKey(der)
	require.Error(t, err)
}

func TestDecodeDGKPublicKeyRejectsGarbage(t *testing.T) {
	_, err := DecodeDGKPublicKey([]byte("not a pem block"))
	require.Error(t, err)
}
