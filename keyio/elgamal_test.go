package keyio

import (
	"math/big"
	"testing"

	"github.com/adwise-fiu/Ciphercraft/elgamal"
	"github.com/stretchr/testify/require"
)

var (
	testElgamalP, _ = new(big.Int).SetString("170141183460469231731687303715884105727", 10) // a Mersenne prime, 2^127-1
	testElgamalG    = big.NewInt(5)
	testElgamalH    = big.NewInt(1234567891)
)

func TestElGamalPublicKeyRoundTripAdditive(t *testing.T) {
	pub := elgamal.NewAdditive(testElgamalP, testElgamalG, testElgamalH)

	pem, err := EncodeElGamalPublicKey(pub)
	require.NoError(t, err)

	got, err := DecodeElGamalPublicKey(pem)
	require.NoError(t, err)
	require.True(t, pub.Equal(got))
	require.True(t, got.Additive())
}

func TestElGamalPublicKeyRoundTripMultiplicative(t *testing.T) {
	pub := elgamal.NewMultiplicative(testElgamalP, testElgamalG, testElgamalH)

	pem, err := EncodeElGamalPublicKey(pub)
	require.NoError(t, err)

	got, err := DecodeElGamalPublicKey(pem)
	require.NoError(t, err)
	require.True(t, pub.Equal(got))
	require.False(t, got.Additive())
}

func TestDecodeElGamalPublicKeyRejectsOtherAlgorithm(t *testing.T) {
	pub, _ := generateTestDGKKeys(t)
	pem, err := EncodeDGKPublicKey(pub)
	require.NoError(t, err)

	_, err = DecodeElGamalPublicKey(pem)
	require.Error(t, err)
}
