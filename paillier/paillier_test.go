package paillier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func generateTestKeys(t *testing.T) (*PublicKey, *PrivateKey) {
	t.Helper()
	pub, priv, err := GenerateKeyPair(256, false)
	require.NoError(t, err)
	return pub, priv
}

func generateTestKeysFast(t *testing.T) (*PublicKey, *PrivateKey) {
	t.Helper()
	pub, priv, err := GenerateKeyPair(256, true)
	require.NoError(t, err)
	require.NotNil(t, priv.P)
	require.NotNil(t, priv.Q)
	return pub, priv
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	pub, priv := generateTestKeys(t)
	for _, v := range []int64{0, 1, 1000, 123456} {
		m := big.NewInt(v)
		c, err := Encrypt(m, pub)
		require.NoError(t, err)
		got, err := Decrypt(c, priv)
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

func TestAddIsHomomorphic(t *testing.T) {
	pub, priv := generateTestKeys(t)
	c1, err := Encrypt(big.NewInt(1000), pub)
	require.NoError(t, err)
	c2, err := Encrypt(big.NewInt(2), pub)
	require.NoError(t, err)
	sum := Add(c1, c2, pub)
	got, err := Decrypt(sum, priv)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1002), got)
}

func TestScalarMultiplyScenarios(t *testing.T) {
	pub, priv := generateTestKeys(t)
	c, err := Encrypt(big.NewInt(1000), pub)
	require.NoError(t, err)

	for _, tc := range []struct {
		k    int64
		want int64
	}{
		{2, 2000},
		{3, 3000},
		{50, 50000},
	} {
		scaled := ScalarMultiply(c, big.NewInt(tc.k), pub)
		got, err := Decrypt(scaled, priv)
		require.NoError(t, err)
		require.Equal(t, big.NewInt(tc.want), got)
	}
}

func TestReRandomizePreservesPlaintext(t *testing.T) {
	pub, priv := generateTestKeys(t)
	c, err := Encrypt(big.NewInt(42), pub)
	require.NoError(t, err)
	rerand, err := ReRandomize(c, pub)
	require.NoError(t, err)
	require.NotEqual(t, c.String(), rerand.String())
	got, err := Decrypt(rerand, priv)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), got)
}

func TestEncryptRejectsOutOfRange(t *testing.T) {
	pub, _ := generateTestKeys(t)
	_, err := Encrypt(pub.N, pub)
	require.Error(t, err)
}

func TestVerifyRhoAcceptsConsistentValue(t *testing.T) {
	_, priv := generateTestKeys(t)
	require.NoError(t, priv.VerifyRho(priv.Rho))
}

func TestVerifyRhoRejectsTamperedValue(t *testing.T) {
	_, priv := generateTestKeys(t)
	bad := new(big.Int).Add(priv.Rho, big.NewInt(1))
	require.Error(t, priv.VerifyRho(bad))
}

func TestEncryptDecryptRoundTripFastVariant(t *testing.T) {
	pub, priv := generateTestKeysFast(t)
	for _, v := range []int64{0, 1, 1000, 123456} {
		m := big.NewInt(v)
		c, err := Encrypt(m, pub)
		require.NoError(t, err)
		got, err := Decrypt(c, priv)
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

func TestFastVariantAgreesWithStandardDecryption(t *testing.T) {
	pub, priv := generateTestKeysFast(t)
	standard, err := NewPrivateKey(pub, priv.Lambda, priv.Mu, priv.Alpha)
	require.NoError(t, err)

	c, err := Encrypt(big.NewInt(777), pub)
	require.NoError(t, err)

	fast, err := Decrypt(c, priv)
	require.NoError(t, err)
	slow, err := Decrypt(c, standard)
	require.NoError(t, err)
	require.Equal(t, slow, fast)
}

func TestWithCRTRejectsMismatchedFactors(t *testing.T) {
	_, priv := generateTestKeys(t)
	_, err := priv.WithCRT(big.NewInt(3), big.NewInt(5))
	require.Error(t, err)
}
