package dgk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// smallTestParams keeps key generation fast for the test suite; production
// use should reach for DefaultKeyGenParams or larger.
func smallTestParams() KeyGenParams {
	return KeyGenParams{L: 8, T: 32, K: 256}
}

func generateTestKeys(t *testing.T) (*PublicKey, *PrivateKey) {
	t.Helper()
	pub, priv, err := GenerateKeyPair(smallTestParams())
	require.NoError(t, err)
	return pub, priv
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	pub, priv := generateTestKeys(t)
	for _, m := range []int64{0, 1, 10, 20, 30} {
		c, err := Encrypt(m, pub)
		require.NoError(t, err)
		got, err := Decrypt(c, priv)
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

func TestAddIsHomomorphic(t *testing.T) {
	pub, priv := generateTestKeys(t)
	c1, err := Encrypt(10, pub)
	require.NoError(t, err)
	c2, err := Encrypt(20, pub)
	require.NoError(t, err)
	sum := Add(c1, c2, pub)
	got, err := Decrypt(sum, priv)
	require.NoError(t, err)
	require.Equal(t, int64(30), got)
}

func TestScalarMultiply(t *testing.T) {
	pub, priv := generateTestKeys(t)
	c, err := Encrypt(7, pub)
	require.NoError(t, err)
	scaled := ScalarMultiply(c, 5, pub)
	got, err := Decrypt(scaled, priv)
	require.NoError(t, err)
	require.Equal(t, int64(35), got)
}

func TestSubtractWrapsModU(t *testing.T) {
	pub, priv := generateTestKeys(t)
	c1, err := Encrypt(5, pub)
	require.NoError(t, err)
	c2, err := Encrypt(10, pub)
	require.NoError(t, err)
	diff := Subtract(c1, c2, pub)
	got, err := Decrypt(diff, priv)
	require.NoError(t, err)
	require.Equal(t, ntlPosModU(5-10, pub.u), got)
}

func TestReRandomizePreservesPlaintext(t *testing.T) {
	pub, priv := generateTestKeys(t)
	c, err := Encrypt(42%pub.u, pub)
	require.NoError(t, err)
	rerand, err := ReRandomize(c, pub)
	require.NoError(t, err)
	require.NotEqual(t, c.String(), rerand.String())
	got, err := Decrypt(rerand, priv)
	require.NoError(t, err)
	want, err := Decrypt(c, priv)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEncryptRejectsOutOfRange(t *testing.T) {
	pub, _ := generateTestKeys(t)
	_, err := Encrypt(pub.u, pub)
	require.Error(t, err)
}

func ntlPosModU(x, u int64) int64 {
	m := x % u
	if m < 0 {
		m += u
	}
	return m
}
