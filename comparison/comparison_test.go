package comparison

import (
	"context"
	"io"
	"log"
	"math/big"
	"net"
	"sync"
	"testing"

	"github.com/adwise-fiu/Ciphercraft/dgk"
	"github.com/adwise-fiu/Ciphercraft/paillier"
	"github.com/adwise-fiu/Ciphercraft/wire"
	"github.com/stretchr/testify/require"
)

// testKeys bundles the DGK (and, where needed, Paillier) key material
// shared by a single test's Alice/Bob pair.
type testKeys struct {
	dgkPub       *dgk.PublicKey
	dgkPriv      *dgk.PrivateKey
	paillierPub  *paillier.PublicKey
	paillierPriv *paillier.PrivateKey
}

func generateTestKeys(t *testing.T, mode Mode) testKeys {
	t.Helper()
	dgkPub, dgkPriv, err := dgk.GenerateKeyPair(dgk.KeyGenParams{L: 8, T: 32, K: 256})
	require.NoError(t, err)
	keys := testKeys{dgkPub: dgkPub, dgkPriv: dgkPriv}
	if mode == PaillierMode {
		paillierPub, paillierPriv, err := paillier.GenerateKeyPair(256, false)
		require.NoError(t, err)
		keys.paillierPub = paillierPub
		keys.paillierPriv = paillierPriv
	}
	return keys
}

// newSession builds an Alice/Bob pair wired to opposite ends of an
// in-process net.Pipe.
func newSession(t *testing.T, keys testKeys, mode Mode, variant Variant, l int) (*Alice, *Bob) {
	t.Helper()
	aliceConn, bobConn := net.Pipe()
	t.Cleanup(func() { aliceConn.Close(); bobConn.Close() })

	alice, err := NewAlice(wire.New(aliceConn), mode, variant, l, keys.dgkPub, keys.paillierPub, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	bob, err := NewBob(wire.New(bobConn), mode, variant, l, keys.dgkPriv, keys.paillierPriv, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	return alice, bob
}

// runPair runs aliceFn and bobFn concurrently, as the real protocol
// requires (both sides block on the shared channel), and fails the test
// with both errors if either returns one.
func runPair(t *testing.T, aliceFn, bobFn func() error) {
	t.Helper()
	var wg sync.WaitGroup
	var aliceErr, bobErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		aliceErr = aliceFn()
	}()
	go func() {
		defer wg.Done()
		bobErr = bobFn()
	}()
	wg.Wait()
	require.NoError(t, aliceErr)
	require.NoError(t, bobErr)
}

func TestProtocol1Original(t *testing.T) {
	keys := generateTestKeys(t, DGKMode)
	cases := []struct {
		x, y int64
		want bool
	}{
		{25, 50, true},
		{50, 50, true},
		{75, 50, false},
	}
	for _, c := range cases {
		alice, bob := newSession(t, keys, DGKMode, Original, 7)
		var got bool
		runPair(t, func() error {
			var err error
			got, err = alice.Protocol1(context.Background(), c.x)
			return err
		}, func() error {
			return bob.Protocol1(context.Background(), c.y)
		})
		require.Equal(t, c.want, got, "x=%d y=%d", c.x, c.y)
	}
}

func TestProtocol1Veugen(t *testing.T) {
	keys := generateTestKeys(t, DGKMode)
	cases := []struct {
		x, y int64
		want bool
	}{
		{25, 50, true},
		{50, 50, true},
		{75, 50, false},
	}
	for _, c := range cases {
		alice, bob := newSession(t, keys, DGKMode, Veugen, 7)
		var got bool
		runPair(t, func() error {
			var err error
			got, err = alice.Protocol1(context.Background(), c.x)
			return err
		}, func() error {
			return bob.Protocol1(context.Background(), c.y)
		})
		require.Equal(t, c.want, got, "x=%d y=%d", c.x, c.y)
	}
}

func TestProtocol1Joye(t *testing.T) {
	keys := generateTestKeys(t, DGKMode)
	// Joye's Protocol1 exposes strict x<y, not the <= of Original/Veugen.
	cases := []struct {
		x, y int64
		want bool
	}{
		{25, 50, true},
		{50, 50, false},
		{75, 50, false},
	}
	for _, c := range cases {
		alice, bob := newSession(t, keys, DGKMode, Joye, 7)
		var got bool
		runPair(t, func() error {
			var err error
			got, err = alice.Protocol1(context.Background(), c.x)
			return err
		}, func() error {
			return bob.Protocol1(context.Background(), c.y)
		})
		require.Equal(t, c.want, got, "x=%d y=%d", c.x, c.y)
	}
}

func TestProtocol2Original(t *testing.T) {
	keys := generateTestKeys(t, DGKMode)
	cases := []struct {
		x, y int64
		want bool
	}{
		{25, 50, false},
		{50, 50, true},
		{75, 50, true},
	}
	for _, c := range cases {
		alice, bob := newSession(t, keys, DGKMode, Original, 7)
		encX, err := dgk.Encrypt(c.x, keys.dgkPub)
		require.NoError(t, err)
		encY, err := dgk.Encrypt(c.y, keys.dgkPub)
		require.NoError(t, err)

		var got bool
		runPair(t, func() error {
			var err error
			got, err = alice.Protocol2(context.Background(), encX, encY)
			return err
		}, func() error {
			return bob.Protocol2(context.Background())
		})
		require.Equal(t, c.want, got, "x=%d y=%d", c.x, c.y)
	}
}

func TestProtocol2Veugen(t *testing.T) {
	keys := generateTestKeys(t, DGKMode)
	// Under DGKMode, VEUGEN's Protocol2 exposes strict x>y: the tie at
	// x==y comes out false, unlike ORIGINAL/JOYE's inclusive x>=y.
	cases := []struct {
		x, y int64
		want bool
	}{
		{25, 50, false},
		{50, 50, false},
		{75, 50, true},
	}
	for _, c := range cases {
		alice, bob := newSession(t, keys, DGKMode, Veugen, 7)
		encX, err := dgk.Encrypt(c.x, keys.dgkPub)
		require.NoError(t, err)
		encY, err := dgk.Encrypt(c.y, keys.dgkPub)
		require.NoError(t, err)

		var got bool
		runPair(t, func() error {
			var err error
			got, err = alice.Protocol2(context.Background(), encX, encY)
			return err
		}, func() error {
			return bob.Protocol2(context.Background())
		})
		require.Equal(t, c.want, got, "x=%d y=%d", c.x, c.y)
	}
}

func TestProtocol2Joye(t *testing.T) {
	keys := generateTestKeys(t, DGKMode)
	cases := []struct {
		x, y int64
		want bool
	}{
		{25, 50, false},
		{50, 50, true},
		{75, 50, true},
	}
	for _, c := range cases {
		alice, bob := newSession(t, keys, DGKMode, Joye, 7)
		encX, err := dgk.Encrypt(c.x, keys.dgkPub)
		require.NoError(t, err)
		encY, err := dgk.Encrypt(c.y, keys.dgkPub)
		require.NoError(t, err)

		var got bool
		runPair(t, func() error {
			var err error
			got, err = alice.Protocol2(context.Background(), encX, encY)
			return err
		}, func() error {
			return bob.Protocol2(context.Background())
		})
		require.Equal(t, c.want, got, "x=%d y=%d", c.x, c.y)
	}
}

func TestDivideByPublicDivisor(t *testing.T) {
	keys := generateTestKeys(t, PaillierMode)
	const x = int64(100)
	for _, d := range []int64{2, 3, 4, 5, 25} {
		alice, bob := newSession(t, keys, PaillierMode, Original, 7)
		encX, err := paillier.Encrypt(big.NewInt(x), keys.paillierPub)
		require.NoError(t, err)

		var encQuot *big.Int
		runPair(t, func() error {
			var err error
			encQuot, err = alice.Divide(context.Background(), encX, d)
			return err
		}, func() error {
			return bob.Divide(context.Background())
		})
		quot, err := paillier.Decrypt(encQuot, keys.paillierPriv)
		require.NoError(t, err)
		require.Equal(t, x/d, quot.Int64(), "d=%d", d)
	}
}

func TestMultiply(t *testing.T) {
	keys := generateTestKeys(t, DGKMode)
	alice, bob := newSession(t, keys, DGKMode, Original, 7)
	encX, err := dgk.Encrypt(6, keys.dgkPub)
	require.NoError(t, err)
	encY, err := dgk.Encrypt(7, keys.dgkPub)
	require.NoError(t, err)

	var encProd *big.Int
	runPair(t, func() error {
		var err error
		encProd, err = alice.Multiply(context.Background(), encX, encY)
		return err
	}, func() error {
		return bob.Multiply(context.Background())
	})
	prod, err := dgk.Decrypt(encProd, keys.dgkPriv)
	require.NoError(t, err)
	require.Equal(t, int64(42), prod)
}

func TestGetKValuesAscending(t *testing.T) {
	keys := generateTestKeys(t, PaillierMode)
	values := []int64{9, 3, 7, 1, 6, 4}
	alice, bob := newSession(t, keys, PaillierMode, Original, 7)

	ciphertexts := make([]*big.Int, len(values))
	for i, v := range values {
		c, err := paillier.Encrypt(big.NewInt(v), keys.paillierPub)
		require.NoError(t, err)
		ciphertexts[i] = c
	}

	var result []*big.Int
	runPair(t, func() error {
		var err error
		result, err = alice.GetKValues(context.Background(), ciphertexts, 3, true, false)
		return err
	}, func() error {
		return bob.GetKValues(context.Background(), len(values), 3)
	})

	require.Len(t, result, 3)
	got := make([]int64, len(result))
	for i, c := range result {
		m, err := paillier.Decrypt(c, keys.paillierPriv)
		require.NoError(t, err)
		got[i] = m.Int64()
	}
	require.Equal(t, []int64{1, 3, 4}, got)
}

func TestGetKValuesRefusesLegacyAliceUnderDGKMode(t *testing.T) {
	keys := generateTestKeys(t, DGKMode)
	alice, _ := newSession(t, keys, DGKMode, Original, 7)
	_, err := alice.GetKValues(context.Background(), nil, 0, true, true)
	require.Error(t, err)
}

func TestPrivateEquals(t *testing.T) {
	keys := generateTestKeys(t, DGKMode)
	cases := []struct {
		mA, mB int64
		want   bool
	}{
		{42, 42, true},
		{42, 43, false},
		{0, 0, true},
	}
	for _, c := range cases {
		alice, bob := newSession(t, keys, DGKMode, Original, 7)
		var got bool
		runPair(t, func() error {
			var err error
			got, err = alice.PrivateEquals(context.Background(), c.mA)
			return err
		}, func() error {
			return bob.PrivateEquals(context.Background(), c.mB)
		})
		require.Equal(t, c.want, got, "mA=%d mB=%d", c.mA, c.mB)
	}
}

func TestEncryptedEquals(t *testing.T) {
	keys := generateTestKeys(t, DGKMode)
	cases := []struct {
		a, b int64
		want bool
	}{
		{17, 17, true},
		{17, 18, false},
	}
	for _, c := range cases {
		alice, bob := newSession(t, keys, DGKMode, Original, 7)
		encA, err := dgk.Encrypt(c.a, keys.dgkPub)
		require.NoError(t, err)
		encB, err := dgk.Encrypt(c.b, keys.dgkPub)
		require.NoError(t, err)

		var got bool
		runPair(t, func() error {
			var err error
			got, err = alice.EncryptedEquals(context.Background(), encA, encB)
			return err
		}, func() error {
			return bob.EncryptedEquals(context.Background())
		})
		require.Equal(t, c.want, got, "a=%d b=%d", c.a, c.b)
	}
}
