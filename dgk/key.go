// Package dgk implements the Damgård-Geisler-Krøigaard cryptosystem: a
// public-key scheme with a small plaintext space tailored for fast,
// table-driven bitwise comparison.
package dgk

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/adwise-fiu/Ciphercraft/errs"
)

// PublicKey is the DGK public key (n, g, h, u, l, t, k).
//
// It is immutable after construction. gLUT and hLUT are built once, eagerly,
// by the constructor, behind a one-shot guard; gPow and hPow2 pass through
// the same guard, so the tables are never built twice.
type PublicKey struct {
	N *big.Int
	G *big.Int
	H *big.Int
	U *big.Int // plaintext-space order, a small prime

	L int // supported plaintext bit length
	T int // security parameter
	K int // bit length of n

	lutOnce sync.Once
	gLUT    map[int64]*big.Int // i -> g^i mod n, for i in [0, u)
	hLUT    map[int64]*big.Int // i -> h^(2^i) mod n, for i in [0, 2t)

	u int64 // cached U.Int64(), valid because u < 2^(l+3)
}

// NewPublicKey constructs a DGK public key and eagerly builds its lookup
// tables synchronously at construction time.
func NewPublicKey(n, g, h, u *big.Int, l, t, k int) (*PublicKey, error) {
	if n == nil || g == nil || h == nil || u == nil {
		return nil, errs.Newf(errs.KeyParamInvalid, "dgk.NewPublicKey", "all key parameters must be non-nil")
	}
	if !u.ProbablyPrime(30) {
		return nil, errs.Newf(errs.KeyParamInvalid, "dgk.NewPublicKey", "u must be prime")
	}
	pk := &PublicKey{
		N: n, G: g, H: h, U: u,
		L: l, T: t, K: k,
		u: u.Int64(),
	}
	pk.BuildLookupTables()
	return pk, nil
}

// BuildLookupTables populates gLUT and hLUT if they have not been built
// yet. Safe to call more than once and from multiple goroutines; only the
// first call does any work.
func (pk *PublicKey) BuildLookupTables() {
	pk.lutOnce.Do(pk.buildLookupTablesOnce)
}

func (pk *PublicKey) buildLookupTablesOnce() {
	pk.gLUT = make(map[int64]*big.Int, pk.u)
	for i := int64(0); i < pk.u; i++ {
		pk.gLUT[i] = new(big.Int).Exp(pk.G, big.NewInt(i), pk.N)
	}
	pk.hLUT = make(map[int64]*big.Int, 2*pk.T)
	for i := 0; i < 2*pk.T; i++ {
		exp := new(big.Int).Lsh(big.NewInt(1), uint(i))
		exp.Mod(exp, pk.N)
		pk.hLUT[int64(i)] = new(big.Int).Exp(pk.H, exp, pk.N)
	}
}

// gPow returns g^i mod n from the lookup table, building the table on
// first use if it has not already been built.
func (pk *PublicKey) gPow(i int64) *big.Int {
	pk.BuildLookupTables()
	if v, ok := pk.gLUT[i]; ok {
		return v
	}
	return new(big.Int).Exp(pk.G, big.NewInt(i), pk.N)
}

// hPow2 returns h^(2^i) mod n from the lookup table, building the table on
// first use if it has not already been built.
func (pk *PublicKey) hPow2(i int64) *big.Int {
	pk.BuildLookupTables()
	if v, ok := pk.hLUT[i]; ok {
		return v
	}
	exp := new(big.Int).Lsh(big.NewInt(1), uint(i))
	exp.Mod(exp, pk.N)
	return new(big.Int).Exp(pk.H, exp, pk.N)
}

// U64 returns the plaintext-space order as an int64. u is small
// (l+2 < bits(u) <= l+3), so the value is exact for l <= 60.
func (pk *PublicKey) U64() int64 {
	return pk.u
}

// String renders the public parameters, mirroring DGKPublicKey.toString().
func (pk *PublicKey) String() string {
	return fmt.Sprintf("n: %s\ng: %s\nh: %s\nu: %s\nl: %d\nt: %d\nk: %d\n",
		pk.N, pk.G, pk.H, pk.U, pk.L, pk.T, pk.K)
}

// Equal reports structural equality on the canonical parameter tuple.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk == other {
		return true
	}
	if pk == nil || other == nil {
		return false
	}
	return pk.N.Cmp(other.N) == 0 &&
		pk.G.Cmp(other.G) == 0 &&
		pk.H.Cmp(other.H) == 0 &&
		pk.U.Cmp(other.U) == 0 &&
		pk.L == other.L && pk.T == other.T && pk.K == other.K
}

// PrivateKey is the DGK private key: the public parameters plus (p, q, vp,
// vq) and the private decryption lookup table decLUT, built once at
// construction for O(1) table-driven decryption.
type PrivateKey struct {
	Pub *PublicKey

	P  *big.Int
	Q  *big.Int
	Vp *big.Int
	Vq *big.Int
	V  *big.Int // vp * vq

	decOnce sync.Once
	decLUT  map[string]int64 // (g^vp)^i mod p -> i, for i in [0, u)
}

// NewPrivateKey constructs a DGK private key from the factorization (p, q,
// vp, vq) and the corresponding public key, and eagerly builds the private
// decryption lookup table.
func NewPrivateKey(p, q, vp, vq *big.Int, pub *PublicKey) (*PrivateKey, error) {
	if pub == nil {
		return nil, errs.Newf(errs.KeyParamInvalid, "dgk.NewPrivateKey", "public key must be non-nil")
	}
	sk := &PrivateKey{
		Pub: pub,
		P:   p, Q: q, Vp: vp, Vq: vq,
		V: new(big.Int).Mul(vp, vq),
	}
	sk.buildDecryptionTable()
	return sk, nil
}

func (sk *PrivateKey) buildDecryptionTable() {
	sk.decOnce.Do(func() {
		base := new(big.Int).Exp(sk.Pub.G, sk.Vp, sk.P)
		base.Mod(base, sk.P)
		sk.decLUT = make(map[string]int64, sk.Pub.u)
		acc := big.NewInt(1)
		for i := int64(0); i < sk.Pub.u; i++ {
			sk.decLUT[acc.String()] = i
			acc = new(big.Int).Mul(acc, base)
			acc.Mod(acc, sk.P)
		}
	})
}

// lookup returns the plaintext for a reduced ciphertext value c' = c^vp mod
// p, or (0, false) if c' is not present in the table (a malformed
// ciphertext or an out-of-range plaintext).
func (sk *PrivateKey) lookup(reduced *big.Int) (int64, bool) {
	sk.buildDecryptionTable()
	v, ok := sk.decLUT[reduced.String()]
	return v, ok
}

// String renders only the public parameters, mirroring
// DGKPrivateKey.toString() hiding the secret factorization.
func (sk *PrivateKey) String() string {
	return sk.Pub.String()
}

// Equal reports structural equality on the full private parameter tuple.
func (sk *PrivateKey) Equal(other *PrivateKey) bool {
	if sk == other {
		return true
	}
	if sk == nil || other == nil {
		return false
	}
	return sk.P.Cmp(other.P) == 0 && sk.Q.Cmp(other.Q) == 0 &&
		sk.Vp.Cmp(other.Vp) == 0 && sk.Vq.Cmp(other.Vq) == 0 &&
		sk.Pub.Equal(other.Pub)
}
