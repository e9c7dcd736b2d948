package dgk

import (
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/errs"
	"github.com/adwise-fiu/Ciphercraft/ntl"
)

// primeRounds is the number of Miller-Rabin rounds used for every
// primality test during key generation.
const primeRounds = 30

// KeyGenParams bundles the DGK key-generation parameters: l (plaintext
// bit length), t (security parameter), k (modulus bit length).
type KeyGenParams struct {
	L int
	T int
	K int
}

// DefaultKeyGenParams returns conservative defaults: l=16, t=160, k=1024.
func DefaultKeyGenParams() KeyGenParams {
	return KeyGenParams{L: 16, T: 160, K: 1024}
}

// GenerateKeyPair runs the DGK parameter search: it picks a small prime u
// of bit length in (l+2, l+3], t-bit primes vp, vq, searches for primes
// p ≡ 1 (mod u*vp) and q ≡ 1 (mod vq) of bit length k/2, derives n = p*q,
// and then searches for generators g (order u*vp*vq) and h (order vp*vq).
// Generation restarts the relevant sub-search on a failed order check.
func GenerateKeyPair(params KeyGenParams) (*PublicKey, *PrivateKey, error) {
	const op = "dgk.GenerateKeyPair"
	if params.L <= 0 || params.T <= 0 || params.K <= 0 || params.K%2 != 0 {
		return nil, nil, errs.Newf(errs.KeyParamInvalid, op, "l, t must be positive and k must be a positive even integer")
	}

	u, err := randomU(params.L)
	if err != nil {
		return nil, nil, errs.New(errs.KeyParamInvalid, op, err)
	}
	vp, err := ntl.RandomPrime(params.T)
	if err != nil {
		return nil, nil, errs.New(errs.KeyParamInvalid, op, err)
	}
	vq, err := ntl.RandomPrime(params.T)
	if err != nil {
		return nil, nil, errs.New(errs.KeyParamInvalid, op, err)
	}

	half := params.K / 2
	uvp := new(big.Int).Mul(u, vp)
	p, err := ntl.RandomOddMultipleOf(half, uvp, primeRounds)
	if err != nil {
		return nil, nil, errs.New(errs.KeyParamInvalid, op, err)
	}
	q, err := ntl.RandomOddMultipleOf(half, vq, primeRounds)
	if err != nil {
		return nil, nil, errs.New(errs.KeyParamInvalid, op, err)
	}

	n := new(big.Int).Mul(p, q)

	g, err := findGenerator(p, q, n, u, vp, vq)
	if err != nil {
		return nil, nil, errs.New(errs.InternalInvariant, op, err)
	}
	h, err := findH(p, q, n, vp, vq)
	if err != nil {
		return nil, nil, errs.New(errs.InternalInvariant, op, err)
	}

	pub, err := NewPublicKey(n, g, h, u, params.L, params.T, params.K)
	if err != nil {
		return nil, nil, err
	}
	priv, err := NewPrivateKey(p, q, vp, vq, pub)
	if err != nil {
		return nil, nil, err
	}
	return pub, priv, nil
}

// randomU searches for a random prime u with bit length strictly greater
// than l+2 and at most l+3; u becomes the plaintext-space order.
func randomU(l int) (*big.Int, error) {
	for {
		bits := l + 3
		u, err := ntl.RandomPrime(bits)
		if err != nil {
			return nil, err
		}
		if u.BitLen() > l+2 {
			return u, nil
		}
	}
}

// findGenerator searches for g in Z_n* whose order modulo p and modulo q
// combined is exactly u*vp*vq: sample a random x, raise it to
// (p-1)/(u*vp) * (q-1)/vq, and verify g^u != 1 (mod n) while
// g^(u*vp*vq) == 1 (mod n).
func findGenerator(p, q, n, u, vp, vq *big.Int) (*big.Int, error) {
	pMinus1 := new(big.Int).Sub(p, ntl.One)
	qMinus1 := new(big.Int).Sub(q, ntl.One)

	uvp := new(big.Int).Mul(u, vp)
	expP := new(big.Int).Div(pMinus1, uvp)
	expQ := new(big.Int).Div(qMinus1, vq)
	exponent := new(big.Int).Mul(expP, expQ)

	order := new(big.Int).Mul(uvp, vq)

	for attempt := 0; attempt < 10_000; attempt++ {
		x, err := ntl.RandomCoprime(n)
		if err != nil {
			return nil, err
		}
		g := new(big.Int).Exp(x, exponent, n)
		if g.Sign() == 0 || g.Cmp(ntl.One) == 0 {
			continue
		}
		gu := new(big.Int).Exp(g, u, n)
		if gu.Cmp(ntl.One) == 0 {
			continue // order check failed: g^u == 1, wrong order
		}
		gOrder := new(big.Int).Exp(g, order, n)
		if gOrder.Cmp(ntl.One) != 0 {
			continue
		}
		return g, nil
	}
	return nil, errs.Newf(errs.InternalInvariant, "dgk.findGenerator", "exhausted attempts searching for g")
}

// findH searches for h of order vp*vq modulo n.
func findH(p, q, n, vp, vq *big.Int) (*big.Int, error) {
	pMinus1 := new(big.Int).Sub(p, ntl.One)
	qMinus1 := new(big.Int).Sub(q, ntl.One)

	expP := new(big.Int).Div(pMinus1, vp)
	expQ := new(big.Int).Div(qMinus1, vq)
	exponent := new(big.Int).Mul(expP, expQ)

	order := new(big.Int).Mul(vp, vq)

	for attempt := 0; attempt < 10_000; attempt++ {
		x, err := ntl.RandomCoprime(n)
		if err != nil {
			return nil, err
		}
		h := new(big.Int).Exp(x, exponent, n)
		if h.Cmp(ntl.One) == 0 {
			continue
		}
		hOrder := new(big.Int).Exp(h, order, n)
		if hOrder.Cmp(ntl.One) != 0 {
			continue
		}
		return h, nil
	}
	return nil, errs.Newf(errs.InternalInvariant, "dgk.findH", "exhausted attempts searching for h")
}
