// Package paillier implements the Paillier cryptosystem: additively
// homomorphic public-key encryption over Z_n, with ciphertexts in the
// multiplicative group of Z_{n^2}.
package paillier

import (
	"fmt"
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/errs"
)

// PublicKey is the Paillier public key (n, n^2, g, key_size). g = n+1 is
// the standard choice, permitted (and used) by this package.
type PublicKey struct {
	N       *big.Int
	NSquare *big.Int
	G       *big.Int
	KeySize int
}

// NewPublicKey constructs a Paillier public key with the standard
// generator g = n+1.
func NewPublicKey(n *big.Int, keySize int) (*PublicKey, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, errs.Newf(errs.KeyParamInvalid, "paillier.NewPublicKey", "n must be positive")
	}
	return &PublicKey{
		N:       n,
		NSquare: new(big.Int).Mul(n, n),
		G:       new(big.Int).Add(n, big.NewInt(1)),
		KeySize: keySize,
	}, nil
}

// String renders the public parameters.
func (pk *PublicKey) String() string {
	return fmt.Sprintf("key_size = %d\nn =        %s\nmodulus =  %s\ng =        %s\n",
		pk.KeySize, pk.N, pk.NSquare, pk.G)
}

// Equal reports structural equality on the canonical parameter tuple.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk == other {
		return true
	}
	if pk == nil || other == nil {
		return false
	}
	return pk.N.Cmp(other.N) == 0 && pk.G.Cmp(other.G) == 0 && pk.KeySize == other.KeySize
}

// PrivateKey is the Paillier private key: the public parameters plus
// (lambda, mu, alpha, rho). alpha is always lambda; rho is the
// corresponding precomputed inverse, recomputed and validated on load by
// VerifyRho. P and Q, when present, are the prime factors of N and
// switch Decrypt onto the faster per-prime CRT path; a key decoded from
// DER never carries them and decrypts the standard way.
type PrivateKey struct {
	Pub *PublicKey

	Lambda *big.Int
	Mu     *big.Int
	Alpha  *big.Int
	Rho    *big.Int

	P *big.Int
	Q *big.Int
}

// NewPrivateKey constructs a Paillier private key from lambda, mu, alpha
// and the corresponding public key, computing rho = L(g^lambda mod
// n^2)^-1 mod n^2.
func NewPrivateKey(pub *PublicKey, lambda, mu, alpha *big.Int) (*PrivateKey, error) {
	if pub == nil {
		return nil, errs.Newf(errs.KeyParamInvalid, "paillier.NewPrivateKey", "public key must be non-nil")
	}
	gLambda := new(big.Int).Exp(pub.G, lambda, pub.NSquare)
	l := L(gLambda, pub.N)
	rho := new(big.Int).ModInverse(l, pub.NSquare)
	if rho == nil {
		return nil, errs.Newf(errs.KeyParamInvalid, "paillier.NewPrivateKey", "failed to compute rho: L(g^lambda) has no inverse mod n^2")
	}
	return &PrivateKey{
		Pub:    pub,
		Lambda: lambda,
		Mu:     mu,
		Alpha:  alpha,
		Rho:    rho,
	}, nil
}

// WithCRT returns a copy of sk carrying the prime factors p and q, so
// that Decrypt uses the per-prime fast path instead of exponentiating
// mod n^2 directly. p*q must equal sk.Pub.N.
func (sk *PrivateKey) WithCRT(p, q *big.Int) (*PrivateKey, error) {
	const op = "paillier.PrivateKey.WithCRT"
	n := new(big.Int).Mul(p, q)
	if n.Cmp(sk.Pub.N) != 0 {
		return nil, errs.Newf(errs.KeyParamInvalid, op, "p*q does not match the public modulus n")
	}
	out := *sk
	out.P = p
	out.Q = q
	return &out, nil
}

// VerifyRho recomputes rho from (n, g, lambda) and reports whether it
// matches the stored value — a consistency check worth running when rho
// was loaded from a DER-encoded key rather than derived locally.
func (sk *PrivateKey) VerifyRho(storedRho *big.Int) error {
	gLambda := new(big.Int).Exp(sk.Pub.G, sk.Lambda, sk.Pub.NSquare)
	l := L(gLambda, sk.Pub.N)
	recomputed := new(big.Int).ModInverse(l, sk.Pub.NSquare)
	if recomputed == nil || recomputed.Cmp(storedRho) != 0 {
		return errs.Newf(errs.KeyParamInvalid, "paillier.PrivateKey.VerifyRho", "stored rho does not match recomputed value")
	}
	return nil
}

// String renders only the public parameters, mirroring
// PaillierPrivateKey.toString().
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
	return sk.Lambda.Cmp(other.Lambda) == 0 && sk.Mu.Cmp(other.Mu) == 0 &&
		sk.Alpha.Cmp(other.Alpha) == 0 && sk.Pub.Equal(other.Pub) &&
		bigIntEqual(sk.P, other.P) && bigIntEqual(sk.Q, other.Q)
}

// bigIntEqual reports whether a and b are the same big.Int value,
// treating two nils as equal.
func bigIntEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// L is the Paillier decryption helper L(x) = (x-1)/n.
func L(x, n *big.Int) *big.Int {
	t := new(big.Int).Sub(x, big.NewInt(1))
	return t.Div(t, n)
}
