package paillier

import (
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/errs"
	"github.com/adwise-fiu/Ciphercraft/ntl"
)

const primeRounds = 30

// GenerateKeyPair generates a Paillier keypair of the given bit length,
// primes p, q of bitSize/2 bits each, n = p*q, g =
// n+1, lambda = lcm(p-1, q-1), mu = L(g^lambda mod n^2)^-1 mod n. alpha is
// always lambda itself; lambda is the only exponent for which the L(g^k
// mod n^2) linearization holds for an arbitrary randomizer r, so it is
// not a tunable.
//
// When useFastVariant is true, the returned private key also carries p
// and q, switching Decrypt onto the per-prime CRT path (exponentiate mod
// p^2 and q^2 separately with p-1 and q-1, then recombine) instead of
// the single full-width exponentiation mod n^2. When false, the key
// decrypts the standard way and is interchangeable with one loaded from
// a DER encoding that never carried p, q.
func GenerateKeyPair(bitSize int, useFastVariant bool) (*PublicKey, *PrivateKey, error) {
	const op = "paillier.GenerateKeyPair"
	if bitSize < 16 || bitSize%2 != 0 {
		return nil, nil, errs.Newf(errs.KeyParamInvalid, op, "bitSize must be even and at least 16, got %d", bitSize)
	}
	half := bitSize / 2
	var p, q *big.Int
	for {
		var err error
		p, err = ntl.RandomPrime(half)
		if err != nil {
			return nil, nil, errs.New(errs.KeyParamInvalid, op, err)
		}
		q, err = ntl.RandomPrime(half)
		if err != nil {
			return nil, nil, errs.New(errs.KeyParamInvalid, op, err)
		}
		if p.Cmp(q) != 0 {
			break
		}
	}

	n := new(big.Int).Mul(p, q)
	pub, err := NewPublicKey(n, bitSize)
	if err != nil {
		return nil, nil, err
	}

	pMinus1 := new(big.Int).Sub(p, ntl.One)
	qMinus1 := new(big.Int).Sub(q, ntl.One)
	gcd := new(big.Int).GCD(nil, nil, pMinus1, qMinus1)
	lambda := new(big.Int).Mul(pMinus1, qMinus1)
	lambda.Div(lambda, gcd)

	gLambda := new(big.Int).Exp(pub.G, lambda, pub.NSquare)
	l := L(gLambda, n)
	mu := new(big.Int).ModInverse(l, n)
	if mu == nil {
		return nil, nil, errs.Newf(errs.KeyParamInvalid, op, "failed to compute mu: L(g^lambda) has no inverse mod n")
	}

	priv, err := NewPrivateKey(pub, lambda, mu, lambda)
	if err != nil {
		return nil, nil, err
	}
	if useFastVariant {
		priv, err = priv.WithCRT(p, q)
		if err != nil {
			return nil, nil, err
		}
	}
	return pub, priv, nil
}
