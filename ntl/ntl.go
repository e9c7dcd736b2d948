// Package ntl collects the number-theory primitives shared by the DGK and
// Paillier cryptosystems: random sampling, modular inverses, the Jacobi
// symbol, CRT recombination, and a couple of small big.Int conveniences.
package ntl

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// RandomBits returns a uniform random integer in [0, 2^n).
func RandomBits(n int) (*big.Int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ntl: RandomBits: n must be positive, got %d", n)
	}
	return rand.Int(rand.Reader, new(big.Int).Lsh(one, uint(n)))
}

// RandomPrime returns a uniform random prime of exactly bits bits.
func RandomPrime(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("ntl: RandomPrime: bits must be at least 2, got %d", bits)
	}
	return rand.Prime(rand.Reader, bits)
}

// RandomCoprime returns a uniform random element of Z_n* (an integer in
// [1, n) coprime to n).
func RandomCoprime(n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("ntl: RandomCoprime: n must be positive")
	}
	for {
		r, err := rand.Int(rand.Reader, n)
		if err != nil {
			return nil, err
		}
		if r.Sign() == 0 {
			continue
		}
		if new(big.Int).GCD(nil, nil, r, n).Cmp(one) == 0 {
			return r, nil
		}
	}
}

// RandomNonZero returns a uniform random integer in [1, n).
func RandomNonZero(n *big.Int) (*big.Int, error) {
	if n.Cmp(two) < 0 {
		return nil, fmt.Errorf("ntl: RandomNonZero: n must be at least 2, got %s", n)
	}
	bound := new(big.Int).Sub(n, one)
	r, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return nil, err
	}
	return r.Add(r, one), nil
}

// ModInverse returns the inverse of a modulo n, or nil if a has no inverse.
func ModInverse(a, n *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, n)
}

// PosMod returns a mod n normalized into [0, n).
func PosMod(a, n *big.Int) *big.Int {
	m := new(big.Int).Mod(a, n)
	if m.Sign() < 0 {
		m.Add(m, n)
	}
	return m
}

// Jacobi returns the Jacobi symbol (a/n), one of -1, 0, 1.
func Jacobi(a, n *big.Int) int {
	return big.Jacobi(a, n)
}

// CRTCombine solves x ≡ xP (mod p), x ≡ xQ (mod q) for coprime p, q and
// returns x mod p*q, using the standard two-modulus Chinese Remainder
// recombination.
func CRTCombine(xP, p, xQ, q *big.Int) (*big.Int, error) {
	pq := new(big.Int).Mul(p, q)
	qInvModP := new(big.Int).ModInverse(q, p)
	if qInvModP == nil {
		return nil, fmt.Errorf("ntl: CRTCombine: q has no inverse mod p")
	}
	pInvModQ := new(big.Int).ModInverse(p, q)
	if pInvModQ == nil {
		return nil, fmt.Errorf("ntl: CRTCombine: p has no inverse mod q")
	}
	// x = xP*q*(q^-1 mod p) + xQ*p*(p^-1 mod q) (mod pq)
	term1 := new(big.Int).Mul(xP, q)
	term1.Mul(term1, qInvModP)
	term2 := new(big.Int).Mul(xQ, p)
	term2.Mul(term2, pInvModQ)
	x := new(big.Int).Add(term1, term2)
	return PosMod(x, pq), nil
}

// IsProbablyPrime reports whether n passes a Miller-Rabin/Baillie-PSW
// compound test at the given number of Miller-Rabin rounds.
func IsProbablyPrime(n *big.Int, rounds int) bool {
	return n.ProbablyPrime(rounds)
}

// RandomOddMultipleOf searches for a random prime p of exactly bits bits
// such that p ≡ 1 (mod base), by sampling p = k*base + 1 for random k until
// p is prime. This is the search used by DGK keygen for p ≡ 1 (mod u*v_p)
// and q ≡ 1 (mod v_q).
func RandomOddMultipleOf(bits int, base *big.Int, rounds int) (*big.Int, error) {
	if base.Sign() <= 0 {
		return nil, fmt.Errorf("ntl: RandomOddMultipleOf: base must be positive")
	}
	// k is drawn from [2^(bits-1)/base, 2^bits/base), which keeps k*base + 1
	// below 2^bits; candidates shorter than bits bits are rejected.
	lo := new(big.Int).Lsh(one, uint(bits-1))
	lo.Div(lo, base)
	hi := new(big.Int).Lsh(one, uint(bits))
	hi.Div(hi, base)
	span := new(big.Int).Sub(hi, lo)
	if span.Sign() <= 0 {
		return nil, fmt.Errorf("ntl: RandomOddMultipleOf: base too large for %d bits", bits)
	}
	for {
		k, err := rand.Int(rand.Reader, span)
		if err != nil {
			return nil, err
		}
		k.Add(k, lo)
		candidate := new(big.Int).Mul(k, base)
		candidate.Add(candidate, one)
		if candidate.BitLen() != bits {
			continue
		}
		if candidate.ProbablyPrime(rounds) {
			return candidate, nil
		}
	}
}

// TwoPow returns 2^i as a *big.Int.
func TwoPow(i int64) *big.Int {
	return new(big.Int).Lsh(one, uint(i))
}

// Two and One are shared small constants exposed for callers that need to
// compose them without allocating a fresh big.Int.
var (
	Two = two
	One = one
)
