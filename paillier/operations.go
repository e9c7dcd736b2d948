package paillier

import (
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/errs"
	"github.com/adwise-fiu/Ciphercraft/ntl"
)

// Encrypt returns Enc(m, r) = (1 + m*n) * r^n mod n^2 for a random r in
// Z_n*, the fast form that avoids the full g^m exponentiation
// since g = n+1.
func Encrypt(m *big.Int, pub *PublicKey) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, errs.Newf(errs.PlaintextOutOfRange, "paillier.Encrypt", "m=%s not in [0, %s)", m, pub.N)
	}
	r, err := ntl.RandomCoprime(pub.N)
	if err != nil {
		return nil, errs.New(errs.InternalInvariant, "paillier.Encrypt", err)
	}
	return EncryptFixed(m, r, pub)
}

// EncryptFixed computes Enc(m, r) for an explicit randomizer r, used both
// by Encrypt and by the comparison protocols when a specific randomizer
// must be reused or tracked.
func EncryptFixed(m, r *big.Int, pub *PublicKey) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, errs.Newf(errs.PlaintextOutOfRange, "paillier.EncryptFixed", "m=%s not in [0, %s)", m, pub.N)
	}
	// (1 + m*n) mod n^2
	gm := new(big.Int).Mul(m, pub.N)
	gm.Add(gm, big.NewInt(1))
	gm.Mod(gm, pub.NSquare)

	rn := new(big.Int).Exp(r, pub.N, pub.NSquare)

	c := new(big.Int).Mul(gm, rn)
	c.Mod(c, pub.NSquare)
	return c, nil
}

// Decrypt recovers the plaintext m = L(c^lambda mod n^2) * mu mod n. If
// priv carries p and q (the fast decryption variant), it instead
// decrypts separately mod p^2 and mod q^2 and CRT-recombines, each
// exponentiation working over a modulus half the bit width of n^2.
func Decrypt(c *big.Int, priv *PrivateKey) (*big.Int, error) {
	if c.Sign() <= 0 || c.Cmp(priv.Pub.NSquare) >= 0 {
		return nil, errs.Newf(errs.CiphertextMalformed, "paillier.Decrypt", "ciphertext out of range for n^2")
	}
	if priv.P != nil && priv.Q != nil {
		return decryptCRT(c, priv)
	}
	u := new(big.Int).Exp(c, priv.Lambda, priv.Pub.NSquare)
	l := L(u, priv.Pub.N)
	m := new(big.Int).Mul(l, priv.Mu)
	m.Mod(m, priv.Pub.N)
	return m, nil
}

// decryptCRT recovers m mod p and m mod q independently via decryptMod,
// then combines them with the standard CRT formula for m mod (p*q).
func decryptCRT(c *big.Int, priv *PrivateKey) (*big.Int, error) {
	const op = "paillier.decryptCRT"
	p, q, g := priv.P, priv.Q, priv.Pub.G

	mp, err := decryptMod(c, p, g)
	if err != nil {
		return nil, err
	}
	mq, err := decryptMod(c, q, g)
	if err != nil {
		return nil, err
	}

	qInvModP := new(big.Int).ModInverse(q, p)
	if qInvModP == nil {
		return nil, errs.Newf(errs.KeyParamInvalid, op, "q has no inverse mod p")
	}
	diff := new(big.Int).Sub(mp, mq)
	diff.Mul(diff, qInvModP)
	diff.Mod(diff, p)

	m := new(big.Int).Mul(diff, q)
	m.Add(m, mq)
	m.Mod(m, priv.Pub.N)
	return m, nil
}

// decryptMod recovers m mod prime from a ciphertext encrypted under the
// paired public key, using prime-1 in place of lambda and working mod
// prime^2 instead of n^2: L_prime(c^(prime-1) mod prime^2) is linear in
// m the same way L(c^lambda mod n^2) is in the full-width decryption.
func decryptMod(c, prime, g *big.Int) (*big.Int, error) {
	const op = "paillier.decryptMod"
	primeSquare := new(big.Int).Mul(prime, prime)
	exp := new(big.Int).Sub(prime, big.NewInt(1))

	cp := new(big.Int).Mod(c, primeSquare)
	u := new(big.Int).Exp(cp, exp, primeSquare)
	lu := L(u, prime)

	gp := new(big.Int).Mod(g, primeSquare)
	gExp := new(big.Int).Exp(gp, exp, primeSquare)
	lg := L(gExp, prime)
	h := new(big.Int).ModInverse(lg, prime)
	if h == nil {
		return nil, errs.Newf(errs.KeyParamInvalid, op, "L(g^(prime-1)) has no inverse mod prime")
	}

	m := new(big.Int).Mul(lu, h)
	m.Mod(m, prime)
	return m, nil
}

// Add returns Enc(m1+m2 mod n) given Enc(m1), Enc(m2): c1*c2 mod n^2.
func Add(c1, c2 *big.Int, pub *PublicKey) *big.Int {
	result := new(big.Int).Mul(c1, c2)
	result.Mod(result, pub.NSquare)
	return result
}

// Subtract returns Enc(m1-m2 mod n) given Enc(m1), Enc(m2), computed as
// Add(c1, ScalarMultiply(c2, n-1)).
func Subtract(c1, c2 *big.Int, pub *PublicKey) *big.Int {
	nMinus1 := new(big.Int).Sub(pub.N, big.NewInt(1))
	negC2 := ScalarMultiply(c2, nMinus1, pub)
	return Add(c1, negC2, pub)
}

// ScalarMultiply returns Enc(k*m mod n) given Enc(m): c^(k mod n) mod n^2.
func ScalarMultiply(c *big.Int, k *big.Int, pub *PublicKey) *big.Int {
	kMod := ntl.PosMod(k, pub.N)
	return new(big.Int).Exp(c, kMod, pub.NSquare)
}

// ReRandomize multiplies c by a fresh encryption of 0, leaving the
// decrypted plaintext unchanged but refreshing the randomizer.
func ReRandomize(c *big.Int, pub *PublicKey) (*big.Int, error) {
	zero, err := Encrypt(big.NewInt(0), pub)
	if err != nil {
		return nil, err
	}
	return Add(c, zero, pub), nil
}
