package dgk

import (
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/errs"
	"github.com/adwise-fiu/Ciphercraft/ntl"
)

// Encrypt returns c = g^m * h^r mod n for a random r in [0, 2^(2t)), after
// checking m is in the plaintext space [0, u). The h^r term is computed via
// the hLUT by decomposing r into its binary digits.
func Encrypt(m int64, pub *PublicKey) (*big.Int, error) {
	if m < 0 || m >= pub.u {
		return nil, errs.Newf(errs.PlaintextOutOfRange, "dgk.Encrypt", "m=%d not in [0, %d)", m, pub.u)
	}
	r, err := ntl.RandomBits(2 * pub.T)
	if err != nil {
		return nil, errs.New(errs.InternalInvariant, "dgk.Encrypt", err)
	}
	return encryptFixed(m, r, pub)
}

// encryptFixed computes g^m * h^r mod n for an explicit randomizer r,
// using the hLUT fast path.
func encryptFixed(m int64, r *big.Int, pub *PublicKey) (*big.Int, error) {
	c := pub.gPow(m)
	hr := hPowFast(r, pub)
	result := new(big.Int).Mul(c, hr)
	result.Mod(result, pub.N)
	return result, nil
}

// hPowFast computes h^r mod n by decomposing r = Σ r_i * 2^i and
// multiplying the precomputed h^(2^i) terms from hLUT.
func hPowFast(r *big.Int, pub *PublicKey) *big.Int {
	result := big.NewInt(1)
	for i := 0; i < r.BitLen(); i++ {
		if r.Bit(i) == 1 {
			result.Mul(result, pub.hPow2(int64(i)))
			result.Mod(result, pub.N)
		}
	}
	return result
}

// Decrypt recovers the plaintext from ciphertext c using the private
// decryption lookup table: c' = c^vp mod p, then decLUT[c'].
func Decrypt(c *big.Int, priv *PrivateKey) (int64, error) {
	reduced := new(big.Int).Exp(c, priv.Vp, priv.P)
	reduced.Mod(reduced, priv.P)
	m, ok := priv.lookup(reduced)
	if !ok {
		return 0, errs.Newf(errs.CiphertextMalformed, "dgk.Decrypt", "decryption lookup miss")
	}
	return m, nil
}

// Add returns Enc(m1+m2 mod u) given Enc(m1) and Enc(m2): c1*c2 mod n.
func Add(c1, c2 *big.Int, pub *PublicKey) *big.Int {
	result := new(big.Int).Mul(c1, c2)
	result.Mod(result, pub.N)
	return result
}

// Subtract returns Enc(m1-m2 mod u) given Enc(m1) and Enc(m2), computed as
// Add(c1, ScalarMultiply(c2, u-1)) since u-1 ≡ -1 (mod u).
func Subtract(c1, c2 *big.Int, pub *PublicKey) *big.Int {
	negC2 := ScalarMultiply(c2, pub.u-1, pub)
	return Add(c1, negC2, pub)
}

// ScalarMultiply returns Enc(k*m mod u) given Enc(m): c^(k mod u) mod n.
func ScalarMultiply(c *big.Int, k int64, pub *PublicKey) *big.Int {
	kMod := ntl.PosMod(big.NewInt(k), pub.U)
	return new(big.Int).Exp(c, kMod, pub.N)
}

// ReRandomize multiplies c by a fresh encryption of 0, leaving the
// decrypted plaintext unchanged but refreshing the randomizer.
func ReRandomize(c *big.Int, pub *PublicKey) (*big.Int, error) {
	zero, err := Encrypt(0, pub)
	if err != nil {
		return nil, err
	}
	return Add(c, zero, pub), nil
}
