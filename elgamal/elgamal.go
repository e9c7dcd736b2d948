// Package elgamal is a contract-only stand-in for the ElGamal
// cryptosystem. CipherCraft's core is the DGK/Paillier comparison engine;
// ElGamal is an external collaborator, simpler than DGK/Paillier and not
// on the comparison-protocol path, so only its public key shape is
// modeled here.
//
// The additive/multiplicative mode is fixed at construction rather than
// exposed as a settable field, so a key can never be silently
// reinterpreted by a caller holding a shared reference.
package elgamal

import "math/big"

// PublicKey is the ElGamal public key (p, g, h), plus the immutable
// additive/multiplicative mode selected at construction.
type PublicKey struct {
	P *big.Int
	G *big.Int
	H *big.Int

	additive bool
}

// NewMultiplicative constructs an ElGamal public key in its standard,
// multiplicatively-homomorphic form.
func NewMultiplicative(p, g, h *big.Int) *PublicKey {
	return &PublicKey{P: p, G: g, H: h, additive: false}
}

// NewAdditive constructs an ElGamal public key in its
// additively-homomorphic (exponential ElGamal) form.
func NewAdditive(p, g, h *big.Int) *PublicKey {
	return &PublicKey{P: p, G: g, H: h, additive: true}
}

// Additive reports whether this key was constructed in additive mode.
// There is no corresponding setter: the mode is fixed for the life of the
// key.
func (pk *PublicKey) Additive() bool {
	return pk.additive
}

// String renders the public parameters.
func (pk *PublicKey) String() string {
	return "p=" + pk.P.String() + "\ng=" + pk.G.String() + "\nh=" + pk.H.String() + "\n"
}

// Equal reports structural equality, including the additive mode.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk == other {
		return true
	}
	if pk == nil || other == nil {
		return false
	}
	return pk.P.Cmp(other.P) == 0 && pk.G.Cmp(other.G) == 0 &&
		pk.H.Cmp(other.H) == 0 && pk.additive == other.additive
}
