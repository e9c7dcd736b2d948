// Package gm is a contract-only stand-in for the Goldwasser-Micali
// probabilistic cryptosystem: simpler than DGK/Paillier and not on the
// comparison protocol path. Only the public key shape needed by keyio's
// OID table is modeled here; bit-level XOR-homomorphic encryption itself
// is out of scope.
package gm

import "math/big"

// PublicKey is the Goldwasser-Micali public key: a modulus n = p*q and a
// quadratic non-residue y used to encrypt one bit at a time.
type PublicKey struct {
	N *big.Int
	Y *big.Int
}

// NewPublicKey constructs a Goldwasser-Micali public key.
func NewPublicKey(n, y *big.Int) *PublicKey {
	return &PublicKey{N: n, Y: y}
}

// String renders the public parameters.
func (pk *PublicKey) String() string {
	return "n=" + pk.N.String() + "\ny=" + pk.Y.String() + "\n"
}

// Equal reports structural equality on the canonical parameter tuple.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk == other {
		return true
	}
	if pk == nil || other == nil {
		return false
	}
	return pk.N.Cmp(other.N) == 0 && pk.Y.Cmp(other.Y) == 0
}
