package comparison

import (
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/dgk"
	"github.com/adwise-fiu/Ciphercraft/errs"
	"github.com/adwise-fiu/Ciphercraft/ntl"
	"github.com/adwise-fiu/Ciphercraft/paillier"
)

// cryptosystem is the common additively-homomorphic interface both DGK and
// Paillier satisfy, letting Multiply/Divide/Protocol2/EncryptedEquals be
// written once against whichever scheme Mode selects.
type cryptosystem interface {
	Encrypt(m *big.Int) (*big.Int, error)
	Add(c1, c2 *big.Int) *big.Int
	Subtract(c1, c2 *big.Int) *big.Int
	ScalarMultiply(c *big.Int, k *big.Int) *big.Int
	ReRandomize(c *big.Int) (*big.Int, error)
	PlaintextModulus() *big.Int // u for DGK, n for Paillier
}

// decryptor is the Bob-side counterpart: only the holder of the private
// key can decrypt.
type decryptor interface {
	cryptosystem
	Decrypt(c *big.Int) (*big.Int, error)
}

// dgkSystem adapts dgk's package-level operations to the cryptosystem
// interface by embedding the key and delegating each method to the
// matching package-level function.
type dgkSystem struct {
	pub  *dgk.PublicKey
	priv *dgk.PrivateKey // nil on Alice's side
}

func (s *dgkSystem) Encrypt(m *big.Int) (*big.Int, error) {
	return dgk.Encrypt(m.Int64(), s.pub)
}

func (s *dgkSystem) Add(c1, c2 *big.Int) *big.Int {
	return dgk.Add(c1, c2, s.pub)
}

func (s *dgkSystem) Subtract(c1, c2 *big.Int) *big.Int {
	return dgk.Subtract(c1, c2, s.pub)
}

func (s *dgkSystem) ScalarMultiply(c *big.Int, k *big.Int) *big.Int {
	kMod := ntl.PosMod(k, s.pub.U)
	return dgk.ScalarMultiply(c, kMod.Int64(), s.pub)
}

func (s *dgkSystem) ReRandomize(c *big.Int) (*big.Int, error) {
	return dgk.ReRandomize(c, s.pub)
}

func (s *dgkSystem) PlaintextModulus() *big.Int {
	return s.pub.U
}

func (s *dgkSystem) Decrypt(c *big.Int) (*big.Int, error) {
	if s.priv == nil {
		return nil, errs.Newf(errs.InternalInvariant, "comparison.dgkSystem.Decrypt", "no private key held")
	}
	m, err := dgk.Decrypt(c, s.priv)
	if err != nil {
		return nil, err
	}
	return big.NewInt(m), nil
}

// paillierSystem adapts paillier's package-level operations to the
// cryptosystem interface.
type paillierSystem struct {
	pub  *paillier.PublicKey
	priv *paillier.PrivateKey // nil on Alice's side
}

func (s *paillierSystem) Encrypt(m *big.Int) (*big.Int, error) {
	return paillier.Encrypt(m, s.pub)
}

func (s *paillierSystem) Add(c1, c2 *big.Int) *big.Int {
	return paillier.Add(c1, c2, s.pub)
}

func (s *paillierSystem) Subtract(c1, c2 *big.Int) *big.Int {
	return paillier.Subtract(c1, c2, s.pub)
}

func (s *paillierSystem) ScalarMultiply(c *big.Int, k *big.Int) *big.Int {
	return paillier.ScalarMultiply(c, k, s.pub)
}

func (s *paillierSystem) ReRandomize(c *big.Int) (*big.Int, error) {
	return paillier.ReRandomize(c, s.pub)
}

func (s *paillierSystem) PlaintextModulus() *big.Int {
	return s.pub.N
}

func (s *paillierSystem) Decrypt(c *big.Int) (*big.Int, error) {
	if s.priv == nil {
		return nil, errs.Newf(errs.InternalInvariant, "comparison.paillierSystem.Decrypt", "no private key held")
	}
	return paillier.Decrypt(c, s.priv)
}
