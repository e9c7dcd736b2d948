// Package comparison implements the two-party secure comparison and
// outsourced-arithmetic suite: Alice drives, Bob holds private key
// material, and the two exchange length-prefixed messages over a
// wire.Channel to jointly evaluate Multiply, Divide, Protocol1, Protocol2,
// GetKValues, PrivateEquals and EncryptedEquals without either side
// learning more than its specified output.
//
// The cryptosystem interface and its dgkSystem/paillierSystem wrappers are
// a small interface that both concrete schemes satisfy by embedding their
// own public key and delegating to their package-level operations.
package comparison

import "github.com/adwise-fiu/Ciphercraft/errs"

// Mode selects which cryptosystem carries the "primary" ciphertexts
// exchanged in Multiply, Divide, GetKValues and EncryptedEquals. The
// bitwise scan of Protocol1 always runs under DGK regardless of Mode,
// since DGK's small plaintext space is what makes that scan's per-bit
// decryption cheap; Paillier mode uses it only as an internal helper.
type Mode int

const (
	DGKMode Mode = iota
	PaillierMode
)

func (m Mode) String() string {
	switch m {
	case DGKMode:
		return "DGK"
	case PaillierMode:
		return "PAILLIER"
	default:
		return "UNKNOWN"
	}
}

// Variant selects which published comparison protocol's semantics govern
// Protocol1/Protocol2.
type Variant int

const (
	Original Variant = iota
	Veugen
	Joye
)

func (v Variant) String() string {
	switch v {
	case Original:
		return "ORIGINAL"
	case Veugen:
		return "VEUGEN"
	case Joye:
		return "JOYE"
	default:
		return "UNKNOWN"
	}
}

func unsupported(op string, format string, args ...any) error {
	return errs.Newf(errs.UnsupportedCombination, op, format, args...)
}
