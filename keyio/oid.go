// Package keyio implements a PEM/DER key-serialization format: a PEM
// envelope around DER, where the DER is a SubjectPublicKeyInfo (public) or
// PKCS#8-shaped PrivateKeyInfo (private) whose inner key material is an
// ASN.1 SEQUENCE of INTEGERs in a declared, per-scheme order (ElGamal's
// ends with a BOOLEAN additive flag).
//
// This package reaches for the standard library's encoding/asn1,
// encoding/pem, and crypto/x509/pkix, the same building blocks Go's own
// crypto/x509 uses for PKIX-shaped keys: a format contract like this one
// is exactly what the Go ecosystem speaks ASN.1/PEM with the standard
// library for.
package keyio

import "encoding/asn1"

// pen is CipherCraft's IANA Private Enterprise Number arc.
var pen = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 10384}

// Algorithm identifies which cryptosystem a key belongs to.
type Algorithm int

const (
	AlgorithmDGK Algorithm = iota + 1
	AlgorithmElGamal
	AlgorithmGM
	AlgorithmPaillier
)

// oid returns the ASN.1 Object Identifier for alg, under
// 1.3.6.1.4.1.10384.{1,2,3,4} for DGK/ElGamal/GM/Paillier respectively.
func oid(alg Algorithm) asn1.ObjectIdentifier {
	arc := append(asn1.ObjectIdentifier{}, pen...)
	return append(arc, int(alg))
}

// algorithmFromOID inverts oid, returning the Algorithm an OID names.
func algorithmFromOID(id asn1.ObjectIdentifier) (Algorithm, bool) {
	if len(id) != len(pen)+1 {
		return 0, false
	}
	for i, v := range pen {
		if id[i] != v {
			return 0, false
		}
	}
	switch id[len(id)-1] {
	case int(AlgorithmDGK):
		return AlgorithmDGK, true
	case int(AlgorithmElGamal):
		return AlgorithmElGamal, true
	case int(AlgorithmGM):
		return AlgorithmGM, true
	case int(AlgorithmPaillier):
		return AlgorithmPaillier, true
	default:
		return 0, false
	}
}
