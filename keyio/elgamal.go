package keyio

import (
	"encoding/asn1"
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/elgamal"
	"github.com/adwise-fiu/Ciphercraft/errs"
)

// elgamalPublicSeq is the inner ASN.1 SEQUENCE for an ElGamal public key,
// in declared field order: p, g, h, additive.
type elgamalPublicSeq struct {
	P        *big.Int
	G        *big.Int
	H        *big.Int
	Additive bool
}

// EncodeElGamalPublicKey serializes pub to a PEM-encoded
// SubjectPublicKeyInfo.
func EncodeElGamalPublicKey(pub *elgamal.PublicKey) ([]byte, error) {
	inner := elgamalPublicSeq{P: pub.P, G: pub.G, H: pub.H, Additive: pub.Additive()}
	der, err := asn1.Marshal(inner)
	if err != nil {
		return nil, errs.New(errs.KeyParamInvalid, "keyio.EncodeElGamalPublicKey", err)
	}
	return encodePublic(AlgorithmElGamal, der)
}

// DecodeElGamalPublicKey parses a PEM-encoded ElGamal public key,
// reconstructing it in additive or multiplicative form according to the
// stored flag.
func DecodeElGamalPublicKey(data []byte) (*elgamal.PublicKey, error) {
	const op = "keyio.DecodeElGamalPublicKey"
	alg, innerDER, err := decodePublic(data)
	if err != nil {
		return nil, err
	}
	if alg != AlgorithmElGamal {
		return nil, errs.Newf(errs.KeyParamInvalid, op, "PEM block does not encode an ElGamal key (OID mismatch)")
	}
	var inner elgamalPublicSeq
	if _, err := asn1.Unmarshal(innerDER, &inner); err != nil {
		return nil, errs.New(errs.KeyParamInvalid, op, err)
	}
	if inner.Additive {
		return elgamal.NewAdditive(inner.P, inner.G, inner.H), nil
	}
	return elgamal.NewMultiplicative(inner.P, inner.G, inner.H), nil
}
