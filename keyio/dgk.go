package keyio

import (
	"encoding/asn1"
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/dgk"
	"github.com/adwise-fiu/Ciphercraft/errs"
)

// dgkPublicSeq is the inner ASN.1 SEQUENCE for a DGK public key, in the
// declared field order: n, g, h, u, l, t, k.
type dgkPublicSeq struct {
	N *big.Int
	G *big.Int
	H *big.Int
	U *big.Int
	L int
	T int
	K int
}

// dgkPrivateSeq is the inner ASN.1 SEQUENCE for a DGK private key, in the
// declared field order: p, q, vp, vq, n, g, h, u, l, t, k.
type dgkPrivateSeq struct {
	P  *big.Int
	Q  *big.Int
	Vp *big.Int
	Vq *big.Int
	N  *big.Int
	G  *big.Int
	H  *big.Int
	U  *big.Int
	L  int
	T  int
	K  int
}

// EncodeDGKPublicKey serializes pub to a PEM-encoded SubjectPublicKeyInfo.
func EncodeDGKPublicKey(pub *dgk.PublicKey) ([]byte, error) {
	inner := dgkPublicSeq{N: pub.N, G: pub.G, H: pub.H, U: pub.U, L: pub.L, T: pub.T, K: pub.K}
	der, err := asn1.Marshal(inner)
	if err != nil {
		return nil, errs.New(errs.KeyParamInvalid, "keyio.EncodeDGKPublicKey", err)
	}
	return encodePublic(AlgorithmDGK, der)
}

// DecodeDGKPublicKey parses a PEM-encoded DGK public key.
func DecodeDGKPublicKey(data []byte) (*dgk.PublicKey, error) {
	const op = "keyio.DecodeDGKPublicKey"
	alg, innerDER, err := decodePublic(data)
	if err != nil {
		return nil, err
	}
	if alg != AlgorithmDGK {
		return nil, errs.Newf(errs.KeyParamInvalid, op, "PEM block does not encode a DGK key (OID mismatch)")
	}
	var inner dgkPublicSeq
	if _, err := asn1.Unmarshal(innerDER, &inner); err != nil {
		return nil, errs.New(errs.KeyParamInvalid, op, err)
	}
	return dgk.NewPublicKey(inner.N, inner.G, inner.H, inner.U, inner.L, inner.T, inner.K)
}

// EncodeDGKPrivateKey serializes priv to a PEM-encoded PrivateKeyInfo.
func EncodeDGKPrivateKey(priv *dgk.PrivateKey) ([]byte, error) {
	pub := priv.Pub
	inner := dgkPrivateSeq{
		P: priv.P, Q: priv.Q, Vp: priv.Vp, Vq: priv.Vq,
		N: pub.N, G: pub.G, H: pub.H, U: pub.U, L: pub.L, T: pub.T, K: pub.K,
	}
	der, err := asn1.Marshal(inner)
	if err != nil {
		return nil, errs.New(errs.KeyParamInvalid, "keyio.EncodeDGKPrivateKey", err)
	}
	return encodePrivate(AlgorithmDGK, der)
}

// DecodeDGKPrivateKey parses a PEM-encoded DGK private key, rebuilding the
// embedded public key and the private decryption lookup table.
func DecodeDGKPrivateKey(data []byte) (*dgk.PrivateKey, error) {
	const op = "keyio.DecodeDGKPrivateKey"
	alg, innerDER, err := decodePrivate(data)
	if err != nil {
		return nil, err
	}
	if alg != AlgorithmDGK {
		return nil, errs.Newf(errs.KeyParamInvalid, op, "PEM block does not encode a DGK key (OID mismatch)")
	}
	var inner dgkPrivateSeq
	if _, err := asn1.Unmarshal(innerDER, &inner); err != nil {
		return nil, errs.New(errs.KeyParamInvalid, op, err)
	}
	pub, err := dgk.NewPublicKey(inner.N, inner.G, inner.H, inner.U, inner.L, inner.T, inner.K)
	if err != nil {
		return nil, err
	}
	return dgk.NewPrivateKey(inner.P, inner.Q, inner.Vp, inner.Vq, pub)
}
