package keyio

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"

	"github.com/adwise-fiu/Ciphercraft/errs"
)

const (
	pemTypePublic  = "PUBLIC KEY"
	pemTypePrivate = "PRIVATE KEY"
)

// subjectPublicKeyInfo mirrors the X.509 SubjectPublicKeyInfo structure
// used to wrap public key material.
type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

// privateKeyInfo mirrors a (simplified) PKCS#8 PrivateKeyInfo structure
// used to wrap private key material.
type privateKeyInfo struct {
	Version    int
	Algorithm  pkix.AlgorithmIdentifier
	PrivateKey []byte
}

// encodePublic wraps the DER encoding of an inner ASN.1 SEQUENCE (the
// scheme-specific tuple of INTEGERs) in a SubjectPublicKeyInfo and returns
// its PEM encoding.
func encodePublic(alg Algorithm, innerDER []byte) ([]byte, error) {
	spki := subjectPublicKeyInfo{
		Algorithm: pkix.AlgorithmIdentifier{Algorithm: oid(alg)},
		PublicKey: asn1.BitString{Bytes: innerDER, BitLength: len(innerDER) * 8},
	}
	der, err := asn1.Marshal(spki)
	if err != nil {
		return nil, errs.New(errs.KeyParamInvalid, "keyio.encodePublic", err)
	}
	block := &pem.Block{Type: pemTypePublic, Bytes: der}
	return pem.EncodeToMemory(block), nil
}

// encodePrivate wraps the DER encoding of an inner ASN.1 SEQUENCE in a
// PrivateKeyInfo and returns its PEM encoding.
func encodePrivate(alg Algorithm, innerDER []byte) ([]byte, error) {
	pki := privateKeyInfo{
		Version:    0,
		Algorithm:  pkix.AlgorithmIdentifier{Algorithm: oid(alg)},
		PrivateKey: innerDER,
	}
	der, err := asn1.Marshal(pki)
	if err != nil {
		return nil, errs.New(errs.KeyParamInvalid, "keyio.encodePrivate", err)
	}
	block := &pem.Block{Type: pemTypePrivate, Bytes: der}
	return pem.EncodeToMemory(block), nil
}

// decodePublic parses a PEM-encoded public key, returning its algorithm
// and the DER of the inner scheme-specific SEQUENCE.
func decodePublic(data []byte) (Algorithm, []byte, error) {
	const op = "keyio.decodePublic"
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemTypePublic {
		return 0, nil, errs.Newf(errs.KeyParamInvalid, op, "no PEM public key block found")
	}
	var spki subjectPublicKeyInfo
	if _, err := asn1.Unmarshal(block.Bytes, &spki); err != nil {
		return 0, nil, errs.New(errs.KeyParamInvalid, op, err)
	}
	alg, ok := algorithmFromOID(spki.Algorithm.Algorithm)
	if !ok {
		return 0, nil, errs.Newf(errs.KeyParamInvalid, op, "unrecognized algorithm OID %v", spki.Algorithm.Algorithm)
	}
	return alg, spki.PublicKey.RightAlign(), nil
}

// decodePrivate parses a PEM-encoded private key, returning its algorithm
// and the DER of the inner scheme-specific SEQUENCE.
func decodePrivate(data []byte) (Algorithm, []byte, error) {
	const op = "keyio.decodePrivate"
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemTypePrivate {
		return 0, nil, errs.Newf(errs.KeyParamInvalid, op, "no PEM private key block found")
	}
	var pki privateKeyInfo
	if _, err := asn1.Unmarshal(block.Bytes, &pki); err != nil {
		return 0, nil, errs.New(errs.KeyParamInvalid, op, err)
	}
	alg, ok := algorithmFromOID(pki.Algorithm.Algorithm)
	if !ok {
		return 0, nil, errs.Newf(errs.KeyParamInvalid, op, "unrecognized algorithm OID %v", pki.Algorithm.Algorithm)
	}
	return alg, pki.PrivateKey, nil
}
