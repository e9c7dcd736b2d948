package comparison

import (
	"log"

	"github.com/adwise-fiu/Ciphercraft/dgk"
	"github.com/adwise-fiu/Ciphercraft/errs"
	"github.com/adwise-fiu/Ciphercraft/paillier"
	"github.com/adwise-fiu/Ciphercraft/wire"
)

// Bob responds to every sub-protocol, holding private key material and
// decrypting only the intermediate blinded values each sub-protocol hands
// it.
type Bob struct {
	ch      *wire.Channel
	mode    Mode
	variant Variant
	l       int

	dgkPub   *dgk.PublicKey
	dgkPriv  *dgk.PrivateKey
	paillier *paillier.PrivateKey
	primary  decryptor

	log *log.Logger
}

// NewBob constructs Bob's side of a comparison session. dgkPriv is always
// required; paillierPriv is required only when mode is PaillierMode.
func NewBob(ch *wire.Channel, mode Mode, variant Variant, l int, dgkPriv *dgk.PrivateKey, paillierPriv *paillier.PrivateKey, logger *log.Logger) (*Bob, error) {
	const op = "comparison.NewBob"
	if dgkPriv == nil {
		return nil, errs.Newf(errs.KeyParamInvalid, op, "dgk private key required")
	}
	b := &Bob{ch: ch, mode: mode, variant: variant, l: l, dgkPub: dgkPriv.Pub, dgkPriv: dgkPriv, paillier: paillierPriv, log: logger}
	switch mode {
	case DGKMode:
		b.primary = &dgkSystem{pub: dgkPriv.Pub, priv: dgkPriv}
	case PaillierMode:
		if paillierPriv == nil {
			return nil, errs.Newf(errs.KeyParamInvalid, op, "paillier private key required in PaillierMode")
		}
		b.primary = &paillierSystem{pub: paillierPriv.Pub, priv: paillierPriv}
	default:
		return nil, errs.Newf(errs.KeyParamInvalid, op, "unknown mode %v", mode)
	}
	return b, nil
}

// Mode reports the configured primary cryptosystem.
func (b *Bob) Mode() Mode { return b.mode }

// Variant reports the configured comparison protocol variant.
func (b *Bob) Variant() Variant { return b.variant }

func (b *Bob) logf(format string, args ...any) {
	if b.log != nil {
		b.log.Printf(format, args...)
	}
}
