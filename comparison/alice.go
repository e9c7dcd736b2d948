package comparison

import (
	"log"

	"github.com/adwise-fiu/Ciphercraft/dgk"
	"github.com/adwise-fiu/Ciphercraft/errs"
	"github.com/adwise-fiu/Ciphercraft/paillier"
	"github.com/adwise-fiu/Ciphercraft/wire"
)

// Alice drives every sub-protocol. She holds only public key material;
// Bob on the other end of ch holds the matching private keys. Fields are
// set once at construction — there is no mode-mutator, only the mode
// chosen at NewAlice time.
type Alice struct {
	ch      *wire.Channel
	mode    Mode
	variant Variant
	l       int // DGK comparison bit length

	dgkPub      *dgk.PublicKey
	paillierPub *paillier.PublicKey
	primary     cryptosystem

	log *log.Logger
}

// NewAlice constructs Alice's side of a comparison session. dgkPub is
// always required (Protocol1's bitwise scan runs under DGK regardless of
// mode); paillierPub is required only when mode is PaillierMode.
func NewAlice(ch *wire.Channel, mode Mode, variant Variant, l int, dgkPub *dgk.PublicKey, paillierPub *paillier.PublicKey, logger *log.Logger) (*Alice, error) {
	const op = "comparison.NewAlice"
	if dgkPub == nil {
		return nil, errs.Newf(errs.KeyParamInvalid, op, "dgk public key required")
	}
	a := &Alice{ch: ch, mode: mode, variant: variant, l: l, dgkPub: dgkPub, paillierPub: paillierPub, log: logger}
	switch mode {
	case DGKMode:
		a.primary = &dgkSystem{pub: dgkPub}
	case PaillierMode:
		if paillierPub == nil {
			return nil, errs.Newf(errs.KeyParamInvalid, op, "paillier public key required in PaillierMode")
		}
		a.primary = &paillierSystem{pub: paillierPub}
	default:
		return nil, errs.Newf(errs.KeyParamInvalid, op, "unknown mode %v", mode)
	}
	return a, nil
}

// Mode reports the configured primary cryptosystem.
func (a *Alice) Mode() Mode { return a.mode }

// Variant reports the configured comparison protocol variant.
func (a *Alice) Variant() Variant { return a.variant }

// DGKPublicKey returns the DGK public key Alice holds.
func (a *Alice) DGKPublicKey() *dgk.PublicKey { return a.dgkPub }

// PaillierPublicKey returns the Paillier public key Alice holds, if any.
func (a *Alice) PaillierPublicKey() *paillier.PublicKey { return a.paillierPub }

func (a *Alice) logf(format string, args ...any) {
	if a.log != nil {
		a.log.Printf(format, args...)
	}
}
