package comparison

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/errs"
)

// Multiply performs outsourced multiplication: given
// Enc(x) and Enc(y) under the primary cryptosystem, it returns Enc(x*y)
// without revealing x or y to either party beyond the blinded sums Bob
// must decrypt.
func (a *Alice) Multiply(ctx context.Context, encX, encY *big.Int) (*big.Int, error) {
	const op = "comparison.Alice.Multiply"
	a.logf("%s: start mode=%s", op, a.mode)
	if err := ctx.Err(); err != nil {
		return nil, errs.New(errs.TransportClosed, op, err)
	}
	cs := a.primary
	n := cs.PlaintextModulus()

	rx, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil, errs.New(errs.InternalInvariant, op, err)
	}
	ry, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil, errs.New(errs.InternalInvariant, op, err)
	}
	encRx, err := cs.Encrypt(rx)
	if err != nil {
		return nil, err
	}
	encRy, err := cs.Encrypt(ry)
	if err != nil {
		return nil, err
	}
	blindedX := cs.Add(encX, encRx)
	blindedY := cs.Add(encY, encRy)

	if err := a.ch.SendBigIntArray([]*big.Int{blindedX, blindedY}); err != nil {
		return nil, err
	}

	encProd, err := a.ch.ReceiveBigInt()
	if err != nil {
		return nil, err
	}

	// Enc((x+rx)(y+ry)) - rx*Enc(y) - ry*Enc(x) - Enc(rx*ry) = Enc(xy)
	result := cs.Subtract(encProd, cs.ScalarMultiply(encY, rx))
	result = cs.Subtract(result, cs.ScalarMultiply(encX, ry))
	rxry := new(big.Int).Mul(rx, ry)
	rxry.Mod(rxry, n)
	encRxRy, err := cs.Encrypt(rxry)
	if err != nil {
		return nil, err
	}
	result = cs.Subtract(result, encRxRy)
	a.logf("%s: end", op)
	return result, nil
}

// Multiply is Bob's side of the same exchange: decrypt both blinded
// operands, multiply in the clear, and return a fresh encryption of the
// product.
func (b *Bob) Multiply(ctx context.Context) error {
	const op = "comparison.Bob.Multiply"
	b.logf("%s: start mode=%s", op, b.mode)
	if err := ctx.Err(); err != nil {
		return errs.New(errs.TransportClosed, op, err)
	}
	cs := b.primary
	n := cs.PlaintextModulus()

	blinded, err := b.ch.ReceiveBigIntArray()
	if err != nil {
		return err
	}
	if len(blinded) != 2 {
		return errs.Newf(errs.ProtocolMismatch, op, "expected 2 blinded operands, got %d", len(blinded))
	}
	xr, err := cs.Decrypt(blinded[0])
	if err != nil {
		return err
	}
	yr, err := cs.Decrypt(blinded[1])
	if err != nil {
		return err
	}
	prod := new(big.Int).Mul(xr, yr)
	prod.Mod(prod, n)
	encProd, err := cs.Encrypt(prod)
	if err != nil {
		return err
	}
	err = b.ch.SendBigInt(encProd)
	b.logf("%s: end error=%v", op, err)
	return err
}
