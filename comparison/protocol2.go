package comparison

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/errs"
)

// Protocol2 lifts comparison through ciphertexts: given Enc(x) and Enc(y)
// under the primary cryptosystem, Alice learns the variant's stated
// relation. Under PaillierMode, and under DGKMode for ORIGINAL and JOYE,
// that relation is the inclusive x>=y; under DGKMode for VEUGEN it is the
// strict x>y, tying at x==y the other way. It reduces to the internal
// bitwise scan of Protocol1 on a pair of l-bit residues via a masking
// construction; the tie-break lives entirely in the offset added before
// blinding (2^l for the inclusive relation, 2^l-1 for the strict one),
// not in Protocol1's own borrow detection, which stays a structural fact
// of the bit-decomposition and does not vary with Variant.
func (a *Alice) Protocol2(ctx context.Context, encX, encY *big.Int) (bool, error) {
	const op = "comparison.Alice.Protocol2"
	a.logf("%s: start mode=%s variant=%s l=%d", op, a.mode, a.variant, a.l)
	if err := ctx.Err(); err != nil {
		return false, errs.New(errs.TransportClosed, op, err)
	}
	cs := a.primary
	n := cs.PlaintextModulus()

	twoL := new(big.Int).Lsh(bigOne, uint(a.l))
	if twoL.Cmp(n) >= 0 {
		return false, errs.Newf(errs.UnsupportedCombination, op, "2^l=%s does not fit the primary plaintext modulus %s", twoL, n)
	}

	offset := twoL
	if a.mode == DGKMode && a.variant == Veugen {
		offset = new(big.Int).Sub(twoL, bigOne)
	}
	encOffset, err := cs.Encrypt(offset)
	if err != nil {
		return false, err
	}
	z := cs.Subtract(cs.Add(encOffset, encX), encY)

	// z lies in [0, 2^(l+1)) for x, y in [0, 2^l); drawing r below
	// n-2^(l+1) keeps z+r from wrapping mod n before Bob decrypts it.
	twoL1 := new(big.Int).Lsh(twoL, 1)
	rBound := new(big.Int).Sub(n, twoL1)
	if rBound.Sign() <= 0 {
		return false, errs.Newf(errs.UnsupportedCombination, op, "2^(l+1)=%s does not fit the primary plaintext modulus %s", twoL1, n)
	}
	r, err := rand.Int(rand.Reader, rBound)
	if err != nil {
		return false, errs.New(errs.InternalInvariant, op, err)
	}
	encR, err := cs.Encrypt(r)
	if err != nil {
		return false, err
	}
	blinded := cs.Add(z, encR)
	if err := a.ch.SendBigInt(blinded); err != nil {
		return false, err
	}

	mask := new(big.Int).Sub(twoL, bigOne)
	alpha := new(big.Int).And(r, mask).Int64()
	alphaLEBeta, _, err := a.protocol1(ctx, alpha, true)
	if err != nil {
		return false, err
	}
	borrow := !alphaLEBeta // borrow == [alpha > beta]

	dFloor, err := a.ch.ReceiveBigInt()
	if err != nil {
		return false, err
	}
	rFloor := new(big.Int).Rsh(r, uint(a.l))

	zFloor := new(big.Int).Sub(dFloor, rFloor)
	if borrow {
		zFloor.Sub(zFloor, bigOne)
	}
	// zFloor==1 iff x-y+offset carried past bit l, i.e. iff the variant's
	// chosen relation holds for (x, y).
	result := zFloor.Cmp(bigOne) == 0
	a.logf("%s: end result=%v", op, result)
	return result, nil
}

// Protocol2 is Bob's side of the same exchange.
func (b *Bob) Protocol2(ctx context.Context) error {
	const op = "comparison.Bob.Protocol2"
	b.logf("%s: start mode=%s variant=%s l=%d", op, b.mode, b.variant, b.l)
	if err := ctx.Err(); err != nil {
		return errs.New(errs.TransportClosed, op, err)
	}
	cs := b.primary

	blinded, err := b.ch.ReceiveBigInt()
	if err != nil {
		return err
	}
	d, err := cs.Decrypt(blinded)
	if err != nil {
		return err
	}

	twoL := new(big.Int).Lsh(bigOne, uint(b.l))
	mask := new(big.Int).Sub(twoL, bigOne)
	beta := new(big.Int).And(d, mask).Int64()
	dFloor := new(big.Int).Rsh(d, uint(b.l))

	if err := b.protocol1(ctx, beta, true); err != nil {
		b.logf("%s: end error=%v", op, err)
		return err
	}
	err = b.ch.SendBigInt(dFloor)
	b.logf("%s: end error=%v", op, err)
	return err
}
