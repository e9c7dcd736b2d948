package comparison

import (
	"context"
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/errs"
	"github.com/adwise-fiu/Ciphercraft/ntl"
)

// PrivateEquals compares two plaintexts held one per party: Alice holds
// plaintext mA, Bob holds plaintext mB (supplied to the matching Bob.
// PrivateEquals call), and Alice learns only [mA==mB]. It is implemented
// as two Protocol1 calls — one in each polarity, giving mA<=mB and
// mA<mB — ANDing "mA<=mB" with "NOT(mA<mB)".
func (a *Alice) PrivateEquals(ctx context.Context, mA int64) (bool, error) {
	const op = "comparison.Alice.PrivateEquals"
	a.logf("%s: start variant=%s l=%d", op, a.variant, a.l)
	if mA < 0 || mA >= bound(a.l) {
		return false, errs.Newf(errs.PlaintextOutOfRange, op, "mA=%d not in [0, 2^%d)", mA, a.l)
	}
	mALEmB, _, err := a.protocol1(ctx, mA, true)
	if err != nil {
		return false, err
	}
	mALTmB, _, err := a.protocol1(ctx, mA, false)
	if err != nil {
		return false, err
	}
	result := mALEmB && !mALTmB
	a.logf("%s: end result=%v", op, result)
	return result, nil
}

// PrivateEquals is Bob's side of the same exchange.
func (b *Bob) PrivateEquals(ctx context.Context, mB int64) error {
	const op = "comparison.Bob.PrivateEquals"
	b.logf("%s: start variant=%s l=%d", op, b.variant, b.l)
	if mB < 0 || mB >= bound(b.l) {
		return errs.Newf(errs.PlaintextOutOfRange, op, "mB=%d not in [0, 2^%d)", mB, b.l)
	}
	if err := b.protocol1(ctx, mB, true); err != nil {
		return err
	}
	err := b.protocol1(ctx, mB, false)
	b.logf("%s: end error=%v", op, err)
	return err
}

// EncryptedEquals compares two ciphertexts under the primary cryptosystem:
// given Enc(a) and Enc(b), Alice learns [a==b] via one blinded round trip —
// she scalar-multiplies Enc(a-b) by a random r drawn from Z_n* (Z_u* for
// DGK, since u is prime) and asks Bob whether the result decrypts to zero.
// r is drawn from Z_n* rather than merely excluded from zero: a composite
// Paillier n has nonzero non-units too, and multiplying by one of those
// would leak a nontrivial factor of a-b instead of blinding it.
func (a *Alice) EncryptedEquals(ctx context.Context, encA, encB *big.Int) (bool, error) {
	const op = "comparison.Alice.EncryptedEquals"
	a.logf("%s: start mode=%s", op, a.mode)
	if err := ctx.Err(); err != nil {
		return false, errs.New(errs.TransportClosed, op, err)
	}
	cs := a.primary
	n := cs.PlaintextModulus()

	diff := cs.Subtract(encA, encB)
	r, err := ntl.RandomCoprime(n)
	if err != nil {
		return false, errs.New(errs.InternalInvariant, op, err)
	}
	blinded := cs.ScalarMultiply(diff, r)
	if err := a.ch.SendBigInt(blinded); err != nil {
		return false, err
	}
	result, err := a.ch.ReceiveBool()
	a.logf("%s: end result=%v error=%v", op, result, err)
	return result, err
}

// EncryptedEquals is Bob's side of the same exchange.
func (b *Bob) EncryptedEquals(ctx context.Context) error {
	const op = "comparison.Bob.EncryptedEquals"
	b.logf("%s: start mode=%s", op, b.mode)
	if err := ctx.Err(); err != nil {
		return errs.New(errs.TransportClosed, op, err)
	}
	cs := b.primary

	blinded, err := b.ch.ReceiveBigInt()
	if err != nil {
		return err
	}
	m, err := cs.Decrypt(blinded)
	if err != nil {
		return err
	}
	err = b.ch.SendBool(m.Sign() == 0)
	b.logf("%s: end error=%v", op, err)
	return err
}
