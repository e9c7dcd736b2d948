package comparison

import (
	"context"
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/dgk"
	"github.com/adwise-fiu/Ciphercraft/errs"
	"github.com/adwise-fiu/Ciphercraft/ntl"
	"lukechampine.com/frand"
)

// Protocol1 runs the DGK bitwise comparison between Alice's plaintext x
// and Bob's plaintext y, both assumed to lie in [0, 2^l). It always uses
// DGK ciphertexts for the scan regardless of Mode. The returned bool is
// the variant's stated relation: x<=y for ORIGINAL and VEUGEN, x<y for
// JOYE.
func (a *Alice) Protocol1(ctx context.Context, x int64) (bool, error) {
	const op = "comparison.Alice.Protocol1"
	a.logf("%s: start variant=%s l=%d", op, a.variant, a.l)
	if x < 0 || x >= bound(a.l) {
		return false, errs.Newf(errs.PlaintextOutOfRange, op, "x=%d not in [0, 2^%d)", x, a.l)
	}
	leConvention := a.variant != Joye
	revealed, _, err := a.protocol1(ctx, x, leConvention)
	if err != nil {
		a.logf("%s: end error=%v", op, err)
		return false, err
	}
	a.logf("%s: end result=%v", op, revealed)
	return revealed, nil
}

// Protocol1 is Bob's side of the same exchange, driven over the same
// channel concurrently with Alice's call.
func (b *Bob) Protocol1(ctx context.Context, y int64) error {
	const op = "comparison.Bob.Protocol1"
	b.logf("%s: start variant=%s l=%d", op, b.variant, b.l)
	if y < 0 || y >= bound(b.l) {
		return errs.Newf(errs.PlaintextOutOfRange, op, "y=%d not in [0, 2^%d)", y, b.l)
	}
	leConvention := b.variant != Joye
	err := b.protocol1(ctx, y, leConvention)
	b.logf("%s: end error=%v", op, err)
	return err
}

// protocol1 is the internal bitwise scan, parameterized on leConvention:
// when true, a zero in the blinded scan vector indicates x>y and the
// revealed result is negated to yield x<=y (ORIGINAL/VEUGEN polarity);
// when false, a zero indicates x<y directly and no negation is applied
// (JOYE's "opposite polarity" scan). Protocol2's internal borrow
// detection always uses leConvention=true, independent of the
// outer Variant, since the borrow bit is a structural fact of the
// decomposition, not a variant-specific comparison semantic; Protocol2
// gets its own variant-dependent tie-break by shifting the offset it
// blinds, not by varying this call.
//
// It returns the revealed bool and the DGK ciphertext of the same bit
// (1 for true, 0 for false). Protocol1, Protocol2 and PrivateEquals use
// only the revealed bool.
func (a *Alice) protocol1(ctx context.Context, x int64, leConvention bool) (bool, *big.Int, error) {
	const op = "comparison.Alice.protocol1"
	if err := ctx.Err(); err != nil {
		return false, nil, errs.New(errs.TransportClosed, op, err)
	}
	l := a.l
	encY, err := a.ch.ReceiveBigIntArray()
	if err != nil {
		return false, nil, err
	}
	if len(encY) != l {
		return false, nil, errs.Newf(errs.ProtocolMismatch, op, "expected %d encrypted bits, got %d", l, len(encY))
	}

	xBits := bitsLSBFirst(x, l)
	xorCipher := make([]*big.Int, l)
	for i := 0; i < l; i++ {
		if xBits[i] == 0 {
			xorCipher[i] = encY[i]
		} else {
			xorCipher[i] = dgk.Subtract(dgkOne(a.dgkPub), encY[i], a.dgkPub)
		}
	}

	s := make([]*big.Int, l)
	running, err := dgk.Encrypt(0, a.dgkPub)
	if err != nil {
		return false, nil, errs.New(errs.InternalInvariant, op, err)
	}
	for i := l - 1; i >= 0; i-- {
		xi, err := dgk.Encrypt(xBits[i], a.dgkPub)
		if err != nil {
			return false, nil, errs.New(errs.InternalInvariant, op, err)
		}
		var linear *big.Int
		if leConvention {
			linear = dgk.Subtract(encY[i], xi, a.dgkPub)
		} else {
			linear = dgk.Subtract(xi, encY[i], a.dgkPub)
		}
		term := dgk.Add(linear, dgkOne(a.dgkPub), a.dgkPub)
		term = dgk.Add(term, dgk.ScalarMultiply(running, 3, a.dgkPub), a.dgkPub)
		s[i] = term
		running = dgk.Add(running, xorCipher[i], a.dgkPub)
	}

	frand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	for i := range s {
		r, err := ntl.RandomNonZero(a.dgkPub.U)
		if err != nil {
			return false, nil, errs.New(errs.InternalInvariant, op, err)
		}
		s[i] = dgk.ScalarMultiply(s[i], r.Int64(), a.dgkPub)
	}
	if a.variant == Veugen {
		a.logf("comparison.Alice.protocol1: applying Veugen double re-randomization fallback")
		for i := range s {
			r, err := ntl.RandomNonZero(a.dgkPub.U)
			if err != nil {
				return false, nil, errs.New(errs.InternalInvariant, op, err)
			}
			s[i] = dgk.ScalarMultiply(s[i], r.Int64(), a.dgkPub)
		}
	}

	if err := a.ch.SendBigIntArray(s); err != nil {
		return false, nil, err
	}

	encResult, err := a.ch.ReceiveBigInt()
	if err != nil {
		return false, nil, err
	}
	revealed, err := a.ch.ReceiveBool()
	if err != nil {
		return false, nil, err
	}
	return revealed, encResult, nil
}

func (b *Bob) protocol1(ctx context.Context, y int64, leConvention bool) error {
	const op = "comparison.Bob.protocol1"
	if err := ctx.Err(); err != nil {
		return errs.New(errs.TransportClosed, op, err)
	}
	l := b.l
	yBits := bitsLSBFirst(y, l)
	encY := make([]*big.Int, l)
	for i := 0; i < l; i++ {
		c, err := dgk.Encrypt(yBits[i], b.dgkPub)
		if err != nil {
			return errs.New(errs.InternalInvariant, op, err)
		}
		encY[i] = c
	}
	if err := b.ch.SendBigIntArray(encY); err != nil {
		return err
	}

	s, err := b.ch.ReceiveBigIntArray()
	if err != nil {
		return err
	}
	if len(s) != l {
		return errs.Newf(errs.ProtocolMismatch, op, "expected %d scan entries, got %d", l, len(s))
	}

	foundZero := false
	for _, c := range s {
		m, err := dgk.Decrypt(c, b.dgkPriv)
		if err != nil {
			return err
		}
		if m == 0 {
			foundZero = true
			break
		}
	}

	var revealed bool
	if leConvention {
		revealed = !foundZero
	} else {
		revealed = foundZero
	}

	var resultBit int64
	if revealed {
		resultBit = 1
	}
	encResult, err := dgk.Encrypt(resultBit, b.dgkPub)
	if err != nil {
		return errs.New(errs.InternalInvariant, op, err)
	}
	if err := b.ch.SendBigInt(encResult); err != nil {
		return err
	}
	return b.ch.SendBool(revealed)
}

// dgkOne returns a fresh DGK encryption of 1 under pub, used as the
// constant 1 in the Protocol1 scan (for 1-y_i and the +1 term).
func dgkOne(pub *dgk.PublicKey) *big.Int {
	c, err := dgk.Encrypt(1, pub)
	if err != nil {
		// pub.u is always >= 2 by construction (ProbablyPrime check on a
		// multi-bit u), so Encrypt(1, pub) cannot fail with a valid key.
		panic(err)
	}
	return c
}
