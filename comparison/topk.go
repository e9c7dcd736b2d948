package comparison

import (
	"context"
	"math/big"

	"github.com/RoaringBitmap/roaring"
	"github.com/adwise-fiu/Ciphercraft/errs"
)

// GetKValues returns the K encrypted minima (ascending=true) or maxima
// (ascending=false) of ciphertexts: it iteratively selects the next
// extremum via pairwise Protocol2 invocations, removing the selected
// index from the candidate set each round.
//
// Candidate-index bookkeeping uses github.com/RoaringBitmap/roaring, a
// compressed-bitmap set small enough in memory to track thousands of
// candidate indices across rounds without reallocating a slice each time.
//
// legacyAlice is accepted for callers migrating from an older selection
// routine; under DGKMode it refuses with UNSUPPORTED_COMBINATION, since
// DGK's plaintext space is too small to carry the array-size and
// bit-width constraints this caller would otherwise require. Under
// PaillierMode it does not change the selection: the same pairwise order
// is used either way.
func (a *Alice) GetKValues(ctx context.Context, ciphertexts []*big.Int, k int, ascending, legacyAlice bool) ([]*big.Int, error) {
	const op = "comparison.Alice.GetKValues"
	a.logf("%s: start mode=%s k=%d n=%d ascending=%v legacyAlice=%v", op, a.mode, k, len(ciphertexts), ascending, legacyAlice)
	if a.mode == DGKMode && legacyAlice {
		a.logf("%s: refusing legacy Alice variant under DGK mode", op)
		return nil, unsupported(op, "legacy Alice variant is not supported in DGK mode")
	}
	if k < 0 || k > len(ciphertexts) {
		return nil, errs.Newf(errs.PlaintextOutOfRange, op, "k=%d out of range for %d ciphertexts", k, len(ciphertexts))
	}

	candidates := roaring.New()
	candidates.AddRange(0, uint64(len(ciphertexts)))

	result := make([]*big.Int, 0, k)
	for round := 0; round < k; round++ {
		it := candidates.Iterator()
		if !it.HasNext() {
			return nil, errs.New(errs.InternalInvariant, op, nil)
		}
		best := it.Next()
		for it.HasNext() {
			cand := it.Next()
			curGECand, err := a.Protocol2(ctx, ciphertexts[int(best)], ciphertexts[int(cand)])
			if err != nil {
				return nil, err
			}
			if ascending {
				if curGECand {
					best = cand
				}
			} else {
				if !curGECand {
					best = cand
				}
			}
		}
		result = append(result, ciphertexts[int(best)])
		candidates.Remove(best)
	}
	a.logf("%s: end selected=%d", op, len(result))
	return result, nil
}

// GetKValues is Bob's side of the same exchange: it participates in the
// same sequence of pairwise Protocol2 comparisons, without ever learning
// which indices they correspond to.
func (b *Bob) GetKValues(ctx context.Context, count, k int) error {
	const op = "comparison.Bob.GetKValues"
	b.logf("%s: start mode=%s k=%d n=%d", op, b.mode, k, count)
	if k < 0 || k > count {
		return errs.Newf(errs.PlaintextOutOfRange, op, "k=%d out of range for %d ciphertexts", k, count)
	}
	remaining := count
	for round := 0; round < k; round++ {
		for c := 1; c < remaining; c++ {
			if err := b.Protocol2(ctx); err != nil {
				b.logf("%s: end error=%v", op, err)
				return err
			}
		}
		remaining--
	}
	b.logf("%s: end", op)
	return nil
}
