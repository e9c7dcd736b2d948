// Package errs defines the error taxonomy shared by every CipherCraft
// package: the primitives (dgk, paillier), the transport (wire), and the
// comparison protocol suite. Every fallible operation in this module
// returns one of these kinds, wrapped with whatever underlying error (if
// any) caused it, so callers can both log a readable message and branch
// on the taxonomy with errors.Is / errors.As.
package errs

import "fmt"

// Kind enumerates the error taxonomy shared across this module.
type Kind int

const (
	// KeyParamInvalid marks a malformed modulus, a non-prime where a
	// prime is required, or an order mismatch during key generation.
	KeyParamInvalid Kind = iota
	// PlaintextOutOfRange marks m ∉ [0,u) for DGK or m ∉ [0,n) for Paillier.
	PlaintextOutOfRange
	// CiphertextMalformed marks a ciphertext not in the expected group, of
	// the wrong bit length, or a decryption lookup miss.
	CiphertextMalformed
	// ProtocolMismatch marks a mode/variant mismatch between peers or an
	// unexpected message count/shape during a sub-protocol.
	ProtocolMismatch
	// TransportClosed marks the peer closing the channel mid-sub-protocol.
	TransportClosed
	// UnsupportedCombination marks a combination of options this module
	// declines to support, e.g. the legacy Alice variant with DGK-mode
	// sorting.
	UnsupportedCombination
	// InternalInvariant marks a should-never-happen condition that aborts
	// the session.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case KeyParamInvalid:
		return "KEY_PARAM_INVALID"
	case PlaintextOutOfRange:
		return "PLAINTEXT_OUT_OF_RANGE"
	case CiphertextMalformed:
		return "CIPHERTEXT_MALFORMED"
	case ProtocolMismatch:
		return "PROTOCOL_MISMATCH"
	case TransportClosed:
		return "TRANSPORT_CLOSED"
	case UnsupportedCombination:
		return "UNSUPPORTED_COMBINATION"
	case InternalInvariant:
		return "INTERNAL_INVARIANT"
	default:
		return "UNKNOWN_ERROR_KIND"
	}
}

// CipherError is the error type every CipherCraft operation returns on
// failure. Op names the failing operation, e.g. "dgk.Encrypt" or
// "comparison.Alice.Protocol1".
type CipherError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *CipherError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *CipherError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *CipherError of the same Kind, so
// errors.Is(err, &errs.CipherError{Kind: errs.KeyParamInvalid}) matches any
// error of that kind; see KindOf below for the common case of reading the
// kind.
func (e *CipherError) Is(target error) bool {
	other, ok := target.(*CipherError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs a CipherError of the given kind for operation op,
// optionally wrapping an underlying cause.
func New(kind Kind, op string, cause error) *CipherError {
	return &CipherError{Kind: kind, Op: op, Err: cause}
}

// Newf constructs a CipherError of the given kind for operation op with a
// formatted message and no further wrapped cause.
func Newf(kind Kind, op, format string, args ...any) *CipherError {
	return &CipherError{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind of err if it is (or wraps) a *CipherError, and
// ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	ce, ok := asCipherError(err)
	if !ok {
		return 0, false
	}
	return ce.Kind, true
}

func asCipherError(err error) (*CipherError, bool) {
	for err != nil {
		if ce, ok := err.(*CipherError); ok {
			return ce, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}
