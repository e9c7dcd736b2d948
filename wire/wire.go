// Package wire implements the two-party transport: a length-prefixed,
// tagged-union message framing sent over any io.ReadWriteCloser. The
// comparison package is built entirely out of the primitives here —
// wire.Channel plays the role a shared in-memory channel would for two
// goroutines, but for two parties that instead speak a duplex connection
// (a net.Conn, a net.Pipe half, or an in-memory buffer under test).
package wire

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/adwise-fiu/Ciphercraft/errs"
)

// Tag identifies the payload shape of a single framed message.
type Tag byte

const (
	TagBigInt Tag = iota + 1
	TagBigIntArray
	TagSmallInt
	TagBool
	TagBytes
)

// Channel is a duplex, framed connection between Alice and Bob. It is safe
// for one reader and one writer goroutine to use concurrently, but not for
// concurrent writers or concurrent readers — each sub-protocol step is a
// single request or response, never interleaved.
type Channel struct {
	rw io.ReadWriteCloser
}

// New wraps rw in a Channel.
func New(rw io.ReadWriteCloser) *Channel {
	return &Channel{rw: rw}
}

// Close closes the underlying connection.
func (c *Channel) Close() error {
	return c.rw.Close()
}

func wrapReadErr(op string, err error) error {
	return errs.New(errs.TransportClosed, op, err)
}

func wrapWriteErr(op string, err error) error {
	return errs.New(errs.TransportClosed, op, err)
}

// writeFrame writes tag, then a 4-byte big-endian length, then payload.
func (c *Channel) writeFrame(op string, tag Tag, payload []byte) error {
	header := make([]byte, 5)
	header[0] = byte(tag)
	binary.BigEndian.PutUint32(header[1:], uint32(len(payload)))
	if _, err := c.rw.Write(header); err != nil {
		return wrapWriteErr(op, err)
	}
	if len(payload) == 0 {
		return nil
	}
	if _, err := c.rw.Write(payload); err != nil {
		return wrapWriteErr(op, err)
	}
	return nil
}

// readFrame reads a tag, length, and payload, failing with
// PROTOCOL_MISMATCH if the tag does not match want. A mismatched frame's
// payload is read and discarded before the error is returned.
func (c *Channel) readFrame(op string, want Tag) ([]byte, error) {
	header := make([]byte, 5)
	if _, err := io.ReadFull(c.rw, header); err != nil {
		return nil, wrapReadErr(op, err)
	}
	gotTag := Tag(header[0])
	n := binary.BigEndian.Uint32(header[1:])
	if gotTag != want {
		if _, err := io.CopyN(io.Discard, c.rw, int64(n)); err != nil {
			return nil, wrapReadErr(op, err)
		}
		return nil, errs.Newf(errs.ProtocolMismatch, op, "expected tag %d, got %d", want, gotTag)
	}
	if n == 0 {
		return nil, nil
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(c.rw, payload); err != nil {
		return nil, wrapReadErr(op, err)
	}
	return payload, nil
}

// twosComplementBytes returns the two's-complement minimal-octet
// big-endian representation of a non-negative v: big.Int.Bytes()'s
// unsigned magnitude, padded with a leading 0x00 whenever its top byte
// has the high bit set, so a peer decoding with a real two's-complement
// constructor does not read the value as negative.
func twosComplementBytes(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) > 0 && b[0]&0x80 != 0 {
		padded := make([]byte, len(b)+1)
		copy(padded[1:], b)
		return padded
	}
	return b
}

// SendBigInt writes v as a BIG_INT frame: the two's-complement
// minimal-octet big-endian representation of v.
func (c *Channel) SendBigInt(v *big.Int) error {
	const op = "wire.SendBigInt"
	return c.writeFrame(op, TagBigInt, twosComplementBytes(v))
}

// ReceiveBigInt reads a BIG_INT frame and reconstructs the non-negative
// big.Int it encodes. CipherCraft's wire values (ciphertexts, moduli,
// exponents) are always non-negative, so the minimal-octet payload is
// interpreted as an unsigned magnitude, matching SendBigInt's encoding.
func (c *Channel) ReceiveBigInt() (*big.Int, error) {
	const op = "wire.ReceiveBigInt"
	payload, err := c.readFrame(op, TagBigInt)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(payload), nil
}

// SendBigIntArray writes a BIG_INT_ARRAY frame: a 4-byte count followed by
// that many length-prefixed big-endian magnitudes.
func (c *Channel) SendBigIntArray(vs []*big.Int) error {
	const op = "wire.SendBigIntArray"
	var payload []byte
	count := make([]byte, 4)
	binary.BigEndian.PutUint32(count, uint32(len(vs)))
	payload = append(payload, count...)
	for _, v := range vs {
		b := twosComplementBytes(v)
		lenBuf := make([]byte, 4)
		binary.BigEndian.PutUint32(lenBuf, uint32(len(b)))
		payload = append(payload, lenBuf...)
		payload = append(payload, b...)
	}
	return c.writeFrame(op, TagBigIntArray, payload)
}

// ReceiveBigIntArray reads a BIG_INT_ARRAY frame.
func (c *Channel) ReceiveBigIntArray() ([]*big.Int, error) {
	const op = "wire.ReceiveBigIntArray"
	payload, err := c.readFrame(op, TagBigIntArray)
	if err != nil {
		return nil, err
	}
	if len(payload) < 4 {
		return nil, errs.Newf(errs.ProtocolMismatch, op, "truncated array header")
	}
	count := binary.BigEndian.Uint32(payload[:4])
	rest := payload[4:]
	out := make([]*big.Int, 0, count)
	for i := uint32(0); i < count; i++ {
		if len(rest) < 4 {
			return nil, errs.Newf(errs.ProtocolMismatch, op, "truncated array element %d", i)
		}
		n := binary.BigEndian.Uint32(rest[:4])
		rest = rest[4:]
		if uint32(len(rest)) < n {
			return nil, errs.Newf(errs.ProtocolMismatch, op, "truncated array element %d payload", i)
		}
		out = append(out, new(big.Int).SetBytes(rest[:n]))
		rest = rest[n:]
	}
	return out, nil
}

// SendInt writes a SMALL_INT frame carrying a fixed-width int64.
func (c *Channel) SendInt(v int64) error {
	const op = "wire.SendInt"
	payload := make([]byte, 8)
	binary.BigEndian.PutUint64(payload, uint64(v))
	return c.writeFrame(op, TagSmallInt, payload)
}

// ReceiveInt reads a SMALL_INT frame.
func (c *Channel) ReceiveInt() (int64, error) {
	const op = "wire.ReceiveInt"
	payload, err := c.readFrame(op, TagSmallInt)
	if err != nil {
		return 0, err
	}
	if len(payload) != 8 {
		return 0, errs.Newf(errs.ProtocolMismatch, op, "expected 8-byte SMALL_INT, got %d bytes", len(payload))
	}
	return int64(binary.BigEndian.Uint64(payload)), nil
}

// SendBool writes a BOOL frame.
func (c *Channel) SendBool(v bool) error {
	const op = "wire.SendBool"
	b := byte(0)
	if v {
		b = 1
	}
	return c.writeFrame(op, TagBool, []byte{b})
}

// ReceiveBool reads a BOOL frame.
func (c *Channel) ReceiveBool() (bool, error) {
	const op = "wire.ReceiveBool"
	payload, err := c.readFrame(op, TagBool)
	if err != nil {
		return false, err
	}
	if len(payload) != 1 {
		return false, errs.Newf(errs.ProtocolMismatch, op, "expected 1-byte BOOL, got %d bytes", len(payload))
	}
	return payload[0] != 0, nil
}

// SendBytes writes a BYTES frame carrying an opaque blob.
func (c *Channel) SendBytes(v []byte) error {
	const op = "wire.SendBytes"
	return c.writeFrame(op, TagBytes, v)
}

// ReceiveBytes reads a BYTES frame.
func (c *Channel) ReceiveBytes() ([]byte, error) {
	const op = "wire.ReceiveBytes"
	return c.readFrame(op, TagBytes)
}
