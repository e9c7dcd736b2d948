package wire

import (
	"math/big"
	"net"
	"testing"

	"github.com/adwise-fiu/Ciphercraft/errs"
	"github.com/stretchr/testify/require"
)

func pipe() (*Channel, *Channel) {
	a, b := net.Pipe()
	return New(a), New(b)
}

func TestBigIntRoundTrip(t *testing.T) {
	a, b := pipe()
	defer a.Close()
	defer b.Close()

	want := big.NewInt(123456789)
	done := make(chan error, 1)
	go func() { done <- a.SendBigInt(want) }()

	got, err := b.ReceiveBigInt()
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.Equal(t, want, got)
}

func TestBigIntZero(t *testing.T) {
	a, b := pipe()
	defer a.Close()
	defer b.Close()

	done := make(chan error, 1)
	go func() { done <- a.SendBigInt(big.NewInt(0)) }()

	got, err := b.ReceiveBigInt()
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.Equal(t, 0, got.Sign())
}

func TestBigIntHighBitPadding(t *testing.T) {
	a, b := pipe()
	defer a.Close()
	defer b.Close()

	// 0xFF... has its top byte's high bit set, so SendBigInt must prepend
	// a 0x00 pad byte for the encoding to be valid two's complement.
	want := new(big.Int).SetBytes([]byte{0xFF, 0x01, 0x02})
	require.Equal(t, byte(0x80), want.Bytes()[0]&0x80)

	done := make(chan error, 1)
	go func() { done <- a.SendBigInt(want) }()

	got, err := b.ReceiveBigInt()
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.Equal(t, 0, want.Cmp(got))
}

func TestBigIntArrayRoundTrip(t *testing.T) {
	a, b := pipe()
	defer a.Close()
	defer b.Close()

	want := []*big.Int{
		big.NewInt(1), big.NewInt(2000000000), big.NewInt(0), big.NewInt(42),
		new(big.Int).SetBytes([]byte{0xFF, 0xAB}),
	}
	done := make(chan error, 1)
	go func() { done <- a.SendBigIntArray(want) }()

	got, err := b.ReceiveBigIntArray()
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.Len(t, got, len(want))
	for i := range want {
		require.Equal(t, 0, want[i].Cmp(got[i]))
	}
}

func TestIntRoundTrip(t *testing.T) {
	a, b := pipe()
	defer a.Close()
	defer b.Close()

	done := make(chan error, 1)
	go func() { done <- a.SendInt(-17) }()

	got, err := b.ReceiveInt()
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.Equal(t, int64(-17), got)
}

func TestBoolRoundTrip(t *testing.T) {
	a, b := pipe()
	defer a.Close()
	defer b.Close()

	done := make(chan error, 1)
	go func() { done <- a.SendBool(true) }()

	got, err := b.ReceiveBool()
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.True(t, got)
}

func TestBytesRoundTrip(t *testing.T) {
	a, b := pipe()
	defer a.Close()
	defer b.Close()

	want := []byte("ciphercraft")
	done := make(chan error, 1)
	go func() { done <- a.SendBytes(want) }()

	got, err := b.ReceiveBytes()
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.Equal(t, want, got)
}

func TestReceiveWrongTagIsProtocolMismatch(t *testing.T) {
	a, b := pipe()
	defer a.Close()
	defer b.Close()

	done := make(chan error, 1)
	go func() { done <- a.SendBool(true) }()

	_, err := b.ReceiveBigInt()
	require.Error(t, err)
	kind, ok := errs.KindOf(err)
	require.True(t, ok)
	require.Equal(t, errs.ProtocolMismatch, kind)
	<-done
}

func TestReceiveOnClosedChannelIsTransportClosed(t *testing.T) {
	a, b := pipe()
	a.Close()

	_, err := b.ReceiveBigInt()
	require.Error(t, err)
	kind, ok := errs.KindOf(err)
	require.True(t, ok)
	require.Equal(t, errs.TransportClosed, kind)
}
