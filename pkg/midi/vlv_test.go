package midi

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var varLenValues = []struct {
	enc []byte
	val uint32
}{
	{[]byte{0x00}, 0},
	{[]byte{0x40}, 0x40},
	{[]byte{0x7F}, 0x7F},
	{[]byte{0x81, 0x00}, 0x80},
	{[]byte{0x81, 0x7F}, 0xFF},
	{[]byte{0xC0, 0x00}, 0x2000},
	{[]byte{0xFF, 0x7F}, 0x3FFF},
	{[]byte{0x82, 0x80, 0x00}, 0x8000},
	{[]byte{0xFF, 0xFF, 0x7F}, 0x1FFFFF},
	{[]byte{0x81, 0x80, 0x80, 0x00}, 0x200000},
	{[]byte{0xC0, 0x80, 0x80, 0x00}, 0x8000000},
	{[]byte{0xFF, 0xFF, 0xFF, 0x7F}, 0xFFFFFFF},
}

func TestReadVarLen(t *testing.T) {
	for _, tc := range varLenValues {
		r := bytes.NewReader(tc.enc)
		v, err := ReadVarLen(r)
		require.NoError(t, err)
		assert.Equal(t, tc.val, v)
		assert.Equal(t, 0, r.Len(), "% x", tc.enc)
	}
}

func TestAppendVarLen(t *testing.T) {
	for _, tc := range varLenValues {
		b, err := AppendVarLen(nil, tc.val)
		require.NoError(t, err)
		assert.Equal(t, tc.enc, b)
	}
}

func TestVarLenSizeBoundaries(t *testing.T) {
	cases := map[uint32]int{
		0:         1,
		1<<7 - 1:  1,
		1 << 7:    2,
		1<<14 - 1: 2,
		1 << 14:   3,
		1<<21 - 1: 3,
		1 << 21:   4,
		MaxVarLen: 4,
	}
	for v, want := range cases {
		n, err := VarLenSize(v)
		require.NoError(t, err)
		assert.Equal(t, want, n, "value %d", v)

		b, err := AppendVarLen(nil, v)
		require.NoError(t, err)
		assert.Len(t, b, want)

		got, err := ReadVarLen(bytes.NewReader(b))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestVarLenRoundTripSweep(t *testing.T) {
	for v := uint32(0); v <= MaxVarLen; v += 4093 {
		var buf bytes.Buffer
		require.NoError(t, WriteVarLen(&buf, v))
		got, err := ReadVarLen(&buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestVarLenNumberTooBig(t *testing.T) {
	for _, v := range []uint32{MaxVarLen + 1, 1 << 31} {
		_, err := AppendVarLen(nil, v)
		var tooBig *NumberTooBigError
		require.True(t, errors.As(err, &tooBig))
		assert.Equal(t, v, tooBig.Value)

		err = WriteVarLen(&bytes.Buffer{}, v)
		require.True(t, errors.As(err, &tooBig))
	}
}

func TestReadVarLenTooLong(t *testing.T) {
	r := bytes.NewReader([]byte{0xD2, 0x91, 0x80, 0xE2, 0x69})
	_, err := ReadVarLen(r)
	assert.True(t, errors.Is(err, ErrVLVTooBig))
}

func TestReadVarLenNonMinimal(t *testing.T) {
	v, err := ReadVarLen(bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x05}))
	require.NoError(t, err)
	assert.Equal(t, uint32(5), v)

	v, err = ReadVarLen(bytes.NewReader([]byte{0x80, 0x7F}))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x7F), v)
}

func TestReadVarLenFrom(t *testing.T) {
	r := bytes.NewReader([]byte{0x00})
	v, err := ReadVarLenFrom(r, 0x81)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x80), v)

	v, err = ReadVarLenFrom(bytes.NewReader(nil), 0x05)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), v)

	_, err = ReadVarLenFrom(bytes.NewReader([]byte{0x80, 0x80, 0x80}), 0x80)
	assert.True(t, errors.Is(err, ErrVLVTooBig))
}

func TestReadVarLenTruncated(t *testing.T) {
	_, err := ReadVarLen(bytes.NewReader(nil))
	assert.Equal(t, io.EOF, err)

	_, err = ReadVarLen(bytes.NewReader([]byte{0x81}))
	assert.Equal(t, io.ErrUnexpectedEOF, err)
}
