package midi

import "io"

// MaxVarLen is the largest value a variable length value can hold (2^28-1).
const MaxVarLen = 1<<28 - 1

// VarLenSize returns the number of bytes the canonical encoding of v takes.
func VarLenSize(v uint32) (int, error) {
	switch {
	case v < 1<<7:
		return 1, nil
	case v < 1<<14:
		return 2, nil
	case v < 1<<21:
		return 3, nil
	case v < 1<<28:
		return 4, nil
	}
	return 0, &NumberTooBigError{Value: v}
}

// ReadVarLen returns the variable length value at the exact parser location.
// Non-minimal encodings are accepted as long as they fit in 4 bytes.
func ReadVarLen(r io.Reader) (uint32, error) {
	d := asReader(r)
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	return d.varLenFrom(b)
}

// ReadVarLenFrom decodes a variable length value whose first byte has
// already been consumed from r.
func ReadVarLenFrom(r io.Reader, first byte) (uint32, error) {
	return asReader(r).varLenFrom(first)
}

func (d *reader) varLenFrom(b byte) (val uint32, err error) {
	for n := 1; ; n++ {
		val = val<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return val, nil
		}
		if n == 4 {
			return 0, ErrVLVTooBig
		}
		if b, err = d.readData(); err != nil {
			return 0, err
		}
	}
}

// AppendVarLen appends the canonical encoding of v to dst.
func AppendVarLen(dst []byte, v uint32) ([]byte, error) {
	n, err := VarLenSize(v)
	if err != nil {
		return dst, err
	}

	for i := n - 1; i >= 0; i-- {
		b := byte(v>>(7*uint(i))) & 0x7F
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst, nil
}

// WriteVarLen writes the canonical encoding of v to w.
func WriteVarLen(w io.Writer, v uint32) error {
	var buf [4]byte
	b, err := AppendVarLen(buf[:0], v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
