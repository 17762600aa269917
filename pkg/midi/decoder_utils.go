package midi

import (
	"encoding/binary"
	"io"
	"io/ioutil"
)

// reader tracks how many bytes have been pulled from the underlying stream.
// The track driver uses the offset to measure each event against the
// declared chunk length.
type reader struct {
	r      io.Reader
	offset int64
	buf    [4]byte
}

func asReader(r io.Reader) *reader {
	if d, ok := r.(*reader); ok {
		return d
	}
	return &reader{r: r}
}

func (d *reader) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	d.offset += int64(n)
	return n, err
}

// add offset
func (d *reader) readByte() (byte, error) {
	if _, err := io.ReadFull(d, d.buf[:1]); err != nil {
		return 0, err
	}
	return d.buf[0], nil
}

// readData reads a byte that must be there because an event is already
// half way through.
func (d *reader) readData() (byte, error) {
	b, err := d.readByte()
	return b, noEOF(err)
}

func (d *reader) readFull(p []byte) error {
	_, err := io.ReadFull(d, p)
	return noEOF(err)
}

func (d *reader) readUint16() (uint16, error) {
	if err := d.readFull(d.buf[:2]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(d.buf[:2]), nil
}

func (d *reader) readUint32() (uint32, error) {
	if err := d.readFull(d.buf[:4]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(d.buf[:4]), nil
}

// skip discards n bytes of payload slack.
func (d *reader) skip(n int64) error {
	if n <= 0 {
		return nil
	}
	_, err := io.CopyN(ioutil.Discard, d, n)
	return noEOF(err)
}

// IDnSize reads a chunk header: the 4 byte ID and the big endian size.
func (d *reader) IDnSize() ([4]byte, uint32, error) {
	var id [4]byte
	if _, err := io.ReadFull(d, id[:]); err != nil {
		return id, 0, err
	}

	size, err := d.readUint32()
	if err != nil {
		return id, 0, err
	}

	return id, size, nil
}

func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
