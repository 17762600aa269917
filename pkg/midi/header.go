package midi

import (
	"encoding/binary"
	"fmt"
	"io"
)

var headerChunkID = [4]byte{0x4D, 0x54, 0x68, 0x64}

const headerSize = 6

type Format uint16

const (
	SingleTrack Format = iota
	MultiTrack
	MultiSong
)

type TimeFormat int

const (
	MetricalTF TimeFormat = iota + 1
	TimeCodeTF
)

// Header is the content of the MThd chunk.
type Header struct {
	Format    Format
	NumTracks uint16
	Division  uint16
}

func (h Header) TimeFormat() TimeFormat {
	if h.Division&0x8000 == 0 {
		return MetricalTF
	}
	return TimeCodeTF
}

// TicksPerQuarterNote returns 0 for time code based files.
func (h Header) TicksPerQuarterNote() uint16 {
	if h.TimeFormat() != MetricalTF {
		return 0
	}
	return h.Division & 0x7FFF
}

// SMPTE returns the negative frames per second and ticks per frame of a time
// code based division.
func (h Header) SMPTE() (int8, uint8) {
	return int8(h.Division >> 8), uint8(h.Division)
}

// ReadHeader decodes the MThd chunk. Bytes past the six known ones are skipped.
func ReadHeader(r io.Reader) (Header, error) {
	d := asReader(r)

	id, size, err := d.IDnSize()
	if err != nil {
		return Header{}, err
	}
	if id != headerChunkID {
		return Header{}, fmt.Errorf("%w - %v", ErrFmtNotSupported, id)
	}
	if size < headerSize {
		return Header{}, fmt.Errorf("%w - expected header size to be at least 6, was %d", ErrFmtNotSupported, size)
	}

	var h Header
	format, err := d.readUint16()
	if err != nil {
		return Header{}, err
	}
	if format > uint16(MultiSong) {
		return Header{}, &UnknownFormatError{Format: format}
	}
	h.Format = Format(format)

	if h.NumTracks, err = d.readUint16(); err != nil {
		return Header{}, err
	}
	if h.NumTracks == 0 {
		return Header{}, ErrNoTracks
	}

	if h.Division, err = d.readUint16(); err != nil {
		return Header{}, err
	}

	if err := d.skip(int64(size - headerSize)); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Append encodes the header chunk onto dst.
func (h Header) Append(dst []byte) []byte {
	dst = append(dst, headerChunkID[:]...)
	var buf [10]byte
	binary.BigEndian.PutUint32(buf[0:4], headerSize)
	binary.BigEndian.PutUint16(buf[4:6], uint16(h.Format))
	binary.BigEndian.PutUint16(buf[6:8], h.NumTracks)
	binary.BigEndian.PutUint16(buf[8:10], h.Division)
	return append(dst, buf[:]...)
}
