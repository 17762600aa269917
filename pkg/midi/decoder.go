package midi

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Decoder reads a whole file: the header followed by as many track chunks as
// the header declares.
type Decoder struct {
	r *reader

	Header              Header
	TicksPerQuarterNote uint16
	TimeFormat          TimeFormat
	Tracks              []*Track
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: asReader(r)}
}

// Decode stops at the first malformed track, in which case no track is kept.
func (d *Decoder) Decode() error {
	h, err := ReadHeader(d.r)
	if err != nil {
		return err
	}

	log := decoderLog.With(zap.Uint16("tracks", h.NumTracks), zap.Uint16("format", uint16(h.Format)))
	log.Debug("header", zap.Uint16("division", h.Division))

	tracks := make([]*Track, 0, h.NumTracks)
	for i := 0; i < int(h.NumTracks); i++ {
		start := d.r.offset
		t, err := ReadTrack(d.r)
		if err != nil {
			return fmt.Errorf("track %d at offset %d: %w", i, start, err)
		}
		tracks = append(tracks, t)
	}

	d.Header = h
	d.TimeFormat = h.TimeFormat()
	d.TicksPerQuarterNote = h.TicksPerQuarterNote()
	d.Tracks = tracks

	log.Debug("decoded", zap.Int64("bytes", d.r.offset))
	return nil
}
