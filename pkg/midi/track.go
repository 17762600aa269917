package midi

import (
	"encoding/binary"
	"fmt"
	"io"

	"go.uber.org/zap"
)

var trackChunkID = [4]byte{0x4D, 0x54, 0x72, 0x6B}

// TrackEvent is an event together with the ticks elapsed since the previous
// event of the same track.
type TrackEvent struct {
	Delta uint32
	Event Event
}

type Track struct {
	// Length is the byte length of the event stream as declared in the chunk.
	Length uint32
	Events []TrackEvent
}

// ReadTrack decodes one track chunk from r.
//
// The declared length only decides when to stop reading events: an event
// that starts inside the chunk is always read to its end, even if that goes
// past the declared length. A chunk without an end of track event is
// accepted once its declared length is used up.
func ReadTrack(r io.Reader) (*Track, error) {
	d := asReader(r)

	id, length, err := d.IDnSize()
	if err != nil {
		return nil, noEOF(err)
	}
	if id != trackChunkID {
		return nil, fmt.Errorf("%w - expected track chunk ID %v, got %v", ErrUnexpectedData, trackChunkID, id)
	}

	t := &Track{Length: length}

	var (
		consumed      int64
		runningStatus byte
	)
	for consumed < int64(length) {
		start := d.offset

		delta, err := ReadVarLen(d)
		if err != nil {
			return nil, fmt.Errorf("event %d at byte %d: %w", len(t.Events), consumed, noEOF(err))
		}

		var e Event
		e, runningStatus, err = ReadEvent(d, runningStatus)
		if err != nil {
			return nil, fmt.Errorf("event %d at byte %d: %w", len(t.Events), consumed, noEOF(err))
		}

		t.Events = append(t.Events, TrackEvent{Delta: delta, Event: e})
		consumed += d.offset - start
	}

	if consumed > int64(length) {
		decoderLog.Debug("last event overran the declared track length",
			zap.Uint32("declared", length), zap.Int64("consumed", consumed))
	}
	decoderLog.Debug("track", zap.Uint32("length", length), zap.Int("events", len(t.Events)))

	return t, nil
}

// Append encodes the track as a complete chunk onto dst. The chunk length is
// computed from the encoded events; t.Length is not consulted. With
// runningStatus set, repeated channel status bytes are omitted.
func (t *Track) Append(dst []byte, runningStatus bool) ([]byte, error) {
	start := len(dst)
	dst = append(dst, trackChunkID[:]...)
	dst = append(dst, 0, 0, 0, 0)

	var (
		status byte
		err    error
	)
	for i, te := range t.Events {
		if dst, err = AppendVarLen(dst, te.Delta); err != nil {
			return dst[:start], fmt.Errorf("event %d delta: %w", i, err)
		}

		prev := byte(0)
		if runningStatus {
			prev = status
		}
		if dst, status, err = AppendEvent(dst, te.Event, prev); err != nil {
			return dst[:start], fmt.Errorf("event %d: %w", i, err)
		}
	}

	binary.BigEndian.PutUint32(dst[start+4:start+8], uint32(len(dst)-start-8))
	return dst, nil
}

// WriteTo writes the track chunk to w with every status byte spelled out.
func (t *Track) WriteTo(w io.Writer) (int64, error) {
	b, err := t.Append(nil, false)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

// AbsoluteTimes returns the absolute tick of every event in the track.
func (t *Track) AbsoluteTimes() []uint64 {
	out := make([]uint64, len(t.Events))
	var now uint64
	for i, te := range t.Events {
		now += uint64(te.Delta)
		out[i] = now
	}
	return out
}

// Duration returns the absolute tick of the last event.
func (t *Track) Duration() uint64 {
	var now uint64
	for _, te := range t.Events {
		now += uint64(te.Delta)
	}
	return now
}
