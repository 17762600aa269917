package midi

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Encoder writes a header and its tracks as a complete file.
type Encoder struct {
	w io.Writer

	// RunningStatus omits status bytes repeated by consecutive channel events.
	RunningStatus bool
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes nothing when the header track count does not match tracks.
func (e *Encoder) Encode(h Header, tracks []*Track) error {
	if int(h.NumTracks) != len(tracks) {
		return &TrackCountMismatchError{Declared: h.NumTracks, Actual: len(tracks)}
	}
	if h.NumTracks == 0 {
		return ErrNoTracks
	}

	buf := h.Append(nil)
	for i, t := range tracks {
		var err error
		if buf, err = t.Append(buf, e.RunningStatus); err != nil {
			return fmt.Errorf("track %d: %w", i, err)
		}
	}

	encoderLog.Debug("encoded", zap.Int("tracks", len(tracks)), zap.Int("bytes", len(buf)))

	_, err := e.w.Write(buf)
	return err
}
