package midi

import (
	"errors"
	"fmt"
)

var (
	// ErrFmtNotSupported is a generic error reporting an unknown format.
	ErrFmtNotSupported = errors.New("format not supported")
	// ErrUnexpectedData is a generic error reporting that the parser encountered unexpected data.
	ErrUnexpectedData = errors.New("unexpected data content")
	// ErrVLVTooBig is returned when a variable length value runs past 4 bytes.
	ErrVLVTooBig = errors.New("variable length value longer than 4 bytes")
	// ErrNoPreviousEvent is returned when a data byte shows up where a status
	// byte was expected and there is no running status to fall back on.
	ErrNoPreviousEvent = errors.New("running status without a previous event")
	// ErrNoTracks is returned for a header declaring zero tracks.
	ErrNoTracks = errors.New("header declares no tracks")
)

// NumberTooBigError reports a value that does not fit in a variable length value.
type NumberTooBigError struct {
	Value uint32
}

func (e *NumberTooBigError) Error() string {
	return fmt.Sprintf("value %d is too big to fit in a variable length value", e.Value)
}

// UnknownEventError reports a status byte that does not map to any event family.
type UnknownEventError struct {
	Status byte
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event with status byte %#02x", e.Status)
}

// UnexpectedMetaEventLengthError reports a fixed-size meta event whose
// declared length is shorter than its payload.
type UnexpectedMetaEventLengthError struct {
	Type   byte
	Length uint32
}

func (e *UnexpectedMetaEventLengthError) Error() string {
	return fmt.Sprintf("unexpected length %d for meta event %#02x", e.Length, e.Type)
}

// KeySignatureUnknownKeyError reports a key signature whose key is neither major nor minor.
type KeySignatureUnknownKeyError struct {
	Key byte
}

func (e *KeySignatureUnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %d in key signature, expected 0 (major) or 1 (minor)", e.Key)
}

// UnknownFormatError reports a header format other than 0, 1 or 2.
type UnknownFormatError struct {
	Format uint16
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("%s - unknown format %d in header", ErrFmtNotSupported, e.Format)
}

func (e *UnknownFormatError) Unwrap() error {
	return ErrFmtNotSupported
}

// TrackCountMismatchError is returned by the encoder when the header track
// count does not match the number of tracks handed to it.
type TrackCountMismatchError struct {
	Declared uint16
	Actual   int
}

func (e *TrackCountMismatchError) Error() string {
	return fmt.Sprintf("header declares %d tracks, got %d", e.Declared, e.Actual)
}
