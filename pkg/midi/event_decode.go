package midi

import (
	"bytes"
	"fmt"
	"io"
)

// minimum payload length of the fixed-size meta events
var metaMinLength = map[MetaType]uint32{
	MetaSequenceNumber: 2,
	MetaChannelPrefix:  1,
	MetaPort:           1,
	MetaTempo:          3,
	MetaSMPTEOffset:    5,
	MetaTimeSignature:  4,
	MetaKeySignature:   2,
}

// ReadEvent decodes one event from r. runningStatus is the status byte carried
// over from the previous event of the same track, or 0 at track start. It
// returns the event and the status byte to carry forward.
//
// ReadEvent does not read the delta time preceding the event.
func ReadEvent(r io.Reader, runningStatus byte) (Event, byte, error) {
	d := asReader(r)

	// status byte give us the msg type and channel.
	status, err := d.readByte()
	if err != nil {
		return nil, 0, err
	}

	var data byte
	if status&0x80 == 0 {
		if runningStatus&0x80 == 0 {
			return nil, 0, ErrNoPreviousEvent
		}
		data = status
		status = runningStatus
	} else if data, err = d.readData(); err != nil {
		return nil, 0, err
	}

	e, err := d.readEventBody(status, data)
	if err != nil {
		return nil, 0, err
	}
	return e, status, nil
}

func (d *reader) readEventBody(status, data byte) (Event, error) {
	channel := status & 0x0F

	switch status & 0xF0 {
	case NoteOffStatus, NoteOnStatus, PolyphonicKeyPressureStatus, ControllerChangeStatus, PitchBendStatus:
		second, err := d.readData()
		if err != nil {
			return nil, err
		}
		return channelEvent(status, data, second), nil

	case ProgramChangeStatus:
		return ProgramChange{Channel: channel, Program: data}, nil

	case ChannelPressureStatus:
		return ChannelPressure{Channel: channel, Pressure: data}, nil
	}

	switch status {
	case SysExStatus, SysExEscapeStatus:
		length, err := d.varLenFrom(data)
		if err != nil {
			return nil, err
		}
		payload, err := d.readPayload(length)
		if err != nil {
			return nil, err
		}
		if status == SysExStatus {
			return SysEx{Data: payload}, nil
		}
		return SysExEscape{Data: payload}, nil

	case MetaStatus:
		return d.readMeta(MetaType(data))
	}

	return nil, &UnknownEventError{Status: status}
}

func channelEvent(status, first, second byte) Event {
	channel := status & 0x0F

	switch status & 0xF0 {
	case NoteOffStatus:
		return NoteOff{Channel: channel, Key: first, Velocity: second}
	case NoteOnStatus:
		return NoteOn{Channel: channel, Key: first, Velocity: second}
	case PolyphonicKeyPressureStatus:
		return PolyphonicKeyPressure{Channel: channel, Key: first, Pressure: second}
	case ControllerChangeStatus:
		return ControllerChange{Channel: channel, Controller: first, Value: second}
	}

	// the byte read second is the most significant one
	return PitchBend{Channel: channel, Value: uint16(second)<<8 | uint16(first)}
}

func (d *reader) readPayload(length uint32) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, d, int64(length)); err != nil {
		return nil, noEOF(err)
	}
	return buf.Bytes(), nil
}

func (d *reader) readMeta(t MetaType) (Event, error) {
	b, err := d.readData()
	if err != nil {
		return nil, err
	}
	length, err := d.varLenFrom(b)
	if err != nil {
		return nil, err
	}

	if t.IsText() {
		payload, err := d.readPayload(length)
		if err != nil {
			return nil, err
		}
		return Text{Type: t, Text: string(payload)}, nil
	}

	switch t {
	case MetaEndOfTrack:
		if err := d.skip(int64(length)); err != nil {
			return nil, err
		}
		return EndOfTrack{}, nil

	case MetaSequencerSpecific:
		payload, err := d.readPayload(length)
		if err != nil {
			return nil, err
		}
		return SequencerSpecific{Data: payload}, nil
	}

	want, ok := metaMinLength[t]
	if !ok {
		payload, err := d.readPayload(length)
		if err != nil {
			return nil, err
		}
		return UnknownMeta{Type: t, Data: payload}, nil
	}

	if length < want {
		return nil, &UnexpectedMetaEventLengthError{Type: byte(t), Length: length}
	}

	var buf [5]byte
	p := buf[:want]
	if err := d.readFull(p); err != nil {
		return nil, err
	}

	e, err := fixedMeta(t, p)
	if err != nil {
		return nil, err
	}

	// surplus bytes past the known fields are skipped unexamined
	if err := d.skip(int64(length - want)); err != nil {
		return nil, err
	}
	return e, nil
}

func fixedMeta(t MetaType, p []byte) (Event, error) {
	switch t {
	case MetaSequenceNumber:
		return SequenceNumber{Number: uint16(p[0])<<8 | uint16(p[1])}, nil
	case MetaChannelPrefix:
		return ChannelPrefix{Channel: p[0]}, nil
	case MetaPort:
		return Port{Port: p[0]}, nil
	case MetaTempo:
		return Tempo{MicrosecondsPerQuarter: uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])}, nil
	case MetaSMPTEOffset:
		return SMPTEOffset{
			Hours:            p[0],
			Minutes:          p[1],
			Seconds:          p[2],
			Frames:           p[3],
			FractionalFrames: p[4],
		}, nil
	case MetaTimeSignature:
		return TimeSignature{
			Numerator:               p[0],
			Denominator:             p[1],
			ClocksPerClick:          p[2],
			ThirtySecondsPerQuarter: p[3],
		}, nil
	case MetaKeySignature:
		key := Key(p[1])
		if key != Major && key != Minor {
			return nil, &KeySignatureUnknownKeyError{Key: p[1]}
		}
		return KeySignature{SharpsFlats: int8(p[0]), Key: key}, nil
	}

	return nil, fmt.Errorf("%w - no decoder for meta event %#02x", ErrUnexpectedData, byte(t))
}
