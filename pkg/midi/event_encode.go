package midi

import (
	"fmt"
	"io"
)

// AppendEvent appends the wire form of e to dst. When runningStatus equals
// the status byte of a channel voice event the status byte is omitted; pass 0
// to always write it. The returned byte is the status to carry forward.
func AppendEvent(dst []byte, e Event, runningStatus byte) ([]byte, byte, error) {
	status, data, err := channelBytes(e)
	if err != nil {
		return dst, 0, err
	}
	if status != 0 {
		if status != runningStatus {
			dst = append(dst, status)
		}
		return append(dst, data...), status, nil
	}

	switch ev := e.(type) {
	case SysEx:
		dst, err = appendSysEx(dst, SysExStatus, ev.Data)
		return dst, SysExStatus, err
	case SysExEscape:
		dst, err = appendSysEx(dst, SysExEscapeStatus, ev.Data)
		return dst, SysExEscapeStatus, err
	}

	t, payload, err := metaPayload(e)
	if err != nil {
		return dst, 0, err
	}
	dst = append(dst, MetaStatus, byte(t))
	if dst, err = AppendVarLen(dst, uint32(len(payload))); err != nil {
		return dst, 0, err
	}
	return append(dst, payload...), MetaStatus, nil
}

// WriteEvent writes e to w, see AppendEvent.
func WriteEvent(w io.Writer, e Event, runningStatus byte) (byte, error) {
	b, status, err := AppendEvent(nil, e, runningStatus)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(b); err != nil {
		return 0, err
	}
	return status, nil
}

// StatusOf returns the status byte e is written with.
func StatusOf(e Event) byte {
	if status, channel, _, ok := channelFields(e); ok {
		return status | channel&0x0F
	}
	switch e.(type) {
	case SysEx:
		return SysExStatus
	case SysExEscape:
		return SysExEscapeStatus
	}
	return MetaStatus
}

func channelFields(e Event) (byte, byte, []byte, bool) {
	switch ev := e.(type) {
	case NoteOff:
		return NoteOffStatus, ev.Channel, []byte{ev.Key, ev.Velocity}, true
	case NoteOn:
		return NoteOnStatus, ev.Channel, []byte{ev.Key, ev.Velocity}, true
	case PolyphonicKeyPressure:
		return PolyphonicKeyPressureStatus, ev.Channel, []byte{ev.Key, ev.Pressure}, true
	case ControllerChange:
		return ControllerChangeStatus, ev.Channel, []byte{ev.Controller, ev.Value}, true
	case ProgramChange:
		return ProgramChangeStatus, ev.Channel, []byte{ev.Program}, true
	case ChannelPressure:
		return ChannelPressureStatus, ev.Channel, []byte{ev.Pressure}, true
	case PitchBend:
		// first data byte is the low byte
		return PitchBendStatus, ev.Channel, []byte{byte(ev.Value), byte(ev.Value >> 8)}, true
	}
	return 0, 0, nil, false
}

// channelBytes returns a zero status for events that are not channel voice
// messages. Channels above 15 and data bytes with the high bit set are
// rejected.
func channelBytes(e Event) (byte, []byte, error) {
	if e == nil {
		return 0, nil, fmt.Errorf("%w - nil event", ErrUnexpectedData)
	}

	status, channel, data, ok := channelFields(e)
	if !ok {
		return 0, nil, nil
	}
	if channel > 0x0F {
		return 0, nil, fmt.Errorf("%w - channel %d out of range in %T", ErrUnexpectedData, channel, e)
	}
	for _, b := range data {
		if b&0x80 != 0 {
			return 0, nil, fmt.Errorf("%w - data byte %#02x out of range in %T", ErrUnexpectedData, b, e)
		}
	}
	return status | channel, data, nil
}

func appendSysEx(dst []byte, status byte, data []byte) ([]byte, error) {
	dst = append(dst, status)
	dst, err := AppendVarLen(dst, uint32(len(data)))
	if err != nil {
		return dst, err
	}
	return append(dst, data...), nil
}

func metaPayload(e Event) (MetaType, []byte, error) {
	switch ev := e.(type) {
	case SequenceNumber:
		return MetaSequenceNumber, []byte{byte(ev.Number >> 8), byte(ev.Number)}, nil
	case Text:
		if !ev.Type.IsText() {
			return 0, nil, fmt.Errorf("%w - meta type %#02x is not a text event", ErrUnexpectedData, byte(ev.Type))
		}
		return ev.Type, []byte(ev.Text), nil
	case ChannelPrefix:
		return MetaChannelPrefix, []byte{ev.Channel}, nil
	case Port:
		return MetaPort, []byte{ev.Port}, nil
	case EndOfTrack:
		return MetaEndOfTrack, nil, nil
	case Tempo:
		if ev.MicrosecondsPerQuarter > 0xFFFFFF {
			return 0, nil, fmt.Errorf("%w - tempo %d does not fit in 24 bits", ErrUnexpectedData, ev.MicrosecondsPerQuarter)
		}
		v := ev.MicrosecondsPerQuarter
		return MetaTempo, []byte{byte(v >> 16), byte(v >> 8), byte(v)}, nil
	case SMPTEOffset:
		return MetaSMPTEOffset, []byte{ev.Hours, ev.Minutes, ev.Seconds, ev.Frames, ev.FractionalFrames}, nil
	case TimeSignature:
		return MetaTimeSignature, []byte{ev.Numerator, ev.Denominator, ev.ClocksPerClick, ev.ThirtySecondsPerQuarter}, nil
	case KeySignature:
		if ev.Key != Major && ev.Key != Minor {
			return 0, nil, &KeySignatureUnknownKeyError{Key: byte(ev.Key)}
		}
		return MetaKeySignature, []byte{byte(ev.SharpsFlats), byte(ev.Key)}, nil
	case SequencerSpecific:
		return MetaSequencerSpecific, ev.Data, nil
	case UnknownMeta:
		return ev.Type, ev.Data, nil
	}
	return 0, nil, fmt.Errorf("%w - unsupported event %T", ErrUnexpectedData, e)
}
