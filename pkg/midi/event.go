package midi

// Event is one decoded track event payload. The set of implementations is
// closed: channel voice messages, the two system exclusive forms and the meta
// events below.
type Event interface {
	isEvent()
}

// Channel voice messages, keyed by the high nibble of the status byte.
const (
	NoteOffStatus               byte = 0x80
	NoteOnStatus                byte = 0x90
	PolyphonicKeyPressureStatus byte = 0xA0
	ControllerChangeStatus      byte = 0xB0
	ProgramChangeStatus         byte = 0xC0
	ChannelPressureStatus       byte = 0xD0
	PitchBendStatus             byte = 0xE0

	SysExStatus       byte = 0xF0
	SysExEscapeStatus byte = 0xF7
	MetaStatus        byte = 0xFF
)

// MetaType is the sub-type byte following a 0xFF status.
type MetaType byte

const (
	MetaSequenceNumber    MetaType = 0x00
	MetaText              MetaType = 0x01
	MetaCopyright         MetaType = 0x02
	MetaTrackName         MetaType = 0x03
	MetaInstrumentName    MetaType = 0x04
	MetaLyric             MetaType = 0x05
	MetaMarker            MetaType = 0x06
	MetaCuePoint          MetaType = 0x07
	MetaProgramName       MetaType = 0x08
	MetaDeviceName        MetaType = 0x09
	MetaChannelPrefix     MetaType = 0x20
	MetaPort              MetaType = 0x21
	MetaEndOfTrack        MetaType = 0x2F
	MetaTempo             MetaType = 0x51
	MetaSMPTEOffset       MetaType = 0x54
	MetaTimeSignature     MetaType = 0x58
	MetaKeySignature      MetaType = 0x59
	MetaSequencerSpecific MetaType = 0x7F
)

// IsText reports whether t is one of the free-text meta types.
func (t MetaType) IsText() bool {
	return MetaText <= t && t <= MetaDeviceName
}

type NoteOff struct {
	Channel  uint8
	Key      uint8
	Velocity uint8
}

// NoteOn with a zero velocity is kept as a NoteOn, it is not folded into NoteOff.
type NoteOn struct {
	Channel  uint8
	Key      uint8
	Velocity uint8
}

type PolyphonicKeyPressure struct {
	Channel  uint8
	Key      uint8
	Pressure uint8
}

type ControllerChange struct {
	Channel    uint8
	Controller uint8
	Value      uint8
}

type ProgramChange struct {
	Channel uint8
	Program uint8
}

type ChannelPressure struct {
	Channel  uint8
	Pressure uint8
}

// PitchBend holds the two data bytes as second<<8 | first: the byte read
// second is the most significant one. Both bytes are 7 bit.
type PitchBend struct {
	Channel uint8
	Value   uint16
}

// SysEx is a system exclusive message started by 0xF0.
type SysEx struct {
	Data []byte
}

// SysExEscape is a system exclusive continuation or escape started by 0xF7.
type SysExEscape struct {
	Data []byte
}

type SequenceNumber struct {
	Number uint16
}

// Text covers the nine free-text meta events, told apart by Type. The text is
// kept as raw bytes, no character set is assumed.
type Text struct {
	Type MetaType
	Text string
}

type ChannelPrefix struct {
	Channel uint8
}

type Port struct {
	Port uint8
}

type EndOfTrack struct{}

// Tempo is expressed in microseconds per quarter note (24 bits).
type Tempo struct {
	MicrosecondsPerQuarter uint32
}

// BPM converts the tempo to beats per minute.
func (t Tempo) BPM() float64 {
	if t.MicrosecondsPerQuarter == 0 {
		return 0
	}
	return 60000000 / float64(t.MicrosecondsPerQuarter)
}

type SMPTEOffset struct {
	Hours            uint8
	Minutes          uint8
	Seconds          uint8
	Frames           uint8
	FractionalFrames uint8
}

// TimeSignature stores the denominator as a power of two, as on the wire.
type TimeSignature struct {
	Numerator               uint8
	Denominator             uint8
	ClocksPerClick          uint8
	ThirtySecondsPerQuarter uint8
}

type Key uint8

const (
	Major Key = 0
	Minor Key = 1
)

func (k Key) String() string {
	if k == Minor {
		return "minor"
	}
	return "major"
}

// KeySignature holds the number of sharps (positive) or flats (negative).
type KeySignature struct {
	SharpsFlats int8
	Key         Key
}

type SequencerSpecific struct {
	Data []byte
}

// UnknownMeta carries a meta event of an unrecognized type untouched.
type UnknownMeta struct {
	Type MetaType
	Data []byte
}

func (NoteOff) isEvent()               {}
func (NoteOn) isEvent()                {}
func (PolyphonicKeyPressure) isEvent() {}
func (ControllerChange) isEvent()      {}
func (ProgramChange) isEvent()         {}
func (ChannelPressure) isEvent()       {}
func (PitchBend) isEvent()             {}
func (SysEx) isEvent()                 {}
func (SysExEscape) isEvent()           {}
func (SequenceNumber) isEvent()        {}
func (Text) isEvent()                  {}
func (ChannelPrefix) isEvent()         {}
func (Port) isEvent()                  {}
func (EndOfTrack) isEvent()            {}
func (Tempo) isEvent()                 {}
func (SMPTEOffset) isEvent()           {}
func (TimeSignature) isEvent()         {}
func (KeySignature) isEvent()          {}
func (SequencerSpecific) isEvent()     {}
func (UnknownMeta) isEvent()           {}
