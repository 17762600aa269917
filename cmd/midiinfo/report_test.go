package main

import (
	"bytes"
	"testing"

	"github.com/Garik-/humanize/pkg/midi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	tracks := []*midi.Track{
		{Events: []midi.TrackEvent{
			{Delta: 0, Event: midi.Tempo{MicrosecondsPerQuarter: 500000}},
			{Delta: 960, Event: midi.Tempo{MicrosecondsPerQuarter: 600000}},
			{Delta: 0, Event: midi.EndOfTrack{}},
		}},
		{Events: []midi.TrackEvent{
			{Delta: 0, Event: midi.Text{Type: midi.MetaTrackName, Text: "Lead"}},
			{Delta: 0, Event: midi.NoteOn{Channel: 2, Key: 60, Velocity: 90}},
			{Delta: 480, Event: midi.NoteOn{Channel: 2, Key: 60}},
			{Delta: 0, Event: midi.NoteOn{Channel: 0, Key: 62, Velocity: 90}},
			{Delta: 480, Event: midi.NoteOff{Channel: 0, Key: 62}},
			{Delta: 0, Event: midi.UnknownMeta{Type: 0x60, Data: []byte{1}}},
			{Delta: 1000, Event: midi.EndOfTrack{}},
		}},
	}

	var buf bytes.Buffer
	h := midi.Header{Format: midi.MultiTrack, NumTracks: 2, Division: 480}
	require.NoError(t, midi.NewEncoder(&buf).Encode(h, tracks))

	decoder := midi.NewDecoder(&buf)
	require.NoError(t, decoder.Decode())

	var out bytes.Buffer
	report(&out, decoder)

	text := out.String()
	assert.Contains(t, text, "Midi Format 1\n")
	assert.Contains(t, text, "2 Tracks\n")
	assert.Contains(t, text, "480 Ticks per Quarter Note\n")
	assert.Contains(t, text, "Name: Lead\n")
	assert.Contains(t, text, "7 events\n")
	assert.Contains(t, text, "2 Real Note Ons, 1 Fake Note Offs, 1 Actual Note Offs\n")
	assert.Contains(t, text, "Channels: [0 2]\n")
	assert.Contains(t, text, "1 Unknown Meta Events\n")
	assert.Contains(t, text, "Tempo at tick 0: 120.00 BPM\n")
	assert.Contains(t, text, "Tempo at tick 960: 100.00 BPM\n")
	assert.Contains(t, text, "Longest track: 1960 ticks\n")
}

func TestReportTimeCode(t *testing.T) {
	d := &midi.Decoder{Header: midi.Header{NumTracks: 1, Division: 0xE728}}

	var out bytes.Buffer
	report(&out, d)
	assert.Contains(t, out.String(), "SMPTE -25 40\n")
}
