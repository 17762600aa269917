package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/Garik-/humanize/pkg/midi"
)

type trackSummary struct {
	length      uint32
	events      int
	notesOn     int
	fakeNoteOff int
	notesOff    int
	unknownMeta int
	name        string
	channels    []uint8
	duration    uint64
}

type tempoChange struct {
	tick  uint64
	tempo midi.Tempo
}

func summarize(track *midi.Track) (trackSummary, []tempoChange) {
	s := trackSummary{length: track.Length, events: len(track.Events), duration: track.Duration()}
	channels := make(map[uint8]bool)
	var tempos []tempoChange

	times := track.AbsoluteTimes()
	for i, te := range track.Events {
		switch e := te.Event.(type) {
		case midi.NoteOff:
			s.notesOff++
			channels[e.Channel] = true
		case midi.NoteOn:
			if e.Velocity > 0 {
				s.notesOn++
			} else {
				s.fakeNoteOff++
			}
			channels[e.Channel] = true
		case midi.Text:
			if e.Type == midi.MetaTrackName && s.name == "" {
				s.name = e.Text
			}
		case midi.Tempo:
			tempos = append(tempos, tempoChange{tick: times[i], tempo: e})
		case midi.UnknownMeta:
			s.unknownMeta++
		}
	}

	for ch := range channels {
		s.channels = append(s.channels, ch)
	}
	sort.Slice(s.channels, func(i, j int) bool { return s.channels[i] < s.channels[j] })

	return s, tempos
}

func report(w io.Writer, d *midi.Decoder) {
	h := d.Header
	fmt.Fprintf(w, "Midi Format %d\n", h.Format)
	fmt.Fprintf(w, "%d Tracks\n", h.NumTracks)
	if h.TimeFormat() == midi.MetricalTF {
		fmt.Fprintf(w, "%d Ticks per Quarter Note\n", h.TicksPerQuarterNote())
	} else {
		fps, ticks := h.SMPTE()
		fmt.Fprintf(w, "SMPTE %d %d\n", fps, ticks)
	}

	var (
		tempos  []tempoChange
		longest uint64
	)
	for i, track := range d.Tracks {
		s, t := summarize(track)
		tempos = append(tempos, t...)
		if s.duration > longest {
			longest = s.duration
		}

		fmt.Fprintln(w, "---------------------------")
		fmt.Fprintf(w, "Track %d\n", i)
		if s.name != "" {
			fmt.Fprintf(w, "Name: %s\n", s.name)
		}
		fmt.Fprintf(w, "%d bytes long\n", s.length)
		fmt.Fprintf(w, "%d events\n", s.events)
		fmt.Fprintf(w, "%d Real Note Ons, %d Fake Note Offs, %d Actual Note Offs\n", s.notesOn, s.fakeNoteOff, s.notesOff)
		fmt.Fprintf(w, "Channels: %v\n", s.channels)
		fmt.Fprintf(w, "%d Unknown Meta Events\n", s.unknownMeta)
	}

	sort.SliceStable(tempos, func(i, j int) bool { return tempos[i].tick < tempos[j].tick })

	fmt.Fprintln(w, "---------------------------")
	for _, t := range tempos {
		fmt.Fprintf(w, "Tempo at tick %d: %.2f BPM\n", t.tick, t.tempo.BPM())
	}
	fmt.Fprintf(w, "Longest track: %d ticks\n", longest)
}
