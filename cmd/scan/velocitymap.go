package main

import (
	"context"

	"github.com/Garik-/humanize/pkg/midi"
	"go.uber.org/zap"
)

type velocityMap map[uint8]bool
type positionMap map[int]velocityMap

// note -> position -> velocity
type noteMap map[uint8]positionMap

// database is the form written to disk and read back by humanize:
// note -> quarter position -> velocities seen
type database map[uint8]map[int][]int

func (m noteMap) add(note uint8, position int, velocity uint8) {
	positions, ok := m[note]
	if !ok {
		positions = make(positionMap)
		m[note] = positions
	}

	velocities, ok := positions[position]
	if !ok {
		velocities = make(velocityMap)
		positions[position] = velocities
	}

	velocities[velocity] = true
}

// addTracks records the velocity of every sounding note on of tracks.
func (m noteMap) addTracks(tracks []*midi.Track, ticksPerQuarterNote uint16) int {
	log := velocityMapLog.Named("addTracks")
	added := 0

	for _, track := range tracks {
		times := track.AbsoluteTimes()

		for i, event := range track.Events {
			on, ok := event.Event.(midi.NoteOn)
			if !ok || on.Velocity == 0 {
				continue
			}

			position := midi.QuarterPosition(times[i], ticksPerQuarterNote)
			log.Debug("event", zap.Uint8("note", on.Key), zap.Int("position", position))

			m.add(on.Key, position, on.Velocity)
			added++
		}
	}

	return added
}

func (m noteMap) database() database {
	out := make(database, len(m))
	for note, positions := range m {
		out[note] = make(map[int][]int, len(positions))
		for position, velocities := range positions {
			list := make([]int, 0, len(velocities))
			for v := 0; v < 128; v++ {
				if velocities[uint8(v)] {
					list = append(list, v)
				}
			}
			out[note][position] = list
		}
	}
	return out
}

func newVelocityMap(parent context.Context, paths <-chan string, cntRoutines int, skipBroken bool) (noteMap, error) {
	log := velocityMapLog.Named("newVelocityMap")
	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, paths, cntRoutines)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait decodeWorker closed
	}()

	m := make(noteMap)

	for result := range results {
		if result.err != nil {
			if !skipBroken {
				return nil, result.err
			}
			log.Warn("skip", zap.String("name", result.name), zap.Error(result.err))
			continue
		}

		if result.ticksPerQuarterNote == 0 {
			log.Warn("skip time code file", zap.String("name", result.name))
			continue
		}

		n := m.addTracks(result.tracks, result.ticksPerQuarterNote)
		log.Debug("result", zap.String("name", result.name), zap.Int("tracks", len(result.tracks)), zap.Int("notes", n))
	}

	return m, nil
}
