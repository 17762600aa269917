package main

import (
	"encoding/json"
	"io/ioutil"
	"math/rand"

	"github.com/Garik-/humanize/pkg/midi"
	"go.uber.org/zap"
)

// note -> quarter position -> velocities, as written by scan
type velocityMap map[uint8]map[int][]int

var humanizeLog = zap.NewNop()

func importDatabase(name string) (velocityMap, error) {
	bytes, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, err
	}

	var data velocityMap
	err = json.Unmarshal(bytes, &data)
	return data, err
}

// randVelocity picks one of velocities inside [min, max]. ok is false when
// none qualifies.
func randVelocity(rnd *rand.Rand, velocities []int, min int, max int) (uint8, bool) {
	candidates := make([]int, 0, len(velocities))
	for _, v := range velocities {
		if v >= min && v <= max && v > 0 {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return uint8(candidates[rnd.Intn(len(candidates))]), true
}

// humanize rewrites the velocity of every sounding note on found in data.
// Zero velocity note ons stay as they are since they end a note.
func humanize(tracks []*midi.Track, ticksPerQuarterNote uint16, data velocityMap, cfg config, rnd *rand.Rand) int {
	changed := 0

	for _, track := range tracks {
		times := track.AbsoluteTimes()

		for i, event := range track.Events {
			on, ok := event.Event.(midi.NoteOn)
			if !ok || on.Velocity == 0 {
				continue
			}

			positions, ok := data[on.Key]
			if !ok {
				continue
			}

			position := midi.QuarterPosition(times[i], ticksPerQuarterNote)
			velocity, ok := randVelocity(rnd, positions[position], cfg.MinVelocity, cfg.MaxVelocity)
			if !ok {
				continue
			}

			humanizeLog.Debug("velocity",
				zap.Uint8("note", on.Key),
				zap.Int("position", position),
				zap.Uint8("from", on.Velocity),
				zap.Uint8("to", velocity))

			on.Velocity = velocity
			track.Events[i].Event = on
			changed++
		}
	}

	return changed
}
