package main

import (
	"bufio"
	"context"
	"os"
	"sync"

	"github.com/Garik-/humanize/pkg/midi"
	"go.uber.org/zap"
)

type result struct {
	name                string
	ticksPerQuarterNote uint16
	tracks              []*midi.Track
	err                 error
}

func decodeFile(name string) *result {
	out := &result{name: name}
	f, err := os.Open(name)
	if err != nil {
		out.err = err
		return out
	}

	defer f.Close()

	decoder := midi.NewDecoder(bufio.NewReader(f))
	err = decoder.Decode()
	if err != nil {
		out.err = err
		return out
	}

	out.ticksPerQuarterNote = decoder.TicksPerQuarterNote
	out.tracks = decoder.Tracks
	return out
}

// decodeWorker decodes the files read from paths with at most cntRoutines
// running at the same time. Every file runs through its own decoder, tracks
// never share running status.
func decodeWorker(ctx context.Context, paths <-chan string, cntRoutines int) (<-chan *result, <-chan struct{}) {
	out := make(chan *result)
	done := make(chan struct{}, 1)

	go func() {
		var wg sync.WaitGroup
		goroutines := make(chan struct{}, cntRoutines)

	loop:
		for path := range paths {
			select {
			case goroutines <- struct{}{}:
			case <-ctx.Done():
				decoderLog.Debug("context done")
				break loop
			}
			wg.Add(1)
			go func(ctx context.Context, path string, goroutines <-chan struct{}, out chan<- *result, wg *sync.WaitGroup) {
				defer wg.Done()

				select {
				case out <- decodeFile(path):
				case <-ctx.Done():
					decoderLog.Debug("decodeFile context done", zap.String("path", path))
				}
				<-goroutines

			}(ctx, path, goroutines, out, &wg)
		}

		wg.Wait()
		close(goroutines)
		close(out)

		done <- struct{}{}
		close(done)
	}()

	return out, done
}
