package audio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/gordonklaus/portaudio"
	wav "github.com/youpy/go-wav"
)

const framesPerBuffer = 1024

// Player streams WAV files to the default output device.
type Player struct {
	// playMutex serializes playback; overlapping tones are useless noise
	playMutex sync.Mutex
}

// NewPlayer creates a player.
func NewPlayer() *Player {
	return &Player{}
}

// Play plays the WAV file at path through the default output stream and
// returns when the file has finished or the context is cancelled.
func (p *Player) Play(ctx context.Context, path string) error {
	p.playMutex.Lock()
	defer p.playMutex.Unlock()

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	defer portaudio.Terminate()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	reader := wav.NewReader(file)
	format, err := reader.Format()
	if err != nil {
		return fmt.Errorf("failed to read WAV format: %w", err)
	}

	done := make(chan struct{})
	var closeDone sync.Once

	stream, err := portaudio.OpenDefaultStream(
		0,
		int(format.NumChannels),
		float64(format.SampleRate),
		framesPerBuffer,
		func(out []int16) {
			samples, err := reader.ReadSamples(uint32(framesPerBuffer))
			if err == io.EOF {
				for i := range out {
					out[i] = 0
				}
				closeDone.Do(func() { close(done) })
				return
			}
			if err != nil {
				slog.Error("Error reading from WAV file", "error", err, "path", path)
				closeDone.Do(func() { close(done) })
				return
			}

			idx := 0
			for _, sample := range samples {
				for ch := 0; ch < int(format.NumChannels) && idx < len(out); ch++ {
					out[idx] = int16(sample.Values[ch])
					idx++
				}
			}
			// Fill remaining buffer with silence if needed
			for ; idx < len(out); idx++ {
				out[idx] = 0
			}
		},
	)
	if err != nil {
		return fmt.Errorf("failed to open audio stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("failed to start audio stream: %w", err)
	}

	select {
	case <-done:
	case <-ctx.Done():
		if err := stream.Stop(); err != nil {
			return fmt.Errorf("failed to stop audio stream: %w", err)
		}
		return ctx.Err()
	}

	return stream.Stop()
}
