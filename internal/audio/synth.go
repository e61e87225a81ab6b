package audio

import (
	"fmt"
	"math"
	"os"
	"time"

	wav "github.com/youpy/go-wav"
)

// Default synthesis parameters, matching a comfortable practice tone.
const (
	DefaultToneHz     = 800
	DefaultVolume     = 1.0
	DefaultSampleRate = 44100
	DefaultWPM        = 20

	numChannels   = 1
	bitsPerSample = 16

	// edgeRampMillis shapes tone on/off edges to avoid clicks
	edgeRampMillis = 5
)

// Params configures tone synthesis.
type Params struct {
	ToneHz     int
	Volume     float64 // 0.0 to 1.0
	SampleRate int
	WPM        int
}

// withDefaults fills zero or out-of-range values.
func (p Params) withDefaults() Params {
	if p.ToneHz <= 0 {
		p.ToneHz = DefaultToneHz
	}
	if p.Volume <= 0 || p.Volume > 1 {
		p.Volume = DefaultVolume
	}
	if p.SampleRate <= 0 {
		p.SampleRate = DefaultSampleRate
	}
	if p.WPM <= 0 {
		p.WPM = DefaultWPM
	}
	return p
}

// Synthesizer renders morse patterns into keyed sine-wave PCM.
type Synthesizer struct {
	params Params
}

// NewSynthesizer creates a synthesizer with the given parameters, applying
// defaults for unset values.
func NewSynthesizer(params Params) *Synthesizer {
	return &Synthesizer{params: params.withDefaults()}
}

// Params returns the effective synthesis parameters.
func (s *Synthesizer) Params() Params {
	return s.params
}

// Render converts a rendered morse string into 16-bit mono samples.
func (s *Synthesizer) Render(pattern string) ([]int16, error) {
	elements := schedule(pattern)
	if len(elements) == 0 {
		return nil, fmt.Errorf("no playable symbols in %q", pattern)
	}

	unit := UnitDuration(s.params.WPM)
	samplesPerUnit := int(int64(s.params.SampleRate) * unit.Nanoseconds() / int64(time.Second))
	ramp := s.params.SampleRate * edgeRampMillis / 1000

	samples := make([]int16, 0, totalUnits(elements)*samplesPerUnit)
	for _, el := range elements {
		n := el.units * samplesPerUnit
		if !el.tone {
			samples = append(samples, make([]int16, n)...)
			continue
		}
		samples = append(samples, s.tone(n, ramp)...)
	}

	return samples, nil
}

// tone produces n samples of sine at the configured frequency with raised
// cosine edges.
func (s *Synthesizer) tone(n, ramp int) []int16 {
	if ramp > n/4 {
		ramp = n / 4
	}

	out := make([]int16, n)
	step := 2 * math.Pi * float64(s.params.ToneHz) / float64(s.params.SampleRate)
	amplitude := s.params.Volume * float64(math.MaxInt16)

	for i := range out {
		v := math.Sin(step*float64(i)) * amplitude
		switch {
		case ramp > 0 && i < ramp:
			v *= 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(ramp)))
		case ramp > 0 && i >= n-ramp:
			v *= 0.5 * (1 - math.Cos(math.Pi*float64(n-1-i)/float64(ramp)))
		}
		out[i] = int16(v)
	}
	return out
}

// WriteFile renders a morse string and writes it as a single-channel WAV
// file at path. The parent directory must already exist.
func (s *Synthesizer) WriteFile(path, pattern string) error {
	samples, err := s.Render(pattern)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	defer file.Close()

	writer := wav.NewWriter(file, uint32(len(samples)), numChannels, uint32(s.params.SampleRate), bitsPerSample)
	wavSamples := make([]wav.Sample, len(samples))
	for i, v := range samples {
		wavSamples[i].Values[0] = int(v)
	}
	if err := writer.WriteSamples(wavSamples); err != nil {
		return fmt.Errorf("failed to write audio samples: %w", err)
	}

	return nil
}
