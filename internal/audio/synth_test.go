package audio

import (
	"os"
	"path/filepath"
	"testing"

	wav "github.com/youpy/go-wav"
)

func TestParams_WithDefaults(t *testing.T) {
	params := Params{}.withDefaults()
	if params.ToneHz != DefaultToneHz {
		t.Errorf("Expected default tone %d, got %d", DefaultToneHz, params.ToneHz)
	}
	if params.Volume != DefaultVolume {
		t.Errorf("Expected default volume %v, got %v", DefaultVolume, params.Volume)
	}
	if params.SampleRate != DefaultSampleRate {
		t.Errorf("Expected default sample rate %d, got %d", DefaultSampleRate, params.SampleRate)
	}
	if params.WPM != DefaultWPM {
		t.Errorf("Expected default WPM %d, got %d", DefaultWPM, params.WPM)
	}

	custom := Params{ToneHz: 600, Volume: 0.5, SampleRate: 8000, WPM: 15}.withDefaults()
	if custom != (Params{ToneHz: 600, Volume: 0.5, SampleRate: 8000, WPM: 15}) {
		t.Errorf("Expected custom params preserved, got %+v", custom)
	}
}

func TestRender_SampleCount(t *testing.T) {
	// One dit at 20 WPM is 60ms; at 8kHz that is 480 samples
	synth := NewSynthesizer(Params{SampleRate: 8000, WPM: 20})
	samples, err := synth.Render(".")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(samples) != 480 {
		t.Errorf("Expected 480 samples for one dit, got %d", len(samples))
	}
}

func TestRender_GapsAreSilent(t *testing.T) {
	synth := NewSynthesizer(Params{SampleRate: 8000, WPM: 20})
	samples, err := synth.Render(". .")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// dit(480) + letter gap(1440) + dit(480)
	if len(samples) != 2400 {
		t.Fatalf("Expected 2400 samples, got %d", len(samples))
	}
	for i := 480; i < 1920; i++ {
		if samples[i] != 0 {
			t.Fatalf("Expected silence in letter gap at sample %d, got %d", i, samples[i])
		}
	}
}

func TestRender_NoPlayableSymbols(t *testing.T) {
	synth := NewSynthesizer(Params{})
	if _, err := synth.Render(""); err == nil {
		t.Error("Expected error for empty pattern")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")

	synth := NewSynthesizer(Params{SampleRate: 8000, WPM: 20})
	if err := synth.WriteFile(path, "... --- ..."); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected output file to exist, got %v", err)
	}
	defer file.Close()

	format, err := wav.NewReader(file).Format()
	if err != nil {
		t.Fatalf("Expected readable WAV file, got %v", err)
	}
	if format.NumChannels != 1 {
		t.Errorf("Expected mono output, got %d channels", format.NumChannels)
	}
	if format.SampleRate != 8000 {
		t.Errorf("Expected 8000Hz sample rate, got %d", format.SampleRate)
	}
	if format.BitsPerSample != 16 {
		t.Errorf("Expected 16-bit samples, got %d", format.BitsPerSample)
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	synth := NewSynthesizer(Params{SampleRate: 8000})
	err := synth.WriteFile(filepath.Join(t.TempDir(), "missing", "tone.wav"), "...")
	if err == nil {
		t.Error("Expected error when parent directory does not exist")
	}
}
