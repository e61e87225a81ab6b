package config

import (
	"fyne.io/fyne/v2"

	"github.com/morsekit/morse-translator/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir   = "output_directory"
	KeyToneHz      = "tone_hz"
	KeyWPM         = "words_per_minute"
	KeyVolume      = "volume"
	KeySampleRate  = "sample_rate"
	KeyLanguage    = "app_language"
	KeyCreateAudio = "create_audio_default"
)

// Default values
const (
	DefaultToneHz      = 800
	DefaultWPM         = 20
	DefaultVolume      = 1.0
	DefaultSampleRate  = 44100
	DefaultLanguage    = "system"
	DefaultCreateAudio = false
)

// Value bounds
const (
	MinToneHz     = 200
	MaxToneHz     = 2000
	MinWPM        = 5
	MaxWPM        = 60
	MinVolume     = 0.1
	MaxVolume     = 1.0
	MinSampleRate = 8000
	MaxSampleRate = 96000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured audio output directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeOutputDir()
		if err != nil {
			defaultDir = "/tmp/morse-audio"
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the audio output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetToneHz returns the configured tone frequency
func (s *Settings) GetToneHz() int {
	value := s.app.Preferences().Int(KeyToneHz)
	if value == 0 {
		s.SetToneHz(DefaultToneHz)
		return DefaultToneHz
	}
	return value
}

// SetToneHz sets the tone frequency, clamped to the supported range
func (s *Settings) SetToneHz(hz int) {
	if hz < MinToneHz {
		hz = MinToneHz
	}
	if hz > MaxToneHz {
		hz = MaxToneHz
	}
	s.app.Preferences().SetInt(KeyToneHz, hz)
}

// GetWPM returns the configured keying speed in words per minute
func (s *Settings) GetWPM() int {
	value := s.app.Preferences().Int(KeyWPM)
	if value == 0 {
		s.SetWPM(DefaultWPM)
		return DefaultWPM
	}
	return value
}

// SetWPM sets the keying speed, clamped to the supported range
func (s *Settings) SetWPM(wpm int) {
	if wpm < MinWPM {
		wpm = MinWPM
	}
	if wpm > MaxWPM {
		wpm = MaxWPM
	}
	s.app.Preferences().SetInt(KeyWPM, wpm)
}

// GetVolume returns the configured playback volume (0.0 to 1.0)
func (s *Settings) GetVolume() float64 {
	value := s.app.Preferences().Float(KeyVolume)
	if value == 0 {
		s.SetVolume(DefaultVolume)
		return DefaultVolume
	}
	return value
}

// SetVolume sets the volume, clamped to 0.1-1.0 so playback stays audible
func (s *Settings) SetVolume(volume float64) {
	if volume < MinVolume {
		volume = MinVolume
	}
	if volume > MaxVolume {
		volume = MaxVolume
	}
	s.app.Preferences().SetFloat(KeyVolume, volume)
}

// GetSampleRate returns the configured output sample rate
func (s *Settings) GetSampleRate() int {
	value := s.app.Preferences().Int(KeySampleRate)
	if value == 0 {
		s.SetSampleRate(DefaultSampleRate)
		return DefaultSampleRate
	}
	return value
}

// SetSampleRate sets the sample rate, clamped to the supported range
func (s *Settings) SetSampleRate(rate int) {
	if rate < MinSampleRate {
		rate = MinSampleRate
	}
	if rate > MaxSampleRate {
		rate = MaxSampleRate
	}
	s.app.Preferences().SetInt(KeySampleRate, rate)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCreateAudioDefault returns whether the Create Audio checkbox starts on
func (s *Settings) GetCreateAudioDefault() bool {
	return s.app.Preferences().BoolWithFallback(KeyCreateAudio, DefaultCreateAudio)
}

// SetCreateAudioDefault sets the Create Audio checkbox default
func (s *Settings) SetCreateAudioDefault(on bool) {
	s.app.Preferences().SetBool(KeyCreateAudio, on)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pl":     "Polski",
	}
}
