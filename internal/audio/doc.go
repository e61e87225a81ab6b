package audio

// Package audio renders morse patterns into WAV files and plays them back.
// Synthesis writes 16-bit mono PCM through github.com/youpy/go-wav; playback
// streams the file to the default output device via
// github.com/gordonklaus/portaudio. Generation runs as jobs managed by
// Service, which reports progress to the UI through a callback.
