package model

import "testing"

func TestDirection_String(t *testing.T) {
	if TextToMorse.String() != "TextToMorse" {
		t.Errorf("Expected 'TextToMorse', got '%s'", TextToMorse.String())
	}
	if MorseToText.String() != "MorseToText" {
		t.Errorf("Expected 'MorseToText', got '%s'", MorseToText.String())
	}
}

func TestTranslationResult_Meaningless(t *testing.T) {
	tests := []struct {
		name     string
		unknown  int
		groups   int
		expected bool
	}{
		{"no groups", 0, 0, false},
		{"all recognized", 0, 4, false},
		{"minority unknown", 1, 4, false},
		{"exactly half unknown", 2, 4, true},
		{"all unknown", 3, 3, true},
	}

	for _, test := range tests {
		tr := TranslationResult{Unknown: test.unknown, Groups: test.groups}
		if tr.Meaningless() != test.expected {
			t.Errorf("%s: Meaningless() = %v, expected %v", test.name, tr.Meaningless(), test.expected)
		}
	}
}

func TestAudioJob_GetDisplayName(t *testing.T) {
	job := &AudioJob{Text: "SOS"}
	if job.GetDisplayName() != "SOS" {
		t.Errorf("Expected input text as display name, got '%s'", job.GetDisplayName())
	}

	job.OutputPath = "/tmp/out/morse_code_audio_3.wav"
	if job.GetDisplayName() != "morse_code_audio_3.wav" {
		t.Errorf("Expected filename as display name, got '%s'", job.GetDisplayName())
	}
}
