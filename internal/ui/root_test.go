package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/morsekit/morse-translator/internal/audio"
	"github.com/morsekit/morse-translator/internal/model"
)

// fakeGenerator records calls without doing any synthesis
type fakeGenerator struct {
	generated []string
	played    []string
	callback  func(*model.AudioJob)
}

func (f *fakeGenerator) SetUpdateCallback(cb func(*model.AudioJob)) { f.callback = cb }

func (f *fakeGenerator) Generate(text string) (*model.AudioJob, error) {
	f.generated = append(f.generated, text)
	return &model.AudioJob{ID: "job-1", Text: text, Status: model.JobStatusPending}, nil
}

func (f *fakeGenerator) GetJob(id string) (*model.AudioJob, bool) { return nil, false }

func (f *fakeGenerator) GetAllJobs() []*model.AudioJob { return nil }

func (f *fakeGenerator) Play(ctx context.Context, path string) error {
	f.played = append(f.played, path)
	return nil
}

func (f *fakeGenerator) SetOutputDirectory(dir string) {}

func (f *fakeGenerator) SetParams(params audio.Params) {}

func newTestUI(t *testing.T) (*RootUI, *fakeGenerator) {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")
	generator := &fakeGenerator{}
	return NewRootUI(window, app, generator), generator
}

func TestRootUI_TranslateToMorse(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.plainEntry.SetText("SOS")
	ui.onToMorse()

	if ui.morseEntry.Text != "... --- ..." {
		t.Errorf("Expected '... --- ...', got %q", ui.morseEntry.Text)
	}
}

func TestRootUI_TranslateToPlain(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.morseEntry.SetText("... --- ...")
	ui.onToPlain()

	if ui.plainEntry.Text != "SOS" {
		t.Errorf("Expected 'SOS', got %q", ui.plainEntry.Text)
	}
}

func TestRootUI_CreateAudioChecked(t *testing.T) {
	ui, generator := newTestUI(t)

	ui.createAudio.SetChecked(true)
	ui.plainEntry.SetText("hi")
	ui.onToMorse()

	if len(generator.generated) != 1 {
		t.Fatalf("Expected one generation request, got %d", len(generator.generated))
	}
	if generator.generated[0] != "HI" {
		t.Errorf("Expected sanitized text 'HI', got %q", generator.generated[0])
	}
}

func TestRootUI_CreateAudioUnchecked(t *testing.T) {
	ui, generator := newTestUI(t)

	ui.plainEntry.SetText("hi")
	ui.onToMorse()

	if len(generator.generated) != 0 {
		t.Errorf("Expected no generation requests, got %d", len(generator.generated))
	}
}

func TestRootUI_PlayWithoutFile(t *testing.T) {
	ui, generator := newTestUI(t)

	ui.onPlay()

	if len(generator.played) != 0 {
		t.Errorf("Expected no playback without a generated file, got %v", generator.played)
	}
}

func TestRootUI_ClearAll(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.plainEntry.SetText("text")
	ui.morseEntry.SetText("-")
	ui.lastOutputPath = "/tmp/out.wav"
	ui.statusEntry.SetText("READY: /tmp/out.wav")

	ui.onClearAll()

	if ui.plainEntry.Text != "" || ui.morseEntry.Text != "" || ui.statusEntry.Text != "" {
		t.Error("Expected all fields cleared")
	}
	if ui.lastOutputPath != "" {
		t.Errorf("Expected output path forgotten, got %q", ui.lastOutputPath)
	}
}

func TestRootUI_LanguageMenuOrder(t *testing.T) {
	ui, _ := newTestUI(t)

	menus := ui.window.MainMenu().Items
	if len(menus) < 2 {
		t.Fatalf("Expected at least 2 menus, got %d", len(menus))
	}

	var got []string
	for _, item := range menus[1].Items {
		got = append(got, item.Label)
	}

	want := []string{"English", "Polski"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d language items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected language item %d to be %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRootUI_JobUpdates(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.onJobUpdate(&model.AudioJob{
		Status:     model.JobStatusReady,
		OutputPath: "/tmp/out/morse_code_audio.wav",
	})

	if ui.lastOutputPath != "/tmp/out/morse_code_audio.wav" {
		t.Errorf("Expected output path remembered, got %q", ui.lastOutputPath)
	}
	if ui.statusEntry.Text == "" {
		t.Error("Expected status row to announce the generated file")
	}

	// A failed job clears the audio state so Play stops offering the file
	ui.onJobUpdate(&model.AudioJob{
		Status:    model.JobStatusError,
		LastError: "disk full",
	})

	if ui.lastOutputPath != "" {
		t.Errorf("Expected output path forgotten after failure, got %q", ui.lastOutputPath)
	}
	if ui.statusEntry.Text != "" {
		t.Errorf("Expected status row cleared after failure, got %q", ui.statusEntry.Text)
	}
}

func TestRootUI_IllegalMorseInput(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.plainEntry.SetText("unchanged")
	ui.morseEntry.SetText("..x --- ...")
	ui.onToPlain()

	// Illegal characters abort the translation entirely
	if ui.plainEntry.Text != "unchanged" {
		t.Errorf("Expected translation aborted, plain field became %q", ui.plainEntry.Text)
	}
}

func TestFormatRunes(t *testing.T) {
	result := formatRunes([]rune{'~', '^'})
	if result != "~ ^" {
		t.Errorf("Expected '~ ^', got %q", result)
	}
}
