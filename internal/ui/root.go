package ui

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/morsekit/morse-translator/internal/audio"
	"github.com/morsekit/morse-translator/internal/config"
	"github.com/morsekit/morse-translator/internal/model"
	"github.com/morsekit/morse-translator/internal/morse"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	audioSvc     audio.Generator
	settings     *config.Settings
	localization *Localization

	plainEntry  *widget.Entry
	morseEntry  *widget.Entry
	statusEntry *widget.Entry
	createAudio *widget.Check

	plainLabel  *widget.Label
	morseLabel  *widget.Label
	statusLabel *widget.Label

	toMorseBtn   *widget.Button
	toPlainBtn   *widget.Button
	copyPlainBtn *widget.Button
	copyMorseBtn *widget.Button
	playBtn      *widget.Button
	clearBtn     *widget.Button

	// lastOutputPath is the most recently generated audio file. It is only
	// written on the UI thread, from job updates and Clear All.
	lastOutputPath string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, audioSvc audio.Generator) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		audioSvc:     audioSvc,
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized with audio service: %v", ui.audioSvc != nil)

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Receive generation results from the audio service
	ui.audioSvc.SetUpdateCallback(ui.onJobUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.plainEntry = widget.NewEntry()
	ui.plainEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPlainText))
	ui.plainEntry.OnSubmitted = func(string) {
		ui.onToMorse()
	}

	ui.morseEntry = widget.NewEntry()
	ui.morseEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterMorseCode))
	ui.morseEntry.OnSubmitted = func(string) {
		ui.onToPlain()
	}

	ui.statusEntry = widget.NewEntry()
	ui.statusEntry.Disable()

	ui.toMorseBtn = widget.NewButton(ui.localization.GetText(KeyToMorse), ui.onToMorse)
	ui.toMorseBtn.Importance = widget.HighImportance
	ui.toPlainBtn = widget.NewButton(ui.localization.GetText(KeyToPlainText), ui.onToPlain)
	ui.toPlainBtn.Importance = widget.HighImportance

	ui.copyPlainBtn = widget.NewButton(ui.localization.GetText(KeyCopy), func() {
		ui.onCopy(ui.plainEntry.Text)
	})
	ui.copyMorseBtn = widget.NewButton(ui.localization.GetText(KeyCopy), func() {
		ui.onCopy(ui.morseEntry.Text)
	})

	ui.playBtn = widget.NewButton(ui.localization.GetText(KeyPlayAudio), ui.onPlay)
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearAll), ui.onClearAll)

	ui.createAudio = widget.NewCheck(ui.localization.GetText(KeyCreateAudio), func(on bool) {
		ui.settings.SetCreateAudioDefault(on)
	})
	ui.createAudio.SetChecked(ui.settings.GetCreateAudioDefault())

	ui.plainLabel = widget.NewLabel(ui.localization.GetText(KeyPlainText))
	ui.morseLabel = widget.NewLabel(ui.localization.GetText(KeyMorseCode))
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyAudioStatus))

	plainRow := container.NewBorder(nil, nil, ui.plainLabel,
		container.NewHBox(ui.toMorseBtn, ui.copyPlainBtn), ui.plainEntry)
	morseRow := container.NewBorder(nil, nil, ui.morseLabel,
		container.NewHBox(ui.toPlainBtn, ui.copyMorseBtn), ui.morseEntry)
	statusRow := container.NewBorder(nil, nil, ui.statusLabel,
		container.NewHBox(ui.playBtn), ui.statusEntry)
	actionRow := container.NewHBox(ui.createAudio, ui.clearBtn)

	content := container.NewVBox(plainRow, morseRow, statusRow, actionRow)
	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onToMorse translates the plain text field into morse code
func (ui *RootUI) onToMorse() {
	clean, unsupported, err := morse.Sanitize(ui.plainEntry.Text, model.TextToMorse)
	if errors.Is(err, morse.ErrEmptyInput) {
		ui.showWarning(ui.localization.GetText(KeyNothingToDo))
		return
	}

	if len(unsupported) > 0 {
		// Let the user choose: strip the characters or abandon the request
		dialog.ShowConfirm(
			ui.localization.GetText(KeyStripConfirmTitle),
			ui.localization.GetText(KeyStripConfirm)+"\n"+formatRunes(unsupported),
			func(strip bool) {
				if !strip {
					ui.resetAudioState()
					return
				}
				ui.encode(morse.StripUnsupported(clean, model.TextToMorse))
			},
			ui.window,
		)
		return
	}

	ui.encode(clean)
}

// encode runs the actual translation and optional audio generation
func (ui *RootUI) encode(text string) {
	result, err := morse.ToMorse(text)
	if err != nil {
		ui.resetAudioState()
		ui.showWarning(ui.localization.GetText(KeyMeaninglessInput))
		return
	}

	ui.morseEntry.SetText(result.Output)

	if ui.createAudio.Checked {
		ui.generateAudio(text)
	}
}

// onToPlain translates the morse code field into plain text
func (ui *RootUI) onToPlain() {
	clean, unsupported, err := morse.Sanitize(ui.morseEntry.Text, model.MorseToText)
	if errors.Is(err, morse.ErrEmptyInput) {
		ui.showWarning(ui.localization.GetText(KeyNothingToDo))
		return
	}

	if len(unsupported) > 0 {
		ui.showWarning(ui.localization.GetText(KeyIllegalMorse))
		return
	}

	result, err := morse.ToText(clean)
	if err != nil {
		ui.resetAudioState()
		ui.showWarning(ui.localization.GetText(KeyMeaninglessInput))
		return
	}

	ui.plainEntry.SetText(result.Output)
	if result.Warning != "" {
		ui.showWarning(ui.localization.GetText(KeyMostlyUnknown))
	}

	if ui.createAudio.Checked {
		ui.generateAudio(result.Output)
	}
}

// generateAudio submits an audio generation job for the given text
func (ui *RootUI) generateAudio(text string) {
	if _, err := ui.audioSvc.Generate(text); err != nil {
		ui.resetAudioState()
		ui.showWarning(ui.localization.GetText(KeyMeaninglessInput))
	}
}

// onJobUpdate handles job updates from the audio service
func (ui *RootUI) onJobUpdate(job *model.AudioJob) {
	if !job.Status.IsFinished() {
		return
	}

	fyne.Do(func() {
		if job.Status == model.JobStatusError {
			log.Printf("Audio generation failed: %s", job.LastError)
			ui.resetAudioState()
			dialog.ShowInformation(
				ui.localization.GetText(KeyGenerationFailed),
				job.LastError,
				ui.window,
			)
			return
		}

		ui.lastOutputPath = job.OutputPath
		ui.statusEntry.SetText(ui.localization.GetText(KeyAudioReady) + " " + job.OutputPath)
	})
}

// onPlay plays back the most recently generated audio file
func (ui *RootUI) onPlay() {
	path := ui.lastOutputPath
	if path == "" {
		ui.showWarning(ui.localization.GetText(KeyNothingToPlay))
		return
	}

	go func() {
		if err := ui.audioSvc.Play(context.Background(), path); err != nil {
			log.Printf("Playback failed for %s: %v", path, err)
			fyne.Do(func() {
				dialog.ShowInformation(
					ui.localization.GetText(KeyPlaybackFailed),
					err.Error(),
					ui.window,
				)
			})
		}
	}()
}

// onCopy copies the given field text to the system clipboard
func (ui *RootUI) onCopy(text string) {
	if strings.TrimSpace(text) == "" {
		ui.showWarning(ui.localization.GetText(KeyNothingToCopy))
		return
	}

	fyne.CurrentApp().Clipboard().SetContent(text)
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyCopied)), ui.window.Canvas())
}

// onClearAll clears every field and forgets the generated file
func (ui *RootUI) onClearAll() {
	ui.plainEntry.SetText("")
	ui.morseEntry.SetText("")
	ui.resetAudioState()
}

// OutputDirChanged reacts to files appearing or disappearing in the output
// directory. Safe to call from any goroutine.
func (ui *RootUI) OutputDirChanged(path string, removed bool) {
	if !removed {
		return
	}
	fyne.Do(func() {
		// The remembered file is gone; stop offering to play it
		if path == ui.lastOutputPath {
			ui.resetAudioState()
		}
	})
}

// resetAudioState clears the status row and the remembered output path
func (ui *RootUI) resetAudioState() {
	ui.lastOutputPath = ""
	ui.statusEntry.SetText("")
}

// onShowSettings displays the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved propagates saved settings to the audio service
func (ui *RootUI) onSettingsSaved() {
	ui.audioSvc.SetOutputDirectory(ui.settings.GetOutputDirectory())
	ui.audioSvc.SetParams(audio.Params{
		ToneHz:     ui.settings.GetToneHz(),
		Volume:     ui.settings.GetVolume(),
		SampleRate: ui.settings.GetSampleRate(),
		WPM:        ui.settings.GetWPM(),
	})
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.plainEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPlainText))
	ui.morseEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterMorseCode))
	ui.plainLabel.SetText(ui.localization.GetText(KeyPlainText))
	ui.morseLabel.SetText(ui.localization.GetText(KeyMorseCode))
	ui.statusLabel.SetText(ui.localization.GetText(KeyAudioStatus))
	ui.toMorseBtn.SetText(ui.localization.GetText(KeyToMorse))
	ui.toPlainBtn.SetText(ui.localization.GetText(KeyToPlainText))
	ui.copyPlainBtn.SetText(ui.localization.GetText(KeyCopy))
	ui.copyMorseBtn.SetText(ui.localization.GetText(KeyCopy))
	ui.playBtn.SetText(ui.localization.GetText(KeyPlayAudio))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClearAll))
	ui.createAudio.Text = ui.localization.GetText(KeyCreateAudio)
	ui.createAudio.Refresh()
}

// showWarning displays a transient warning to the user
func (ui *RootUI) showWarning(message string) {
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}

// formatRunes renders flagged characters for the confirm dialog
func formatRunes(runes []rune) string {
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
