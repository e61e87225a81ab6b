package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/morsekit/morse-translator/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	onSaved      func()
	dialog       *dialog.ConfirmDialog

	// UI components
	outputDirEntry *widget.Entry
	toneEntry      *widget.Entry
	wpmEntry       *widget.Entry
	volumeEntry    *widget.Entry
	rateEntry      *widget.Entry
	languageSelect *widget.Select

	// Display name -> language code, mirrors the Select options
	languageByName map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.outputDirEntry = widget.NewEntry()
	sd.outputDirEntry.SetPlaceHolder(sd.localization.GetText(KeyOutputDirectory))

	sd.toneEntry = widget.NewEntry()
	sd.toneEntry.SetPlaceHolder("200-2000")

	sd.wpmEntry = widget.NewEntry()
	sd.wpmEntry.SetPlaceHolder("5-60")

	sd.volumeEntry = widget.NewEntry()
	sd.volumeEntry.SetPlaceHolder("0.1-1.0")

	sd.rateEntry = widget.NewEntry()
	sd.rateEntry.SetPlaceHolder("8000-96000")

	languages := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	sd.languageByName = make(map[string]string, len(languages))
	languageOptions := make([]string, 0, len(languages))
	for _, code := range codes {
		sd.languageByName[languages[code]] = code
		languageOptions = append(languageOptions, languages[code])
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyOutputDirectory)),
		sd.outputDirEntry,
		widget.NewLabel(sd.localization.GetText(KeyToneFrequency)),
		sd.toneEntry,
		widget.NewLabel(sd.localization.GetText(KeyKeyingSpeed)),
		sd.wpmEntry,
		widget.NewLabel(sd.localization.GetText(KeyVolume)),
		sd.volumeEntry,
		widget.NewLabel(sd.localization.GetText(KeySampleRate)),
		sd.rateEntry,
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		func(save bool) {
			if save {
				sd.saveSettings()
			}
		},
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(420, 460))
}

// loadCurrentSettings fills the dialog with the stored values
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.toneEntry.SetText(strconv.Itoa(sd.settings.GetToneHz()))
	sd.wpmEntry.SetText(strconv.Itoa(sd.settings.GetWPM()))
	sd.volumeEntry.SetText(strconv.FormatFloat(sd.settings.GetVolume(), 'f', -1, 64))
	sd.rateEntry.SetText(strconv.Itoa(sd.settings.GetSampleRate()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// saveSettings validates and persists the dialog values. Unparseable
// numbers keep their previous value; the setters clamp ranges.
func (sd *SettingsDialog) saveSettings() {
	if sd.outputDirEntry.Text != "" {
		sd.settings.SetOutputDirectory(sd.outputDirEntry.Text)
	}

	if tone, err := strconv.Atoi(sd.toneEntry.Text); err == nil {
		sd.settings.SetToneHz(tone)
	}
	if wpm, err := strconv.Atoi(sd.wpmEntry.Text); err == nil {
		sd.settings.SetWPM(wpm)
	}
	if volume, err := strconv.ParseFloat(sd.volumeEntry.Text, 64); err == nil {
		sd.settings.SetVolume(volume)
	}
	if rate, err := strconv.Atoi(sd.rateEntry.Text); err == nil {
		sd.settings.SetSampleRate(rate)
	}

	if code, ok := sd.languageByName[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
