package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyPlainText         = "plain_text"
	KeyMorseCode         = "morse_code"
	KeyAudioStatus       = "audio_status"
	KeyToMorse           = "to_morse"
	KeyToPlainText       = "to_plain_text"
	KeyCopy              = "copy"
	KeyPlayAudio         = "play_audio"
	KeyClearAll          = "clear_all"
	KeyCreateAudio       = "create_audio"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyOutputDirectory   = "output_directory"
	KeyToneFrequency     = "tone_frequency"
	KeyKeyingSpeed       = "keying_speed"
	KeyVolume            = "volume"
	KeySampleRate        = "sample_rate"
	KeySettingsSaved     = "settings_saved"
	KeyAudioReady        = "audio_ready"
	KeyCopied            = "copied"
	KeyNothingToCopy     = "nothing_to_copy"
	KeyNothingToPlay     = "nothing_to_play"
	KeyNothingToDo       = "nothing_to_translate"
	KeyIllegalMorse      = "illegal_morse"
	KeyMeaninglessInput  = "meaningless_input"
	KeyMostlyUnknown     = "mostly_unknown"
	KeyStripConfirm      = "strip_confirm"
	KeyStripConfirmTitle = "strip_confirm_title"
	KeyGenerationFailed  = "generation_failed"
	KeyPlaybackFailed    = "playback_failed"
	KeyEnterPlainText    = "enter_plain_text"
	KeyEnterMorseCode    = "enter_morse_code"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns available language codes and display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pl": "Polski",
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// initializeTexts fills the translation tables
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Morse Code Translator & Audio Generator",
		KeyPlainText:         "Plain Text:",
		KeyMorseCode:         "Morse Code:",
		KeyAudioStatus:       "Audio Status:",
		KeyToMorse:           "To Morse",
		KeyToPlainText:       "To Plain Text",
		KeyCopy:              "Copy",
		KeyPlayAudio:         "Play Audio",
		KeyClearAll:          "Clear All",
		KeyCreateAudio:       "Create Audio",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyOutputDirectory:   "Output directory",
		KeyToneFrequency:     "Tone frequency (Hz)",
		KeyKeyingSpeed:       "Speed (words per minute)",
		KeyVolume:            "Volume (0-1)",
		KeySampleRate:        "Sample rate (Hz)",
		KeySettingsSaved:     "Settings saved",
		KeyAudioReady:        "READY:",
		KeyCopied:            "The text has been copied to your clipboard.",
		KeyNothingToCopy:     "There is nothing to copy (yet).",
		KeyNothingToPlay:     "There is nothing to play (yet).",
		KeyNothingToDo:       "There is nothing to translate (yet).",
		KeyIllegalMorse:      "You may only use dots, dashes, forward slashes and spaces in your Morse code input.",
		KeyMeaninglessInput:  "The input contains no translatable characters. Please use letters, numbers and punctuation marks.",
		KeyMostlyUnknown:     "Most symbol groups did not match any Morse pattern. The result may be meaningless.",
		KeyStripConfirmTitle: "Unsupported characters",
		KeyStripConfirm:      "Your input contains characters that cannot be translated. Remove them automatically and continue?",
		KeyGenerationFailed:  "The audio file could not be created",
		KeyPlaybackFailed:    "The audio file could not be played",
		KeyEnterPlainText:    "Enter text to translate",
		KeyEnterMorseCode:    "Enter Morse code (.- / ...)",
	}

	l.texts["pl"] = map[string]string{
		KeyAppTitle:          "Translator kodu Morse'a i generator audio",
		KeyPlainText:         "Tekst:",
		KeyMorseCode:         "Kod Morse'a:",
		KeyAudioStatus:       "Status audio:",
		KeyToMorse:           "Na Morse'a",
		KeyToPlainText:       "Na tekst",
		KeyCopy:              "Kopiuj",
		KeyPlayAudio:         "Odtwórz audio",
		KeyClearAll:          "Wyczyść wszystko",
		KeyCreateAudio:       "Utwórz audio",
		KeySettings:          "Ustawienia",
		KeyFile:              "Plik",
		KeyLanguage:          "Język",
		KeySave:              "Zapisz",
		KeyCancel:            "Anuluj",
		KeyOutputDirectory:   "Katalog wyjściowy",
		KeyToneFrequency:     "Częstotliwość tonu (Hz)",
		KeyKeyingSpeed:       "Tempo (słów na minutę)",
		KeyVolume:            "Głośność (0-1)",
		KeySampleRate:        "Częstotliwość próbkowania (Hz)",
		KeySettingsSaved:     "Ustawienia zapisane",
		KeyAudioReady:        "GOTOWE:",
		KeyCopied:            "Tekst został skopiowany do schowka.",
		KeyNothingToCopy:     "Nie ma (jeszcze) nic do skopiowania.",
		KeyNothingToPlay:     "Nie ma (jeszcze) nic do odtworzenia.",
		KeyNothingToDo:       "Nie ma (jeszcze) nic do przetłumaczenia.",
		KeyIllegalMorse:      "W kodzie Morse'a można używać tylko kropek, kresek, ukośników i spacji.",
		KeyMeaninglessInput:  "Tekst nie zawiera znaków możliwych do przetłumaczenia. Użyj liter, cyfr i znaków interpunkcyjnych.",
		KeyMostlyUnknown:     "Większość grup symboli nie pasuje do żadnego wzorca Morse'a. Wynik może być bez znaczenia.",
		KeyStripConfirmTitle: "Nieobsługiwane znaki",
		KeyStripConfirm:      "Tekst zawiera znaki, których nie można przetłumaczyć. Usunąć je automatycznie i kontynuować?",
		KeyGenerationFailed:  "Nie udało się utworzyć pliku audio",
		KeyPlaybackFailed:    "Nie udało się odtworzyć pliku audio",
		KeyEnterPlainText:    "Wpisz tekst do przetłumaczenia",
		KeyEnterMorseCode:    "Wpisz kod Morse'a (.- / ...)",
	}
}
