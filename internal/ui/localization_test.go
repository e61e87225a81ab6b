package ui

import "testing"

func TestLocalization_DefaultLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected 'en', got '%s'", l.GetCurrentLanguage())
	}
	if l.GetText(KeyToMorse) != "To Morse" {
		t.Errorf("Expected 'To Morse', got '%s'", l.GetText(KeyToMorse))
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("pl")
	if l.GetCurrentLanguage() != "pl" {
		t.Errorf("Expected 'pl', got '%s'", l.GetCurrentLanguage())
	}
	if l.GetText(KeyToMorse) != "Na Morse'a" {
		t.Errorf("Expected Polish label, got '%s'", l.GetText(KeyToMorse))
	}

	// Unknown language keeps the current one
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "pl" {
		t.Errorf("Expected 'pl' after invalid switch, got '%s'", l.GetCurrentLanguage())
	}
}

func TestLocalization_SystemFallsBackToEnglish(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pl")
	l.SetLanguage("system")

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected 'en', got '%s'", l.GetCurrentLanguage())
	}
}

func TestLocalization_UnknownKeyReturnsKey(t *testing.T) {
	l := NewLocalization()

	if l.GetText("no_such_key") != "no_such_key" {
		t.Errorf("Expected key itself as fallback, got '%s'", l.GetText("no_such_key"))
	}
}

func TestLocalization_AllKeysPresentInEveryLanguage(t *testing.T) {
	l := NewLocalization()

	english := l.texts["en"]
	for lang, texts := range l.texts {
		for key := range english {
			if _, ok := texts[key]; !ok {
				t.Errorf("Language '%s' is missing key '%s'", lang, key)
			}
		}
	}
}
