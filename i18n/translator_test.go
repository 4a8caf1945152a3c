package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("type_mismatch", nil); msg == "type_mismatch" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("type_mismatch", nil); msg == "type mismatch" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("made_up_code", nil); msg != "made_up_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "CODE:" + code }

func TestSetTranslator_ReplaceAndReset(t *testing.T) {
	SetTranslator(upperTranslator{})
	if msg := T("no_match", nil); msg != "CODE:no_match" {
		t.Fatalf("custom translator not used, got %q", msg)
	}

	SetTranslator(nil)
	if msg := T("no_match", nil); msg != "no branch matched" {
		t.Fatalf("expected built-in en message after reset, got %q", msg)
	}
}
