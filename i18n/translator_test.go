package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("type", nil); msg == "type" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("type", nil); msg == "invalid type" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

type upper struct{}

func (upper) Message(cause string, _ map[string]string) string { return "X:" + cause }

func TestTranslator_CustomAndUnknownCause(t *testing.T) {
	if msg := T("no_such_cause", nil); msg != "no_such_cause" {
		t.Fatalf("unknown causes fall back to the cause itself, got %q", msg)
	}
	SetTranslator(upper{})
	if msg := T("pattern", nil); msg != "X:pattern" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("pattern", nil); msg != "pattern mismatch" {
		t.Fatalf("nil translator should restore the default, got %q", msg)
	}
}

func TestDictionary(t *testing.T) {
	if msg := Dictionary("ja").Message("checksum", nil); msg != "チェックサムが一致しません" {
		t.Fatalf("unexpected ja message %q", msg)
	}
	if msg := Dictionary("fr").Message("checksum", nil); msg != "checksum mismatch" {
		t.Fatalf("unknown language should fall back to en, got %q", msg)
	}
}
