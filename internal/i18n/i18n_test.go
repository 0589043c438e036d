package i18n

import "testing"

func TestTranslateKnownKey(t *testing.T) {
	if got := Translate("hi", "dashboard"); got != "डैशबोर्ड" {
		t.Fatalf("expected Hindi dashboard label, got %q", got)
	}
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	if got := Translate("fr", "dashboard"); got != "Dashboard" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	if got := Translate("en", "no.such.key"); got != "no.such.key" {
		t.Fatalf("expected key echo for unknown key, got %q", got)
	}
}

func TestTablesCoverSameKeys(t *testing.T) {
	en := Table("en")
	hi := Table("hi")
	if len(en) != len(hi) {
		t.Fatalf("translation tables out of sync: en=%d hi=%d", len(en), len(hi))
	}
	for key := range en {
		if _, ok := hi[key]; !ok {
			t.Fatalf("hi table missing key %q", key)
		}
	}
}

func TestTableUnsupportedLanguage(t *testing.T) {
	if got := Table("xx")["dashboard"]; got != "Dashboard" {
		t.Fatalf("expected default table for unsupported language, got %q", got)
	}
}
