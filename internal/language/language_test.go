package language

import (
	"reflect"
	"testing"
)

func TestTranslate(t *testing.T) {
	table := Default()

	tests := []struct {
		name string
		code string
		key  string
		want string
	}{
		{"english", English, "Left", "Left"},
		{"finnish", Finnish, "Turn", "Käänny"},
		{"finnish protect", Finnish, "Protect", "Suojaa"},
		{"unknown key falls back", Finnish, "Jump", "Jump"},
		{"unknown language falls back", "de-DE", "Right", "Right"},
		{"empty code", "", "Left", "Left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Translate(tt.code, tt.key); got != tt.want {
				t.Errorf("Translate(%q, %q) = %q, want %q", tt.code, tt.key, got, tt.want)
			}
		})
	}
}

func TestTranslateEmptyEntryFallsBack(t *testing.T) {
	table := Table{"xx": {"Left": ""}}
	if got := table.Translate("xx", "Left"); got != "Left" {
		t.Errorf("Translate = %q, want raw key", got)
	}
}

func TestCodes(t *testing.T) {
	got := Default().Codes()
	want := []string{English, Finnish}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
}

func TestMerge(t *testing.T) {
	base := Default()
	merged := base.Merge(Table{
		"sv-SE": {"Left": "Vänster"},
		Finnish: {"Turn": "Käänny ympäri"},
		"  ":    {"Left": "ignored"},
	})

	if !merged.Has("sv-SE") {
		t.Fatal("merged table should contain sv-SE")
	}
	if got := merged.Translate("sv-SE", "Left"); got != "Vänster" {
		t.Errorf("sv-SE Left = %q", got)
	}
	if got := merged.Translate(Finnish, "Turn"); got != "Käänny ympäri" {
		t.Errorf("fi-FI Turn override = %q", got)
	}
	if got := merged.Translate(Finnish, "Left"); got != "Vasen" {
		t.Errorf("fi-FI Left should survive merge, got %q", got)
	}
	if merged.Has("  ") || merged.Has("") {
		t.Error("blank codes should be skipped")
	}
	if got := base.Translate(Finnish, "Turn"); got != "Käänny" {
		t.Errorf("Merge must not mutate the receiver, got %q", got)
	}
}

func TestBase(t *testing.T) {
	tests := map[string]string{
		"fi-FI": "fi",
		"en_US": "en",
		"SV":    "sv",
		"":      "",
	}
	for in, want := range tests {
		if got := Base(in); got != want {
			t.Errorf("Base(%q) = %q, want %q", in, got, want)
		}
	}
}
