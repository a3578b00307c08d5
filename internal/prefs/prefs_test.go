package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.Panel != PanelDefault {
		t.Fatalf("Panel = %q, want default", p.Panel)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "subline")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte("theme = \"Slate\"\npanel = \" ON \"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Slate")
	}
	if p.Panel != PanelOn {
		t.Fatalf("Panel = %q, want %q", p.Panel, PanelOn)
	}
}

func TestLoad_UnknownPanelFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("panel = \"sometimes\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Panel != PanelDefault {
		t.Fatalf("Panel = %q, want default", p.Panel)
	}
}

func TestSave_RoundTripCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Slate"}.WithPanel(false)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := Load(path)
	if loaded.Theme != "Slate" || loaded.Panel != PanelOff {
		t.Fatalf("loaded = %+v, want Slate with panel off", loaded)
	}
}

func TestShowPanel(t *testing.T) {
	cases := []struct {
		panel    string
		fallback bool
		want     bool
	}{
		{PanelDefault, true, true},
		{PanelDefault, false, false},
		{PanelOn, false, true},
		{PanelOff, true, false},
	}
	for _, tc := range cases {
		if got := (Prefs{Panel: tc.panel}).ShowPanel(tc.fallback); got != tc.want {
			t.Fatalf("ShowPanel(%q, %v) = %v, want %v", tc.panel, tc.fallback, got, tc.want)
		}
	}
}

func TestLoad_EmptyThemeFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme || p.Panel != PanelDefault {
		t.Fatalf("prefs = %+v, want defaults", p)
	}
}
