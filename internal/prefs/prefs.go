// Package prefs persists the overlay choices made at runtime.
// Preferences are stored in ~/.config/subline/prefs.toml.
package prefs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Panel styles. PanelDefault defers to transcription_type in config.toml.
const (
	PanelDefault = ""
	PanelOn      = "on"
	PanelOff     = "off"
)

// Prefs holds user preferences toggled from the keyboard.
type Prefs struct {
	Theme string `toml:"theme"`
	Panel string `toml:"panel,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/subline/prefs.toml"
	defaultTheme     = "Dracula"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// ShowPanel resolves the panel preference against the configured fallback.
func (p Prefs) ShowPanel(fallback bool) bool {
	switch p.Panel {
	case PanelOn:
		return true
	case PanelOff:
		return false
	default:
		return fallback
	}
}

// WithPanel records an explicit panel choice.
func (p Prefs) WithPanel(show bool) Prefs {
	if show {
		p.Panel = PanelOn
	} else {
		p.Panel = PanelOff
	}
	return p
}

// Load reads preferences from the given path, falling back to defaults if
// the file is missing or unreadable.
func Load(path string) Prefs {
	prefs := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	file, err := os.Open(resolved)
	if err != nil {
		return prefs // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Prefs{Theme: defaultTheme} // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	switch prefs.Panel = strings.ToLower(strings.TrimSpace(prefs.Panel)); prefs.Panel {
	case PanelOn, PanelOff:
	default:
		prefs.Panel = PanelDefault
	}

	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
