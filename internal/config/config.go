package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/subline/internal/overlay"
)

// Source kinds.
const (
	SourceHTTP = "http"
	SourceFile = "file"
)

// Transcription types.
const (
	TypeLines               = "lines"
	TypeLinesWithBackground = "lines_with_background"
)

// Config captures everything subline reads from config.toml.
type Config struct {
	Source            string
	APIBind           string
	TranscriptPath    string
	TranscriptionType string
	BlinkCursor       bool
	CursorBlink       time.Duration
	WindowLines       int
	PollInterval      time.Duration
	LogPath           string
	LogLevel          string
	FontFamily        string
	FontTexture       string
}

const (
	defaultConfigPath     = "~/.config/subline/config.toml"
	defaultAPIBind        = "127.0.0.1:8000"
	defaultTranscriptPath = "~/.local/share/subline/transcript.txt"
	defaultLogPath        = "~/.local/share/subline/subline.log"
	defaultLogLevel       = "info"
	defaultWindowLines    = 3
	defaultCursorBlink    = 500 * time.Millisecond
	defaultPollInterval   = 500 * time.Millisecond
	defaultFontFamily     = "assets/RobotoMono-Regular-msdf.json"
	defaultFontTexture    = "assets/RobotoMono-Regular.png"
	maxWindowLines        = overlay.MaxWindow
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Source:            SourceHTTP,
		APIBind:           defaultAPIBind,
		TranscriptPath:    mustExpand(defaultTranscriptPath),
		TranscriptionType: TypeLines,
		BlinkCursor:       true,
		CursorBlink:       defaultCursorBlink,
		WindowLines:       defaultWindowLines,
		PollInterval:      defaultPollInterval,
		LogPath:           mustExpand(defaultLogPath),
		LogLevel:          defaultLogLevel,
		FontFamily:        defaultFontFamily,
		FontTexture:       defaultFontTexture,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Source            string `toml:"source"`
		APIBind           string `toml:"api_bind"`
		TranscriptPath    string `toml:"transcript_path"`
		TranscriptionType string `toml:"transcription_type"`
		BlinkCursor       *bool  `toml:"blink_cursor"`
		CursorBlinkMS     int    `toml:"cursor_blink_ms"`
		WindowLines       int    `toml:"window_lines"`
		PollMS            int    `toml:"poll_ms"`
		LogPath           string `toml:"log_path"`
		LogLevel          string `toml:"log_level"`
		FontFamily        string `toml:"font_family"`
		FontTexture       string `toml:"font_texture"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.ToLower(strings.TrimSpace(raw.Source)); v != "" {
		cfg.Source = v
	}
	if v := strings.TrimSpace(raw.APIBind); v != "" {
		cfg.APIBind = v
	}
	if v := strings.TrimSpace(raw.TranscriptPath); v != "" {
		cfg.TranscriptPath = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.TranscriptionType)); v != "" {
		cfg.TranscriptionType = v
	}
	if raw.BlinkCursor != nil {
		cfg.BlinkCursor = *raw.BlinkCursor
	}
	if raw.CursorBlinkMS > 0 {
		cfg.CursorBlink = time.Duration(raw.CursorBlinkMS) * time.Millisecond
	}
	if raw.WindowLines > 0 {
		cfg.WindowLines = raw.WindowLines
	}
	if raw.PollMS > 0 {
		cfg.PollInterval = time.Duration(raw.PollMS) * time.Millisecond
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(raw.FontFamily); v != "" {
		cfg.FontFamily = v
	}
	if v := strings.TrimSpace(raw.FontTexture); v != "" {
		cfg.FontTexture = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot work with.
func (c Config) Validate() error {
	switch c.Source {
	case SourceHTTP, SourceFile:
	default:
		return fmt.Errorf("invalid source %q (want %q or %q)", c.Source, SourceHTTP, SourceFile)
	}
	switch c.TranscriptionType {
	case TypeLines, TypeLinesWithBackground:
	default:
		return fmt.Errorf("invalid transcription_type %q (want %q or %q)", c.TranscriptionType, TypeLines, TypeLinesWithBackground)
	}
	if c.WindowLines < 1 || c.WindowLines > maxWindowLines {
		return fmt.Errorf("window_lines %d out of range 1-%d", c.WindowLines, maxWindowLines)
	}
	return nil
}

// ShowPanel reports whether the background panel is requested.
func (c Config) ShowPanel() bool {
	return c.TranscriptionType == TypeLinesWithBackground
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
