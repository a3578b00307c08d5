// Package config loads subline's TOML configuration.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/subline/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	source = "http"                      # or "file"
//	api_bind = "127.0.0.1:8000"
//	transcript_path = "~/.local/share/subline/transcript.txt"
//	transcription_type = "lines"         # or "lines_with_background"
//	blink_cursor = true
//	cursor_blink_ms = 500
//	window_lines = 3
//	poll_ms = 500
//	log_path = "~/.local/share/subline/subline.log"
//	log_level = "info"
//	font_family = "assets/RobotoMono-Regular-msdf.json"
//	font_texture = "assets/RobotoMono-Regular.png"
//
// Every key is optional. Tilde expansion is applied to transcript_path and
// log_path. The font keys are opaque and only forwarded to the renderer.
//
// # Error Handling
//
// A missing file is not an error. Load fails on path expansion problems,
// unreadable files, TOML syntax errors, and values Validate rejects (unknown
// source or transcription type, window_lines outside 1-10).
package config
