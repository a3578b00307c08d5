package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme defines the colors the canvas and footer draw with.
type Theme struct {
	Name string

	// Canvas colors
	Backdrop string // behind everything, opacity 0
	Panel    string // background panel
	Block    string // per-line background block
	Text     string

	// Footer colors
	Muted   string
	Accent  string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for the footer and help modal.
func (t Theme) Styles() Styles {
	return Styles{
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Footer     lipgloss.Style
	MutedText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style
	Key        lipgloss.Style
	Modal      lipgloss.Style
}

// palette is the theme resolved to blendable colors.
type palette struct {
	backdrop colorful.Color
	panel    colorful.Color
	block    colorful.Color
	text     colorful.Color
}

func (t Theme) palette() palette {
	return palette{
		backdrop: parseHex(t.Backdrop),
		panel:    parseHex(t.Panel),
		block:    parseHex(t.Block),
		text:     parseHex(t.Text),
	}
}

func parseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// Theme definitions

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func draculaTheme() Theme {
	// Official Dracula palette: https://draculatheme.com/spec
	return Theme{
		Name: "Dracula",

		Backdrop: "#191A21", // BGDarker
		Panel:    "#282A36", // Background
		Block:    "#21222C", // BGDark
		Text:     "#F8F8F2", // Foreground

		Muted:   "#6272A4", // Comment
		Accent:  "#BD93F9", // Purple
		Warning: "#FFB86C", // Orange
		Danger:  "#FF5555", // Red
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Backdrop: "#020617", // slate-950
		Panel:    "#1e293b", // slate-800
		Block:    "#0f172a", // slate-900
		Text:     "#f1f5f9", // slate-100

		Muted:   "#94a3b8", // slate-400
		Accent:  "#38bdf8", // sky-400
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
	}
}
