package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/five82/subline/internal/overlay"
)

// Terminal projection of the scene: one column per overlay.CharWidth and one
// row per overlay.LineHeight. Row 0 is the bottom row and starts at
// overlay.YCoordStart; column 0 is the left edge of the panel.
const epsilon = 1e-9

type cell struct {
	glyph string // "" marks the right half of a wide rune
	fg    colorful.Color
	bg    colorful.Color
}

// Canvas is a painted grid of cells.
type Canvas struct {
	Cols int
	Rows int

	left   float64
	bottom float64
	cells  [][]cell // indexed [row from bottom][col]
}

// Paint projects a frame onto a fresh canvas sized for window. texts holds
// the resolved content of each descriptor (see textNodes).
func Paint(frame overlay.Frame, texts []string, window int, theme Theme) *Canvas {
	colors := theme.palette()
	panel := overlay.Panel(window)

	c := &Canvas{
		left:   panel.Position.X - panel.Width/2,
		bottom: overlay.YCoordStart,
	}
	c.Cols = int(math.Ceil(panel.Width/overlay.CharWidth - epsilon))
	c.Rows = c.span(panel.Position.Y+panel.Height/2, 0) + 1
	for _, d := range frame.Descriptors {
		if d.Kind == overlay.KindSlot && !isEmptySlot(d) {
			c.Rows = max(c.Rows, c.row(d.Background.Position.Y)+1)
		}
	}

	c.cells = make([][]cell, c.Rows)
	for r := range c.cells {
		c.cells[r] = make([]cell, c.Cols)
		for col := range c.cells[r] {
			c.cells[r][col] = cell{glyph: " ", fg: colors.text, bg: colors.backdrop}
		}
	}

	// The panel sits behind the slots even though it is emitted last.
	for _, d := range frame.Descriptors {
		if d.Kind == overlay.KindPanel {
			c.fillRect(d.Background, colors.panel)
		}
	}
	for i, d := range frame.Descriptors {
		if d.Kind != overlay.KindSlot || isEmptySlot(d) {
			continue
		}
		row := c.row(d.Background.Position.Y)
		c.fillRow(row, d.Background, colors.block)

		text := ""
		if i < len(texts) {
			text = texts[i]
		}
		c.writeText(row, d.Text, text, colors.text)
	}
	return c
}

func isEmptySlot(d overlay.Descriptor) bool {
	return d.Background.Width <= 0 && d.Text.Opacity <= 0
}

// row maps a block centre to the row containing it.
func (c *Canvas) row(y float64) int {
	return int(math.Floor((y-c.bottom)/overlay.LineHeight + epsilon))
}

// span maps a top edge to the last row it still covers, never below floor.
func (c *Canvas) span(top float64, floor int) int {
	return max(floor, int(math.Ceil((top-c.bottom)/overlay.LineHeight-epsilon))-1)
}

func (c *Canvas) col(x float64) int {
	return int(math.Floor((x-c.left)/overlay.CharWidth + epsilon))
}

func (c *Canvas) colEnd(x float64) int {
	return int(math.Ceil((x-c.left)/overlay.CharWidth-epsilon)) - 1
}

func (c *Canvas) fillRect(r overlay.Rect, color colorful.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	lo := max(0, c.row(r.Position.Y-r.Height/2))
	hi := min(c.Rows-1, c.span(r.Position.Y+r.Height/2, lo))
	for row := lo; row <= hi; row++ {
		c.fillRow(row, r, color)
	}
}

// fillRow blends color over one row between the rect's left and right edges.
func (c *Canvas) fillRow(row int, r overlay.Rect, color colorful.Color) {
	if row < 0 || row >= c.Rows || r.Width <= 0 {
		return
	}
	lo := max(0, c.col(r.Position.X-r.Width/2))
	hi := min(c.Cols-1, c.colEnd(r.Position.X+r.Width/2))
	for col := lo; col <= hi; col++ {
		cur := &c.cells[row][col]
		cur.bg = cur.bg.BlendRgb(color, clamp01(r.Opacity)).Clamped()
	}
}

// writeText lays text left-aligned from the run's left edge, clipping at the
// canvas edge. Wide runes take two columns.
func (c *Canvas) writeText(row int, run overlay.TextRun, text string, color colorful.Color) {
	if row < 0 || row >= c.Rows || text == "" {
		return
	}
	start := max(0, c.col(run.Position.X-run.Width/2))
	if start >= c.Cols {
		return
	}
	text = runewidth.Truncate(text, c.Cols-start, "")

	col := start
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		cur := &c.cells[row][col]
		cur.glyph = string(r)
		cur.fg = cur.bg.BlendRgb(color, clamp01(run.Opacity)).Clamped()
		for k := 1; k < w; k++ {
			c.cells[row][col+k].glyph = ""
		}
		col += w
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// PlainRow returns the glyphs of row i counted from the top, with trailing
// blanks trimmed.
func (c *Canvas) PlainRow(i int) string {
	row := c.Rows - 1 - i
	if row < 0 || row >= c.Rows {
		return ""
	}
	var b strings.Builder
	for _, cl := range c.cells[row] {
		b.WriteString(cl.glyph)
	}
	return strings.TrimRight(b.String(), " ")
}

// Render draws the canvas top row first, grouping runs of identical colors.
func (c *Canvas) Render() string {
	lines := make([]string, 0, c.Rows)
	for row := c.Rows - 1; row >= 0; row-- {
		var b strings.Builder
		var run strings.Builder
		var runFG, runBG colorful.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(runFG.Hex())).
				Background(lipgloss.Color(runBG.Hex()))
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for _, cl := range c.cells[row] {
			if cl.glyph == "" {
				continue
			}
			if run.Len() > 0 && (cl.fg != runFG || cl.bg != runBG) {
				flush()
			}
			runFG, runBG = cl.fg, cl.bg
			run.WriteString(cl.glyph)
		}
		flush()
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// textNodes mirrors the renderer's text objects: a node keeps showing its old
// content until its descriptor is marked dirty.
type textNodes struct {
	content []string
}

// apply returns the updated nodes and the content to draw per descriptor.
func (n textNodes) apply(descriptors []overlay.Descriptor) textNodes {
	next := textNodes{content: make([]string, len(descriptors))}
	for i, d := range descriptors {
		if d.Kind != overlay.KindSlot {
			continue
		}
		if d.ContentDirty || i >= len(n.content) {
			next.content[i] = d.Text.Content
			continue
		}
		next.content[i] = n.content[i]
	}
	return next
}
