package overlay

import "fmt"

// Identity ties a slot to the logical line it shows: how many sentences back
// from the newest one it sits (1 for the newest), and the line's index inside
// that sentence.
type Identity struct {
	Sentence int
	Line     int
}

// placeholderIdentity is shared by every padding slot so a slot that stays a
// placeholder never looks like it changed.
var placeholderIdentity = Identity{}

func (id Identity) String() string {
	return fmt.Sprintf("%d,%d", id.Sentence, id.Line)
}

// Slot is one visual line position produced by the layout engine.
type Slot struct {
	Identity Identity

	// Y is the resting position; StartY is where a scroll-in begins.
	Y      float64
	StartY float64

	Width  float64
	Height float64

	Content           string
	TextOpacity       float64
	BackgroundOpacity float64
	EnableAnimation   bool

	// Bottom marks the newest line of the newest sentence.
	Bottom      bool
	Placeholder bool
}

// LayoutInput configures a single layout pass.
type LayoutInput struct {
	// Window is the number of content slots that may be shown.
	Window int

	// CursorOn appends the cursor glyph to the bottom line.
	CursorOn bool

	// ShowPanel tightens sentence spacing and requests the background panel.
	ShowPanel bool

	// MaxSlots is the largest slot count emitted earlier in the session.
	MaxSlots int
}

// Layout is the result of a layout pass.
type Layout struct {
	Slots []Slot

	// MaxSlots is the historical maximum after this pass; it equals len(Slots).
	MaxSlots int

	Panel    PanelRect
	HasPanel bool
}

// LayoutLines assigns the most recent lines to slots, newest at ordinal 0,
// and pads the result so it is never shorter than any earlier result.
func LayoutLines(sentences [][]string, in LayoutInput) Layout {
	window := in.Window
	if window < 1 {
		window = DefaultWindow
	}
	window = min(window, MaxWindow)

	slots := make([]Slot, 0, max(window, in.MaxSlots))
	spacing := BlockSpacing
	if in.ShowPanel {
		spacing = BlockSpacing / 3
	}

	cursor := YCoordStart
fill:
	for i := len(sentences) - 1; i >= 0; i-- {
		lines := sentences[i]
		newestSentence := i == len(sentences)-1
		for j := len(lines) - 1; j >= 0; j-- {
			if len(slots) == window {
				break fill
			}

			bottom := newestSentence && len(slots) == 0
			y := cursor + LineHeight/2
			text := lines[j]
			width := lineWidth(text, bottom)
			if in.CursorOn && bottom {
				text += CursorGlyph
			}

			slots = append(slots, Slot{
				Identity:          Identity{Sentence: len(sentences) - i, Line: j},
				Y:                 y,
				StartY:            cursor,
				Width:             width,
				Height:            LineHeight,
				Content:           text,
				TextOpacity:       max(0, 1-textOpacityDecrement*float64(len(slots))),
				BackgroundOpacity: backgroundOpacity,
				EnableAnimation:   !bottom,
				Bottom:            bottom,
			})
			cursor = y + LineHeight/2
		}
		cursor += spacing
	}

	total := max(window, in.MaxSlots, len(slots))
	for len(slots) < total {
		slots = append(slots, placeholderSlot())
	}

	out := Layout{
		Slots:    slots,
		MaxSlots: total,
	}
	if in.ShowPanel {
		out.Panel = Panel(window)
		out.HasPanel = true
	}
	return out
}

func placeholderSlot() Slot {
	return Slot{
		Identity:    placeholderIdentity,
		Y:           YCoordStart,
		StartY:      YCoordStart,
		Placeholder: true,
	}
}
