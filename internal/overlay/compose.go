package overlay

// GlyphAtlas names the font description and texture the renderer draws text
// with. The overlay only passes it through.
type GlyphAtlas struct {
	FontFamily  string
	FontTexture string
}

// Input is everything a layout depends on.
type Input struct {
	Sentences [][]string

	// CursorOn is the current blink phase, not the blink-enabled flag.
	CursorOn  bool
	ShowPanel bool
	Window    int
	Atlas     GlyphAtlas
}

// DescriptorKind distinguishes text slots from the panel.
type DescriptorKind int

const (
	KindSlot DescriptorKind = iota
	KindPanel
)

func (k DescriptorKind) String() string {
	switch k {
	case KindSlot:
		return "slot"
	case KindPanel:
		return "panel"
	default:
		return "unknown"
	}
}

// Rect is a filled rectangle centred on Position.
type Rect struct {
	Position Vec3
	Width    float64
	Height   float64
	Opacity  float64
}

// TextRun is a left-aligned run of glyphs inside a block centred on Position.
type TextRun struct {
	Position Vec3
	Width    float64
	Height   float64
	FontSize float64
	Opacity  float64
	Content  string
	Atlas    GlyphAtlas
}

// Descriptor is one element the renderer draws. Slots use Background and
// Text; the panel uses Background only.
type Descriptor struct {
	Kind       DescriptorKind
	Ordinal    int
	Identity   Identity
	Background Rect
	Text       TextRun

	// ContentDirty asks the renderer to re-apply Text.Content; the content of
	// a reused text node is not refreshed by geometry changes alone.
	ContentDirty bool
}

// Frame is the full draw list for one update.
type Frame struct {
	Descriptors []Descriptor

	// Slots is the number of slot descriptors, placeholders included.
	Slots int

	// Animating is true while a slot is still scrolling; the host should
	// schedule exactly one Step per animating frame.
	Animating bool
}

// State carries everything that must survive between updates.
type State struct {
	input     Input
	layout    Layout
	animation Animation
	maxSlots  int
}

// NewState returns the initial state. step is the per-tick scroll distance;
// zero uses ScrollStep.
func NewState(step float64) State {
	return State{animation: NewAnimation(step)}
}

// MaxSlots returns the largest slot count emitted so far in the session.
func (s State) MaxSlots() int {
	return s.maxSlots
}

// Update lays out in, reconciles the animation with the new slots and
// returns the next state and draw list.
func Update(prev State, in Input) (State, Frame) {
	layout := LayoutLines(in.Sentences, LayoutInput{
		Window:    in.Window,
		CursorOn:  in.CursorOn,
		ShowPanel: in.ShowPanel,
		MaxSlots:  prev.maxSlots,
	})
	next := State{
		input:     in,
		layout:    layout,
		animation: prev.animation.Apply(layout.Slots),
		maxSlots:  layout.MaxSlots,
	}
	return next, next.frame()
}

// Step advances the scroll animation by one tick without re-running layout.
func Step(prev State) (State, Frame) {
	next := prev
	next.animation = prev.animation.Tick()
	return next, next.frame()
}

// SetWindow re-runs layout with a different window size. The emitted slot
// count does not shrink when the window does.
func SetWindow(prev State, window int) (State, Frame) {
	in := prev.input
	in.Window = window
	return Update(prev, in)
}

func (s State) frame() Frame {
	descriptors := make([]Descriptor, 0, len(s.layout.Slots)+1)
	for i, slot := range s.layout.Slots {
		descriptors = append(descriptors, slotDescriptor(i, slot, s.animation.Y(i), s.animation.Dirty(i), s.input.Atlas))
	}
	if s.layout.HasPanel {
		p := s.layout.Panel
		descriptors = append(descriptors, Descriptor{
			Kind:    KindPanel,
			Ordinal: len(s.layout.Slots),
			Background: Rect{
				Position: p.Position,
				Width:    p.Width,
				Height:   p.Height,
				Opacity:  p.Opacity,
			},
		})
	}
	return Frame{
		Descriptors: descriptors,
		Slots:       len(s.layout.Slots),
		Animating:   s.animation.Animating(),
	}
}

// slotDescriptor places a slot horizontally. Blocks are centred on their
// position, so x is shifted by half the width to keep left edges aligned.
func slotDescriptor(ordinal int, slot Slot, y float64, dirty bool, atlas GlyphAtlas) Descriptor {
	x := slot.Width/2 - MaxWidth/2 + OffsetWidth
	bgWidth := slot.Width + OffsetWidth
	if slot.Placeholder {
		bgWidth = 0
	}
	return Descriptor{
		Kind:     KindSlot,
		Ordinal:  ordinal,
		Identity: slot.Identity,
		Background: Rect{
			Position: Vec3{X: x - OffsetWidth, Y: y, Z: ZCoord},
			Width:    bgWidth,
			Height:   slot.Height,
			Opacity:  slot.BackgroundOpacity,
		},
		Text: TextRun{
			Position: Vec3{X: x, Y: y + Offset, Z: ZCoord},
			Width:    slot.Width,
			Height:   slot.Height,
			FontSize: FontSize,
			Opacity:  slot.TextOpacity,
			Content:  slot.Content,
			Atlas:    atlas,
		},
		ContentDirty: dirty,
	}
}
