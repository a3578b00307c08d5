package overlay

// CharsPerLine is the character budget upstream wrappers must respect when
// splitting sentences into lines.
const CharsPerLine = 37

// DefaultWindow is the number of visible line slots.
const DefaultWindow = 3

// MaxWindow is the largest window whose oldest line still has a visible
// text opacity after the per-ordinal fade.
const MaxWindow = 10

// Scene geometry, in world units.
const (
	MaxWidth     = 0.89
	CharWidth    = 0.0235
	YCoordStart  = -0.38
	ZCoord       = -1.3
	LineHeight   = 0.062
	BlockSpacing = 0.02
	FontSize     = 0.038

	// ScrollStep is how far a sliding slot moves per animation tick.
	ScrollStep = 0.001

	// Offset pads the text block inside its background block; the native
	// padding of the scene's UI blocks cannot express it.
	Offset      = 0.01
	OffsetWidth = Offset * 3
)

// Layout tuning.
const (
	// CursorGlyph is appended to the bottom line while the cursor is visible.
	CursorGlyph = "|"

	// cursorAllowance reserves room for the cursor on the bottom line whether
	// or not it is currently shown.
	cursorAllowance = 1.1

	// Lines shorter than shortLineThreshold get shortLineAllowance extra chars.
	shortLineThreshold = 10
	shortLineAllowance = 1

	textOpacityDecrement = 0.1
	backgroundOpacity    = 0.98
	panelOpacity         = 1
)
