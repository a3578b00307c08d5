package overlay

// Vec3 is a position in scene space.
type Vec3 struct {
	X, Y, Z float64
}

// PanelRect is the static background behind the visible window.
type PanelRect struct {
	Position Vec3
	Width    float64
	Height   float64
	Opacity  float64
}

// Panel sizes the background panel so it covers window lines plus spacing.
// The result depends only on the window size.
func Panel(window int) PanelRect {
	if window < 1 {
		window = DefaultWindow
	}
	height := LineHeight*float64(window) + 2*BlockSpacing + 2*Offset
	width := MaxWidth*(float64(CharsPerLine+2)/CharsPerLine) + 2*OffsetWidth
	return PanelRect{
		Position: Vec3{
			X: -Offset + OffsetWidth,
			Y: YCoordStart + height/2 - 2*Offset,
			Z: ZCoord,
		},
		Width:   width,
		Height:  height,
		Opacity: panelOpacity,
	}
}
