package overlay

import "unicode/utf8"

// EstimateWidth returns the render width for a line of charCount characters.
// The bottom line always reserves room for the cursor so the block does not
// change size when the cursor blinks.
func EstimateWidth(charCount int, isBottomLine bool) float64 {
	if charCount < 0 {
		charCount = 0
	}
	units := float64(charCount)
	if isBottomLine {
		units += cursorAllowance
	}
	if charCount < shortLineThreshold {
		units += shortLineAllowance
	}
	return units * CharWidth
}

// lineWidth measures text by rune count, before any cursor glyph is added.
func lineWidth(text string, isBottomLine bool) float64 {
	return EstimateWidth(utf8.RuneCountInString(text), isBottomLine)
}
