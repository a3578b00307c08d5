// Package ui hosts the transcript overlay in a terminal using Bubble Tea.
//
// # Architecture Overview
//
// The overlay core (package overlay) produces draw descriptors in scene
// units. This package plays the renderer: it drives the core from the Bubble
// Tea update loop and projects every frame onto a grid of terminal cells.
//
// # Package Structure
//
//   - app.go: Model, message handling, footer and help modal, Run
//   - canvas.go: scene-to-cell projection, opacity blending, text node cache
//   - keys.go: key bindings (bubbles/key) shared with the help view
//   - theme.go: Dracula and Slate palettes
//
// # Event Flow
//
//  1. tickMsg fires every poll interval and reads a state.Store snapshot
//  2. snapshotMsg with a new revision triggers a full layout (overlay.Update)
//  3. blink.TickMsg flips the cursor phase and triggers a full layout
//  4. while a frame reports Animating, one animFrameMsg per frame calls
//     overlay.Step; a relayout never schedules a second concurrent step
//  5. key presses resize the window (overlay.SetWindow), toggle the panel or
//     the cursor blink, and cycle themes; panel and theme persist to prefs
//
// # Projection
//
// One column is overlay.CharWidth wide and one row is overlay.LineHeight
// tall. Row 0 starts at overlay.YCoordStart and grows upward; column 0 is the
// panel's left edge, so the canvas is the same size with or without the
// panel. Colors are blended with go-colorful: the panel first, then each
// slot's background block, then its glyphs at the slot's text opacity.
//
// A slot's text is re-read only when its descriptor is ContentDirty, the
// same contract a retained-mode renderer has with its text nodes.
//
// # Key Bindings
//
//   - + / -: Show more or fewer lines
//   - p: Toggle background panel
//   - b: Toggle cursor blink
//   - T: Cycle theme
//   - h or ?: Help
//   - q, Esc or Ctrl+C: Exit
package ui
