// Package overlay lays out and animates the scrolling transcript window.
//
// # Overview
//
// The overlay turns an ever-growing list of sentences into a fixed set of
// draw descriptors: one per visual line slot, plus an optional background
// panel. The scene renderer that consumes the descriptors cannot add or
// remove elements once created, only mutate them, so the number of slot
// descriptors never shrinks during a session.
//
// # Components
//
//   - width.go: EstimateWidth maps a character count to a block width
//   - layout.go: LayoutLines walks sentences newest-first and fills slots
//   - animation.go: per-ordinal scroll positions and identity tracking
//   - panel.go: the static background panel
//   - compose.go: Update/Step, the explicit state machine the host drives
//
// # Data Flow
//
//	sentences ──> LayoutLines ──> []Slot ──> Animation.Apply ──> Frame
//	                  ▲                            │
//	            cursor phase                 Step (tick) ──> Frame
//
// # Driving the overlay
//
// The host calls Update whenever the sentences, cursor phase, panel style or
// window change. When the returned Frame reports Animating, the host
// schedules one Step; each Step frame again reports whether another is
// needed.
//
//	state := overlay.NewState(0)
//	state, frame := overlay.Update(state, overlay.Input{
//		Sentences: [][]string{{"hello"}},
//		Window:    overlay.DefaultWindow,
//	})
//	for frame.Animating {
//		state, frame = overlay.Step(state)
//	}
//
// # Slot identity
//
// Each content slot is keyed by (sentences back from newest, line index).
// Animation state belongs to the ordinal slot, not the identity: when the
// identity at an ordinal changes the slot restarts its scroll-in from one
// line below its resting place. The bottom slot never animates.
package overlay
