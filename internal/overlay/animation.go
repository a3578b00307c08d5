package overlay

// motion is the scroll state of one ordinal slot. Slots are reused across
// layouts by position, so identity is what tells a slot that it now shows a
// different line.
type motion struct {
	identity Identity
	content  string
	y        float64
	target   float64
	dirty    bool
}

// Animation tracks scroll positions for every ordinal slot.
type Animation struct {
	slots []motion
	step  float64
}

// NewAnimation returns an empty animation that moves step units per tick.
// A non-positive step falls back to ScrollStep.
func NewAnimation(step float64) Animation {
	if step <= 0 {
		step = ScrollStep
	}
	return Animation{step: step}
}

// Apply reconciles the animation with a fresh layout. Identity changes are
// handled here, before any tick, so a recycled slot never steps from the
// position of the line it used to hold.
func (a Animation) Apply(slots []Slot) Animation {
	next := Animation{
		slots: make([]motion, len(slots)),
		step:  a.step,
	}
	for i, slot := range slots {
		if i >= len(a.slots) {
			// New slots start at rest.
			next.slots[i] = motion{
				identity: slot.Identity,
				content:  slot.Content,
				y:        slot.Y,
				target:   slot.Y,
				dirty:    true,
			}
			continue
		}

		prev := a.slots[i]
		m := motion{
			identity: slot.Identity,
			content:  slot.Content,
			y:        prev.y,
			target:   slot.Y,
			dirty:    prev.identity != slot.Identity || prev.content != slot.Content,
		}
		switch {
		case !slot.EnableAnimation:
			m.y = slot.Y
		case prev.identity != slot.Identity:
			m.y = slot.StartY
		}
		next.slots[i] = m
	}
	return next
}

// Tick advances every sliding slot by one step, clamped at its target.
// Content is untouched, so dirty flags are cleared.
func (a Animation) Tick() Animation {
	step := a.step
	if step <= 0 {
		step = ScrollStep
	}
	next := Animation{
		slots: make([]motion, len(a.slots)),
		step:  step,
	}
	for i, m := range a.slots {
		if m.y < m.target {
			m.y = min(m.y+step, m.target)
		}
		m.dirty = false
		next.slots[i] = m
	}
	return next
}

// Animating reports whether any slot is still below its target.
func (a Animation) Animating() bool {
	for _, m := range a.slots {
		if m.y < m.target {
			return true
		}
	}
	return false
}

// Y returns the current position of ordinal slot i.
func (a Animation) Y(i int) float64 {
	if i < 0 || i >= len(a.slots) {
		return YCoordStart
	}
	return a.slots[i].y
}

// Dirty reports whether slot i needs its content re-applied.
func (a Animation) Dirty(i int) bool {
	if i < 0 || i >= len(a.slots) {
		return false
	}
	return a.slots[i].dirty
}
