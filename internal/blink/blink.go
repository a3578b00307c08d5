// Package blink drives the transcript cursor's on/off phase.
//
// The timer is a tagged tea.Tick chain: every accepted tick flips the phase
// and schedules the next one. Disabling the timer bumps the tag, so a tick
// that is already in flight is ignored when it arrives and the chain ends.
package blink

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the cursor blink period.
const DefaultInterval = 500 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is delivered when a blink period elapses.
type TickMsg struct {
	id  int
	tag int
}

// Timer toggles On at a fixed interval while enabled.
type Timer struct {
	id       int
	tag      int
	interval time.Duration
	enabled  bool
	on       bool
}

// New returns a disabled timer. A non-positive interval uses DefaultInterval.
func New(interval time.Duration) Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Timer{id: nextID(), interval: interval}
}

// On reports whether the cursor is currently visible.
func (t Timer) On() bool {
	return t.on
}

// Enabled reports whether the timer is running.
func (t Timer) Enabled() bool {
	return t.enabled
}

// Interval returns the blink period.
func (t Timer) Interval() time.Duration {
	return t.interval
}

// SetEnabled starts or stops blinking. Starting returns the command for the
// first tick; stopping forces the cursor off and returns nil. Enabling an
// already running timer is a no-op so the tick chain is never doubled.
func (t Timer) SetEnabled(enabled bool) (Timer, tea.Cmd) {
	if enabled == t.enabled {
		return t, nil
	}
	t.enabled = enabled
	t.tag++
	if !enabled {
		t.on = false
		return t, nil
	}
	return t, t.tick()
}

// Stop tears the timer down; pending ticks are dropped.
func (t Timer) Stop() Timer {
	t, _ = t.SetEnabled(false)
	return t
}

// Update handles TickMsg values addressed to this timer. The returned bool
// reports whether the phase changed.
func (t Timer) Update(msg tea.Msg) (Timer, tea.Cmd, bool) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.id != t.id || tick.tag != t.tag || !t.enabled {
		return t, nil, false
	}
	t.on = !t.on
	return t, t.tick(), true
}

func (t Timer) tick() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return TickMsg{id: id, tag: tag}
	})
}
