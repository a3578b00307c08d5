package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/subline/internal/blink"
	"github.com/five82/subline/internal/logging"
	"github.com/five82/subline/internal/overlay"
	"github.com/five82/subline/internal/prefs"
	"github.com/five82/subline/internal/state"
)

const (
	// animFrame paces scroll steps at roughly 60 frames per second.
	animFrame = time.Second / 60

	minWindow = 1
	maxWindow = overlay.MaxWindow
)

// Options configures the UI.
type Options struct {
	Store         *state.Store
	PollTick      time.Duration
	Window        int
	ShowPanel     bool // initial panel state, already resolved against prefs
	BlinkInterval time.Duration
	Atlas         overlay.GlyphAtlas
	Prefs         prefs.Prefs
	PrefsPath     string
	Logger        *logging.Entry
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	pollTick  time.Duration
	atlas     overlay.GlyphAtlas
	prefs     prefs.Prefs
	prefsPath string
	log       *logging.Entry

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Overlay state
	window      int
	showPanel   bool
	cursorMuted bool
	blink       blink.Timer
	overlay     overlay.State
	frame       overlay.Frame
	nodes       textNodes
	animating   bool

	// Data state
	snapshot    state.Snapshot
	revision    uint64
	loaded      bool
	sentences   [][]string
	sourceBlink bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = 500 * time.Millisecond
	}

	window := opts.Window
	if window < minWindow {
		window = overlay.DefaultWindow
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		store:     opts.Store,
		pollTick:  pollTick,
		atlas:     opts.Atlas,
		prefs:     opts.Prefs,
		prefsPath: prefsPath,
		log:       logging.Named(opts.Logger, "ui"),
		theme:     GetTheme(opts.Prefs.Theme),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		window:    min(window, maxWindow),
		showPanel: opts.ShowPanel,
		blink:     blink.New(opts.BlinkInterval),
		overlay:   overlay.NewState(overlay.ScrollStep),
	}
	m, _ = m.relayout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		return m.handleSnapshot(state.Snapshot(msg))

	case animFrameMsg:
		m.animating = false
		var frame overlay.Frame
		m.overlay, frame = overlay.Step(m.overlay)
		return m.present(frame)

	case blink.TickMsg:
		var cmd tea.Cmd
		var changed bool
		m.blink, cmd, changed = m.blink.Update(msg)
		if !changed {
			return m, nil
		}
		next, relayoutCmd := m.relayout()
		return next, batch(cmd, relayoutCmd)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	canvas := Paint(m.frame, m.nodes.content, m.window, m.theme).Render()
	footer := m.renderFooter()
	body := lipgloss.Place(
		m.width,
		max(0, m.height-lipgloss.Height(footer)),
		lipgloss.Center,
		lipgloss.Bottom,
		canvas,
	)
	return body + "\n" + footer
}

func (m Model) handleSnapshot(snap state.Snapshot) (tea.Model, tea.Cmd) {
	m.snapshot = snap
	if !snap.HasTranscript || (m.loaded && snap.Revision == m.revision) {
		return m, nil
	}
	m.loaded = true
	m.revision = snap.Revision
	m.sentences = snap.Transcript.Sentences
	m.sourceBlink = snap.Transcript.BlinkCursor
	m.log.WithField("revision", snap.Revision).Debugf("transcript changed: %d sentences, %d lines",
		len(m.sentences), snap.Transcript.LineCount())

	blinkCmd := m.syncBlink()
	next, cmd := m.relayout()
	return next, batch(blinkCmd, cmd)
}

func (m Model) blinkWanted() bool {
	return m.loaded && m.sourceBlink && !m.cursorMuted
}

// syncBlink starts or stops the blink timer to match blinkWanted.
func (m *Model) syncBlink() tea.Cmd {
	want := m.blinkWanted()
	if want != m.blink.Enabled() {
		m.log.Debugf("cursor blink %s (every %s)", onOff(want), m.blink.Interval())
	}
	var cmd tea.Cmd
	m.blink, cmd = m.blink.SetEnabled(want)
	return cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.blink = m.blink.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.TogglePanel):
		m.showPanel = !m.showPanel
		m.prefs = m.prefs.WithPanel(m.showPanel)
		m.savePrefs()
		return m.relayout()

	case key.Matches(msg, m.keys.ToggleBlink):
		m.cursorMuted = !m.cursorMuted
		blinkCmd := m.syncBlink()
		next, cmd := m.relayout()
		return next, batch(blinkCmd, cmd)

	case key.Matches(msg, m.keys.GrowWindow):
		return m.resizeWindow(m.window + 1)

	case key.Matches(msg, m.keys.ShrinkWindow):
		return m.resizeWindow(m.window - 1)
	}

	return m, nil
}

func (m Model) resizeWindow(window int) (Model, tea.Cmd) {
	window = max(minWindow, min(maxWindow, window))
	if window == m.window {
		return m, nil
	}
	m.window = window
	var frame overlay.Frame
	m.overlay, frame = overlay.SetWindow(m.overlay, window)
	return m.present(frame)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Warnf("save prefs: %v", err)
	}
}

// relayout runs a full layout pass with the current inputs.
func (m Model) relayout() (Model, tea.Cmd) {
	var frame overlay.Frame
	m.overlay, frame = overlay.Update(m.overlay, overlay.Input{
		Sentences: m.sentences,
		CursorOn:  m.blink.On(),
		ShowPanel: m.showPanel,
		Window:    m.window,
		Atlas:     m.atlas,
	})
	return m.present(frame)
}

// present stores frame and schedules the next animation step. At most one
// step is in flight at a time.
func (m Model) present(frame overlay.Frame) (Model, tea.Cmd) {
	m.frame = frame
	m.nodes = m.nodes.apply(frame.Descriptors)
	if frame.Animating && !m.animating {
		m.animating = true
		return m, animFrameCmd()
	}
	return m, nil
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var status string
	switch {
	case m.snapshot.IsOffline():
		status = styles.DangerText.Render(fmt.Sprintf("offline: %v", m.snapshot.LastError))
	case !m.loaded:
		status = styles.MutedText.Render("waiting for transcript")
	default:
		status = styles.MutedText.Render(fmt.Sprintf("%d lines  panel %s  blink %s",
			m.window, onOff(m.showPanel), onOff(m.blink.Enabled())))
	}
	return styles.Footer.Render(status + "  " + m.help.View(m.keys))
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for i, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(styles.Key.Width(10).Render(h.Key))
			b.WriteString(h.Desc)
			b.WriteString("\n")
		}
		if i < len(m.keys.FullHelp())-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		styles.Modal.Width(40).Render(b.String()),
	)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type animFrameMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// batch is tea.Batch that returns nil when there is nothing to run.
func batch(cmds ...tea.Cmd) tea.Cmd {
	valid := cmds[:0]
	for _, c := range cmds {
		if c != nil {
			valid = append(valid, c)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	default:
		return tea.Batch(valid...)
	}
}

func animFrameCmd() tea.Cmd {
	return tea.Tick(animFrame, func(time.Time) tea.Msg {
		return animFrameMsg{}
	})
}

// Run starts the Bubble Tea program and blocks until it exits or the
// program is killed.
func Run(opts Options, programOpts ...tea.ProgramOption) error {
	m := New(opts)
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return err
}
