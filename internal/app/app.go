package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/five82/subline/internal/config"
	"github.com/five82/subline/internal/logging"
	"github.com/five82/subline/internal/overlay"
	"github.com/five82/subline/internal/prefs"
	"github.com/five82/subline/internal/state"
	"github.com/five82/subline/internal/transcript"
	"github.com/five82/subline/internal/ui"
	"github.com/five82/subline/internal/watch"
)

// transcriptTail bounds how many sentences are fetched. It comfortably covers
// the largest window even when sentences are a single line each.
const transcriptTail = 32

// Options configure the subline application. Zero values defer to config.toml.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/subline/prefs.toml
	PollEvery  time.Duration // zero uses poll_ms
	File       string        // non-empty forces the file source at this path
	Panel      string        // "", "on" or "off"
}

// Run boots the overlay until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)
	userPrefs := prefs.Load(opts.PrefsPath)
	panel, err := showPanel(cfg, userPrefs, opts.Panel)
	if err != nil {
		return err
	}

	base, closer, err := logging.Setup(logging.Options{Path: cfg.LogPath, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()
	log := logging.Named(base, "app")
	log.WithField("source", cfg.Source).Info("starting")

	src, err := newSource(cfg)
	if err != nil {
		return fmt.Errorf("init transcript source: %w", err)
	}

	store := &state.Store{}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	// Populate the store before the UI starts
	refresh(gctx, store, src, logging.Named(base, "poller"))

	g.Go(func() error {
		return poll(gctx, store, src, cfg.PollInterval, logging.Named(base, "poller"))
	})
	if cfg.Source == config.SourceFile {
		g.Go(func() error {
			return watchFile(gctx, cfg.TranscriptPath, store, src, logging.Named(base, "watch"))
		})
	}

	uiErr := ui.Run(ui.Options{
		Store:         store,
		PollTick:      cfg.PollInterval,
		Window:        cfg.WindowLines,
		ShowPanel:     panel,
		BlinkInterval: cfg.CursorBlink,
		Atlas:         overlay.GlyphAtlas{FontFamily: cfg.FontFamily, FontTexture: cfg.FontTexture},
		Prefs:         userPrefs,
		PrefsPath:     opts.PrefsPath,
		Logger:        base,
	}, tea.WithContext(runCtx))

	cancel()
	waitErr := g.Wait()
	log.Info("stopped")

	if ctx.Err() != nil {
		// Interrupted by a signal; the UI error only reports the kill.
		return nil
	}
	if uiErr != nil {
		return fmt.Errorf("run ui: %w", uiErr)
	}
	return waitErr
}

func applyOverrides(cfg *config.Config, opts Options) {
	if path := strings.TrimSpace(opts.File); path != "" {
		cfg.Source = config.SourceFile
		cfg.TranscriptPath = path
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = opts.PollEvery
	}
}

// showPanel resolves the initial panel state: the --panel flag wins over the
// saved preference, which wins over transcription_type. The flag is never
// written back to prefs.
func showPanel(cfg config.Config, p prefs.Prefs, override string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(override)) {
	case "":
		return p.ShowPanel(cfg.ShowPanel()), nil
	case prefs.PanelOn:
		return true, nil
	case prefs.PanelOff:
		return false, nil
	default:
		return false, fmt.Errorf("invalid panel %q (want %q or %q)", override, prefs.PanelOn, prefs.PanelOff)
	}
}

func newSource(cfg config.Config) (transcript.Fetcher, error) {
	switch cfg.Source {
	case config.SourceFile:
		return transcript.NewFileSource(cfg.TranscriptPath, transcriptTail, cfg.BlinkCursor), nil
	default:
		return transcript.NewClient(cfg.APIBind, transcriptTail)
	}
}

// watchFile refreshes the store as soon as the transcript file changes. The
// poller keeps running underneath, so a watcher that cannot start is logged
// and otherwise ignored.
func watchFile(ctx context.Context, path string, store *state.Store, src transcript.Fetcher, log *logging.Entry) error {
	err := watch.File(ctx, path, watch.DefaultDebounce,
		func() { refresh(ctx, store, src, log) },
		func(err error) { log.Warnf("watch %s: %v", path, err) },
	)
	if err != nil {
		log.Warnf("file watcher disabled, falling back to polling: %v", err)
	}
	return nil
}
