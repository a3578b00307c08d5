// Package app is the composition root for subline.
//
// # Overview
//
// Run wires configuration, logging, the transcript source, the shared store
// and the Bubble Tea UI, then blocks until the user quits or the context is
// cancelled.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        config.toml + CLI overrides
//	       ├─────> prefs.Load()         theme and saved panel choice
//	       ├─────> showPanel()          --panel, then prefs, then transcription_type
//	       ├─────> logging.Setup()      log file, session id
//	       ├─────> newSource()          HTTP client or file source
//	       ├─────> refresh()            populate the store once
//	       ├─────> errgroup
//	       │        ├─ poll()          fixed cadence, exponential backoff
//	       │        └─ watchFile()     fsnotify, file source only
//	       └─────> ui.Run()             blocks
//
// # Polling Behavior
//
// The poller fetches the transcript every poll_ms (500ms by default). After
// consecutive failures the wait doubles per failure up to 30 seconds, and
// returns to the base interval on the first success. Failures are recorded in
// the store, so the UI keeps showing the last good transcript and flags the
// source as offline after two misses.
//
// For file sources a watcher triggers an immediate refresh on write, create,
// rename or remove of the transcript file. The poller keeps running as a
// fallback; if the watcher cannot start, polling alone is used.
//
// # Error Handling
//
// Fatal (returned from Run): invalid config, invalid CLI overrides, a log
// file that cannot be opened, an unparseable api_bind. Everything else is
// logged and retried.
//
// # Shutdown
//
// When the UI exits, the errgroup context is cancelled and Run waits for the
// poller and watcher. A signal-cancelled context is a clean exit.
package app
