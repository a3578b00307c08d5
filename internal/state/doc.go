// Package state provides thread-safe state shared by the poller and the UI.
//
// # Overview
//
// The poller (or file watcher) fetches the transcript in the background and
// writes it here; the bubbletea loop reads snapshots on its own tick and
// feeds them to the overlay.
//
//	Producer (poller/watcher):     Consumer (UI):
//	┌──────────────────────┐      ┌──────────────────────┐
//	│ FetchTranscript()    │      │                      │
//	│       ↓              │      │                      │
//	│ store.Update()       │─────→│ store.Snapshot()     │
//	│       ↓              │ (mu) │       ↓              │
//	│ repeat...            │      │ overlay.Update()     │
//	└──────────────────────┘      └──────────────────────┘
//
// # Update Semantics
//
//	// Success: replace the transcript, clear the error
//	store.Update(&t, nil)
//
//	// Failure: keep the old transcript, record the error
//	store.Update(nil, err)
//
// Revision increases only when the transcript content actually changes, so
// the UI can skip layout passes for polls that returned the same text.
//
// # Copy Semantics
//
// Update and Snapshot both deep-copy the sentences. The UI may hold on to a
// snapshot while the poller keeps writing.
//
// The zero Store is ready to use.
package state
