// Package transcript provides the sources subline reads sentences from.
//
// # Overview
//
// The overlay never produces text itself. A transcription process publishes
// chronological sentences, each already wrapped into lines of at most
// overlay.CharsPerLine characters, and this package fetches them.
//
// # Sources
//
//   - Client: polls a transcription server at GET /api/transcript
//   - FileSource: reads a transcript file kept up to date on disk
//
// Both implement Fetcher, which is all the poller depends on.
//
// # HTTP API
//
//	GET /api/transcript?tail=8
//
//	{"sentences": [["hello there,", "how are you"], ["fine"]], "blinkCursor": true}
//
// The tail parameter is a hint; the client trims the response itself when a
// server ignores it.
//
// # File formats
//
// Plain text, blank rows separate sentences:
//
//	hello there,
//	how are you
//
//	fine
//
// YAML (.yaml or .yml):
//
//	sentences:
//	  - ["hello there,", "how are you"]
//	  - ["fine"]
//	blinkCursor: true
//
// A missing file is an empty transcript, not an error, so the overlay can
// start before the transcriber does.
package transcript
