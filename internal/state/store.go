package state

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/five82/subline/internal/transcript"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Transcript          transcript.Transcript
	HasTranscript       bool
	Revision            uint64 // bumped whenever the transcript content changes
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the source has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored transcript. When err is non-nil the previous
// data is kept but the error is recorded for visibility.
func (s *Store) Update(t *transcript.Transcript, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if t != nil {
		next := t.Clone()
		if !s.snapshot.HasTranscript || !reflect.DeepEqual(s.snapshot.Transcript, next) {
			s.snapshot.Revision++
		}
		s.snapshot.Transcript = next
		s.snapshot.HasTranscript = true
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Transcript = s.snapshot.Transcript.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
