package app

import (
	"context"
	"time"

	"github.com/five82/subline/internal/logging"
	"github.com/five82/subline/internal/state"
	"github.com/five82/subline/internal/transcript"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	maxBackoff          = 30 * time.Second
)

// calculateBackoff doubles base once per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

// poll refreshes the store until ctx is cancelled, slowing down while the
// source keeps failing.
func poll(ctx context.Context, store *state.Store, src transcript.Fetcher, interval time.Duration, log *logging.Entry) error {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		wait := interval
		if failures := refresh(ctx, store, src, log); failures > 0 {
			wait = calculateBackoff(failures, interval)
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}

// refresh performs one fetch and returns the consecutive failure count.
func refresh(ctx context.Context, store *state.Store, src transcript.Fetcher, log *logging.Entry) int {
	t, err := src.FetchTranscript(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return 0
		}
		store.Update(nil, err)
		failures := store.Snapshot().ConsecutiveFailures
		log.WithField("failures", failures).Warnf("transcript poll failed: %v", err)
		return failures
	}
	store.Update(&t, nil)
	return 0
}
