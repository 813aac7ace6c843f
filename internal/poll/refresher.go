// Package poll implements fixed-interval background refreshing, the panel's
// substitute for server-push updates: the backend exposes no streaming
// transport, so near-real-time views re-fetch on a timer.
package poll

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/48hauling/web-panel/internal/api/metrics"
)

// DefaultInterval matches the refresh cadence of the live-status views.
const DefaultInterval = 30 * time.Second

// FetchFunc produces one snapshot. A non-nil error discards the cycle and
// keeps the previous snapshot.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Refresher re-fetches a snapshot on a fixed, non-overlapping interval.
// Cycles are ticker-driven and sequential, so a slow fetch never overlaps the
// next one. A fetch that completes after Stop is discarded: stale results
// never mutate the published snapshot.
type Refresher[T any] struct {
	name     string
	interval time.Duration
	fetch    FetchFunc[T]
	log      zerolog.Logger

	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.RWMutex
	stopped  bool
	snapshot T
	updated  time.Time
}

// NewRefresher builds a Refresher. If interval <= 0, DefaultInterval is used.
func NewRefresher[T any](name string, interval time.Duration, fetch FetchFunc[T], log zerolog.Logger) *Refresher[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Refresher[T]{
		name:     name,
		interval: interval,
		fetch:    fetch,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Start launches the refresh loop. The loop stops when ctx is cancelled or
// Stop is called.
func (r *Refresher[T]) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	go r.run(ctx)
}

// Stop terminates the loop and freezes the snapshot. Any in-flight fetch is
// left to finish; its result is discarded.
func (r *Refresher[T]) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
	<-r.done
}

// Snapshot returns the latest published snapshot and its refresh time. The
// zero time means no cycle has succeeded yet.
func (r *Refresher[T]) Snapshot() (T, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot, r.updated
}

func (r *Refresher[T]) run(ctx context.Context) {
	defer close(r.done)

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher[T]) refresh(ctx context.Context) {
	snapshot, err := r.fetch(ctx)
	if err != nil {
		metrics.PollRefreshTotal.WithLabelValues(r.name, "error").Inc()
		r.log.Warn().Err(err).Str("collector", r.name).Msg("poll refresh failed")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || ctx.Err() != nil {
		metrics.PollRefreshTotal.WithLabelValues(r.name, "stale").Inc()
		return
	}
	r.snapshot = snapshot
	r.updated = time.Now()
	metrics.PollRefreshTotal.WithLabelValues(r.name, "ok").Inc()
}
