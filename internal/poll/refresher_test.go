package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRefresherPublishesFirstSnapshotImmediately(t *testing.T) {
	r := NewRefresher("test", time.Hour, func(ctx context.Context) (int, error) {
		return 42, nil
	}, zerolog.Nop())

	r.Start(context.Background())
	defer r.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for {
		snapshot, updated := r.Snapshot()
		if !updated.IsZero() {
			if snapshot != 42 {
				t.Fatalf("snapshot = %d", snapshot)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("first refresh never completed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRefresherKeepsSnapshotOnFetchError(t *testing.T) {
	var calls atomic.Int32
	r := NewRefresher("test", 10*time.Millisecond, func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 7, nil
		}
		return 0, errors.New("backend down")
	}, zerolog.Nop())

	r.Start(context.Background())
	defer r.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatal("refresher stopped ticking")
		}
		time.Sleep(5 * time.Millisecond)
	}

	snapshot, updated := r.Snapshot()
	if updated.IsZero() {
		t.Fatal("no snapshot published")
	}
	if snapshot != 7 {
		t.Fatalf("failed cycles must not clobber the snapshot, got %d", snapshot)
	}
}

func TestRefresherDiscardsFetchCompletingAfterStop(t *testing.T) {
	release := make(chan struct{})
	first := make(chan struct{})
	var calls atomic.Int32

	r := NewRefresher("test", time.Hour, func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			close(first)
			<-release
			return 99, nil
		}
		return 0, nil
	}, zerolog.Nop())

	r.Start(context.Background())
	<-first

	// Stop while the first fetch is still in flight, then let it finish.
	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()
	close(release)
	<-done

	snapshot, updated := r.Snapshot()
	if !updated.IsZero() || snapshot != 0 {
		t.Fatalf("stale fetch mutated the snapshot: %d at %v", snapshot, updated)
	}
}

func TestRefresherStopIsIdempotentAcrossContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRefresher("test", time.Hour, func(ctx context.Context) (int, error) {
		return 1, nil
	}, zerolog.Nop())

	r.Start(ctx)
	cancel()
	r.Stop() // must not hang after the context already stopped the loop
}
