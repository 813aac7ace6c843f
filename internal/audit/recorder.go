// Package audit forwards operator actions to the backend audit trail.
// Recording is strictly best-effort: entries are queued and shipped by
// background workers, and a failed or dropped write is logged, never surfaced
// to the operator or allowed to fail the action it describes.
package audit

import (
	"context"
	"hash/fnv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/48hauling/web-panel/internal/core/domain"
	"github.com/48hauling/web-panel/internal/devapi"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// pending is one queued audit write, bound to the client that carries the
// operator's session token.
type pending struct {
	client *devapi.Client
	entry  domain.AuditEntryInput
}

// Recorder ships audit entries through a fixed set of workers, sharded by
// entity so entries about the same entity arrive in order.
type Recorder struct {
	workers []chan pending
	log     zerolog.Logger
}

// NewRecorder builds a Recorder with numWorkers sharded workers. If
// numWorkers <= 0, defaultWorkers is used.
func NewRecorder(numWorkers int, log zerolog.Logger) *Recorder {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &Recorder{
		workers: make([]chan pending, numWorkers),
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan pending, channelBuffer)
	}
	return r
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled;
// entries still queued at that point are dropped.
func (r *Recorder) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// Record queues one entry, enriched with the request's address and user
// agent. Non-blocking: when the shard's buffer is full the entry is dropped
// and logged.
func (r *Recorder) Record(c echo.Context, client *devapi.Client, action, entityType, entityID string, changes map[string]any) {
	entry := domain.AuditEntryInput{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    changes,
		IPAddress:  c.RealIP(),
		UserAgent:  c.Request().UserAgent(),
	}

	ch := r.workers[r.shardIndex(entityType+"/"+entityID)]
	select {
	case ch <- pending{client: client, entry: entry}:
	default:
		r.log.Warn().
			Str("action", entry.Action).
			Str("entity_type", entry.EntityType).
			Msg("audit queue full, entry dropped")
	}
}

// Login records a successful panel login.
func (r *Recorder) Login(c echo.Context, client *devapi.Client) {
	r.Record(c, client, domain.AuditActionLogin, domain.AuditEntitySystem, "", nil)
}

// Logout records a panel logout.
func (r *Recorder) Logout(c echo.Context, client *devapi.Client) {
	r.Record(c, client, domain.AuditActionLogout, domain.AuditEntitySystem, "", nil)
}

// shardIndex maps an entity key deterministically to a worker index.
func (r *Recorder) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(r.workers)
}

func (r *Recorder) runWorker(ctx context.Context, id int, ch <-chan pending) {
	for {
		select {
		case <-ctx.Done():
			return
		case p, ok := <-ch:
			if !ok {
				return
			}
			resp := p.client.CreateAuditLog(ctx, p.entry)
			if !resp.Success {
				r.log.Warn().
					Str("action", p.entry.Action).
					Str("entity_type", p.entry.EntityType).
					Str("error", resp.ErrorMessage()).
					Int("worker_id", id).
					Msg("audit entry dropped")
			}
		}
	}
}
