package audit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/48hauling/web-panel/internal/core/domain"
	"github.com/48hauling/web-panel/internal/devapi"
)

func TestRecorderShipsEntriesInBackground(t *testing.T) {
	var mu sync.Mutex
	var received []domain.AuditEntryInput

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hauling/audit" || r.Method != http.MethodPost {
			t.Fatalf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var entry domain.AuditEntryInput
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			t.Fatalf("decode entry: %v", err)
		}
		mu.Lock()
		received = append(received, entry)
		mu.Unlock()
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":1,"action":"update","entityType":"load"}}`))
	}))
	defer backend.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder := NewRecorder(2, zerolog.Nop())
	recorder.Start(ctx)

	client := devapi.New(backend.URL).ForToken("tok")
	req := httptest.NewRequest(http.MethodPost, "/loads/5/status", nil)
	req.Header.Set("User-Agent", "test-agent")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	recorder.Record(c, client, domain.AuditActionUpdate, domain.AuditEntityLoad, "5",
		map[string]any{"status": "completed"})

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(received)
		mu.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("entry never delivered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	entry := received[0]
	if entry.Action != domain.AuditActionUpdate || entry.EntityType != domain.AuditEntityLoad || entry.EntityID != "5" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.UserAgent != "test-agent" {
		t.Fatalf("user agent not enriched: %+v", entry)
	}
}

func TestRecorderDropsWhenQueueFull(t *testing.T) {
	// Never started: buffers fill and further entries must not block.
	recorder := NewRecorder(1, zerolog.Nop())

	client := devapi.New("http://example.invalid")
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			recorder.Record(c, client, domain.AuditActionView, domain.AuditEntitySystem, "x", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full queue")
	}
}
