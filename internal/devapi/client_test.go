package devapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/48hauling/web-panel/internal/core/domain"
)

func TestRequestDecodesEnvelopeOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hauling/jobs" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":7,"pickupAddress":"A","deliveryAddress":"B","status":"pending"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp := c.GetJobs(context.Background())

	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != 7 {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestRequestSurfacesBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database exploded"}`))
	}))
	defer srv.Close()

	resp := New(srv.URL).GetJobs(context.Background())

	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Error != "database exploded" {
		t.Fatalf("expected backend message, got %q", resp.Error)
	}
}

func TestRequestFallsBackOnOpaqueErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	}))
	defer srv.Close()

	resp := New(srv.URL).GetJobs(context.Background())

	if resp.Success || resp.Error != "Request failed" {
		t.Fatalf("expected generic failure, got %+v", resp)
	}
}

func TestRequestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately unreachable

	resp := New(srv.URL).GetJobs(context.Background())

	if resp.Success {
		t.Fatal("expected failure")
	}
	if !strings.HasPrefix(resp.Error, "Network error: ") {
		t.Fatalf("expected network error message, got %q", resp.Error)
	}
}

func TestRequestMalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`this is not json`))
	}))
	defer srv.Close()

	resp := New(srv.URL).GetJobs(context.Background())

	if resp.Success || resp.Error != "Request failed" {
		t.Fatalf("expected generic failure, got %+v", resp)
	}
}

func TestTokenAttachedAndCleared(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("abc123")
	c.GetJobs(context.Background())
	if gotAuth != "Bearer abc123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}

	c.ClearToken()
	c.GetJobs(context.Background())
	if gotAuth != "" {
		t.Fatalf("expected no auth header after clear, got %q", gotAuth)
	}
}

func TestForTokenDoesNotMutateBase(t *testing.T) {
	c := New("http://example.invalid")
	derived := c.ForToken("operator-token")

	if derived.Token() != "operator-token" {
		t.Fatalf("derived token = %q", derived.Token())
	}
	if c.Token() != "" {
		t.Fatalf("base client token leaked: %q", c.Token())
	}
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"tok-1","user":{"id":"u1","role":"ADMIN","email":"a@b.c"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp := c.Login(context.Background(), "a@b.c", "pw")

	if !resp.Success {
		t.Fatalf("login failed: %q", resp.Error)
	}
	if c.Token() != "tok-1" {
		t.Fatalf("token not stored, got %q", c.Token())
	}
}

func TestLoginAdminRejectsNonAdminRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"tok-2","user":{"id":"u2","role":"DRIVER","email":"d@b.c"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp := c.LoginAdmin(context.Background(), "d@b.c", "pw")

	if resp.Success {
		t.Fatal("expected rejection for non-admin role")
	}
	if resp.Error != NotAuthorizedMessage {
		t.Fatalf("expected authorization message, got %q", resp.Error)
	}
	if c.Token() != "" {
		t.Fatalf("token must be cleared after rejection, got %q", c.Token())
	}
}

func TestLoginAdminAcceptsAdmin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"tok-3","user":{"id":"u3","role":"ADMIN","email":"a@b.c"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp := c.LoginAdmin(context.Background(), "a@b.c", "pw")

	if !resp.Success {
		t.Fatalf("expected success, got %q", resp.Error)
	}
	if c.Token() != "tok-3" {
		t.Fatalf("token not retained, got %q", c.Token())
	}
}

func TestDocumentURLIsPure(t *testing.T) {
	c := New("https://api.example.com/api/")
	got := c.DocumentURL("42")
	want := "https://api.example.com/api/hauling/documents/42"
	if got != want {
		t.Fatalf("DocumentURL = %q, want %q", got, want)
	}
}

func TestUploadDocumentSendsMultipartFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("jobId"); got != "9" {
			t.Fatalf("jobId = %q", got)
		}
		if got := r.FormValue("attachmentType"); got != "bol" {
			t.Fatalf("attachmentType = %q", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "bol.pdf" {
			t.Fatalf("filename = %q", hdr.Filename)
		}
		body, _ := io.ReadAll(f)
		if string(body) != "pdf-bytes" {
			t.Fatalf("file body = %q", body)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":1,"fileName":"bol.pdf"}}`))
	}))
	defer srv.Close()

	resp := New(srv.URL).UploadDocument(context.Background(),
		"bol.pdf", strings.NewReader("pdf-bytes"), "9", "bol")

	if !resp.Success {
		t.Fatalf("upload failed: %q", resp.Error)
	}
	if resp.Data.FileName != "bol.pdf" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestGetAuditLogsUnwrapsPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Fatalf("limit = %q", got)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"logs":[{"id":1,"action":"login","entityType":"system"}]}}`))
	}))
	defer srv.Close()

	resp := New(srv.URL).GetAuditLogs(context.Background(), domain.AuditQuery{Limit: 5})

	if !resp.Success {
		t.Fatalf("unexpected failure: %q", resp.Error)
	}
	if len(resp.Data) != 1 || resp.Data[0].Action != "login" {
		t.Fatalf("unexpected logs: %+v", resp.Data)
	}
}

func TestEndpointGroup(t *testing.T) {
	cases := map[string]string{
		"/hauling/jobs":                 "hauling/jobs",
		"/hauling/drivers/123":          "hauling/drivers",
		"/hauling/audit?limit=5":        "hauling/audit",
		"/auth/login":                   "auth/login",
		"/hauling/location/abc/history": "hauling/location",
	}
	for endpoint, want := range cases {
		if got := endpointGroup(endpoint); got != want {
			t.Fatalf("endpointGroup(%q) = %q, want %q", endpoint, got, want)
		}
	}
}
