package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/48hauling/web-panel/internal/audit"
	"github.com/48hauling/web-panel/internal/core/domain"
	"github.com/48hauling/web-panel/internal/devapi"
	"github.com/48hauling/web-panel/internal/session"
)

// nameRenderer renders just the template name, enough to assert which page a
// handler picked without parsing the real templates.
type nameRenderer struct{}

func (nameRenderer) Render(w io.Writer, name string, _ any, _ echo.Context) error {
	_, err := fmt.Fprintf(w, "page:%s", name)
	return err
}

type memRecords struct {
	users map[string]domain.User
}

func (m *memRecords) Save(_ context.Context, token string, user domain.User, _ time.Duration) error {
	m.users[token] = user
	return nil
}

func (m *memRecords) Load(_ context.Context, token string) (domain.User, error) {
	user, ok := m.users[token]
	if !ok {
		return domain.User{}, domain.ErrSessionNotFound
	}
	return user, nil
}

func (m *memRecords) Delete(_ context.Context, token string) error {
	delete(m.users, token)
	return nil
}

// stubBackend answers /auth/login with the given role and accepts audit
// writes, mirroring the backend surface the login flow touches.
func stubBackend(t *testing.T, role string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			fmt.Fprintf(w, `{"success":true,"data":{"token":"tok-login","user":{"id":"u1","email":"ops@example.com","role":%q}}}`, role)
		case "/hauling/audit":
			fmt.Fprint(w, `{"success":true,"data":{"id":1,"action":"login","entityType":"system"}}`)
		default:
			t.Fatalf("unexpected backend call %s %s", r.Method, r.URL.Path)
		}
	}))
}

func newAuthEnv(t *testing.T, backendURL string) (*AuthHandler, *echo.Echo, *memRecords) {
	t.Helper()
	e := echo.New()
	e.Renderer = nameRenderer{}
	e.Validator = NewValidator()

	records := &memRecords{users: map[string]domain.User{}}
	base := Base{
		API:      devapi.New(backendURL),
		Sessions: session.NewStore(records, session.WithSecureCookies(false)),
		Audit:    audit.NewRecorder(1, zerolog.Nop()),
		Log:      zerolog.Nop(),
	}
	return NewAuthHandler(base, nil), e, records
}

// blockedLimiter denies every attempt.
type blockedLimiter struct{}

func (blockedLimiter) Allow(context.Context, string) (bool, error) { return false, nil }
func (blockedLimiter) RecordFailure(context.Context, string) error { return nil }
func (blockedLimiter) Reset(context.Context, string) error         { return nil }

func loginRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestLoginSuccessSetsSessionAndRedirects(t *testing.T) {
	backend := stubBackend(t, domain.RoleAdmin)
	defer backend.Close()
	h, e, records := newAuthEnv(t, backend.URL)

	rec := httptest.NewRecorder()
	c := e.NewContext(loginRequest(url.Values{
		"email":    {"ops@example.com"},
		"password": {"secret"},
	}), rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("redirect to %q", loc)
	}
	if user, ok := records.users["tok-login"]; !ok || user.ID != "u1" {
		t.Fatalf("session record not written: %+v", records.users)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			cookie = ck
		}
	}
	if cookie == nil || cookie.Value != "tok-login" {
		t.Fatalf("token cookie not written: %+v", cookie)
	}
}

func TestLoginRejectsNonAdmin(t *testing.T) {
	backend := stubBackend(t, domain.RoleDriver)
	defer backend.Close()
	h, e, records := newAuthEnv(t, backend.URL)

	rec := httptest.NewRecorder()
	c := e.NewContext(loginRequest(url.Values{
		"email":    {"driver@example.com"},
		"password": {"secret"},
	}), rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "page:login" {
		t.Fatalf("expected login page re-render, got %q", body)
	}
	if len(records.users) != 0 {
		t.Fatalf("no session may survive a rejected login: %+v", records.users)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("no cookie may be written on a rejected login")
	}
}

func TestLoginValidatesForm(t *testing.T) {
	backend := stubBackend(t, domain.RoleAdmin)
	defer backend.Close()
	h, e, _ := newAuthEnv(t, backend.URL)

	rec := httptest.NewRecorder()
	c := e.NewContext(loginRequest(url.Values{
		"email": {"not-an-email"},
	}), rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLoginThrottled(t *testing.T) {
	backend := stubBackend(t, domain.RoleAdmin)
	defer backend.Close()
	h, e, records := newAuthEnv(t, backend.URL)
	h.limiter = blockedLimiter{}

	rec := httptest.NewRecorder()
	c := e.NewContext(loginRequest(url.Values{
		"email":    {"ops@example.com"},
		"password": {"secret"},
	}), rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if len(records.users) != 0 {
		t.Fatal("no session may be created while throttled")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"data":{"id":1}}`)
	}))
	defer backend.Close()
	h, e, records := newAuthEnv(t, backend.URL)
	records.users["tok-out"] = domain.User{ID: "u1", Role: domain.RoleAdmin}

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-out"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("redirect to %q", loc)
	}
	if _, ok := records.users["tok-out"]; ok {
		t.Fatal("session record not deleted")
	}
}
