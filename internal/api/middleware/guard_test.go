package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/session"
)

func runGuard(t *testing.T, path, token string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := SessionGuard()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, c, called
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	rec, _, called := runGuard(t, "/loads", "")

	if called {
		t.Fatal("next handler must not run")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("redirect to %q", loc)
	}
}

func TestGuardRedirectsAuthenticatedAwayFromLogin(t *testing.T) {
	rec, _, called := runGuard(t, "/login", "tok")

	if called {
		t.Fatal("next handler must not run")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("redirect to %q", loc)
	}
}

func TestGuardAllowsAnonymousLoginPage(t *testing.T) {
	rec, _, called := runGuard(t, "/login", "")

	if !called {
		t.Fatal("login page must be reachable without a session")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuardPassesTokenDownstream(t *testing.T) {
	_, c, called := runGuard(t, "/loads", "tok-abc")

	if !called {
		t.Fatal("next handler must run with a session present")
	}
	if got, _ := c.Get(TokenContextKey).(string); got != "tok-abc" {
		t.Fatalf("context token = %q", got)
	}
}

func TestGuardExemptPaths(t *testing.T) {
	for _, path := range []string{
		"/static/styles.css",
		"/healthz",
		"/healthz/ready",
		"/metrics",
		"/favicon.ico",
		"/logo.png",
	} {
		rec, _, called := runGuard(t, path, "")
		if !called {
			t.Fatalf("%s must bypass the guard", path)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
