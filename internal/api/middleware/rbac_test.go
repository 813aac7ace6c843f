package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
	"github.com/48hauling/web-panel/internal/session"
)

type staticRecords struct {
	users map[string]domain.User
}

func (s staticRecords) Save(context.Context, string, domain.User, time.Duration) error { return nil }

func (s staticRecords) Load(_ context.Context, token string) (domain.User, error) {
	user, ok := s.users[token]
	if !ok {
		return domain.User{}, domain.ErrSessionNotFound
	}
	return user, nil
}

func (s staticRecords) Delete(context.Context, string) error { return nil }

func runRequireAdmin(t *testing.T, store *session.Store, token string) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/database", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := RequireAdmin(store)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	return rec, called, handler(c)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	store := session.NewStore(staticRecords{users: map[string]domain.User{
		"tok": {ID: "u1", Role: domain.RoleAdmin},
	}})

	rec, called, err := runRequireAdmin(t, store, "tok")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdminForbidsNonAdmin(t *testing.T) {
	store := session.NewStore(staticRecords{users: map[string]domain.User{
		"tok": {ID: "u2", Role: domain.RoleDriver},
	}})

	_, called, err := runRequireAdmin(t, store, "tok")
	if called {
		t.Fatal("next handler must not run")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestRequireAdminForbidsMissingSession(t *testing.T) {
	store := session.NewStore(staticRecords{users: map[string]domain.User{}})

	_, called, err := runRequireAdmin(t, store, "")
	if called {
		t.Fatal("next handler must not run")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}
