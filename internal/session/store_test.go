package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// fakeRecords is an in-memory Records backend.
type fakeRecords struct {
	users map[string]domain.User
	ttls  map[string]time.Duration
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{
		users: map[string]domain.User{},
		ttls:  map[string]time.Duration{},
	}
}

func (f *fakeRecords) Save(_ context.Context, token string, user domain.User, ttl time.Duration) error {
	f.users[token] = user
	f.ttls[token] = ttl
	return nil
}

func (f *fakeRecords) Load(_ context.Context, token string) (domain.User, error) {
	user, ok := f.users[token]
	if !ok {
		return domain.User{}, domain.ErrSessionNotFound
	}
	return user, nil
}

func (f *fakeRecords) Delete(_ context.Context, token string) error {
	delete(f.users, token)
	delete(f.ttls, token)
	return nil
}

func testContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSetWritesBothStores(t *testing.T) {
	records := newFakeRecords()
	store := NewStore(records)
	c, rec := testContext(httptest.NewRequest(http.MethodPost, "/login", nil))

	user := domain.User{ID: "u1", Email: "ops@example.com", Role: domain.RoleAdmin}
	if err := store.Set(c, "tok-1", user); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got := records.users["tok-1"]; got.ID != "u1" {
		t.Fatalf("record not saved: %+v", got)
	}

	cookie := findCookie(rec, CookieName)
	if cookie == nil {
		t.Fatal("token cookie not written")
	}
	if cookie.Value != "tok-1" {
		t.Fatalf("cookie value = %q", cookie.Value)
	}
	if !cookie.HttpOnly || cookie.Path != "/" || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie attributes wrong: %+v", cookie)
	}
	if cookie.MaxAge != int(DefaultTTL/time.Second) {
		t.Fatalf("cookie max-age = %d", cookie.MaxAge)
	}
}

func TestClearRemovesBothStores(t *testing.T) {
	records := newFakeRecords()
	store := NewStore(records)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tok-2"})
	records.users["tok-2"] = domain.User{ID: "u2"}
	c, rec := testContext(req)

	store.Clear(c)

	if _, ok := records.users["tok-2"]; ok {
		t.Fatal("record not deleted")
	}
	cookie := findCookie(rec, CookieName)
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("cookie not expired: %+v", cookie)
	}
}

func TestUserResolvesSessionRecord(t *testing.T) {
	records := newFakeRecords()
	records.users["tok-3"] = domain.User{ID: "u3", Role: domain.RoleAdmin}
	store := NewStore(records)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tok-3"})
	c, _ := testContext(req)

	user, err := store.User(c)
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if user.ID != "u3" {
		t.Fatalf("wrong user: %+v", user)
	}
}

func TestUserWithoutToken(t *testing.T) {
	store := NewStore(newFakeRecords())
	c, _ := testContext(httptest.NewRequest(http.MethodGet, "/", nil))

	if _, err := store.User(c); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestTokenFromRequestPrefersCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")

	if got := TokenFromRequest(req); got != "cookie-token" {
		t.Fatalf("TokenFromRequest = %q", got)
	}
}

func TestTokenFromRequestBearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer header-token")

	if got := TokenFromRequest(req); got != "header-token" {
		t.Fatalf("TokenFromRequest = %q", got)
	}
}

func TestTokenFromRequestEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := TokenFromRequest(req); got != "" {
		t.Fatalf("TokenFromRequest = %q, want empty", got)
	}
}

func TestTTLCappedByTokenExpiry(t *testing.T) {
	records := newFakeRecords()
	store := NewStore(records)

	// Unsigned JWT with exp one hour out; the store parses without verifying.
	exp := time.Now().Add(time.Hour).Unix()
	token := unsignedJWT(t, exp)

	c, _ := testContext(httptest.NewRequest(http.MethodPost, "/login", nil))
	if err := store.Set(c, token, domain.User{ID: "u4"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	ttl := records.ttls[token]
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("ttl not capped at token expiry: %v", ttl)
	}
}

// unsignedJWT builds a structurally valid JWT with the given expiry and no
// signature, enough for the store's unverified parse.
func unsignedJWT(t *testing.T, exp int64) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]any{"exp": exp})
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + "."
}

func TestTTLDefaultForOpaqueToken(t *testing.T) {
	records := newFakeRecords()
	store := NewStore(records)

	c, _ := testContext(httptest.NewRequest(http.MethodPost, "/login", nil))
	if err := store.Set(c, "opaque-token", domain.User{ID: "u5"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if ttl := records.ttls["opaque-token"]; ttl != DefaultTTL {
		t.Fatalf("ttl = %v, want default", ttl)
	}
}
