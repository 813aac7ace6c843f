// Package session owns the dual persistence of an operator session: the
// request-visible token cookie read by the session guard, and the
// client-readable user record read by render code. Both are always written
// and cleared together, so the two consumers can never disagree about auth
// state.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// CookieName is the request-visible store: the cookie carrying the backend
// bearer token.
const CookieName = "devapi_token"

// DefaultTTL is the fixed expiry window of a session.
const DefaultTTL = 7 * 24 * time.Hour

// Records is the client-readable backend of the store.
type Records interface {
	Save(ctx context.Context, token string, user domain.User, ttl time.Duration) error
	Load(ctx context.Context, token string) (domain.User, error)
	Delete(ctx context.Context, token string) error
}

// Store writes and clears both session backends through single calls.
type Store struct {
	records Records
	ttl     time.Duration
	secure  bool
	log     zerolog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTTL overrides the session expiry window.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithSecureCookies toggles the Secure cookie flag. Disable only for local
// development over plain HTTP.
func WithSecureCookies(secure bool) StoreOption {
	return func(s *Store) { s.secure = secure }
}

// WithLogger attaches a structured logger.
func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *Store) { s.log = log }
}

// NewStore builds a Store over the given record backend.
func NewStore(records Records, opts ...StoreOption) *Store {
	s := &Store{
		records: records,
		ttl:     DefaultTTL,
		secure:  true,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set persists a session in both stores. The cookie is only written after the
// record save succeeds, so no reader can observe a half-written session.
func (s *Store) Set(c echo.Context, token string, user domain.User) error {
	ttl := s.ttlFor(token)
	if err := s.records.Save(c.Request().Context(), token, user, ttl); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	c.SetCookie(s.cookie(token, int(ttl/time.Second)))
	return nil
}

// Clear removes both stores together. A record-deletion failure is logged,
// not surfaced: the cookie is expired regardless, and the orphaned record
// ages out on its TTL.
func (s *Store) Clear(c echo.Context) {
	if token := TokenFromRequest(c.Request()); token != "" {
		if err := s.records.Delete(c.Request().Context(), token); err != nil {
			s.log.Warn().Err(err).Msg("delete session record")
		}
	}
	c.SetCookie(s.cookie("", -1))
}

// User resolves the operator behind the request's session token.
func (s *Store) User(c echo.Context) (domain.User, error) {
	token := TokenFromRequest(c.Request())
	if token == "" {
		return domain.User{}, domain.ErrSessionNotFound
	}
	user, err := s.records.Load(c.Request().Context(), token)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.User{}, err
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("session: %w", err)
	}
	return user, nil
}

// TokenFromRequest extracts the session token from the token cookie or the
// Authorization header, whichever is present. Presence only; validity is
// established lazily by the first authenticated backend call.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func (s *Store) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ttlFor caps the session lifetime at the token's own expiry when the backend
// token happens to be a parseable JWT. No signature verification takes place;
// the token stays an opaque credential that the backend validates on use.
func (s *Store) ttlFor(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return s.ttl
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s.ttl
	}
	if d := time.Until(exp.Time); d > 0 && d < s.ttl {
		return d
	}
	return s.ttl
}
