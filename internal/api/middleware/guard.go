package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/session"
)

const (
	loginPath = "/login"
	homePath  = "/"

	// TokenContextKey is where the guard stashes the session token for the
	// handlers downstream.
	TokenContextKey = "devapi_token"
)

// Static-asset paths bypass the guard entirely, as do the operational
// endpoints scraped by infrastructure.
var guardExemptPrefixes = []string{"/static/", "/healthz", "/metrics"}

var guardExemptSuffixes = []string{
	".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp", ".ico", ".css", ".js",
}

// SessionGuard gates every page on the presence of a session token, read from
// the token cookie or the Authorization header. It performs no verification:
// an expired or revoked token is caught lazily by the first backend call made
// on the operator's behalf.
func SessionGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if guardExempt(path) {
				return next(c)
			}

			token := session.TokenFromRequest(c.Request())
			onLogin := path == loginPath

			if token == "" && !onLogin {
				return c.Redirect(http.StatusFound, loginPath)
			}
			if token != "" && onLogin {
				return c.Redirect(http.StatusFound, homePath)
			}

			if token != "" {
				c.Set(TokenContextKey, token)
			}
			return next(c)
		}
	}
}

func guardExempt(path string) bool {
	for _, p := range guardExemptPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	for _, s := range guardExemptSuffixes {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	return false
}
