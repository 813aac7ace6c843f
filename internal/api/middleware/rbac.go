package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/session"
)

// RequireAdmin restricts a route group to operators whose session record
// carries the ADMIN role. The login screen already rejects non-admin
// accounts; this is a second gate for the destructive console routes, in case
// a stale session record survives a role change.
func RequireAdmin(sessions *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := sessions.User(c)
			if err != nil || !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
