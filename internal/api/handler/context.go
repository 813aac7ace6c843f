package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/48hauling/web-panel/internal/api/middleware"
	"github.com/48hauling/web-panel/internal/audit"
	"github.com/48hauling/web-panel/internal/devapi"
	"github.com/48hauling/web-panel/internal/session"
)

// Base carries the dependencies shared by every page handler.
type Base struct {
	API      *devapi.Client
	Sessions *session.Store
	Audit    *audit.Recorder
	Log      zerolog.Logger
}

// client returns a DevApi client bound to the request's session token. For
// exempt routes without a token, the client proceeds unauthenticated and the
// backend answers 401 on protected endpoints.
func (b Base) client(c echo.Context) *devapi.Client {
	token, _ := c.Get(middleware.TokenContextKey).(string)
	return b.API.ForToken(token)
}

// render executes a page template with the shared chrome fields filled in.
// A non-empty errMsg becomes the page's dismissible error banner; the rest of
// the page keeps whatever state the caller passed in.
func (b Base) render(c echo.Context, page, title, errMsg string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	data["Page"] = page
	data["Title"] = title
	if errMsg != "" {
		data["Error"] = errMsg
	}
	if user, err := b.Sessions.User(c); err == nil {
		data["User"] = user
	}
	return c.Render(http.StatusOK, page, data)
}
