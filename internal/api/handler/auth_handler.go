package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/api/metrics"
	"github.com/48hauling/web-panel/internal/devapi"
)

// LoginLimiter throttles repeated failed logins per account.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthHandler serves the login screen and the login/logout actions.
type AuthHandler struct {
	Base
	limiter LoginLimiter
}

// NewAuthHandler builds an AuthHandler. A nil limiter disables login
// throttling.
func NewAuthHandler(base Base, limiter LoginLimiter) *AuthHandler {
	return &AuthHandler{Base: base, limiter: limiter}
}

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// LoginPage renders the login screen. The session guard already bounced
// authenticated operators back to the dashboard.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login", map[string]any{"Title": "Login"})
}

// Login authenticates the operator against the backend. The role gate runs
// client-side after a successful backend login: a non-admin account is logged
// straight back out and no session is persisted anywhere.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", map[string]any{
			"Title": "Login", "Error": "invalid form submission",
		})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", map[string]any{
			"Title": "Login", "Error": err.Error(),
		})
	}

	ctx := c.Request().Context()
	if h.limiter != nil {
		allowed, err := h.limiter.Allow(ctx, form.Email)
		if err != nil {
			// Fail open: a limiter outage must not lock every operator out.
			h.Log.Warn().Err(err).Msg("login limiter unavailable")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.Render(http.StatusTooManyRequests, "login", map[string]any{
				"Title": "Login", "Error": "Too many failed attempts, try again later",
			})
		}
	}

	// Fresh derived client, so a rejected login can never leave a token
	// behind on the shared base client.
	client := h.API.ForToken("")
	resp := client.LoginAdmin(ctx, form.Email, form.Password)
	if !resp.Success {
		result := "failed"
		if resp.Error == devapi.NotAuthorizedMessage {
			result = "rejected"
		}
		metrics.LoginsTotal.WithLabelValues(result).Inc()
		if h.limiter != nil {
			if err := h.limiter.RecordFailure(ctx, form.Email); err != nil {
				h.Log.Warn().Err(err).Msg("record login failure")
			}
		}
		return c.Render(http.StatusUnauthorized, "login", map[string]any{
			"Title": "Login", "Error": resp.ErrorMessage(),
		})
	}

	if h.limiter != nil {
		if err := h.limiter.Reset(ctx, form.Email); err != nil {
			h.Log.Warn().Err(err).Msg("reset login failures")
		}
	}

	if err := h.Sessions.Set(c, resp.Data.Token, resp.Data.User); err != nil {
		client.ClearToken()
		h.Log.Error().Err(err).Msg("persist session")
		return c.Render(http.StatusInternalServerError, "login", map[string]any{
			"Title": "Login", "Error": "Could not start a session, please try again",
		})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.Audit.Login(c, client)
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears both session stores and returns the operator to the login
// screen.
func (h *AuthHandler) Logout(c echo.Context) error {
	client := h.client(c)
	h.Audit.Logout(c, client)
	h.Sessions.Clear(c)
	client.Logout()
	return c.Redirect(http.StatusSeeOther, "/login")
}
