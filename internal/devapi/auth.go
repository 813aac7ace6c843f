package devapi

import (
	"context"
	"net/http"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// NotAuthorizedMessage is the rejection shown when an authenticated account
// lacks the ADMIN role required for the panel.
const NotAuthorizedMessage = "You are not authorized to access this page."

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend. On success the returned token is
// stored on this client as a side effect, so subsequent calls on it are
// authenticated.
func (c *Client) Login(ctx context.Context, email, password string) Response[domain.LoginResult] {
	resp := request[domain.LoginResult](ctx, c, http.MethodPost, "/auth/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if resp.Success && resp.Data.Token != "" {
		c.SetToken(resp.Data.Token)
	}
	return resp
}

// LoginAdmin is the login wrapper used by the admin login screen. It rejects
// accounts whose role is not ADMIN and clears the token the backend login
// stored, so no session survives for a disallowed role even though the login
// itself succeeded.
func (c *Client) LoginAdmin(ctx context.Context, email, password string) Response[domain.LoginResult] {
	resp := c.Login(ctx, email, password)
	if !resp.Success {
		return resp
	}
	if !resp.Data.User.IsAdmin() {
		c.ClearToken()
		return failure[domain.LoginResult](NotAuthorizedMessage)
	}
	return resp
}

// Logout discards the local token. The backend keeps no server-side session
// record for bearer tokens, so no remote call is made.
func (c *Client) Logout() Response[struct{}] {
	c.ClearToken()
	return Response[struct{}]{Success: true}
}
