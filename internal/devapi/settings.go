package devapi

import (
	"context"
	"net/http"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// GetSettings fetches the full application settings document.
func (c *Client) GetSettings(ctx context.Context) Response[domain.Settings] {
	return request[domain.Settings](ctx, c, http.MethodGet, "/hauling/settings", nil)
}

// GetSetting fetches a single settings value.
func (c *Client) GetSetting(ctx context.Context, key string) Response[any] {
	return request[any](ctx, c, http.MethodGet, "/hauling/settings/"+key, nil)
}

// UpdateSetting writes a single settings value.
func (c *Client) UpdateSetting(ctx context.Context, key string, value any) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodPut, "/hauling/settings/"+key,
		map[string]any{"value": value})
}

// BulkUpdateSettings writes several settings in one call.
func (c *Client) BulkUpdateSettings(ctx context.Context, settings domain.Settings) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodPost, "/hauling/settings/bulk",
		map[string]any{"settings": settings})
}

// DeleteSetting removes a settings key.
func (c *Client) DeleteSetting(ctx context.Context, key string) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodDelete, "/hauling/settings/"+key, nil)
}

// GetUserPreferences fetches one user's preferences.
func (c *Client) GetUserPreferences(ctx context.Context, userID string) Response[domain.UserPreferences] {
	return request[domain.UserPreferences](ctx, c, http.MethodGet,
		"/hauling/settings/users/"+userID+"/preferences", nil)
}

// UpdateUserPreferences writes one user's preferences.
func (c *Client) UpdateUserPreferences(ctx context.Context, userID string, prefs domain.UserPreferences) Response[domain.UserPreferences] {
	return request[domain.UserPreferences](ctx, c, http.MethodPut,
		"/hauling/settings/users/"+userID+"/preferences", prefs)
}
