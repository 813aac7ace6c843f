package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// SettingsHandler serves application settings and the current operator's
// display preferences.
type SettingsHandler struct {
	Base
}

func NewSettingsHandler(base Base) *SettingsHandler {
	return &SettingsHandler{Base: base}
}

func (h *SettingsHandler) Page(c echo.Context) error {
	return h.page(c, "")
}

// UpdateSetting writes one settings key.
func (h *SettingsHandler) UpdateSetting(c echo.Context) error {
	key := c.FormValue("key")
	value := c.FormValue("value")
	if key == "" {
		return h.page(c, "a settings key is required")
	}

	client := h.client(c)
	resp := client.UpdateSetting(c.Request().Context(), key, value)
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionUpdate, domain.AuditEntitySetting,
		key, map[string]any{"value": value})
	return c.Redirect(http.StatusSeeOther, "/settings")
}

// DeleteSetting removes one settings key.
func (h *SettingsHandler) DeleteSetting(c echo.Context) error {
	key := c.Param("key")

	client := h.client(c)
	resp := client.DeleteSetting(c.Request().Context(), key)
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionDelete, domain.AuditEntitySetting, key, nil)
	return c.Redirect(http.StatusSeeOther, "/settings")
}

type preferencesForm struct {
	Theme    string `form:"theme"    validate:"omitempty,oneof=light dark system"`
	Language string `form:"language"`
}

// UpdatePreferences writes the current operator's display preferences.
func (h *SettingsHandler) UpdatePreferences(c echo.Context) error {
	user, err := h.Sessions.User(c)
	if err != nil {
		return h.page(c, "session expired, log in again")
	}

	var form preferencesForm
	if err := c.Bind(&form); err != nil {
		return h.page(c, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.page(c, err.Error())
	}

	client := h.client(c)
	resp := client.UpdateUserPreferences(c.Request().Context(), user.ID, domain.UserPreferences{
		Theme:    form.Theme,
		Language: form.Language,
	})
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	return c.Redirect(http.StatusSeeOther, "/settings")
}

func (h *SettingsHandler) page(c echo.Context, errMsg string) error {
	ctx := c.Request().Context()
	client := h.client(c)

	var settings domain.Settings
	if resp := client.GetSettings(ctx); resp.Success {
		settings = resp.Data
	} else if errMsg == "" {
		errMsg = resp.ErrorMessage()
	}

	var prefs domain.UserPreferences
	if user, err := h.Sessions.User(c); err == nil {
		if resp := client.GetUserPreferences(ctx, user.ID); resp.Success {
			prefs = resp.Data
		}
	}

	return h.render(c, "settings", "Settings", errMsg, map[string]any{
		"Settings":    settings,
		"Preferences": prefs,
	})
}
