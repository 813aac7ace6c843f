package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// AuditHandler serves the audit-trail tab: filtered listing, activity stats
// and retention cleanup.
type AuditHandler struct {
	Base
}

func NewAuditHandler(base Base) *AuditHandler {
	return &AuditHandler{Base: base}
}

func (h *AuditHandler) List(c echo.Context) error {
	return h.page(c, "")
}

// Cleanup prunes audit entries older than the requested retention window.
func (h *AuditHandler) Cleanup(c echo.Context) error {
	daysToKeep, _ := strconv.Atoi(c.FormValue("daysToKeep"))

	client := h.client(c)
	resp := client.CleanupAuditLogs(c.Request().Context(), daysToKeep)
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionDelete, domain.AuditEntitySystem,
		"audit-cleanup", map[string]any{"daysToKeep": daysToKeep})
	return c.Redirect(http.StatusSeeOther, "/audit")
}

func (h *AuditHandler) page(c echo.Context, errMsg string) error {
	ctx := c.Request().Context()
	client := h.client(c)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 100
	}
	query := domain.AuditQuery{
		Limit:      limit,
		Action:     c.QueryParam("action"),
		EntityType: c.QueryParam("entityType"),
		UserID:     c.QueryParam("userId"),
		StartDate:  c.QueryParam("startDate"),
		EndDate:    c.QueryParam("endDate"),
	}

	var logs []domain.AuditLog
	if resp := client.GetAuditLogs(ctx, query); resp.Success {
		logs = resp.Data
	} else if errMsg == "" {
		errMsg = resp.ErrorMessage()
	}

	period, _ := strconv.Atoi(c.QueryParam("period"))
	if period <= 0 {
		period = 30
	}
	var stats domain.AuditStats
	if resp := client.GetAuditStats(ctx, period); resp.Success {
		stats = resp.Data
	}

	return h.render(c, "audit", "Audit Trail", errMsg, map[string]any{
		"Logs":   logs,
		"Stats":  stats,
		"Query":  query,
		"Period": period,
	})
}
