package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// IssuesHandler serves reported issues and client error logs.
type IssuesHandler struct {
	Base
}

func NewIssuesHandler(base Base) *IssuesHandler {
	return &IssuesHandler{Base: base}
}

func (h *IssuesHandler) List(c echo.Context) error {
	return h.page(c, "")
}

type triageIssueForm struct {
	Status     string `form:"status"`
	AdminNotes string `form:"adminNotes"`
	AssignedTo string `form:"assignedTo"`
}

// Triage applies an admin update to an issue.
func (h *IssuesHandler) Triage(c echo.Context) error {
	id := c.Param("id")

	var form triageIssueForm
	if err := c.Bind(&form); err != nil {
		return h.page(c, "invalid form submission")
	}

	client := h.client(c)
	resp := client.UpdateIssue(c.Request().Context(), id, domain.UpdateIssueInput{
		Status:     form.Status,
		AdminNotes: form.AdminNotes,
		AssignedTo: form.AssignedTo,
	})
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionUpdate, domain.AuditEntitySystem,
		"issue-"+id, map[string]any{"status": form.Status})
	return c.Redirect(http.StatusSeeOther, "/issues")
}

// ResolveError marks one error log entry as resolved.
func (h *IssuesHandler) ResolveError(c echo.Context) error {
	id := c.Param("id")

	client := h.client(c)
	resp := client.ResolveError(c.Request().Context(), id)
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionUpdate, domain.AuditEntitySystem,
		"error-"+id, nil)
	return c.Redirect(http.StatusSeeOther, "/issues")
}

func (h *IssuesHandler) page(c echo.Context, errMsg string) error {
	ctx := c.Request().Context()
	client := h.client(c)

	var issues []domain.ReportedIssue
	if resp := client.GetIssues(ctx, domain.IssueQuery{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
		Priority: c.QueryParam("priority"),
	}); resp.Success {
		issues = resp.Data
	} else if errMsg == "" {
		errMsg = resp.ErrorMessage()
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 50
	}
	errQuery := domain.ErrorLogQuery{Limit: limit, Severity: c.QueryParam("severity")}
	if v := c.QueryParam("resolved"); v != "" {
		resolved := v == "true"
		errQuery.Resolved = &resolved
	}

	var errorLogs []domain.ErrorLog
	if resp := client.GetErrorLogs(ctx, errQuery); resp.Success {
		errorLogs = resp.Data
	}

	return h.render(c, "issues", "Issues", errMsg, map[string]any{
		"Issues":    issues,
		"ErrorLogs": errorLogs,
	})
}
