package devapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// CreateAuditLog records an operator action in the backend audit trail.
func (c *Client) CreateAuditLog(ctx context.Context, in domain.AuditEntryInput) Response[domain.AuditLog] {
	return request[domain.AuditLog](ctx, c, http.MethodPost, "/hauling/audit", in)
}

type auditLogPage struct {
	Logs []domain.AuditLog `json:"logs"`
}

// GetAuditLogs lists audit entries, optionally filtered.
func (c *Client) GetAuditLogs(ctx context.Context, q domain.AuditQuery) Response[[]domain.AuditLog] {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Action != "" {
		v.Set("action", q.Action)
	}
	if q.EntityType != "" {
		v.Set("entityType", q.EntityType)
	}
	if q.UserID != "" {
		v.Set("userId", q.UserID)
	}
	if q.StartDate != "" {
		v.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("endDate", q.EndDate)
	}

	resp := request[auditLogPage](ctx, c, http.MethodGet, withQuery("/hauling/audit", v), nil)
	if !resp.Success {
		return failure[[]domain.AuditLog](resp.ErrorMessage())
	}
	return Response[[]domain.AuditLog]{Success: true, Data: resp.Data.Logs, Message: resp.Message}
}

// GetEntityAuditLogs lists audit entries for one entity.
func (c *Client) GetEntityAuditLogs(ctx context.Context, entityType, entityID string, limit int) Response[[]domain.AuditLog] {
	if limit <= 0 {
		limit = 50
	}
	return request[[]domain.AuditLog](ctx, c, http.MethodGet,
		"/hauling/audit/entity/"+entityType+"/"+entityID+"?limit="+strconv.Itoa(limit), nil)
}

// GetUserAuditLogs lists audit entries recorded for one user.
func (c *Client) GetUserAuditLogs(ctx context.Context, userID string, limit int) Response[[]domain.AuditLog] {
	if limit <= 0 {
		limit = 50
	}
	return request[[]domain.AuditLog](ctx, c, http.MethodGet,
		"/hauling/audit/user/"+userID+"?limit="+strconv.Itoa(limit), nil)
}

// GetAuditStats summarises audit activity over the given period (days).
func (c *Client) GetAuditStats(ctx context.Context, period int) Response[domain.AuditStats] {
	return request[domain.AuditStats](ctx, c, http.MethodGet,
		"/hauling/audit/stats?period="+strconv.Itoa(period), nil)
}

// CleanupAuditLogs prunes audit entries older than daysToKeep.
func (c *Client) CleanupAuditLogs(ctx context.Context, daysToKeep int) Response[domain.Ack] {
	if daysToKeep <= 0 {
		daysToKeep = 90
	}
	return request[domain.Ack](ctx, c, http.MethodDelete,
		"/hauling/audit/cleanup?daysToKeep="+strconv.Itoa(daysToKeep), nil)
}
