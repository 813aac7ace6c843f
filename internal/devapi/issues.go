package devapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// LogError reports a client-side error to the backend error log.
func (c *Client) LogError(ctx context.Context, message, stackTrace, severity string) Response[domain.ErrorLog] {
	return request[domain.ErrorLog](ctx, c, http.MethodPost, "/hauling/errors", map[string]string{
		"errorMessage": message,
		"stackTrace":   stackTrace,
		"severity":     severity,
	})
}

// GetErrorLogs lists reported errors, optionally filtered.
func (c *Client) GetErrorLogs(ctx context.Context, q domain.ErrorLogQuery) Response[[]domain.ErrorLog] {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Severity != "" {
		v.Set("severity", q.Severity)
	}
	if q.Resolved != nil {
		v.Set("resolved", strconv.FormatBool(*q.Resolved))
	}
	return request[[]domain.ErrorLog](ctx, c, http.MethodGet, withQuery("/hauling/errors", v), nil)
}

// ResolveError marks an error log entry as resolved.
func (c *Client) ResolveError(ctx context.Context, errorID string) Response[domain.ErrorLog] {
	return request[domain.ErrorLog](ctx, c, http.MethodPut, "/hauling/errors/"+errorID+"/resolve", nil)
}

// ReportIssue files a new user issue.
func (c *Client) ReportIssue(ctx context.Context, description, category, priority string) Response[domain.ReportedIssue] {
	return request[domain.ReportedIssue](ctx, c, http.MethodPost, "/hauling/issues", map[string]string{
		"description": description,
		"category":    category,
		"priority":    priority,
	})
}

// GetIssues lists issues, optionally filtered.
func (c *Client) GetIssues(ctx context.Context, q domain.IssueQuery) Response[[]domain.ReportedIssue] {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Priority != "" {
		v.Set("priority", q.Priority)
	}
	return request[[]domain.ReportedIssue](ctx, c, http.MethodGet, withQuery("/hauling/issues", v), nil)
}

// GetIssue fetches a single issue.
func (c *Client) GetIssue(ctx context.Context, issueID string) Response[domain.ReportedIssue] {
	return request[domain.ReportedIssue](ctx, c, http.MethodGet, "/hauling/issues/"+issueID, nil)
}

// UpdateIssue applies an admin triage update to an issue.
func (c *Client) UpdateIssue(ctx context.Context, issueID string, in domain.UpdateIssueInput) Response[domain.ReportedIssue] {
	return request[domain.ReportedIssue](ctx, c, http.MethodPut, "/hauling/issues/"+issueID, in)
}
