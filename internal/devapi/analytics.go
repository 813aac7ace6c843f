package devapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// TrackEvent records an analytics event.
func (c *Client) TrackEvent(ctx context.Context, in domain.TrackEventInput) Response[domain.AnalyticsEvent] {
	return request[domain.AnalyticsEvent](ctx, c, http.MethodPost, "/hauling/analytics", in)
}

// GetDashboardStats fetches the aggregate overview numbers.
func (c *Client) GetDashboardStats(ctx context.Context) Response[domain.DashboardStats] {
	return request[domain.DashboardStats](ctx, c, http.MethodGet, "/hauling/analytics/dashboard", nil)
}

// GetRevenueAnalytics fetches revenue aggregates over the given period (days).
func (c *Client) GetRevenueAnalytics(ctx context.Context, period int) Response[domain.RevenueAnalytics] {
	return request[domain.RevenueAnalytics](ctx, c, http.MethodGet,
		"/hauling/analytics/revenue?period="+strconv.Itoa(period), nil)
}

// GetDriverAnalytics fetches per-driver aggregates over the given period (days).
func (c *Client) GetDriverAnalytics(ctx context.Context, period int) Response[[]domain.DriverAnalytics] {
	return request[[]domain.DriverAnalytics](ctx, c, http.MethodGet,
		"/hauling/analytics/drivers?period="+strconv.Itoa(period), nil)
}

// GetJobsTimeline fetches the jobs-by-status timeline over the given period.
func (c *Client) GetJobsTimeline(ctx context.Context, period int) Response[[]domain.JobsTimelinePoint] {
	return request[[]domain.JobsTimelinePoint](ctx, c, http.MethodGet,
		"/hauling/analytics/jobs-timeline?period="+strconv.Itoa(period), nil)
}

// GetAnalyticsEvents lists raw tracked events, optionally filtered by name.
func (c *Client) GetAnalyticsEvents(ctx context.Context, eventName string, limit int) Response[[]domain.AnalyticsEvent] {
	v := url.Values{}
	if eventName != "" {
		v.Set("eventName", eventName)
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return request[[]domain.AnalyticsEvent](ctx, c, http.MethodGet,
		withQuery("/hauling/analytics/events", v), nil)
}
