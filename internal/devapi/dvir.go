package devapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// SubmitDvir files a new inspection report.
func (c *Client) SubmitDvir(ctx context.Context, in domain.CreateDvirInput) Response[domain.Dvir] {
	return request[domain.Dvir](ctx, c, http.MethodPost, "/hauling/dvir", in)
}

// GetDriverDvirs lists a driver's inspection reports, optionally filtered by
// date range.
func (c *Client) GetDriverDvirs(ctx context.Context, driverID string, q domain.DvirQuery) Response[[]domain.Dvir] {
	v := url.Values{}
	if q.StartDate != "" {
		v.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("endDate", q.EndDate)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return request[[]domain.Dvir](ctx, c, http.MethodGet,
		withQuery("/hauling/dvir/"+driverID, v), nil)
}

// GetDvir fetches a single report by id.
func (c *Client) GetDvir(ctx context.Context, dvirID string) Response[domain.Dvir] {
	return request[domain.Dvir](ctx, c, http.MethodGet, "/hauling/dvir/report/"+dvirID, nil)
}

// UpdateDvir records the mechanic's review of a report.
func (c *Client) UpdateDvir(ctx context.Context, dvirID string, in domain.UpdateDvirInput) Response[domain.Dvir] {
	return request[domain.Dvir](ctx, c, http.MethodPut, "/hauling/dvir/"+dvirID, in)
}

// GetPendingDvirs lists all reports awaiting review.
func (c *Client) GetPendingDvirs(ctx context.Context) Response[[]domain.Dvir] {
	return request[[]domain.Dvir](ctx, c, http.MethodGet, "/hauling/dvir/pending/all", nil)
}
