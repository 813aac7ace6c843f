package devapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// GetOnlineDevices lists driver devices seen recently, for the live-status view.
func (c *Client) GetOnlineDevices(ctx context.Context) Response[[]domain.DeviceStatus] {
	return request[[]domain.DeviceStatus](ctx, c, http.MethodGet, "/hauling/heartbeat/status", nil)
}

// SendHeartbeat reports this client as alive. Used by the driver app; exposed
// here for completeness of the API surface.
func (c *Client) SendHeartbeat(ctx context.Context, in domain.HeartbeatInput) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodPost, "/hauling/heartbeat", in)
}

// GetDriverLocation fetches the latest GPS fix for a driver.
func (c *Client) GetDriverLocation(ctx context.Context, driverID string) Response[domain.LocationPoint] {
	return request[domain.LocationPoint](ctx, c, http.MethodGet, "/hauling/location/"+driverID, nil)
}

// GetLocationHistory fetches a driver's GPS trail, optionally filtered.
func (c *Client) GetLocationHistory(ctx context.Context, driverID string, q domain.LocationQuery) Response[[]domain.LocationPoint] {
	v := url.Values{}
	if q.JobID != "" {
		v.Set("jobId", q.JobID)
	}
	if q.StartTime != "" {
		v.Set("startTime", q.StartTime)
	}
	if q.EndTime != "" {
		v.Set("endTime", q.EndTime)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return request[[]domain.LocationPoint](ctx, c, http.MethodGet,
		withQuery("/hauling/location/"+driverID+"/history", v), nil)
}

// GetActiveLocations lists the latest fix of every active driver.
func (c *Client) GetActiveLocations(ctx context.Context) Response[[]domain.LocationPoint] {
	return request[[]domain.LocationPoint](ctx, c, http.MethodGet, "/hauling/location", nil)
}
