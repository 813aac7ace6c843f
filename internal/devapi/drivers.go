package devapi

import (
	"context"
	"net/http"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// GetDrivers lists all driver accounts with profile, device status and stats.
func (c *Client) GetDrivers(ctx context.Context) Response[[]domain.Driver] {
	return request[[]domain.Driver](ctx, c, http.MethodGet, "/hauling/drivers", nil)
}

// GetDriver fetches a single driver by id.
func (c *Client) GetDriver(ctx context.Context, driverID string) Response[domain.Driver] {
	return request[domain.Driver](ctx, c, http.MethodGet, "/hauling/drivers/"+driverID, nil)
}

// CreateDriver provisions a new driver account.
func (c *Client) CreateDriver(ctx context.Context, in domain.CreateDriverInput) Response[domain.Driver] {
	return request[domain.Driver](ctx, c, http.MethodPost, "/hauling/drivers", in)
}

// UpdateDriver applies a partial update to a driver account.
func (c *Client) UpdateDriver(ctx context.Context, driverID string, in domain.UpdateDriverInput) Response[domain.Driver] {
	return request[domain.Driver](ctx, c, http.MethodPut, "/hauling/drivers/"+driverID, in)
}

// DeleteDriver removes a driver account.
func (c *Client) DeleteDriver(ctx context.Context, driverID string) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodDelete, "/hauling/drivers/"+driverID, nil)
}

// GetOnlineDrivers lists drivers whose devices reported recently.
func (c *Client) GetOnlineDrivers(ctx context.Context) Response[[]domain.Driver] {
	return request[[]domain.Driver](ctx, c, http.MethodGet, "/hauling/drivers/stats/online", nil)
}
