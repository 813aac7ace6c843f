package handler

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// OverviewHandler serves the landing dashboard, fanning out to several
// backend endpoints concurrently.
type OverviewHandler struct {
	Base
}

func NewOverviewHandler(base Base) *OverviewHandler {
	return &OverviewHandler{Base: base}
}

func (h *OverviewHandler) Overview(c echo.Context) error {
	client := h.client(c)

	var (
		stats   domain.DashboardStats
		devices []domain.DeviceStatus
		pending []domain.Dvir
		unread  int
	)

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		resp := client.GetDashboardStats(ctx)
		if resp.Success {
			stats = resp.Data
		}
		return resp.Err()
	})
	g.Go(func() error {
		resp := client.GetOnlineDevices(ctx)
		if resp.Success {
			devices = resp.Data
		}
		return resp.Err()
	})
	g.Go(func() error {
		resp := client.GetPendingDvirs(ctx)
		if resp.Success {
			pending = resp.Data
		}
		return resp.Err()
	})
	g.Go(func() error {
		resp := client.GetUnreadMessageCount(ctx)
		if resp.Success {
			unread = resp.Data.Count
		}
		return resp.Err()
	})

	errMsg := ""
	if err := g.Wait(); err != nil {
		errMsg = err.Error()
	}

	return h.render(c, "overview", "Dashboard", errMsg, map[string]any{
		"Stats":        stats,
		"Devices":      devices,
		"PendingDvirs": pending,
		"Unread":       unread,
	})
}
