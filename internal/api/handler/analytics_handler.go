package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// AnalyticsHandler serves the analytics tab, fanning out to the four
// aggregate endpoints for the selected period.
type AnalyticsHandler struct {
	Base
}

func NewAnalyticsHandler(base Base) *AnalyticsHandler {
	return &AnalyticsHandler{Base: base}
}

func (h *AnalyticsHandler) Page(c echo.Context) error {
	period, _ := strconv.Atoi(c.QueryParam("period"))
	if period <= 0 {
		period = 30
	}

	client := h.client(c)

	var (
		stats    domain.DashboardStats
		revenue  domain.RevenueAnalytics
		drivers  []domain.DriverAnalytics
		timeline []domain.JobsTimelinePoint
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
		resp := client.GetRevenueAnalytics(ctx, period)
		if resp.Success {
			revenue = resp.Data
		}
		return resp.Err()
	})
	g.Go(func() error {
		resp := client.GetDriverAnalytics(ctx, period)
		if resp.Success {
			drivers = resp.Data
		}
		return resp.Err()
	})
	g.Go(func() error {
		resp := client.GetJobsTimeline(ctx, period)
		if resp.Success {
			timeline = resp.Data
		}
		return resp.Err()
	})

	errMsg := ""
	if err := g.Wait(); err != nil {
		errMsg = err.Error()
	}

	return h.render(c, "analytics", "Analytics", errMsg, map[string]any{
		"Stats":    stats,
		"Revenue":  revenue,
		"Drivers":  drivers,
		"Timeline": timeline,
		"Period":   period,
	})
}
