package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
	"github.com/48hauling/web-panel/internal/devapi"
	"github.com/48hauling/web-panel/internal/poll"
)

// GpsHandler serves the live GPS view. The page itself is static chrome; the
// device and location data arrive through the partial endpoints, which the
// page re-fetches every 30 seconds.
//
// When background refreshers are configured (a service token is present), the
// partials answer from their snapshots so every open browser shares one
// upstream fetch per interval. Without refreshers each partial request goes
// upstream with the operator's own token.
type GpsHandler struct {
	Base
	Devices   *poll.Refresher[[]domain.DeviceStatus]
	Locations *poll.Refresher[[]domain.LocationPoint]
}

func NewGpsHandler(base Base, devices *poll.Refresher[[]domain.DeviceStatus], locations *poll.Refresher[[]domain.LocationPoint]) *GpsHandler {
	return &GpsHandler{Base: base, Devices: devices, Locations: locations}
}

func (h *GpsHandler) Page(c echo.Context) error {
	return h.render(c, "gps", "Live GPS", "", nil)
}

// DevicesPartial returns the online-device list in the standard response
// envelope for the polling script.
func (h *GpsHandler) DevicesPartial(c echo.Context) error {
	if h.Devices != nil {
		if snapshot, updated := h.Devices.Snapshot(); !updated.IsZero() {
			return c.JSON(http.StatusOK, devapi.Response[[]domain.DeviceStatus]{
				Success: true, Data: snapshot,
			})
		}
	}
	return c.JSON(http.StatusOK, h.client(c).GetOnlineDevices(c.Request().Context()))
}

// LocationsPartial returns the latest GPS fix of every active driver.
func (h *GpsHandler) LocationsPartial(c echo.Context) error {
	if h.Locations != nil {
		if snapshot, updated := h.Locations.Snapshot(); !updated.IsZero() {
			return c.JSON(http.StatusOK, devapi.Response[[]domain.LocationPoint]{
				Success: true, Data: snapshot,
			})
		}
	}
	return c.JSON(http.StatusOK, h.client(c).GetActiveLocations(c.Request().Context()))
}

// History returns one driver's GPS trail for the trail overlay.
func (h *GpsHandler) History(c echo.Context) error {
	driverID := c.Param("driverId")
	resp := h.client(c).GetLocationHistory(c.Request().Context(), driverID, domain.LocationQuery{
		JobID:     c.QueryParam("jobId"),
		StartTime: c.QueryParam("startTime"),
		EndTime:   c.QueryParam("endTime"),
	})
	return c.JSON(http.StatusOK, resp)
}
