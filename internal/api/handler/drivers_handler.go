package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// DriversHandler serves the drivers tab: roster, creation, edits and removal.
type DriversHandler struct {
	Base
}

func NewDriversHandler(base Base) *DriversHandler {
	return &DriversHandler{Base: base}
}

func (h *DriversHandler) List(c echo.Context) error {
	return h.page(c, "")
}

type createDriverForm struct {
	Email         string `form:"email"     validate:"required,email"`
	Username      string `form:"username"  validate:"required"`
	Password      string `form:"password"  validate:"required,min=8"`
	FirstName     string `form:"firstName" validate:"required"`
	LastName      string `form:"lastName"  validate:"required"`
	LicenseNumber string `form:"licenseNumber"`
	Vehicle       string `form:"vehicle"`
}

func (h *DriversHandler) Create(c echo.Context) error {
	var form createDriverForm
	if err := c.Bind(&form); err != nil {
		return h.page(c, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.page(c, err.Error())
	}

	client := h.client(c)
	resp := client.CreateDriver(c.Request().Context(), domain.CreateDriverInput{
		Email:               form.Email,
		Username:            form.Username,
		Password:            form.Password,
		FirstName:           form.FirstName,
		LastName:            form.LastName,
		DriverLicenseNumber: form.LicenseNumber,
		VehicleAssigned:     form.Vehicle,
	})
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionCreate, domain.AuditEntityDriver,
		resp.Data.ID, map[string]any{"email": form.Email})
	return c.Redirect(http.StatusSeeOther, "/drivers")
}

type updateDriverForm struct {
	Email         string `form:"email"`
	Username      string `form:"username"`
	FirstName     string `form:"firstName"`
	LastName      string `form:"lastName"`
	LicenseNumber string `form:"licenseNumber"`
	Vehicle       string `form:"vehicle"`
}

func (h *DriversHandler) Update(c echo.Context) error {
	driverID := c.Param("id")

	var form updateDriverForm
	if err := c.Bind(&form); err != nil {
		return h.page(c, "invalid form submission")
	}

	client := h.client(c)
	resp := client.UpdateDriver(c.Request().Context(), driverID, domain.UpdateDriverInput{
		Email:               form.Email,
		Username:            form.Username,
		FirstName:           form.FirstName,
		LastName:            form.LastName,
		DriverLicenseNumber: form.LicenseNumber,
		VehicleAssigned:     form.Vehicle,
	})
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionUpdate, domain.AuditEntityDriver, driverID, nil)
	return c.Redirect(http.StatusSeeOther, "/drivers")
}

func (h *DriversHandler) Delete(c echo.Context) error {
	driverID := c.Param("id")

	client := h.client(c)
	resp := client.DeleteDriver(c.Request().Context(), driverID)
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionDelete, domain.AuditEntityDriver, driverID, nil)
	return c.Redirect(http.StatusSeeOther, "/drivers")
}

func (h *DriversHandler) page(c echo.Context, errMsg string) error {
	ctx := c.Request().Context()
	client := h.client(c)

	var drivers []domain.Driver
	resp := client.GetDrivers(ctx)
	if resp.Success {
		drivers = resp.Data
	} else if errMsg == "" {
		errMsg = resp.ErrorMessage()
	}

	// The online set is decoration. A failure here never hides the roster.
	online := map[string]bool{}
	if onlineResp := client.GetOnlineDrivers(ctx); onlineResp.Success {
		for _, d := range onlineResp.Data {
			online[d.ID] = true
		}
	}

	return h.render(c, "drivers", "Drivers", errMsg, map[string]any{
		"Drivers": drivers,
		"Online":  online,
	})
}
