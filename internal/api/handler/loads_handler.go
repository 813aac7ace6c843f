package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// LoadsHandler serves the loads (jobs) tab.
type LoadsHandler struct {
	Base
}

func NewLoadsHandler(base Base) *LoadsHandler {
	return &LoadsHandler{Base: base}
}

// List renders the loads table. Status filtering happens panel-side over the
// full listing the backend returns.
func (h *LoadsHandler) List(c echo.Context) error {
	return h.page(c, "")
}

type createLoadForm struct {
	Reference       string `form:"reference"`
	PickupAddress   string `form:"pickupAddress"   validate:"required"`
	DeliveryAddress string `form:"deliveryAddress" validate:"required"`
	CustomerName    string `form:"customerName"`
	CustomerPhone   string `form:"customerPhone"`
	Notes           string `form:"notes"`
	Priority        int    `form:"priority"`
	DriverID        string `form:"driverId"`
}

// Create submits a new load and returns to the listing. On failure the
// listing is re-rendered with an error banner and nothing else changes.
func (h *LoadsHandler) Create(c echo.Context) error {
	var form createLoadForm
	if err := c.Bind(&form); err != nil {
		return h.page(c, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.page(c, err.Error())
	}

	client := h.client(c)
	resp := client.CreateJob(c.Request().Context(), domain.CreateJobInput{
		Reference:        form.Reference,
		PickupAddress:    form.PickupAddress,
		DeliveryAddress:  form.DeliveryAddress,
		CustomerName:     form.CustomerName,
		CustomerPhone:    form.CustomerPhone,
		Notes:            form.Notes,
		Priority:         form.Priority,
		AssignedDriverID: form.DriverID,
	})
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionCreate, domain.AuditEntityLoad,
		form.Reference, map[string]any{"pickup": form.PickupAddress, "delivery": form.DeliveryAddress})
	return c.Redirect(http.StatusSeeOther, "/loads")
}

// UpdateStatus moves a load to a new status.
func (h *LoadsHandler) UpdateStatus(c echo.Context) error {
	jobID := c.Param("id")
	status := c.FormValue("status")
	if status == "" {
		return h.page(c, "status is required")
	}

	client := h.client(c)
	resp := client.UpdateJobStatus(c.Request().Context(), jobID, status)
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionUpdate, domain.AuditEntityLoad,
		jobID, map[string]any{"status": status})
	return c.Redirect(http.StatusSeeOther, "/loads")
}

func (h *LoadsHandler) page(c echo.Context, errMsg string) error {
	resp := h.client(c).GetJobs(c.Request().Context())

	var jobs []domain.Job
	if resp.Success {
		jobs = resp.Data
	} else if errMsg == "" {
		errMsg = resp.ErrorMessage()
	}

	status := c.QueryParam("status")
	if status != "" {
		filtered := jobs[:0:0]
		for _, j := range jobs {
			if j.Status == status {
				filtered = append(filtered, j)
			}
		}
		jobs = filtered
	}

	return h.render(c, "loads", "Loads", errMsg, map[string]any{
		"Jobs":   jobs,
		"Status": status,
	})
}
