package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// DvirHandler serves vehicle inspection reports: the review queue, the
// per-report detail view, and the mechanic sign-off action.
type DvirHandler struct {
	Base
}

func NewDvirHandler(base Base) *DvirHandler {
	return &DvirHandler{Base: base}
}

// List shows the pending review queue, or one driver's report history when
// ?driver= is set.
func (h *DvirHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	client := h.client(c)
	driverID := c.QueryParam("driver")

	var resp = client.GetPendingDvirs(ctx)
	if driverID != "" {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		resp = client.GetDriverDvirs(ctx, driverID, domain.DvirQuery{
			StartDate: c.QueryParam("startDate"),
			EndDate:   c.QueryParam("endDate"),
			Limit:     limit,
		})
	}

	var reports []domain.Dvir
	errMsg := ""
	if resp.Success {
		reports = resp.Data
	} else {
		errMsg = resp.ErrorMessage()
	}

	return h.render(c, "dvir", "Inspections", errMsg, map[string]any{
		"Reports":  reports,
		"DriverID": driverID,
	})
}

func (h *DvirHandler) Detail(c echo.Context) error {
	id := c.Param("id")

	resp := h.client(c).GetDvir(c.Request().Context(), id)
	if !resp.Success {
		return h.render(c, "dvir_detail", "Inspection", resp.ErrorMessage(), nil)
	}

	return h.render(c, "dvir_detail", "Inspection #"+id, "", map[string]any{
		"Report": resp.Data,
	})
}

type reviewDvirForm struct {
	Status        string `form:"status" validate:"required,oneof=pending COMPLETED"`
	MechanicNotes string `form:"mechanicNotes"`
}

// Review records the mechanic decision on a report and returns to its detail
// view.
func (h *DvirHandler) Review(c echo.Context) error {
	id := c.Param("id")

	var form reviewDvirForm
	if err := c.Bind(&form); err != nil {
		return h.render(c, "dvir_detail", "Inspection #"+id, "invalid form submission", nil)
	}
	if err := c.Validate(&form); err != nil {
		return h.render(c, "dvir_detail", "Inspection #"+id, err.Error(), nil)
	}

	client := h.client(c)
	resp := client.UpdateDvir(c.Request().Context(), id, domain.UpdateDvirInput{
		Status:        form.Status,
		MechanicNotes: form.MechanicNotes,
	})
	if !resp.Success {
		return h.render(c, "dvir_detail", "Inspection #"+id, resp.ErrorMessage(), map[string]any{
			"Report": resp.Data,
		})
	}

	h.Audit.Record(c, client, domain.AuditActionApprove, domain.AuditEntityDvir,
		id, map[string]any{"status": form.Status})
	return c.Redirect(http.StatusSeeOther, "/dvir/"+id)
}
