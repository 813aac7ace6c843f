package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/48hauling/web-panel/internal/devapi"
)

// HealthHandler handles GET /healthz, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /healthz/ready, the readiness probe.
// Checks Redis and DevApi reachability before declaring the panel ready.
type ReadinessHandler struct {
	redis *redis.Client
	api   *devapi.Client
	probe *http.Client
}

func NewReadinessHandler(rdb *redis.Client, api *devapi.Client) *ReadinessHandler {
	return &ReadinessHandler{
		redis: rdb,
		api:   api,
		probe: &http.Client{Timeout: 3 * time.Second},
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- Redis ping ---
	if _, err := h.redis.Ping(ctx).Result(); err != nil {
		deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["redis"] = dependencyStatus{Status: "ok"}
	}

	// --- DevApi reachability ---
	// Any HTTP response counts: the probe asks whether the backend answers,
	// not whether this particular path is authorized.
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.api.BaseURL(), nil)
	if err == nil {
		var resp *http.Response
		resp, err = h.probe.Do(req)
		if err == nil {
			resp.Body.Close()
		}
	}
	if err != nil {
		deps["devapi"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["devapi"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
