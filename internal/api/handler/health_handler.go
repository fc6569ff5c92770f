package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const readinessTimeout = 3 * time.Second

// Pinger is satisfied by every document store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the identity check and the liveness/readiness probes.
type HealthHandler struct {
	appName string
	store   Pinger
}

func NewHealthHandler(appName string, store Pinger) *HealthHandler {
	return &HealthHandler{appName: appName, store: store}
}

// Root handles GET /.
//
// @Summary      Service identity
// @Tags         health
// @Produce      json
// @Success      200  {object}  rootResponse
// @Router       / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{Name: h.appName, Status: "ok"})
}

// Liveness handles GET /health. Returns 200 as long as the process serves.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness handles GET /health/ready — pings the document store.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	resp := readinessResponse{
		Status:       "ok",
		Dependencies: map[string]dependencyStatus{"store": {Status: "ok"}},
	}
	code := http.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		resp.Status = "degraded"
		resp.Dependencies["store"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, resp)
}
