package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/claimgate/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// DatabasePinger reports eligibility store liveness
type DatabasePinger interface {
	Ping() error
}

// QueuePinger reports fulfillment queue liveness
type QueuePinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	db        DatabasePinger
	queue     QueuePinger
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db DatabasePinger, queue QueuePinger) *SystemHandler {
	return &SystemHandler{
		db:        db,
		queue:     queue,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
// @name HandlerHealthResponse
type HealthResponse struct {
	Status     string            `json:"status" example:"ok"`
	Components map[string]string `json:"components"`
	Uptime     string            `json:"uptime" example:"1h30m45s"`
}

// Health godoc
// @ID           getSystemHealth
// @Summary      Health check
// @Description  Reports liveness of the service and its dependencies (eligibility store, fulfillment queue)
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[HealthResponse]
// @Failure      503 {object} APIResponse[HealthResponse]
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	components := map[string]string{
		"database": "ok",
		"queue":    "ok",
	}
	healthy := true

	if err := h.db.Ping(); err != nil {
		components["database"] = "unavailable"
		healthy = false
	}
	if err := h.queue.Ping(c.Request.Context()); err != nil {
		components["queue"] = "unavailable"
		healthy = false
	}

	resp := HealthResponse{
		Status:     "ok",
		Components: components,
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}

	status := http.StatusOK
	if !healthy {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, dto.NewSuccessResponse(resp))
}

// SystemInfoResponse represents the system information response
// @name HandlerSystemInfoResponse
type SystemInfoResponse struct {
	Name      string `json:"name" example:"Claim Gateway API"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// GetSystemInfo godoc
// @ID           getSystemSystemInfo
// @Summary      Get system information
// @Description  Returns basic system information including version and uptime
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "Claim Gateway API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// PingResponse represents the ping response
// @name HandlerPingResponse
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-01-23T12:00:00Z"`
}

// Ping godoc
// @ID           pingSystem
// @Summary      Ping the API
// @Description  Simple ping endpoint to check if the API is responsive
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[PingResponse]
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	response := PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
