package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/groundwork/api/internal/rules"
)

// APIVersion is the current version of the API
const APIVersion = "0.1.0"

// HealthHandler handles health check and readiness endpoints.
type HealthHandler struct {
	table     *rules.Table
	startTime time.Time
	env       string
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(table *rules.Table, env string) *HealthHandler {
	return &HealthHandler{
		table:     table,
		startTime: time.Now(),
		env:       env,
	}
}

// HealthResponse represents the basic health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Status    string `json:"status"`
	RuleTable string `json:"rule_table"`
	ZoneCount int    `json:"zone_count"`
}

// InfoResponse represents the API information response.
type InfoResponse struct {
	Version        string `json:"version"`
	Environment    string `json:"environment"`
	Uptime         string `json:"uptime"`
	DatasetVersion string `json:"dataset_version"`
	ZoneCount      int    `json:"zone_count"`
}

// Health handles GET /health endpoint.
// This is a basic health check that always returns 200 OK.
// It does not check any dependencies and is used for basic liveness checks.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// Ready handles GET /health/ready endpoint.
// This is a readiness check that verifies the rule table is loaded.
// Returns 200 OK if zones are available, 503 Service Unavailable otherwise.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.table == nil || h.table.ZoneCount() == 0 {
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status:    "not_ready",
			RuleTable: "not_loaded",
		})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{
		Status:    "ready",
		RuleTable: "loaded",
		ZoneCount: h.table.ZoneCount(),
	})
}

// Info handles GET /api/v1/info endpoint.
// Returns API metadata including version, environment, uptime, and the
// loaded rule dataset version.
func (h *HealthHandler) Info(c *gin.Context) {
	uptime := time.Since(h.startTime)

	resp := InfoResponse{
		Version:     APIVersion,
		Environment: h.env,
		Uptime:      formatUptime(uptime),
	}
	if h.table != nil {
		resp.DatasetVersion = h.table.Version()
		resp.ZoneCount = h.table.ZoneCount()
	}

	c.JSON(http.StatusOK, resp)
}

// formatUptime formats a duration into a human-readable string.
func formatUptime(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
