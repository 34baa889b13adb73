package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/stwalsh4118/groundwork/api/internal/errors"
	"github.com/stwalsh4118/groundwork/api/internal/models"
	"github.com/stwalsh4118/groundwork/api/internal/services"
)

// ZonesHandler handles zone catalog and rule resolution HTTP requests.
type ZonesHandler struct {
	analysis services.AnalysisService
}

// NewZonesHandler creates a new ZonesHandler instance.
func NewZonesHandler(analysis services.AnalysisService) *ZonesHandler {
	return &ZonesHandler{
		analysis: analysis,
	}
}

// ZonesResponse represents the response for the zone catalog endpoint.
type ZonesResponse struct {
	Zones []models.ZoneInfo `json:"zones"`
	Count int               `json:"count"`
}

// ZoneRulesResponse represents the response for the zone rules endpoint.
type ZoneRulesResponse struct {
	Rules *models.RuleSet `json:"rules"`
}

// List handles GET /api/v1/zones endpoint.
// It returns the display catalog of all base zones in the rule table.
func (h *ZonesHandler) List(c *gin.Context) {
	zones := h.analysis.ListZones(c.Request.Context())

	c.JSON(http.StatusOK, ZonesResponse{
		Zones: zones,
		Count: len(zones),
	})
}

// Rules handles GET /api/v1/zones/:code endpoint.
// The path parameter is a full zone code; suffix and special provision
// references are honored (e.g. "RL3-0" or url-encoded "RL2 SP:1").
func (h *ZonesHandler) Rules(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		apierrors.BadRequest(c, "Zone code is required", nil)
		return
	}

	rules, err := h.analysis.ResolveRules(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, services.ErrZoneNotFound) {
			apierrors.ZoneNotFound(c, code)
			return
		}
		apierrors.InternalServerError(c, "Failed to resolve zone rules", err)
		return
	}

	c.JSON(http.StatusOK, ZoneRulesResponse{Rules: rules})
}
