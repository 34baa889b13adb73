package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stwalsh4118/groundwork/api/internal/advisory"
	apierrors "github.com/stwalsh4118/groundwork/api/internal/errors"
	"github.com/stwalsh4118/groundwork/api/internal/middleware"
	"github.com/stwalsh4118/groundwork/api/internal/models"
	"github.com/stwalsh4118/groundwork/api/internal/services"
)

// AnalysisHandler handles zoning analysis HTTP requests.
type AnalysisHandler struct {
	analysis  services.AnalysisService
	valuation services.ValuationService
}

// NewAnalysisHandler creates a new AnalysisHandler instance.
func NewAnalysisHandler(analysis services.AnalysisService, valuation services.ValuationService) *AnalysisHandler {
	return &AnalysisHandler{
		analysis:  analysis,
		valuation: valuation,
	}
}

// AnalyzeRequest represents the body of the analysis endpoint.
type AnalyzeRequest struct {
	ZoneCode       string   `json:"zone_code" binding:"required"`
	LotArea        float64  `json:"lot_area" binding:"required,gt=0"`
	Frontage       *float64 `json:"frontage" binding:"omitempty,gt=0"`
	Depth          *float64 `json:"depth" binding:"omitempty,gt=0"`
	BuildingHeight *float64 `json:"building_height" binding:"omitempty,gt=0"`
	CornerLot      bool     `json:"corner_lot"`
	Address        string   `json:"address"`
}

// AdvisoryFindings carries the follow-up study screening results. Present
// only when the request included an address or the lot area triggered a
// check.
type AdvisoryFindings struct {
	Heritage advisory.Finding `json:"heritage_review"`
	Arborist advisory.Finding `json:"arborist_report"`
}

// AnalyzeResponse represents the response for the analysis endpoint.
type AnalyzeResponse struct {
	Analysis   *models.DevelopmentPotential `json:"analysis"`
	Advisories *AdvisoryFindings            `json:"advisories,omitempty"`
}

// ValuateRequest represents the body of the valuation endpoint.
type ValuateRequest struct {
	ZoneCode           string  `json:"zone_code" binding:"required"`
	LotArea            float64 `json:"lot_area" binding:"required,gt=0"`
	BuildingArea       float64 `json:"building_area" binding:"omitempty,gte=0"`
	BuildingType       string  `json:"building_type"`
	Bedrooms           int     `json:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms          float64 `json:"bathrooms" binding:"omitempty,gte=0"`
	AgeYears           int     `json:"age_years" binding:"omitempty,gte=0"`
	NearbyParks        int     `json:"nearby_parks" binding:"omitempty,gte=0"`
	Waterfront         bool    `json:"waterfront"`
	HeritageDesignated bool    `json:"heritage_designated"`
	CornerLot          bool    `json:"corner_lot"`
}

// ValuationResponse represents the response for the valuation endpoint.
type ValuationResponse struct {
	Valuation *models.ValuationResult `json:"valuation"`
}

// Analyze handles POST /api/v1/analysis endpoint.
// It resolves the zone code and computes the development potential for the
// described site.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	if log != nil {
		log.Info("Processing analysis request", map[string]interface{}{
			"zone_code":  req.ZoneCode,
			"lot_area":   req.LotArea,
			"corner_lot": req.CornerLot,
		})
	}

	site := models.SiteDimensions{
		LotArea:        req.LotArea,
		Frontage:       req.Frontage,
		Depth:          req.Depth,
		BuildingHeight: req.BuildingHeight,
		CornerLot:      req.CornerLot,
	}

	potential, err := h.analysis.Analyze(c.Request.Context(), req.ZoneCode, site)
	if err != nil {
		if errors.Is(err, services.ErrZoneNotFound) {
			apierrors.ZoneNotFound(c, req.ZoneCode)
			return
		}
		if errors.Is(err, services.ErrInvalidSite) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to analyze site", err)
		return
	}

	response := AnalyzeResponse{Analysis: potential}
	if req.Address != "" {
		lotArea := req.LotArea
		response.Advisories = &AdvisoryFindings{
			Heritage: advisory.CheckHeritage(req.Address),
			Arborist: advisory.CheckArborist(req.Address, &lotArea),
		}
	}

	c.JSON(http.StatusOK, response)
}

// Valuate handles POST /api/v1/analysis/valuation endpoint.
// It estimates the property value from the zone, site, and building
// characteristics.
func (h *AnalysisHandler) Valuate(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req ValuateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	if log != nil {
		log.Info("Processing valuation request", map[string]interface{}{
			"zone_code":     req.ZoneCode,
			"lot_area":      req.LotArea,
			"building_area": req.BuildingArea,
		})
	}

	result, err := h.valuation.Estimate(c.Request.Context(), models.ValuationRequest{
		ZoneCode:           req.ZoneCode,
		LotArea:            req.LotArea,
		BuildingArea:       req.BuildingArea,
		BuildingType:       models.DwellingType(req.BuildingType),
		Bedrooms:           req.Bedrooms,
		Bathrooms:          req.Bathrooms,
		AgeYears:           req.AgeYears,
		NearbyParks:        req.NearbyParks,
		Waterfront:         req.Waterfront,
		HeritageDesignated: req.HeritageDesignated,
		CornerLot:          req.CornerLot,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidSite) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to estimate property value", err)
		return
	}

	c.JSON(http.StatusOK, ValuationResponse{Valuation: result})
}
