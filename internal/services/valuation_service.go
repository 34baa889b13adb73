package services

import (
	"context"
	"fmt"
	"math"

	"github.com/stwalsh4118/groundwork/api/internal/logger"
	"github.com/stwalsh4118/groundwork/api/internal/models"
	"github.com/stwalsh4118/groundwork/api/internal/zoning"
)

// Base land values per square metre by zone code (CAD). Enhanced-infill
// variants carry a premium over their parent zones.
var baseLandValues = map[string]float64{
	"RL1": 650, "RL1-0": 700, "RL2": 580, "RL2-0": 620, "RL3": 520, "RL3-0": 550,
	"RL4": 500, "RL4-0": 530, "RL5": 480, "RL5-0": 510, "RL6": 450, "RL6-0": 480,
	"RL7": 470, "RL7-0": 500, "RL8": 420, "RL8-0": 450, "RL9": 400, "RL9-0": 430,
	"RL10": 490, "RL10-0": 520, "RL11": 460, "RL11-0": 490,
	"RUC": 380, "RM1": 350, "RM2": 330, "RM3": 320, "RM4": 300, "RH": 280,
}

// Building replacement values per square metre by dwelling type (CAD).
var buildingValues = map[models.DwellingType]float64{
	models.DwellingDetached:            2800,
	models.DwellingSemiDetached:        2600,
	models.DwellingTownhouse:           2400,
	models.DwellingBackToBackTownhouse: 2200,
	models.DwellingStackedTownhouse:    2300,
	models.DwellingApartment:           2000,
}

// Valuation model parameters.
const (
	defaultLandValuePerSqM     = 400.0
	defaultBuildingValuePerSqM = 2800.0
	depreciationRatePerYear    = 0.02
	depreciationMaxYears       = 40
	bedroomBaseline            = 3
	bedroomAdjustment          = 25000.0
	bathroomBaseline           = 2.5
	bathroomAdjustment         = 15000.0
	marketFactor               = 1.05
	confidenceSpread           = 0.15
)

// Location premium factors applied against the land value.
const (
	premiumWaterfront   = 0.30
	premiumParkAdjacent = 0.10
	premiumHeritage     = -0.10
	premiumCornerLot    = -0.05
	premiumSuffixZone   = -0.05
	maxCountedParks     = 3
)

// ValuationService defines the interface for property valuation.
type ValuationService interface {
	// Estimate computes the property value estimate for the request.
	// Returns ErrInvalidSite when the lot area is not positive.
	Estimate(ctx context.Context, req models.ValuationRequest) (*models.ValuationResult, error)
}

// valuationService is the concrete implementation of ValuationService.
type valuationService struct {
	log *logger.Logger
}

// NewValuationService creates a new ValuationService.
func NewValuationService(log *logger.Logger) ValuationService {
	return &valuationService{log: log}
}

// Estimate applies the valuation formulas: land value by zone, building
// value with age depreciation, bedroom/bathroom adjustments, location
// premiums, and a market factor, with a plus-or-minus fifteen percent
// confidence range. Amounts are rounded to the nearest thousand.
func (s *valuationService) Estimate(ctx context.Context, req models.ValuationRequest) (*models.ValuationResult, error) {
	if req.LotArea <= 0 {
		s.log.Warn("Invalid lot area for valuation", map[string]interface{}{
			"zone_code": req.ZoneCode,
			"lot_area":  req.LotArea,
		})
		return nil, fmt.Errorf("%w: lot area must be positive, got %f", ErrInvalidSite, req.LotArea)
	}

	code := zoning.ParseZoneCode(req.ZoneCode)
	landValue := landValuePerSqM(code) * req.LotArea

	buildingType := req.BuildingType
	if buildingType == "" {
		buildingType = models.DwellingDetached
	}
	perSqM, ok := buildingValues[buildingType]
	if !ok {
		perSqM = defaultBuildingValuePerSqM
	}
	ageYears := min(req.AgeYears, depreciationMaxYears)
	buildingValue := req.BuildingArea * perSqM * (1 - depreciationRatePerYear*float64(ageYears))

	bedrooms := math.Max(0, float64(req.Bedrooms-bedroomBaseline)) * bedroomAdjustment
	bathrooms := math.Max(0, req.Bathrooms-bathroomBaseline) * bathroomAdjustment

	location := 0.0
	if req.Waterfront {
		location += landValue * premiumWaterfront
	}
	if req.NearbyParks > 0 {
		location += landValue * premiumParkAdjacent * float64(min(req.NearbyParks, maxCountedParks))
	}
	if req.HeritageDesignated {
		location += landValue * premiumHeritage
	}
	if req.CornerLot {
		location += landValue * premiumCornerLot
	}
	if code.HasSuffix() {
		location += landValue * premiumSuffixZone
	}

	total := (landValue + buildingValue + bedrooms + bathrooms + location) * marketFactor

	result := &models.ValuationResult{
		EstimatedValue: roundThousand(total),
		LandValue:      math.Round(landValue),
		BuildingValue:  math.Round(buildingValue),
		Adjustments: models.ValuationAdjustments{
			Bedrooms:      bedrooms,
			Bathrooms:     bathrooms,
			LocationTotal: math.Round(location),
		},
		ConfidenceLow:  roundThousand(total * (1 - confidenceSpread)),
		ConfidenceHigh: roundThousand(total * (1 + confidenceSpread)),
		PricePerSqM:    math.Round(total / req.LotArea),
	}

	s.log.Info("Valuation completed", map[string]interface{}{
		"zone_code":       req.ZoneCode,
		"lot_area":        req.LotArea,
		"building_area":   req.BuildingArea,
		"estimated_value": result.EstimatedValue,
	})

	return result, nil
}

// landValuePerSqM looks up the land value for the normalized zone code,
// falling back to the base zone and then to the flat default.
func landValuePerSqM(code models.ZoneCode) float64 {
	if v, ok := baseLandValues[code.Normalized()]; ok {
		return v
	}
	if v, ok := baseLandValues[code.BaseZone]; ok {
		return v
	}
	return defaultLandValuePerSqM
}

func roundThousand(v float64) float64 {
	return math.Round(v/1000) * 1000
}
