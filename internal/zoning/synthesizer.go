package zoning

import (
	"fmt"
	"math"

	"github.com/stwalsh4118/groundwork/api/internal/models"
)

const (
	// defaultDeductionSqFt approximates unusable circulation and
	// mechanical space deducted from the gross floor area.
	defaultDeductionSqFt = 750.0

	// practicalMaxFloors caps the storeys multiplier; two-storey is the
	// practical ceiling for the covered residential typologies.
	practicalMaxFloors = 2
)

// Synthesize reduces a DevelopmentPotential to a single buildable
// square-footage figure with its calculation trail.
//
// The standard method multiplies the coverage area by the assumed floor
// count and applies the fixed deduction. When coverage is unavailable it
// falls back to the floor-area ratio, which already expresses total floor
// area, so the floors multiplication is skipped; the method tag records
// which derivation ran and the two are never mixed. Confidence drops to
// moderate whenever an upstream value rested on a survey-required setback
// or a missing dimension.
func Synthesize(p *models.DevelopmentPotential) *models.FinalBuildableAnalysis {
	a := &models.FinalBuildableAnalysis{
		Method:        models.MethodStandard,
		MaxFloors:     practicalMaxFloors,
		DeductionSqFt: defaultDeductionSqFt,
		Confidence:    models.ConfidenceHigh,
	}

	degraded := p.HasSurveyDependency() || p.Buildable.Note != ""

	switch {
	case p.MaxCoverageArea != nil:
		coverageM2 := *p.MaxCoverageArea
		coverageSqFt := coverageM2 * models.SqMToSqFt
		a.LotCoverageM2 = &coverageM2
		a.LotCoverageSqFt = &coverageSqFt

		if p.MaxStoreys != nil && *p.MaxStoreys < practicalMaxFloors {
			a.MaxFloors = *p.MaxStoreys
		}

		grossSqFt := coverageSqFt * float64(a.MaxFloors)
		setFloorAreas(a, grossSqFt)

		if degraded {
			a.Confidence = models.ConfidenceModerate
			a.Note = "Coverage-based estimate; " + degradeReason(p)
		} else if p.ZoneCode.HasSuffix() {
			a.Note = fmt.Sprintf(
				"Based on enhanced-infill regulations and %.0f%% lot coverage",
				*p.MaxCoveragePercent)
		} else {
			a.Note = fmt.Sprintf(
				"Based on %s zoning regulations and %.0f%% lot coverage",
				p.ZoneCode.Normalized(), *p.MaxCoveragePercent)
		}

	case p.MaxFloorArea != nil:
		a.Method = models.MethodFloorAreaRatio
		grossSqFt := *p.MaxFloorArea * models.SqMToSqFt
		setFloorAreas(a, grossSqFt)

		a.Note = fmt.Sprintf("Based on floor-area ratio for %s", p.ZoneCode.Normalized())
		if degraded {
			a.Confidence = models.ConfidenceModerate
			a.Note = "Floor-area ratio estimate; " + degradeReason(p)
		}

	default:
		a.Confidence = models.ConfidenceLow
		a.Note = "Insufficient data for calculation"
	}

	return a
}

func setFloorAreas(a *models.FinalBuildableAnalysis, grossSqFt float64) {
	grossM2 := grossSqFt / models.SqMToSqFt
	a.GrossFloorAreaSqFt = &grossSqFt
	a.GrossFloorAreaM2 = &grossM2

	finalSqFt := math.Max(grossSqFt-a.DeductionSqFt, 0)
	finalM2 := finalSqFt / models.SqMToSqFt
	a.FinalBuildableSqFt = &finalSqFt
	a.FinalBuildableM2 = &finalM2
}

func degradeReason(p *models.DevelopmentPotential) string {
	if p.HasSurveyDependency() {
		return "front yard setback requires survey data for a precise figure"
	}
	if p.Buildable.Note != "" {
		return p.Buildable.Note
	}
	return "upstream data incomplete"
}
