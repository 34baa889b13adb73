package zoning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stwalsh4118/groundwork/api/internal/models"
)

func potentialFixture() *models.DevelopmentPotential {
	front := models.FixedSetback(7.5)
	return &models.DevelopmentPotential{
		ZoneCode: models.ZoneCode{Raw: "RL3", BaseZone: "RL3"},
		Setbacks: models.SetbackPlan{FrontYard: &front},
	}
}

func TestSynthesize_StandardMethod(t *testing.T) {
	p := potentialFixture()
	p.MaxCoveragePercent = floatPtr(35.0)
	p.MaxCoverageArea = floatPtr(210.0)

	a := Synthesize(p)

	assert.Equal(t, models.MethodStandard, a.Method)
	assert.Equal(t, 2, a.MaxFloors)
	assert.Equal(t, models.ConfidenceHigh, a.Confidence)

	// 210 m² * 10.764 = 2260.44 sq ft; two floors minus the deduction.
	require.NotNil(t, a.LotCoverageSqFt)
	assert.InDelta(t, 2260.44, *a.LotCoverageSqFt, 0.01)
	require.NotNil(t, a.GrossFloorAreaSqFt)
	assert.InDelta(t, 4520.88, *a.GrossFloorAreaSqFt, 0.01)
	require.NotNil(t, a.FinalBuildableSqFt)
	assert.InDelta(t, 3770.88, *a.FinalBuildableSqFt, 0.01)
	assert.Contains(t, a.Note, "RL3")
}

func TestSynthesize_SingleStoreyZoneCapsFloors(t *testing.T) {
	p := potentialFixture()
	p.MaxCoveragePercent = floatPtr(35.0)
	p.MaxCoverageArea = floatPtr(210.0)
	p.MaxStoreys = intPtr(1)

	a := Synthesize(p)

	assert.Equal(t, 1, a.MaxFloors)
	require.NotNil(t, a.GrossFloorAreaSqFt)
	assert.InDelta(t, 2260.44, *a.GrossFloorAreaSqFt, 0.01)
}

func TestSynthesize_FARFallbackSkipsFloorMultiplier(t *testing.T) {
	p := potentialFixture()
	p.MaxFloorArea = floatPtr(300.0)

	a := Synthesize(p)

	assert.Equal(t, models.MethodFloorAreaRatio, a.Method)

	// The ratio already expresses total floor area: no doubling.
	require.NotNil(t, a.GrossFloorAreaSqFt)
	assert.InDelta(t, 300.0*models.SqMToSqFt, *a.GrossFloorAreaSqFt, 0.01)
	require.NotNil(t, a.FinalBuildableSqFt)
	assert.InDelta(t, 300.0*models.SqMToSqFt-750.0, *a.FinalBuildableSqFt, 0.01)
}

func TestSynthesize_CoveragePreferredOverFAR(t *testing.T) {
	p := potentialFixture()
	p.MaxCoveragePercent = floatPtr(35.0)
	p.MaxCoverageArea = floatPtr(210.0)
	p.MaxFloorArea = floatPtr(300.0)

	a := Synthesize(p)

	// The methods are never mixed; coverage wins when both exist.
	assert.Equal(t, models.MethodStandard, a.Method)
}

func TestSynthesize_SurveyDependencyDowngradesConfidence(t *testing.T) {
	p := potentialFixture()
	survey := models.SurveySetback()
	p.Setbacks.FrontYard = &survey
	p.MaxCoveragePercent = floatPtr(30.0)
	p.MaxCoverageArea = floatPtr(300.0)

	a := Synthesize(p)

	assert.Equal(t, models.ConfidenceModerate, a.Confidence)
	assert.Contains(t, a.Note, "survey")
}

func TestSynthesize_BuildableNoteDowngradesConfidence(t *testing.T) {
	p := potentialFixture()
	p.Buildable.Note = "Lot frontage or depth not available - buildable area not computed"
	p.MaxFloorArea = floatPtr(300.0)

	a := Synthesize(p)

	assert.Equal(t, models.MethodFloorAreaRatio, a.Method)
	assert.Equal(t, models.ConfidenceModerate, a.Confidence)
}

func TestSynthesize_InsufficientData(t *testing.T) {
	a := Synthesize(potentialFixture())

	assert.Equal(t, models.ConfidenceLow, a.Confidence)
	assert.Equal(t, "Insufficient data for calculation", a.Note)
	assert.Nil(t, a.FinalBuildableSqFt)
}

func TestSynthesize_DeductionNeverGoesNegative(t *testing.T) {
	p := potentialFixture()
	p.MaxCoveragePercent = floatPtr(10.0)
	p.MaxCoverageArea = floatPtr(20.0) // 20 m² ≈ 215 sq ft * 2 floors < 750

	a := Synthesize(p)

	require.NotNil(t, a.FinalBuildableSqFt)
	assert.Zero(t, *a.FinalBuildableSqFt)
}

func TestSynthesize_EnhancedInfillNote(t *testing.T) {
	p := potentialFixture()
	p.ZoneCode = models.ZoneCode{Raw: "RL1-0", BaseZone: "RL1", Suffix: "-0"}
	p.MaxCoveragePercent = floatPtr(25.0)
	p.MaxCoverageArea = floatPtr(300.0)

	a := Synthesize(p)

	assert.Contains(t, a.Note, "enhanced-infill")
}
