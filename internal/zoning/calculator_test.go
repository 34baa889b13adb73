package zoning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stwalsh4118/groundwork/api/internal/models"
)

// MockBandSource is a mock implementation of BandSource for testing
type MockBandSource struct {
	mock.Mock
}

func (m *MockBandSource) FARByLotArea(lotArea float64) (float64, bool) {
	args := m.Called(lotArea)
	return args.Get(0).(float64), args.Bool(1)
}

func (m *MockBandSource) CoverageByZone(baseZone string, buildingHeight float64) (float64, bool) {
	args := m.Called(baseZone, buildingHeight)
	return args.Get(0).(float64), args.Bool(1)
}

// emptyBands never resolves; for tests that stay off the lookup tables.
type emptyBands struct{}

func (emptyBands) FARByLotArea(float64) (float64, bool)           { return 0, false }
func (emptyBands) CoverageByZone(string, float64) (float64, bool) { return 0, false }

func ruleSetFixture() *models.RuleSet {
	front := models.FixedSetback(7.5)
	rear := models.FixedSetback(7.5)
	side := models.FixedSetback(2.4)
	coverage := models.FractionLimit(0.35)

	return &models.RuleSet{
		ZoneCode:       models.ZoneCode{Raw: "RL3", BaseZone: "RL3"},
		ZoneName:       "Residential Low 3",
		Category:       models.CategoryResidentialLow,
		MinLotArea:     floatPtr(557.5),
		MinLotFrontage: floatPtr(18.0),
		FrontYard:      &front,
		RearYard:       &rear,
		InteriorSide:   &side,
		MaxHeight:      floatPtr(12.0),
		MaxLotCoverage: &coverage,
		PermittedUses:  []models.DwellingType{models.DwellingDetached},
	}
}

func TestCalculate_CompliantSite(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	site := models.SiteDimensions{
		LotArea:  600.0,
		Frontage: floatPtr(18.0),
		Depth:    floatPtr(33.0),
	}

	p := calc.Calculate(ruleSetFixture(), site)

	assert.True(t, p.MeetsMinimumRequirements)
	assert.Empty(t, p.Violations)

	// Usable frontage 18 - 2*2.4 = 13.2; usable depth 33 - 7.5 - 7.5 = 18.
	require.NotNil(t, p.Buildable.UsableFrontage)
	assert.InDelta(t, 13.2, *p.Buildable.UsableFrontage, 1e-9)
	require.NotNil(t, p.Buildable.UsableDepth)
	assert.InDelta(t, 18.0, *p.Buildable.UsableDepth, 1e-9)
	require.NotNil(t, p.Buildable.Area)
	assert.InDelta(t, 237.6, *p.Buildable.Area, 1e-6)
	require.NotNil(t, p.Buildable.EfficiencyRatio)
	assert.InDelta(t, 237.6/600.0, *p.Buildable.EfficiencyRatio, 1e-9)

	// Coverage: 35% of 600 m².
	require.NotNil(t, p.MaxCoveragePercent)
	assert.InDelta(t, 35.0, *p.MaxCoveragePercent, 1e-9)
	require.NotNil(t, p.MaxCoverageArea)
	assert.InDelta(t, 210.0, *p.MaxCoverageArea, 1e-9)
}

func TestCalculate_LotAreaViolation(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	site := models.SiteDimensions{
		LotArea:  400.0,
		Frontage: floatPtr(18.0),
		Depth:    floatPtr(22.0),
	}

	p := calc.Calculate(ruleSetFixture(), site)

	assert.False(t, p.MeetsMinimumRequirements)
	require.Len(t, p.Violations, 1)
	assert.Equal(t,
		"Lot area 400.0 m² (4306 sq ft) is below minimum 557.5 m² (6001 sq ft)",
		p.Violations[0])

	// Violations do not stop the rest of the computation.
	assert.NotNil(t, p.Buildable.Area)
	assert.NotNil(t, p.MaxCoverageArea)
}

func TestCalculate_FrontageViolation(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	site := models.SiteDimensions{
		LotArea:  600.0,
		Frontage: floatPtr(15.0),
		Depth:    floatPtr(40.0),
	}

	p := calc.Calculate(ruleSetFixture(), site)

	assert.False(t, p.MeetsMinimumRequirements)
	require.Len(t, p.Violations, 1)
	assert.Equal(t, "Lot frontage 15.0 m is below minimum 18.0 m", p.Violations[0])
}

func TestCalculate_UnknownFrontageWarnsNotPasses(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	site := models.SiteDimensions{LotArea: 600.0}

	p := calc.Calculate(ruleSetFixture(), site)

	// Unknown frontage is a warning, never a violation and never a pass.
	assert.True(t, p.MeetsMinimumRequirements)
	assert.Empty(t, p.Violations)
	assert.Contains(t, p.Warnings,
		"Lot frontage not available - cannot verify minimum frontage requirements")
}

func TestCalculate_CornerMinimumsApply(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	rs := ruleSetFixture()
	rs.CornerMinLotArea = floatPtr(650.0)
	rs.CornerMinLotFrontage = floatPtr(20.0)

	site := models.SiteDimensions{
		LotArea:   600.0,
		Frontage:  floatPtr(18.0),
		Depth:     floatPtr(33.0),
		CornerLot: true,
	}

	p := calc.Calculate(rs, site)

	// 600 m² passes the interior minimum but not the corner minimum.
	assert.False(t, p.MeetsMinimumRequirements)
	assert.Len(t, p.Violations, 2)
}

func TestCalculate_CornerRearYardRelief(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	rs := ruleSetFixture()
	side := models.FixedSetback(4.2)
	rs.InteriorSide = &side
	rs.CornerAdjustments = &models.CornerAdjustments{
		RearYardReducedTo:    floatPtr(3.5),
		RequiresInteriorSide: floatPtr(3.0),
	}

	site := models.SiteDimensions{
		LotArea:   700.0,
		Frontage:  floatPtr(20.0),
		Depth:     floatPtr(35.0),
		CornerLot: true,
	}

	p := calc.Calculate(rs, site)

	assert.True(t, p.Setbacks.CornerRearYardReduced)
	require.NotNil(t, p.Setbacks.RearYard)
	rear, ok := p.Setbacks.RearYard.Fixed()
	require.True(t, ok)
	assert.InDelta(t, 3.5, rear, 1e-9)

	// The default flankage applies when the zone tabulates none.
	require.NotNil(t, p.Setbacks.FlankageYard)
	flankage, ok := p.Setbacks.FlankageYard.Fixed()
	require.True(t, ok)
	assert.InDelta(t, 3.5, flankage, 1e-9)
}

func TestCalculate_CornerReliefRequiresInteriorSide(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	rs := ruleSetFixture() // interior side 2.4 < required 3.0
	rs.CornerAdjustments = &models.CornerAdjustments{
		RearYardReducedTo:    floatPtr(3.5),
		RequiresInteriorSide: floatPtr(3.0),
	}

	site := models.SiteDimensions{
		LotArea:   700.0,
		Frontage:  floatPtr(20.0),
		Depth:     floatPtr(35.0),
		CornerLot: true,
	}

	p := calc.Calculate(rs, site)

	assert.False(t, p.Setbacks.CornerRearYardReduced)
	rear, _ := p.Setbacks.RearYard.Numeric()
	assert.InDelta(t, 7.5, rear, 1e-9)
}

func TestCalculate_InteriorLotGetsNoFlankage(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	site := models.SiteDimensions{
		LotArea:  600.0,
		Frontage: floatPtr(18.0),
		Depth:    floatPtr(33.0),
	}

	p := calc.Calculate(ruleSetFixture(), site)

	assert.Nil(t, p.Setbacks.FlankageYard)
}

func TestCalculate_GarageRelaxationIsSeparate(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	rs := ruleSetFixture()
	rs.GarageAdjustments = &models.GarageAdjustments{
		InteriorSideReducedTo: floatPtr(1.2),
		AppliesTo:             "attached_garage",
	}

	site := models.SiteDimensions{
		LotArea:  600.0,
		Frontage: floatPtr(18.0),
		Depth:    floatPtr(33.0),
	}

	p := calc.Calculate(rs, site)

	require.NotNil(t, p.Setbacks.GarageInteriorSide)
	assert.InDelta(t, 1.2, *p.Setbacks.GarageInteriorSide, 1e-9)
	assert.Equal(t, "attached_garage", p.Setbacks.GarageAppliesTo)

	// The general interior side stays at its own value; the buildable
	// envelope never uses the garage figure.
	sideUsed := 18.0 - 2*2.4
	require.NotNil(t, p.Buildable.UsableFrontage)
	assert.InDelta(t, sideUsed, *p.Buildable.UsableFrontage, 1e-9)
}

func TestCalculate_SurveySetbackBlocksEnvelope(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	rs := ruleSetFixture()
	survey := models.SurveySetback()
	rs.FrontYard = &survey

	site := models.SiteDimensions{
		LotArea:  600.0,
		Frontage: floatPtr(18.0),
		Depth:    floatPtr(33.0),
	}

	p := calc.Calculate(rs, site)

	assert.Nil(t, p.Buildable.Area)
	assert.Equal(t,
		"Requires survey data for existing building setback calculation",
		p.Buildable.Note)
	assert.Contains(t, p.Warnings, p.Buildable.Note)
}

func TestCalculate_MissingDimensionsBlockEnvelope(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	site := models.SiteDimensions{LotArea: 600.0, Frontage: floatPtr(18.0)}

	p := calc.Calculate(ruleSetFixture(), site)

	assert.Nil(t, p.Buildable.Area)
	assert.Equal(t,
		"Lot frontage or depth not available - buildable area not computed",
		p.Buildable.Note)
}

func TestCalculate_IncompleteSetbacksBlockEnvelope(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	rs := ruleSetFixture()
	rs.RearYard = nil

	site := models.SiteDimensions{
		LotArea:  600.0,
		Frontage: floatPtr(18.0),
		Depth:    floatPtr(33.0),
	}

	p := calc.Calculate(rs, site)

	assert.Nil(t, p.Buildable.Area)
	assert.Equal(t,
		"Setback requirements incomplete - buildable area not computed",
		p.Buildable.Note)
}

func TestCalculate_NegativeEnvelopeClampsToZero(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	site := models.SiteDimensions{
		LotArea:  100.0,
		Frontage: floatPtr(4.0),  // 4 - 2*2.4 < 0
		Depth:    floatPtr(10.0), // 10 - 7.5 - 7.5 < 0
	}

	p := calc.Calculate(ruleSetFixture(), site)

	require.NotNil(t, p.Buildable.Area)
	assert.Zero(t, *p.Buildable.Area)
}

func TestCalculate_CoverageTableWithProvidedHeight(t *testing.T) {
	// Arrange
	bands := new(MockBandSource)
	bands.On("CoverageByZone", "RL1", 6.5).Return(0.30, true)
	calc := NewCalculator(bands)

	rs := ruleSetFixture()
	rs.ZoneCode = models.ZoneCode{Raw: "RL1-0", BaseZone: "RL1", Suffix: "-0"}
	coverage := models.TableLimit(models.TableCoverageByZone)
	rs.MaxLotCoverage = &coverage

	site := models.SiteDimensions{
		LotArea:        1000.0,
		Frontage:       floatPtr(30.0),
		Depth:          floatPtr(40.0),
		BuildingHeight: floatPtr(6.5),
	}

	// Act
	p := calc.Calculate(rs, site)

	// Assert: no assumption, so no height warning.
	require.NotNil(t, p.MaxCoverageArea)
	assert.InDelta(t, 300.0, *p.MaxCoverageArea, 1e-9)
	for _, w := range p.Warnings {
		assert.NotContains(t, w, "assumed")
	}
	bands.AssertExpectations(t)
}

func TestCalculate_CoverageAssumedHeightWarns(t *testing.T) {
	// Arrange: the 9.0 m assumption selects the reduced band value.
	bands := new(MockBandSource)
	bands.On("CoverageByZone", "RL1", 9.0).Return(0.25, true)
	bands.On("CoverageByZone", "RL1", 0.0).Return(0.30, true)
	calc := NewCalculator(bands)

	rs := ruleSetFixture()
	rs.ZoneCode = models.ZoneCode{Raw: "RL1-0", BaseZone: "RL1", Suffix: "-0"}
	coverage := models.TableLimit(models.TableCoverageByZone)
	rs.MaxLotCoverage = &coverage

	site := models.SiteDimensions{
		LotArea:  1000.0,
		Frontage: floatPtr(30.0),
		Depth:    floatPtr(40.0),
	}

	// Act
	p := calc.Calculate(rs, site)

	// Assert
	require.NotNil(t, p.MaxCoveragePercent)
	assert.InDelta(t, 25.0, *p.MaxCoveragePercent, 1e-9)
	assert.Contains(t, p.Warnings,
		"Building height not provided - assumed 9.0 m, which selects the reduced coverage value")
}

func TestCalculate_CoverageUngroupedZoneWarns(t *testing.T) {
	bands := new(MockBandSource)
	bands.On("CoverageByZone", "RL9", mock.Anything).Return(0.0, false)
	calc := NewCalculator(bands)

	rs := ruleSetFixture()
	rs.ZoneCode = models.ZoneCode{Raw: "RL9-0", BaseZone: "RL9", Suffix: "-0"}
	coverage := models.TableLimit(models.TableCoverageByZone)
	rs.MaxLotCoverage = &coverage

	p := calc.Calculate(rs, models.SiteDimensions{LotArea: 400.0})

	assert.Nil(t, p.MaxCoverageArea)
	assert.Contains(t, p.Warnings,
		"No lot coverage defined for zone RL9 in the coverage band table")
}

func TestCalculate_FloorAreaFromTable(t *testing.T) {
	bands := new(MockBandSource)
	bands.On("FARByLotArea", 1200.0).Return(0.35, true)
	calc := NewCalculator(bands)

	rs := ruleSetFixture()
	far := models.TableLimit(models.TableFARByLotArea)
	rs.MaxFloorAreaRatio = &far
	rs.MaxLotCoverage = nil

	p := calc.Calculate(rs, models.SiteDimensions{LotArea: 1200.0})

	require.NotNil(t, p.MaxFloorAreaRatio)
	assert.InDelta(t, 0.35, *p.MaxFloorAreaRatio, 1e-9)
	require.NotNil(t, p.MaxFloorArea)
	assert.InDelta(t, 420.0, *p.MaxFloorArea, 1e-9)
}

func TestCalculate_AbsoluteFloorAreaCapGoverns(t *testing.T) {
	calc := NewCalculator(emptyBands{})

	rs := ruleSetFixture()
	far := models.FractionLimit(0.75)
	rs.MaxFloorAreaRatio = &far
	rs.MaxFloorAreaAbsolute = floatPtr(355.0)
	rs.MaxLotCoverage = nil

	// 0.75 * 500 = 375, above the 355 m² cap.
	p := calc.Calculate(rs, models.SiteDimensions{LotArea: 500.0})

	require.NotNil(t, p.MaxFloorArea)
	assert.InDelta(t, 355.0, *p.MaxFloorArea, 1e-9)

	// Below the cap the ratio governs: 0.75 * 400 = 300.
	p = calc.Calculate(rs, models.SiteDimensions{LotArea: 400.0})
	require.NotNil(t, p.MaxFloorArea)
	assert.InDelta(t, 300.0, *p.MaxFloorArea, 1e-9)
}

func TestCalculate_DwellingDepthClampedToUsableDepth(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	rs := ruleSetFixture()
	rs.MaxDwellingDepth = floatPtr(20.0)

	// Usable depth 33 - 15 = 18 < 20, so the clamp applies.
	site := models.SiteDimensions{
		LotArea:  600.0,
		Frontage: floatPtr(18.0),
		Depth:    floatPtr(33.0),
	}
	p := calc.Calculate(rs, site)
	require.NotNil(t, p.MaxBuildingDepth)
	assert.InDelta(t, 18.0, *p.MaxBuildingDepth, 1e-9)

	// Deeper lot: the stated depth limit stands.
	site.Depth = floatPtr(45.0)
	p = calc.Calculate(rs, site)
	require.NotNil(t, p.MaxBuildingDepth)
	assert.InDelta(t, 20.0, *p.MaxBuildingDepth, 1e-9)
}

func TestCalculate_ClauseNotFoundWarning(t *testing.T) {
	calc := NewCalculator(emptyBands{})
	rs := ruleSetFixture()
	rs.ZoneCode.ClauseID = "SP:7"
	rs.ClauseNotFound = true

	p := calc.Calculate(rs, models.SiteDimensions{LotArea: 600.0})

	assert.Contains(t, p.Warnings,
		"Special provision SP:7 is not in the override registry - site-specific requirements could not be applied")
}

func TestEstimateUnits_ZoneGroups(t *testing.T) {
	tests := []struct {
		name      string
		baseZone  string
		lotArea   float64
		floorArea *float64
		want      int
	}{
		{"single family zone", "RL2", 900.0, floatPtr(400.0), 1},
		{"mixed zone below threshold", "RL7", 500.0, nil, 1},
		{"mixed zone at threshold", "RL7", 600.0, nil, 2},
		{"mixed zone above threshold", "RL9", 800.0, nil, 2},
		{"duplex zone regardless of size", "RL10", 300.0, nil, 2},
		{"linked zone capped at three", "RL11", 2000.0, floatPtr(600.0), 3},
		{"linked zone under cap", "RL11", 650.0, floatPtr(250.0), 2},
		{"uptown core capped at six", "RUC", 3000.0, floatPtr(900.0), 6},
		{"townhouse zone", "RM1", 1500.0, floatPtr(500.0), 5},
		{"apartment zone", "RM4", 2000.0, floatPtr(500.0), 10},
		{"high density", "RH", 2000.0, floatPtr(600.0), 10},
		{"no heuristic defaults to one", "XX9", 1000.0, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := estimateUnits(tt.baseZone, tt.lotArea, tt.floorArea)
			assert.Equal(t, tt.want, est.Count)
			assert.True(t, est.Advisory)
			assert.NotEmpty(t, est.Basis)
		})
	}
}
