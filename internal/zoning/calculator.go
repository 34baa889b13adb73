package zoning

import (
	"fmt"
	"math"
	"strings"

	"github.com/stwalsh4118/groundwork/api/internal/models"
)

const (
	// assumedBuildingHeight is used for the coverage band lookup when no
	// building height is supplied; nearly all enhanced-infill zones cap
	// height at 9.0 m.
	assumedBuildingHeight = 9.0

	// cornerFlankageDefault applies on corner lots in zones that do not
	// tabulate a flankage yard of their own.
	cornerFlankageDefault = 3.5

	// mixedUseAreaThreshold splits the one-vs-two unit estimate in the
	// mixed detached/semi-detached zones.
	mixedUseAreaThreshold = 600.0
)

// BandSource supplies the area-band lookups deferred by table-reference
// rule sentinels. *rules.Table implements it; tests substitute mocks.
type BandSource interface {
	FARByLotArea(lotArea float64) (float64, bool)
	CoverageByZone(baseZone string, buildingHeight float64) (float64, bool)
}

// Calculator derives the development envelope for one parcel from a
// resolved RuleSet and the site dimensions. It never fails on partial
// input: every output field degrades independently to nil plus an
// explanatory warning, because unknown data must not be treated as
// compliant data.
type Calculator struct {
	bands BandSource
}

// NewCalculator creates a Calculator over the given band source.
func NewCalculator(bands BandSource) *Calculator {
	return &Calculator{bands: bands}
}

// Calculate computes setbacks, buildable envelope, coverage and floor-area
// limits, dwelling depth, and the advisory unit estimate. Violations
// record hard constraint failures without stopping the remaining steps;
// the caller needs the full picture even when non-compliant.
func (c *Calculator) Calculate(rs *models.RuleSet, site models.SiteDimensions) *models.DevelopmentPotential {
	p := &models.DevelopmentPotential{
		ZoneCode:                 rs.ZoneCode,
		ZoneName:                 rs.ZoneName,
		Category:                 rs.Category,
		Site:                     site,
		MeetsMinimumRequirements: true,
		Violations:               []string{},
		Warnings:                 []string{},
		PermittedUses:            rs.PermittedUses,
		MaxHeight:                rs.MaxHeight,
		MaxStoreys:               rs.MaxStoreys,
	}

	if rs.ClauseNotFound {
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"Special provision %s is not in the override registry - site-specific requirements could not be applied",
			rs.ZoneCode.ClauseID))
	}

	c.checkMinimums(rs, site, p)
	c.resolveSetbacks(rs, site, p)
	c.computeBuildable(site, p)
	c.resolveCoverage(rs, site, p)
	c.resolveFloorArea(rs, site, p)
	c.resolveDwellingDepth(rs, p)
	p.Units = estimateUnits(rs.ZoneCode.BaseZone, site.LotArea, p.MaxFloorArea)

	return p
}

// checkMinimums compares lot area and frontage against the zone minimums.
// A known value below the minimum is a violation; an unknown frontage is a
// warning, never a silent pass.
func (c *Calculator) checkMinimums(rs *models.RuleSet, site models.SiteDimensions, p *models.DevelopmentPotential) {
	minArea := rs.MinLotArea
	minFrontage := rs.MinLotFrontage
	if site.CornerLot {
		if rs.CornerMinLotArea != nil {
			minArea = rs.CornerMinLotArea
		}
		if rs.CornerMinLotFrontage != nil {
			minFrontage = rs.CornerMinLotFrontage
		}
	}

	if minArea != nil && site.LotArea < *minArea {
		p.MeetsMinimumRequirements = false
		p.Violations = append(p.Violations, fmt.Sprintf(
			"Lot area %.1f m² (%.0f sq ft) is below minimum %.1f m² (%.0f sq ft)",
			site.LotArea, site.LotArea*models.SqMToSqFt,
			*minArea, *minArea*models.SqMToSqFt))
	}

	if minFrontage != nil {
		if frontage, ok := site.KnownFrontage(); ok {
			if frontage < *minFrontage {
				p.MeetsMinimumRequirements = false
				p.Violations = append(p.Violations, fmt.Sprintf(
					"Lot frontage %.1f m is below minimum %.1f m",
					frontage, *minFrontage))
			}
		} else {
			p.Warnings = append(p.Warnings,
				"Lot frontage not available - cannot verify minimum frontage requirements")
		}
	}
}

// resolveSetbacks assembles the per-yard plan: corner-lot rear relief
// when the interior side meets the stated minimum, flankage on corner
// lots only, and the garage relaxation as its own field.
func (c *Calculator) resolveSetbacks(rs *models.RuleSet, site models.SiteDimensions, p *models.DevelopmentPotential) {
	plan := models.SetbackPlan{
		FrontYard:    rs.FrontYard,
		RearYard:     rs.RearYard,
		InteriorSide: rs.InteriorSide,
	}

	if site.CornerLot {
		if adj := rs.CornerAdjustments; adj != nil && adj.RearYardReducedTo != nil {
			required := 3.0
			if adj.RequiresInteriorSide != nil {
				required = *adj.RequiresInteriorSide
			}
			if side, ok := numericOf(rs.InteriorSide); ok && side >= required {
				reduced := models.FixedSetback(*adj.RearYardReducedTo)
				plan.RearYard = &reduced
				plan.CornerRearYardReduced = true
			}
		}

		if rs.FlankageYard != nil {
			plan.FlankageYard = rs.FlankageYard
		} else {
			flankage := models.FixedSetback(cornerFlankageDefault)
			plan.FlankageYard = &flankage
		}
	}

	if g := rs.GarageAdjustments; g != nil && g.InteriorSideReducedTo != nil {
		reduced := *g.InteriorSideReducedTo
		plan.GarageInteriorSide = &reduced
		plan.GarageAppliesTo = g.AppliesTo
	}

	p.Setbacks = plan
}

// computeBuildable derives the envelope geometry. Any survey-dependent
// setback or missing dimension leaves the figures nil with a note; a
// fabricated zero would read as "nothing can be built" which is not what
// missing data means.
func (c *Calculator) computeBuildable(site models.SiteDimensions, p *models.DevelopmentPotential) {
	var ba models.BuildableArea

	front := p.Setbacks.FrontYard
	rear := p.Setbacks.RearYard
	side := p.Setbacks.InteriorSide

	frontage, frontageKnown := site.KnownFrontage()
	depth, depthKnown := site.KnownDepth()

	switch {
	case front == nil || rear == nil || side == nil:
		ba.Note = "Setback requirements incomplete - buildable area not computed"
		p.Warnings = append(p.Warnings, ba.Note)
	case front.RequiresSurvey() || rear.RequiresSurvey() || side.RequiresSurvey():
		ba.Note = "Requires survey data for existing building setback calculation"
		p.Warnings = append(p.Warnings, ba.Note)
	case !frontageKnown || !depthKnown:
		ba.Note = "Lot frontage or depth not available - buildable area not computed"
		p.Warnings = append(p.Warnings, ba.Note)
	default:
		frontVal, _ := front.Numeric()
		rearVal, _ := rear.Numeric()
		sideVal, _ := side.Numeric()

		usableFrontage := math.Max(frontage-2*sideVal, 0)
		usableDepth := math.Max(depth-frontVal-rearVal, 0)
		area := usableFrontage * usableDepth

		ba.UsableFrontage = &usableFrontage
		ba.UsableDepth = &usableDepth
		ba.Area = &area
		if site.LotArea > 0 {
			efficiency := area / site.LotArea
			ba.EfficiencyRatio = &efficiency
		}
	}

	p.Buildable = ba
}

// resolveCoverage resolves the lot coverage limit, going through the
// zone-group coverage band when the rule defers to the table. The band
// splits on building height; when the 9.0 m assumption (rather than a
// supplied height) selects the reduced value, that is worth a warning.
func (c *Calculator) resolveCoverage(rs *models.RuleSet, site models.SiteDimensions, p *models.DevelopmentPotential) {
	if rs.MaxLotCoverage == nil {
		return
	}

	var fraction float64
	switch rs.MaxLotCoverage.Kind() {
	case models.RatioFraction:
		fraction, _ = rs.MaxLotCoverage.Fraction()

	case models.RatioTable:
		height := assumedBuildingHeight
		assumed := true
		if site.BuildingHeight != nil && *site.BuildingHeight > 0 {
			height = *site.BuildingHeight
			assumed = false
		}

		resolved, ok := c.bands.CoverageByZone(rs.ZoneCode.BaseZone, height)
		if !ok {
			p.Warnings = append(p.Warnings, fmt.Sprintf(
				"No lot coverage defined for zone %s in the coverage band table",
				rs.ZoneCode.BaseZone))
			return
		}
		fraction = resolved

		if assumed {
			if lowHeight, ok := c.bands.CoverageByZone(rs.ZoneCode.BaseZone, 0); ok && lowHeight != resolved {
				p.Warnings = append(p.Warnings, fmt.Sprintf(
					"Building height not provided - assumed %.1f m, which selects the reduced coverage value",
					assumedBuildingHeight))
			}
		}

	default:
		return
	}

	percent := fraction * 100
	area := fraction * site.LotArea
	p.MaxCoveragePercent = &percent
	p.MaxCoverageArea = &area
}

// resolveFloorArea resolves the floor-area ratio, going through the
// Table 6.4.1 area bands when deferred. An absolute floor-area cap, where
// the zone defines one, governs when it is the lesser figure.
func (c *Calculator) resolveFloorArea(rs *models.RuleSet, site models.SiteDimensions, p *models.DevelopmentPotential) {
	if rs.MaxFloorAreaRatio == nil {
		if rs.MaxFloorAreaAbsolute != nil {
			capped := *rs.MaxFloorAreaAbsolute
			p.MaxFloorArea = &capped
		}
		return
	}

	var ratio float64
	switch rs.MaxFloorAreaRatio.Kind() {
	case models.RatioFraction:
		ratio, _ = rs.MaxFloorAreaRatio.Fraction()

	case models.RatioTable:
		resolved, ok := c.bands.FARByLotArea(site.LotArea)
		if !ok {
			p.Warnings = append(p.Warnings,
				"No floor-area ratio band matches the lot area")
			return
		}
		ratio = resolved

	default:
		return
	}

	p.MaxFloorAreaRatio = &ratio

	floorArea := ratio * site.LotArea
	if rs.MaxFloorAreaAbsolute != nil && *rs.MaxFloorAreaAbsolute < floorArea {
		floorArea = *rs.MaxFloorAreaAbsolute
	}
	p.MaxFloorArea = &floorArea
}

// resolveDwellingDepth clamps the stated dwelling depth to the usable
// depth after setbacks when that depth is known and positive.
func (c *Calculator) resolveDwellingDepth(rs *models.RuleSet, p *models.DevelopmentPotential) {
	if rs.MaxDwellingDepth == nil {
		return
	}

	limit := *rs.MaxDwellingDepth
	if ud := p.Buildable.UsableDepth; ud != nil && *ud > 0 && *ud < limit {
		limit = *ud
	}
	p.MaxBuildingDepth = &limit
}

// estimateUnits is the zone-group unit-count heuristic. It is advisory,
// not a regulatory determination, and is tagged as such in the result.
func estimateUnits(baseZone string, lotArea float64, maxFloorArea *float64) models.UnitEstimate {
	est := models.UnitEstimate{Count: 1, Advisory: true}

	floorArea := 0.0
	if maxFloorArea != nil {
		floorArea = *maxFloorArea
	}

	switch {
	case baseZone == "RL1" || baseZone == "RL2" || baseZone == "RL3" ||
		baseZone == "RL4" || baseZone == "RL5" || baseZone == "RL6":
		est.Basis = "single-family zone"

	case baseZone == "RL7" || baseZone == "RL8" || baseZone == "RL9":
		est.Basis = fmt.Sprintf("mixed detached/semi-detached zone, %.0f m² lot area threshold", mixedUseAreaThreshold)
		if lotArea >= mixedUseAreaThreshold {
			est.Count = 2
		}

	case baseZone == "RL10":
		est.Count = 2
		est.Basis = "duplex-designated zone"

	case baseZone == "RL11":
		est.Basis = "linked-dwelling zone at ~120 m² per unit, capped at 3"
		if floorArea > 0 {
			est.Count = min(int(floorArea/120), 3)
		}

	case baseZone == "RUC":
		est.Basis = "uptown core zone at ~80 m² per unit, capped at 6"
		if floorArea > 0 {
			est.Count = min(int(floorArea/80), 6)
		}

	case strings.HasPrefix(baseZone, "RM"):
		multipliers := map[string]float64{"RM1": 1, "RM2": 1.2, "RM3": 1.5, "RM4": 2}
		multiplier, ok := multipliers[baseZone]
		if !ok {
			multiplier = 1
		}
		est.Basis = fmt.Sprintf("medium-density zone at %.1f units per 100 m² floor area", multiplier)
		if floorArea > 0 {
			est.Count = int(floorArea / 100 * multiplier)
		}

	case baseZone == "RH":
		est.Basis = "high-density zone at ~60 m² per unit"
		if floorArea > 0 {
			est.Count = int(floorArea / 60)
		}

	default:
		est.Basis = "no unit heuristic defined for zone group"
	}

	return est
}

func numericOf(s *models.Setback) (float64, bool) {
	if s == nil {
		return 0, false
	}
	return s.Numeric()
}
