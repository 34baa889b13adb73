package zoning

import (
	"errors"
	"fmt"

	"github.com/stwalsh4118/groundwork/api/internal/models"
)

// ErrUnknownZone is returned when the base zone is not in the rule table.
// It is the only way resolution fails; missing suffix tables and missing
// override clauses degrade to warnings on the resolved RuleSet instead.
var ErrUnknownZone = errors.New("unknown zone")

// RuleSource supplies baseline rules and override clauses. *rules.Table
// implements it; tests substitute mocks.
type RuleSource interface {
	BaselineRules(baseZone string) *models.ZoneRules
	OverrideClause(id string) *models.OverrideClause
}

// Resolver merges baseline rules with density-suffix modifications and
// override-clause patches in fixed precedence order: override wins over
// suffix, suffix wins over baseline.
type Resolver struct {
	src RuleSource
}

// NewResolver creates a Resolver over the given rule source.
func NewResolver(src RuleSource) *Resolver {
	return &Resolver{src: src}
}

// Resolve parses a raw zone code and produces the flattened RuleSet for
// it. Table-reference sentinels (coverage/FAR by area band) stay deferred;
// they depend on per-parcel data the calculator has and this stage does not.
func (r *Resolver) Resolve(raw string) (*models.RuleSet, error) {
	code := ParseZoneCode(raw)
	if code.IsUnknown() {
		return nil, fmt.Errorf("%w: no base zone in %q", ErrUnknownZone, raw)
	}

	baseline := r.src.BaselineRules(code.BaseZone)
	if baseline == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownZone, code.BaseZone)
	}

	rs := &models.RuleSet{
		ZoneCode: code,
		ZoneName: baseline.Name,
		Category: baseline.Category,

		MinLotArea:           cloneFloat(baseline.MinLotArea),
		MinLotFrontage:       cloneFloat(baseline.MinLotFrontage),
		CornerMinLotArea:     cloneFloat(baseline.CornerMinLotArea),
		CornerMinLotFrontage: cloneFloat(baseline.CornerMinLotFrontage),

		FrontYard:    cloneSetback(baseline.Setbacks.FrontYard),
		RearYard:     cloneSetback(baseline.Setbacks.RearYard),
		InteriorSide: cloneSetback(baseline.Setbacks.InteriorSide),
		FlankageYard: cloneSetback(baseline.Setbacks.FlankageYard),

		MaxHeight:        cloneFloat(baseline.MaxHeight),
		MaxStoreys:       cloneInt(baseline.MaxStoreys),
		MaxDwellingDepth: cloneFloat(baseline.MaxDwellingDepth),

		MaxLotCoverage:       cloneRatio(baseline.MaxLotCoverage),
		MaxFloorAreaRatio:    cloneRatio(baseline.MaxFloorAreaRatio),
		MaxFloorAreaAbsolute: cloneFloat(baseline.MaxFloorAreaAbsolute),

		DuplexMinLotArea:  cloneFloat(baseline.DuplexMinLotArea),
		MinLotAreaPerUnit: cloneFloat(baseline.MinLotAreaPerUnit),

		PermittedUses: append([]models.DwellingType(nil), baseline.PermittedUses...),
	}

	if baseline.CornerAdjustments != nil {
		adj := *baseline.CornerAdjustments
		rs.CornerAdjustments = &adj
	}
	if baseline.GarageAdjustments != nil {
		adj := *baseline.GarageAdjustments
		rs.GarageAdjustments = &adj
	}

	if code.HasSuffix() {
		applySuffix(rs, baseline)
	}

	if code.HasClause() {
		clause := r.src.OverrideClause(code.ClauseID)
		if clause == nil {
			rs.ClauseNotFound = true
		} else if !clause.Overrides.IsZero() {
			clause.Overrides.Apply(rs)
		}
	}

	return rs, nil
}

// applySuffix replaces each baseline value that has an enhanced-infill
// counterpart. Only the keys the by-law redefines for -0 zones change;
// everything else keeps its baseline value.
func applySuffix(rs *models.RuleSet, baseline *models.ZoneRules) {
	if baseline.MaxHeightSuffix0 != nil {
		rs.MaxHeight = cloneFloat(baseline.MaxHeightSuffix0)
	}
	if baseline.MaxStoreysSuffix0 != nil {
		rs.MaxStoreys = cloneInt(baseline.MaxStoreysSuffix0)
	}
	if baseline.MaxLotCoverageSuffix0 != nil {
		rs.MaxLotCoverage = cloneRatio(baseline.MaxLotCoverageSuffix0)
	}
	if baseline.MaxFloorAreaRatioSuffix0 != nil {
		rs.MaxFloorAreaRatio = cloneRatio(baseline.MaxFloorAreaRatioSuffix0)
	}
	if baseline.Setbacks.FrontYardSuffix0 != nil {
		rs.FrontYard = cloneSetback(baseline.Setbacks.FrontYardSuffix0)
	}
	rs.SuffixApplied = true
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSetback(p *models.Setback) *models.Setback {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneRatio(p *models.RatioLimit) *models.RatioLimit {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
