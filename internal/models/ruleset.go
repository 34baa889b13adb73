package models

// SetbackRules holds the yard requirements of one zone as tabulated,
// including the enhanced-infill variants where the by-law defines them.
type SetbackRules struct {
	FrontYard        *Setback `json:"front_yard,omitempty"`
	FrontYardSuffix0 *Setback `json:"front_yard_suffix_0,omitempty"`
	RearYard         *Setback `json:"rear_yard,omitempty"`
	InteriorSide     *Setback `json:"interior_side,omitempty"`
	FlankageYard     *Setback `json:"flankage_yard,omitempty"`
}

// CornerAdjustments describes the rear-yard relief available on corner
// lots. The reduction applies only when the interior side yard meets the
// stated minimum.
type CornerAdjustments struct {
	RearYardReducedTo    *float64 `json:"rear_yard_reduced_to,omitempty"`
	RequiresInteriorSide *float64 `json:"requires_interior_side,omitempty"`
}

// GarageAdjustments describes the interior-side relaxation available for
// attached-garage placement. The reduced value applies only to the
// structure named in AppliesTo and never replaces the general interior
// side requirement.
type GarageAdjustments struct {
	InteriorSideReducedTo *float64 `json:"interior_side_reduced_to,omitempty"`
	AppliesTo             string   `json:"applies_to,omitempty"`
}

// ZoneRules is the baseline rule record for one base zone, exactly as
// tabulated. Nullable numerics use pointers so "not regulated" is
// distinguishable from zero. Enhanced-infill counterparts sit alongside
// their baseline fields and are applied by the resolver when the suffix
// is present.
type ZoneRules struct {
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	Category ZoneCategory `json:"category"`

	MinLotArea           *float64 `json:"min_lot_area,omitempty"`
	MinLotFrontage       *float64 `json:"min_lot_frontage,omitempty"`
	CornerMinLotArea     *float64 `json:"corner_min_lot_area,omitempty"`
	CornerMinLotFrontage *float64 `json:"corner_min_lot_frontage,omitempty"`

	Setbacks SetbackRules `json:"setbacks"`

	MaxHeight         *float64 `json:"max_height,omitempty"`
	MaxHeightSuffix0  *float64 `json:"max_height_suffix_0,omitempty"`
	MaxStoreys        *int     `json:"max_storeys,omitempty"`
	MaxStoreysSuffix0 *int     `json:"max_storeys_suffix_0,omitempty"`
	MaxDwellingDepth  *float64 `json:"max_dwelling_depth,omitempty"`

	MaxLotCoverage           *RatioLimit `json:"max_lot_coverage,omitempty"`
	MaxLotCoverageSuffix0    *RatioLimit `json:"max_lot_coverage_suffix_0,omitempty"`
	MaxFloorAreaRatio        *RatioLimit `json:"max_floor_area_ratio,omitempty"`
	MaxFloorAreaRatioSuffix0 *RatioLimit `json:"max_floor_area_ratio_suffix_0,omitempty"`

	// MaxFloorAreaAbsolute caps total floor area in m² regardless of the
	// ratio limit (the lesser of the two governs).
	MaxFloorAreaAbsolute *float64 `json:"max_floor_area_absolute,omitempty"`

	// DuplexMinLotArea is the lot area below which the duplex use is not
	// available in zones that otherwise permit it.
	DuplexMinLotArea *float64 `json:"duplex_min_lot_area,omitempty"`
	// MinLotAreaPerUnit sizes multi-unit developments in the zones that
	// regulate per-unit lot area.
	MinLotAreaPerUnit *float64 `json:"min_lot_area_per_unit,omitempty"`

	PermittedUses []DwellingType `json:"permitted_uses,omitempty"`

	CornerAdjustments *CornerAdjustments `json:"corner_lot_adjustments,omitempty"`
	GarageAdjustments *GarageAdjustments `json:"garage_adjustments,omitempty"`
}

// RulePatch is a structured partial update over a resolved RuleSet. Only
// non-nil fields are applied; precedence is decided by the caller, not by
// the patch.
type RulePatch struct {
	MinLotArea        *float64       `json:"min_lot_area,omitempty"`
	MinLotFrontage    *float64       `json:"min_lot_frontage,omitempty"`
	FrontYard         *Setback       `json:"front_yard,omitempty"`
	RearYard          *Setback       `json:"rear_yard,omitempty"`
	InteriorSide      *Setback       `json:"interior_side,omitempty"`
	FlankageYard      *Setback       `json:"flankage_yard,omitempty"`
	MaxHeight         *float64       `json:"max_height,omitempty"`
	MaxStoreys        *int           `json:"max_storeys,omitempty"`
	MaxDwellingDepth  *float64       `json:"max_dwelling_depth,omitempty"`
	MaxLotCoverage    *RatioLimit    `json:"max_lot_coverage,omitempty"`
	MaxFloorAreaRatio *RatioLimit    `json:"max_floor_area_ratio,omitempty"`
	PermittedUses     []DwellingType `json:"permitted_uses,omitempty"`
}

// IsZero reports whether the patch defines no overrides at all.
func (p RulePatch) IsZero() bool {
	return p.MinLotArea == nil &&
		p.MinLotFrontage == nil &&
		p.FrontYard == nil &&
		p.RearYard == nil &&
		p.InteriorSide == nil &&
		p.FlankageYard == nil &&
		p.MaxHeight == nil &&
		p.MaxStoreys == nil &&
		p.MaxDwellingDepth == nil &&
		p.MaxLotCoverage == nil &&
		p.MaxFloorAreaRatio == nil &&
		len(p.PermittedUses) == 0
}

// Apply overwrites the RuleSet fields the patch defines, field by field.
// Fields the patch leaves nil keep their current values.
func (p RulePatch) Apply(rs *RuleSet) {
	if p.MinLotArea != nil {
		rs.MinLotArea = cloneFloat(p.MinLotArea)
	}
	if p.MinLotFrontage != nil {
		rs.MinLotFrontage = cloneFloat(p.MinLotFrontage)
	}
	if p.FrontYard != nil {
		rs.FrontYard = cloneSetback(p.FrontYard)
	}
	if p.RearYard != nil {
		rs.RearYard = cloneSetback(p.RearYard)
	}
	if p.InteriorSide != nil {
		rs.InteriorSide = cloneSetback(p.InteriorSide)
	}
	if p.FlankageYard != nil {
		rs.FlankageYard = cloneSetback(p.FlankageYard)
	}
	if p.MaxHeight != nil {
		rs.MaxHeight = cloneFloat(p.MaxHeight)
	}
	if p.MaxStoreys != nil {
		rs.MaxStoreys = cloneInt(p.MaxStoreys)
	}
	if p.MaxDwellingDepth != nil {
		rs.MaxDwellingDepth = cloneFloat(p.MaxDwellingDepth)
	}
	if p.MaxLotCoverage != nil {
		rs.MaxLotCoverage = cloneRatio(p.MaxLotCoverage)
	}
	if p.MaxFloorAreaRatio != nil {
		rs.MaxFloorAreaRatio = cloneRatio(p.MaxFloorAreaRatio)
	}
	if len(p.PermittedUses) > 0 {
		rs.PermittedUses = append([]DwellingType(nil), p.PermittedUses...)
	}
}

// OverrideClause is a site-specific regulatory exception keyed by clause
// id (e.g. "SP:3"). Loaded once from the rule dataset; read-only after.
type OverrideClause struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Overrides   RulePatch `json:"overrides"`
}

// RuleSet is the resolved, flattened constraint set for one zone code.
// It is created fresh per resolution call and carries provenance plus any
// resolution warnings; it shares no state with the rule table.
type RuleSet struct {
	ZoneCode ZoneCode     `json:"zone_code"`
	ZoneName string       `json:"zone_name"`
	Category ZoneCategory `json:"category"`

	MinLotArea           *float64 `json:"min_lot_area,omitempty"`
	MinLotFrontage       *float64 `json:"min_lot_frontage,omitempty"`
	CornerMinLotArea     *float64 `json:"corner_min_lot_area,omitempty"`
	CornerMinLotFrontage *float64 `json:"corner_min_lot_frontage,omitempty"`

	FrontYard    *Setback `json:"front_yard,omitempty"`
	RearYard     *Setback `json:"rear_yard,omitempty"`
	InteriorSide *Setback `json:"interior_side,omitempty"`
	FlankageYard *Setback `json:"flankage_yard,omitempty"`

	MaxHeight        *float64 `json:"max_height,omitempty"`
	MaxStoreys       *int     `json:"max_storeys,omitempty"`
	MaxDwellingDepth *float64 `json:"max_dwelling_depth,omitempty"`

	MaxLotCoverage       *RatioLimit `json:"max_lot_coverage,omitempty"`
	MaxFloorAreaRatio    *RatioLimit `json:"max_floor_area_ratio,omitempty"`
	MaxFloorAreaAbsolute *float64    `json:"max_floor_area_absolute,omitempty"`

	DuplexMinLotArea  *float64 `json:"duplex_min_lot_area,omitempty"`
	MinLotAreaPerUnit *float64 `json:"min_lot_area_per_unit,omitempty"`

	PermittedUses []DwellingType `json:"permitted_uses,omitempty"`

	CornerAdjustments *CornerAdjustments `json:"corner_lot_adjustments,omitempty"`
	GarageAdjustments *GarageAdjustments `json:"garage_adjustments,omitempty"`

	// SuffixApplied records that enhanced-infill modifications replaced
	// the baseline height/storeys/coverage/FAR values.
	SuffixApplied bool `json:"suffix_applied,omitempty"`
	// ClauseNotFound records that the referenced override clause was not
	// in the registry. Resolution still succeeds; callers surface this as
	// a data-completeness warning.
	ClauseNotFound bool `json:"clause_not_found,omitempty"`
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

func cloneSetback(p *Setback) *Setback {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneRatio(p *RatioLimit) *RatioLimit {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
