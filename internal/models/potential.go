package models

// SqMToSqFt converts square metres to square feet in violation strings and
// the buildable-area figures. The by-law tabulates metric; reports show both.
const SqMToSqFt = 10.764

// ConfidenceLevel rates how much of an analysis rests on verified data
// versus assumptions or missing inputs.
type ConfidenceLevel string

const (
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceModerate ConfidenceLevel = "moderate"
	ConfidenceLow      ConfidenceLevel = "low"
)

// CalculationMethod identifies which derivation produced the final
// buildable figure. The two methods are never mixed within one result.
type CalculationMethod string

const (
	// MethodStandard derives floor area from lot coverage times storeys.
	MethodStandard CalculationMethod = "standard"
	// MethodFloorAreaRatio derives floor area from the FAR directly; the
	// ratio already expresses total floor area across all storeys.
	MethodFloorAreaRatio CalculationMethod = "floor_area_ratio"
)

// SetbackPlan is the per-yard result of setback resolution for one parcel.
// Nil entries mean the zone does not regulate that yard (flankage applies
// to corner lots only). The garage relaxation is deliberately kept apart
// from the general interior-side value; the two are not interchangeable.
type SetbackPlan struct {
	FrontYard    *Setback `json:"front_yard,omitempty"`
	RearYard     *Setback `json:"rear_yard,omitempty"`
	InteriorSide *Setback `json:"interior_side,omitempty"`
	FlankageYard *Setback `json:"flankage_yard,omitempty"`

	GarageInteriorSide *float64 `json:"garage_interior_side,omitempty"`
	GarageAppliesTo    string   `json:"garage_applies_to,omitempty"`

	// CornerRearYardReduced records that the corner-lot rear-yard relief
	// was applied.
	CornerRearYardReduced bool `json:"corner_rear_yard_reduced,omitempty"`
}

// BuildableArea is the envelope geometry after setbacks. All figures are
// nil when a required setback is survey-dependent or a site dimension is
// missing; Note explains why.
type BuildableArea struct {
	UsableFrontage  *float64 `json:"usable_frontage,omitempty"`
	UsableDepth     *float64 `json:"usable_depth,omitempty"`
	Area            *float64 `json:"buildable_area,omitempty"`
	EfficiencyRatio *float64 `json:"efficiency_ratio,omitempty"`
	Note            string   `json:"note,omitempty"`
}

// UnitEstimate is the advisory dwelling-unit count. It is a coarse
// zone-group heuristic, not a regulatory determination, and is kept
// structurally separate from violations and warnings.
type UnitEstimate struct {
	Count    int    `json:"count"`
	Advisory bool   `json:"advisory"`
	Basis    string `json:"basis"`
}

// FinalBuildableAnalysis is the synthesizer's output: one buildable
// square-footage figure with its calculation trail and confidence.
type FinalBuildableAnalysis struct {
	Method             CalculationMethod `json:"calculation_method"`
	LotCoverageM2      *float64          `json:"lot_coverage_sqm,omitempty"`
	LotCoverageSqFt    *float64          `json:"lot_coverage_sqft,omitempty"`
	MaxFloors          int               `json:"max_floors"`
	GrossFloorAreaM2   *float64          `json:"gross_floor_area_sqm,omitempty"`
	GrossFloorAreaSqFt *float64          `json:"gross_floor_area_sqft,omitempty"`
	DeductionSqFt      float64           `json:"deduction_sqft"`
	FinalBuildableM2   *float64          `json:"final_buildable_sqm,omitempty"`
	FinalBuildableSqFt *float64          `json:"final_buildable_sqft,omitempty"`
	Confidence         ConfidenceLevel   `json:"confidence_level"`
	Note               string            `json:"analysis_note,omitempty"`
}

// DevelopmentPotential is the calculator's output for one parcel. Fields
// degrade independently to nil with an explanatory warning; the struct is
// recomputed per request and never persisted.
type DevelopmentPotential struct {
	ZoneCode ZoneCode       `json:"zone_code"`
	ZoneName string         `json:"zone_name"`
	Category ZoneCategory   `json:"category"`
	Site     SiteDimensions `json:"site"`

	MeetsMinimumRequirements bool     `json:"meets_minimum_requirements"`
	Violations               []string `json:"violations"`
	Warnings                 []string `json:"warnings"`

	Setbacks  SetbackPlan   `json:"setbacks"`
	Buildable BuildableArea `json:"buildable"`

	MaxCoveragePercent *float64 `json:"max_coverage_percent,omitempty"`
	MaxCoverageArea    *float64 `json:"max_coverage_area,omitempty"`
	MaxFloorAreaRatio  *float64 `json:"max_floor_area_ratio,omitempty"`
	MaxFloorArea       *float64 `json:"max_floor_area,omitempty"`

	MaxHeight        *float64 `json:"max_height,omitempty"`
	MaxStoreys       *int     `json:"max_storeys,omitempty"`
	MaxBuildingDepth *float64 `json:"max_building_depth,omitempty"`

	PermittedUses []DwellingType `json:"permitted_uses,omitempty"`

	Units UnitEstimate `json:"unit_estimate"`

	FinalAnalysis *FinalBuildableAnalysis `json:"final_buildable_analysis,omitempty"`
}

// HasSurveyDependency reports whether the buildable envelope could not be
// computed because a setback is relative to an existing building.
func (p *DevelopmentPotential) HasSurveyDependency() bool {
	return p.Setbacks.FrontYard != nil && p.Setbacks.FrontYard.RequiresSurvey()
}
