package rules

import (
	"fmt"

	"github.com/stwalsh4118/groundwork/api/internal/models"
)

// The dataset wire format mirrors the published by-law tables: plain
// scalars, tagged setback/ratio records, and ordered band lists. It is
// deliberately separate from the domain models so the overlay file stays
// declarative and load-time validation can reject malformed data before
// any request runs against it.

type datasetSpec struct {
	Version           string                   `koanf:"version"`
	ResidentialZones  map[string]zoneSpec      `koanf:"residential_zones"`
	SpecialProvisions map[string]provisionSpec `koanf:"special_provisions"`
	LookupTables      lookupTablesSpec         `koanf:"lookup_tables"`
}

type zoneSpec struct {
	Name           string `koanf:"name"`
	Category       string `koanf:"category"`
	Description    string `koanf:"description"`
	TypicalLotSize string `koanf:"typical_lot_size"`

	MinLotArea           *float64 `koanf:"min_lot_area"`
	MinLotFrontage       *float64 `koanf:"min_lot_frontage"`
	CornerMinLotArea     *float64 `koanf:"corner_min_lot_area"`
	CornerMinLotFrontage *float64 `koanf:"corner_min_lot_frontage"`

	Setbacks setbacksSpec `koanf:"setbacks"`

	MaxHeight         *float64 `koanf:"max_height"`
	MaxHeightSuffix0  *float64 `koanf:"max_height_suffix_0"`
	MaxStoreys        *int     `koanf:"max_storeys"`
	MaxStoreysSuffix0 *int     `koanf:"max_storeys_suffix_0"`
	MaxDwellingDepth  *float64 `koanf:"max_dwelling_depth"`

	MaxLotCoverage           *ratioSpec `koanf:"max_lot_coverage"`
	MaxLotCoverageSuffix0    *ratioSpec `koanf:"max_lot_coverage_suffix_0"`
	MaxFloorAreaRatio        *ratioSpec `koanf:"max_floor_area_ratio"`
	MaxFloorAreaRatioSuffix0 *ratioSpec `koanf:"max_floor_area_ratio_suffix_0"`
	MaxFloorAreaAbsolute     *float64   `koanf:"max_floor_area_absolute"`

	DuplexMinLotArea  *float64 `koanf:"duplex_min_lot_area"`
	MinLotAreaPerUnit *float64 `koanf:"min_lot_area_per_unit"`

	PermittedUses []string `koanf:"permitted_uses"`

	CornerLotAdjustments *cornerSpec `koanf:"corner_lot_adjustments"`
	GarageAdjustments    *garageSpec `koanf:"garage_adjustments"`
}

type setbacksSpec struct {
	FrontYard        *setbackSpec `koanf:"front_yard"`
	FrontYardSuffix0 *setbackSpec `koanf:"front_yard_suffix_0"`
	RearYard         *setbackSpec `koanf:"rear_yard"`
	InteriorSide     *setbackSpec `koanf:"interior_side"`
	FlankageYard     *setbackSpec `koanf:"flankage_yard"`
}

type setbackSpec struct {
	Type  string   `koanf:"type"`
	Value *float64 `koanf:"value"`
	Min   *float64 `koanf:"min"`
	Max   *float64 `koanf:"max"`
}

type ratioSpec struct {
	Type  string   `koanf:"type"`
	Value *float64 `koanf:"value"`
	Table string   `koanf:"table"`
}

type cornerSpec struct {
	RearYardReducedTo    *float64 `koanf:"rear_yard_reduced_to"`
	RequiresInteriorSide *float64 `koanf:"requires_interior_side"`
}

type garageSpec struct {
	InteriorSideReducedTo *float64 `koanf:"interior_side_reduced_to"`
	AppliesTo             string   `koanf:"applies_to"`
}

type provisionSpec struct {
	Description string     `koanf:"description"`
	Overrides   *patchSpec `koanf:"overrides"`
}

type patchSpec struct {
	MinLotArea        *float64     `koanf:"min_lot_area"`
	MinLotFrontage    *float64     `koanf:"min_lot_frontage"`
	FrontYard         *setbackSpec `koanf:"front_yard"`
	RearYard          *setbackSpec `koanf:"rear_yard"`
	InteriorSide      *setbackSpec `koanf:"interior_side"`
	FlankageYard      *setbackSpec `koanf:"flankage_yard"`
	MaxHeight         *float64     `koanf:"max_height"`
	MaxStoreys        *int         `koanf:"max_storeys"`
	MaxDwellingDepth  *float64     `koanf:"max_dwelling_depth"`
	MaxLotCoverage    *ratioSpec   `koanf:"max_lot_coverage"`
	MaxFloorAreaRatio *ratioSpec   `koanf:"max_floor_area_ratio"`
	PermittedUses     []string     `koanf:"permitted_uses"`
}

type lookupTablesSpec struct {
	FARByLotArea   []bandSpec          `koanf:"far_by_lot_area"`
	CoverageByZone []coverageGroupSpec `koanf:"coverage_by_zone"`
}

// bandSpec is one row of an ordered area-band table. Exactly one of Below
// (value applies when area < Below) or UpTo (applies when area <= UpTo)
// must be set, except the final open-ended band which sets neither.
type bandSpec struct {
	Below *float64 `koanf:"below"`
	UpTo  *float64 `koanf:"up_to"`
	Value float64  `koanf:"value"`
}

type coverageGroupSpec struct {
	Zones             []string `koanf:"zones"`
	Coverage          *float64 `koanf:"coverage"`
	HeightThreshold   *float64 `koanf:"height_threshold"`
	CoverageAtOrBelow *float64 `koanf:"coverage_at_or_below"`
	CoverageAbove     *float64 `koanf:"coverage_above"`
}

func (s setbackSpec) toSetback() (models.Setback, error) {
	switch s.Type {
	case "fixed":
		if s.Value == nil {
			return models.Setback{}, fmt.Errorf("fixed setback requires a value")
		}
		return models.FixedSetback(*s.Value), nil
	case "min_max":
		if s.Min == nil || s.Max == nil {
			return models.Setback{}, fmt.Errorf("min_max setback requires min and max")
		}
		return models.MinMaxSetback(*s.Min, *s.Max), nil
	case "requires_survey":
		return models.SurveySetback(), nil
	default:
		return models.Setback{}, fmt.Errorf("unrecognized setback type %q", s.Type)
	}
}

func (s ratioSpec) toRatio() (models.RatioLimit, error) {
	switch s.Type {
	case "fraction":
		if s.Value == nil {
			return models.RatioLimit{}, fmt.Errorf("fraction limit requires a value")
		}
		return models.FractionLimit(*s.Value), nil
	case "table":
		if s.Table == "" {
			return models.RatioLimit{}, fmt.Errorf("table limit requires a table name")
		}
		return models.TableLimit(s.Table), nil
	default:
		return models.RatioLimit{}, fmt.Errorf("unrecognized ratio limit type %q", s.Type)
	}
}

func toCategory(raw string) (models.ZoneCategory, error) {
	switch models.ZoneCategory(raw) {
	case models.CategoryResidentialLow,
		models.CategoryResidentialUptownCore,
		models.CategoryResidentialMedium,
		models.CategoryResidentialHigh:
		return models.ZoneCategory(raw), nil
	default:
		return models.CategoryUnknown, fmt.Errorf("unrecognized zone category %q", raw)
	}
}

func toDwellingTypes(raw []string) []models.DwellingType {
	if len(raw) == 0 {
		return nil
	}
	uses := make([]models.DwellingType, 0, len(raw))
	for _, u := range raw {
		uses = append(uses, models.DwellingType(u))
	}
	return uses
}

func optionalSetback(s *setbackSpec) (*models.Setback, error) {
	if s == nil {
		return nil, nil
	}
	sb, err := s.toSetback()
	if err != nil {
		return nil, err
	}
	return &sb, nil
}

func optionalRatio(s *ratioSpec) (*models.RatioLimit, error) {
	if s == nil {
		return nil, nil
	}
	r, err := s.toRatio()
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (z zoneSpec) toZoneRules(code string) (models.ZoneRules, error) {
	category, err := toCategory(z.Category)
	if err != nil {
		return models.ZoneRules{}, err
	}

	rules := models.ZoneRules{
		Code:     code,
		Name:     z.Name,
		Category: category,

		MinLotArea:           z.MinLotArea,
		MinLotFrontage:       z.MinLotFrontage,
		CornerMinLotArea:     z.CornerMinLotArea,
		CornerMinLotFrontage: z.CornerMinLotFrontage,

		MaxHeight:         z.MaxHeight,
		MaxHeightSuffix0:  z.MaxHeightSuffix0,
		MaxStoreys:        z.MaxStoreys,
		MaxStoreysSuffix0: z.MaxStoreysSuffix0,
		MaxDwellingDepth:  z.MaxDwellingDepth,

		MaxFloorAreaAbsolute: z.MaxFloorAreaAbsolute,
		DuplexMinLotArea:     z.DuplexMinLotArea,
		MinLotAreaPerUnit:    z.MinLotAreaPerUnit,

		PermittedUses: toDwellingTypes(z.PermittedUses),
	}

	if rules.Setbacks.FrontYard, err = optionalSetback(z.Setbacks.FrontYard); err != nil {
		return models.ZoneRules{}, fmt.Errorf("front_yard: %w", err)
	}
	if rules.Setbacks.FrontYardSuffix0, err = optionalSetback(z.Setbacks.FrontYardSuffix0); err != nil {
		return models.ZoneRules{}, fmt.Errorf("front_yard_suffix_0: %w", err)
	}
	if rules.Setbacks.RearYard, err = optionalSetback(z.Setbacks.RearYard); err != nil {
		return models.ZoneRules{}, fmt.Errorf("rear_yard: %w", err)
	}
	if rules.Setbacks.InteriorSide, err = optionalSetback(z.Setbacks.InteriorSide); err != nil {
		return models.ZoneRules{}, fmt.Errorf("interior_side: %w", err)
	}
	if rules.Setbacks.FlankageYard, err = optionalSetback(z.Setbacks.FlankageYard); err != nil {
		return models.ZoneRules{}, fmt.Errorf("flankage_yard: %w", err)
	}

	if rules.MaxLotCoverage, err = optionalRatio(z.MaxLotCoverage); err != nil {
		return models.ZoneRules{}, fmt.Errorf("max_lot_coverage: %w", err)
	}
	if rules.MaxLotCoverageSuffix0, err = optionalRatio(z.MaxLotCoverageSuffix0); err != nil {
		return models.ZoneRules{}, fmt.Errorf("max_lot_coverage_suffix_0: %w", err)
	}
	if rules.MaxFloorAreaRatio, err = optionalRatio(z.MaxFloorAreaRatio); err != nil {
		return models.ZoneRules{}, fmt.Errorf("max_floor_area_ratio: %w", err)
	}
	if rules.MaxFloorAreaRatioSuffix0, err = optionalRatio(z.MaxFloorAreaRatioSuffix0); err != nil {
		return models.ZoneRules{}, fmt.Errorf("max_floor_area_ratio_suffix_0: %w", err)
	}

	if z.CornerLotAdjustments != nil {
		rules.CornerAdjustments = &models.CornerAdjustments{
			RearYardReducedTo:    z.CornerLotAdjustments.RearYardReducedTo,
			RequiresInteriorSide: z.CornerLotAdjustments.RequiresInteriorSide,
		}
	}
	if z.GarageAdjustments != nil {
		rules.GarageAdjustments = &models.GarageAdjustments{
			InteriorSideReducedTo: z.GarageAdjustments.InteriorSideReducedTo,
			AppliesTo:             z.GarageAdjustments.AppliesTo,
		}
	}

	return rules, nil
}

func (p patchSpec) toPatch() (models.RulePatch, error) {
	var err error
	patch := models.RulePatch{
		MinLotArea:       p.MinLotArea,
		MinLotFrontage:   p.MinLotFrontage,
		MaxHeight:        p.MaxHeight,
		MaxStoreys:       p.MaxStoreys,
		MaxDwellingDepth: p.MaxDwellingDepth,
		PermittedUses:    toDwellingTypes(p.PermittedUses),
	}

	if patch.FrontYard, err = optionalSetback(p.FrontYard); err != nil {
		return models.RulePatch{}, fmt.Errorf("front_yard: %w", err)
	}
	if patch.RearYard, err = optionalSetback(p.RearYard); err != nil {
		return models.RulePatch{}, fmt.Errorf("rear_yard: %w", err)
	}
	if patch.InteriorSide, err = optionalSetback(p.InteriorSide); err != nil {
		return models.RulePatch{}, fmt.Errorf("interior_side: %w", err)
	}
	if patch.FlankageYard, err = optionalSetback(p.FlankageYard); err != nil {
		return models.RulePatch{}, fmt.Errorf("flankage_yard: %w", err)
	}
	if patch.MaxLotCoverage, err = optionalRatio(p.MaxLotCoverage); err != nil {
		return models.RulePatch{}, fmt.Errorf("max_lot_coverage: %w", err)
	}
	if patch.MaxFloorAreaRatio, err = optionalRatio(p.MaxFloorAreaRatio); err != nil {
		return models.RulePatch{}, fmt.Errorf("max_floor_area_ratio: %w", err)
	}

	return patch, nil
}
