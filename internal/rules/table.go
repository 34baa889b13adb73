package rules

import (
	"fmt"
	"sort"

	"github.com/stwalsh4118/groundwork/api/internal/models"
)

// Table is the loaded, immutable rule dataset. It is built once at startup
// and shared read-only across requests; no locking is needed because
// nothing is mutated after construction.
type Table struct {
	version        string
	zones          map[string]models.ZoneRules
	infos          []models.ZoneInfo
	clauses        map[string]models.OverrideClause
	farBands       []farBand
	coverageGroups []coverageGroup
}

type farBand struct {
	below *float64
	upTo  *float64
	value float64
}

type coverageGroup struct {
	zones     map[string]bool
	threshold *float64
	atOrBelow float64
	above     float64
	flat      *float64
}

// Version reports the dataset version string, e.g. "2014-014".
func (t *Table) Version() string {
	return t.version
}

// ZoneCount reports the number of base zones in the table.
func (t *Table) ZoneCount() int {
	return len(t.zones)
}

// BaselineRules returns the baseline rule record for a base zone, or nil
// when the zone is not in the table.
func (t *Table) BaselineRules(baseZone string) *models.ZoneRules {
	rules, ok := t.zones[baseZone]
	if !ok {
		return nil
	}
	return &rules
}

// OverrideClause returns the override clause for a clause id (e.g. "SP:1"),
// or nil when the id is not registered.
func (t *Table) OverrideClause(id string) *models.OverrideClause {
	clause, ok := t.clauses[id]
	if !ok {
		return nil
	}
	return &clause
}

// FARByLotArea resolves the enhanced-infill floor-area ratio from the
// Table 6.4.1 area bands. The bands are half-open exactly as published:
// the first applies below its bound, the middle bands up to and including
// theirs, and the last is open-ended.
func (t *Table) FARByLotArea(lotArea float64) (float64, bool) {
	for _, band := range t.farBands {
		switch {
		case band.below != nil:
			if lotArea < *band.below {
				return band.value, true
			}
		case band.upTo != nil:
			if lotArea <= *band.upTo {
				return band.value, true
			}
		default:
			return band.value, true
		}
	}
	return 0, false
}

// CoverageByZone resolves the enhanced-infill lot coverage from the
// Table 6.4.2 zone groups for the given building height in metres. Zones
// the table does not group have no defined value.
func (t *Table) CoverageByZone(baseZone string, buildingHeight float64) (float64, bool) {
	for _, group := range t.coverageGroups {
		if !group.zones[baseZone] {
			continue
		}
		if group.flat != nil {
			return *group.flat, true
		}
		if buildingHeight <= *group.threshold {
			return group.atOrBelow, true
		}
		return group.above, true
	}
	return 0, false
}

// Zones returns the display catalog, sorted by zone code.
func (t *Table) Zones() []models.ZoneInfo {
	out := make([]models.ZoneInfo, len(t.infos))
	copy(out, t.infos)
	return out
}

// buildTable validates a dataset spec and assembles the immutable Table.
// Any defect is a configuration error; the table is never built partially.
func buildTable(spec datasetSpec) (*Table, error) {
	if len(spec.ResidentialZones) == 0 {
		return nil, fmt.Errorf("dataset defines no residential zones")
	}
	if len(spec.LookupTables.FARByLotArea) == 0 {
		return nil, fmt.Errorf("dataset defines no far_by_lot_area bands")
	}

	t := &Table{
		version: spec.Version,
		zones:   make(map[string]models.ZoneRules, len(spec.ResidentialZones)),
		clauses: make(map[string]models.OverrideClause, len(spec.SpecialProvisions)),
	}

	for code, zs := range spec.ResidentialZones {
		rules, err := zs.toZoneRules(code)
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", code, err)
		}
		t.zones[code] = rules
		t.infos = append(t.infos, models.ZoneInfo{
			Code:           code,
			Name:           rules.Name,
			Description:    zs.Description,
			Category:       rules.Category,
			TypicalLotSize: zs.TypicalLotSize,
			PermittedUses:  rules.PermittedUses,
		})
	}
	sort.Slice(t.infos, func(i, j int) bool { return t.infos[i].Code < t.infos[j].Code })

	for id, ps := range spec.SpecialProvisions {
		clause := models.OverrideClause{ID: id, Description: ps.Description}
		if ps.Overrides != nil {
			patch, err := ps.Overrides.toPatch()
			if err != nil {
				return nil, fmt.Errorf("special provision %s: %w", id, err)
			}
			clause.Overrides = patch
		}
		t.clauses[id] = clause
	}

	bands, err := buildFARBands(spec.LookupTables.FARByLotArea)
	if err != nil {
		return nil, fmt.Errorf("far_by_lot_area: %w", err)
	}
	t.farBands = bands

	groups, err := buildCoverageGroups(spec.LookupTables.CoverageByZone)
	if err != nil {
		return nil, fmt.Errorf("coverage_by_zone: %w", err)
	}
	t.coverageGroups = groups

	return t, nil
}

func buildFARBands(specs []bandSpec) ([]farBand, error) {
	bands := make([]farBand, 0, len(specs))
	prev := -1.0
	for i, bs := range specs {
		last := i == len(specs)-1

		switch {
		case bs.Below != nil && bs.UpTo != nil:
			return nil, fmt.Errorf("band %d: below and up_to are mutually exclusive", i)
		case bs.Below == nil && bs.UpTo == nil:
			if !last {
				return nil, fmt.Errorf("band %d: only the final band may be open-ended", i)
			}
		case last:
			return nil, fmt.Errorf("the final band must be open-ended")
		}

		bound := bs.Below
		if bound == nil {
			bound = bs.UpTo
		}
		if bound != nil {
			if *bound <= prev {
				return nil, fmt.Errorf("band %d: bounds must be strictly increasing", i)
			}
			prev = *bound
		}

		bands = append(bands, farBand{below: bs.Below, upTo: bs.UpTo, value: bs.Value})
	}
	return bands, nil
}

func buildCoverageGroups(specs []coverageGroupSpec) ([]coverageGroup, error) {
	groups := make([]coverageGroup, 0, len(specs))
	for i, gs := range specs {
		if len(gs.Zones) == 0 {
			return nil, fmt.Errorf("group %d: no zones", i)
		}

		group := coverageGroup{zones: make(map[string]bool, len(gs.Zones))}
		for _, z := range gs.Zones {
			group.zones[z] = true
		}

		switch {
		case gs.Coverage != nil:
			if gs.HeightThreshold != nil || gs.CoverageAtOrBelow != nil || gs.CoverageAbove != nil {
				return nil, fmt.Errorf("group %d: coverage and height-split fields are mutually exclusive", i)
			}
			group.flat = gs.Coverage
		case gs.HeightThreshold != nil && gs.CoverageAtOrBelow != nil && gs.CoverageAbove != nil:
			group.threshold = gs.HeightThreshold
			group.atOrBelow = *gs.CoverageAtOrBelow
			group.above = *gs.CoverageAbove
		default:
			return nil, fmt.Errorf("group %d: requires either coverage or all of height_threshold, coverage_at_or_below, coverage_above", i)
		}

		groups = append(groups, group)
	}
	return groups, nil
}
