package models

import (
	"strings"
)

// ZoneCategory groups base zones by development intensity.
// Categories drive the unit-count heuristic and the coverage band lookup.
type ZoneCategory string

const (
	CategoryResidentialLow        ZoneCategory = "residential_low"
	CategoryResidentialUptownCore ZoneCategory = "residential_uptown_core"
	CategoryResidentialMedium     ZoneCategory = "residential_medium"
	CategoryResidentialHigh       ZoneCategory = "residential_high"
	CategoryUnknown               ZoneCategory = "unknown"
)

// DwellingType enumerates the dwelling uses named in the by-law use tables.
type DwellingType string

const (
	DwellingDetached            DwellingType = "detached_dwelling"
	DwellingSemiDetached        DwellingType = "semi_detached_dwelling"
	DwellingDuplex              DwellingType = "duplex_dwelling"
	DwellingTownhouse           DwellingType = "townhouse_dwelling"
	DwellingBackToBackTownhouse DwellingType = "back_to_back_townhouse_dwelling"
	DwellingStackedTownhouse    DwellingType = "stacked_townhouse_dwelling"
	DwellingApartment           DwellingType = "apartment_dwelling"
	DwellingLinked              DwellingType = "linked_dwelling"
)

// SuffixEnhancedInfill is the only recognized density-suffix marker.
// It alters height, storeys, coverage, and floor-area ratio for
// established-neighborhood infill parcels.
const SuffixEnhancedInfill = "-0"

// ZoneCode is a decomposed zone code string.
// Decomposition is lossless: Normalized() re-serializes the parts into a
// canonical form that parses back to the same components.
type ZoneCode struct {
	Raw      string `json:"raw"`
	BaseZone string `json:"base_zone"`
	Suffix   string `json:"suffix,omitempty"`
	ClauseID string `json:"clause_id,omitempty"`
}

// HasSuffix reports whether the enhanced-infill density suffix is present.
func (z ZoneCode) HasSuffix() bool {
	return z.Suffix == SuffixEnhancedInfill
}

// HasClause reports whether a site-specific override clause is referenced.
func (z ZoneCode) HasClause() bool {
	return z.ClauseID != ""
}

// IsUnknown reports whether no base zone could be identified.
func (z ZoneCode) IsUnknown() bool {
	return z.BaseZone == ""
}

// Normalized returns the canonical serialized form, e.g. "RL1-0 SP:3".
func (z ZoneCode) Normalized() string {
	var b strings.Builder
	b.WriteString(z.BaseZone)
	if z.HasSuffix() {
		b.WriteString(z.Suffix)
	}
	if z.HasClause() {
		b.WriteString(" ")
		b.WriteString(z.ClauseID)
	}
	return b.String()
}

// ZoneInfo is the display catalog record for one base zone.
type ZoneInfo struct {
	Code           string         `json:"code"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       ZoneCategory   `json:"category"`
	TypicalLotSize string         `json:"typical_lot_size"`
	PermittedUses  []DwellingType `json:"permitted_uses"`
}
