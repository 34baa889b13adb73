package models

import (
	"encoding/json"
	"fmt"
)

// Area-band lookup tables referenced by enhanced-infill zones. The names
// are the by-law's own table numbers.
const (
	// TableFARByLotArea is Table 6.4.1: floor-area ratio by lot-area band.
	TableFARByLotArea = "table_6.4.1"
	// TableCoverageByZone is Table 6.4.2: lot coverage by zone group and
	// building height.
	TableCoverageByZone = "table_6.4.2"
)

// RatioKind discriminates the shapes a coverage or FAR limit can take.
type RatioKind int

const (
	// RatioInvalid is the zero value and marks an unpopulated RatioLimit.
	RatioInvalid RatioKind = iota
	// RatioFraction is a direct numeric fraction of lot area.
	RatioFraction
	// RatioTable defers resolution to an area-band lookup that needs
	// per-parcel data (lot area, building height).
	RatioTable
)

// RatioLimit is a lot-coverage or floor-area-ratio constraint: either a
// direct fraction or a deferred table reference. Table references are
// resolved by the calculator against actual site dimensions, never at
// rule-resolution time.
type RatioLimit struct {
	kind     RatioKind
	fraction float64
	table    string
}

// FractionLimit returns a direct numeric fraction limit.
func FractionLimit(fraction float64) RatioLimit {
	return RatioLimit{kind: RatioFraction, fraction: fraction}
}

// TableLimit returns a deferred table-lookup limit.
func TableLimit(table string) RatioLimit {
	return RatioLimit{kind: RatioTable, table: table}
}

// Kind returns the variant discriminator.
func (r RatioLimit) Kind() RatioKind {
	return r.kind
}

// Fraction returns the numeric fraction when the limit is direct.
func (r RatioLimit) Fraction() (float64, bool) {
	if r.kind != RatioFraction {
		return 0, false
	}
	return r.fraction, true
}

// Table returns the referenced table name when the limit is deferred.
func (r RatioLimit) Table() (string, bool) {
	if r.kind != RatioTable {
		return "", false
	}
	return r.table, true
}

// MarshalJSON implements json.Marshaler for API responses.
func (r RatioLimit) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case RatioFraction:
		return json.Marshal(struct {
			Type  string  `json:"type"`
			Value float64 `json:"value"`
		}{Type: "fraction", Value: r.fraction})
	case RatioTable:
		return json.Marshal(struct {
			Type  string `json:"type"`
			Table string `json:"table"`
		}{Type: "table", Table: r.table})
	default:
		return nil, fmt.Errorf("cannot marshal invalid ratio limit")
	}
}

// UnmarshalJSON implements json.Unmarshaler for parsing limit input.
func (r *RatioLimit) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type  string   `json:"type"`
		Value *float64 `json:"value"`
		Table string   `json:"table"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal ratio limit: %w", err)
	}

	switch raw.Type {
	case "fraction":
		if raw.Value == nil {
			return fmt.Errorf("fraction limit requires a value")
		}
		*r = FractionLimit(*raw.Value)
	case "table":
		if raw.Table == "" {
			return fmt.Errorf("table limit requires a table name")
		}
		*r = TableLimit(raw.Table)
	default:
		return fmt.Errorf("unrecognized ratio limit type %q", raw.Type)
	}

	return nil
}
