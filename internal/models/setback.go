package models

import (
	"encoding/json"
	"fmt"
)

// SetbackKind discriminates the shapes a yard requirement can take.
type SetbackKind int

const (
	// SetbackInvalid is the zero value and marks an unpopulated Setback.
	SetbackInvalid SetbackKind = iota
	// SetbackFixed is a single numeric distance in metres.
	SetbackFixed
	// SetbackMinMax is a pair: the standard requirement and the reduced
	// alternative available when the zone's relaxation condition is met.
	SetbackMinMax
	// SetbackRequiresSurvey means the distance is relative to the existing
	// neighboring structure and cannot be computed without survey data.
	SetbackRequiresSurvey
)

// String returns the wire name of the kind.
func (k SetbackKind) String() string {
	switch k {
	case SetbackFixed:
		return "fixed"
	case SetbackMinMax:
		return "min_max"
	case SetbackRequiresSurvey:
		return "requires_survey"
	default:
		return "invalid"
	}
}

// Setback is one yard requirement. It is a tagged variant rather than a
// bare number so the survey-required case cannot be mistaken for a
// distance. Consumers must switch on Kind() or use the checked accessors.
type Setback struct {
	kind SetbackKind
	val  float64
	min  float64
	max  float64
}

// FixedSetback returns a fixed numeric setback in metres.
func FixedSetback(metres float64) Setback {
	return Setback{kind: SetbackFixed, val: metres}
}

// MinMaxSetback returns a min/max pair setback. Min is the standard
// requirement; max is the reduced alternative.
func MinMaxSetback(min, max float64) Setback {
	return Setback{kind: SetbackMinMax, min: min, max: max}
}

// SurveySetback returns the survey-required sentinel.
func SurveySetback() Setback {
	return Setback{kind: SetbackRequiresSurvey}
}

// Kind returns the variant discriminator.
func (s Setback) Kind() SetbackKind {
	return s.kind
}

// Fixed returns the numeric distance when the setback is fixed.
func (s Setback) Fixed() (float64, bool) {
	if s.kind != SetbackFixed {
		return 0, false
	}
	return s.val, true
}

// MinMax returns the pair when the setback is a min/max requirement.
func (s Setback) MinMax() (min, max float64, ok bool) {
	if s.kind != SetbackMinMax {
		return 0, 0, false
	}
	return s.min, s.max, true
}

// RequiresSurvey reports whether the setback needs as-built survey data.
func (s Setback) RequiresSurvey() bool {
	return s.kind == SetbackRequiresSurvey
}

// Numeric returns the distance usable for envelope geometry: the fixed
// value, or the standard (min) value of a pair. Survey-required and
// unpopulated setbacks have no numeric form.
func (s Setback) Numeric() (float64, bool) {
	switch s.kind {
	case SetbackFixed:
		return s.val, true
	case SetbackMinMax:
		return s.min, true
	default:
		return 0, false
	}
}

// MarshalJSON implements json.Marshaler for API responses.
func (s Setback) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case SetbackFixed:
		return json.Marshal(struct {
			Type  string  `json:"type"`
			Value float64 `json:"value"`
		}{Type: "fixed", Value: s.val})
	case SetbackMinMax:
		return json.Marshal(struct {
			Type string  `json:"type"`
			Min  float64 `json:"min"`
			Max  float64 `json:"max"`
		}{Type: "min_max", Min: s.min, Max: s.max})
	case SetbackRequiresSurvey:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{Type: "requires_survey"})
	default:
		return nil, fmt.Errorf("cannot marshal invalid setback")
	}
}

// UnmarshalJSON implements json.Unmarshaler for parsing setback input.
func (s *Setback) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type  string   `json:"type"`
		Value *float64 `json:"value"`
		Min   *float64 `json:"min"`
		Max   *float64 `json:"max"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal setback: %w", err)
	}

	switch raw.Type {
	case "fixed":
		if raw.Value == nil {
			return fmt.Errorf("fixed setback requires a value")
		}
		*s = FixedSetback(*raw.Value)
	case "min_max":
		if raw.Min == nil || raw.Max == nil {
			return fmt.Errorf("min_max setback requires min and max")
		}
		*s = MinMaxSetback(*raw.Min, *raw.Max)
	case "requires_survey":
		*s = SurveySetback()
	default:
		return fmt.Errorf("unrecognized setback type %q", raw.Type)
	}

	return nil
}
