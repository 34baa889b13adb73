package models

// ValuationRequest carries the inputs to the property valuation formulas.
// Zone code and lot area come from the zoning analysis; the building
// characteristics come from the caller.
type ValuationRequest struct {
	ZoneCode     string       `json:"zone_code"`
	LotArea      float64      `json:"lot_area"`
	BuildingArea float64      `json:"building_area"`
	BuildingType DwellingType `json:"building_type,omitempty"`
	Bedrooms     int          `json:"bedrooms,omitempty"`
	Bathrooms    float64      `json:"bathrooms,omitempty"`
	AgeYears     int          `json:"age_years,omitempty"`

	NearbyParks        int  `json:"nearby_parks,omitempty"`
	Waterfront         bool `json:"waterfront,omitempty"`
	HeritageDesignated bool `json:"heritage_designated,omitempty"`
	CornerLot          bool `json:"corner_lot,omitempty"`
}

// ValuationAdjustments itemizes the additive corrections applied on top of
// the land and building values.
type ValuationAdjustments struct {
	Bedrooms      float64 `json:"bedrooms"`
	Bathrooms     float64 `json:"bathrooms"`
	LocationTotal float64 `json:"location_total"`
}

// ValuationResult is the estimated market value with its breakdown and a
// plus-or-minus fifteen percent confidence range. Values are CAD, rounded
// to the nearest thousand where noted.
type ValuationResult struct {
	EstimatedValue float64              `json:"estimated_value"`
	LandValue      float64              `json:"land_value"`
	BuildingValue  float64              `json:"building_value"`
	Adjustments    ValuationAdjustments `json:"adjustments"`
	ConfidenceLow  float64              `json:"confidence_low"`
	ConfidenceHigh float64              `json:"confidence_high"`
	PricePerSqM    float64              `json:"price_per_sqm"`
}
