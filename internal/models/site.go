package models

// SiteDimensions describes the parcel under analysis, as supplied by the
// external parcel/geometry service. Frontage and depth are pointers because
// they are frequently unknown; an absent dimension must propagate as
// "cannot verify", never as zero.
type SiteDimensions struct {
	LotArea   float64  `json:"lot_area"`
	Frontage  *float64 `json:"frontage,omitempty"`
	Depth     *float64 `json:"depth,omitempty"`
	CornerLot bool     `json:"corner_lot"`

	// BuildingHeight is the proposed or existing building height in
	// metres. When nil the coverage band lookup assumes 9.0 m, the cap
	// shared by nearly all enhanced-infill zones.
	BuildingHeight *float64 `json:"building_height,omitempty"`
}

// KnownFrontage returns the frontage when it is present and positive.
func (s SiteDimensions) KnownFrontage() (float64, bool) {
	if s.Frontage == nil || *s.Frontage <= 0 {
		return 0, false
	}
	return *s.Frontage, true
}

// KnownDepth returns the depth when it is present and positive.
func (s SiteDimensions) KnownDepth() (float64, bool) {
	if s.Depth == nil || *s.Depth <= 0 {
		return 0, false
	}
	return *s.Depth, true
}
