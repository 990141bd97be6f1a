package handler

// quoteRequest is the shipment intake payload. Physical fields are validated
// here, at the boundary: the engine itself assumes positive geometry and
// fail-fasts otherwise.
type quoteRequest struct {
	OriginZip string  `json:"origin_zip" validate:"required"`
	DestZip   string  `json:"dest_zip"   validate:"required"`
	WeightLb  float64 `json:"weight_lb"  validate:"required,gt=0"`
	LengthFt  float64 `json:"length_ft"  validate:"required,gt=0"`
	WidthFt   float64 `json:"width_ft"   validate:"required,gt=0"`
	HeightFt  float64 `json:"height_ft"  validate:"required,gt=0"`
}

// offerResponse is one ranked carrier offer, flattened for direct display.
type offerResponse struct {
	CarrierID          string  `json:"carrier_id"`
	CarrierName        string  `json:"carrier_name"`
	Rating             float64 `json:"rating"`
	Equipment          string  `json:"equipment,omitempty"`
	TotalCharge        float64 `json:"total_charge"`
	BaseCharge         float64 `json:"base_charge"`
	MileageCharge      float64 `json:"mileage_charge"`
	ChargeableBasis    string  `json:"chargeable_basis"`
	TransitTimeDisplay string  `json:"transit_time_display"`
	Breakdown          string  `json:"breakdown"`
	Score              float64 `json:"score"`
}

type quoteResponse struct {
	RequestID     string          `json:"request_id"`
	DistanceMiles int             `json:"distance_miles"`
	FromCache     bool            `json:"from_cache,omitempty"`
	Offers        []offerResponse `json:"offers"`
}

// updateRatesRequest carries a carrier's new rate schedule. Zero/omitted
// fields mean "use the marketplace default" and are legal.
type updateRatesRequest struct {
	PerMile      float64 `json:"per_mile"       validate:"gte=0"`
	PerCubicFoot float64 `json:"per_cubic_foot" validate:"gte=0"`
	PerPound     float64 `json:"per_pound"      validate:"gte=0"`
}
