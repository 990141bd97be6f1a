package domain

// ChargeableBasis says whether a shipment is priced by the space it occupies
// or by its actual weight.
type ChargeableBasis string

const (
	BasisWeight ChargeableBasis = "WEIGHT"
	BasisVolume ChargeableBasis = "VOLUME"
)

// Classification is the output of the rate classifier for one spec.
type Classification struct {
	VolumeCubicFt       float64
	DensityLbPerCubicFt float64
	Basis               ChargeableBasis
}

// Quote is the engine output for one (ShipmentSpec, RateSchedule) pair.
// TotalCharge is always the sum of exactly BaseCharge and MileageCharge, so
// the breakdown can be reconstructed from the two components.
type Quote struct {
	DistanceMiles       int             `json:"distance_miles" bson:"distance_miles"`
	VolumeCubicFt       float64         `json:"volume_cubic_ft" bson:"volume_cubic_ft"`
	DensityLbPerCubicFt float64         `json:"density_lb_per_cubic_ft" bson:"density_lb_per_cubic_ft"`
	Basis               ChargeableBasis `json:"chargeable_basis" bson:"chargeable_basis"`
	BaseCharge          float64         `json:"base_charge" bson:"base_charge"`
	MileageCharge       float64         `json:"mileage_charge" bson:"mileage_charge"`
	TotalCharge         float64         `json:"total_charge" bson:"total_charge"`
	TransitTimeHours    float64         `json:"transit_time_hours" bson:"transit_time_hours"`
	TransitTimeDisplay  string          `json:"transit_time_display" bson:"transit_time_display"`
	Breakdown           string          `json:"breakdown" bson:"breakdown"`
}

// RankedCarrierOffer pairs a quote with the carrier that produced it, plus
// the match score used to order the result list. Lower scores rank first.
type RankedCarrierOffer struct {
	Carrier CarrierProfile `json:"carrier" bson:"carrier"`
	Quote   Quote          `json:"quote" bson:"quote"`
	Score   float64        `json:"score" bson:"score"`
}
