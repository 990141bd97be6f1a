package domain

import "errors"

var ErrInvalidDimensions = errors.New("shipment has zero or negative dimensions")
var ErrCarrierNotFound = errors.New("carrier not found")
var ErrForbidden = errors.New("access forbidden")

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// ShipmentSpec is the immutable physical description of one shipment request.
// It is built once by the intake layer and consumed read-only by the engine.
type ShipmentSpec struct {
	OriginCode string  `json:"origin_code" bson:"origin_code"`
	DestCode   string  `json:"dest_code" bson:"dest_code"`
	WeightLb   float64 `json:"weight_lb" bson:"weight_lb"`
	LengthFt   float64 `json:"length_ft" bson:"length_ft"`
	WidthFt    float64 `json:"width_ft" bson:"width_ft"`
	HeightFt   float64 `json:"height_ft" bson:"height_ft"`
}

// Validate reports whether the spec describes a physically quotable shipment.
// All four physical measurements must be strictly positive.
func (s ShipmentSpec) Validate() error {
	if s.WeightLb <= 0 || s.LengthFt <= 0 || s.WidthFt <= 0 || s.HeightFt <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}
