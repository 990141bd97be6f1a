package domain

import "time"

// QuoteAudit records one ranked-quote request after the fact, for the
// shipper-facing history views. It is written asynchronously and never sits
// on the quoting path.
type QuoteAudit struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	RequestID     string       `json:"request_id" bson:"request_id"`
	ShipperID     string       `json:"shipper_id" bson:"shipper_id"`
	Spec          ShipmentSpec `json:"spec" bson:"spec"`
	DistanceMiles int          `json:"distance_miles" bson:"distance_miles"`
	OfferCount    int          `json:"offer_count" bson:"offer_count"`
	BestTotal     float64      `json:"best_total" bson:"best_total"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
}
