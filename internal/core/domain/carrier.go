package domain

// RateSchedule is a carrier's pricing configuration. A zero value in any
// field means the carrier has not set that rate; the quote calculator
// substitutes the deployment-wide default for that field only.
type RateSchedule struct {
	PerMile      float64 `json:"per_mile" bson:"per_mile"`
	PerCubicFoot float64 `json:"per_cubic_foot" bson:"per_cubic_foot"`
	PerPound     float64 `json:"per_pound" bson:"per_pound"`
}

// CarrierProfile is the read-only snapshot of a carrier handed to the engine
// by the carrier directory.
type CarrierProfile struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Name        string       `json:"name" bson:"name"`
	Verified    bool         `json:"verified" bson:"verified"`
	Rating      float64      `json:"rating" bson:"rating"`
	Reviews     int          `json:"reviews" bson:"reviews"`
	YearsActive int          `json:"years_active" bson:"years_active"`
	Equipment   string       `json:"equipment" bson:"equipment"`
	DOTNumber   string       `json:"dot_number" bson:"dot_number"`
	Insurance   string       `json:"insurance" bson:"insurance"`
	Rates       RateSchedule `json:"rates" bson:"rates"`
}
