package ports

import "github.com/optiifreight/quoting-engine/internal/core/domain"

// Geolocator maps a postal code to an approximate coordinate. Unknown codes
// resolve to a fixed default coordinate rather than failing, so a bad code
// can never block a quote.
type Geolocator interface {
	Lookup(code string) domain.Coordinates
}

// DistanceEstimator computes the approximate route distance in whole miles
// between two postal codes. Total function; it always returns a positive
// number.
type DistanceEstimator interface {
	EstimateMiles(originCode, destCode string) int
}
