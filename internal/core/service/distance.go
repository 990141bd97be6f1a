package service

import (
	"math"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
	"github.com/optiifreight/quoting-engine/internal/core/ports"
)

const earthRadiusMiles = 3958.8

// MinRouteDistanceMiles is returned when origin and destination resolve to
// the same coordinate (identical codes, or two codes unknown to the lookup
// table). Deliberate business rule: a zero-mile route would collapse mileage
// pricing to zero and falsely signal "no shipment", so such routes are
// priced as a generic medium haul instead.
const MinRouteDistanceMiles = 500

// HaversineEstimator estimates great-circle route distance from postal codes.
type HaversineEstimator struct {
	geo ports.Geolocator
}

func NewHaversineEstimator(geo ports.Geolocator) *HaversineEstimator {
	return &HaversineEstimator{geo: geo}
}

// EstimateMiles resolves both codes and applies the haversine formula,
// rounding to the nearest whole mile. It has no failure path.
func (e *HaversineEstimator) EstimateMiles(originCode, destCode string) int {
	origin := e.geo.Lookup(originCode)
	dest := e.geo.Lookup(destCode)

	if origin == dest {
		return MinRouteDistanceMiles
	}

	return int(math.Round(haversineMiles(origin, dest)))
}

func haversineMiles(a, b domain.Coordinates) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
