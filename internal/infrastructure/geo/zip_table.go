// Package geo provides the static postal-code coordinate table backing the
// distance estimator. It stands in for a real geocoding provider; the lookup
// contract (total, never fails) is what the engine depends on, not the data
// source.
package geo

import "github.com/optiifreight/quoting-engine/internal/core/domain"

// DefaultCoordinate is the geographic center of the contiguous US service
// area. Every postal code outside the table resolves here so that an unknown
// code degrades to a generic route instead of blocking the quote.
var DefaultCoordinate = domain.Coordinates{Lat: 39.8283, Lng: -98.5795}

var zipCoords = map[string]domain.Coordinates{
	"10001": {Lat: 40.7128, Lng: -74.0060},  // New York
	"90001": {Lat: 34.0522, Lng: -118.2437}, // Los Angeles
	"60601": {Lat: 41.8781, Lng: -87.6298},  // Chicago
	"77001": {Lat: 29.7604, Lng: -95.3698},  // Houston
	"33101": {Lat: 25.7617, Lng: -80.1918},  // Miami
	"98101": {Lat: 47.6062, Lng: -122.3321}, // Seattle
}

// ZipTable implements ports.Geolocator over the static table.
type ZipTable struct{}

func NewZipTable() *ZipTable {
	return &ZipTable{}
}

// Lookup returns the coordinate for a known postal code, or
// DefaultCoordinate for anything else. Pure function over static data.
func (ZipTable) Lookup(code string) domain.Coordinates {
	if c, ok := zipCoords[code]; ok {
		return c
	}
	return DefaultCoordinate
}
