package service

import "github.com/optiifreight/quoting-engine/internal/core/domain"

// DefaultDensityThreshold is the dimensional-weight cutoff in lb/ft³. Dense,
// compact cargo bills by actual weight; light, bulky cargo bills by the
// trailer space it occupies.
const DefaultDensityThreshold = 12.5

// Classifier computes volume and density for a shipment and picks the
// chargeable basis. Pure computation, no failure modes.
type Classifier struct {
	densityThreshold float64
}

// NewClassifier returns a Classifier using the given density threshold.
// A non-positive threshold falls back to DefaultDensityThreshold.
func NewClassifier(densityThreshold float64) *Classifier {
	if densityThreshold <= 0 {
		densityThreshold = DefaultDensityThreshold
	}
	return &Classifier{densityThreshold: densityThreshold}
}

// Classify derives volume, density, and chargeable basis from the spec.
// A zero-volume shipment yields density 0 (and therefore VOLUME basis)
// instead of dividing by zero; the service entry point rejects such specs
// before they reach pricing.
func (c *Classifier) Classify(spec domain.ShipmentSpec) domain.Classification {
	vol := spec.LengthFt * spec.WidthFt * spec.HeightFt

	density := 0.0
	if vol > 0 {
		density = spec.WeightLb / vol
	}

	basis := domain.BasisVolume
	if density >= c.densityThreshold {
		basis = domain.BasisWeight
	}

	return domain.Classification{
		VolumeCubicFt:       vol,
		DensityLbPerCubicFt: density,
		Basis:               basis,
	}
}
