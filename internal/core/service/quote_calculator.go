package service

import (
	"fmt"
	"math"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

// DefaultRateSchedule is the fallback pricing applied field-by-field when a
// carrier's schedule leaves a rate unset. An incomplete carrier profile still
// yields a plausible generic quote rather than $0.
var DefaultRateSchedule = domain.RateSchedule{
	PerMile:      2.00,
	PerCubicFoot: 0.50,
	PerPound:     0.10,
}

// QuoteCalculator combines classification, a carrier rate schedule, and route
// distance into a priced quote. Deterministic and side-effect-free: two calls
// with identical arguments produce identical quotes.
type QuoteCalculator struct {
	classifier *Classifier
	transit    *TransitEstimator
	defaults   domain.RateSchedule
}

// NewQuoteCalculator builds a calculator. Zero fields in defaults fall back
// to DefaultRateSchedule so the fallback policy is always fully populated.
func NewQuoteCalculator(classifier *Classifier, transit *TransitEstimator, defaults domain.RateSchedule) *QuoteCalculator {
	if defaults.PerMile <= 0 {
		defaults.PerMile = DefaultRateSchedule.PerMile
	}
	if defaults.PerCubicFoot <= 0 {
		defaults.PerCubicFoot = DefaultRateSchedule.PerCubicFoot
	}
	if defaults.PerPound <= 0 {
		defaults.PerPound = DefaultRateSchedule.PerPound
	}
	return &QuoteCalculator{classifier: classifier, transit: transit, defaults: defaults}
}

// Quote prices one shipment against one carrier's schedule.
//
// The total is deliberately additive: a space/weight utilization fee (base
// charge on the chargeable basis) plus a linehaul fee (mileage). It is never
// collapsed to a single max() term. TotalCharge is always the sum of exactly
// those two components, each rounded to cents.
func (q *QuoteCalculator) Quote(spec domain.ShipmentSpec, rates domain.RateSchedule, distanceMiles int) domain.Quote {
	cls := q.classifier.Classify(spec)

	var baseCharge float64
	if cls.Basis == domain.BasisVolume {
		baseCharge = cls.VolumeCubicFt * fallback(rates.PerCubicFoot, q.defaults.PerCubicFoot)
	} else {
		baseCharge = spec.WeightLb * fallback(rates.PerPound, q.defaults.PerPound)
	}

	mileageCharge := float64(distanceMiles) * fallback(rates.PerMile, q.defaults.PerMile)

	baseCharge = round2(baseCharge)
	mileageCharge = round2(mileageCharge)

	transit := q.transit.Estimate(distanceMiles)

	return domain.Quote{
		DistanceMiles:       distanceMiles,
		VolumeCubicFt:       round2(cls.VolumeCubicFt),
		DensityLbPerCubicFt: round2(cls.DensityLbPerCubicFt),
		Basis:               cls.Basis,
		BaseCharge:          baseCharge,
		MileageCharge:       mileageCharge,
		TotalCharge:         round2(baseCharge + mileageCharge),
		TransitTimeHours:    transit.Hours,
		TransitTimeDisplay:  transit.Display,
		Breakdown:           breakdown(mileageCharge, cls.Basis, baseCharge),
	}
}

func breakdown(mileageCharge float64, basis domain.ChargeableBasis, baseCharge float64) string {
	return fmt.Sprintf("Mileage ($%.0f) + %s Charge ($%.0f)", mileageCharge, basis, baseCharge)
}

func fallback(rate, def float64) float64 {
	if rate > 0 {
		return rate
	}
	return def
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
